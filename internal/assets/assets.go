// Package assets loads the names, textures, font and music the scene
// displays. Every asset is optional: missing files are replaced by an
// embedded or procedurally generated stand-in.
package assets

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/olivierh59500/solar/internal/config"
	"github.com/olivierh59500/solar/internal/universe"
)

//go:embed names.txt
var defaultNames []byte

// Texture size of generated stand-ins.
const (
	textureWidth  = 256
	textureHeight = 128
)

// Catalog is the loaded asset set.
type Catalog struct {
	Names    []string
	Textures []*ebiten.Image
	Sun      *ebiten.Image
	Font     *text.GoTextFaceSource

	// MusicPath is empty when no music file exists.
	MusicPath string
}

// Universe returns the part of the catalog the generator uses.
func (c *Catalog) Universe() universe.Catalog {
	return universe.Catalog{Names: c.Names, Textures: len(c.Textures)}
}

// Load reads every asset named by cfg. seed drives the generated
// stand-ins so they match across runs with the same seed.
func Load(cfg config.AssetsConfig, seed int64) (*Catalog, error) {
	log := slog.With("component", "assets")
	c := &Catalog{}

	names, err := loadNames(resolve(cfg.Dir, cfg.NamesFile))
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		log.Warn("names file missing or empty, using built-in names", "path", resolve(cfg.Dir, cfg.NamesFile))
		names = ParseNames(bytes.NewReader(defaultNames))
	}
	c.Names = names

	generated := 0
	for i := 0; i < cfg.TextureCount; i++ {
		img, err := loadTexture(resolve(cfg.Dir, cfg.TextureDir), i)
		if err != nil {
			return nil, err
		}
		if img == nil {
			img = ebiten.NewImageFromImage(PlanetTexture(seed, i, cfg.TextureCount, textureWidth, textureHeight))
			generated++
		}
		c.Textures = append(c.Textures, img)
	}
	if generated > 0 {
		log.Warn("planet textures missing, generated stand-ins", "generated", generated, "total", cfg.TextureCount)
	}

	sun, err := loadImage(resolve(cfg.Dir, cfg.SunTexture))
	if err != nil {
		return nil, err
	}
	if sun == nil {
		log.Warn("sun texture missing, generating one", "path", resolve(cfg.Dir, cfg.SunTexture))
		sun = ebiten.NewImageFromImage(SunTexture(seed, textureWidth, textureHeight))
	}
	c.Sun = sun

	font, err := loadFont(resolve(cfg.Dir, cfg.FontFile))
	if err != nil {
		return nil, err
	}
	c.Font = font

	if p := resolve(cfg.Dir, cfg.MusicFile); exists(p) {
		c.MusicPath = p
	} else {
		log.Warn("music file missing, playing silence", "path", p)
	}

	log.Info("assets loaded",
		"names", len(c.Names),
		"textures", len(c.Textures),
		"music", c.MusicPath != "",
	)
	return c, nil
}

// ParseNames reads one name per line, trimming blanks.
func ParseNames(r io.Reader) []string {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func loadNames(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening names file: %w", err)
	}
	defer f.Close()
	return ParseNames(f), nil
}

// loadTexture looks for <dir>/<i>.jpg, then <dir>/<i>.png.
func loadTexture(dir string, i int) (*ebiten.Image, error) {
	for _, ext := range []string{".jpg", ".png"} {
		img, err := loadImage(filepath.Join(dir, strconv.Itoa(i)+ext))
		if err != nil || img != nil {
			return img, err
		}
	}
	return nil, nil
}

// loadImage returns nil, nil when path does not exist.
func loadImage(path string) (*ebiten.Image, error) {
	if path == "" || !exists(path) {
		return nil, nil
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading image %s: %w", path, err)
	}
	return img, nil
}

func loadFont(path string) (*text.GoTextFaceSource, error) {
	data := goregular.TTF
	if path != "" && exists(path) {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading font: %w", err)
		}
		data = b
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return src, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
