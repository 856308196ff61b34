// Package audio plays the looping background music once the scene has
// been started by the user.
package audio

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

const sampleRate = 44100

// Music is a looping track. The zero value is silent.
type Music struct {
	file   *os.File
	player *audio.Player
}

// Open prepares the OGG file at path without playing it. An empty path
// yields silent music.
func Open(path string) (*Music, error) {
	if path == "" {
		return &Music{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening music: %w", err)
	}
	stream, err := vorbis.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding music: %w", err)
	}

	ctx := audio.NewContext(sampleRate)
	player, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating music player: %w", err)
	}
	return &Music{file: f, player: player}, nil
}

// Start begins playback. Later calls do nothing.
func (m *Music) Start() {
	if m.player == nil || m.player.IsPlaying() {
		return
	}
	m.player.Play()
	slog.Info("music started", "component", "audio")
}

// Playing reports whether music is audible.
func (m *Music) Playing() bool {
	return m != nil && m.player != nil && m.player.IsPlaying()
}

// Close stops playback and releases the file.
func (m *Music) Close() error {
	if m.player != nil {
		if err := m.player.Close(); err != nil {
			return err
		}
	}
	if m.file != nil {
		return m.file.Close()
	}
	return nil
}
