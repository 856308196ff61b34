package audio

import (
	"path/filepath"
	"testing"
)

func TestSilentMusic(t *testing.T) {
	m, err := Open("")
	if err != nil {
		t.Fatal(err)
	}
	m.Start()
	if m.Playing() {
		t.Error("silent music reports playing")
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close = %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.ogg")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
