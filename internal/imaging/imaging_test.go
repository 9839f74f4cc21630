package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSavePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swatch.png")

	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	src.SetRGBA(3, 3, color.RGBA{0, 0, 255, 255})

	if err := SavePNG(path, src); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening written file: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding written PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 4 {
		t.Errorf("dimensions: got %dx%d, want 4x4", decoded.Bounds().Dx(), decoded.Bounds().Dy())
	}
	r, g, b, _ := decoded.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("pixel (0,0): got (%d,%d,%d), want (255,0,0)", r>>8, g>>8, b>>8)
	}
}

func TestSavePNG_BadDirectory(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if err := SavePNG("/nonexistent-dir/sub/out.png", src); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestExpandPath(t *testing.T) {
	t.Run("empty stays empty", func(t *testing.T) {
		if got := ExpandPath(""); got != "" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("absolute is cleaned", func(t *testing.T) {
		if got := ExpandPath("/tmp//x/../y.png"); got != "/tmp/y.png" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("relative becomes absolute", func(t *testing.T) {
		if got := ExpandPath("out.png"); !filepath.IsAbs(got) {
			t.Errorf("got %q, want absolute", got)
		}
	})

	t.Run("tilde expands to home", func(t *testing.T) {
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory")
		}
		if got := ExpandPath("~/out.png"); !strings.HasPrefix(got, home) {
			t.Errorf("got %q, want prefix %q", got, home)
		}
	})
}
