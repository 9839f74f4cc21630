package swatch

import (
	"image/color"
	"testing"
)

func TestRenderDimensions(t *testing.T) {
	cfg := Config{Width: 100, BlockHeight: 40, LabelHeight: 20}
	img := Render(255, 0, 0, "#ff0000", cfg)
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 60 {
		t.Errorf("got %dx%d, want 100x60", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRenderBlockColor(t *testing.T) {
	img := Render(18, 52, 86, "#123456", DefaultConfig())
	got := img.RGBAAt(5, 5)
	want := color.RGBA{18, 52, 86, 255}
	if got != want {
		t.Errorf("block pixel: got %+v, want %+v", got, want)
	}
}

func TestRenderLabelStrip(t *testing.T) {
	cfg := DefaultConfig()
	img := Render(0, 0, 0, "#000000", cfg)

	// Strip corners stay white; the text is centered.
	if got := img.RGBAAt(1, cfg.BlockHeight+1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("strip corner: got %+v, want white", got)
	}

	// Some pixel in the strip must be black from the label glyphs.
	found := false
	for y := cfg.BlockHeight; y < cfg.BlockHeight+cfg.LabelHeight && !found; y++ {
		for x := 0; x < cfg.Width; x++ {
			if img.RGBAAt(x, y) == (color.RGBA{0, 0, 0, 255}) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no label pixels drawn in the strip")
	}
}

func TestRenderEmptyLabel(t *testing.T) {
	cfg := Config{Width: 20, BlockHeight: 10, LabelHeight: 8}
	img := Render(10, 20, 30, "", cfg)
	for y := cfg.BlockHeight; y < cfg.BlockHeight+cfg.LabelHeight; y++ {
		for x := 0; x < cfg.Width; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{255, 255, 255, 255}) {
				t.Fatalf("pixel (%d,%d) not white in empty label strip", x, y)
			}
		}
	}
}
