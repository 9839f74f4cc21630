// Package swatch renders labeled color swatch images: a solid block of
// the color with a text strip underneath.
package swatch

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Config holds the swatch layout.
type Config struct {
	Width       int // total width in pixels
	BlockHeight int // height of the color block
	LabelHeight int // height of the label strip under the block
}

// DefaultConfig returns a layout sized for terminal-adjacent previews.
func DefaultConfig() Config {
	return Config{
		Width:       240,
		BlockHeight: 120,
		LabelHeight: 24,
	}
}

// Render draws the color block with label centered in the strip below it.
// The label strip is white with black text; labels wider than the swatch
// are drawn from the left edge and clipped.
func Render(r, g, b uint8, label string, cfg Config) *image.RGBA {
	totalH := cfg.BlockHeight + cfg.LabelHeight
	out := image.NewRGBA(image.Rect(0, 0, cfg.Width, totalH))

	block := image.Rect(0, 0, cfg.Width, cfg.BlockHeight)
	draw.Draw(out, block, image.NewUniform(color.RGBA{r, g, b, 255}), image.Point{}, draw.Src)

	strip := image.Rect(0, cfg.BlockHeight, cfg.Width, totalH)
	draw.Draw(out, strip, image.NewUniform(color.White), image.Point{}, draw.Src)

	if label == "" {
		return out
	}

	face := basicfont.Face7x13
	width := font.MeasureString(face, label).Ceil()
	x := (cfg.Width - width) / 2
	if x < 0 {
		x = 0
	}
	baseline := cfg.BlockHeight + (cfg.LabelHeight+face.Ascent)/2

	d := font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(label)
	return out
}
