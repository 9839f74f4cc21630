package csscolor

import (
	"fmt"
	"math"

	"github.com/mvx3/csscolor/internal/name"
	"github.com/mvx3/csscolor/internal/space"
)

// norm converts 8-bit channels to normalized [0, 1] floats.
func norm(r, g, b uint8) (float64, float64, float64) {
	return float64(r) / 255, float64(g) / 255, float64(b) / 255
}

// serializeRGB renders "rgb(R, G, B)" with integer channels.
func serializeRGB(r, g, b uint8) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// serializeHSL renders "hsl(H, S%, L%)" with the hue and percentages
// rounded to integers.
func serializeHSL(r, g, b uint8) string {
	h, s, l := space.RGBToHSL(norm(r, g, b))
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)",
		int(math.Round(h)), int(math.Round(s*100)), int(math.Round(l*100)))
}

// serializeHWB renders the modern space-separated "hwb(H W% B%)" form.
func serializeHWB(r, g, b uint8) string {
	h, w, bk := space.RGBToHWB(norm(r, g, b))
	return fmt.Sprintf("hwb(%d %d%% %d%%)",
		int(math.Round(h)), int(math.Round(w*100)), int(math.Round(bk*100)))
}

// serializeLCH renders "lch(L% C H)": L to two decimals with a percent
// sign, chroma to three, hue to two.
func serializeLCH(r, g, b uint8) string {
	l, c, h := space.RGBToLCH(norm(r, g, b))
	return fmt.Sprintf("lch(%.2f%% %.3f %.2f)", l, c, h)
}

// serializeOKLCH renders "oklch(L C H)": L in [0, 1] to three decimals,
// chroma to three, hue to two, no percent signs.
func serializeOKLCH(r, g, b uint8) string {
	l, c, h := space.RGBToOKLCH(norm(r, g, b))
	return fmt.Sprintf("oklch(%.3f %.3f %.2f)", l, c, h)
}

// serializeName returns the CSS keyword for the color, or the hex value
// unchanged when no keyword exists; most of the 24-bit space has no name.
func serializeName(r, g, b uint8) string {
	hex := formatHex(r, g, b)
	if keyword, ok := name.FromHex(hex); ok {
		return keyword
	}
	return hex
}
