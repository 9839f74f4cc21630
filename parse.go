package csscolor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mvx3/csscolor/internal/name"
	"github.com/mvx3/csscolor/internal/space"
)

// parseHexTriple parses a 3- or 6-digit hex color into its 8-bit
// channels. The leading '#' is optional; 3-digit shorthand is expanded by
// digit duplication ("#abc" -> "#aabbcc").
func parseHexTriple(s string) (r, g, b uint8, err error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) == 3 {
		digits = expandShorthand(digits)
	}
	if len(digits) != 6 {
		return 0, 0, 0, fmt.Errorf("hex color %q: %w", s, ErrUnrecognizedNotation)
	}
	v, perr := strconv.ParseUint(digits, 16, 32)
	if perr != nil {
		return 0, 0, 0, fmt.Errorf("hex color %q: %w", s, ErrUnrecognizedNotation)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// expandShorthand duplicates each digit of a 3-digit hex body.
func expandShorthand(digits string) string {
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		sb.WriteByte(digits[i])
		sb.WriteByte(digits[i])
	}
	return sb.String()
}

// formatHex renders 8-bit channels as the canonical lowercase "#rrggbb".
func formatHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// quantize rounds a normalized [0, 1] channel to its 8-bit value,
// saturating out-of-range inputs instead of wrapping.
func quantize(v float64) uint8 {
	x := math.Round(v * 255)
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// components extracts the numeric payload of a functional notation,
// requiring at least want numbers.
func components(s string, want int) ([]float64, error) {
	nums := scanNumbers(s)
	if len(nums) < want {
		return nil, fmt.Errorf("%q: %d of %d components: %w", s, len(nums), want, ErrMalformedNumericPayload)
	}
	return nums, nil
}

// parseRGBText parses "rgb(R, G, B)" with channels in display range [0, 255].
func parseRGBText(s string) (string, error) {
	n, err := components(s, 3)
	if err != nil {
		return "", err
	}
	return formatHex(quantize(n[0]/255), quantize(n[1]/255), quantize(n[2]/255)), nil
}

// parseHSLText parses "hsl(H, S%, L%)" with hue in degrees and percentages.
func parseHSLText(s string) (string, error) {
	n, err := components(s, 3)
	if err != nil {
		return "", err
	}
	r, g, b := space.HSLToRGB(n[0], n[1]/100, n[2]/100)
	return formatHex(quantize(r), quantize(g), quantize(b)), nil
}

// parseHWBText parses "hwb(H W% B%)" with hue in degrees and percentages.
func parseHWBText(s string) (string, error) {
	n, err := components(s, 3)
	if err != nil {
		return "", err
	}
	r, g, b := space.HWBToRGB(n[0], n[1]/100, n[2]/100)
	return formatHex(quantize(r), quantize(g), quantize(b)), nil
}

// parseLCHText parses "lch(L% C H)" with L in [0, 100], unbounded chroma
// and hue in degrees.
func parseLCHText(s string) (string, error) {
	n, err := components(s, 3)
	if err != nil {
		return "", err
	}
	r, g, b := space.LCHToRGB(n[0], n[1], n[2])
	return formatHex(quantize(r), quantize(g), quantize(b)), nil
}

// parseOKLCHText parses "oklch(L C H)" with L in [0, 1]. A percent sign on
// the lightness is dropped with the rest of the non-numeric characters and
// the digits are used as-is, without a /100 rescale: "oklch(0.6 ...)" and
// "oklch(0.6% ...)" are the same lightness. See DESIGN.md.
func parseOKLCHText(s string) (string, error) {
	n, err := components(s, 3)
	if err != nil {
		return "", err
	}
	r, g, b := space.OKLCHToRGB(n[0], n[1], n[2])
	return formatHex(quantize(r), quantize(g), quantize(b)), nil
}

// parseNameText resolves a CSS color keyword through the named-color table.
func parseNameText(s string) (string, error) {
	hex, ok := name.ToHex(s)
	if !ok {
		return "", fmt.Errorf("%q: %w", s, ErrUnrecognizedNotation)
	}
	return hex, nil
}
