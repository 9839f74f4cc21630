// Package csscolor converts color values between the textual color
// notations of CSS: hexadecimal RGB, rgb(), hsl(), hwb(), lch(), oklch()
// and the named colors.
//
// The canonical interchange form is the 6-digit lowercase hex string
// ("#rrggbb"): every conversion normalizes its input to hex first and
// re-expands from hex into the requested notation.
//
//	hex, _ := csscolor.ToHex("hsl(120, 100%, 50%)")    // "#00ff00"
//	out, _ := csscolor.FromHex(hex, csscolor.FormatRGB) // "rgb(0, 255, 0)"
//
// All conversions are pure functions and may be called concurrently. The
// only process-wide state is the reverse named-color table, which is
// built once on first use.
package csscolor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mvx3/csscolor/internal/name"
)

// Conversion failure modes. Errors returned by this package wrap one of
// these sentinels; match them with errors.Is.
var (
	// ErrMissingInput reports an empty string where a color value was
	// required.
	ErrMissingInput = errors.New("missing color value")

	// ErrUnrecognizedNotation reports input that follows no supported
	// notation grammar and matches no color keyword.
	ErrUnrecognizedNotation = errors.New("unrecognized color notation")

	// ErrMalformedNumericPayload reports a functional notation with fewer
	// numeric components than its grammar requires.
	ErrMalformedNumericPayload = errors.New("malformed numeric payload")

	// ErrUnknownTargetFormat reports a serialization request for a format
	// the engine does not implement.
	ErrUnknownTargetFormat = errors.New("unknown target format")
)

// Format identifies one of the supported textual color notations.
type Format int

// The supported notations. FormatHex is the zero value, so an unspecified
// target format degrades to the hex identity.
const (
	FormatHex Format = iota
	FormatRGB
	FormatHSL
	FormatHWB
	FormatLCH
	FormatOKLCH
	FormatName
)

var formatNames = [...]string{
	FormatHex:   "hex",
	FormatRGB:   "rgb",
	FormatHSL:   "hsl",
	FormatHWB:   "hwb",
	FormatLCH:   "lch",
	FormatOKLCH: "oklch",
	FormatName:  "name",
}

// String returns the format keyword ("hex", "rgb", ...).
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat maps a format keyword to its Format. The empty string maps
// to FormatHex.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatHex, nil
	}
	for f, n := range formatNames {
		if s == n {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownTargetFormat)
}

// Formats lists every supported format in serialization order.
func Formats() []Format {
	return []Format{FormatHex, FormatRGB, FormatHSL, FormatHWB, FormatLCH, FormatOKLCH, FormatName}
}

// Detect decides which notation grammar a string follows, without a full
// CSS tokenizer: a leading '#' means hex, a known functional prefix means
// that function, and everything else is treated as a color keyword.
//
// The oklch branch is independent of the lch branch: "oklch(...)" must
// never fall through to a bare lch prefix test.
func Detect(s string) Format {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return FormatHex
	}
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "oklch"):
		return FormatOKLCH
	case strings.HasPrefix(lower, "rgb"):
		return FormatRGB
	case strings.HasPrefix(lower, "hsl"):
		return FormatHSL
	case strings.HasPrefix(lower, "hwb"):
		return FormatHWB
	case strings.HasPrefix(lower, "lch"):
		return FormatLCH
	}
	return FormatName
}

// ToHex detects the notation of text, parses it, and returns the
// canonical lowercase "#rrggbb" form.
func ToHex(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrMissingInput
	}

	switch Detect(text) {
	case FormatHex:
		r, g, b, err := parseHexTriple(text)
		if err != nil {
			return "", err
		}
		return formatHex(r, g, b), nil
	case FormatRGB:
		return parseRGBText(text)
	case FormatHSL:
		return parseHSLText(text)
	case FormatHWB:
		return parseHWBText(text)
	case FormatLCH:
		return parseLCHText(text)
	case FormatOKLCH:
		return parseOKLCHText(text)
	default:
		return parseNameText(text)
	}
}

// FromHex serializes a canonical hex color into the target notation.
// Serializing to FormatName falls back to the hex value itself when the
// color has no keyword.
func FromHex(hex string, target Format) (string, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return "", ErrMissingInput
	}
	r, g, b, err := parseHexTriple(hex)
	if err != nil {
		return "", err
	}

	switch target {
	case FormatHex:
		return formatHex(r, g, b), nil
	case FormatRGB:
		return serializeRGB(r, g, b), nil
	case FormatHSL:
		return serializeHSL(r, g, b), nil
	case FormatHWB:
		return serializeHWB(r, g, b), nil
	case FormatLCH:
		return serializeLCH(r, g, b), nil
	case FormatOKLCH:
		return serializeOKLCH(r, g, b), nil
	case FormatName:
		return serializeName(r, g, b), nil
	default:
		return "", fmt.Errorf("format %d: %w", int(target), ErrUnknownTargetFormat)
	}
}

// Convert normalizes text to canonical hex and re-expands it into the
// target notation.
func Convert(text string, target Format) (string, error) {
	hex, err := ToHex(text)
	if err != nil {
		return "", err
	}
	return FromHex(hex, target)
}

// RGB returns the three 8-bit channels of a hex color, accepting 3- or
// 6-digit forms with an optional leading '#'.
func RGB(hex string) (r, g, b uint8, err error) {
	return parseHexTriple(strings.TrimSpace(hex))
}

// NameToHex returns the canonical hex value of a CSS color keyword
// (case-insensitive).
func NameToHex(keyword string) (string, bool) {
	return name.ToHex(keyword)
}

// HexToName returns the CSS keyword of a hex color, expanding 3-digit
// shorthand before the lookup. ok is false when the color has no keyword.
func HexToName(hex string) (keyword string, ok bool) {
	r, g, b, err := parseHexTriple(strings.TrimSpace(hex))
	if err != nil {
		return "", false
	}
	return name.FromHex(formatHex(r, g, b))
}
