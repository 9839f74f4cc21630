// Package cli parses command line arguments for the csscolor tool.
package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mvx3/csscolor"
)

// Config holds the parsed CLI arguments.
type Config struct {
	// Value is the color value to convert, joined from the positional
	// arguments so unquoted functional notations survive shell splitting.
	Value string

	// Target is the requested output notation.
	Target csscolor.Format

	// All requests printing the color in every supported notation.
	All bool

	// SwatchPath, when set, is where a PNG swatch of the color is written.
	SwatchPath string

	// ServeAddr, when set, runs the HTTP conversion service instead of a
	// one-shot conversion.
	ServeAddr string
}

// Parse parses CLI arguments and returns a validated Config.
func Parse() (Config, error) {
	to := flag.String("to", "hex", "Target notation: hex, rgb, hsl, hwb, lch, oklch, name")
	all := flag.Bool("all", false, "Print the color in every supported notation")
	swatch := flag.String("swatch", "", "Write a PNG swatch of the color to this path (must be .png)")
	serve := flag.String("serve", "", "Run the HTTP conversion service on this address (e.g. :8080)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: csscolor [options] <color value>\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n"+
			"  csscolor --to=rgb \"#663399\"\n"+
			"  csscolor --to=oklch rebeccapurple\n"+
			"  csscolor --all --swatch=out.png \"hsl(120, 100%%, 50%%)\"\n"+
			"  csscolor --serve=:8080\n")
	}

	flag.Parse()

	if *serve != "" {
		return Config{ServeAddr: *serve}, nil
	}

	value := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if value == "" {
		return Config{}, fmt.Errorf("a color value is required")
	}

	target, err := csscolor.ParseFormat(*to)
	if err != nil {
		return Config{}, fmt.Errorf("--to: %w", err)
	}

	if *swatch != "" {
		if ext := strings.ToLower(filepath.Ext(*swatch)); ext != ".png" {
			return Config{}, fmt.Errorf("--swatch must be a .png file, got %q", ext)
		}
	}

	return Config{
		Value:      value,
		Target:     target,
		All:        *all,
		SwatchPath: *swatch,
	}, nil
}
