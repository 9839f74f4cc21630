// Package imaging writes rendered swatch images to disk.
package imaging

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// SavePNG writes an image to disk as PNG.
// The path is normalized: ~ is expanded and relative paths are resolved.
func SavePNG(path string, img image.Image) error {
	path = ExpandPath(path)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// ExpandPath normalizes a file path by expanding ~ to the user's home
// directory and resolving relative paths to absolute.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}

	if runtime.GOOS == "windows" && strings.HasPrefix(path, "~\\") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return filepath.Clean(path)
}
