package download

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Fit center-crops and resizes the image at src to exactly width x height and saves it to dst.
// The output format follows the extension of dst.
func Fit(src, dst string, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid target size %dx%d", width, height)
	}

	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}

	fitted := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}
	if err := imaging.Save(fitted, dst); err != nil {
		return fmt.Errorf("failed to save %s: %w", dst, err)
	}
	return nil
}

// ParseSize reads a WxH size such as 1920x1080.
func ParseSize(s string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("invalid size %q, want WIDTHxHEIGHT: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, dimensions must be positive", s)
	}
	return w, h, nil
}
