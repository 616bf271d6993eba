// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// timestamped returns prefix-<date>-<time>-<ms>.ext
func timestamped(prefix, ext string) string {
	stamp := strings.Replace(time.Now().Format("20060102-150405.000"), ".", "-", 1)
	return fmt.Sprintf("%s-%s.%s", prefix, stamp, ext)
}

// createIn creates name inside dir, making dir first. An empty dir means
// the working directory.
func createIn(dir, name string) (*os.File, string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, "", fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	path, err := filepath.Abs(filepath.Join(dir, name))
	if err != nil {
		return nil, "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

// SaveScreenshot writes img as screenshot-<time>.png in dir and returns the
// absolute path.
func SaveScreenshot(img image.Image, dir string) (string, error) {
	return SavePNG(img, dir, timestamped("screenshot", "png"))
}

// SavePNG writes img as dir/name and returns the absolute path.
func SavePNG(img image.Image, dir, name string) (string, error) {
	f, path, err := createIn(dir, name)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
