// Package export writes rendered images to PNG and PDF files.
package export

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/rotor"
)

// ErrUnsupportedFormat is returned by WriteFile for unknown extensions.
var ErrUnsupportedFormat = errors.New("export: unsupported output format")

// WriteFile writes img to path, choosing the format from the extension:
// ".png" or ".pdf".
func WriteFile(path string, img image.Image) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	var write func(*os.File, image.Image) error
	switch ext {
	case ".png":
		write = func(f *os.File, img image.Image) error { return PNG(f, img) }
	case ".pdf":
		write = func(f *os.File, img image.Image) error { return PDF(f, img) }
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := write(f, img); err != nil {
		return err
	}
	b := img.Bounds()
	rotor.Logger().Info("image written", "path", path, "width", b.Dx(), "height", b.Dy())
	return nil
}
