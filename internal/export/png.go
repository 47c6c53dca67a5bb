package export

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// PNG encodes img as PNG.
func PNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

// Downsample shrinks img by the integer factor k with a Catmull-Rom
// filter. Rendering at k times the size and downsampling gives smoother
// gradients and edges. For k <= 1 img is returned unchanged.
func Downsample(img image.Image, k int) image.Image {
	if k <= 1 {
		return img
	}
	sb := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sb.Dx()/k, sb.Dy()/k))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, sb, draw.Src, nil)
	return dst
}
