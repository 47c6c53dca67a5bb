package export

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// pointsPerPixel maps image pixels to PDF points at 96 dpi.
const pointsPerPixel = 72.0 / 96.0

// PDF writes a single-page PDF whose page is exactly the size of img.
func PDF(w io.Writer, img image.Image) error {
	var buf bytes.Buffer
	if err := PNG(&buf, img); err != nil {
		return err
	}

	b := img.Bounds()
	wd := float64(b.Dx()) * pointsPerPixel
	ht := float64(b.Dy()) * pointsPerPixel

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("rotor", opts, &buf)
	pdf.ImageOptions("rotor", 0, 0, wd, ht, false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}
