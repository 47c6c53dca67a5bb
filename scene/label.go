package scene

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// labelFont is the Go Regular font, parsed on first use and shared.
var labelFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

func drawLabels(dc *gg.Context, labels []Label) error {
	if len(labels) == 0 {
		return nil
	}
	src, err := labelFont()
	if err != nil {
		return fmt.Errorf("scene: load label font: %w", err)
	}

	prev := dc.Font()
	defer dc.SetFont(prev)

	for i, l := range labels {
		col, err := parseColor(l.Color)
		if err != nil {
			return fmt.Errorf("scene: label %d: %w", i, err)
		}
		dc.SetFont(src.Face(l.Size))
		dc.SetRGBA(col.R, col.G, col.B, col.A)
		dc.DrawStringAnchored(l.Text, l.X, l.Y, 0.5, 0.5)
	}
	return nil
}
