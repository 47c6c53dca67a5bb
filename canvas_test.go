package rotor

import (
	"image"
	"testing"

	"github.com/gogpu/gg"
)

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a >> 8
}

func TestStyleString(t *testing.T) {
	tests := []struct {
		s    Style
		want string
	}{
		{StyleFill, "fill"},
		{StyleStroke, "stroke"},
		{Style(9), "Style(9)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Style(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}

func TestContextCanvasFill(t *testing.T) {
	dc := gg.NewContext(100, 100)
	c := NewContextCanvas(dc)
	if c.Width() != 100 || c.Height() != 100 {
		t.Fatalf("size = %dx%d, want 100x100", c.Width(), c.Height())
	}

	path := gg.NewPath()
	path.Rectangle(20, 20, 40, 40)
	paint := gg.NewPaint()
	paint.SetBrush(gg.Solid(gg.Red))

	if err := c.DrawPath(path, paint, StyleFill); err != nil {
		t.Fatalf("DrawPath: %v", err)
	}

	img := dc.Image()
	r, g, b, a := img.At(40, 40).RGBA()
	if r>>8 < 200 || g>>8 > 50 || b>>8 > 50 || a>>8 < 200 {
		t.Errorf("inside pixel = (%d,%d,%d,%d), want red", r>>8, g>>8, b>>8, a>>8)
	}
	if a := alphaAt(img, 80, 80); a != 0 {
		t.Errorf("outside pixel alpha = %d, want 0", a)
	}
}

func TestContextCanvasRestoresState(t *testing.T) {
	dc := gg.NewContext(50, 50)
	dc.SetLineWidth(7)
	dc.SetFillBrush(gg.Solid(gg.Green))
	c := NewContextCanvas(dc)

	path := gg.NewPath()
	path.MoveTo(5, 5)
	path.LineTo(45, 45)
	paint := gg.NewPaint()
	paint.LineWidth = 3
	paint.SetBrush(gg.Solid(gg.Blue))

	if err := c.DrawPath(path, paint, StyleStroke); err != nil {
		t.Fatalf("DrawPath: %v", err)
	}
	if got := dc.GetStroke().Width; got != 7 {
		t.Errorf("line width after draw = %v, want 7", got)
	}
	sb, ok := dc.FillBrush().(gg.SolidBrush)
	if !ok || sb.Color != gg.Green {
		t.Errorf("brush after draw = %+v, want solid green", dc.FillBrush())
	}
	if _, _, ok := dc.GetCurrentPoint(); ok {
		t.Error("context path should be cleared after draw")
	}
}

func TestContextCanvasUnknownStyle(t *testing.T) {
	dc := gg.NewContext(10, 10)
	path := gg.NewPath()
	path.Rectangle(0, 0, 5, 5)
	if err := NewContextCanvas(dc).DrawPath(path, gg.NewPaint(), Style(5)); err == nil {
		t.Error("expected error for unknown style")
	}
}

func TestContextCanvasShadedTriangle(t *testing.T) {
	dc := gg.NewContext(200, 200)
	c := NewContextCanvas(dc)
	if err := DrawShaded(c, image.Pt(100, 100), 80, 90, gg.Hex("#3377ff"), true); err != nil {
		t.Fatalf("DrawShaded: %v", err)
	}
	img := dc.Image()
	// Near the top vertex the gradient is close to opaque.
	if a := alphaAt(img, 100, 30); a == 0 {
		t.Error("top vertex region left transparent")
	}
	if a := alphaAt(img, 2, 198); a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}

func TestContextCanvasResetsFillRule(t *testing.T) {
	dc := gg.NewContext(100, 100)
	c := NewContextCanvas(dc)

	ring := gg.NewPath()
	ring.Rectangle(10, 10, 80, 80)
	ring.Rectangle(30, 30, 40, 40)
	paint := gg.NewPaint()
	paint.FillRule = gg.FillRuleEvenOdd
	paint.SetBrush(gg.Solid(gg.Blue))

	if err := c.DrawPath(ring, paint, StyleFill); err != nil {
		t.Fatalf("DrawPath: %v", err)
	}
	img := dc.Image()
	if a := alphaAt(img, 50, 50); a != 0 {
		t.Fatalf("even-odd hole alpha = %d, want 0", a)
	}
	if a := alphaAt(img, 20, 20); a < 200 {
		t.Fatalf("even-odd ring alpha = %d, want opaque", a)
	}

	// The same nested rectangles filled directly on the context must use
	// the default non-zero rule, which covers the hole.
	dc.DrawRectangle(10, 10, 80, 80)
	dc.DrawRectangle(30, 30, 40, 40)
	dc.SetRGB(1, 0, 0)
	if err := dc.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if a := alphaAt(dc.Image(), 50, 50); a < 200 {
		t.Errorf("hole alpha after direct fill = %d, want opaque (fill rule leaked)", a)
	}
}
