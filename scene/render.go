package scene

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/rotor"
)

// Render draws s onto dc: background, optional frame, triangles in order,
// then labels. s is assumed valid; Parse and Load validate.
func Render(dc *gg.Context, s *Scene) error {
	if s.Background != "" {
		bg, err := parseColor(s.Background)
		if err != nil {
			return fmt.Errorf("background: %w", err)
		}
		dc.ClearWithColor(bg)
	}

	c := rotor.NewContextCanvas(dc)
	if s.Frame {
		if err := rotor.RenderFrame(scaledCanvas{c, s.scale()}); err != nil {
			return err
		}
	}

	for i, t := range s.Triangles {
		if err := drawTriangle(c, t); err != nil {
			return fmt.Errorf("scene: triangle %d: %w", i, err)
		}
	}

	if err := drawLabels(dc, s.Labels); err != nil {
		return err
	}

	rotor.Logger().Debug("scene rendered",
		"width", s.Width, "height", s.Height,
		"triangles", len(s.Triangles), "labels", len(s.Labels))
	return nil
}

func drawTriangle(c rotor.Canvas, t Triangle) error {
	col, err := parseColor(t.Color)
	if err != nil {
		return err
	}
	center := image.Pt(t.X, t.Y)

	if t.Shaded {
		return rotor.DrawShaded(c, center, t.Radius, t.Degrees, col, t.Wankel)
	}

	opts := []rotor.TriangleOption{rotor.WithWankel(t.Wankel)}
	if t.Vertex != nil {
		v := *t.Vertex
		// Out-of-range indices panic in rotor; scene input is user data.
		if v < 0 || v > 2 {
			return fmt.Errorf("%w: got %d", ErrInvalidVertex, v)
		}
		opts = append(opts, rotor.WithVertex(v))
	}
	return rotor.DrawTriangle(c, center, t.Radius, t.Degrees, col, opts...)
}

// scaledCanvas presents a canvas k times smaller than the one it wraps and
// scales every path and line width up on the way through.
type scaledCanvas struct {
	rotor.Canvas
	k int
}

func (c scaledCanvas) Width() int  { return c.Canvas.Width() / c.k }
func (c scaledCanvas) Height() int { return c.Canvas.Height() / c.k }

func (c scaledCanvas) DrawPath(path *gg.Path, paint *gg.Paint, style rotor.Style) error {
	if c.k == 1 {
		return c.Canvas.DrawPath(path, paint, style)
	}
	f := float64(c.k)
	scaled := paint.Clone()
	scaled.LineWidth *= f
	return c.Canvas.DrawPath(path.Transform(gg.Scale(f, f)), scaled, style)
}
