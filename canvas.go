package rotor

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Style selects whether a path is filled or stroked.
// gg.Paint carries the brush and line settings but not this choice.
type Style int

const (
	// StyleFill fills the interior of the path.
	StyleFill Style = iota
	// StyleStroke strokes the outline of the path.
	StyleStroke
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleFill:
		return "fill"
	case StyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Canvas is the drawing surface used by the shape routines.
type Canvas interface {
	// Width returns the canvas width in pixels.
	Width() int
	// Height returns the canvas height in pixels.
	Height() int
	// DrawPath composites path onto the canvas using paint.
	DrawPath(path *gg.Path, paint *gg.Paint, style Style) error
}

// ContextCanvas adapts a *gg.Context to the Canvas interface.
//
// The context's brush and stroke settings are restored after each
// DrawPath, and the fill rule is reset to gg's default (non-zero), so
// paints never leak between shapes. gg's software renderer
// always anti-aliases; Paint.Antialias is informational here.
type ContextCanvas struct {
	dc *gg.Context
}

var _ Canvas = (*ContextCanvas)(nil)

// NewContextCanvas wraps dc.
func NewContextCanvas(dc *gg.Context) *ContextCanvas {
	return &ContextCanvas{dc: dc}
}

// Context returns the wrapped gg context.
func (c *ContextCanvas) Context() *gg.Context { return c.dc }

// Width implements Canvas.
func (c *ContextCanvas) Width() int { return c.dc.Width() }

// Height implements Canvas.
func (c *ContextCanvas) Height() int { return c.dc.Height() }

// DrawPath implements Canvas.
func (c *ContextCanvas) DrawPath(path *gg.Path, paint *gg.Paint, style Style) error {
	dc := c.dc

	prevBrush := dc.FillBrush()
	prevStroke := dc.GetStroke()
	defer func() {
		dc.SetFillBrush(prevBrush)
		dc.SetStroke(prevStroke)
	}()

	dc.ClearPath()
	replay(dc, path)

	dc.SetFillBrush(paint.GetBrush())
	switch style {
	case StyleFill:
		dc.SetFillRule(paint.FillRule)
		defer dc.SetFillRule(gg.FillRuleNonZero)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("rotor: fill path: %w", err)
		}
	case StyleStroke:
		dc.SetLineWidth(paint.LineWidth)
		dc.SetLineCap(paint.LineCap)
		dc.SetLineJoin(paint.LineJoin)
		dc.SetMiterLimit(paint.MiterLimit)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("rotor: stroke path: %w", err)
		}
	default:
		dc.ClearPath()
		return fmt.Errorf("rotor: unknown paint style %v", style)
	}
	return nil
}

// replay appends the elements of path to the context's current path.
func replay(dc *gg.Context, path *gg.Path) {
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dc.ClosePath()
		}
	}
}
