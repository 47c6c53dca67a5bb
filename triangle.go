package rotor

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
)

// PenSize is the minimum stroke width in pixels.
const PenSize = 1.0

const (
	// vertexStep is the angle between consecutive triangle vertices.
	vertexStep = 120.0

	// innerRadiusScale places the rotor flank control points inside the
	// vertex circle.
	innerRadiusScale = 0.9
)

// vertexFade is the colour vertex gradients fade to: transparent blue.
var vertexFade = gg.RGBA{R: 0, G: 0, B: 1, A: 0}

// StrokeWidth returns the outline width for a canvas of the given width.
// The width scales with the canvas, 1/360 of it, but never drops below
// PenSize.
func StrokeWidth(canvasWidth int) float64 {
	return math.Max(PenSize, float64(canvasWidth)/360)
}

// SideLength returns the side length of the equilateral triangle inscribed
// in a circle of the given radius.
func SideLength(radius float64) float64 {
	delta := Radians(vertexStep)
	return radius / math.Cos((math.Pi-delta)/2) * 2
}

// VertexRadii returns the ellipse radii of the gradient that shades the
// given vertex of a triangle with the given side length.
//
// Vertices 0 and 2 share one tuning and vertex 1 has its own. The
// constants are visual choices and are kept as is.
//
// VertexRadii panics if index is not 0, 1 or 2.
func VertexRadii(index int, side float64, wankel bool) Radii {
	switch index {
	case 0, 2:
		if wankel {
			return Radii{X: 0.36 * side, Y: 0.404 * side}
		}
		return Radii{X: 0.30 * side, Y: 0.60 * side}
	case 1:
		if wankel {
			return Radii{X: 0.404 * side, Y: 0.50 * side}
		}
		return Radii{X: 0.420 * side, Y: 0.50 * side}
	default:
		panic(fmt.Sprintf("rotor: invalid vertex index %d for triangle", index))
	}
}

// TrianglePath builds the closed outline of a triangle inscribed in the
// circle at center, with its first vertex at degrees.
//
// With wankel set, every side is a cubic curve whose control points sit at
// one and two thirds of the step on a circle 0.9 times the radius, which
// approximates the flank of a Wankel rotor.
func TrianglePath(center gg.Point, radius, degrees float64, wankel bool) *gg.Path {
	inner := radius * innerRadiusScale
	delta := Radians(vertexStep)
	alpha := Radians(degrees)

	path := gg.NewPath()
	for i := 0; i < 4; i++ {
		v := PointInCircle(center, radius, alpha)
		switch {
		case i == 0:
			path.MoveTo(v.X, v.Y)
		case wankel:
			c1 := PointInCircle(center, inner, alpha-2*delta/3)
			c2 := PointInCircle(center, inner, alpha-delta/3)
			path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, v.X, v.Y)
		default:
			path.LineTo(v.X, v.Y)
		}
		alpha += delta
	}
	path.Close()
	return path
}

// TriangleOption configures DrawTriangle.
type TriangleOption func(*triangleOptions)

type triangleOptions struct {
	vertex    int
	hasVertex bool
	wankel    bool
}

// WithVertex fills the region around vertex index with a gradient instead
// of stroking the outline. Valid indices are 0, 1 and 2.
func WithVertex(index int) TriangleOption {
	return func(o *triangleOptions) {
		o.vertex = index
		o.hasVertex = true
	}
}

// WithWankel selects the curved rotor outline.
func WithWankel(wankel bool) TriangleOption {
	return func(o *triangleOptions) {
		o.wankel = wankel
	}
}

// VertexPaint returns the fill paint that shades one vertex.
// It panics on an invalid index, see VertexRadii.
func VertexPaint(center gg.Point, radius, degrees float64, index int, col gg.RGBA, wankel bool) *gg.Paint {
	radii := VertexRadii(index, SideLength(radius), wankel)
	at := PointInCircle(center, radius, Radians(degrees+vertexStep*float64(index)))

	paint := gg.NewPaint()
	SetGradient(paint, at, radii, Gradient{From: col, To: vertexFade})
	return paint
}

// OutlinePaint returns the stroke paint for a triangle outline on a canvas
// of the given width. A white highlight centred above the middle of the
// shape fades into col, like a reflection on the top edge.
func OutlinePaint(center gg.Point, radius float64, canvasWidth int, col gg.RGBA) *gg.Paint {
	paint := gg.NewPaint()
	paint.Antialias = true
	paint.LineWidth = StrokeWidth(canvasWidth)
	paint.LineJoin = gg.LineJoinBevel

	highlight := gg.NewRadialGradientBrush(center.X, center.Y-0.5*radius, 0, 0.5*radius).
		AddColorStop(0, gg.White).
		AddColorStop(1, col).
		SetExtend(gg.ExtendPad)
	paint.SetBrush(highlight)
	return paint
}

// DrawTriangle draws a triangle or rotor inscribed in the circle of the
// given radius around center, its first vertex at degrees.
//
// By default the outline is stroked. WithVertex fills one corner with a
// gradient instead. DrawTriangle panics if that vertex index is not 0, 1
// or 2; errors from the canvas are returned.
func DrawTriangle(c Canvas, center image.Point, radius int, degrees float64, col gg.RGBA, opts ...TriangleOption) error {
	var o triangleOptions
	for _, opt := range opts {
		opt(&o)
	}

	ctr := gg.Pt(float64(center.X), float64(center.Y))
	r := float64(radius)

	var (
		paint *gg.Paint
		style Style
	)
	if o.hasVertex {
		paint = VertexPaint(ctr, r, degrees, o.vertex, col, o.wankel)
		style = StyleFill
	} else {
		paint = OutlinePaint(ctr, r, c.Width(), col)
		style = StyleStroke
	}

	Logger().Debug("draw triangle",
		"center", center, "radius", radius, "degrees", degrees,
		"vertex", vertexAttr(o), "wankel", o.wankel, "style", style)

	if err := c.DrawPath(TrianglePath(ctr, r, degrees, o.wankel), paint, style); err != nil {
		return fmt.Errorf("rotor: draw triangle: %w", err)
	}
	return nil
}

func vertexAttr(o triangleOptions) any {
	if !o.hasVertex {
		return "none"
	}
	return o.vertex
}

// DrawShaded draws the complete shaded figure: the three vertex gradients
// followed by the highlighted outline on top.
func DrawShaded(c Canvas, center image.Point, radius int, degrees float64, col gg.RGBA, wankel bool) error {
	for i := 0; i < 3; i++ {
		if err := DrawTriangle(c, center, radius, degrees, col, WithVertex(i), WithWankel(wankel)); err != nil {
			return err
		}
	}
	return DrawTriangle(c, center, radius, degrees, col, WithWankel(wankel))
}
