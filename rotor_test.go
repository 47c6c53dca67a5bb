package rotor

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

const epsilon = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func pointsEqual(a, b gg.Point, tol float64) bool {
	return almostEqual(a.X, b.X, tol) && almostEqual(a.Y, b.Y, tol)
}

// drawCall is one recorded DrawPath invocation.
type drawCall struct {
	path  *gg.Path
	paint *gg.Paint
	style Style
}

// recordingCanvas records every DrawPath call instead of rasterizing.
type recordingCanvas struct {
	width, height int
	calls         []drawCall
	err           error
}

func newRecordingCanvas(width, height int) *recordingCanvas {
	return &recordingCanvas{width: width, height: height}
}

func (c *recordingCanvas) Width() int  { return c.width }
func (c *recordingCanvas) Height() int { return c.height }

func (c *recordingCanvas) DrawPath(path *gg.Path, paint *gg.Paint, style Style) error {
	c.calls = append(c.calls, drawCall{path: path, paint: paint, style: style})
	return c.err
}

func (c *recordingCanvas) last(t *testing.T) drawCall {
	t.Helper()
	if len(c.calls) == 0 {
		t.Fatal("no DrawPath calls recorded")
	}
	return c.calls[len(c.calls)-1]
}

// countElements tallies path elements by kind.
func countElements(p *gg.Path) (moves, lines, cubics, closes int) {
	for _, e := range p.Elements() {
		switch e.(type) {
		case gg.MoveTo:
			moves++
		case gg.LineTo:
			lines++
		case gg.CubicTo:
			cubics++
		case gg.Close:
			closes++
		}
	}
	return
}
