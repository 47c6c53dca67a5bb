package rotor

import (
	"fmt"

	"github.com/gogpu/gg"
)

// RenderFrame strokes a fixed white segment from (100,100) to (200,200).
// It is a smoke test for a canvas, not a real scene.
func RenderFrame(c Canvas) error {
	paint := gg.NewPaint()
	paint.Antialias = true
	paint.LineWidth = StrokeWidth(c.Width())
	paint.LineJoin = gg.LineJoinBevel
	paint.SetBrush(gg.Solid(gg.White))

	path := gg.NewPath()
	path.MoveTo(100, 100)
	path.LineTo(200, 200)
	path.Close()

	if err := c.DrawPath(path, paint, StyleStroke); err != nil {
		return fmt.Errorf("rotor: render frame: %w", err)
	}
	return nil
}
