// Package rotor draws shaded triangles and Wankel-style rotor shapes.
//
// # Overview
//
// rotor is a thin geometry layer on top of [github.com/gogpu/gg]. It places
// vertices on a circle, bends triangle sides into cubic curves for the rotor
// variant, and stretches circular radial gradients into ellipses to shade
// individual corners.
//
// # Quick Start
//
//	dc := gg.NewContext(720, 720)
//	c := rotor.NewContextCanvas(dc)
//
//	// Outline with a specular highlight
//	err := rotor.DrawTriangle(c, image.Pt(360, 360), 200, 90, gg.Hex("#3377ff"),
//	    rotor.WithWankel(true))
//
//	// Shade the top corner
//	err = rotor.DrawTriangle(c, image.Pt(360, 360), 200, 90, gg.Hex("#3377ff"),
//	    rotor.WithWankel(true), rotor.WithVertex(0))
//
// # Coordinate System
//
// Screen coordinates, as in gg:
//   - Origin (0,0) at top-left
//   - Y increases down
//   - Angles: 0 is east and increases counter-clockwise on screen,
//     so [PointInCircle] subtracts the sine term
//
// # Canvas
//
// Drawing routines take a [Canvas] rather than a *gg.Context so that paths
// and paints can be inspected. [ContextCanvas] adapts a gg context.
package rotor

// Version is the current version of the module.
const Version = "0.1.0"
