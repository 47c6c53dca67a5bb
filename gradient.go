package rotor

import "github.com/gogpu/gg"

// Gradient is a two-colour radial gradient, From at the centre and To at
// the rim.
type Gradient struct {
	From, To gg.RGBA
}

// Radii holds the horizontal and vertical radii of an ellipse.
type Radii struct {
	X, Y float64
}

// GradientMatrix maps the unit gradient space onto an ellipse: scale Y by
// radii.Y/radii.X, then translate to center.
func GradientMatrix(center gg.Point, radii Radii) gg.Matrix {
	return gg.Translate(center.X, center.Y).Multiply(gg.Scale(1, radii.Y/radii.X))
}

// EllipticalBrush returns a brush shading g over the ellipse at center.
//
// gg only provides circular radial gradients, so the brush samples a
// circle of radius radii.X at the origin through the inverse of
// GradientMatrix. Beyond the rim the To colour is held.
func EllipticalBrush(g Gradient, center gg.Point, radii Radii) gg.Brush {
	if radii.X == 0 || radii.Y == 0 {
		return gg.Solid(g.To)
	}

	circle := gg.NewRadialGradientBrush(0, 0, 0, radii.X).
		AddColorStop(0, g.From).
		AddColorStop(1, g.To).
		SetExtend(gg.ExtendPad)
	inv := GradientMatrix(center, radii).Invert()

	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		p := inv.TransformPoint(gg.Pt(x, y))
		return circle.ColorAt(p.X, p.Y)
	}).WithName("elliptical_gradient")
}

// SetGradient installs an elliptical gradient brush on p.
func SetGradient(p *gg.Paint, center gg.Point, radii Radii, g Gradient) {
	p.SetBrush(EllipticalBrush(g, center, radii))
}
