package rotor

import (
	"math"

	"github.com/gogpu/gg"
)

// degreesInRadians converts degrees to radians by multiplication.
const degreesInRadians = math.Pi / 180

// Radians converts an angle in degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * degreesInRadians
}

// PointInCircle returns the point at the given angle on a circle.
// Angle 0 points east. Because the Y axis points down, positive angles
// turn counter-clockwise on screen.
func PointInCircle(center gg.Point, radius, radians float64) gg.Point {
	return gg.Point{
		X: center.X + radius*math.Cos(radians),
		Y: center.Y - radius*math.Sin(radians),
	}
}
