package rotor

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestPointInCircle(t *testing.T) {
	tests := []struct {
		name    string
		center  gg.Point
		radius  float64
		radians float64
		want    gg.Point
	}{
		{"east", gg.Pt(5, 5), 10, 0, gg.Pt(15, 5)},
		{"north is up", gg.Pt(5, 5), 10, math.Pi / 2, gg.Pt(5, -5)},
		{"west", gg.Pt(0, 0), 3, math.Pi, gg.Pt(-3, 0)},
		{"south is down", gg.Pt(100, 100), 20, 3 * math.Pi / 2, gg.Pt(100, 120)},
		{"zero radius", gg.Pt(7, -2), 0, 1.234, gg.Pt(7, -2)},
		{"negative radius mirrors", gg.Pt(0, 0), -4, 0, gg.Pt(-4, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointInCircle(tt.center, tt.radius, tt.radians)
			if !pointsEqual(got, tt.want, 1e-9) {
				t.Errorf("PointInCircle(%v, %v, %v) = %v, want %v",
					tt.center, tt.radius, tt.radians, got, tt.want)
			}
		})
	}
}

func TestPointInCirclePeriodic(t *testing.T) {
	center := gg.Pt(-12.5, 40)
	for _, r := range []float64{1, 10, 250} {
		for theta := -7.0; theta <= 7.0; theta += 0.37 {
			a := PointInCircle(center, r, theta)
			b := PointInCircle(center, r, theta+2*math.Pi)
			if !pointsEqual(a, b, 1e-9*r+1e-12) {
				t.Errorf("r=%v theta=%v: %v != %v after a full turn", r, theta, a, b)
			}
		}
	}
}

func TestPointInCircleDistance(t *testing.T) {
	center := gg.Pt(3, 4)
	for theta := 0.0; theta < 2*math.Pi; theta += 0.5 {
		p := PointInCircle(center, 9, theta)
		if d := math.Hypot(p.X-center.X, p.Y-center.Y); !almostEqual(d, 9, 1e-9) {
			t.Errorf("theta=%v: distance %v, want 9", theta, d)
		}
	}
}

func TestRadians(t *testing.T) {
	tests := []struct {
		degrees float64
		want    float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{120, 2 * math.Pi / 3},
		{180, math.Pi},
		{-360, -2 * math.Pi},
	}
	for _, tt := range tests {
		if got := Radians(tt.degrees); !almostEqual(got, tt.want, epsilon) {
			t.Errorf("Radians(%v) = %v, want %v", tt.degrees, got, tt.want)
		}
	}
}
