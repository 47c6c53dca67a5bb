// Package scene describes rotor drawings declaratively and renders them.
//
// A scene is a canvas size, an optional background and a list of
// triangles and text labels, usually loaded from a TOML file:
//
//	width = 720
//	height = 720
//	background = "#101820"
//
//	[[triangle]]
//	x = 360
//	y = 380
//	radius = 250
//	degrees = 90
//	color = "#3377ff"
//	wankel = true
//	shaded = true
//
//	[[label]]
//	text = "rotor"
//	x = 360
//	y = 680
//	size = 32
package scene

import (
	"errors"
	"fmt"
)

// Defaults applied to zero-valued scene fields.
const (
	DefaultWidth      = 720
	DefaultHeight     = 720
	DefaultColor      = "#3377ff"
	DefaultLabelColor = "#ffffff"
	DefaultLabelSize  = 24.0
)

// Validation errors. Use errors.Is to test for them.
var (
	ErrInvalidSize   = errors.New("scene: invalid size")
	ErrInvalidVertex = errors.New("scene: vertex index must be 0, 1 or 2")
	ErrInvalidColor  = errors.New("scene: invalid color")
	ErrShadedVertex  = errors.New("scene: shaded and vertex are mutually exclusive")
	ErrEmptyLabel    = errors.New("scene: label text is empty")
)

// Scene is a complete drawing.
type Scene struct {
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	Background string     `toml:"background,omitempty"`
	Frame      bool       `toml:"frame,omitempty"`
	Triangles  []Triangle `toml:"triangle,omitempty"`
	Labels     []Label    `toml:"label,omitempty"`

	// Scale is the factor applied by Scaled; 0 means 1. Render uses it to
	// draw the fixed-coordinate frame at the scene's original size.
	Scale int `toml:"-"`
}

// Triangle is one triangle or rotor. Vertex selects a single shaded
// corner; Shaded draws all three corners and the outline.
type Triangle struct {
	X       int     `toml:"x"`
	Y       int     `toml:"y"`
	Radius  int     `toml:"radius"`
	Degrees float64 `toml:"degrees"`
	Color   string  `toml:"color,omitempty"`
	Wankel  bool    `toml:"wankel,omitempty"`
	Shaded  bool    `toml:"shaded,omitempty"`
	Vertex  *int    `toml:"vertex,omitempty"`
}

// Label is a line of text centred on (X, Y).
type Label struct {
	Text  string  `toml:"text"`
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	Size  float64 `toml:"size"`
	Color string  `toml:"color,omitempty"`
}

// Default returns the built-in scene: a shaded rotor with a caption.
func Default() *Scene {
	return &Scene{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: "#101820",
		Triangles: []Triangle{{
			X:       DefaultWidth / 2,
			Y:       DefaultHeight/2 + 20,
			Radius:  250,
			Degrees: 90,
			Color:   DefaultColor,
			Wankel:  true,
			Shaded:  true,
		}},
		Labels: []Label{{
			Text:  "rotor",
			X:     DefaultWidth / 2,
			Y:     DefaultHeight - 40,
			Size:  32,
			Color: DefaultLabelColor,
		}},
	}
}

// applyDefaults fills zero-valued fields.
func (s *Scene) applyDefaults() {
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	for i := range s.Triangles {
		if s.Triangles[i].Color == "" {
			s.Triangles[i].Color = DefaultColor
		}
	}
	for i := range s.Labels {
		if s.Labels[i].Color == "" {
			s.Labels[i].Color = DefaultLabelColor
		}
		if s.Labels[i].Size == 0 {
			s.Labels[i].Size = DefaultLabelSize
		}
	}
}

// Validate reports the first problem found in s.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.Width, s.Height)
	}
	if s.Background != "" {
		if _, err := parseColor(s.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	for i, t := range s.Triangles {
		if err := t.validate(); err != nil {
			return fmt.Errorf("triangle %d: %w", i, err)
		}
	}
	for i, l := range s.Labels {
		if err := l.validate(); err != nil {
			return fmt.Errorf("label %d: %w", i, err)
		}
	}
	return nil
}

func (t Triangle) validate() error {
	if t.Radius < 0 {
		return fmt.Errorf("%w: radius %d", ErrInvalidSize, t.Radius)
	}
	if t.Vertex != nil {
		if t.Shaded {
			return ErrShadedVertex
		}
		if v := *t.Vertex; v < 0 || v > 2 {
			return fmt.Errorf("%w: got %d", ErrInvalidVertex, v)
		}
	}
	_, err := parseColor(t.Color)
	return err
}

func (l Label) validate() error {
	if l.Text == "" {
		return ErrEmptyLabel
	}
	if l.Size <= 0 {
		return fmt.Errorf("%w: font size %v", ErrInvalidSize, l.Size)
	}
	_, err := parseColor(l.Color)
	return err
}

func (s *Scene) scale() int {
	return max(s.Scale, 1)
}

// Scaled returns a copy of s with every length multiplied by k, for
// rendering at a higher resolution. Angles are unchanged. A factor below
// 1 is treated as 1.
func (s *Scene) Scaled(k int) *Scene {
	if k < 1 {
		k = 1
	}
	out := *s
	out.Scale = s.scale() * k
	out.Width *= k
	out.Height *= k

	out.Triangles = make([]Triangle, len(s.Triangles))
	for i, t := range s.Triangles {
		t.X *= k
		t.Y *= k
		t.Radius *= k
		if t.Vertex != nil {
			v := *t.Vertex
			t.Vertex = &v
		}
		out.Triangles[i] = t
	}

	out.Labels = make([]Label, len(s.Labels))
	for i, l := range s.Labels {
		f := float64(k)
		l.X *= f
		l.Y *= f
		l.Size *= f
		out.Labels[i] = l
	}
	return &out
}
