package render

import (
	"cmp"
	"image/color"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Point is a pixel position, y down.
type Point struct {
	X, Y float64
}

// Op is a drawable primitive.
type Op interface {
	z() int
}

// Polygon is a closed shape.
type Polygon struct {
	Z      int
	Points []Point
	Fill   string // hex color, empty or "none" for no fill
	Edge   string
	Width  float64
	Alpha  float64
	Dash   []float64
}

// Polyline is an open path.
type Polyline struct {
	Z      int
	Points []Point
	Color  string
	Width  float64
	Alpha  float64
	Dash   []float64
}

// Circle is a circle in pixel space.
type Circle struct {
	Z      int
	Center Point
	Radius float64
	Fill   string
	Edge   string
	Width  float64
	Alpha  float64
	Dash   []float64
}

// Text is a single line. X, Y is the left end of the baseline.
type Text struct {
	Z         int
	X, Y      float64
	Text      string
	Size      float64 // pixels
	Color     string
	Bold      bool
	Alpha     float64
	Halo      string // outline color drawn under the glyphs
	HaloWidth float64
}

func (p Polygon) z() int  { return p.Z }
func (p Polyline) z() int { return p.Z }
func (c Circle) z() int   { return c.Z }
func (t Text) z() int     { return t.Z }
func (m Marker) z() int   { return m.Z }

// Canvas is a display list.
type Canvas struct {
	Width      float64
	Height     float64
	Background string
	Title      string
	ID         string
	Ops        []Op
}

// NewCanvas returns an empty w by h canvas.
func NewCanvas(w, h float64, background string) *Canvas {
	return &Canvas{Width: w, Height: h, Background: background}
}

// Add appends primitives.
func (c *Canvas) Add(ops ...Op) {
	c.Ops = append(c.Ops, ops...)
}

// Len returns the number of primitives.
func (c *Canvas) Len() int { return len(c.Ops) }

// sorted returns the ops in draw order with markers expanded.
func (c *Canvas) sorted() []Op {
	out := make([]Op, 0, len(c.Ops))
	for _, op := range c.Ops {
		if m, ok := op.(Marker); ok {
			out = append(out, m.Primitives()...)
			continue
		}
		out = append(out, op)
	}
	slices.SortStableFunc(out, func(a, b Op) int { return cmp.Compare(a.z(), b.z()) })
	return out
}

// paint parses a hex color. It reports false for empty or "none" colors.
func paint(hex string, alpha float64) (color.NRGBA, bool) {
	if hex == "" || strings.EqualFold(hex, "none") {
		return color.NRGBA{}, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(opacity(alpha)*255 + 0.5)}, true
}

// opacity maps the zero value to fully opaque.
func opacity(a float64) float64 {
	if a <= 0 || a > 1 {
		return 1
	}
	return a
}
