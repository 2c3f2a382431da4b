package render

import "math"

// Symbol is a marker shape.
type Symbol string

const (
	SymbolPoint      Symbol = "point"
	SymbolCircle     Symbol = "circle"
	SymbolSquare     Symbol = "square"
	SymbolDiamond    Symbol = "diamond"
	SymbolTriangle   Symbol = "triangle"
	SymbolPlus       Symbol = "plus"
	SymbolStar       Symbol = "star"
	SymbolCirclePlus Symbol = "circle_plus"
	SymbolEllipse    Symbol = "ellipse"
)

// Symbols lists every marker shape.
var Symbols = []Symbol{
	SymbolPoint, SymbolCircle, SymbolSquare, SymbolDiamond, SymbolTriangle,
	SymbolPlus, SymbolStar, SymbolCirclePlus, SymbolEllipse,
}

// Marker is a symbol of Size pixels (its diameter) centered on a point.
// Sinks draw it through [Marker.Primitives].
type Marker struct {
	Z         int
	Center    Point
	Size      float64
	Symbol    Symbol
	Fill      string
	Edge      string
	EdgeWidth float64
	Alpha     float64
}

// Primitives expands the marker into polygons, circles and lines.
func (m Marker) Primitives() []Op {
	r := m.Size / 2
	cx, cy := m.Center.X, m.Center.Y
	poly := func(pts []Point) Polygon {
		return Polygon{Z: m.Z, Points: pts, Fill: m.Fill, Edge: m.Edge, Width: m.EdgeWidth, Alpha: m.Alpha}
	}
	circle := func(fill, edge string) Circle {
		return Circle{Z: m.Z, Center: m.Center, Radius: r, Fill: fill, Edge: edge, Width: m.EdgeWidth, Alpha: m.Alpha}
	}

	switch m.Symbol {
	case SymbolPoint:
		return []Op{circle(m.Fill, "")}
	case SymbolSquare:
		return []Op{poly(regular(cx, cy, r*math.Sqrt2, 4, math.Pi/4))}
	case SymbolDiamond:
		return []Op{poly(regular(cx, cy, r, 4, 0))}
	case SymbolTriangle:
		return []Op{poly(regular(cx, cy, r, 3, 0))}
	case SymbolStar:
		return []Op{poly(star(cx, cy, r, 0.382))}
	case SymbolEllipse:
		return []Op{poly(ellipse(cx, cy, r, r/2, 36))}
	case SymbolPlus:
		return m.plus(r)
	case SymbolCirclePlus:
		return append([]Op{circle(m.Fill, m.Edge)}, m.plus(r)...)
	}
	return []Op{circle(m.Fill, m.Edge)}
}

func (m Marker) plus(r float64) []Op {
	c := m.Edge
	if c == "" || c == "none" {
		c = m.Fill
	}
	w := m.EdgeWidth
	if w <= 0 {
		w = math.Max(1, m.Size/8)
	}
	cx, cy := m.Center.X, m.Center.Y
	return []Op{
		Polyline{Z: m.Z, Points: []Point{{cx - r, cy}, {cx + r, cy}}, Color: c, Width: w, Alpha: m.Alpha},
		Polyline{Z: m.Z, Points: []Point{{cx, cy - r}, {cx, cy + r}}, Color: c, Width: w, Alpha: m.Alpha},
	}
}

// regular returns an n-gon of circumradius r with its first vertex at the
// top, turned clockwise by rot radians.
func regular(cx, cy, r float64, n int, rot float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := rot + 2*math.Pi*float64(i)/float64(n)
		pts[i] = Point{X: cx + r*math.Sin(a), Y: cy - r*math.Cos(a)}
	}
	return pts
}

func star(cx, cy, r, inner float64) []Point {
	pts := make([]Point, 10)
	for i := range pts {
		rr := r
		if i%2 == 1 {
			rr = r * inner
		}
		a := math.Pi * float64(i) / 5
		pts[i] = Point{X: cx + rr*math.Sin(a), Y: cy - rr*math.Cos(a)}
	}
	return pts
}

func ellipse(cx, cy, rx, ry float64, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return pts
}
