// Package label places text labels on a chart without overlap.
//
// Each label is proposed once, with the screen-space box it will occupy.
// The [Engine] rejects boxes that would be clipped by the drawable area and,
// when collision suppression is on, boxes that overlap an already accepted
// label. Accepted labels are never removed, so whatever is plotted first
// keeps contested space. Callers set priority through plot order.
//
// After all labels are placed, [Engine.Relax] can nudge the accepted set
// apart with a bounded force-directed pass.
package label

import "fmt"

// Point is a screen-space position in pixels, y down.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned rectangle in pixels with X0 <= X1 and Y0 <= Y1.
type Box struct {
	X0, Y0, X1, Y1 float64
}

// BoxAt returns a w by h box with its top-left corner at (x, y).
func BoxAt(x, y, w, h float64) Box {
	return Box{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

func (b Box) Width() float64  { return b.X1 - b.X0 }
func (b Box) Height() float64 { return b.Y1 - b.Y0 }

// Center returns the midpoint of b.
func (b Box) Center() Point {
	return Point{X: (b.X0 + b.X1) / 2, Y: (b.Y0 + b.Y1) / 2}
}

// Translate returns b moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{X0: b.X0 + dx, Y0: b.Y0 + dy, X1: b.X1 + dx, Y1: b.Y1 + dy}
}

// Intersects reports whether b and o share positive area. Boxes that only
// touch along an edge or at a corner do not intersect.
func (b Box) Intersects(o Box) bool {
	return b.X0 < o.X1 && o.X0 < b.X1 && b.Y0 < o.Y1 && o.Y0 < b.Y1
}

// Contains reports whether o lies entirely inside b, edges included.
func (b Box) Contains(o Box) bool {
	return o.X0 >= b.X0 && o.X1 <= b.X1 && o.Y0 >= b.Y0 && o.Y1 <= b.Y1
}

// overlap returns the intersection extents of b and o along each axis.
func (b Box) overlap(o Box) (float64, float64) {
	return min(b.X1, o.X1) - max(b.X0, o.X0), min(b.Y1, o.Y1) - max(b.Y0, o.Y0)
}

// Outcome is the result of proposing a label.
type Outcome int

const (
	Accepted Outcome = iota
	RejectedClipped
	RejectedCollision
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case RejectedClipped:
		return "rejected_clipped"
	case RejectedCollision:
		return "rejected_collision"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Placed is an accepted label.
type Placed struct {
	Text   string
	Anchor Point
	Box    Box
}

// Stats counts proposals by outcome.
type Stats struct {
	Accepted  int `json:"accepted"`
	Clipped   int `json:"clipped"`
	Collision int `json:"collision"`
}

// Engine holds the accepted labels of one chart. It is not safe for
// concurrent use.
type Engine struct {
	area     Box
	suppress bool
	placed   []Placed
	stats    Stats
}

// NewEngine returns an engine for the drawable area. With suppress set,
// labels overlapping an accepted label are rejected.
func NewEngine(area Box, suppress bool) *Engine {
	return &Engine{area: area, suppress: suppress}
}

// Area returns the drawable area.
func (e *Engine) Area() Box { return e.area }

// Propose decides whether a label may be drawn. Only Accepted labels are
// recorded.
func (e *Engine) Propose(text string, anchor Point, box Box) Outcome {
	if !e.area.Contains(box) {
		e.stats.Clipped++
		return RejectedClipped
	}
	if e.suppress && e.Collides(box) {
		e.stats.Collision++
		return RejectedCollision
	}
	e.placed = append(e.placed, Placed{Text: text, Anchor: anchor, Box: box})
	e.stats.Accepted++
	return Accepted
}

// Collides reports whether box overlaps any accepted label.
func (e *Engine) Collides(box Box) bool {
	for _, p := range e.placed {
		if p.Box.Intersects(box) {
			return true
		}
	}
	return false
}

// Placed returns a copy of the accepted labels in acceptance order.
func (e *Engine) Placed() []Placed {
	out := make([]Placed, len(e.placed))
	copy(out, e.placed)
	return out
}

// Len returns the number of accepted labels.
func (e *Engine) Len() int { return len(e.placed) }

// Stats returns proposal counts.
func (e *Engine) Stats() Stats { return e.stats }

// Overlaps counts pairs of labels whose boxes intersect.
func Overlaps(labels []Placed) int {
	n := 0
	for i := range labels {
		for j := i + 1; j < len(labels); j++ {
			if labels[i].Box.Intersects(labels[j].Box) {
				n++
			}
		}
	}
	return n
}
