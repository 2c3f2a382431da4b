package label

import "testing"

var area = Box{X0: 0, Y0: 0, X1: 100, Y1: 100}

func TestBoxIntersects(t *testing.T) {
	a := Box{X0: 0, Y0: 0, X1: 10, Y1: 10}
	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"overlapping", Box{X0: 5, Y0: 5, X1: 15, Y1: 15}, true},
		{"inside", Box{X0: 2, Y0: 2, X1: 3, Y1: 3}, true},
		{"touching edge", Box{X0: 10, Y0: 0, X1: 20, Y1: 10}, false},
		{"touching corner", Box{X0: 10, Y0: 10, X1: 20, Y1: 20}, false},
		{"separate", Box{X0: 30, Y0: 30, X1: 40, Y1: 40}, false},
		{"zero width inside", Box{X0: 5, Y0: 2, X1: 5, Y1: 8}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("Intersects (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProposeClipping(t *testing.T) {
	e := NewEngine(area, true)
	tests := []struct {
		name string
		box  Box
		want Outcome
	}{
		{"inside", BoxAt(10, 10, 20, 5), Accepted},
		{"flush with edge", BoxAt(80, 95, 20, 5), Accepted},
		{"past right edge", BoxAt(90, 50, 20, 5), RejectedClipped},
		{"past top edge", BoxAt(40, -1, 20, 5), RejectedClipped},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Propose(tt.name, Point{}, tt.box); got != tt.want {
				t.Errorf("Propose = %v, want %v", got, tt.want)
			}
		})
	}
	if s := e.Stats(); s.Accepted != 2 || s.Clipped != 2 || s.Collision != 0 {
		t.Errorf("Stats = %+v", s)
	}
}

func TestClippingCheckedBeforeCollision(t *testing.T) {
	e := NewEngine(area, true)
	e.Propose("a", Point{}, BoxAt(85, 10, 15, 5))
	if got := e.Propose("b", Point{}, BoxAt(90, 10, 15, 5)); got != RejectedClipped {
		t.Errorf("Propose = %v, want %v", got, RejectedClipped)
	}
}

func TestFirstPlottedWins(t *testing.T) {
	first := BoxAt(10, 10, 30, 8)
	second := BoxAt(25, 12, 30, 8)

	for _, order := range [][2]string{{"alpha", "beta"}, {"beta", "alpha"}} {
		boxes := map[string]Box{order[0]: first, order[1]: second}
		e := NewEngine(area, true)
		if got := e.Propose(order[0], Point{}, boxes[order[0]]); got != Accepted {
			t.Fatalf("%s: first proposal = %v, want accepted", order[0], got)
		}
		if got := e.Propose(order[1], Point{}, boxes[order[1]]); got != RejectedCollision {
			t.Fatalf("%s: second proposal = %v, want rejected", order[1], got)
		}
		placed := e.Placed()
		if len(placed) != 1 || placed[0].Text != order[0] {
			t.Errorf("placed = %+v, want only %s", placed, order[0])
		}
	}
}

func TestProposeWithoutSuppression(t *testing.T) {
	e := NewEngine(area, false)
	e.Propose("a", Point{}, BoxAt(10, 10, 30, 8))
	if got := e.Propose("b", Point{}, BoxAt(12, 10, 30, 8)); got != Accepted {
		t.Errorf("Propose = %v, want accepted", got)
	}
	if n := Overlaps(e.Placed()); n != 1 {
		t.Errorf("Overlaps = %d, want 1", n)
	}
}

func TestPlacedIsACopy(t *testing.T) {
	e := NewEngine(area, true)
	e.Propose("a", Point{X: 1, Y: 2}, BoxAt(0, 0, 5, 5))
	p := e.Placed()
	p[0].Text = "changed"
	if e.Placed()[0].Text != "a" {
		t.Error("mutating Placed() result changed engine state")
	}
}

func TestRelaxSeparatesPair(t *testing.T) {
	e := NewEngine(area, false)
	e.Propose("a", Point{X: 0, Y: 0}, Box{X0: 0, Y0: 0, X1: 10, Y1: 10})
	e.Propose("b", Point{X: 5, Y: 2}, Box{X0: 5, Y0: 2, X1: 15, Y1: 12})

	res := e.Relax(RelaxOptions{})
	if res.Overlaps != 0 {
		t.Fatalf("Overlaps = %d, want 0", res.Overlaps)
	}
	if res.Iterations != 1 || res.Moved != 2 {
		t.Errorf("result = %+v, want 1 iteration moving 2 labels", res)
	}

	placed := e.Placed()
	a, b := placed[0].Box, placed[1].Box
	if a.X0 >= 0 || b.X0 <= 5 {
		t.Errorf("boxes moved the wrong way: a=%+v b=%+v", a, b)
	}
	if gap := b.X0 - a.X1; gap < DefaultGap-1e-9 {
		t.Errorf("gap = %v, want >= %v", gap, DefaultGap)
	}
	// Anchors are not moved.
	if placed[1].Anchor != (Point{X: 5, Y: 2}) {
		t.Errorf("anchor moved to %+v", placed[1].Anchor)
	}
}

func TestRelaxNoOverlapIsNoop(t *testing.T) {
	e := NewEngine(area, true)
	e.Propose("a", Point{}, BoxAt(0, 0, 10, 10))
	e.Propose("b", Point{}, BoxAt(20, 0, 10, 10))
	res := e.Relax(RelaxOptions{})
	if res.Iterations != 0 || res.Moved != 0 || res.Overlaps != 0 {
		t.Errorf("result = %+v, want zero", res)
	}
}

func TestRelaxRespectsBudget(t *testing.T) {
	e := NewEngine(area, false)
	for i := 0; i < 12; i++ {
		e.Propose("x", Point{}, BoxAt(40, 40, 20, 20))
	}
	res := e.Relax(RelaxOptions{Iterations: 3})
	if res.Iterations > 3 {
		t.Errorf("Iterations = %d, want <= 3", res.Iterations)
	}
	if res.Overlaps != Overlaps(e.Placed()) {
		t.Errorf("reported %d overlaps, engine has %d", res.Overlaps, Overlaps(e.Placed()))
	}
}

func TestOutcomeString(t *testing.T) {
	if Accepted.String() != "accepted" || RejectedCollision.String() != "rejected_collision" {
		t.Error("unexpected outcome names")
	}
	if Outcome(9).String() != "Outcome(9)" {
		t.Errorf("String() = %q", Outcome(9).String())
	}
}
