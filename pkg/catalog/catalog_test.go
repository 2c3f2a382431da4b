package catalog

import (
	"math"
	"testing"

	"github.com/matzehuels/starchart/pkg/viewport"
)

func TestBuiltinStarsBrightestFirst(t *testing.T) {
	stars := Builtin().Stars(99, nil)
	if len(stars) < 150 {
		t.Fatalf("Builtin has %d stars, want at least 150", len(stars))
	}
	if stars[0].Name != "Sirius" {
		t.Errorf("brightest star = %s, want Sirius", stars[0].Name)
	}
	for i := 1; i < len(stars); i++ {
		if stars[i].Magnitude < stars[i-1].Magnitude {
			t.Fatalf("stars[%d] %s (%.2f) brighter than stars[%d] %s (%.2f)",
				i, stars[i].Name, stars[i].Magnitude, i-1, stars[i-1].Name, stars[i-1].Magnitude)
		}
	}
	for _, s := range stars {
		if s.RA < 0 || s.RA >= 24 || s.Dec < -90 || s.Dec > 90 {
			t.Errorf("%s out of range: %v %v", s.Name, s.RA, s.Dec)
		}
	}
}

func TestStarsMagnitudeLimit(t *testing.T) {
	for _, s := range Builtin().Stars(1, nil) {
		if s.Magnitude > 1 {
			t.Errorf("%s magnitude %.2f above limit", s.Name, s.Magnitude)
		}
	}
}

func TestStarsBounds(t *testing.T) {
	v, err := viewport.New(4, 7, -20, 20)
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]bool{}
	for _, s := range Builtin().Stars(2, viewport.Resolver{Viewport: v}) {
		got[s.Name] = true
	}
	for _, want := range []string{"Rigel", "Betelgeuse", "Bellatrix", "Aldebaran"} {
		if !got[want] {
			t.Errorf("missing %s", want)
		}
	}
	if got["Vega"] || got["Canopus"] {
		t.Errorf("got stars outside the window: %v", got)
	}
}

func TestStarLookup(t *testing.T) {
	s, ok := Builtin().Star("vega")
	if !ok {
		t.Fatal("Vega not found")
	}
	if math.Abs(s.RA-18.61567) > 1e-4 {
		t.Errorf("Vega RA = %v, want 18.61567 hours", s.RA)
	}
	if _, ok := Builtin().Star("Nibiru"); ok {
		t.Error("found a star that does not exist")
	}
}

func TestDSOsInCatalogOrder(t *testing.T) {
	dsos := Builtin().DSOs(99, nil)
	if len(dsos) != 109 {
		t.Fatalf("len = %d, want 109", len(dsos))
	}
	if dsos[0].ID != "M1" || dsos[1].ID != "M2" || dsos[9].ID != "M10" {
		t.Errorf("order = %s, %s, ..., %s", dsos[0].ID, dsos[1].ID, dsos[9].ID)
	}
	if dsos[len(dsos)-1].ID != "M110" {
		t.Errorf("last = %s", dsos[len(dsos)-1].ID)
	}
	if _, ok := Builtin().DSO("m102"); ok {
		t.Error("M102 should be absent")
	}
	m31, ok := Builtin().DSO("m31")
	if !ok || m31.Type != Galaxy || m31.Name != "Andromeda Galaxy" {
		t.Errorf("M31 = %+v", m31)
	}
}

func TestDSOsMagnitudeLimit(t *testing.T) {
	for _, d := range Builtin().DSOs(5, nil) {
		if d.Magnitude > 5 {
			t.Errorf("%s magnitude %.1f above limit", d.ID, d.Magnitude)
		}
	}
}

func TestZenithDSOs(t *testing.T) {
	all := Builtin().ZenithDSOs(nil)
	if len(all) != 13 {
		t.Fatalf("len = %d, want 13", len(all))
	}
	if all[0].ID != "M5" || all[12].ID != "M104" {
		t.Errorf("got %s..%s", all[0].ID, all[12].ID)
	}

	north := viewport.Resolver{Viewport: viewport.Viewport{RAMin: 0, RAMax: 24, DecMin: 40, DecMax: 90}}
	for _, d := range Builtin().ZenithDSOs(north) {
		if d.Dec < 40 {
			t.Errorf("%s at dec %.1f passed a dec>=40 filter", d.ID, d.Dec)
		}
	}
}

func TestConstellationsResolve(t *testing.T) {
	cons := Builtin().ConstellationLines()
	if len(cons) != len(stickFigures) {
		t.Fatalf("resolved %d constellations, want %d", len(cons), len(stickFigures))
	}
	for i, c := range cons {
		if len(c.Lines) != len(stickFigures[i].segments) {
			t.Errorf("%s: %d of %d segments resolved", c.Name, len(c.Lines), len(stickFigures[i].segments))
		}
	}
}

func TestConstellationCentroid(t *testing.T) {
	var orion Constellation
	for _, c := range Builtin().ConstellationLines() {
		if c.Name == "Orion" {
			orion = c
		}
	}
	got := orion.Centroid()
	if got.RA < 5.2 || got.RA > 6 || got.Dec < -5 || got.Dec > 5 {
		t.Errorf("Orion centroid = %+v", got)
	}
}

func TestCentroidAcrossZero(t *testing.T) {
	var pegasus Constellation
	for _, c := range Builtin().ConstellationLines() {
		if c.Name == "Pegasus" {
			pegasus = c
		}
	}
	got := pegasus.Centroid()
	// Alpheratz sits at 0.14h and the rest near 23h; the mean stays near 23h.
	if got.RA < 22 || got.RA > 23.99 {
		t.Errorf("Pegasus centroid RA = %v", got.RA)
	}
}

func TestLegendLabel(t *testing.T) {
	tests := []struct {
		typ  DSOType
		want string
	}{
		{Galaxy, LegendGalaxy},
		{GalaxyPair, LegendGalaxy},
		{PlanetaryNebula, LegendNebula},
		{ClusterNebula, LegendNebula},
		{OpenCluster, LegendOpenCluster},
		{GlobularCluster, LegendGlobularCluster},
		{DoubleStar, ""},
	}
	for _, tt := range tests {
		if got := LegendLabel(tt.typ); got != tt.want {
			t.Errorf("LegendLabel(%q) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestNewDoesNotAliasInput(t *testing.T) {
	stars := []Star{{Name: "B", Magnitude: 2}, {Name: "A", Magnitude: 1}}
	c := New(stars, nil, nil)
	if stars[0].Name != "B" {
		t.Error("New reordered the caller's slice")
	}
	if got := c.Stars(5, nil); got[0].Name != "A" {
		t.Errorf("first = %s, want A", got[0].Name)
	}
}
