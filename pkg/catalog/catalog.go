// Package catalog provides the built-in star, deep sky object and
// constellation data that charts draw from.
//
// The data is small and in-memory: named bright stars, the Messier catalog
// and stick figures for well-known constellations. Queries filter by a
// magnitude ceiling and an optional [Bounds] predicate, so a chart only
// receives what it can show.
package catalog

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/matzehuels/starchart/pkg/celestial"
)

// Bounds reports whether a position is drawable. viewport.Resolver and
// chart.Session satisfy it. A nil Bounds accepts everything.
type Bounds interface {
	InBounds(ra, dec float64) bool
}

// Star is a named star.
type Star struct {
	ID        string
	Name      string
	RA        float64 // hours
	Dec       float64 // degrees
	Magnitude float64
}

// Coord returns the star's position.
func (s Star) Coord() celestial.Coord { return celestial.Coord{RA: s.RA, Dec: s.Dec} }

// DSOType is a deep sky object type, named as in OpenNGC.
type DSOType string

const (
	OpenCluster      DSOType = "Open Cluster"
	GlobularCluster  DSOType = "Globular Cluster"
	Galaxy           DSOType = "Galaxy"
	GalaxyPair       DSOType = "Galaxy Pair"
	GalaxyTriplet    DSOType = "Galaxy Triplet"
	GalaxyGroup      DSOType = "Group of galaxies"
	Nebula           DSOType = "Nebula"
	PlanetaryNebula  DSOType = "Planetary Nebula"
	EmissionNebula   DSOType = "Emission Nebula"
	ClusterNebula    DSOType = "Star cluster + Nebula"
	ReflectionNebula DSOType = "Reflection Nebula"
	SupernovaRemnant DSOType = "Supernova remnant"
	Association      DSOType = "Association of stars"
	DoubleStar       DSOType = "Double star"
)

// Legend categories returned by LegendLabel.
const (
	LegendGalaxy          = "Galaxy"
	LegendNebula          = "Nebula"
	LegendOpenCluster     = "Open Cluster"
	LegendGlobularCluster = "Globular Cluster"
)

// LegendLabel maps a DSO type to its legend category, or "" if the type
// has none.
func LegendLabel(t DSOType) string {
	switch t {
	case Galaxy, GalaxyPair, GalaxyTriplet, GalaxyGroup:
		return LegendGalaxy
	case Nebula, PlanetaryNebula, EmissionNebula, ClusterNebula, ReflectionNebula, SupernovaRemnant:
		return LegendNebula
	case OpenCluster, Association:
		return LegendOpenCluster
	case GlobularCluster:
		return LegendGlobularCluster
	}
	return ""
}

// DSO is a deep sky object.
type DSO struct {
	ID        string
	Name      string
	Type      DSOType
	RA        float64
	Dec       float64
	Magnitude float64
}

// Coord returns the object's position.
func (d DSO) Coord() celestial.Coord { return celestial.Coord{RA: d.RA, Dec: d.Dec} }

// Constellation is a stick figure: a set of line segments between stars.
type Constellation struct {
	Name  string
	Lines [][2]celestial.Coord
}

// Centroid returns the mean of the segment endpoints, averaging RA on the
// circle so figures that straddle 0h stay together.
func (c Constellation) Centroid() celestial.Coord {
	var pts []celestial.Coord
	for _, l := range c.Lines {
		pts = append(pts, l[0], l[1])
	}
	return celestial.Mean(pts)
}

// Catalog is an immutable set of stars, DSOs and constellations.
type Catalog struct {
	stars          []Star
	dsos           []DSO
	constellations []Constellation
	byName         map[string]Star
	byID           map[string]DSO
}

// New builds a catalog. Stars are ordered brightest first and DSOs by
// catalog number.
func New(stars []Star, dsos []DSO, constellations []Constellation) *Catalog {
	c := &Catalog{
		stars:          slices.Clone(stars),
		dsos:           slices.Clone(dsos),
		constellations: slices.Clone(constellations),
		byName:         make(map[string]Star, len(stars)),
		byID:           make(map[string]DSO, len(dsos)),
	}
	slices.SortStableFunc(c.stars, func(a, b Star) int { return cmp.Compare(a.Magnitude, b.Magnitude) })
	slices.SortStableFunc(c.dsos, func(a, b DSO) int { return compareIDs(a.ID, b.ID) })
	for _, s := range c.stars {
		c.byName[strings.ToLower(s.Name)] = s
	}
	for _, d := range c.dsos {
		c.byID[strings.ToUpper(d.ID)] = d
	}
	return c
}

var (
	builtinOnce sync.Once
	builtin     *Catalog
)

// Builtin returns the embedded catalog.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		c := New(brightStars, messier, nil)
		c.constellations = figures(c)
		builtin = c
	})
	return builtin
}

// Stars returns stars at or brighter than limit that pass b, brightest
// first.
func (c *Catalog) Stars(limit float64, b Bounds) []Star {
	var out []Star
	for _, s := range c.stars {
		if s.Magnitude <= limit && inBounds(b, s.RA, s.Dec) {
			out = append(out, s)
		}
	}
	return out
}

// DSOs returns objects at or brighter than limit that pass b, in catalog
// order.
func (c *Catalog) DSOs(limit float64, b Bounds) []DSO {
	var out []DSO
	for _, d := range c.dsos {
		if d.Magnitude <= limit && inBounds(b, d.RA, d.Dec) {
			out = append(out, d)
		}
	}
	return out
}

// ConstellationLines returns every stick figure.
func (c *Catalog) ConstellationLines() []Constellation {
	return slices.Clone(c.constellations)
}

// Star looks a star up by name, case-insensitively.
func (c *Catalog) Star(name string) (Star, bool) {
	s, ok := c.byName[strings.ToLower(name)]
	return s, ok
}

// DSO looks an object up by ID, case-insensitively.
func (c *Catalog) DSO(id string) (DSO, bool) {
	d, ok := c.byID[strings.ToUpper(id)]
	return d, ok
}

// zenithIDs are the objects plotted on zenith charts by default.
var zenithIDs = []string{"M5", "M13", "M23", "M31", "M42", "M44", "M45", "M47", "M51", "M55", "M83", "M93", "M104"}

// ZenithDSOs returns the default zenith subset that passes b.
func (c *Catalog) ZenithDSOs(b Bounds) []DSO {
	var out []DSO
	for _, id := range zenithIDs {
		if d, ok := c.DSO(id); ok && inBounds(b, d.RA, d.Dec) {
			out = append(out, d)
		}
	}
	return out
}

func inBounds(b Bounds, ra, dec float64) bool {
	return b == nil || b.InBounds(ra, dec)
}

// compareIDs orders "M2" before "M10".
func compareIDs(a, b string) int {
	pa, na := splitID(a)
	pb, nb := splitID(b)
	if c := cmp.Compare(pa, pb); c != 0 {
		return c
	}
	return cmp.Compare(na, nb)
}

func splitID(id string) (string, int) {
	i := strings.IndexFunc(id, func(r rune) bool { return r >= '0' && r <= '9' })
	if i < 0 {
		return id, 0
	}
	n, err := strconv.Atoi(id[i:])
	if err != nil {
		return id, 0
	}
	return id[:i], n
}
