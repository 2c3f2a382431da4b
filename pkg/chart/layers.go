package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/starchart/pkg/catalog"
	"github.com/matzehuels/starchart/pkg/celestial"
	"github.com/matzehuels/starchart/pkg/ephemeris"
	"github.com/matzehuels/starchart/pkg/errors"
	"github.com/matzehuels/starchart/pkg/style"
)

// Legend labels registered by the built-in layers.
const (
	LegendStar   = "Star"
	LegendDSO    = "Deep Sky Object"
	LegendPlanet = "Planet"
	LegendMoon   = "Moon"
	LegendSun    = "Sun"
)

// StarOptions configures the star layer.
type StarOptions struct {
	// Catalog defaults to catalog.Builtin().
	Catalog *catalog.Catalog

	// Limit is the faintest magnitude drawn. Defaults to 6.
	Limit float64

	// LabelLimit is the faintest magnitude labeled. Defaults to 2.1.
	LabelLimit float64
}

// StarSize returns the marker diameter in points for a star of magnitude
// mag. Brighter stars grow faster so the first-magnitude stars stand out.
func StarSize(mag, scale float64) float64 {
	var area float64
	switch {
	case mag < 2:
		area = math.Pow(8-mag, 2.56)
	case mag < 8:
		area = math.Pow(8-mag, 1.68)
	default:
		area = 2
	}
	return math.Sqrt(area * scale)
}

// Stars plots catalog stars brightest first, so bright star names win
// label collisions. It returns the number drawn.
func (s *Session) Stars(opts StarOptions) int {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Builtin()
	}
	if opts.Limit == 0 {
		opts.Limit = 6
	}
	if opts.LabelLimit == 0 {
		opts.LabelLimit = 2.1
	}

	st := s.style.Star
	n := 0
	for _, star := range cat.Stars(opts.Limit, s) {
		obj := Object{RA: star.RA, Dec: star.Dec, Style: st, Legend: LegendStar}
		if star.Magnitude <= opts.LabelLimit {
			obj.Name = star.Name
		}
		if s.plotObject(obj, s.px(StarSize(star.Magnitude, st.Marker.Size))) {
			n++
		}
	}
	s.logger.Debug("plotted stars", "count", n, "limit", opts.Limit)
	return n
}

// DSOOptions configures the deep sky object layer.
type DSOOptions struct {
	Catalog *catalog.Catalog

	// Limit is the faintest magnitude drawn. Defaults to 8.
	Limit float64

	// IDs plots exactly these objects, ignoring Limit. Zenith charts
	// default to a short list of showpiece objects.
	IDs []string
}

// DSOs plots deep sky objects and returns the number drawn.
func (s *Session) DSOs(opts DSOOptions) (int, error) {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Builtin()
	}
	if opts.Limit == 0 {
		opts.Limit = 8
	}

	var dsos []catalog.DSO
	switch {
	case len(opts.IDs) > 0:
		for _, id := range opts.IDs {
			d, ok := cat.DSO(id)
			if !ok {
				return 0, errors.New(errors.ErrCodeNotFound, "unknown deep sky object %q", id)
			}
			dsos = append(dsos, d)
		}
	case s.kind.Name() == "zenith":
		dsos = cat.ZenithDSOs(nil)
	default:
		dsos = cat.DSOs(opts.Limit, nil)
	}

	n := 0
	for _, d := range dsos {
		legend := catalog.LegendLabel(d.Type)
		if legend == "" {
			legend = LegendDSO
		}
		if s.PlotObject(Object{Name: d.ID, RA: d.RA, Dec: d.Dec, Style: s.dsoStyle(d.Type), Legend: legend}) {
			n++
		}
	}
	return n, nil
}

func (s *Session) dsoStyle(t catalog.DSOType) style.ObjectStyle {
	switch catalog.LegendLabel(t) {
	case catalog.LegendGalaxy:
		return s.style.Galaxy
	case catalog.LegendNebula:
		return s.style.Nebula
	case catalog.LegendOpenCluster:
		return s.style.OpenCluster
	case catalog.LegendGlobularCluster:
		return s.style.GlobularCluster
	}
	return s.style.DSO
}

// Constellations draws stick figures and their names. A segment is drawn
// when either end is in bounds; a name is drawn when the figure's centroid
// is.
func (s *Session) Constellations(cat *catalog.Catalog) {
	if cat == nil {
		cat = catalog.Builtin()
	}
	cs := s.style.Constellation
	for _, c := range cat.ConstellationLines() {
		for _, l := range c.Lines {
			s.PlotPath(l[:], cs.Line)
		}
	}
	// Names go after every line so they are judged against star labels only.
	for _, c := range cat.ConstellationLines() {
		centroid := c.Centroid()
		s.PlotTextCentered(strings.ToUpper(c.Name), centroid.RA, centroid.Dec, cs.Label)
	}
}

// Planets plots the planets at the session's time.
func (s *Session) Planets(p ephemeris.Provider) error {
	pos, err := p.Positions(s.when, ephemeris.Planets...)
	if err != nil {
		return err
	}
	for _, b := range ephemeris.Planets {
		at, ok := pos[b]
		if !ok {
			continue
		}
		s.PlotObject(Object{
			Name:   strings.ToUpper(b.Title()),
			RA:     at.RA,
			Dec:    at.Dec,
			Style:  s.style.Planets,
			Legend: LegendPlanet,
		})
	}
	return nil
}

// Moon plots the Moon at the session's time.
func (s *Session) Moon(p ephemeris.Provider) error {
	return s.body(p, ephemeris.Moon, s.style.Moon, LegendMoon)
}

// Sun plots the Sun at the session's time.
func (s *Session) Sun(p ephemeris.Provider) error {
	return s.body(p, ephemeris.Sun, s.style.Sun, LegendSun)
}

func (s *Session) body(p ephemeris.Provider, b ephemeris.Body, st style.ObjectStyle, legend string) error {
	pos, err := p.Positions(s.when, b)
	if err != nil {
		return err
	}
	at, ok := pos[b]
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "no position for %s", b)
	}
	s.PlotObject(Object{Name: strings.ToUpper(b.Title()), RA: at.RA, Dec: at.Dec, Style: st, Legend: legend})
	return nil
}

// Ecliptic draws the ecliptic and labels it at up to three points.
func (s *Session) Ecliptic() {
	es := s.style.Ecliptic
	path := celestial.EclipticPath(1)
	s.PlotPath(path, es.Line)
	s.labelPath(path, "ECLIPTIC", -0.4, es.Label)
}

// CelestialEquator draws the celestial equator and labels it.
func (s *Session) CelestialEquator() {
	cs := s.style.CelestialEquator
	path := celestial.EquatorPath(0.25)
	s.PlotPath(path, cs.Line)
	s.labelPath(path, "CELESTIAL EQUATOR", 0.4, cs.Label)
}

// labelPath spreads text along the in-bounds part of a path, shifted dDec
// degrees off the line.
func (s *Session) labelPath(path []celestial.Coord, text string, dDec float64, ls style.LabelStyle) {
	var in []celestial.Coord
	for _, p := range path {
		if s.kind.InBounds(p.RA, p.Dec) {
			in = append(in, p)
		}
	}
	if len(in) <= 4 {
		return
	}
	step := max(len(in)/3, 1)
	for i := 0; i < len(in); i += step {
		s.PlotText(text, in[i].RA, in[i].Dec+dDec, ls)
	}
}

// GridOptions configures the coordinate grid.
type GridOptions struct {
	// RAStep is the spacing of hour circles in hours. Defaults to 1.
	RAStep float64

	// DecStep is the spacing of declination parallels in degrees.
	// Defaults to 10.
	DecStep float64
}

// GridLines draws hour circles and declination parallels. Only map charts
// have a grid.
func (s *Session) GridLines(opts GridOptions) error {
	m, ok := s.kind.(*mapKind)
	if !ok {
		return errors.New(errors.ErrCodeUnsupported, "grid lines are not available on %s charts", s.kind.Name())
	}
	if opts.RAStep <= 0 {
		opts.RAStep = 1
	}
	if opts.DecStep <= 0 {
		opts.DecStep = 10
	}
	gs := s.style.GridLines
	center := m.vp.Center()

	for ra := 0.0; ra < 24; ra += opts.RAStep {
		var path []celestial.Coord
		for dec := -90.0; dec <= 90; dec++ {
			path = append(path, celestial.Coord{RA: ra, Dec: dec})
		}
		s.PlotPath(path, gs.Line)
		s.PlotText(fmt.Sprintf("%gh", ra), ra, center.Dec, gs.Label)
	}
	for dec := -90 + opts.DecStep; dec < 90; dec += opts.DecStep {
		var path []celestial.Coord
		for ra := 0.0; ra <= 24; ra += 0.1 {
			path = append(path, celestial.Coord{RA: ra, Dec: dec})
		}
		s.PlotPath(path, gs.Line)
		s.PlotText(fmt.Sprintf("%+g°", dec), center.RA, dec, gs.Label)
	}
	return nil
}

// Legend turns on the legend box, drawn when the canvas is composed.
func (s *Session) Legend() { s.showLegend = true }
