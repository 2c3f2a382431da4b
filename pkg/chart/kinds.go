package chart

import (
	"fmt"
	"math"
	"time"

	"github.com/matzehuels/starchart/pkg/celestial"
	"github.com/matzehuels/starchart/pkg/errors"
	"github.com/matzehuels/starchart/pkg/optics"
	"github.com/matzehuels/starchart/pkg/projection"
	"github.com/matzehuels/starchart/pkg/render"
	"github.com/matzehuels/starchart/pkg/viewport"
)

// =============================================================================
// Map
// =============================================================================

// MapOptions configures a map chart.
type MapOptions struct {
	Options

	// Projection defaults to Mercator. Zenith and Optic have their own
	// constructors.
	Projection projection.Kind

	// Viewport defaults to the whole sky.
	Viewport viewport.Viewport

	// Time positions the planets and Moon. Defaults to now.
	Time time.Time
}

type mapKind struct {
	proj     projection.Projection
	vp       viewport.Viewport
	resolver viewport.Resolver
	center   float64
	decLo    float64
	decHi    float64
	boundary []projection.Point
	extent   Extent
}

// boundarySamples is the number of points traced along each viewport edge.
const boundarySamples = 96

// NewMap starts a map chart.
func NewMap(opts MapOptions) (*Session, error) {
	kind := opts.Projection
	if kind == "" {
		kind = projection.Mercator
	}
	if kind == projection.Zenith || kind == projection.Optic {
		return nil, errors.New(errors.ErrCodeInvalidProjection, "%s is not a map projection", kind)
	}
	vp := opts.Viewport
	if vp == (viewport.Viewport{}) {
		vp = viewport.Full()
	}
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	proj, err := projection.New(kind, projection.Config{RACenter: vp.Center().RA})
	if err != nil {
		return nil, err
	}

	k := &mapKind{proj: proj, vp: vp, center: vp.Center().RA}
	if err := k.trace(); err != nil {
		return nil, err
	}
	k.resolver = viewport.Resolver{
		Viewport:  vp,
		Validator: proj,
		Extra:     func(_, dec float64) bool { return dec >= k.decLo && dec <= k.decHi },
	}
	return newSession(k, opts.Options, opts.Time, nil)
}

func (k *mapKind) Name() string { return "map" }

func (k *mapKind) Project(ra, dec float64) projection.Point { return k.proj.Project(ra, dec) }

func (k *mapKind) InBounds(ra, dec float64) bool { return k.resolver.InBounds(ra, dec) }

func (k *mapKind) Extent() Extent { return k.extent }

// canDraw keeps path vertices near the projected domain so lines leaving
// the chart do not shoot off toward a Mercator pole.
func (k *mapKind) canDraw(ra, dec float64) bool {
	return k.proj.Valid(ra, dec) && dec >= k.decLo-10 && dec <= k.decHi+10
}

// crossesSeam reports whether a segment jumps across the RA opposite the
// center. Polar stereographic charts wrap around the pole and have no seam.
func (k *mapKind) crossesSeam(a, b celestial.Coord) bool {
	switch k.proj.Kind() {
	case projection.StereoNorth, projection.StereoSouth:
		return false
	}
	da := celestial.WrapHours(a.RA - k.center)
	db := celestial.WrapHours(b.RA - k.center)
	return math.Abs(da-db) > 12
}

// decRange clips the viewport's declinations to the projection's domain.
func (k *mapKind) decRange() (float64, float64, error) {
	lo, hi := k.vp.DecMin, k.vp.DecMax
	switch k.proj.Kind() {
	case projection.StereoNorth:
		lo = max(lo, -projection.HemisphereLimit)
	case projection.StereoSouth:
		hi = min(hi, projection.HemisphereLimit)
	case projection.Mercator:
		lo = max(lo, -projection.MercatorLimit)
		hi = min(hi, projection.MercatorLimit)
	}
	if lo >= hi {
		return 0, 0, errors.New(errors.ErrCodeInvalidViewport,
			"viewport dec range [%g, %g] lies outside the %s projection", k.vp.DecMin, k.vp.DecMax, k.proj.Kind())
	}
	return lo, hi, nil
}

// trace walks the viewport edge counter-clockwise in RA/Dec and records
// its projection. The extent of a projected region is the extent of its
// projected boundary.
func (k *mapKind) trace() error {
	lo, hi, err := k.decRange()
	if err != nil {
		return err
	}
	// Stop just short of RAMax so a full-turn window ends on the right edge
	// instead of wrapping back onto the left one.
	raLo, raHi := k.vp.RAMin, k.vp.RAMax-1e-7
	n := boundarySamples
	at := func(i int) float64 { return float64(i) / float64(n) }

	var pts []projection.Point
	for i := 0; i <= n; i++ {
		pts = append(pts, k.proj.Project(raLo+(raHi-raLo)*at(i), lo))
	}
	for i := 1; i <= n; i++ {
		pts = append(pts, k.proj.Project(raHi, lo+(hi-lo)*at(i)))
	}
	for i := n - 1; i >= 0; i-- {
		pts = append(pts, k.proj.Project(raLo+(raHi-raLo)*at(i), hi))
	}
	for i := n - 1; i > 0; i-- {
		pts = append(pts, k.proj.Project(raLo, lo+(hi-lo)*at(i)))
	}

	e := Extent{XMin: math.Inf(1), XMax: math.Inf(-1), YMin: math.Inf(1), YMax: math.Inf(-1)}
	for _, p := range pts {
		e = e.include(p)
	}
	k.decLo, k.decHi = lo, hi
	k.boundary = pts
	k.extent = e
	return nil
}

func (k *mapKind) DrawBackground(s *Session) {
	pts := make([]render.Point, len(k.boundary))
	for i, p := range k.boundary {
		pts[i] = s.toPixel(p)
	}
	s.add(render.Polygon{Z: 0, Points: pts, Fill: string(s.style.BackgroundColor)})
	if b := s.style.Border.Line; b.Visible {
		s.add(render.Polygon{
			Z:      b.ZOrder,
			Points: pts,
			Edge:   string(b.Color),
			Width:  s.px(b.Width),
			Alpha:  b.Alpha,
		})
	}
}

// =============================================================================
// Zenith
// =============================================================================

// ZenithOptions configures a zenith chart: the whole sky above the
// observer's horizon.
type ZenithOptions struct {
	Options
	Observer celestial.Observer
}

// zenithRing is the radius of the outer border ring; the horizon is 1.
const zenithRing = 1.06

type zenithKind struct {
	proj     projection.Projection
	resolver viewport.Resolver
	observer celestial.Observer
	altaz    func(celestial.Coord) celestial.Horizontal
	infoText bool
}

// NewZenith starts a zenith chart.
func NewZenith(opts ZenithOptions) (*Session, error) {
	obs := opts.Observer
	proj, err := projection.New(projection.Zenith, projection.Config{Observer: &obs})
	if err != nil {
		return nil, err
	}
	k := &zenithKind{
		proj:     proj,
		resolver: viewport.Resolver{Viewport: viewport.Full(), Validator: proj},
		observer: obs,
		altaz:    obs.HorizontalFunc(),
		infoText: opts.InfoText,
	}
	return newSession(k, opts.Options, obs.Time, &obs)
}

func (k *zenithKind) Name() string { return "zenith" }

func (k *zenithKind) Project(ra, dec float64) projection.Point { return k.proj.Project(ra, dec) }

func (k *zenithKind) InBounds(ra, dec float64) bool { return k.resolver.InBounds(ra, dec) }

func (k *zenithKind) Extent() Extent { return Extent{XMin: -1.1, XMax: 1.1, YMin: -1.1, YMax: 1.1} }

// canDraw keeps lines away from the nadir, which projects to infinity.
func (k *zenithKind) canDraw(ra, dec float64) bool {
	return k.altaz(celestial.Coord{RA: ra, Dec: dec}).Alt > -30
}

func (k *zenithKind) DrawBackground(s *Session) {
	center := s.toPixel(projection.Point{})
	b := s.style.Border
	s.add(render.Circle{Z: 0, Center: center, Radius: s.scale, Fill: string(s.style.BackgroundColor)})
	if b.Line.Visible {
		s.add(
			render.Circle{Z: b.Line.ZOrder, Center: center, Radius: s.scale, Edge: string(b.Line.Color), Width: s.px(b.Line.Width / 2), Alpha: b.Line.Alpha},
			render.Circle{Z: b.Line.ZOrder, Center: center, Radius: zenithRing * s.scale, Edge: string(b.Line.Color), Width: s.px(b.Line.Width), Alpha: b.Line.Alpha},
		)
	}
	if b.Label.Visible {
		r := (1 + zenithRing) / 2
		for _, c := range []struct {
			text string
			p    projection.Point
		}{
			{"N", projection.Point{X: 0, Y: r}},
			{"E", projection.Point{X: -r, Y: 0}},
			{"S", projection.Point{X: 0, Y: -r}},
			{"W", projection.Point{X: r, Y: 0}},
		} {
			s.drawText(c.text, s.toPixel(c.p), b.Label, alignCenter)
		}
	}
	if k.infoText {
		s.drawInfo(s.toPixel(projection.Point{X: -1.08, Y: -1.08}), []string{
			fmt.Sprintf("%.4f, %.4f", k.observer.Lat, k.observer.Lon),
			formatTime(k.observer.Time),
		})
	}
}

// =============================================================================
// Optic
// =============================================================================

// OpticOptions configures an optic chart: the field seen through an
// instrument pointed at Center.
type OpticOptions struct {
	Options

	Center celestial.Coord
	Optic  optics.Optic

	// Observer orients the field so up is the zenith and rejects targets
	// below the horizon. Without one, up is the north celestial pole.
	Observer *celestial.Observer

	// Time positions the planets and Moon when there is no observer.
	Time time.Time
}

// opticMargin pads the field edge inside the canvas.
const opticMargin = 0.03

type opticKind struct {
	proj     projection.Projection
	resolver viewport.Resolver
	optic    optics.Optic
	mirrored bool
	center   celestial.Coord
	observer *celestial.Observer
	infoText bool
}

// NewOptic starts an optic chart.
func NewOptic(opts OpticOptions) (*Session, error) {
	if opts.Optic == nil {
		return nil, errors.New(errors.ErrCodeInvalidOptic, "optic is required")
	}
	if err := opts.Optic.Validate(); err != nil {
		return nil, err
	}
	if err := errors.ValidateRA("center ra", opts.Center.RA); err != nil {
		return nil, err
	}
	proj, err := projection.New(projection.Optic, projection.Config{
		Center:   opts.Center,
		FOV:      opts.Optic.TrueFOV(),
		Aspect:   opts.Optic.Aspect(),
		Rotation: opts.Optic.Rotation(),
		Observer: opts.Observer,
	})
	if err != nil {
		return nil, err
	}

	k := &opticKind{
		proj:     proj,
		resolver: viewport.Resolver{Viewport: viewport.Full(), Validator: proj},
		optic:    opts.Optic,
		center:   opts.Center,
		observer: opts.Observer,
		infoText: opts.InfoText,
	}
	if m, ok := opts.Optic.(optics.Mirror); ok {
		k.mirrored = m.Mirrored()
	}
	when := opts.Time
	if opts.Observer != nil {
		when = opts.Observer.Time
	}
	return newSession(k, opts.Options, when, opts.Observer)
}

func (k *opticKind) Name() string { return "optic" }

func (k *opticKind) Project(ra, dec float64) projection.Point {
	p := k.proj.Project(ra, dec)
	if k.mirrored {
		p.X = -p.X
	}
	return p
}

// InBounds accepts points inside the field. The field is symmetric about
// the vertical axis, so mirroring does not change membership.
func (k *opticKind) InBounds(ra, dec float64) bool { return k.resolver.InBounds(ra, dec) }

func (k *opticKind) canDraw(ra, dec float64) bool {
	return celestial.Separation(k.center, celestial.Coord{RA: ra, Dec: dec}) < 60
}

func (k *opticKind) Extent() Extent {
	h := 1.0
	if k.optic.Shape() == optics.Rectangle {
		h = k.optic.Aspect()
	}
	e := Extent{XMin: -1 - opticMargin, XMax: 1 + opticMargin, YMin: -h - opticMargin, YMax: h + opticMargin}
	if k.infoText {
		e.YMin -= 0.16
	}
	return e
}

func (k *opticKind) DrawBackground(s *Session) {
	b := s.style.Border.Line
	edge, width := "", 0.0
	if b.Visible {
		edge, width = string(b.Color), s.px(b.Width)
	}
	if k.optic.Shape() == optics.Rectangle {
		a := k.optic.Aspect()
		pts := []render.Point{
			s.toPixel(projection.Point{X: -1, Y: a}),
			s.toPixel(projection.Point{X: 1, Y: a}),
			s.toPixel(projection.Point{X: 1, Y: -a}),
			s.toPixel(projection.Point{X: -1, Y: -a}),
		}
		s.add(render.Polygon{Z: 0, Points: pts, Fill: string(s.style.BackgroundColor)})
		if b.Visible {
			s.add(render.Polygon{Z: b.ZOrder, Points: pts, Edge: edge, Width: width, Alpha: b.Alpha})
		}
	} else {
		center := s.toPixel(projection.Point{})
		s.add(render.Circle{Z: 0, Center: center, Radius: s.scale, Fill: string(s.style.BackgroundColor)})
		if b.Visible {
			s.add(render.Circle{Z: b.ZOrder, Center: center, Radius: s.scale, Edge: edge, Width: width, Alpha: b.Alpha})
		}
	}

	if k.infoText {
		lines := []string{k.optic.String()}
		if k.observer != nil {
			lines = append(lines, fmt.Sprintf("%.4f, %.4f  %s", k.observer.Lat, k.observer.Lon, formatTime(k.observer.Time)))
		}
		s.drawInfo(s.toPixel(projection.Point{X: -1, Y: k.Extent().YMin + 0.02}), lines)
	}
}

func formatTime(t time.Time) string {
	return t.Format("01/02/2006 @ 15:04:05 MST")
}
