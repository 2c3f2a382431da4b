// Package projection maps equatorial coordinates onto a chart plane.
//
// # Families
//
// Six families are supported:
//   - [StereoNorth], [StereoSouth]: polar stereographic, pole at the origin
//   - [Mercator]: cylindrical conformal, declination clipped at ±85°
//   - [Mollweide]: equal-area pseudo-cylindrical (Newton solve per point)
//   - [Zenith]: stereographic about the observer's zenith, horizon at r = 1
//   - [Optic]: gnomonic about a pointing center, field edge at r = 1
//
// # Coordinate convention
//
// Plot x grows toward the west, so east is on the left as on any sky chart
// seen from inside the sphere. Before projecting, the map families measure
// RA relative to the chart's RA center, wrapped into [-12h, 12h). A point at
// 23.9h and another at 0.1h therefore land next to each other on a chart
// centered at 0h instead of at opposite edges.
//
// Every projection is an immutable value; Project and Valid are pure and safe
// for concurrent use.
package projection

import (
	"math"
	"strings"

	"github.com/matzehuels/starchart/pkg/celestial"
	"github.com/matzehuels/starchart/pkg/errors"
)

// Kind identifies a projection family.
type Kind string

// Supported projection families.
const (
	StereoNorth Kind = "stereo_north"
	StereoSouth Kind = "stereo_south"
	Mercator    Kind = "mercator"
	Mollweide   Kind = "mollweide"
	Zenith      Kind = "zenith"
	Optic       Kind = "optic"
)

// Kinds lists every supported family in display order.
var Kinds = []Kind{StereoNorth, StereoSouth, Mercator, Mollweide, Zenith, Optic}

// HemisphereLimit is how far past the equator (degrees) a polar
// stereographic chart accepts points before treating them as invalid.
const HemisphereLimit = 30.0

// MercatorLimit clips declination before the Mercator transform.
const MercatorLimit = 85.0

// Point is a position in plot space.
type Point struct {
	X, Y float64
}

// Projection is a single projection family bound to its parameters.
type Projection interface {
	Kind() Kind

	// Project maps (ra hours, dec degrees) to plot space.
	Project(ra, dec float64) Point

	// Valid reports whether (ra, dec) lies in the family's usable domain.
	// Points outside it may still project to finite values but should not
	// be drawn.
	Valid(ra, dec float64) bool
}

// Inverter is implemented by projections that can map plot space back to
// the sky.
type Inverter interface {
	Unproject(p Point) (ra, dec float64, ok bool)
}

// Config holds the parameters a family may need.
type Config struct {
	// RACenter is the RA (hours) mapped to x = 0 by the map families.
	RACenter float64

	// Observer is required by Zenith and optional for Optic, where it
	// orients the field so that up points to the zenith.
	Observer *celestial.Observer

	// Center is the optic pointing direction.
	Center celestial.Coord

	// FOV is the optic's true field of view in degrees (full width).
	FOV float64

	// Aspect is height/width of a rectangular optic field; zero means a
	// circular field.
	Aspect float64

	// Rotation rotates the optic field clockwise, in degrees.
	Rotation float64
}

// ParseKind converts a name to a Kind. Dashes and case are ignored so
// "Stereo-North" and "stereo_north" are equivalent.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidProjection, "unknown projection: %q", s)
}

// New builds a projection of the given kind.
func New(kind Kind, cfg Config) (Projection, error) {
	if err := errors.ValidateRA("ra center", cfg.RACenter); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProjection, err, "invalid ra center")
	}
	center := celestial.NormalizeRA(cfg.RACenter)

	switch kind {
	case StereoNorth:
		return stereo{center: center, south: false}, nil
	case StereoSouth:
		return stereo{center: center, south: true}, nil
	case Mercator:
		return mercator{center: center}, nil
	case Mollweide:
		return mollweide{center: center}, nil
	case Zenith:
		if cfg.Observer == nil {
			return nil, errors.New(errors.ErrCodeInvalidProjection, "zenith projection requires an observer")
		}
		if err := cfg.Observer.Validate(); err != nil {
			return nil, err
		}
		return newZenith(*cfg.Observer), nil
	case Optic:
		return newOptic(cfg)
	}
	return nil, errors.New(errors.ErrCodeInvalidProjection, "unknown projection: %q", kind)
}

// longitude returns the chart longitude in radians for ra relative to center.
func longitude(ra, center float64) float64 {
	return celestial.DegToRad(celestial.WrapHours(ra-center) * 15)
}

// =============================================================================
// Stereographic
// =============================================================================

type stereo struct {
	center float64
	south  bool
}

func (s stereo) Kind() Kind {
	if s.south {
		return StereoSouth
	}
	return StereoNorth
}

func (s stereo) Project(ra, dec float64) Point {
	theta := longitude(ra, s.center)
	phi := celestial.DegToRad(dec)
	sinT, cosT := math.Sincos(theta)
	if s.south {
		r := 2 * math.Tan(math.Pi/4+phi/2)
		return Point{X: -r * sinT, Y: r * cosT}
	}
	r := 2 * math.Tan(math.Pi/4-phi/2)
	return Point{X: r * sinT, Y: -r * cosT}
}

func (s stereo) Valid(ra, dec float64) bool {
	if s.south {
		return dec <= HemisphereLimit
	}
	return dec >= -HemisphereLimit
}

func (s stereo) Unproject(p Point) (float64, float64, bool) {
	r := math.Hypot(p.X, p.Y)
	var theta, phi float64
	if s.south {
		theta = math.Atan2(-p.X, p.Y)
		phi = 2*math.Atan(r/2) - math.Pi/2
	} else {
		theta = math.Atan2(p.X, -p.Y)
		phi = math.Pi/2 - 2*math.Atan(r/2)
	}
	ra := celestial.NormalizeRA(s.center + celestial.RadToDeg(theta)/15)
	return ra, celestial.RadToDeg(phi), true
}

// =============================================================================
// Mercator
// =============================================================================

type mercator struct {
	center float64
}

func (mercator) Kind() Kind { return Mercator }

func (m mercator) Project(ra, dec float64) Point {
	dec = math.Max(-MercatorLimit, math.Min(MercatorLimit, dec))
	phi := celestial.DegToRad(dec)
	return Point{
		X: -longitude(ra, m.center),
		Y: math.Log(math.Tan(math.Pi/4 + phi/2)),
	}
}

func (mercator) Valid(ra, dec float64) bool { return true }

func (m mercator) Unproject(p Point) (float64, float64, bool) {
	if math.Abs(p.X) > math.Pi {
		return 0, 0, false
	}
	phi := 2*math.Atan(math.Exp(p.Y)) - math.Pi/2
	ra := celestial.NormalizeRA(m.center - celestial.RadToDeg(p.X)/15)
	return ra, celestial.RadToDeg(phi), true
}
