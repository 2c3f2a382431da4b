package ephemeris

import (
	"math"
	"time"

	"github.com/golang/geo/r3"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/matzehuels/starchart/pkg/celestial"
	"github.com/matzehuels/starchart/pkg/errors"
)

// Meeus computes the Sun and Moon with the algorithms from Meeus'
// Astronomical Algorithms and the planets from mean Keplerian elements.
type Meeus struct{}

// Positions returns the position of each requested body. With no bodies it
// returns every planet.
func (Meeus) Positions(t time.Time, bodies ...Body) (map[Body]Position, error) {
	if len(bodies) == 0 {
		bodies = Planets
	}
	jd := julian.TimeToJD(t.UTC())
	T := (jd - 2451545) / 36525
	earth := heliocentric(earthElements, T)

	out := make(map[Body]Position, len(bodies))
	for _, b := range bodies {
		var p Position
		switch b {
		case Sun:
			ra, dec := solar.ApparentEquatorial(jd)
			p = Position{
				RA:       celestial.NormalizeRA(celestial.RadToDeg(ra.Rad()) / 15),
				Dec:      dec.Deg(),
				Distance: earth.Norm() * AU,
			}
		case Moon:
			lon, lat, dist := moonposition.Position(jd)
			c := celestial.EclipticToEquatorial(lon.Deg(), lat.Deg(), celestial.Obliquity)
			p = Position{RA: c.RA, Dec: c.Dec, Distance: dist}
		default:
			el, ok := planetElements[b]
			if !ok {
				return nil, errors.New(errors.ErrCodeNotFound, "unknown body %q", b)
			}
			geo := heliocentric(el, T).Sub(earth)
			c := eclipticVectorToEquatorial(geo)
			p = Position{RA: c.RA, Dec: c.Dec, Distance: geo.Norm() * AU}
		}
		p.AngularSize = AngularSize(diameters[b], p.Distance)
		out[b] = p
	}
	return out, nil
}

// eclipticVectorToEquatorial rotates an ecliptic J2000 vector about the
// vernal equinox direction into equatorial coordinates.
func eclipticVectorToEquatorial(v r3.Vector) celestial.Coord {
	sinE, cosE := math.Sincos(celestial.DegToRad(celestial.Obliquity))
	eq := r3.Vector{
		X: v.X,
		Y: v.Y*cosE - v.Z*sinE,
		Z: v.Y*sinE + v.Z*cosE,
	}
	r := eq.Norm()
	if r == 0 {
		return celestial.Coord{}
	}
	return celestial.Coord{
		RA:  celestial.NormalizeRA(celestial.RadToDeg(math.Atan2(eq.Y, eq.X)) / 15),
		Dec: celestial.RadToDeg(math.Asin(eq.Z / r)),
	}
}
