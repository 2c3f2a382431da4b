package projection

import (
	"math"

	"github.com/matzehuels/starchart/pkg/celestial"
)

type zenith struct {
	observer   celestial.Observer
	horizontal func(celestial.Coord) celestial.Horizontal
}

func newZenith(obs celestial.Observer) zenith {
	return zenith{observer: obs, horizontal: obs.HorizontalFunc()}
}

func (zenith) Kind() Kind { return Zenith }

// Project places the zenith at the origin and the horizon on the unit
// circle, north up and east on the left.
func (z zenith) Project(ra, dec float64) Point {
	h := z.horizontal(celestial.Coord{RA: ra, Dec: dec})
	r := math.Tan(celestial.DegToRad(90-h.Alt) / 2)
	sinA, cosA := math.Sincos(celestial.DegToRad(h.Az))
	return Point{X: -r * sinA, Y: r * cosA}
}

// Valid reports whether the point is above the horizon.
func (z zenith) Valid(ra, dec float64) bool {
	return z.horizontal(celestial.Coord{RA: ra, Dec: dec}).Alt >= 0
}

// Altitude returns the altitude of (ra, dec) in degrees.
func (z zenith) Altitude(ra, dec float64) float64 {
	return z.horizontal(celestial.Coord{RA: ra, Dec: dec}).Alt
}
