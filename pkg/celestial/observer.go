package celestial

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/starchart/pkg/errors"
)

// Observer is a ground-based observing site at a specific instant.
type Observer struct {
	Lat  float64   `json:"lat" toml:"lat" yaml:"lat"` // degrees, north positive
	Lon  float64   `json:"lon" toml:"lon" yaml:"lon"` // degrees, east positive
	Time time.Time `json:"time" toml:"time" yaml:"time"`
}

// Horizontal is an observer-relative position.
//   - Az: 0° = North, 90° = East, 180° = South, 270° = West
//   - Alt: 0° = horizon, 90° = zenith
type Horizontal struct {
	Alt float64
	Az  float64
}

// Validate checks the observer's latitude and longitude.
func (o Observer) Validate() error {
	if err := errors.ValidateLatitude(o.Lat); err != nil {
		return err
	}
	return errors.ValidateLongitude(o.Lon)
}

// JulianDay returns the Julian day of the observation instant.
func (o Observer) JulianDay() float64 {
	return julian.TimeToJD(o.Time.UTC())
}

// LST returns the local apparent sidereal time in hours.
func (o Observer) LST() float64 {
	gast := sidereal.Apparent(o.JulianDay()).Rad()
	return NormalizeRA(RadToDeg(gast)/15 + o.Lon/15)
}

// Zenith returns the equatorial coordinate directly overhead.
func (o Observer) Zenith() Coord {
	return Coord{RA: o.LST(), Dec: o.Lat}
}

// Frame returns the rotation from equatorial cartesian vectors into the
// local east/north/up frame. Rows are the E, N and U unit vectors.
func (o Observer) Frame() *mat.Dense {
	lst := DegToRad(o.LST() * 15)
	lat := DegToRad(o.Lat)
	sinL, cosL := math.Sincos(lst)
	sinP, cosP := math.Sincos(lat)
	return mat.NewDense(3, 3, []float64{
		-sinL, cosL, 0,
		-sinP * cosL, -sinP * sinL, cosP,
		cosP * cosL, cosP * sinL, sinP,
	})
}

// Horizontal converts c to altitude/azimuth for this observer.
func (o Observer) Horizontal(c Coord) Horizontal {
	return toHorizontal(o.Frame(), c)
}

// HorizontalFunc returns a converter that reuses one frame for many points.
func (o Observer) HorizontalFunc() func(Coord) Horizontal {
	frame := o.Frame()
	return func(c Coord) Horizontal { return toHorizontal(frame, c) }
}

func toHorizontal(frame *mat.Dense, c Coord) Horizontal {
	v := c.Vector()
	var enu mat.VecDense
	enu.MulVec(frame, mat.NewVecDense(3, v[:]))

	e, n, u := enu.AtVec(0), enu.AtVec(1), enu.AtVec(2)
	az := RadToDeg(math.Atan2(e, n))
	if az < 0 {
		az += 360
	}
	return Horizontal{
		Alt: RadToDeg(math.Asin(math.Max(-1, math.Min(1, u)))),
		Az:  az,
	}
}
