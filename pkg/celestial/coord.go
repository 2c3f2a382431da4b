// Package celestial provides equatorial coordinates and observer-relative
// transforms shared by the projection, geometry and chart packages.
//
// Right ascension is always expressed in hours and declination in degrees.
// RA is circular: 24h is the same meridian as 0h, and every function in this
// package that returns an RA returns it normalized to [0, 24).
package celestial

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// Coord is an equatorial position: RA in hours, Dec in degrees.
type Coord struct {
	RA  float64 `json:"ra" toml:"ra" yaml:"ra"`
	Dec float64 `json:"dec" toml:"dec" yaml:"dec"`
}

// NormalizeRA wraps ra into [0, 24).
func NormalizeRA(ra float64) float64 {
	ra = math.Mod(ra, 24)
	if ra < 0 {
		ra += 24
	}
	if ra >= 24 {
		ra = 0
	}
	return ra
}

// WrapHours wraps an RA difference into [-12, 12).
// It is the normalization applied before projecting a point relative to a
// chart's RA center, so that points on either side of 0h stay contiguous.
func WrapHours(delta float64) float64 {
	d := math.Mod(delta+12, 24)
	if d < 0 {
		d += 24
	}
	return d - 12
}

// LatLng converts c to an s2 latitude/longitude with longitude = RA * 15°.
func (c Coord) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Dec, c.RA*15)
}

// Point returns c as a unit vector on the sphere.
func (c Coord) Point() s2.Point {
	return s2.PointFromLatLng(c.LatLng())
}

// FromPoint converts a unit vector back to a normalized coordinate.
func FromPoint(p s2.Point) Coord {
	ll := s2.LatLngFromPoint(p)
	return Coord{
		RA:  NormalizeRA(ll.Lng.Degrees() / 15),
		Dec: ll.Lat.Degrees(),
	}
}

// Vector returns the equatorial cartesian unit vector of c
// (x toward RA 0h Dec 0°, z toward the north celestial pole).
func (c Coord) Vector() [3]float64 {
	p := c.Point()
	return [3]float64{p.X, p.Y, p.Z}
}

// Separation returns the great-circle distance between a and b in degrees.
func Separation(a, b Coord) float64 {
	return a.LatLng().Distance(b.LatLng()).Degrees()
}

// Mean returns the spherical mean of pts. It is the zero Coord for an empty
// or perfectly balanced set.
func Mean(pts []Coord) Coord {
	var sum r3.Vector
	for _, c := range pts {
		sum = sum.Add(c.Point().Vector)
	}
	if sum.Norm() == 0 {
		return Coord{}
	}
	return FromPoint(s2.Point{Vector: sum.Normalize()})
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
