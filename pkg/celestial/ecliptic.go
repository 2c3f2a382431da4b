package celestial

import "math"

// Obliquity is the J2000 mean obliquity of the ecliptic in degrees.
const Obliquity = 23.439291

// EclipticToEquatorial converts ecliptic longitude/latitude (degrees) to an
// equatorial coordinate using obliquity eps (degrees).
func EclipticToEquatorial(lon, lat, eps float64) Coord {
	l, b, e := DegToRad(lon), DegToRad(lat), DegToRad(eps)
	sinE, cosE := math.Sincos(e)
	sinL, cosL := math.Sincos(l)
	sinB, cosB := math.Sincos(b)

	ra := math.Atan2(sinL*cosE-math.Tan(b)*sinE, cosL)
	dec := math.Asin(sinB*cosE + cosB*sinE*sinL)
	return Coord{
		RA:  NormalizeRA(RadToDeg(ra) / 15),
		Dec: RadToDeg(dec),
	}
}

// EclipticPath samples the ecliptic every step degrees of longitude,
// starting at 0°. The last sample closes the loop at 360°.
func EclipticPath(step float64) []Coord {
	if step <= 0 {
		step = 1
	}
	n := int(math.Ceil(360 / step))
	out := make([]Coord, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, EclipticToEquatorial(math.Min(float64(i)*step, 360), 0, Obliquity))
	}
	return out
}

// EquatorPath samples the celestial equator every step hours.
func EquatorPath(step float64) []Coord {
	if step <= 0 {
		step = 0.25
	}
	n := int(math.Ceil(24 / step))
	out := make([]Coord, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, Coord{RA: math.Min(float64(i)*step, 24), Dec: 0})
	}
	return out
}
