package ephemeris

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/matzehuels/starchart/pkg/celestial"
)

// elements are J2000 mean orbital elements and their rates per Julian
// century (Standish, "Keplerian Elements for Approximate Positions of the
// Major Planets", valid 1800-2050).
type elements struct {
	a, aDot       float64 // semi-major axis, AU
	e, eDot       float64 // eccentricity
	i, iDot       float64 // inclination, degrees
	l, lDot       float64 // mean longitude, degrees
	peri, periDot float64 // longitude of perihelion, degrees
	node, nodeDot float64 // longitude of the ascending node, degrees
}

var earthElements = elements{1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668, 100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0, 0}

var planetElements = map[Body]elements{
	Mercury: {0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749, 252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081},
	Venus:   {0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890, 181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418},
	Mars:    {1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131, -4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343},
	Jupiter: {5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714, 34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106},
	Saturn:  {9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609, 49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794},
	Uranus:  {19.18916464, -0.00196176, 0.04725744, -0.00004397, 0.77263783, -0.00242939, 313.23810451, 428.48202785, 170.95427630, 0.40805281, 74.01692503, 0.04240589},
	Neptune: {30.06992276, 0.00026291, 0.00859048, 0.00005105, 1.77004347, 0.00035372, -55.12002969, 218.45945325, 44.96476227, -0.32241464, 131.78422574, -0.00508664},
}

// heliocentric returns the ecliptic J2000 position in AU at T Julian
// centuries past J2000.
func heliocentric(el elements, T float64) r3.Vector {
	a := el.a + el.aDot*T
	e := el.e + el.eDot*T
	inc := celestial.DegToRad(el.i + el.iDot*T)
	l := el.l + el.lDot*T
	peri := el.peri + el.periDot*T
	node := el.node + el.nodeDot*T

	m := celestial.DegToRad(math.Mod(l-peri, 360))
	w := celestial.DegToRad(peri - node)
	o := celestial.DegToRad(node)

	ecc := eccentricAnomaly(m, e)
	xp := a * (math.Cos(ecc) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(ecc)

	sinW, cosW := math.Sincos(w)
	sinO, cosO := math.Sincos(o)
	sinI, cosI := math.Sincos(inc)
	return r3.Vector{
		X: (cosW*cosO-sinW*sinO*cosI)*xp + (-sinW*cosO-cosW*sinO*cosI)*yp,
		Y: (cosW*sinO+sinW*cosO*cosI)*xp + (-sinW*sinO+cosW*cosO*cosI)*yp,
		Z: (sinW*sinI)*xp + (cosW*sinI)*yp,
	}
}

// eccentricAnomaly solves Kepler's equation E - e sin E = M by Newton
// iteration.
func eccentricAnomaly(m, e float64) float64 {
	ecc := m
	for i := 0; i < 50; i++ {
		d := (ecc - e*math.Sin(ecc) - m) / (1 - e*math.Cos(ecc))
		ecc -= d
		if math.Abs(d) < 1e-12 {
			break
		}
	}
	return ecc
}
