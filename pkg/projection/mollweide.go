package projection

import (
	"math"

	"github.com/matzehuels/starchart/pkg/celestial"
)

// Newton solve parameters for the Mollweide auxiliary angle.
const (
	MollweideTolerance     = 1e-6
	MollweideMaxIterations = 50
)

type mollweide struct {
	center float64
}

func (mollweide) Kind() Kind { return Mollweide }

func (m mollweide) Project(ra, dec float64) Point {
	lambda := longitude(ra, m.center)
	theta, _, _ := MollweideTheta(celestial.DegToRad(dec))
	return Point{
		X: -(2 * math.Sqrt2 / math.Pi) * lambda * math.Cos(theta),
		Y: math.Sqrt2 * math.Sin(theta),
	}
}

func (mollweide) Valid(ra, dec float64) bool { return true }

func (m mollweide) Unproject(p Point) (float64, float64, bool) {
	s := p.Y / math.Sqrt2
	if math.Abs(s) > 1 {
		return 0, 0, false
	}
	theta := math.Asin(s)
	phi := math.Asin((2*theta + math.Sin(2*theta)) / math.Pi)
	cosT := math.Cos(theta)
	if cosT < 1e-12 {
		return m.center, celestial.RadToDeg(phi), true
	}
	lambda := -math.Pi * p.X / (2 * math.Sqrt2 * cosT)
	if math.Abs(lambda) > math.Pi {
		return 0, 0, false
	}
	ra := celestial.NormalizeRA(m.center + celestial.RadToDeg(lambda)/15)
	return ra, celestial.RadToDeg(phi), true
}

// MollweideTheta solves 2θ + sin 2θ = π sin φ for the auxiliary angle θ by
// Newton iteration. It returns the estimate, the number of iterations used
// and whether the step size fell below MollweideTolerance. When the solve
// hits MollweideMaxIterations the last estimate is returned with converged
// set to false; the poles are exact and take zero iterations.
func MollweideTheta(phi float64) (theta float64, iterations int, converged bool) {
	if math.Abs(math.Abs(phi)-math.Pi/2) < 1e-12 {
		return math.Copysign(math.Pi/2, phi), 0, true
	}

	target := math.Pi * math.Sin(phi)
	theta = phi
	for iterations < MollweideMaxIterations {
		iterations++
		f := 2*theta + math.Sin(2*theta) - target
		if math.Abs(f) < MollweideTolerance*MollweideTolerance {
			return theta, iterations, true
		}
		df := 2 + 2*math.Cos(2*theta)
		if df == 0 {
			break
		}
		step := f / df
		theta -= step
		if math.Abs(step) < MollweideTolerance {
			return theta, iterations, true
		}
	}
	return theta, iterations, false
}
