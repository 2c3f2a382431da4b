package projection

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/starchart/pkg/celestial"
	"github.com/matzehuels/starchart/pkg/errors"
)

// MaxOpticFOV is the widest true field of view (degrees) an optic chart
// accepts. Gnomonic distortion grows quickly past this.
const MaxOpticFOV = 9.0

// optic is a gnomonic projection about a pointing center. The field edge
// sits at r = 1 for a circular field; a rectangular field spans x in [-1, 1]
// and y in [-aspect, aspect].
type optic struct {
	frame    *mat.Dense // rows: right, up, forward in equatorial cartesian
	scale    float64    // tan(fov/2)
	aspect   float64
	sinR     float64
	cosR     float64
	observer *celestial.Observer
}

func newOptic(cfg Config) (Projection, error) {
	switch {
	case !(cfg.FOV > 0):
		return nil, errors.New(errors.ErrCodeInvalidOptic, "field of view must be positive (got %g)", cfg.FOV)
	case cfg.FOV > MaxOpticFOV:
		return nil, errors.New(errors.ErrCodeFOVTooLarge, "Field of View too big: %.2f degrees (max %.0f)", cfg.FOV, MaxOpticFOV)
	case cfg.Aspect < 0:
		return nil, errors.New(errors.ErrCodeInvalidOptic, "aspect cannot be negative (got %g)", cfg.Aspect)
	}
	if err := errors.ValidateDec("center dec", cfg.Center.Dec); err != nil {
		return nil, err
	}

	fwd := cfg.Center.Vector()
	up := [3]float64{0, 0, 1}
	var toLocal *mat.Dense
	if cfg.Observer != nil {
		if err := cfg.Observer.Validate(); err != nil {
			return nil, err
		}
		if h := cfg.Observer.Horizontal(cfg.Center); h.Alt < 0 {
			return nil, errors.New(errors.ErrCodeBelowHorizon, "Target is below horizon at specified time/location.")
		}
		// Work in east/north/up so that "up" is the zenith.
		toLocal = cfg.Observer.Frame()
		var v mat.VecDense
		v.MulVec(toLocal, mat.NewVecDense(3, fwd[:]))
		fwd = [3]float64{v.AtVec(0), v.AtVec(1), v.AtVec(2)}
	}

	pointing := pointingFrame(fwd, up)
	if toLocal != nil {
		var composed mat.Dense
		composed.Mul(pointing, toLocal)
		pointing = &composed
	}

	sinR, cosR := math.Sincos(celestial.DegToRad(cfg.Rotation))
	return optic{
		frame:    pointing,
		scale:    math.Tan(celestial.DegToRad(cfg.FOV / 2)),
		aspect:   cfg.Aspect,
		sinR:     sinR,
		cosR:     cosR,
		observer: cfg.Observer,
	}, nil
}

// pointingFrame returns a rotation whose rows are right, up and forward.
// Right is forward x up, matching the view from inside the sphere.
func pointingFrame(fwd, up [3]float64) *mat.Dense {
	right := cross(fwd, up)
	if norm(right) < 1e-9 {
		// Pointing straight along up: any horizontal direction will do.
		right = cross(fwd, [3]float64{1, 0, 0})
	}
	right = unit(right)
	trueUp := unit(cross(right, fwd))
	return mat.NewDense(3, 3, []float64{
		right[0], right[1], right[2],
		trueUp[0], trueUp[1], trueUp[2],
		fwd[0], fwd[1], fwd[2],
	})
}

func (optic) Kind() Kind { return Optic }

// local returns (right, up, forward) components of (ra, dec).
func (o optic) local(ra, dec float64) (float64, float64, float64) {
	v := celestial.Coord{RA: ra, Dec: dec}.Vector()
	var out mat.VecDense
	out.MulVec(o.frame, mat.NewVecDense(3, v[:]))
	return out.AtVec(0), out.AtVec(1), out.AtVec(2)
}

func (o optic) Project(ra, dec float64) Point {
	x, y, w := o.local(ra, dec)
	if w < 1e-9 {
		w = 1e-9
	}
	x, y = x/w/o.scale, y/w/o.scale
	return Point{
		X: x*o.cosR + y*o.sinR,
		Y: -x*o.sinR + y*o.cosR,
	}
}

// Valid reports whether (ra, dec) is in front of the optic and inside its
// field.
func (o optic) Valid(ra, dec float64) bool {
	if _, _, w := o.local(ra, dec); w <= 0 {
		return false
	}
	return o.InField(o.Project(ra, dec))
}

// InField reports whether a projected point lies inside the field stop.
func (o optic) InField(p Point) bool {
	if o.aspect > 0 {
		return math.Abs(p.X) <= 1 && math.Abs(p.Y) <= o.aspect
	}
	return math.Hypot(p.X, p.Y) <= 1
}

func (o optic) Unproject(p Point) (float64, float64, bool) {
	// Undo the rotation, then the gnomonic scale.
	x := p.X*o.cosR - p.Y*o.sinR
	y := p.X*o.sinR + p.Y*o.cosR
	local := mat.NewVecDense(3, []float64{x * o.scale, y * o.scale, 1})
	var eq mat.VecDense
	eq.MulVec(o.frame.T(), local)
	n := mat.Norm(&eq, 2)
	return celestial.NormalizeRA(celestial.RadToDeg(math.Atan2(eq.AtVec(1), eq.AtVec(0))) / 15),
		celestial.RadToDeg(math.Asin(eq.AtVec(2) / n)), true
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func norm(v [3]float64) float64 { return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]) }

func unit(v [3]float64) [3]float64 {
	n := norm(v)
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}
