// Package sphere builds shapes on the celestial sphere by geodesic sampling.
//
// Shapes are described the way an observer sees them: a center, an angular
// size in degrees and a clockwise rotation from north. Every vertex is placed
// at the true great-circle distance and bearing from the center, so a circle
// near the celestial pole spreads over many hours of RA while keeping its
// angular radius. Vertices are returned with RA normalized to [0, 24) but are
// otherwise left alone; wraparound handling relative to a chart's RA center
// belongs to the projection layer.
package sphere

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/matzehuels/starchart/pkg/celestial"
	"github.com/matzehuels/starchart/pkg/errors"
)

// DefaultPoints is the number of vertices used for circles and ellipses.
const DefaultPoints = 100

var northPole = s2.Point{Vector: r3.Vector{X: 0, Y: 0, Z: 1}}

// Destination returns the point reached by travelling distance degrees
// along a great circle leaving center at bearing degrees (0 = north,
// 90 = east).
func Destination(center celestial.Coord, bearing, distance float64) celestial.Coord {
	p := center.Point()
	dir := direction(p, center, celestial.DegToRad(bearing))
	axis := s2.Point{Vector: p.Cross(dir).Normalize()}
	return celestial.FromPoint(s2.Rotate(p, axis, s1.Angle(celestial.DegToRad(distance))*s1.Radian))
}

// direction returns the unit tangent at p pointing toward bearing.
func direction(p s2.Point, c celestial.Coord, bearing float64) r3.Vector {
	east := northPole.Cross(p.Vector)
	if east.Norm() < 1e-12 {
		// At a pole every direction is south (or north); use the center's
		// RA to pick a meridian so bearings stay well defined.
		lng := celestial.DegToRad(c.RA * 15)
		east = r3.Vector{X: -math.Sin(lng), Y: math.Cos(lng), Z: 0}
	}
	east = east.Normalize()
	north := p.Cross(east).Normalize()
	sinB, cosB := math.Sincos(bearing)
	return north.Mul(cosB).Add(east.Mul(sinB))
}

// Offset returns the destination for a tangent-plane offset (east, north)
// in degrees. The distance is the offset's length and the bearing its
// direction, which is the inverse azimuthal equidistant mapping about center.
func Offset(center celestial.Coord, east, north, rotation float64) celestial.Coord {
	dist := math.Hypot(east, north)
	if dist == 0 {
		return center
	}
	bearing := celestial.RadToDeg(math.Atan2(east, north)) + rotation
	return Destination(center, bearing, dist)
}

// Ellipse samples n vertices of an ellipse with the given height and width
// (degrees) rotated clockwise by angle degrees. Vertex i sits at parameter
// t = 2πi/n, starting due north of center and proceeding clockwise.
func Ellipse(center celestial.Coord, height, width, angle float64, n int) ([]celestial.Coord, error) {
	if err := validateSize(height, width); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultPoints
	}
	if n < 3 {
		return nil, errors.New(errors.ErrCodeInvalidShape, "ellipse needs at least 3 points (got %d)", n)
	}

	out := make([]celestial.Coord, n)
	for i := range out {
		t := 2 * math.Pi * float64(i) / float64(n)
		sinT, cosT := math.Sincos(t)
		out[i] = Offset(center, width/2*sinT, height/2*cosT, angle)
	}
	return out, nil
}

// Circle samples a circle of the given angular radius. It is an ellipse
// whose height and width are both twice the radius.
func Circle(center celestial.Coord, radius float64, n int) ([]celestial.Coord, error) {
	return Ellipse(center, radius*2, radius*2, 0, n)
}

// Rectangle returns the four corners of a rectangle, starting at the
// north-east corner and proceeding clockwise, with subdivisions extra points
// inserted along each edge so long edges follow the sphere's curvature.
func Rectangle(center celestial.Coord, height, width, angle float64, subdivisions int) ([]celestial.Coord, error) {
	if err := validateSize(height, width); err != nil {
		return nil, err
	}
	if subdivisions < 0 {
		return nil, errors.New(errors.ErrCodeInvalidShape, "subdivisions cannot be negative (got %d)", subdivisions)
	}

	h, w := height/2, width/2
	corners := [][2]float64{{w, h}, {w, -h}, {-w, -h}, {-w, h}}

	steps := subdivisions + 1
	out := make([]celestial.Coord, 0, 4*steps)
	for i, a := range corners {
		b := corners[(i+1)%4]
		for s := 0; s < steps; s++ {
			f := float64(s) / float64(steps)
			e := a[0] + (b[0]-a[0])*f
			n := a[1] + (b[1]-a[1])*f
			out = append(out, Offset(center, e, n, angle))
		}
	}
	return out, nil
}

// ReflectPole folds a vertex that overshoots a celestial pole back onto the
// sphere: the declination is mirrored across the pole and the RA moves to the
// opposite meridian. Coordinates within [-90, 90] are returned with RA
// normalized and are otherwise unchanged.
func ReflectPole(ra, dec float64) (float64, float64) {
	switch {
	case dec > 90:
		return celestial.NormalizeRA(ra + 12), 180 - dec
	case dec < -90:
		return celestial.NormalizeRA(ra + 12), -180 - dec
	}
	return celestial.NormalizeRA(ra), dec
}

// Reflect applies ReflectPole to every vertex.
func Reflect(points []celestial.Coord) []celestial.Coord {
	out := make([]celestial.Coord, len(points))
	for i, p := range points {
		out[i].RA, out[i].Dec = ReflectPole(p.RA, p.Dec)
	}
	return out
}

func validateSize(height, width float64) error {
	if !(height > 0) {
		return errors.New(errors.ErrCodeInvalidShape, "height must be positive (got %g)", height)
	}
	if !(width > 0) {
		return errors.New(errors.ErrCodeInvalidShape, "width must be positive (got %g)", width)
	}
	if height > 180 || width > 180 {
		return errors.New(errors.ErrCodeInvalidShape, "shape larger than a hemisphere (%gx%g)", height, width)
	}
	return nil
}
