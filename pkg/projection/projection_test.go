package projection

import (
	"math"
	"testing"
	"time"

	"github.com/matzehuels/starchart/pkg/celestial"
	"github.com/matzehuels/starchart/pkg/errors"
)

func testObserver() *celestial.Observer {
	return &celestial.Observer{
		Lat:  32.97,
		Lon:  -117.04,
		Time: time.Date(2024, 3, 15, 4, 0, 0, 0, time.UTC),
	}
}

func mustNew(t *testing.T, kind Kind, cfg Config) Projection {
	t.Helper()
	p, err := New(kind, cfg)
	if err != nil {
		t.Fatalf("New(%s): %v", kind, err)
	}
	return p
}

func dist(a, b Point) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"stereo_north", StereoNorth, false},
		{"Stereo-South", StereoSouth, false},
		{" MERCATOR ", Mercator, false},
		{"mollweide", Mollweide, false},
		{"zenith", Zenith, false},
		{"optic", Optic, false},
		{"gnomonic", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewErrors(t *testing.T) {
	obs := testObserver()
	tests := []struct {
		name string
		kind Kind
		cfg  Config
		code errors.Code
	}{
		{"unknown kind", Kind("conic"), Config{}, errors.ErrCodeInvalidProjection},
		{"nan center", Mercator, Config{RACenter: math.NaN()}, errors.ErrCodeInvalidProjection},
		{"zenith without observer", Zenith, Config{}, errors.ErrCodeInvalidProjection},
		{"zenith bad latitude", Zenith, Config{Observer: &celestial.Observer{Lat: 91}}, errors.ErrCodeInvalidObserver},
		{"optic zero fov", Optic, Config{Center: celestial.Coord{RA: 1, Dec: 1}}, errors.ErrCodeInvalidOptic},
		{"optic fov too large", Optic, Config{Center: celestial.Coord{RA: 1, Dec: 1}, FOV: 50}, errors.ErrCodeFOVTooLarge},
		{"optic negative aspect", Optic, Config{Center: celestial.Coord{RA: 1, Dec: 1}, FOV: 2, Aspect: -1}, errors.ErrCodeInvalidOptic},
		{"optic below horizon", Optic, Config{Center: celestial.Coord{RA: 2.51667, Dec: -88}, FOV: 6.5, Observer: obs}, errors.ErrCodeBelowHorizon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.kind, tt.cfg)
			if !errors.Is(err, tt.code) {
				t.Errorf("New() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestWraparoundContiguity(t *testing.T) {
	// Points straddling 0h must land next to each other on a chart centered
	// at 0h.
	ras := []float64{23.999, 0.0, 0.001}
	for _, kind := range []Kind{StereoNorth, StereoSouth, Mercator, Mollweide} {
		t.Run(string(kind), func(t *testing.T) {
			p := mustNew(t, kind, Config{RACenter: 0})
			var pts []Point
			for _, ra := range ras {
				pts = append(pts, p.Project(ra, 10))
			}
			for i := 1; i < len(pts); i++ {
				if d := dist(pts[i-1], pts[i]); d > 1e-3 {
					t.Errorf("ra %v -> %v jumped %v in plot space", ras[i-1], ras[i], d)
				}
			}
		})
	}
}

func TestMapFamiliesPutEastOnTheLeft(t *testing.T) {
	for _, kind := range []Kind{Mercator, Mollweide} {
		t.Run(string(kind), func(t *testing.T) {
			p := mustNew(t, kind, Config{RACenter: 0})
			west := p.Project(23.999, 0)
			mid := p.Project(0, 0)
			east := p.Project(0.001, 0)
			if !(west.X > mid.X && mid.X > east.X) {
				t.Errorf("x order = %v, %v, %v, want decreasing toward east", west.X, mid.X, east.X)
			}
		})
	}
}

func TestPoleContinuity(t *testing.T) {
	tests := []struct {
		kind Kind
		tol  float64
	}{
		{StereoNorth, 0.01},
		{Mercator, 1e-9},
		{Mollweide, 0.01},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			p := mustNew(t, tt.kind, Config{RACenter: 6})
			near := p.Project(6, 89.9)
			pole := p.Project(6, 90)
			if d := dist(near, pole); d > tt.tol {
				t.Errorf("dec 89.9 and 90 are %v apart, want <= %v", d, tt.tol)
			}
			if math.IsNaN(pole.X) || math.IsNaN(pole.Y) || math.IsInf(pole.Y, 0) {
				t.Errorf("pole projected to %+v", pole)
			}
		})
	}
}

func TestStereoHemisphereLimit(t *testing.T) {
	north := mustNew(t, StereoNorth, Config{})
	south := mustNew(t, StereoSouth, Config{})

	if !north.Valid(3, -HemisphereLimit) || north.Valid(3, -HemisphereLimit-0.1) {
		t.Error("north stereo validity boundary not at -30")
	}
	if !south.Valid(3, HemisphereLimit) || south.Valid(3, HemisphereLimit+0.1) {
		t.Error("south stereo validity boundary not at +30")
	}
	if got := north.Project(0, 90); dist(got, Point{}) > 1e-12 {
		t.Errorf("north pole projected to %+v, want origin", got)
	}
}

func TestMercatorClipsDeclination(t *testing.T) {
	p := mustNew(t, Mercator, Config{})
	if a, b := p.Project(1, 85), p.Project(1, 89); a != b {
		t.Errorf("dec 89 = %+v, want clipped to dec 85 = %+v", b, a)
	}
}

func TestMollweideTheta(t *testing.T) {
	for _, deg := range []float64{-89.99, -60, -30, -1, 0, 1, 30, 45, 60, 80, 89, 89.99} {
		phi := celestial.DegToRad(deg)
		theta, iters, ok := MollweideTheta(phi)
		if !ok {
			t.Errorf("phi %v: did not converge in %d iterations", deg, iters)
		}
		if iters > MollweideMaxIterations {
			t.Errorf("phi %v: %d iterations exceeds cap", deg, iters)
		}
		if r := 2*theta + math.Sin(2*theta) - math.Pi*math.Sin(phi); math.Abs(r) > 1e-6 {
			t.Errorf("phi %v: residual %v", deg, r)
		}
	}

	for _, deg := range []float64{89.9999999, -89.9999999} {
		phi := celestial.DegToRad(deg)
		theta, iters, ok := MollweideTheta(phi)
		if !ok || iters > 1 {
			t.Errorf("phi %v: got (%v, %d, %v), want converged in one iteration", deg, theta, iters, ok)
		}
		if math.Abs(math.Abs(theta)-math.Pi/2) > 1e-6 {
			t.Errorf("phi %v: theta %v, want near the pole", deg, theta)
		}
	}

	for _, pole := range []float64{math.Pi / 2, -math.Pi / 2} {
		theta, iters, ok := MollweideTheta(pole)
		if theta != pole || iters != 0 || !ok {
			t.Errorf("pole %v: got (%v, %d, %v), want exact in 0 iterations", pole, theta, iters, ok)
		}
	}
}

func TestMollweideBounds(t *testing.T) {
	p := mustNew(t, Mollweide, Config{RACenter: 12})
	// The ellipse is 4√2 wide and 2√2 tall.
	edge := p.Project(0, 0)
	if math.Abs(math.Abs(edge.X)-2*math.Sqrt2) > 1e-9 {
		t.Errorf("antimeridian x = %v, want ±2√2", edge.X)
	}
	top := p.Project(12, 90)
	if math.Abs(top.Y-math.Sqrt2) > 1e-12 || math.Abs(top.X) > 1e-12 {
		t.Errorf("north pole = %+v, want (0, √2)", top)
	}
}

func TestUnprojectRoundTrip(t *testing.T) {
	coords := []celestial.Coord{
		{RA: 0, Dec: 0},
		{RA: 5.5, Dec: 20},
		{RA: 23.9, Dec: -12},
		{RA: 13.25, Dec: 60},
	}
	tests := []struct {
		kind Kind
		cfg  Config
	}{
		{StereoNorth, Config{RACenter: 3}},
		{StereoSouth, Config{RACenter: 3}},
		{Mercator, Config{RACenter: 3}},
		{Mollweide, Config{RACenter: 3}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			p := mustNew(t, tt.kind, tt.cfg)
			inv, ok := p.(Inverter)
			if !ok {
				t.Fatalf("%s does not implement Inverter", tt.kind)
			}
			for _, c := range coords {
				ra, dec, ok := inv.Unproject(p.Project(c.RA, c.Dec))
				if !ok {
					t.Errorf("Unproject(%+v) not ok", c)
					continue
				}
				if math.Abs(celestial.WrapHours(ra-c.RA)) > 1e-5 || math.Abs(dec-c.Dec) > 1e-4 {
					t.Errorf("round trip %+v -> (%v, %v)", c, ra, dec)
				}
			}
		})
	}
}

func TestZenith(t *testing.T) {
	obs := testObserver()
	p := mustNew(t, Zenith, Config{Observer: obs})

	zen := obs.Zenith()
	if got := p.Project(zen.RA, zen.Dec); dist(got, Point{}) > 1e-3 {
		t.Errorf("zenith projected to %+v, want origin", got)
	}

	// The celestial pole sits due north for a northern observer.
	ncp := p.Project(0, 90)
	if math.Abs(ncp.X) > 1e-6 || ncp.Y <= 0 {
		t.Errorf("pole projected to %+v, want on +y axis", ncp)
	}
	// Altitude equals latitude, so r = tan((90-lat)/2).
	wantR := math.Tan(celestial.DegToRad(90-obs.Lat) / 2)
	if math.Abs(ncp.Y-wantR) > 1e-3 {
		t.Errorf("pole radius = %v, want %v", ncp.Y, wantR)
	}

	if p.Valid(2.5, -88) {
		t.Error("dec -88 should be below the horizon at latitude 33")
	}
	if !p.Valid(zen.RA, zen.Dec) {
		t.Error("zenith should be valid")
	}
}

func TestOptic(t *testing.T) {
	center := celestial.Coord{RA: 5, Dec: 20}
	p := mustNew(t, Optic, Config{Center: center, FOV: 4})

	if got := p.Project(center.RA, center.Dec); dist(got, Point{}) > 1e-9 {
		t.Errorf("center projected to %+v, want origin", got)
	}
	// Half the field north of center is the top of the field.
	top := p.Project(center.RA, center.Dec+2)
	if math.Abs(top.X) > 1e-9 || math.Abs(top.Y-1) > 1e-9 {
		t.Errorf("field top = %+v, want (0, 1)", top)
	}
	if !p.Valid(center.RA, center.Dec+1.9) {
		t.Error("point inside the field should be valid")
	}
	if p.Valid(center.RA, center.Dec+2.5) {
		t.Error("point outside the field should be invalid")
	}
	if p.Valid(17, -20) {
		t.Error("antipode should be invalid")
	}

	inv := p.(Inverter)
	for _, c := range []celestial.Coord{{RA: 5.05, Dec: 21}, {RA: 4.97, Dec: 19.2}} {
		ra, dec, _ := inv.Unproject(p.Project(c.RA, c.Dec))
		if math.Abs(ra-c.RA) > 1e-9 || math.Abs(dec-c.Dec) > 1e-9 {
			t.Errorf("round trip %+v -> (%v, %v)", c, ra, dec)
		}
	}
}

func TestOpticRotationAndAspect(t *testing.T) {
	center := celestial.Coord{RA: 10, Dec: -5}
	p := mustNew(t, Optic, Config{Center: center, FOV: 4, Rotation: 90, Aspect: 0.5})

	// North of center is turned onto +x.
	got := p.Project(center.RA, center.Dec+1)
	want := math.Tan(celestial.DegToRad(1)) / math.Tan(celestial.DegToRad(2))
	if math.Abs(got.X-want) > 1e-9 || math.Abs(got.Y) > 1e-9 {
		t.Errorf("rotated point = %+v, want (%v, 0)", got, want)
	}

	in := p.(interface{ InField(Point) bool })
	if !in.InField(Point{X: 0.9, Y: 0.4}) {
		t.Error("(0.9, 0.4) should be inside a 2x1 field")
	}
	if in.InField(Point{X: 0, Y: 0.6}) {
		t.Error("(0, 0.6) should be outside a 2x1 field")
	}
}

func TestOpticWraparound(t *testing.T) {
	p := mustNew(t, Optic, Config{Center: celestial.Coord{RA: 0, Dec: 0}, FOV: 2})
	a := p.Project(23.999, 0)
	b := p.Project(0.001, 0)
	if !p.Valid(23.999, 0) || !p.Valid(0.001, 0) {
		t.Fatal("points straddling 0h should both be in the field")
	}
	if math.Abs(a.X+b.X) > 1e-9 || a.X <= 0 {
		t.Errorf("x = %v and %v, want symmetric with west positive", a.X, b.X)
	}
}

func TestOpticWithObserver(t *testing.T) {
	obs := testObserver()
	zen := obs.Zenith()
	center := celestial.Coord{RA: zen.RA, Dec: zen.Dec - 20}
	p := mustNew(t, Optic, Config{Center: center, FOV: 5, Observer: obs})

	if got := p.Project(center.RA, center.Dec); dist(got, Point{}) > 1e-9 {
		t.Errorf("center projected to %+v, want origin", got)
	}
	if !p.Valid(center.RA, center.Dec) {
		t.Error("center should be valid")
	}
	// The zenith lies straight up from a target on the meridian.
	up := p.Project(zen.RA, zen.Dec-19)
	if up.Y <= 0 || math.Abs(up.X) > 1e-6 {
		t.Errorf("point toward zenith = %+v, want on +y axis", up)
	}
}
