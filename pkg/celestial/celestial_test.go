package celestial

import (
	"math"
	"testing"
	"time"
)

func TestNormalizeRA(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{23.999, 23.999},
		{24, 0},
		{26, 2},
		{-1, 23},
		{-25, 23},
		{48.5, 0.5},
	}

	for _, tt := range tests {
		if got := NormalizeRA(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeRA(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWrapHours(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{11.9, 11.9},
		{12, -12},
		{-12, -12},
		{23.5, -0.5},
		{-23.5, 0.5},
		{0.001 - 23.999, 0.002},
	}

	for _, tt := range tests {
		if got := WrapHours(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapHours(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSeparation(t *testing.T) {
	tests := []struct {
		name string
		a, b Coord
		want float64
	}{
		{"same point", Coord{5, 20}, Coord{5, 20}, 0},
		{"one hour on equator", Coord{0, 0}, Coord{1, 0}, 15},
		{"across zero hours", Coord{23.5, 0}, Coord{0.5, 0}, 15},
		{"pole to equator", Coord{3, 90}, Coord{17, 0}, 90},
		{"opposite poles", Coord{0, 90}, Coord{0, -90}, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Separation(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Separation = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointRoundTrip(t *testing.T) {
	for _, c := range []Coord{{0, 0}, {5.5, -30}, {23.99, 17.27}, {12, 89.5}} {
		got := FromPoint(c.Point())
		if math.Abs(WrapHours(got.RA-c.RA)) > 1e-9 || math.Abs(got.Dec-c.Dec) > 1e-9 {
			t.Errorf("FromPoint(Point(%v)) = %v", c, got)
		}
	}
}

func TestLSTAtJ2000(t *testing.T) {
	// GMST at 2000-01-01 12:00 UT is 280.46° (18.697h). Apparent sidereal
	// time differs by the equation of the equinoxes, well under a minute.
	obs := Observer{Lat: 0, Lon: 0, Time: time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)}
	if got := obs.LST(); math.Abs(got-18.697) > 0.01 {
		t.Errorf("LST = %v, want ~18.697", got)
	}

	east := obs
	east.Lon = 90
	if got := east.LST(); math.Abs(WrapHours(got-(18.697+6))) > 0.01 {
		t.Errorf("LST at 90E = %v, want ~0.697", got)
	}
}

func TestHorizontalZenith(t *testing.T) {
	obs := Observer{Lat: 32.97, Lon: -117.04, Time: time.Date(2023, 12, 16, 21, 0, 0, 0, time.UTC)}
	h := obs.Horizontal(obs.Zenith())
	if math.Abs(h.Alt-90) > 1e-4 {
		t.Errorf("zenith altitude = %v, want 90", h.Alt)
	}
}

func TestHorizontalPolaris(t *testing.T) {
	obs := Observer{Lat: 35, Lon: -117, Time: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)}
	h := obs.Horizontal(Coord{RA: 37.954 / 15, Dec: 89.264})

	if math.Abs(h.Alt-obs.Lat) > 1 {
		t.Errorf("Polaris altitude = %v, want ~%v", h.Alt, obs.Lat)
	}
	if h.Az > 2 && h.Az < 358 {
		t.Errorf("Polaris azimuth = %v, want ~0", h.Az)
	}
}

func TestHorizontalCardinalPoints(t *testing.T) {
	obs := Observer{Lat: 40, Lon: 10, Time: time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)}
	lst := obs.LST()

	tests := []struct {
		name   string
		c      Coord
		wantAz float64
	}{
		// On the meridian below the zenith lies due south.
		{"meridian south", Coord{RA: lst, Dec: 0}, 180},
		// Six hours east of the meridian on the equator is the east point.
		{"east point", Coord{RA: NormalizeRA(lst + 6), Dec: 0}, 90},
		{"west point", Coord{RA: NormalizeRA(lst - 6), Dec: 0}, 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := obs.Horizontal(tt.c)
			if math.Abs(h.Az-tt.wantAz) > 1e-6 {
				t.Errorf("Az = %v, want %v", h.Az, tt.wantAz)
			}
		})
	}

	conv := obs.HorizontalFunc()
	if h := conv(Coord{RA: lst, Dec: 0}); math.Abs(h.Alt-50) > 1e-6 {
		t.Errorf("meridian equator altitude = %v, want 50", h.Alt)
	}
}

func TestEclipticToEquatorial(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want Coord
	}{
		{"vernal equinox", 0, Coord{0, 0}},
		{"summer solstice", 90, Coord{6, Obliquity}},
		{"autumnal equinox", 180, Coord{12, 0}},
		{"winter solstice", 270, Coord{18, -Obliquity}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EclipticToEquatorial(tt.lon, 0, Obliquity)
			if math.Abs(WrapHours(got.RA-tt.want.RA)) > 1e-9 || math.Abs(got.Dec-tt.want.Dec) > 1e-9 {
				t.Errorf("EclipticToEquatorial(%v) = %v, want %v", tt.lon, got, tt.want)
			}
		})
	}
}

func TestEclipticPath(t *testing.T) {
	path := EclipticPath(1)
	if len(path) != 361 {
		t.Fatalf("len(path) = %d, want 361", len(path))
	}
	for _, c := range path {
		if math.Abs(c.Dec) > Obliquity+1e-9 {
			t.Errorf("ecliptic point %v exceeds obliquity", c)
		}
	}
}
