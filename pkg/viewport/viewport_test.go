package viewport

import (
	"strings"
	"testing"

	"github.com/matzehuels/starchart/pkg/errors"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name                         string
		raMin, raMax, decMin, decMax float64
		wantMsg                      string
	}{
		{"valid", 0, 24, -90, 90, ""},
		{"valid crossing", 22, 26, -10, 10, ""},
		{"ra equal", 5, 5, 0, 10, "ra_min must be less than ra_max"},
		{"ra reversed", 6, 2, 0, 10, "ra_min must be less than ra_max"},
		{"dec equal", 0, 4, 10, 10, "dec_min must be less than dec_max"},
		{"dec reversed", 0, 4, 20, -20, "dec_min must be less than dec_max"},
		{"ra span too wide", 2, 27, 0, 10, "ra span"},
		{"negative ra", -1, 4, 0, 10, "ra_min"},
		{"dec out of range", 0, 4, -95, 10, "dec range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.raMin, tt.raMax, tt.decMin, tt.decMax)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("New() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, errors.ErrCodeInvalidViewport) {
				t.Fatalf("New() error = %v, want %s", err, errors.ErrCodeInvalidViewport)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("New() error = %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestWrapped(t *testing.T) {
	w, err := Wrapped(22, 2, -30, 30)
	if err != nil {
		t.Fatalf("Wrapped: %v", err)
	}
	if w.RAMin != 22 || w.RAMax != 26 {
		t.Errorf("Wrapped = %+v, want RA 22..26", w)
	}
	if !w.CrossesZero() {
		t.Error("CrossesZero() = false, want true")
	}
	if c := w.Center(); c.RA != 0 || c.Dec != 0 {
		t.Errorf("Center() = %+v, want (0, 0)", c)
	}
}

func TestContainsAcrossZero(t *testing.T) {
	v, _ := Wrapped(22, 2, -30, 30)

	tests := []struct {
		ra, dec float64
		want    bool
	}{
		{23.5, 0, true},
		{1.5, 0, true},
		{12, 0, false},
		{23.999, 0, true},
		{0.0, 0, true},
		{0.001, 0, true},
		{22, 0, true},
		{2, 0, true},
		{21.999, 0, false},
		{2.001, 0, false},
		{24.5, 0, true}, // same as 0.5h
		{-0.5, 0, true}, // same as 23.5h
		{23.5, 30, true},
		{23.5, 30.01, false},
		{1.5, -31, false},
	}

	for _, tt := range tests {
		if got := v.Contains(tt.ra, tt.dec); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.ra, tt.dec, got, tt.want)
		}
	}
}

func TestContainsPlainWindow(t *testing.T) {
	v, _ := New(3, 9, 0, 45)
	tests := []struct {
		ra, dec float64
		want    bool
	}{
		{3, 10, true},
		{9, 10, true},
		{6, 0, true},
		{2.999, 10, false},
		{9.001, 10, false},
		{23.999, 10, false},
		{0.001, 10, false},
		{6, -1, false},
	}
	for _, tt := range tests {
		if got := v.Contains(tt.ra, tt.dec); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.ra, tt.dec, got, tt.want)
		}
	}
}

func TestContainsFullSky(t *testing.T) {
	v := Full()
	for _, ra := range []float64{0, 0.001, 11.5, 23.999, 24} {
		if !v.Contains(ra, 0) {
			t.Errorf("full sky Contains(%v, 0) = false", ra)
		}
	}

	// A window ending exactly at 24h includes 0h.
	v, _ = New(20, 24, -10, 10)
	if !v.Contains(0, 0) || !v.Contains(23.999, 0) || v.Contains(0.001, 0) {
		t.Error("window 20..24 boundary handling is wrong")
	}
}

func TestContainsIsIdempotent(t *testing.T) {
	v, _ := Wrapped(22, 2, -30, 30)
	r := Resolver{Viewport: v}
	for _, ra := range []float64{23.999, 0.0, 0.001, 12} {
		first := r.InBounds(ra, 5)
		for i := 0; i < 10; i++ {
			if got := r.InBounds(ra, 5); got != first {
				t.Fatalf("InBounds(%v) call %d = %v, first = %v", ra, i, got, first)
			}
		}
	}
}

type decFloor float64

func (d decFloor) Valid(_, dec float64) bool { return dec >= float64(d) }

func TestResolver(t *testing.T) {
	r := Resolver{
		Viewport:  Full(),
		Validator: decFloor(-30),
		Extra:     func(ra, _ float64) bool { return ra < 20 },
	}

	tests := []struct {
		name    string
		ra, dec float64
		want    bool
	}{
		{"accepted", 5, 10, true},
		{"rejected by validator", 5, -40, false},
		{"rejected by extra", 21, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.InBounds(tt.ra, tt.dec); got != tt.want {
				t.Errorf("InBounds(%v, %v) = %v, want %v", tt.ra, tt.dec, got, tt.want)
			}
		})
	}
}
