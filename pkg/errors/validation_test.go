package errors

import (
	"math"
	"testing"
)

func TestValidateDec(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"equator", 0, false},
		{"north pole", 90, false},
		{"south pole", -90, false},
		{"mid", 41.27, false},

		{"past north pole", 90.01, true},
		{"past south pole", -91, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDec("dec", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDec(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateDec(%v) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateRA(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"wrapped viewport edge", 26, false},
		{"negative", -2, false},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRA("ra", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRA(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateObserver(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{"san diego", 32.97, -117.04, false},
		{"pole", 90, 0, false},
		{"date line", 0, 180, false},

		{"bad latitude", 95, 0, true},
		{"bad longitude", 0, -200, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLatitude(tt.lat)
			if err == nil {
				err = ValidateLongitude(tt.lon)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("observer (%v, %v) error = %v, wantErr %v", tt.lat, tt.lon, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidObserver) {
				t.Errorf("observer error code = %v, want %v", GetCode(err), ErrCodeInvalidObserver)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	valid := map[string]bool{"svg": true, "png": true, "pdf": true}

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"svg", "svg", false},
		{"png", "png", false},
		{"pdf", "pdf", false},

		{"empty", "", true},
		{"jpeg", "jpeg", true},
		{"uppercase", "SVG", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.input, valid)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePadding(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"none", 0, false},
		{"quarter inch", 0.25, false},
		{"negative", -0.1, true},
		{"huge", 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePadding(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePadding(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple file", "chart.svg", false},
		{"nested path", "out/maps/orion.png", false},
		{"absolute path", "/tmp/zenith.pdf", false},
		{"dotted name", "orion..v2.svg", false},

		{"empty", "", true},
		{"null byte", "chart\x00.svg", true},
		{"control char", "chart\x01.svg", true},
		{"path traversal", "../chart.svg", true},
		{"nested traversal", "out/../../chart.svg", true},
		{"too long", string(make([]byte, 600)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
