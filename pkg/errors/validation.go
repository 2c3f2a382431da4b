package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateRA checks that a right ascension is a finite number of hours.
// Values outside [0, 24) are accepted and wrapped by callers; only NaN and
// infinities are rejected.
func ValidateRA(field string, ra float64) error {
	if math.IsNaN(ra) || math.IsInf(ra, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number of hours", field)
	}
	return nil
}

// ValidateDec checks that a declination lies within [-90, 90] degrees.
func ValidateDec(field string, dec float64) error {
	if math.IsNaN(dec) || dec < -90 || dec > 90 {
		return New(ErrCodeInvalidInput, "%s must be between -90 and 90 degrees (got %g)", field, dec)
	}
	return nil
}

// ValidateLatitude validates an observer latitude in degrees.
func ValidateLatitude(lat float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return New(ErrCodeInvalidObserver, "latitude must be between -90 and 90 (got %g)", lat)
	}
	return nil
}

// ValidateLongitude validates an observer longitude in degrees (east positive).
func ValidateLongitude(lon float64) error {
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return New(ErrCodeInvalidObserver, "longitude must be between -180 and 180 (got %g)", lon)
	}
	return nil
}

// ValidateFormat checks an export format against the supported set.
func ValidateFormat(format string, valid map[string]bool) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !valid[format] {
		names := make([]string, 0, len(valid))
		for _, f := range []string{"svg", "png", "pdf"} {
			if valid[f] {
				names = append(names, f)
			}
		}
		return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(names, ", "))
	}
	return nil
}

// ValidatePadding validates export padding in inches.
func ValidatePadding(padding float64) error {
	if math.IsNaN(padding) || padding < 0 {
		return New(ErrCodeInvalidInput, "padding must be zero or positive (got %g)", padding)
	}
	if padding > 10 {
		return New(ErrCodeInvalidInput, "padding too large (max 10 inches)")
	}
	return nil
}

// ValidateOutputPath validates a file path used for writing chart artifacts.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}
