// Package viewport decides which sky positions a chart displays.
//
// A Viewport is an RA/Dec rectangle. RA is circular, so a viewport may
// straddle 0h: it is written either with RAMax past 24 (22 to 26) or built
// with [Wrapped] from the numerically reversed pair (22, 2). Both describe
// the same window, 22h through midnight to 2h.
//
// A [Resolver] layers a projection's validity domain, and optionally any
// other predicate, on top of the rectangle test.
package viewport

import (
	"math"

	"github.com/matzehuels/starchart/pkg/celestial"
	"github.com/matzehuels/starchart/pkg/errors"
)

// Viewport is an RA (hours) by Dec (degrees) window.
type Viewport struct {
	RAMin  float64 `json:"ra_min" toml:"ra_min" yaml:"ra_min"`
	RAMax  float64 `json:"ra_max" toml:"ra_max" yaml:"ra_max"`
	DecMin float64 `json:"dec_min" toml:"dec_min" yaml:"dec_min"`
	DecMax float64 `json:"dec_max" toml:"dec_max" yaml:"dec_max"`
}

// Full is the whole sky.
func Full() Viewport {
	return Viewport{RAMin: 0, RAMax: 24, DecMin: -90, DecMax: 90}
}

// New validates and returns a viewport. RAMin must be less than RAMax and
// DecMin less than DecMax; a window crossing 0h is written with RAMax > 24.
func New(raMin, raMax, decMin, decMax float64) (Viewport, error) {
	v := Viewport{RAMin: raMin, RAMax: raMax, DecMin: decMin, DecMax: decMax}
	return v, v.Validate()
}

// Wrapped is like New but accepts raMin > raMax as a window that crosses
// 0h, so Wrapped(22, 2, ...) equals New(22, 26, ...).
func Wrapped(raMin, raMax, decMin, decMax float64) (Viewport, error) {
	if raMin > raMax {
		raMax += 24
	}
	return New(raMin, raMax, decMin, decMax)
}

// Validate reports the first invalid field.
func (v Viewport) Validate() error {
	for _, f := range []struct {
		name string
		val  float64
	}{{"ra_min", v.RAMin}, {"ra_max", v.RAMax}, {"dec_min", v.DecMin}, {"dec_max", v.DecMax}} {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return errors.New(errors.ErrCodeInvalidViewport, "%s must be a finite number", f.name)
		}
	}
	if v.RAMin >= v.RAMax {
		return errors.New(errors.ErrCodeInvalidViewport, "ra_min must be less than ra_max")
	}
	if v.DecMin >= v.DecMax {
		return errors.New(errors.ErrCodeInvalidViewport, "dec_min must be less than dec_max")
	}
	if v.RAMin < 0 || v.RAMin >= 24 {
		return errors.New(errors.ErrCodeInvalidViewport, "ra_min must be in [0, 24) (got %g)", v.RAMin)
	}
	if v.RAMax-v.RAMin > 24 {
		return errors.New(errors.ErrCodeInvalidViewport, "ra span cannot exceed 24 hours (got %g)", v.RAMax-v.RAMin)
	}
	if v.DecMin < -90 || v.DecMax > 90 {
		return errors.New(errors.ErrCodeInvalidViewport, "dec range must lie within [-90, 90] (got %g to %g)", v.DecMin, v.DecMax)
	}
	return nil
}

// Span is the RA width in hours.
func (v Viewport) Span() float64 { return v.RAMax - v.RAMin }

// CrossesZero reports whether the RA window straddles 0h.
func (v Viewport) CrossesZero() bool {
	return v.Span() < 24 && v.RAMax > 24
}

// Center returns the middle of the window, RA normalized.
func (v Viewport) Center() celestial.Coord {
	return celestial.Coord{
		RA:  celestial.NormalizeRA((v.RAMin + v.RAMax) / 2),
		Dec: (v.DecMin + v.DecMax) / 2,
	}
}

// Contains reports whether (ra, dec) lies inside the window. Bounds are
// inclusive and ra may be given in any turn.
func (v Viewport) Contains(ra, dec float64) bool {
	if dec < v.DecMin || dec > v.DecMax {
		return false
	}
	if v.Span() >= 24 {
		return true
	}
	ra = celestial.NormalizeRA(ra)
	lo := v.RAMin
	hi := v.RAMax
	if hi > 24 {
		// Crossing 0h: the window is [lo, 24) plus [0, hi-24].
		return ra >= lo || ra <= hi-24
	}
	if hi == 24 && ra == 0 {
		return true
	}
	return ra >= lo && ra <= hi
}

// Validator is a projection validity domain.
type Validator interface {
	Valid(ra, dec float64) bool
}

// Resolver combines a viewport with a projection's validity domain and an
// optional extra predicate. The zero Validator and Extra accept everything.
type Resolver struct {
	Viewport  Viewport
	Validator Validator
	Extra     func(ra, dec float64) bool
}

// InBounds reports whether (ra, dec) should be drawn.
func (r Resolver) InBounds(ra, dec float64) bool {
	if !r.Viewport.Contains(ra, dec) {
		return false
	}
	if r.Validator != nil && !r.Validator.Valid(ra, dec) {
		return false
	}
	if r.Extra != nil && !r.Extra(ra, dec) {
		return false
	}
	return true
}
