// Package optics models the instruments an optic chart simulates.
//
// Every instrument reduces to a true field of view, a magnification and a
// field shape. Eyepiece instruments see a circle; cameras see a rectangle
// that may be rotated.
package optics

import (
	"fmt"
	"math"

	"github.com/matzehuels/starchart/pkg/errors"
)

// Shape is the outline of an optic's field.
type Shape string

const (
	Circle    Shape = "circle"
	Rectangle Shape = "rectangle"
)

// Mirror is implemented by optics whose image is flipped left to right.
type Mirror interface {
	Mirrored() bool
}

// Optic is an observing instrument.
type Optic interface {
	// TrueFOV is the full field width on the sky in degrees.
	TrueFOV() float64
	Magnification() float64
	Shape() Shape
	// Aspect is field height over width. Zero for circular fields.
	Aspect() float64
	// Rotation turns the field clockwise, in degrees.
	Rotation() float64
	Validate() error
	String() string
}

type param struct {
	name  string
	value float64
}

func positive(kind string, params ...param) error {
	for _, p := range params {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return errors.New(errors.ErrCodeInvalidOptic, "%s %s must be positive (got %g)", kind, p.name, p.value)
		}
	}
	return nil
}

// Binoculars have a fixed magnification and apparent field.
type Binoculars struct {
	Mag float64 // magnification, e.g. 10 for 10x50
	FOV float64 // apparent field of view, degrees
}

func (b Binoculars) TrueFOV() float64       { return b.FOV / b.Mag }
func (b Binoculars) Magnification() float64 { return b.Mag }
func (Binoculars) Shape() Shape             { return Circle }
func (Binoculars) Aspect() float64          { return 0 }
func (Binoculars) Rotation() float64        { return 0 }

func (b Binoculars) Validate() error {
	return positive("binoculars", param{"magnification", b.Mag}, param{"fov", b.FOV})
}

func (b Binoculars) String() string {
	return fmt.Sprintf("Binoculars %gx @ %g° = %.2f°", b.Mag, b.FOV, b.TrueFOV())
}

// Scope is a telescope used with an eyepiece. Refractor and Reflector share
// its optics and differ only in image orientation.
type Scope struct {
	FocalLength         float64 // mm
	EyepieceFocalLength float64 // mm
	EyepieceFOV         float64 // apparent field of the eyepiece, degrees
}

func (s Scope) Magnification() float64 { return s.FocalLength / s.EyepieceFocalLength }
func (s Scope) TrueFOV() float64       { return s.EyepieceFOV / s.Magnification() }
func (Scope) Shape() Shape             { return Circle }
func (Scope) Aspect() float64          { return 0 }
func (Scope) Rotation() float64        { return 0 }

func (s Scope) Validate() error { return s.validate("scope") }

func (s Scope) validate(kind string) error {
	return positive(kind,
		param{"focal_length", s.FocalLength},
		param{"eyepiece_focal_length", s.EyepieceFocalLength},
		param{"eyepiece_fov", s.EyepieceFOV},
	)
}

func (s Scope) String() string { return s.describe("Scope") }

func (s Scope) describe(name string) string {
	return fmt.Sprintf("%s %gmm w/ %gmm (%.0fx) @ %g° = %.2f°",
		name, s.FocalLength, s.EyepieceFocalLength, s.Magnification(), s.EyepieceFOV, s.TrueFOV())
}

// Refractor is a lens telescope. Its star diagonal mirrors the image.
type Refractor struct {
	Scope
}

// Mirrored reports that the image is flipped left to right.
func (Refractor) Mirrored() bool { return true }

func (r Refractor) Validate() error { return r.validate("refractor") }
func (r Refractor) String() string  { return r.describe("Refractor") }

// Reflector is a Newtonian telescope. Its image is rotated 180°.
type Reflector struct {
	Scope
}

func (r Reflector) Rotation() float64 { return 180 }
func (r Reflector) Validate() error   { return r.validate("reflector") }
func (r Reflector) String() string    { return r.describe("Reflector") }

// Camera is a sensor behind a lens.
type Camera struct {
	SensorWidth     float64 // mm
	SensorHeight    float64 // mm
	LensFocalLength float64 // mm
	Rotate          float64 // degrees, clockwise
}

// FOVWidth returns the horizontal field in degrees.
func (c Camera) FOVWidth() float64 { return fov(c.SensorWidth, c.LensFocalLength) }

// FOVHeight returns the vertical field in degrees.
func (c Camera) FOVHeight() float64 { return fov(c.SensorHeight, c.LensFocalLength) }

func fov(size, focal float64) float64 {
	return 2 * math.Atan(size/(2*focal)) * 180 / math.Pi
}

func (c Camera) TrueFOV() float64     { return c.FOVWidth() }
func (Camera) Magnification() float64 { return 1 }
func (Camera) Shape() Shape           { return Rectangle }

// Aspect is exact in the gnomonic plane: the tangent of each half field is
// proportional to the sensor dimension.
func (c Camera) Aspect() float64   { return c.SensorHeight / c.SensorWidth }
func (c Camera) Rotation() float64 { return c.Rotate }

func (c Camera) Validate() error {
	return positive("camera",
		param{"sensor_width", c.SensorWidth},
		param{"sensor_height", c.SensorHeight},
		param{"lens_focal_length", c.LensFocalLength},
	)
}

func (c Camera) String() string {
	return fmt.Sprintf("%gmm w/ %gx%gmm sensor = %.2f° x %.2f°",
		c.LensFocalLength, c.SensorWidth, c.SensorHeight, c.FOVWidth(), c.FOVHeight())
}
