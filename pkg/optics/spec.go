package optics

import (
	"strings"

	"github.com/matzehuels/starchart/pkg/errors"
)

// Spec is the serializable form of an optic, as found in scene files.
// Only the fields relevant to Type are read.
type Spec struct {
	Type string `json:"type" toml:"type" yaml:"type"`

	Magnification float64 `json:"magnification,omitempty" toml:"magnification,omitempty" yaml:"magnification,omitempty"`
	FOV           float64 `json:"fov,omitempty" toml:"fov,omitempty" yaml:"fov,omitempty"`

	FocalLength         float64 `json:"focal_length,omitempty" toml:"focal_length,omitempty" yaml:"focal_length,omitempty"`
	EyepieceFocalLength float64 `json:"eyepiece_focal_length,omitempty" toml:"eyepiece_focal_length,omitempty" yaml:"eyepiece_focal_length,omitempty"`
	EyepieceFOV         float64 `json:"eyepiece_fov,omitempty" toml:"eyepiece_fov,omitempty" yaml:"eyepiece_fov,omitempty"`

	SensorWidth     float64 `json:"sensor_width,omitempty" toml:"sensor_width,omitempty" yaml:"sensor_width,omitempty"`
	SensorHeight    float64 `json:"sensor_height,omitempty" toml:"sensor_height,omitempty" yaml:"sensor_height,omitempty"`
	LensFocalLength float64 `json:"lens_focal_length,omitempty" toml:"lens_focal_length,omitempty" yaml:"lens_focal_length,omitempty"`
	Rotation        float64 `json:"rotation,omitempty" toml:"rotation,omitempty" yaml:"rotation,omitempty"`
}

// Types lists the accepted Spec.Type values.
var Types = []string{"binoculars", "scope", "refractor", "reflector", "camera"}

// Build returns the validated optic described by s.
func (s Spec) Build() (Optic, error) {
	scope := Scope{FocalLength: s.FocalLength, EyepieceFocalLength: s.EyepieceFocalLength, EyepieceFOV: s.EyepieceFOV}

	var o Optic
	switch strings.ToLower(strings.TrimSpace(s.Type)) {
	case "binoculars":
		o = Binoculars{Mag: s.Magnification, FOV: s.FOV}
	case "scope":
		o = scope
	case "refractor":
		o = Refractor{scope}
	case "reflector":
		o = Reflector{scope}
	case "camera":
		o = Camera{SensorWidth: s.SensorWidth, SensorHeight: s.SensorHeight, LensFocalLength: s.LensFocalLength, Rotate: s.Rotation}
	default:
		return nil, errors.New(errors.ErrCodeInvalidOptic, "unknown optic type %q (expected one of: %s)", s.Type, strings.Join(Types, ", "))
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}
