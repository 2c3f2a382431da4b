// Package ephemeris computes apparent positions of the Sun, Moon and
// planets for a given instant.
//
// [Meeus] is accurate to a fraction of a degree, which is plenty for a chart
// marker. Callers depend on [Provider] so tests and future backends can
// substitute their own positions.
package ephemeris

import (
	"math"
	"strings"
	"time"

	"github.com/matzehuels/starchart/pkg/errors"
)

// Body identifies a solar system body.
type Body string

const (
	Sun     Body = "sun"
	Moon    Body = "moon"
	Mercury Body = "mercury"
	Venus   Body = "venus"
	Mars    Body = "mars"
	Jupiter Body = "jupiter"
	Saturn  Body = "saturn"
	Uranus  Body = "uranus"
	Neptune Body = "neptune"
)

// Planets lists the planets in order from the Sun.
var Planets = []Body{Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune}

// Title returns the display name, e.g. "Jupiter".
func (b Body) Title() string {
	if b == "" {
		return ""
	}
	return strings.ToUpper(string(b[:1])) + string(b[1:])
}

// ParseBody parses a body name, case-insensitively.
func ParseBody(s string) (Body, error) {
	b := Body(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := diameters[b]; !ok {
		return "", errors.New(errors.ErrCodeNotFound, "unknown body %q", s)
	}
	return b, nil
}

// Position is a body's apparent place.
type Position struct {
	RA          float64 // hours
	Dec         float64 // degrees
	Distance    float64 // km
	AngularSize float64 // apparent diameter, degrees
}

// Provider computes body positions at t.
type Provider interface {
	Positions(t time.Time, bodies ...Body) (map[Body]Position, error)
}

// AU is the astronomical unit in km.
const AU = 149597870.7

// diameters are mean physical diameters in km.
var diameters = map[Body]float64{
	Sun:     1392700,
	Moon:    3474.8,
	Mercury: 4879,
	Venus:   12104,
	Mars:    6779,
	Jupiter: 139820,
	Saturn:  116460,
	Uranus:  50724,
	Neptune: 49244,
}

// AngularSize returns the apparent diameter in degrees of an object of the
// given diameter seen from distance, both in the same unit.
func AngularSize(diameter, distance float64) float64 {
	if distance <= 0 {
		return 0
	}
	return 2 * math.Atan(diameter/(2*distance)) * 180 / math.Pi
}
