package render

import (
	"github.com/matzehuels/starchart/pkg/errors"
	"github.com/matzehuels/starchart/pkg/fonts"
)

// Format is an output file format.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// ValidFormats is the set of formats [Render] accepts.
var ValidFormats = map[string]bool{
	string(FormatSVG): true,
	string(FormatPNG): true,
	string(FormatPDF): true,
}

// Option configures a sink.
type Option func(*options)

type options struct {
	padding float64 // pixels per side
	scale   float64
}

func newOptions(opts ...Option) options {
	o := options{scale: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPadding adds a margin of the given inches on every side.
func WithPadding(inches float64) Option {
	return func(o *options) {
		if inches > 0 {
			o.padding = inches * fonts.DPI
		}
	}
}

// WithScale multiplies the pixel size of raster output (default 1).
func WithScale(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.scale = s
		}
	}
}

// Render writes c in the given format.
func Render(c *Canvas, format Format, opts ...Option) ([]byte, error) {
	switch format {
	case FormatSVG:
		return RenderSVG(c, opts...), nil
	case FormatPNG:
		return RenderPNG(c, opts...)
	case FormatPDF:
		return RenderPDF(c, opts...)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be one of svg, png, pdf)", format)
}
