// Package scene turns a declarative chart description into rendered files.
//
// A scene names the chart kind, where it looks, which layers to draw and
// which formats to produce. Scenes load from TOML, YAML or JSON files, and
// a [Runner] executes them with artifact caching:
//
//	runner := scene.NewRunner(c, nil, logger)
//	opts, err := scene.Load("orion.toml")
//	if err != nil {
//	    return err
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
//
// Everything that changes the output is part of the scene hash, including
// the chart time, so a cached artifact is only reused for an identical
// scene.
package scene

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/starchart/pkg/cache"
	"github.com/matzehuels/starchart/pkg/celestial"
	"github.com/matzehuels/starchart/pkg/chart"
	"github.com/matzehuels/starchart/pkg/errors"
	"github.com/matzehuels/starchart/pkg/optics"
	"github.com/matzehuels/starchart/pkg/projection"
	"github.com/matzehuels/starchart/pkg/render"
	"github.com/matzehuels/starchart/pkg/viewport"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultLimit is the faintest star magnitude drawn.
	DefaultLimit = 6.0

	// DefaultLabelLimit is the faintest star magnitude labeled.
	DefaultLabelLimit = 2.1

	// DefaultDSOLimit is the faintest deep sky object magnitude drawn.
	DefaultDSOLimit = 8.0

	// DefaultFormat is the output format when none is given.
	DefaultFormat = string(render.FormatSVG)
)

// Chart kinds.
const (
	KindMap    = "map"
	KindZenith = "zenith"
	KindOptic  = "optic"
)

// Layer names, listed in Layers in the order they are drawn. Earlier
// layers win label collisions.
const (
	LayerConstellations = "constellations"
	LayerStars          = "stars"
	LayerDSOs           = "dsos"
	LayerPlanets        = "planets"
	LayerMoon           = "moon"
	LayerSun            = "sun"
	LayerEcliptic       = "ecliptic"
	LayerEquator        = "celestial_equator"
	LayerGrid           = "gridlines"
	LayerLegend         = "legend"
)

// Layers is every layer in draw order.
var Layers = []string{
	LayerConstellations, LayerStars, LayerDSOs, LayerPlanets, LayerMoon, LayerSun,
	LayerEcliptic, LayerEquator, LayerGrid, LayerLegend,
}

// defaultLayers are drawn when a scene lists none.
var defaultLayers = map[string][]string{
	KindMap:    {LayerConstellations, LayerStars, LayerDSOs, LayerPlanets, LayerMoon, LayerEcliptic, LayerEquator, LayerGrid, LayerLegend},
	KindZenith: {LayerConstellations, LayerStars, LayerDSOs, LayerPlanets, LayerMoon, LayerEcliptic, LayerLegend},
	KindOptic:  {LayerStars, LayerDSOs, LayerPlanets, LayerMoon},
}

// Shape types.
const (
	ShapeCircle    = "circle"
	ShapeEllipse   = "ellipse"
	ShapeRectangle = "rectangle"
)

// =============================================================================
// Options
// =============================================================================

// Marker is an extra labeled point. Empty style fields keep the DSO style.
type Marker struct {
	Name   string  `json:"name" toml:"name" yaml:"name"`
	RA     float64 `json:"ra" toml:"ra" yaml:"ra"`
	Dec    float64 `json:"dec" toml:"dec" yaml:"dec"`
	Symbol string  `json:"symbol,omitempty" toml:"symbol,omitempty" yaml:"symbol,omitempty"`
	Color  string  `json:"color,omitempty" toml:"color,omitempty" yaml:"color,omitempty"`
	Size   float64 `json:"size,omitempty" toml:"size,omitempty" yaml:"size,omitempty"`
	Legend string  `json:"legend,omitempty" toml:"legend,omitempty" yaml:"legend,omitempty"`
}

// Shape is an extra polygon. Sizes are in degrees. Empty style fields keep
// the shape style.
type Shape struct {
	Type      string  `json:"type" toml:"type" yaml:"type"`
	RA        float64 `json:"ra" toml:"ra" yaml:"ra"`
	Dec       float64 `json:"dec" toml:"dec" yaml:"dec"`
	Radius    float64 `json:"radius,omitempty" toml:"radius,omitempty" yaml:"radius,omitempty"`
	Height    float64 `json:"height,omitempty" toml:"height,omitempty" yaml:"height,omitempty"`
	Width     float64 `json:"width,omitempty" toml:"width,omitempty" yaml:"width,omitempty"`
	Angle     float64 `json:"angle,omitempty" toml:"angle,omitempty" yaml:"angle,omitempty"`
	FillColor string  `json:"fill_color,omitempty" toml:"fill_color,omitempty" yaml:"fill_color,omitempty"`
	EdgeColor string  `json:"edge_color,omitempty" toml:"edge_color,omitempty" yaml:"edge_color,omitempty"`
	Alpha     float64 `json:"alpha,omitempty" toml:"alpha,omitempty" yaml:"alpha,omitempty"`
}

// Options describes one chart. It is what scene files decode into.
type Options struct {
	Kind  string `json:"kind" toml:"kind" yaml:"kind"`
	Title string `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`

	// Map charts
	Projection string            `json:"projection,omitempty" toml:"projection,omitempty" yaml:"projection,omitempty"`
	Viewport   viewport.Viewport `json:"viewport" toml:"viewport" yaml:"viewport"`

	// Time positions the planets and Moon on map charts and on optic
	// charts without an observer. Defaults to now.
	Time time.Time `json:"time" toml:"time" yaml:"time"`

	// Observer is required for zenith charts and optional for optic ones.
	Observer *celestial.Observer `json:"observer,omitempty" toml:"observer,omitempty" yaml:"observer,omitempty"`

	// Optic charts point at Target, a star name, DSO id or solar system
	// body, or at Center when Target is empty.
	Optic   *optics.Spec    `json:"optic,omitempty" toml:"optic,omitempty" yaml:"optic,omitempty"`
	Target  string          `json:"target,omitempty" toml:"target,omitempty" yaml:"target,omitempty"`
	Center  celestial.Coord `json:"center" toml:"center" yaml:"center"`
	Reticle bool            `json:"reticle,omitempty" toml:"reticle,omitempty" yaml:"reticle,omitempty"`

	// Style lists presets applied in order over the default style; it
	// defaults to the preset named after the kind. StyleOverrides is
	// applied last, keyed as in the style's TOML form.
	Style          []string       `json:"style,omitempty" toml:"style,omitempty" yaml:"style,omitempty"`
	StyleOverrides map[string]any `json:"style_overrides,omitempty" toml:"style_overrides,omitempty" yaml:"style_overrides,omitempty"`

	Layers     []string `json:"layers,omitempty" toml:"layers,omitempty" yaml:"layers,omitempty"`
	Limit      float64  `json:"limit,omitempty" toml:"limit,omitempty" yaml:"limit,omitempty"`
	LabelLimit float64  `json:"label_limit,omitempty" toml:"label_limit,omitempty" yaml:"label_limit,omitempty"`
	DSOLimit   float64  `json:"dso_limit,omitempty" toml:"dso_limit,omitempty" yaml:"dso_limit,omitempty"`
	DSOs       []string `json:"dsos,omitempty" toml:"dsos,omitempty" yaml:"dsos,omitempty"`
	Markers    []Marker `json:"markers,omitempty" toml:"markers,omitempty" yaml:"markers,omitempty"`
	Shapes     []Shape  `json:"shapes,omitempty" toml:"shapes,omitempty" yaml:"shapes,omitempty"`

	Resolution           int  `json:"resolution,omitempty" toml:"resolution,omitempty" yaml:"resolution,omitempty"`
	AllowLabelCollisions bool `json:"allow_label_collisions,omitempty" toml:"allow_label_collisions,omitempty" yaml:"allow_label_collisions,omitempty"`
	InfoText             bool `json:"info_text,omitempty" toml:"info_text,omitempty" yaml:"info_text,omitempty"`
	AdjustLabels         bool `json:"adjust_labels,omitempty" toml:"adjust_labels,omitempty" yaml:"adjust_labels,omitempty"`

	Formats []string `json:"formats,omitempty" toml:"formats,omitempty" yaml:"formats,omitempty"`
	Padding float64  `json:"padding,omitempty" toml:"padding,omitempty" yaml:"padding,omitempty"`

	// Runtime options (not serialized)
	Refresh bool        `json:"-" toml:"-" yaml:"-"`
	Logger  *log.Logger `json:"-" toml:"-" yaml:"-"`

	validated bool
}

// =============================================================================
// Loading
// =============================================================================

// Load reads a scene file, choosing the decoder by extension: .toml,
// .yaml, .yml or .json.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Options{}, errors.New(errors.ErrCodeFileNotFound, "scene file not found: %s", path)
	}
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read scene %s", path)
	}
	return Decode(data, filepath.Ext(path))
}

// Decode parses scene data in the format named by ext (with or without
// the leading dot).
func Decode(data []byte, ext string) (Options, error) {
	var o Options
	var err error
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(&o)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &o)
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&o)
	default:
		return Options{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported scene format %q (must be toml, yaml or json)", ext)
	}
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode scene")
	}
	return o, nil
}

// =============================================================================
// Validation
// =============================================================================

// ValidateAndSetDefaults checks the scene and fills in defaults. It is
// idempotent. A zero time becomes the current time, truncated to the
// second, so the scene hash is stable for the rest of the run.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	o.Kind = strings.ToLower(strings.TrimSpace(o.Kind))
	if o.Kind == "" {
		o.Kind = KindMap
	}
	now := time.Now().UTC().Truncate(time.Second)
	if o.Time.IsZero() {
		o.Time = now
	}
	if o.Observer != nil {
		if o.Observer.Time.IsZero() {
			o.Observer.Time = o.Time
		}
		if err := o.Observer.Validate(); err != nil {
			return err
		}
	}

	switch o.Kind {
	case KindMap:
		if o.Projection == "" {
			o.Projection = string(projection.Mercator)
		}
		if _, err := projection.ParseKind(o.Projection); err != nil {
			return err
		}
		if o.Viewport == (viewport.Viewport{}) {
			o.Viewport = viewport.Full()
		}
		if err := o.Viewport.Validate(); err != nil {
			return err
		}
	case KindZenith:
		if o.Observer == nil {
			return errors.New(errors.ErrCodeInvalidObserver, "zenith charts need an observer")
		}
	case KindOptic:
		if o.Optic == nil {
			return errors.New(errors.ErrCodeInvalidOptic, "optic charts need an optic")
		}
		if _, err := o.Optic.Build(); err != nil {
			return err
		}
		if o.Target == "" {
			if err := errors.ValidateRA("center ra", o.Center.RA); err != nil {
				return err
			}
			if err := errors.ValidateDec("center dec", o.Center.Dec); err != nil {
				return err
			}
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "invalid kind: %q (must be one of: map, zenith, optic)", o.Kind)
	}

	if len(o.Style) == 0 {
		o.Style = []string{o.Kind}
	}
	if len(o.Layers) == 0 {
		o.Layers = slices.Clone(defaultLayers[o.Kind])
	}
	for _, l := range o.Layers {
		if !slices.Contains(Layers, l) {
			return errors.New(errors.ErrCodeInvalidInput, "unknown layer %q (must be one of: %s)", l, strings.Join(Layers, ", "))
		}
	}
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	if o.LabelLimit == 0 {
		o.LabelLimit = DefaultLabelLimit
	}
	if o.DSOLimit == 0 {
		o.DSOLimit = DefaultDSOLimit
	}
	if o.Resolution == 0 {
		o.Resolution = chart.DefaultResolution
	}
	if o.Resolution < 64 || o.Resolution > 20000 {
		return errors.New(errors.ErrCodeInvalidInput, "resolution must be between 64 and 20000 (got %d)", o.Resolution)
	}

	for i := range o.Markers {
		m := &o.Markers[i]
		if err := errors.ValidateRA("marker ra", m.RA); err != nil {
			return err
		}
		if err := errors.ValidateDec("marker dec", m.Dec); err != nil {
			return err
		}
	}
	for i := range o.Shapes {
		s := &o.Shapes[i]
		s.Type = strings.ToLower(s.Type)
		switch s.Type {
		case ShapeCircle, ShapeEllipse, ShapeRectangle:
		default:
			return errors.New(errors.ErrCodeInvalidShape, "invalid shape type %q (must be one of: circle, ellipse, rectangle)", s.Type)
		}
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	for _, f := range o.Formats {
		if err := errors.ValidateFormat(f, render.ValidFormats); err != nil {
			return err
		}
	}
	if err := errors.ValidatePadding(o.Padding); err != nil {
		return err
	}

	o.validated = true
	return nil
}

// Has reports whether the scene draws layer.
func (o *Options) Has(layer string) bool {
	return slices.Contains(o.Layers, layer)
}

// Hash returns the content hash of everything that affects the output.
// Call it after ValidateAndSetDefaults.
func (o *Options) Hash() (string, error) {
	h, err := cache.HashJSON(o)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "encode scene")
	}
	return h, nil
}
