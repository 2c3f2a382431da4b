// Package style defines the visual configuration of a chart.
//
// A [PlotStyle] is a typed tree: one section per chart element, each built
// from a few component styles ([MarkerStyle], [LabelStyle], [LineStyle],
// [PolygonStyle]). Styles are produced by a [Builder], which starts from
// [Default], applies override layers in order (named presets, TOML, YAML or
// plain maps) and validates the result once. A built style is a value; the
// chart never mutates it.
//
// Sizes are in points at a 3000 pixel chart and are scaled by
// [SizeMultiplier] for other resolutions.
package style

import (
	"bytes"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/starchart/pkg/errors"
)

// ReferenceResolution is the chart width at which style sizes are 1:1.
const ReferenceResolution = 3000.0

// SizeMultiplier scales style sizes for a chart of the given pixel width.
func SizeMultiplier(resolution int) float64 {
	if resolution <= 0 {
		return 1
	}
	return float64(resolution) / ReferenceResolution
}

// Color is a hex color ("#rgb" or "#rrggbb") or "none".
type Color string

// None disables painting.
const None Color = "none"

// IsNone reports whether c paints nothing.
func (c Color) IsNone() bool { return c == "" || strings.EqualFold(string(c), string(None)) }

func (c Color) validate(field string) error {
	if c.IsNone() {
		return nil
	}
	if _, err := colorful.Hex(string(c)); err != nil {
		return errors.New(errors.ErrCodeInvalidStyle, "%s: invalid color %q", field, c)
	}
	return nil
}

// MarkerSymbol is a marker shape. The names match the render package's
// symbols.
type MarkerSymbol string

const (
	SymbolPoint      MarkerSymbol = "point"
	SymbolCircle     MarkerSymbol = "circle"
	SymbolSquare     MarkerSymbol = "square"
	SymbolDiamond    MarkerSymbol = "diamond"
	SymbolTriangle   MarkerSymbol = "triangle"
	SymbolPlus       MarkerSymbol = "plus"
	SymbolStar       MarkerSymbol = "star"
	SymbolCirclePlus MarkerSymbol = "circle_plus"
	SymbolEllipse    MarkerSymbol = "ellipse"
)

var markerSymbols = map[MarkerSymbol]bool{
	SymbolPoint: true, SymbolCircle: true, SymbolSquare: true, SymbolDiamond: true,
	SymbolTriangle: true, SymbolPlus: true, SymbolStar: true, SymbolCirclePlus: true,
	SymbolEllipse: true,
}

// FontWeight is normal or bold.
type FontWeight string

const (
	WeightNormal FontWeight = "normal"
	WeightBold   FontWeight = "bold"
)

// LineStyleKind is a stroke pattern.
type LineStyleKind string

const (
	LineSolid   LineStyleKind = "solid"
	LineDashed  LineStyleKind = "dashed"
	LineDotted  LineStyleKind = "dotted"
	LineDashDot LineStyleKind = "dashdot"
)

// Dash returns the dash pattern for a stroke of width w.
func (k LineStyleKind) Dash(w float64) []float64 {
	w = max(w, 1)
	switch k {
	case LineDashed:
		return []float64{4 * w, 2 * w}
	case LineDotted:
		return []float64{w, 1.5 * w}
	case LineDashDot:
		return []float64{4 * w, 1.5 * w, w, 1.5 * w}
	}
	return nil
}

// LegendLocation places the legend box.
type LegendLocation string

const (
	LegendUpperLeft  LegendLocation = "upper_left"
	LegendUpperRight LegendLocation = "upper_right"
	LegendLowerLeft  LegendLocation = "lower_left"
	LegendLowerRight LegendLocation = "lower_right"
)

// MarkerStyle styles a point marker.
type MarkerStyle struct {
	Color     Color        `toml:"color"`
	EdgeColor Color        `toml:"edge_color"`
	EdgeWidth float64      `toml:"edge_width"`
	Symbol    MarkerSymbol `toml:"symbol"`
	Size      float64      `toml:"size"`
	Alpha     float64      `toml:"alpha"`
	Visible   bool         `toml:"visible"`
	ZOrder    int          `toml:"zorder"`
}

// LabelStyle styles text.
type LabelStyle struct {
	FontSize    float64    `toml:"font_size"`
	FontColor   Color      `toml:"font_color"`
	FontWeight  FontWeight `toml:"font_weight"`
	FontAlpha   float64    `toml:"font_alpha"`
	BorderColor Color      `toml:"border_color"` // halo drawn behind glyphs
	BorderWidth float64    `toml:"border_width"`
	OffsetX     float64    `toml:"offset_x"` // points, right positive
	OffsetY     float64    `toml:"offset_y"` // points, up positive
	Visible     bool       `toml:"visible"`
	ZOrder      int        `toml:"zorder"`
}

// LineStyle styles a stroked path.
type LineStyle struct {
	Color   Color         `toml:"color"`
	Width   float64       `toml:"width"`
	Style   LineStyleKind `toml:"style"`
	Alpha   float64       `toml:"alpha"`
	Visible bool          `toml:"visible"`
	ZOrder  int           `toml:"zorder"`
}

// PolygonStyle styles a filled shape.
type PolygonStyle struct {
	FillColor Color         `toml:"fill_color"`
	EdgeColor Color         `toml:"edge_color"`
	EdgeWidth float64       `toml:"edge_width"`
	LineStyle LineStyleKind `toml:"line_style"`
	Alpha     float64       `toml:"alpha"`
	Visible   bool          `toml:"visible"`
	ZOrder    int           `toml:"zorder"`
}

// ObjectStyle styles a labeled point object.
type ObjectStyle struct {
	Marker MarkerStyle `toml:"marker"`
	Label  LabelStyle  `toml:"label"`
}

// PathStyle styles a labeled line.
type PathStyle struct {
	Line  LineStyle  `toml:"line"`
	Label LabelStyle `toml:"label"`
}

// LegendStyle styles the legend box.
type LegendStyle struct {
	Location        LegendLocation `toml:"location"`
	FontSize        float64        `toml:"font_size"`
	FontColor       Color          `toml:"font_color"`
	BackgroundColor Color          `toml:"background_color"`
	BackgroundAlpha float64        `toml:"background_alpha"`
	Padding         float64        `toml:"padding"`
	Visible         bool           `toml:"visible"`
	ZOrder          int            `toml:"zorder"`
}

// PlotStyle is the complete style of one chart.
type PlotStyle struct {
	BackgroundColor       Color   `toml:"background_color"`
	FigureBackgroundColor Color   `toml:"figure_background_color"`
	TextBorderWidth       float64 `toml:"text_border_width"`

	Legend LegendStyle `toml:"legend"`

	Star            ObjectStyle `toml:"star"`
	DSO             ObjectStyle `toml:"dso"`
	Galaxy          ObjectStyle `toml:"galaxy"`
	Nebula          ObjectStyle `toml:"nebula"`
	OpenCluster     ObjectStyle `toml:"open_cluster"`
	GlobularCluster ObjectStyle `toml:"globular_cluster"`
	Planets         ObjectStyle `toml:"planets"`
	Moon            ObjectStyle `toml:"moon"`
	Sun             ObjectStyle `toml:"sun"`

	Constellation    PathStyle `toml:"constellation"`
	Ecliptic         PathStyle `toml:"ecliptic"`
	CelestialEquator PathStyle `toml:"celestial_equator"`
	GridLines        PathStyle `toml:"gridlines"`
	Border           PathStyle `toml:"border"`

	Shape    PolygonStyle `toml:"shape"`
	InfoText LabelStyle   `toml:"info_text"`
}

// TOML encodes s.
func (s PlotStyle) TOML() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode style")
	}
	return buf.Bytes(), nil
}

// Validate checks every color, enum and size.
func (s PlotStyle) Validate() error {
	v := validator{}
	v.color("background_color", s.BackgroundColor)
	v.color("figure_background_color", s.FigureBackgroundColor)
	v.nonNegative("text_border_width", s.TextBorderWidth)

	v.legend("legend", s.Legend)
	for _, o := range []struct {
		name string
		s    ObjectStyle
	}{
		{"star", s.Star}, {"dso", s.DSO}, {"galaxy", s.Galaxy}, {"nebula", s.Nebula},
		{"open_cluster", s.OpenCluster}, {"globular_cluster", s.GlobularCluster},
		{"planets", s.Planets}, {"moon", s.Moon}, {"sun", s.Sun},
	} {
		v.marker(o.name+".marker", o.s.Marker)
		v.label(o.name+".label", o.s.Label)
	}
	for _, p := range []struct {
		name string
		s    PathStyle
	}{
		{"constellation", s.Constellation}, {"ecliptic", s.Ecliptic},
		{"celestial_equator", s.CelestialEquator}, {"gridlines", s.GridLines}, {"border", s.Border},
	} {
		v.line(p.name+".line", p.s.Line)
		v.label(p.name+".label", p.s.Label)
	}
	v.polygon("shape", s.Shape)
	v.label("info_text", s.InfoText)
	return v.err
}

// validator records the first failure.
type validator struct {
	err error
}

func (v *validator) fail(err error) {
	if v.err == nil {
		v.err = err
	}
}

func (v *validator) color(field string, c Color) {
	if err := c.validate(field); err != nil {
		v.fail(err)
	}
}

func (v *validator) nonNegative(field string, f float64) {
	if f < 0 {
		v.fail(errors.New(errors.ErrCodeInvalidStyle, "%s cannot be negative (got %g)", field, f))
	}
}

func (v *validator) alpha(field string, a float64) {
	if a < 0 || a > 1 {
		v.fail(errors.New(errors.ErrCodeInvalidStyle, "%s must be between 0 and 1 (got %g)", field, a))
	}
}

func (v *validator) marker(field string, m MarkerStyle) {
	v.color(field+".color", m.Color)
	v.color(field+".edge_color", m.EdgeColor)
	v.nonNegative(field+".edge_width", m.EdgeWidth)
	v.nonNegative(field+".size", m.Size)
	v.alpha(field+".alpha", m.Alpha)
	if !markerSymbols[m.Symbol] {
		v.fail(errors.New(errors.ErrCodeInvalidStyle, "%s.symbol: unknown marker symbol %q", field, m.Symbol))
	}
}

func (v *validator) label(field string, l LabelStyle) {
	v.color(field+".font_color", l.FontColor)
	v.color(field+".border_color", l.BorderColor)
	v.nonNegative(field+".font_size", l.FontSize)
	v.nonNegative(field+".border_width", l.BorderWidth)
	v.alpha(field+".font_alpha", l.FontAlpha)
	if l.FontWeight != WeightNormal && l.FontWeight != WeightBold {
		v.fail(errors.New(errors.ErrCodeInvalidStyle, "%s.font_weight: must be normal or bold (got %q)", field, l.FontWeight))
	}
}

func (v *validator) line(field string, l LineStyle) {
	v.color(field+".color", l.Color)
	v.nonNegative(field+".width", l.Width)
	v.alpha(field+".alpha", l.Alpha)
	v.lineKind(field+".style", l.Style)
}

func (v *validator) lineKind(field string, k LineStyleKind) {
	switch k {
	case LineSolid, LineDashed, LineDotted, LineDashDot:
	default:
		v.fail(errors.New(errors.ErrCodeInvalidStyle, "%s: unknown line style %q", field, k))
	}
}

func (v *validator) polygon(field string, p PolygonStyle) {
	v.color(field+".fill_color", p.FillColor)
	v.color(field+".edge_color", p.EdgeColor)
	v.nonNegative(field+".edge_width", p.EdgeWidth)
	v.alpha(field+".alpha", p.Alpha)
	v.lineKind(field+".line_style", p.LineStyle)
}

func (v *validator) legend(field string, l LegendStyle) {
	switch l.Location {
	case LegendUpperLeft, LegendUpperRight, LegendLowerLeft, LegendLowerRight:
	default:
		v.fail(errors.New(errors.ErrCodeInvalidStyle, "%s.location: unknown legend location %q", field, l.Location))
	}
	v.color(field+".font_color", l.FontColor)
	v.color(field+".background_color", l.BackgroundColor)
	v.alpha(field+".background_alpha", l.BackgroundAlpha)
	v.nonNegative(field+".font_size", l.FontSize)
	v.nonNegative(field+".padding", l.Padding)
}
