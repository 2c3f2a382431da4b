// Package chart draws star charts.
//
// A [Session] owns everything one chart accumulates: the display list, the
// accepted labels and the legend. It is created for one of three plot kinds
// ([NewMap], [NewZenith], [NewOptic]) and then fed objects, shapes and
// catalog layers. Every plotted entity goes through the same steps: bounds
// check, projection, drawing, label proposal and legend registration.
//
// Positions are projected to plot space by the kind and then mapped to
// pixels. Sizes in the style are points at [style.ReferenceResolution] and
// are scaled to the session's resolution.
//
// A Session is not safe for concurrent use. Render independent charts in
// independent sessions.
package chart

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/starchart/pkg/celestial"
	"github.com/matzehuels/starchart/pkg/errors"
	"github.com/matzehuels/starchart/pkg/fonts"
	"github.com/matzehuels/starchart/pkg/label"
	"github.com/matzehuels/starchart/pkg/projection"
	"github.com/matzehuels/starchart/pkg/render"
	"github.com/matzehuels/starchart/pkg/style"
)

// DefaultResolution is the canvas width used when Options.Resolution is 0.
const DefaultResolution = 2048

// Options are shared by every plot kind.
type Options struct {
	// Style defaults to style.Default().
	Style style.PlotStyle

	// Resolution is the canvas width in pixels.
	Resolution int

	// AllowLabelCollisions keeps labels that overlap earlier ones.
	AllowLabelCollisions bool

	// InfoText adds the time, location and optic description.
	InfoText bool

	// Title is written into the output's metadata.
	Title string

	Logger *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Style == (style.PlotStyle{}) {
		o.Style = style.Default()
	}
	if o.Resolution <= 0 {
		o.Resolution = DefaultResolution
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Extent is the plot-space rectangle the canvas shows.
type Extent struct {
	XMin, XMax, YMin, YMax float64
}

// Width returns XMax - XMin.
func (e Extent) Width() float64 { return e.XMax - e.XMin }

// Height returns YMax - YMin.
func (e Extent) Height() float64 { return e.YMax - e.YMin }

func (e Extent) include(p projection.Point) Extent {
	e.XMin = min(e.XMin, p.X)
	e.XMax = max(e.XMax, p.X)
	e.YMin = min(e.YMin, p.Y)
	e.YMax = max(e.YMax, p.Y)
	return e
}

// Kind is the capability set a plot kind provides to a session.
type Kind interface {
	// Name is "map", "zenith" or "optic".
	Name() string
	Project(ra, dec float64) projection.Point
	InBounds(ra, dec float64) bool
	Extent() Extent
	DrawBackground(s *Session)
}

// seamer is implemented by kinds with an RA discontinuity; a path segment
// from a to b that crosses it is not drawn.
type seamer interface {
	crossesSeam(a, b celestial.Coord) bool
}

// drawable is implemented by kinds that cannot draw lines to every point,
// such as an optic's points behind the tangent plane.
type drawable interface {
	canDraw(ra, dec float64) bool
}

// LegendHandle is one legend entry.
type LegendHandle struct {
	Label  string
	Marker style.MarkerStyle
}

// Stats summarizes what a session drew.
type Stats struct {
	Objects int         `json:"objects"`
	Skipped int         `json:"skipped"`
	Shapes  int         `json:"shapes"`
	Labels  label.Stats `json:"labels"`
	Legend  int         `json:"legend"`
}

// labelText is how an accepted label is drawn, parallel to the engine's
// accepted list.
type labelText struct {
	size      float64
	color     style.Color
	bold      bool
	alpha     float64
	halo      style.Color
	haloWidth float64
	ascent    float64
	z         int
}

// Session is one chart being drawn.
type Session struct {
	ID string

	kind       Kind
	style      style.PlotStyle
	resolution int
	mult       float64
	infoText   bool
	title      string
	when       time.Time
	observer   *celestial.Observer
	logger     *log.Logger

	extent Extent
	scale  float64
	width  float64
	height float64

	ops        []render.Op
	labels     *label.Engine
	texts      []labelText
	legend     []LegendHandle
	showLegend bool
	stats      Stats
}

func newSession(k Kind, opts Options, when time.Time, observer *celestial.Observer) (*Session, error) {
	opts = opts.withDefaults()
	if err := opts.Style.Validate(); err != nil {
		return nil, err
	}
	e := k.Extent()
	if !(e.Width() > 0) || !(e.Height() > 0) {
		return nil, errors.New(errors.ErrCodeInvalidViewport, "%s chart has an empty extent", k.Name())
	}
	if when.IsZero() {
		when = time.Now().UTC()
	}

	s := &Session{
		ID:         uuid.NewString(),
		kind:       k,
		style:      opts.Style,
		resolution: opts.Resolution,
		mult:       style.SizeMultiplier(opts.Resolution),
		infoText:   opts.InfoText,
		title:      opts.Title,
		when:       when,
		observer:   observer,
		logger:     opts.Logger,
		extent:     e,
	}
	s.width = float64(opts.Resolution)
	s.scale = s.width / e.Width()
	s.height = e.Height() * s.scale
	s.labels = label.NewEngine(label.Box{X0: 0, Y0: 0, X1: s.width, Y1: s.height}, !opts.AllowLabelCollisions)

	k.DrawBackground(s)
	s.logger.Debug("chart session created", "id", s.ID, "kind", k.Name(), "width", s.width, "height", s.height)
	return s, nil
}

// Kind returns the session's plot kind.
func (s *Session) Kind() Kind { return s.kind }

// Style returns the session's style.
func (s *Session) Style() style.PlotStyle { return s.style }

// Time returns the instant the chart depicts.
func (s *Session) Time() time.Time { return s.when }

// Size returns the canvas size in pixels.
func (s *Session) Size() (width, height float64) { return s.width, s.height }

// InBounds reports whether (ra, dec) is drawable on this chart.
func (s *Session) InBounds(ra, dec float64) bool { return s.kind.InBounds(ra, dec) }

// Pixel returns the canvas position of (ra, dec), y down.
func (s *Session) Pixel(ra, dec float64) render.Point {
	return s.toPixel(s.kind.Project(ra, dec))
}

func (s *Session) toPixel(p projection.Point) render.Point {
	return render.Point{
		X: (p.X - s.extent.XMin) * s.scale,
		Y: (s.extent.YMax - p.Y) * s.scale,
	}
}

// px converts a style size in points to pixels at this resolution.
func (s *Session) px(pt float64) float64 {
	return fonts.PointsToPixels(pt) * s.mult
}

func (s *Session) add(ops ...render.Op) {
	s.ops = append(s.ops, ops...)
}

// Labels returns the accepted labels in acceptance order.
func (s *Session) Labels() []label.Placed { return s.labels.Placed() }

// LegendHandles returns the registered legend entries in first-seen order.
func (s *Session) LegendHandles() []LegendHandle {
	out := make([]LegendHandle, len(s.legend))
	copy(out, s.legend)
	return out
}

// Stats returns counts of what was drawn so far.
func (s *Session) Stats() Stats {
	st := s.stats
	st.Labels = s.labels.Stats()
	st.Legend = len(s.legend)
	return st
}

func (s *Session) addLegend(name string, m style.MarkerStyle) {
	if name == "" {
		return
	}
	for _, h := range s.legend {
		if h.Label == name {
			return
		}
	}
	s.legend = append(s.legend, LegendHandle{Label: name, Marker: m})
}

// AdjustLabels runs the force-directed relaxation over the accepted labels.
func (s *Session) AdjustLabels(opts label.RelaxOptions) label.RelaxResult {
	res := s.labels.Relax(opts)
	s.logger.Info("adjusted labels", "iterations", res.Iterations, "moved", res.Moved, "overlaps", res.Overlaps)
	return res
}
