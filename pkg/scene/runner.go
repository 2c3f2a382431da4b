package scene

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/starchart/pkg/cache"
	"github.com/matzehuels/starchart/pkg/catalog"
	"github.com/matzehuels/starchart/pkg/celestial"
	"github.com/matzehuels/starchart/pkg/chart"
	"github.com/matzehuels/starchart/pkg/ephemeris"
	"github.com/matzehuels/starchart/pkg/errors"
	"github.com/matzehuels/starchart/pkg/label"
	"github.com/matzehuels/starchart/pkg/observability"
	"github.com/matzehuels/starchart/pkg/projection"
	"github.com/matzehuels/starchart/pkg/render"
	"github.com/matzehuels/starchart/pkg/style"
)

// ReticleSize is the reticle dot diameter in points.
const ReticleSize = 6

// Result holds the output of a scene run.
type Result struct {
	// Artifacts maps format name to rendered bytes.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo

	// SessionID identifies the chart session. It is empty when every
	// artifact came from the cache.
	SessionID string

	// SceneHash is the content hash the artifacts are cached under.
	SceneHash string
}

// Stats records what was drawn and how long it took.
type Stats struct {
	Chart      chart.Stats        `json:"chart"`
	Relax      *label.RelaxResult `json:"relax,omitempty"`
	DrawTime   time.Duration      `json:"draw_time"`
	RenderTime time.Duration      `json:"render_time"`
}

// CacheInfo reports which stages were served from cache.
type CacheInfo struct {
	StyleHit  bool
	RenderHit bool
}

// Runner executes scenes with caching.
//
// The Runner keeps no per-scene state, so multiple goroutines can share
// one Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// Ephemeris positions the Sun, Moon and planets and resolves body
	// targets. Defaults to ephemeris.Meeus.
	Ephemeris ephemeris.Provider

	// Catalog defaults to catalog.Builtin().
	Catalog *catalog.Catalog
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:     c,
		Keyer:     keyer,
		Logger:    logger,
		Ephemeris: ephemeris.Meeus{},
		Catalog:   catalog.Builtin(),
	}
}

// Execute draws the scene and renders every requested format. When all
// formats are cached for an identical scene, nothing is drawn.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	sceneHash, err := opts.Hash()
	if err != nil {
		return nil, err
	}
	result := &Result{SceneHash: sceneHash}

	if !opts.Refresh {
		if artifacts, ok := r.cachedArtifacts(ctx, sceneHash, opts); ok {
			result.Artifacts = artifacts
			result.CacheInfo.RenderHit = true
			r.loadStats(ctx, sceneHash, &result.Stats)
			opts.Logger.Info("using cached chart", "formats", opts.Formats, "scene", sceneHash[:12])
			return result, nil
		}
	}

	st, styleHit, err := r.ResolveStyle(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.CacheInfo.StyleHit = styleHit

	drawStart := time.Now()
	observability.Scene().OnChartStart(ctx, opts.Kind)
	s, err := r.Draw(ctx, opts, st)
	result.Stats.DrawTime = time.Since(drawStart)
	if err != nil {
		observability.Scene().OnChartComplete(ctx, opts.Kind, 0, result.Stats.DrawTime, err)
		return nil, err
	}
	if opts.AdjustLabels {
		res := s.AdjustLabels(label.RelaxOptions{})
		result.Stats.Relax = &res
	}
	result.SessionID = s.ID
	result.Stats.Chart = s.Stats()
	observability.Scene().OnChartComplete(ctx, opts.Kind, result.Stats.Chart.Objects, result.Stats.DrawTime, nil)

	opts.Logger.Info("drew chart",
		"kind", opts.Kind,
		"objects", result.Stats.Chart.Objects,
		"labels", result.Stats.Chart.Labels.Accepted,
		"duration", result.Stats.DrawTime)

	renderStart := time.Now()
	artifacts, err := r.render(ctx, s, sceneHash, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts

	if data, err := json.Marshal(result.Stats); err == nil {
		r.set(ctx, "scene", r.Keyer.SceneKey(sceneHash), data, cache.TTLScene)
	}

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ResolveStyle builds the scene's style from its presets and overrides,
// caching the resolved result.
func (r *Runner) ResolveStyle(ctx context.Context, opts Options) (style.PlotStyle, bool, error) {
	styleHash, err := cache.HashJSON(struct {
		Presets   []string       `json:"presets"`
		Overrides map[string]any `json:"overrides"`
	}{opts.Style, opts.StyleOverrides})
	if err != nil {
		return style.PlotStyle{}, false, errors.Wrap(errors.ErrCodeInvalidStyle, err, "encode style overrides")
	}
	key := r.Keyer.StyleKey(styleHash)

	if data, hit := r.get(ctx, "style", key); hit {
		st, err := style.NewBuilder(style.Default()).LayerTOML(data).Build()
		if err == nil {
			return st, true, nil
		}
		opts.Logger.Debug("discarding cached style", "err", err)
	}

	b := style.NewBuilder(style.Default())
	for _, p := range opts.Style {
		b.Layer(p)
	}
	st, err := b.LayerMap(opts.StyleOverrides).Build()
	if err != nil {
		return style.PlotStyle{}, false, err
	}
	if data, err := st.TOML(); err == nil {
		r.set(ctx, "style", key, data, cache.TTLStyle)
	}
	return st, false, nil
}

// Draw creates the chart session and draws every layer of the scene. It
// does not consult the artifact cache.
func (r *Runner) Draw(ctx context.Context, opts Options, st style.PlotStyle) (*chart.Session, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	s, err := r.newSession(opts, st)
	if err != nil {
		return nil, err
	}

	for _, layer := range Layers {
		if !opts.Has(layer) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.drawLayer(ctx, s, layer, opts); err != nil {
			return nil, err
		}
	}

	// Scene objects go on after the catalog layers but before the legend
	// is finalized, so their legend entries are included.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.drawExtras(s, opts); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Runner) newSession(opts Options, st style.PlotStyle) (*chart.Session, error) {
	copts := chart.Options{
		Style:                st,
		Resolution:           opts.Resolution,
		AllowLabelCollisions: opts.AllowLabelCollisions,
		InfoText:             opts.InfoText,
		Title:                opts.Title,
		Logger:               opts.Logger,
	}

	switch opts.Kind {
	case KindZenith:
		return chart.NewZenith(chart.ZenithOptions{Options: copts, Observer: *opts.Observer})
	case KindOptic:
		optic, err := opts.Optic.Build()
		if err != nil {
			return nil, err
		}
		center, err := r.target(opts)
		if err != nil {
			return nil, err
		}
		return chart.NewOptic(chart.OpticOptions{
			Options:  copts,
			Center:   center,
			Optic:    optic,
			Observer: opts.Observer,
			Time:     opts.Time,
		})
	default:
		kind, err := projection.ParseKind(opts.Projection)
		if err != nil {
			return nil, err
		}
		return chart.NewMap(chart.MapOptions{
			Options:    copts,
			Projection: kind,
			Viewport:   opts.Viewport,
			Time:       opts.Time,
		})
	}
}

// target resolves where an optic chart points: a named star, a deep sky
// object, a solar system body, or the explicit center.
func (r *Runner) target(opts Options) (celestial.Coord, error) {
	name := strings.TrimSpace(opts.Target)
	if name == "" {
		return opts.Center, nil
	}
	if star, ok := r.Catalog.Star(name); ok {
		return star.Coord(), nil
	}
	if dso, ok := r.Catalog.DSO(name); ok {
		return dso.Coord(), nil
	}
	body, err := ephemeris.ParseBody(name)
	if err != nil {
		return celestial.Coord{}, errors.New(errors.ErrCodeNotFound, "unknown target %q (not a star, deep sky object or solar system body)", name)
	}
	when := opts.Time
	if opts.Observer != nil {
		when = opts.Observer.Time
	}
	pos, err := r.Ephemeris.Positions(when, body)
	if err != nil {
		return celestial.Coord{}, err
	}
	p, ok := pos[body]
	if !ok {
		return celestial.Coord{}, errors.New(errors.ErrCodeNotFound, "no position for %s", body.Title())
	}
	return celestial.Coord{RA: p.RA, Dec: p.Dec}, nil
}

func (r *Runner) drawLayer(ctx context.Context, s *chart.Session, layer string, opts Options) (err error) {
	hooks := observability.Scene()
	hooks.OnLayerStart(ctx, layer)
	start := time.Now()
	before := s.Stats().Objects
	defer func() {
		hooks.OnLayerComplete(ctx, layer, s.Stats().Objects-before, time.Since(start), err)
	}()

	switch layer {
	case LayerConstellations:
		s.Constellations(r.Catalog)
	case LayerStars:
		s.Stars(chart.StarOptions{Catalog: r.Catalog, Limit: opts.Limit, LabelLimit: opts.LabelLimit})
	case LayerDSOs:
		_, err = s.DSOs(chart.DSOOptions{Catalog: r.Catalog, Limit: opts.DSOLimit, IDs: opts.DSOs})
	case LayerPlanets:
		err = s.Planets(r.Ephemeris)
	case LayerMoon:
		err = s.Moon(r.Ephemeris)
	case LayerSun:
		err = s.Sun(r.Ephemeris)
	case LayerEcliptic:
		s.Ecliptic()
	case LayerEquator:
		s.CelestialEquator()
	case LayerGrid:
		if gerr := s.GridLines(chart.GridOptions{}); gerr != nil {
			if !errors.Is(gerr, errors.ErrCodeUnsupported) {
				return gerr
			}
			opts.Logger.Warn("skipping layer", "layer", layer, "reason", errors.UserMessage(gerr))
		}
	case LayerLegend:
		s.Legend()
	default:
		err = errors.New(errors.ErrCodeInvalidInput, "unknown layer %q", layer)
	}
	if err != nil {
		return fmt.Errorf("%s layer: %w", layer, err)
	}
	return nil
}

// drawExtras plots the scene's own markers, shapes and reticle.
func (r *Runner) drawExtras(s *chart.Session, opts Options) error {
	st := s.Style()

	for _, m := range opts.Markers {
		obj := st.DSO
		if m.Symbol != "" {
			obj.Marker.Symbol = style.MarkerSymbol(m.Symbol)
		}
		if m.Color != "" {
			obj.Marker.Color = style.Color(m.Color)
		}
		if m.Size > 0 {
			obj.Marker.Size = m.Size
		}
		s.PlotObject(chart.Object{Name: m.Name, RA: m.RA, Dec: m.Dec, Style: obj, Legend: m.Legend})
	}

	for _, sh := range opts.Shapes {
		ps := st.Shape
		if sh.FillColor != "" {
			ps.FillColor = style.Color(sh.FillColor)
		}
		if sh.EdgeColor != "" {
			ps.EdgeColor = style.Color(sh.EdgeColor)
		}
		if sh.Alpha > 0 {
			ps.Alpha = sh.Alpha
		}
		center := celestial.Coord{RA: sh.RA, Dec: sh.Dec}
		var err error
		switch sh.Type {
		case ShapeCircle:
			err = s.PlotCircle(center, sh.Radius, ps)
		case ShapeEllipse:
			err = s.PlotEllipse(center, sh.Height, sh.Width, sh.Angle, ps)
		case ShapeRectangle:
			err = s.PlotRectangle(center, sh.Height, sh.Width, sh.Angle, ps)
		}
		if err != nil {
			return fmt.Errorf("%s shape: %w", sh.Type, err)
		}
	}

	if opts.Reticle && opts.Kind == KindOptic {
		center, err := r.target(opts)
		if err != nil {
			return err
		}
		s.DrawReticle(center.RA, center.Dec, ReticleSize, st.Border.Line.Color)
	}
	return nil
}

// render exports every format and caches each one.
func (r *Runner) render(ctx context.Context, s *chart.Session, sceneHash string, opts Options) (artifacts map[string][]byte, err error) {
	hooks := observability.Scene()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()

	artifacts = make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := s.Export(&buf, render.Format(format), opts.Padding); err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = buf.Bytes()
		key := r.Keyer.ArtifactKey(sceneHash, cache.ArtifactKeyOpts{Format: format, Padding: opts.Padding})
		r.set(ctx, "artifact", key, buf.Bytes(), cache.TTLArtifact)
	}
	return artifacts, nil
}

// cachedArtifacts returns every requested format from the cache, or false
// if any one is missing.
func (r *Runner) cachedArtifacts(ctx context.Context, sceneHash string, opts Options) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(sceneHash, cache.ArtifactKeyOpts{Format: format, Padding: opts.Padding})
		data, hit := r.get(ctx, "artifact", key)
		if !hit {
			return nil, false
		}
		artifacts[format] = data
	}
	return artifacts, len(artifacts) == len(opts.Formats)
}

func (r *Runner) loadStats(ctx context.Context, sceneHash string, stats *Stats) {
	if data, hit := r.get(ctx, "scene", r.Keyer.SceneKey(sceneHash)); hit {
		_ = json.Unmarshal(data, stats)
	}
}

// get reads from the cache. Backend errors count as misses so a flaky
// cache never fails a render.
func (r *Runner) get(ctx context.Context, keyType, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "type", keyType, "err", err)
		hit = false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, keyType)
	} else {
		observability.Cache().OnCacheMiss(ctx, keyType)
	}
	return data, hit
}

func (r *Runner) set(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
