package chart

import (
	"github.com/matzehuels/starchart/pkg/celestial"
	"github.com/matzehuels/starchart/pkg/fonts"
	"github.com/matzehuels/starchart/pkg/label"
	"github.com/matzehuels/starchart/pkg/render"
	"github.com/matzehuels/starchart/pkg/sphere"
	"github.com/matzehuels/starchart/pkg/style"
)

// Object is a point to plot with a marker and an optional label.
type Object struct {
	Name    string
	RA, Dec float64
	Style   style.ObjectStyle

	// Legend names the legend entry the object registers. Empty adds none.
	Legend string
}

type align int

const (
	alignLeft align = iota
	alignCenter
)

// PlotObject draws obj's marker and proposes its label. It reports false,
// drawing nothing, when obj is out of bounds.
func (s *Session) PlotObject(obj Object) bool {
	return s.plotObject(obj, s.px(obj.Style.Marker.Size))
}

// plotObject draws obj with a marker diameter of size pixels.
func (s *Session) plotObject(obj Object, size float64) bool {
	if !s.kind.InBounds(obj.RA, obj.Dec) {
		s.stats.Skipped++
		return false
	}
	s.stats.Objects++
	p := s.Pixel(obj.RA, obj.Dec)
	m := obj.Style.Marker
	if m.Visible {
		s.add(render.Marker{
			Z:         m.ZOrder,
			Center:    p,
			Size:      size,
			Symbol:    render.Symbol(m.Symbol),
			Fill:      string(m.Color),
			Edge:      string(m.EdgeColor),
			EdgeWidth: s.px(m.EdgeWidth),
			Alpha:     m.Alpha,
		})
	}
	if obj.Name != "" && obj.Style.Label.Visible {
		s.placeText(obj.Name, p, obj.Style.Label, alignLeft)
	}
	s.addLegend(obj.Legend, m)
	return true
}

// PlotText proposes a free text label anchored at (ra, dec). The text's
// baseline starts at the anchor shifted by the style's offset.
func (s *Session) PlotText(text string, ra, dec float64, ls style.LabelStyle) bool {
	return s.plotText(text, ra, dec, ls, alignLeft)
}

// PlotTextCentered is PlotText with the text centered on the anchor.
func (s *Session) PlotTextCentered(text string, ra, dec float64, ls style.LabelStyle) bool {
	return s.plotText(text, ra, dec, ls, alignCenter)
}

func (s *Session) plotText(text string, ra, dec float64, ls style.LabelStyle, a align) bool {
	if !ls.Visible || text == "" {
		return false
	}
	if !s.kind.InBounds(ra, dec) {
		s.stats.Skipped++
		return false
	}
	return s.placeText(text, s.Pixel(ra, dec), ls, a)
}

// placeText measures text and proposes it to the label engine.
func (s *Session) placeText(text string, anchor render.Point, ls style.LabelStyle, a align) bool {
	size := s.px(ls.FontSize)
	bold := ls.FontWeight == style.WeightBold
	m, err := fonts.Measure(text, size, bold)
	if err != nil {
		s.logger.Warn("measure label", "text", text, "err", err)
		return false
	}

	var x, baseline float64
	switch a {
	case alignCenter:
		x = anchor.X - m.Width/2
		baseline = anchor.Y + (m.Ascent-m.Descent)/2
	default:
		x = anchor.X + s.px(ls.OffsetX)
		baseline = anchor.Y - s.px(ls.OffsetY)
	}
	box := label.Box{X0: x, Y0: baseline - m.Ascent, X1: x + m.Width, Y1: baseline + m.Descent}

	out := s.labels.Propose(text, label.Point{X: anchor.X, Y: anchor.Y}, box)
	if out != label.Accepted {
		s.logger.Debug("label rejected", "text", text, "outcome", out)
		return false
	}
	s.texts = append(s.texts, labelText{
		size:      size,
		color:     ls.FontColor,
		bold:      bold,
		alpha:     ls.FontAlpha,
		halo:      ls.BorderColor,
		haloWidth: s.px(ls.BorderWidth),
		ascent:    m.Ascent,
		z:         ls.ZOrder,
	})
	return true
}

// drawText adds text straight to the display list, outside the label
// engine. Used for chart furniture such as compass points.
func (s *Session) drawText(text string, at render.Point, ls style.LabelStyle, a align) {
	size := s.px(ls.FontSize)
	bold := ls.FontWeight == style.WeightBold
	m, err := fonts.Measure(text, size, bold)
	if err != nil {
		s.logger.Warn("measure text", "text", text, "err", err)
		return
	}
	x, y := at.X, at.Y
	if a == alignCenter {
		x -= m.Width / 2
		y += (m.Ascent - m.Descent) / 2
	}
	s.add(render.Text{
		Z:         ls.ZOrder,
		X:         x,
		Y:         y,
		Text:      text,
		Size:      size,
		Color:     string(ls.FontColor),
		Bold:      bold,
		Alpha:     ls.FontAlpha,
		Halo:      string(ls.BorderColor),
		HaloWidth: s.px(ls.BorderWidth),
	})
}

// drawInfo stacks lines upward from the baseline at bottomLeft.
func (s *Session) drawInfo(bottomLeft render.Point, lines []string) {
	ls := s.style.InfoText
	if !ls.Visible {
		return
	}
	step := s.px(ls.FontSize) * 1.4
	for i, line := range lines {
		at := render.Point{X: bottomLeft.X, Y: bottomLeft.Y - float64(len(lines)-1-i)*step}
		s.drawText(line, at, ls, alignLeft)
	}
}

// PlotCircle draws a circle of the given angular radius in degrees.
func (s *Session) PlotCircle(center celestial.Coord, radius float64, ps style.PolygonStyle) error {
	pts, err := sphere.Circle(center, radius, sphere.DefaultPoints)
	if err != nil {
		return err
	}
	s.PlotPolygon(pts, ps)
	return nil
}

// PlotEllipse draws an ellipse with height and width in degrees, rotated
// clockwise by angle.
func (s *Session) PlotEllipse(center celestial.Coord, height, width, angle float64, ps style.PolygonStyle) error {
	pts, err := sphere.Ellipse(center, height, width, angle, sphere.DefaultPoints)
	if err != nil {
		return err
	}
	s.PlotPolygon(pts, ps)
	return nil
}

// rectangleSubdivisions is the number of extra vertices per rectangle edge.
const rectangleSubdivisions = 24

// PlotRectangle draws a rectangle with height and width in degrees,
// rotated clockwise by angle.
func (s *Session) PlotRectangle(center celestial.Coord, height, width, angle float64, ps style.PolygonStyle) error {
	pts, err := sphere.Rectangle(center, height, width, angle, rectangleSubdivisions)
	if err != nil {
		return err
	}
	s.PlotPolygon(pts, ps)
	return nil
}

// PlotPolygon fills and strokes a closed polygon. It is drawn whole when
// at least one vertex is in bounds, and skipped otherwise.
func (s *Session) PlotPolygon(points []celestial.Coord, ps style.PolygonStyle) bool {
	if !ps.Visible || len(points) < 3 {
		return false
	}
	points = sphere.Reflect(points)
	inside := false
	for _, p := range points {
		if s.kind.InBounds(p.RA, p.Dec) {
			inside = true
			break
		}
	}
	if !inside {
		s.stats.Skipped++
		return false
	}
	if d, ok := s.kind.(drawable); ok {
		for _, p := range points {
			if !d.canDraw(p.RA, p.Dec) {
				s.stats.Skipped++
				return false
			}
		}
	}
	if sm, ok := s.kind.(seamer); ok {
		for i, p := range points {
			if sm.crossesSeam(p, points[(i+1)%len(points)]) {
				s.stats.Skipped++
				return false
			}
		}
	}

	px := make([]render.Point, len(points))
	for i, p := range points {
		px[i] = s.Pixel(p.RA, p.Dec)
	}
	w := s.px(ps.EdgeWidth)
	s.add(render.Polygon{
		Z:      ps.ZOrder,
		Points: px,
		Fill:   string(ps.FillColor),
		Edge:   string(ps.EdgeColor),
		Width:  w,
		Alpha:  ps.Alpha,
		Dash:   ps.LineStyle.Dash(w),
	})
	s.stats.Shapes++
	return true
}

// PlotPath strokes a polyline through points. Segments with both ends out
// of bounds, or that cross the chart's RA seam, break the line. It returns
// the number of polylines drawn.
func (s *Session) PlotPath(points []celestial.Coord, ls style.LineStyle) int {
	if !ls.Visible || len(points) < 2 {
		return 0
	}
	var runs [][]render.Point
	var cur []render.Point
	flush := func() {
		if len(cur) >= 2 {
			runs = append(runs, cur)
		}
		cur = nil
	}
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if !s.segmentVisible(a, b) {
			flush()
			continue
		}
		if len(cur) == 0 {
			cur = append(cur, s.Pixel(a.RA, a.Dec))
		}
		cur = append(cur, s.Pixel(b.RA, b.Dec))
	}
	flush()

	w := s.px(ls.Width)
	for _, r := range runs {
		s.add(render.Polyline{
			Z:      ls.ZOrder,
			Points: r,
			Color:  string(ls.Color),
			Width:  w,
			Alpha:  ls.Alpha,
			Dash:   ls.Style.Dash(w),
		})
	}
	return len(runs)
}

func (s *Session) segmentVisible(a, b celestial.Coord) bool {
	if !s.kind.InBounds(a.RA, a.Dec) && !s.kind.InBounds(b.RA, b.Dec) {
		return false
	}
	if d, ok := s.kind.(drawable); ok && (!d.canDraw(a.RA, a.Dec) || !d.canDraw(b.RA, b.Dec)) {
		return false
	}
	if sm, ok := s.kind.(seamer); ok && sm.crossesSeam(a, b) {
		return false
	}
	return true
}

// ZReticle draws reticles above everything but the legend.
const ZReticle = style.ZLegend - 1

// DrawReticle marks a target with a dot and a dashed ring five times its
// size. Size is in points.
func (s *Session) DrawReticle(ra, dec, size float64, color style.Color) bool {
	if !s.kind.InBounds(ra, dec) {
		return false
	}
	p := s.Pixel(ra, dec)
	d := s.px(size)
	w := max(d/6, 1)
	s.add(
		render.Marker{Z: ZReticle, Center: p, Size: d, Symbol: render.SymbolCircle, Fill: string(color), Alpha: 1},
		render.Circle{Z: ZReticle, Center: p, Radius: d * 2.5, Edge: string(color), Width: w, Alpha: 1, Dash: style.LineDashed.Dash(w)},
	)
	return true
}
