package chart

import (
	"io"

	"github.com/matzehuels/starchart/pkg/errors"
	"github.com/matzehuels/starchart/pkg/fonts"
	"github.com/matzehuels/starchart/pkg/render"
	"github.com/matzehuels/starchart/pkg/style"
)

// Canvas composes the session into a display list: everything plotted,
// then the accepted labels at their current positions, then the legend.
// Calling it does not change the session.
func (s *Session) Canvas() *render.Canvas {
	c := render.NewCanvas(s.width, s.height, string(s.style.FigureBackgroundColor))
	c.ID = s.ID
	c.Title = s.title
	if c.Title == "" {
		c.Title = "Star chart (" + s.kind.Name() + ")"
	}
	c.Add(s.ops...)

	for i, p := range s.labels.Placed() {
		t := s.texts[i]
		c.Add(render.Text{
			Z:         t.z,
			X:         p.Box.X0,
			Y:         p.Box.Y0 + t.ascent,
			Text:      p.Text,
			Size:      t.size,
			Color:     string(t.color),
			Bold:      t.bold,
			Alpha:     t.alpha,
			Halo:      string(t.halo),
			HaloWidth: t.haloWidth,
		})
	}

	if s.showLegend && s.style.Legend.Visible && len(s.legend) > 0 {
		c.Add(s.legendOps()...)
	}
	return c
}

// legendOps lays the legend out as a column of marker and label rows
// inside a box in the configured corner.
func (s *Session) legendOps() []render.Op {
	ls := s.style.Legend
	size := s.px(ls.FontSize)
	pad := s.px(ls.Padding)
	row := size * 1.6
	markerCol := size * 1.2

	textW := 0.0
	ascent := size * 0.75
	for _, h := range s.legend {
		m, err := fonts.Measure(h.Label, size, false)
		if err != nil {
			s.logger.Warn("measure legend", "label", h.Label, "err", err)
			continue
		}
		textW = max(textW, m.Width)
		ascent = m.Ascent
	}
	w := pad*3 + markerCol + textW
	h := pad*2 + row*float64(len(s.legend))

	margin := pad
	x0, y0 := s.width-w-margin, margin
	switch ls.Location {
	case style.LegendUpperLeft:
		x0 = margin
	case style.LegendLowerLeft:
		x0, y0 = margin, s.height-h-margin
	case style.LegendLowerRight:
		y0 = s.height - h - margin
	}

	ops := []render.Op{render.Polygon{
		Z: ls.ZOrder,
		Points: []render.Point{
			{X: x0, Y: y0}, {X: x0 + w, Y: y0}, {X: x0 + w, Y: y0 + h}, {X: x0, Y: y0 + h},
		},
		Fill:  string(ls.BackgroundColor),
		Edge:  string(ls.FontColor),
		Width: 1,
		Alpha: ls.BackgroundAlpha,
	}}
	for i, handle := range s.legend {
		cy := y0 + pad + row*(float64(i)+0.5)
		m := handle.Marker
		d := min(max(s.px(m.Size), size*0.5), markerCol)
		ops = append(ops,
			render.Marker{
				Z:         ls.ZOrder,
				Center:    render.Point{X: x0 + pad + markerCol/2, Y: cy},
				Size:      d,
				Symbol:    render.Symbol(m.Symbol),
				Fill:      string(m.Color),
				Edge:      string(m.EdgeColor),
				EdgeWidth: s.px(m.EdgeWidth),
				Alpha:     m.Alpha,
			},
			render.Text{
				Z:     ls.ZOrder,
				X:     x0 + pad*2 + markerCol,
				Y:     cy + ascent/2,
				Text:  handle.Label,
				Size:  size,
				Color: string(ls.FontColor),
			},
		)
	}
	return ops
}

// Export renders the chart and writes it to w. Padding is in inches.
func (s *Session) Export(w io.Writer, format render.Format, padding float64) error {
	if err := errors.ValidatePadding(padding); err != nil {
		return err
	}
	data, err := render.Render(s.Canvas(), format, render.WithPadding(padding))
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", format)
	}
	s.logger.Info("exported chart", "id", s.ID, "format", format, "bytes", len(data))
	return nil
}
