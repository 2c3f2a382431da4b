package render

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/starchart/pkg/fonts"
)

// svgo takes integer coordinates; everything is written at svgUnits per
// pixel inside a scaling group to keep sub-pixel precision.
const svgUnits = 10

// RenderSVG writes c as an SVG document.
func RenderSVG(c *Canvas, opts ...Option) []byte {
	o := newOptions(opts...)
	w := c.Width + 2*o.padding
	h := c.Height + 2*o.padding

	var buf bytes.Buffer
	s := svg.New(&buf)

	attrs := []string{fmt.Sprintf(`viewBox="0 0 %d %d"`, iround(w), iround(h))}
	if c.ID != "" {
		attrs = append(attrs, fmt.Sprintf(`id="chart-%s"`, c.ID))
	}
	s.Start(iround(w), iround(h), attrs...)
	if c.Title != "" {
		s.Title(c.Title)
	}
	if fill, ok := paint(c.Background, 1); ok {
		s.Rect(0, 0, iround(w), iround(h), "fill:"+hexOf(fill))
	}

	s.Gtransform(fmt.Sprintf("translate(%g %g) scale(%g)", o.padding, o.padding, 1.0/svgUnits))
	for _, op := range c.sorted() {
		switch op := op.(type) {
		case Polygon:
			xs, ys := coords(op.Points)
			s.Polygon(xs, ys, shapeStyle(op.Fill, op.Edge, op.Width, op.Alpha, op.Dash))
		case Polyline:
			xs, ys := coords(op.Points)
			s.Polyline(xs, ys, shapeStyle("none", op.Color, op.Width, op.Alpha, op.Dash))
		case Circle:
			s.Circle(unit(op.Center.X), unit(op.Center.Y), unit(op.Radius),
				shapeStyle(op.Fill, op.Edge, op.Width, op.Alpha, op.Dash))
		case Text:
			s.Text(unit(op.X), unit(op.Y), op.Text, textStyle(op))
		}
	}
	s.Gend()
	s.End()
	return buf.Bytes()
}

func shapeStyle(fill, edge string, width, alpha float64, dash []float64) string {
	var b strings.Builder
	if f, ok := paint(fill, alpha); ok {
		fmt.Fprintf(&b, "fill:%s;fill-opacity:%.3g;", hexOf(f), opacity(alpha))
	} else {
		b.WriteString("fill:none;")
	}
	if e, ok := paint(edge, alpha); ok && width > 0 {
		fmt.Fprintf(&b, "stroke:%s;stroke-opacity:%.3g;stroke-width:%d;stroke-linejoin:round;",
			hexOf(e), opacity(alpha), unit(width))
		if len(dash) > 0 {
			parts := make([]string, len(dash))
			for i, d := range dash {
				parts[i] = fmt.Sprint(unit(d))
			}
			fmt.Fprintf(&b, "stroke-dasharray:%s;", strings.Join(parts, ","))
		}
	} else {
		b.WriteString("stroke:none;")
	}
	return strings.TrimSuffix(b.String(), ";")
}

func textStyle(t Text) string {
	var b strings.Builder
	fmt.Fprintf(&b, "font-family:%s;font-size:%dpx;", fonts.FallbackFontFamily, unit(t.Size))
	if t.Bold {
		b.WriteString("font-weight:bold;")
	}
	if f, ok := paint(t.Color, t.Alpha); ok {
		fmt.Fprintf(&b, "fill:%s;fill-opacity:%.3g;", hexOf(f), opacity(t.Alpha))
	}
	if halo, ok := paint(t.Halo, 1); ok && t.HaloWidth > 0 {
		fmt.Fprintf(&b, "stroke:%s;stroke-width:%d;paint-order:stroke;stroke-linejoin:round;",
			hexOf(halo), unit(t.HaloWidth*2))
	}
	return strings.TrimSuffix(b.String(), ";")
}

func coords(pts []Point) ([]int, []int) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = unit(p.X), unit(p.Y)
	}
	return xs, ys
}

func unit(v float64) int   { return iround(v * svgUnits) }
func iround(v float64) int { return int(math.Round(v)) }

func hexOf(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
