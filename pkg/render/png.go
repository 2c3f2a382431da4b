package render

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/matzehuels/starchart/pkg/fonts"
)

var (
	ttfOnce sync.Once
	ttf     [2]*truetype.Font
	ttfErr  error
)

func truetypeFont(bold bool) (*truetype.Font, error) {
	ttfOnce.Do(func() {
		for i, b := range []bool{false, true} {
			f, err := truetype.Parse(fonts.TTF(b))
			if err != nil {
				ttfErr = fmt.Errorf("parse font: %w", err)
				return
			}
			ttf[i] = f
		}
	})
	if ttfErr != nil {
		return nil, ttfErr
	}
	if bold {
		return ttf[1], nil
	}
	return ttf[0], nil
}

// pngRenderer keeps one face per size for a single render.
type pngRenderer struct {
	dc    *gg.Context
	scale float64
	faces map[[2]float64]font.Face
}

// RenderPNG rasterizes c.
func RenderPNG(c *Canvas, opts ...Option) ([]byte, error) {
	o := newOptions(opts...)
	w := (c.Width + 2*o.padding) * o.scale
	h := (c.Height + 2*o.padding) * o.scale

	r := pngRenderer{
		dc:    gg.NewContext(iround(w), iround(h)),
		scale: o.scale,
		faces: map[[2]float64]font.Face{},
	}
	if bg, ok := paint(c.Background, 1); ok {
		r.dc.SetColor(bg)
		r.dc.Clear()
	}
	r.dc.Scale(o.scale, o.scale)
	r.dc.Translate(o.padding, o.padding)

	for _, op := range c.sorted() {
		switch op := op.(type) {
		case Polygon:
			r.path(op.Points, true)
			r.finish(op.Fill, op.Edge, op.Width, op.Alpha, op.Dash)
		case Polyline:
			r.path(op.Points, false)
			r.finish("", op.Color, op.Width, op.Alpha, op.Dash)
		case Circle:
			r.dc.NewSubPath()
			r.dc.DrawCircle(op.Center.X, op.Center.Y, op.Radius)
			r.finish(op.Fill, op.Edge, op.Width, op.Alpha, op.Dash)
		case Text:
			if err := r.text(op); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := r.dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pngRenderer) path(pts []Point, closed bool) {
	if len(pts) == 0 {
		return
	}
	r.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	if closed {
		r.dc.ClosePath()
	}
}

func (r *pngRenderer) finish(fill, edge string, width, alpha float64, dash []float64) {
	e, stroke := paint(edge, alpha)
	stroke = stroke && width > 0
	if f, ok := paint(fill, alpha); ok {
		r.dc.SetColor(f)
		if stroke {
			r.dc.FillPreserve()
		} else {
			r.dc.Fill()
		}
	}
	if stroke {
		r.dc.SetColor(e)
		// Line widths are not affected by the transform.
		r.dc.SetLineWidth(width * r.scale)
		scaled := make([]float64, len(dash))
		for i, d := range dash {
			scaled[i] = d * r.scale
		}
		r.dc.SetDash(scaled...)
		r.dc.Stroke()
		r.dc.SetDash()
	}
	r.dc.ClearPath()
}

func (r *pngRenderer) text(t Text) error {
	// gg positions text through the transform but does not scale glyphs.
	key := [2]float64{t.Size * r.scale, 0}
	if t.Bold {
		key[1] = 1
	}
	face, ok := r.faces[key]
	if !ok {
		f, err := truetypeFont(t.Bold)
		if err != nil {
			return err
		}
		face = truetype.NewFace(f, &truetype.Options{Size: key[0], DPI: 72, Hinting: font.HintingNone})
		r.faces[key] = face
	}
	r.dc.SetFontFace(face)

	if halo, ok := paint(t.Halo, t.Alpha); ok && t.HaloWidth > 0 {
		r.dc.SetColor(halo)
		// Approximate an outline by stamping the glyphs around a circle.
		steps := 12
		for i := 0; i < steps; i++ {
			a := 2 * math.Pi * float64(i) / float64(steps)
			r.dc.DrawString(t.Text, t.X+t.HaloWidth*math.Cos(a), t.Y+t.HaloWidth*math.Sin(a))
		}
	}
	if c, ok := paint(t.Color, t.Alpha); ok {
		r.dc.SetColor(c)
		r.dc.DrawString(t.Text, t.X, t.Y)
	}
	return nil
}
