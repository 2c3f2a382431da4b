// Package fonts provides the chart typeface and text metrics.
//
// Charts use the Go font family (regular and bold), which ships with
// golang.org/x/image, so every sink draws and measures the same glyphs
// without depending on fonts installed on the host. Metrics are computed at
// [DPI] so label boxes measured during layout match what the sinks draw.
package fonts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DPI is the resolution charts are laid out at. One point is DPI/72 pixels.
const DPI = 144.0

// FontFamily is the CSS font-family written into SVG output.
const FontFamily = "Go"

// FallbackFontFamily lists CSS fallbacks for viewers without the Go fonts.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Helvetica, Arial, sans-serif`

// TTF returns the raw TrueType data for the regular or bold face.
func TTF(bold bool) []byte {
	if bold {
		return gobold.TTF
	}
	return goregular.TTF
}

// Metrics describes a line of text in pixels.
type Metrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height is the line height, ascent plus descent.
func (m Metrics) Height() float64 { return m.Ascent + m.Descent }

type faceKey struct {
	size float64
	bold bool
}

var (
	parseOnce sync.Once
	parsed    [2]*opentype.Font
	parseErr  error

	// opentype faces are not safe for concurrent use; mu guards both the
	// cache and every measurement.
	mu    sync.Mutex
	faces = map[faceKey]font.Face{}
)

func load() error {
	parseOnce.Do(func() {
		for i, data := range [][]byte{goregular.TTF, gobold.TTF} {
			f, err := opentype.Parse(data)
			if err != nil {
				parseErr = fmt.Errorf("parse font: %w", err)
				return
			}
			parsed[i] = f
		}
	})
	return parseErr
}

func face(px float64, bold bool) (font.Face, error) {
	key := faceKey{size: px, bold: bold}
	if f, ok := faces[key]; ok {
		return f, nil
	}
	if err := load(); err != nil {
		return nil, err
	}
	idx := 0
	if bold {
		idx = 1
	}
	// Size is given in points at 72 DPI, which makes it a pixel size.
	f, err := opentype.NewFace(parsed[idx], &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	faces[key] = f
	return f, nil
}

// Measure returns the metrics of text set at px pixels.
func Measure(text string, px float64, bold bool) (Metrics, error) {
	mu.Lock()
	defer mu.Unlock()

	f, err := face(px, bold)
	if err != nil {
		return Metrics{}, err
	}
	m := f.Metrics()
	return Metrics{
		Width:   float64(font.MeasureString(f, text)) / 64,
		Ascent:  float64(m.Ascent) / 64,
		Descent: float64(m.Descent) / 64,
	}, nil
}

// PointsToPixels converts a font size in points to pixels at DPI.
func PointsToPixels(pt float64) float64 { return pt * DPI / 72 }
