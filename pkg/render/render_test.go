package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/starchart/pkg/errors"
)

func testCanvas() *Canvas {
	c := NewCanvas(200, 100, "#000000")
	c.ID = "abc"
	c.Title = "test chart"
	c.Add(
		Polygon{Z: 1, Points: []Point{{10, 10}, {50, 10}, {30, 40}}, Fill: "#ff0000", Edge: "#ffffff", Width: 1.5},
		Polyline{Z: 1, Points: []Point{{0, 90}, {200, 90}}, Color: "#00ff00", Width: 2, Dash: []float64{4, 2}},
		Marker{Z: 2, Center: Point{100, 50}, Size: 8, Symbol: SymbolStar, Fill: "#ffffff"},
		Text{Z: 3, X: 120, Y: 30, Text: "Vega & Deneb", Size: 14, Color: "#ffffff", Halo: "#000000", HaloWidth: 1},
	)
	return c
}

func TestRenderSVG(t *testing.T) {
	out := string(RenderSVG(testCanvas(), WithPadding(0.5)))

	for _, want := range []string{
		`viewBox="0 0 344 244"`, // 72px padding per side
		`id="chart-abc"`,
		"<title>test chart</title>",
		"<polygon",
		"<polyline",
		"stroke-dasharray:40,20",
		"Vega &amp; Deneb",
		"paint-order:stroke",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(testCanvas(), WithScale(2))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 200 {
		t.Fatalf("size = %dx%d, want 400x200", b.Dx(), b.Dy())
	}
	if r, g, b, _ := img.At(399, 0).RGBA(); r != 0 || g != 0 || b != 0 {
		t.Errorf("background pixel = (%d, %d, %d), want black", r, g, b)
	}
	// Inside the red triangle.
	if r, g, b, _ := img.At(60, 40).RGBA(); r>>8 < 200 || g>>8 > 50 || b>>8 > 50 {
		t.Errorf("triangle pixel = (%d, %d, %d), want red", r>>8, g>>8, b>>8)
	}
}

func TestRenderInvalidFormat(t *testing.T) {
	_, err := Render(testCanvas(), Format("bmp"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render(bmp) error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestSortedByZ(t *testing.T) {
	c := NewCanvas(10, 10, "")
	c.Add(
		Text{Z: 5, Text: "top"},
		Circle{Z: 0, Radius: 1},
		Text{Z: 5, Text: "top2"},
		Polyline{Z: 1},
	)
	ops := c.sorted()
	if _, ok := ops[0].(Circle); !ok {
		t.Errorf("first op = %T, want Circle", ops[0])
	}
	if _, ok := ops[1].(Polyline); !ok {
		t.Errorf("second op = %T, want Polyline", ops[1])
	}
	if ops[2].(Text).Text != "top" || ops[3].(Text).Text != "top2" {
		t.Error("ops with equal Z lost insertion order")
	}
}

func TestMarkerPrimitives(t *testing.T) {
	tests := []struct {
		symbol Symbol
		want   int
	}{
		{SymbolPoint, 1},
		{SymbolCircle, 1},
		{SymbolSquare, 1},
		{SymbolPlus, 2},
		{SymbolCirclePlus, 3},
		{Symbol("unknown"), 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.symbol), func(t *testing.T) {
			m := Marker{Center: Point{5, 5}, Size: 4, Symbol: tt.symbol, Fill: "#fff"}
			if got := len(m.Primitives()); got != tt.want {
				t.Errorf("len(Primitives) = %d, want %d", got, tt.want)
			}
		})
	}

	sq := Marker{Center: Point{0, 0}, Size: 10, Symbol: SymbolSquare}.Primitives()[0].(Polygon)
	for _, p := range sq.Points {
		if d := p.X*p.X + p.Y*p.Y; d < 49.99 || d > 50.01 {
			t.Errorf("square corner %+v not at half-diagonal", p)
		}
	}
}

func TestPaint(t *testing.T) {
	if _, ok := paint("none", 1); ok {
		t.Error("none should not paint")
	}
	if _, ok := paint("", 1); ok {
		t.Error("empty should not paint")
	}
	c, ok := paint("#336699", 0.5)
	if !ok || c.R != 0x33 || c.G != 0x66 || c.B != 0x99 || c.A != 128 {
		t.Errorf("paint = %+v, %v", c, ok)
	}
}

func TestRenderPDFWithoutConverter(t *testing.T) {
	old := pdfConverter
	pdfConverter = "starchart-no-such-converter"
	defer func() { pdfConverter = old }()

	_, err := Render(testCanvas(), FormatPDF)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("missing converter: got %v, want UNSUPPORTED", err)
	}
}
