package render

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/matzehuels/starchart/pkg/errors"
	"github.com/matzehuels/starchart/pkg/fonts"
)

// pdfConverter is the external tool that turns SVG into PDF.
var pdfConverter = "rsvg-convert"

// RenderPDF renders c as a PDF page. The SVG is converted by rsvg-convert
// at [fonts.DPI], so the page is as many inches wide as the chart.
func RenderPDF(c *Canvas, opts ...Option) ([]byte, error) {
	return svgToPDF(RenderSVG(c, opts...))
}

func svgToPDF(svg []byte) ([]byte, error) {
	if _, err := exec.LookPath(pdfConverter); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"pdf output needs %s (brew install librsvg, or apt install librsvg2-bin)", pdfConverter)
	}

	dpi := strconv.FormatFloat(fonts.DPI, 'f', -1, 64)
	cmd := exec.Command(pdfConverter, "-f", "pdf", "--dpi-x", dpi, "--dpi-y", dpi)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %v: %s", pdfConverter, err, stderr.String())
	}
	return out.Bytes(), nil
}
