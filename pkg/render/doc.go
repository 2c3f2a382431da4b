// Package render turns a chart's display list into image files.
//
// # Overview
//
// A chart session does not draw directly. It appends primitives to a
// [Canvas]: markers, polygons, polylines, circles and text, all in pixel
// space with y growing downward. The canvas is then handed to a sink:
//
//   - [RenderSVG]: vector output written with github.com/ajstarks/svgo
//   - [RenderPNG]: raster output drawn with github.com/fogleman/gg
//   - [RenderPDF]: the SVG handed to rsvg-convert, one page per chart
//
// [Render] dispatches on a [Format] name.
//
// # Layering
//
// Each primitive carries a Z value. Sinks draw in ascending Z and, within
// one Z, in insertion order, so a session can add a constellation line after
// a star and still have the star drawn on top.
//
// # Options
//
// Sinks accept functional options. [WithPadding] adds a margin in inches
// around the chart; [WithScale] multiplies the raster size of PNG output.
//
//	data, err := render.Render(canvas, render.FormatPNG, render.WithPadding(0.2))
package render
