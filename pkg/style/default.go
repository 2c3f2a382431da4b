package style

// Z orders shared by the default style. Higher draws on top.
const (
	ZGrid = iota + 1
	ZPath
	ZConstellation
	ZShape
	ZDSO
	ZStar
	ZPlanet
	ZMoon
	ZLabel
	ZBorder
	ZLegend
)

func label(size float64, color Color, weight FontWeight) LabelStyle {
	return LabelStyle{
		FontSize:    size,
		FontColor:   color,
		FontWeight:  weight,
		FontAlpha:   1,
		BorderColor: "#ffffff",
		BorderWidth: 2,
		OffsetX:     4,
		OffsetY:     4,
		Visible:     true,
		ZOrder:      ZLabel,
	}
}

func marker(symbol MarkerSymbol, size float64, color, edge Color, z int) MarkerStyle {
	return MarkerStyle{
		Color:     color,
		EdgeColor: edge,
		EdgeWidth: 1,
		Symbol:    symbol,
		Size:      size,
		Alpha:     1,
		Visible:   true,
		ZOrder:    z,
	}
}

func line(color Color, width float64, kind LineStyleKind, alpha float64, z int) LineStyle {
	return LineStyle{Color: color, Width: width, Style: kind, Alpha: alpha, Visible: true, ZOrder: z}
}

// Default returns the base style: dark ink on a white background.
//
// Star marker Size is a scale factor on the magnitude-derived size; every
// other Size is a marker diameter in points.
func Default() PlotStyle {
	return PlotStyle{
		BackgroundColor:       "#ffffff",
		FigureBackgroundColor: "#ffffff",
		TextBorderWidth:       2,

		Legend: LegendStyle{
			Location:        LegendUpperRight,
			FontSize:        18,
			FontColor:       "#000000",
			BackgroundColor: "#ffffff",
			BackgroundAlpha: 0.9,
			Padding:         8,
			Visible:         true,
			ZOrder:          ZLegend,
		},

		Star: ObjectStyle{
			Marker: marker(SymbolPoint, 1, "#000000", None, ZStar),
			Label:  label(15, "#000000", WeightBold),
		},
		DSO: ObjectStyle{
			Marker: marker(SymbolCircle, 12, "#ffffff", "#000000", ZDSO),
			Label:  label(13, "#333333", WeightNormal),
		},
		Galaxy: ObjectStyle{
			Marker: marker(SymbolEllipse, 14, "#d99cba", "#4d2038", ZDSO),
			Label:  label(13, "#6a2c4c", WeightNormal),
		},
		Nebula: ObjectStyle{
			Marker: marker(SymbolSquare, 12, "#a6dfb5", "#1f5c34", ZDSO),
			Label:  label(13, "#1f5c34", WeightNormal),
		},
		OpenCluster: ObjectStyle{
			Marker: marker(SymbolCircle, 12, "#fff3c2", "#7a6a1a", ZDSO),
			Label:  label(13, "#5c4f0f", WeightNormal),
		},
		GlobularCluster: ObjectStyle{
			Marker: marker(SymbolCirclePlus, 12, "#ede686", "#5c5711", ZDSO),
			Label:  label(13, "#5c5711", WeightNormal),
		},
		Planets: ObjectStyle{
			Marker: marker(SymbolCircle, 10, "#f89d00", "#000000", ZPlanet),
			Label:  label(16, "#6b4300", WeightBold),
		},
		Moon: ObjectStyle{
			Marker: marker(SymbolCircle, 22, "#c8c8c8", "#000000", ZMoon),
			Label:  label(16, "#000000", WeightBold),
		},
		Sun: ObjectStyle{
			Marker: marker(SymbolCircle, 26, "#ffe000", "#000000", ZMoon),
			Label:  label(16, "#000000", WeightBold),
		},

		Constellation: PathStyle{
			Line:  line("#8c8c8c", 2, LineSolid, 0.7, ZConstellation),
			Label: label(14, "#555555", WeightNormal),
		},
		Ecliptic: PathStyle{
			Line:  line("#e33b3b", 2, LineDotted, 0.9, ZPath),
			Label: label(11, "#e33b3b", WeightBold),
		},
		CelestialEquator: PathStyle{
			Line:  line("#2d5ec2", 2, LineDashed, 0.6, ZPath),
			Label: label(11, "#2d5ec2", WeightBold),
		},
		GridLines: PathStyle{
			Line:  line("#888888", 1, LineSolid, 0.4, ZGrid),
			Label: label(11, "#666666", WeightNormal),
		},
		Border: PathStyle{
			Line:  line("#000000", 4, LineSolid, 1, ZBorder),
			Label: label(24, "#000000", WeightBold),
		},

		Shape: PolygonStyle{
			FillColor: "#3f80d4",
			EdgeColor: "#3f80d4",
			EdgeWidth: 2,
			LineStyle: LineSolid,
			Alpha:     0.3,
			Visible:   true,
			ZOrder:    ZShape,
		},
		InfoText: label(14, "#000000", WeightNormal),
	}
}
