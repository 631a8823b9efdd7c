package radar

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// Default canvas size in pixels.
const (
	defaultWidth  = 800
	defaultHeight = 800
)

// Segment is a straight line between two screen points.
type Segment struct {
	A, B geom.Coord
}

// Ring is one circular gridline of the radial axis.
type Ring struct {
	Radius float64 // pixels
	Value  float64 // data value at this radius
}

// TextItem is a piece of text anchored at a screen point.
type TextItem struct {
	Text   string
	Anchor geom.Coord
	Align  HorizontalAlignment
	VAlign VerticalAlignment
	Font   *Font
	// SizePx is the font size converted to pixels.
	SizePx float64
}

// Label is a category label placed outside the plot.
type Label struct {
	TextItem
	Axis int
	// Bearing is the transformed angle the alignment was derived from.
	Bearing float64
}

// Figure is a fully laid out chart in screen coordinates. Every canvas draws
// the same Figure, so raster, vector and on-screen output agree.
type Figure struct {
	Width, Height int
	Center        geom.Coord
	// Radius is the on-screen radius of RMax, in pixels.
	Radius   float64
	Scale    RadialScale
	Geometry *Geometry
	Style    *Style

	Spokes  [AxisCount]Segment
	Rings   []Ring
	Ticks   []TextItem
	Polygon [AxisCount + 1]geom.Coord
	Labels  [AxisCount]Label
	Title   TextItem
}

// Bounds returns the smallest rectangle containing the data polygon.
func (f *Figure) Bounds() geom.Rect {
	r := geom.Rect{Min: f.Polygon[0], Max: f.Polygon[0]}
	for _, p := range f.Polygon[1:] {
		r.ExpandToContainCoord(p)
	}
	return r
}

// LayoutOptions configures NewLayout. Zero fields take defaults.
type LayoutOptions struct {
	Width, Height int
	DPI           float64
	Orientation   Orientation
	Style         *Style
}

// layoutPadding is the gap, in pixels, between the plot edge and labels and
// around the title.
const layoutPadding = 8

// NewLayout places the chart described by in and g on a canvas.
func NewLayout(in ChartInput, g *Geometry, opts LayoutOptions) *Figure {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	if opts.Orientation.Direction == 0 {
		opts.Orientation = DefaultOrientation()
	}
	style := opts.Style.withDefaults()

	labelPx := fontPixels(style.LabelFont, opts.DPI)
	tickPx := fontPixels(style.TickFont, opts.DPI)
	titlePx := fontPixels(style.TitleFont, opts.DPI)

	titleBand := float64(layoutPadding)
	if in.Title != "" {
		titleBand = titlePx + 2*layoutPadding
	}
	w := float64(opts.Width)
	plotH := float64(opts.Height) - titleBand

	// Side labels run horizontally, so leave more room left and right.
	radius := math.Min(w/2-4*labelPx, plotH/2-2*labelPx-layoutPadding)
	if radius < 1 {
		radius = 1
	}

	fig := &Figure{
		Width:    opts.Width,
		Height:   opts.Height,
		Center:   geom.Coord{X: w / 2, Y: titleBand + plotH/2},
		Radius:   radius,
		Scale:    g.Scale(),
		Geometry: g,
		Style:    style,
	}
	o := opts.Orientation

	for i, base := range g.Angles {
		fig.Spokes[i] = Segment{A: fig.Center, B: o.Point(fig.Center, radius, base)}

		bearing := o.Bearing(base)
		fig.Labels[i] = Label{
			TextItem: TextItem{
				Text:   in.Categories[i],
				Anchor: o.Point(fig.Center, radius+layoutPadding, base),
				Align:  ClassifyAlignment(bearing),
				VAlign: labelVAlign(bearing),
				Font:   style.LabelFont,
				SizePx: labelPx,
			},
			Axis:    i,
			Bearing: bearing,
		}
	}

	for i, p := range g.Polygon {
		fig.Polygon[i] = o.Point(fig.Center, radius*fig.Scale.Fraction(p.Radius), p.Angle)
	}

	for k, v := range fig.Scale.Ticks(style.Rings()) {
		r := radius * float64(k+1) / float64(style.Rings())
		fig.Rings = append(fig.Rings, Ring{Radius: r, Value: v})
		// Tick values run along axis 0, just beside the spoke.
		at := o.Point(fig.Center, r, g.Angles[0])
		fig.Ticks = append(fig.Ticks, TextItem{
			Text:   formatTick(v),
			Anchor: geom.Coord{X: at.X + 3, Y: at.Y},
			Align:  HorizontalLeft,
			VAlign: VerticalTop,
			Font:   style.TickFont,
			SizePx: tickPx,
		})
	}
	if fig.Scale.Degenerate() && style.Rings() > 0 {
		// No data extent, but keep the outline of the plot area visible.
		fig.Rings = append(fig.Rings, Ring{Radius: radius})
	}

	fig.Title = TextItem{
		Text:   in.Title,
		Anchor: geom.Coord{X: w / 2, Y: titleBand / 2},
		Align:  HorizontalCenter,
		VAlign: VerticalMiddle,
		Font:   style.TitleFont,
		SizePx: titlePx,
	}
	return fig
}

// labelVAlign keeps the top label above the plot and the bottom label below it.
func labelVAlign(bearing float64) VerticalAlignment {
	switch {
	case nearAngle(bearing, 0), nearAngle(bearing, 2*math.Pi):
		return VerticalBottom
	case nearAngle(bearing, math.Pi):
		return VerticalTop
	default:
		return VerticalMiddle
	}
}

func formatTick(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
