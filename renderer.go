package radar

import (
	"image/color"

	"github.com/jbeda/geom"
)

// ImageFormat represents the output format.
type ImageFormat int

const (
	ImageFormatPNG ImageFormat = iota
	ImageFormatJPEG
	ImageFormatSVG
)

// RenderOptions configures chart rendering.
type RenderOptions struct {
	// Width and Height are the output size in pixels. Default: 800x800.
	Width  int
	Height int
	// Format is the output format used by WriteChart and SaveChart.
	Format ImageFormat
	// JPEGQuality is the JPEG quality (1-100). Default: 90.
	JPEGQuality int
	// DPI is the resolution used to convert font points to pixels. Default: 96.
	DPI float64
	// Style overrides the default blue style. Unset fields fall back to DefaultStyle.
	Style *Style
	// Orientation overrides the top-start clockwise orientation.
	Orientation *Orientation
	// FontDirs specifies additional directories to search for TrueType/OpenType fonts.
	FontDirs []string
	// FontCache allows sharing a pre-configured FontCache across multiple renders.
	// If nil, a new FontCache is created using FontDirs.
	FontCache *FontCache
	// RejectDegenerate makes Render fail with a *DegenerateScaleError instead
	// of drawing a zero-radius chart when no value is positive.
	RejectDegenerate bool
}

// DefaultRenderOptions returns default rendering options.
func DefaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Width:       defaultWidth,
		Height:      defaultHeight,
		Format:      ImageFormatPNG,
		JPEGQuality: 90,
		DPI:         defaultDPI,
	}
}

func (o *RenderOptions) withDefaults() *RenderOptions {
	out := DefaultRenderOptions()
	if o == nil {
		return out
	}
	cp := *o
	if cp.Width <= 0 {
		cp.Width = out.Width
	}
	if cp.Height <= 0 {
		cp.Height = out.Height
	}
	if cp.JPEGQuality <= 0 || cp.JPEGQuality > 100 {
		cp.JPEGQuality = out.JPEGQuality
	}
	if cp.DPI <= 0 {
		cp.DPI = out.DPI
	}
	return &cp
}

func (o *RenderOptions) fontCache() *FontCache {
	if o.FontCache != nil {
		return o.FontCache
	}
	return NewFontCache(o.FontDirs...)
}

// Canvas is a drawing surface. Coordinates are pixels with y growing down.
type Canvas interface {
	Size() (width, height int)
	Fill(c Color)
	Line(a, b geom.Coord, c Color, width float64)
	Circle(center geom.Coord, radius float64, c Color, width float64)
	// Polygon fills the closed path pts with fill, then strokes it with stroke.
	Polygon(pts []geom.Coord, fill, stroke Color, width float64)
	Text(t TextItem)
}

// Plan computes the geometry and layout of a chart without drawing it.
func Plan(in ChartInput, opts *RenderOptions) (*Figure, error) {
	opts = opts.withDefaults()
	g := in.Geometry()
	if opts.RejectDegenerate && g.Scale().Degenerate() {
		return nil, &DegenerateScaleError{RMax: g.RMax}
	}
	lo := LayoutOptions{
		Width:  opts.Width,
		Height: opts.Height,
		DPI:    opts.DPI,
		Style:  opts.Style,
	}
	if opts.Orientation != nil {
		lo.Orientation = *opts.Orientation
	}
	return NewLayout(in, g, lo), nil
}

// Render lays out in for the canvas size and draws it onto c. Nothing is drawn
// when it returns an error.
func Render(in ChartInput, c Canvas, opts *RenderOptions) (*Figure, error) {
	o := opts.withDefaults()
	o.Width, o.Height = c.Size()
	fig, err := Plan(in, o)
	if err != nil {
		return nil, err
	}
	DrawFigure(fig, c)
	return fig, nil
}

// DrawFigure draws gridlines, spokes, the data polygon, labels and title.
func DrawFigure(fig *Figure, c Canvas) {
	s := fig.Style
	c.Fill(s.Background)

	for _, ring := range fig.Rings {
		c.Circle(fig.Center, ring.Radius, s.GridColor, 1)
	}
	for _, sp := range fig.Spokes {
		c.Line(sp.A, sp.B, s.GridColor, 1)
	}
	for _, t := range fig.Ticks {
		c.Text(t)
	}

	c.Polygon(fig.Polygon[:], s.Fill.WithOpacity(s.Alpha()), s.Stroke, s.LineWidth)

	for _, l := range fig.Labels {
		if l.Text != "" {
			c.Text(l.TextItem)
		}
	}
	if fig.Title.Text != "" {
		c.Text(fig.Title)
	}
}

// nrgba converts c for the image/color based canvases.
func nrgba(c Color) color.Color {
	return c.RGBA()
}
