package radar

import (
	"image"
	"image/draw"

	"github.com/jbeda/geom"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RasterCanvas draws onto an in-memory RGBA image. Shapes are antialiased
// by draw2d; text is drawn with x/image/font faces from a FontCache.
type RasterCanvas struct {
	img   *image.RGBA
	gc    *draw2dimg.GraphicContext
	fonts *FontCache
}

// NewRasterCanvas creates a width x height canvas. A nil fonts uses the
// embedded fallback face only.
func NewRasterCanvas(width, height int, fonts *FontCache) *RasterCanvas {
	if fonts == nil {
		fonts = NewEmbeddedFontCache()
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &RasterCanvas{
		img:   img,
		gc:    draw2dimg.NewGraphicContext(img),
		fonts: fonts,
	}
}

// Image returns the canvas' backing image.
func (r *RasterCanvas) Image() *image.RGBA { return r.img }

func (r *RasterCanvas) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *RasterCanvas) Fill(c Color) {
	draw.Draw(r.img, r.img.Bounds(), &image.Uniform{C: nrgba(c)}, image.Point{}, draw.Src)
}

func (r *RasterCanvas) Line(a, b geom.Coord, c Color, width float64) {
	r.gc.SetStrokeColor(nrgba(c))
	r.gc.SetLineWidth(width)
	r.gc.BeginPath()
	r.gc.MoveTo(a.X, a.Y)
	r.gc.LineTo(b.X, b.Y)
	r.gc.Stroke()
}

func (r *RasterCanvas) Circle(center geom.Coord, radius float64, c Color, width float64) {
	if radius <= 0 {
		return
	}
	r.gc.SetStrokeColor(nrgba(c))
	r.gc.SetLineWidth(width)
	r.gc.BeginPath()
	draw2dkit.Circle(r.gc, center.X, center.Y, radius)
	r.gc.Stroke()
}

func (r *RasterCanvas) Polygon(pts []geom.Coord, fill, stroke Color, width float64) {
	if len(pts) == 0 {
		return
	}
	r.gc.SetFillColor(nrgba(fill))
	r.gc.SetStrokeColor(nrgba(stroke))
	r.gc.SetLineWidth(width)
	r.gc.BeginPath()
	r.gc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		r.gc.LineTo(p.X, p.Y)
	}
	r.gc.Close()
	r.gc.FillStroke()
}

func (r *RasterCanvas) Text(t TextItem) {
	face := r.face(t.Font, t.SizePx)
	w := font.MeasureString(face, t.Text).Ceil()
	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()

	x := int(t.Anchor.X + 0.5)
	switch t.Align {
	case HorizontalCenter:
		x -= w / 2
	case HorizontalRight:
		x -= w
	}
	y := int(t.Anchor.Y + 0.5)
	switch t.VAlign {
	case VerticalTop:
		y += ascent
	case VerticalMiddle:
		y += (ascent - descent) / 2
	default:
		y -= descent
	}

	col := ColorBlack
	if t.Font != nil && t.Font.Color.ARGB != "" {
		col = t.Font.Color
	}
	d := &font.Drawer{
		Dst:  r.img,
		Src:  &image.Uniform{C: nrgba(col)},
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(t.Text)
}

// face resolves f at sizePx, trying the named font, common CJK-capable
// fallbacks, the embedded Go font and finally basicfont.
func (r *RasterCanvas) face(f *Font, sizePx float64) font.Face {
	if sizePx <= 0 {
		sizePx = 13
	}
	name, bold := "", false
	if f != nil {
		name, bold = f.Name, f.Bold
	}
	candidates := append([]string{name}, fallbackFontNames...)
	for _, n := range candidates {
		if n == "" {
			continue
		}
		if face := r.fonts.GetFace(n, sizePx, bold); face != nil {
			return face
		}
	}
	if face := r.fonts.FallbackFace(sizePx); face != nil {
		return face
	}
	return basicfont.Face7x13
}

// fallbackFontNames are tried, in order, when the requested font is missing.
var fallbackFontNames = []string{"simhei", "microsoft yahei", "noto sans cjk sc", "arial", "dejavu sans", "liberation sans"}
