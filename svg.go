package radar

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/jbeda/geom"
)

// SVGCanvas writes the chart as an SVG document. Call Close to finish the
// document after drawing.
type SVGCanvas struct {
	svg           *svg.SVG
	width, height int
	closed        bool
}

// NewSVGCanvas starts an SVG document of the given size on w.
func NewSVGCanvas(w io.Writer, width, height int) *SVGCanvas {
	s := &SVGCanvas{svg: svg.New(w), width: width, height: height}
	s.svg.Start(width, height)
	return s
}

// Close ends the SVG document. It is safe to call more than once.
func (s *SVGCanvas) Close() error {
	if !s.closed {
		s.svg.End()
		s.closed = true
	}
	return nil
}

func (s *SVGCanvas) Size() (int, int) { return s.width, s.height }

func (s *SVGCanvas) Fill(c Color) {
	s.svg.Rect(0, 0, s.width, s.height, "fill:"+c.Hex()+opacityStyle("fill-opacity", c))
}

func (s *SVGCanvas) Line(a, b geom.Coord, c Color, width float64) {
	s.svg.Line(px(a.X), px(a.Y), px(b.X), px(b.Y), strokeStyle(c, width))
}

func (s *SVGCanvas) Circle(center geom.Coord, radius float64, c Color, width float64) {
	if radius <= 0 {
		return
	}
	s.svg.Circle(px(center.X), px(center.Y), px(radius), "fill:none;"+strokeStyle(c, width))
}

func (s *SVGCanvas) Polygon(pts []geom.Coord, fill, stroke Color, width float64) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = px(p.X), px(p.Y)
	}
	style := "fill:" + fill.Hex() + opacityStyle("fill-opacity", fill) + ";" + strokeStyle(stroke, width)
	s.svg.Polygon(xs, ys, style)
}

func (s *SVGCanvas) Text(t TextItem) {
	style := []string{
		"text-anchor:" + svgAnchor(t.Align),
		"dominant-baseline:" + svgBaseline(t.VAlign),
		fmt.Sprintf("font-size:%gpx", math.Round(t.SizePx*100)/100),
	}
	if t.Font != nil {
		if t.Font.Name != "" {
			style = append(style, "font-family:"+cssFamily(t.Font.Name)+",sans-serif")
		}
		if t.Font.Bold {
			style = append(style, "font-weight:bold")
		}
		if t.Font.Color.ARGB != "" {
			style = append(style, "fill:"+t.Font.Color.Hex())
		}
	}
	s.svg.Text(px(t.Anchor.X), px(t.Anchor.Y), t.Text, xmlEscape(strings.Join(style, ";")))
}

// cssFamily drops the characters that would end a font-family value or the
// style declaration it sits in.
func cssFamily(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '"', '\'', '\\', ';', '<', '>':
			return -1
		}
		return r
	}, name)
}

// xmlEscape escapes s for use inside an XML attribute; svgo writes style
// strings verbatim.
func xmlEscape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}

func px(v float64) int {
	return int(math.Round(v))
}

func strokeStyle(c Color, width float64) string {
	return fmt.Sprintf("stroke:%s;stroke-width:%g", c.Hex(), width) + opacityStyle("stroke-opacity", c)
}

// opacityStyle returns ";prop:alpha" for translucent colors and "" otherwise.
func opacityStyle(prop string, c Color) string {
	a := c.GetAlpha()
	if a == 0xFF {
		return ""
	}
	return fmt.Sprintf(";%s:%.2f", prop, float64(a)/255)
}

func svgAnchor(a HorizontalAlignment) string {
	switch a {
	case HorizontalCenter:
		return "middle"
	case HorizontalRight:
		return "end"
	default:
		return "start"
	}
}

func svgBaseline(v VerticalAlignment) string {
	switch v {
	case VerticalTop:
		return "text-before-edge"
	case VerticalMiddle:
		return "central"
	default:
		return "text-after-edge"
	}
}
