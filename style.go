package radar

import (
	"image/color"
	"math"
	"strings"
)

// Color represents an ARGB color.
type Color struct {
	ARGB string // 8-character hex string, e.g., "FF000000" for black
}

// Predefined colors.
var (
	ColorBlack = Color{ARGB: "FF000000"}
	ColorWhite = Color{ARGB: "FFFFFFFF"}
	ColorBlue  = Color{ARGB: "FF0000FF"}
	ColorGray  = Color{ARGB: "FFB0B0B0"}
)

// NewColor creates a new Color from an ARGB hex string.
// Accepts 6-char RGB (e.g. "FF0000") or 8-char ARGB (e.g. "FFFF0000").
// A leading "#" is stripped automatically.
func NewColor(argb string) Color {
	argb = strings.TrimPrefix(argb, "#")
	if len(argb) == 6 {
		argb = "FF" + argb
	}
	argb = strings.ToUpper(argb)
	if !isValidARGB(argb) {
		return Color{ARGB: "FF000000"} // fallback to black
	}
	return Color{ARGB: argb}
}

// isValidARGB checks that s is exactly 8 hex characters.
func isValidARGB(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// GetRed returns the red component (0-255).
func (c Color) GetRed() uint8 { return parseHexByte(c.ARGB, 2) }

// GetGreen returns the green component (0-255).
func (c Color) GetGreen() uint8 { return parseHexByte(c.ARGB, 4) }

// GetBlue returns the blue component (0-255).
func (c Color) GetBlue() uint8 { return parseHexByte(c.ARGB, 6) }

// GetAlpha returns the alpha component (0-255).
func (c Color) GetAlpha() uint8 { return parseHexByte(c.ARGB, 0) }

// Hex returns the color as "#RRGGBB", ignoring alpha.
func (c Color) Hex() string {
	if len(c.ARGB) != 8 {
		return "#000000"
	}
	return "#" + c.ARGB[2:]
}

// WithOpacity returns c with its alpha replaced by opacity in [0, 1].
func (c Color) WithOpacity(opacity float64) Color {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	a := uint8(math.Round(opacity * 255))
	const digits = "0123456789ABCDEF"
	rgb := "000000"
	if len(c.ARGB) == 8 {
		rgb = c.ARGB[2:]
	}
	return Color{ARGB: string([]byte{digits[a>>4], digits[a&0x0F]}) + rgb}
}

// RGBA converts c to a non-premultiplied color.NRGBA.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{R: c.GetRed(), G: c.GetGreen(), B: c.GetBlue(), A: c.GetAlpha()}
}

// parseHexByte parses two hex characters at offset into a uint8.
// Returns 0 on any error (out of range, invalid chars).
func parseHexByte(s string, offset int) uint8 {
	if offset+2 > len(s) {
		return 0
	}
	h := hexVal(s[offset])
	l := hexVal(s[offset+1])
	if h < 0 || l < 0 {
		return 0
	}
	return uint8(h<<4 | l)
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// Font represents text font properties.
type Font struct {
	Name  string
	Size  int // in points
	Bold  bool
	Color Color
}

// NewFont creates a new Font with defaults.
func NewFont() *Font {
	return &Font{
		Name:  "SimHei",
		Size:  11,
		Color: ColorBlack,
	}
}

// SetBold sets the bold property and returns the font for chaining.
func (f *Font) SetBold(bold bool) *Font {
	f.Bold = bold
	return f
}

// SetSize sets the font size in points (clamped to 1–400).
func (f *Font) SetSize(size int) *Font {
	if size < 1 {
		size = 1
	}
	if size > 400 {
		size = 400
	}
	f.Size = size
	return f
}

// SetColor sets the font color.
func (f *Font) SetColor(color Color) *Font {
	f.Color = color
	return f
}

// SetName sets the font name.
func (f *Font) SetName(name string) *Font {
	f.Name = name
	return f
}

// HorizontalAlignment represents horizontal text alignment relative to the
// anchor point: left puts the anchor at the start of the text.
type HorizontalAlignment string

const (
	HorizontalLeft   HorizontalAlignment = "left"
	HorizontalCenter HorizontalAlignment = "center"
	HorizontalRight  HorizontalAlignment = "right"
)

// VerticalAlignment places text above, across or below its anchor point.
type VerticalAlignment string

const (
	VerticalTop    VerticalAlignment = "top"    // anchor at the top of the text
	VerticalMiddle VerticalAlignment = "middle" // anchor at the vertical centre
	VerticalBottom VerticalAlignment = "bottom" // anchor at the bottom of the text
)

// Style holds the chart's visual parameters. The data polygon uses a single
// color: Stroke for the outline, Fill at FillAlpha for the interior.
// Zero colors, a nil font and nil FillAlpha or GridRings take the
// DefaultStyle value.
type Style struct {
	Background Color
	Stroke     Color
	Fill       Color
	// FillAlpha is the polygon fill opacity in [0, 1].
	FillAlpha *float64
	LineWidth float64
	GridColor Color
	// GridRings is the number of concentric gridlines; 0 disables them.
	GridRings *int
	LabelFont *Font
	TickFont  *Font
	TitleFont *Font
}

const (
	defaultFillAlpha = 0.25
	defaultGridRings = 4
)

// DefaultStyle returns a blue polygon with a quarter-opacity fill.
func DefaultStyle() *Style {
	s := &Style{
		Background: ColorWhite,
		Stroke:     ColorBlue,
		Fill:       ColorBlue,
		LineWidth:  2,
		GridColor:  ColorGray,
		LabelFont:  NewFont().SetSize(12),
		TickFont:   NewFont().SetSize(9).SetColor(NewColor("555555")),
		TitleFont:  NewFont().SetSize(16).SetBold(true),
	}
	return s.SetFillAlpha(defaultFillAlpha).SetGridRings(defaultGridRings)
}

// SetFillAlpha sets the fill opacity, clamped to [0, 1].
func (s *Style) SetFillAlpha(alpha float64) *Style {
	alpha = math.Max(0, math.Min(1, alpha))
	s.FillAlpha = &alpha
	return s
}

// SetGridRings sets the number of gridlines. Negative counts disable them.
func (s *Style) SetGridRings(n int) *Style {
	if n < 0 {
		n = 0
	}
	s.GridRings = &n
	return s
}

// Alpha returns the fill opacity, or the default when unset.
func (s *Style) Alpha() float64 {
	if s == nil || s.FillAlpha == nil {
		return defaultFillAlpha
	}
	return *s.FillAlpha
}

// Rings returns the gridline count, or the default when unset.
func (s *Style) Rings() int {
	if s == nil || s.GridRings == nil {
		return defaultGridRings
	}
	return *s.GridRings
}

// withDefaults returns a copy of s with unset fields taken from DefaultStyle.
// The copy owns its FillAlpha and GridRings values.
func (s *Style) withDefaults() *Style {
	d := DefaultStyle()
	if s == nil {
		return d
	}
	out := *s
	if out.Background.ARGB == "" {
		out.Background = d.Background
	}
	if out.Stroke.ARGB == "" {
		out.Stroke = d.Stroke
	}
	if out.Fill.ARGB == "" {
		out.Fill = out.Stroke
	}
	out.SetFillAlpha(s.Alpha())
	if out.LineWidth <= 0 {
		out.LineWidth = d.LineWidth
	}
	if out.GridColor.ARGB == "" {
		out.GridColor = d.GridColor
	}
	out.SetGridRings(s.Rings())
	if out.LabelFont == nil {
		out.LabelFont = d.LabelFont
	}
	if out.TickFont == nil {
		out.TickFont = d.TickFont
	}
	if out.TitleFont == nil {
		out.TitleFont = d.TitleFont
	}
	return &out
}
