package radar

// Point/pixel conversion helpers. Font sizes are given in points; the chart
// canvas is measured in pixels at a configurable DPI.

const (
	pointsPerInch = 72
	// defaultDPI matches the screen resolution the default canvas is sized for.
	defaultDPI = 96
)

// PointToPixel converts a size in points to pixels at dpi.
// A non-positive dpi falls back to 96.
func PointToPixel(pt, dpi float64) float64 {
	if dpi <= 0 {
		dpi = defaultDPI
	}
	return pt * dpi / pointsPerInch
}

// PixelToPoint converts a size in pixels at dpi to points.
func PixelToPoint(px, dpi float64) float64 {
	if dpi <= 0 {
		dpi = defaultDPI
	}
	return px * pointsPerInch / dpi
}

// fontPixels returns the pixel size of f at dpi, defaulting to 10pt.
func fontPixels(f *Font, dpi float64) float64 {
	size := 10.0
	if f != nil && f.Size > 0 {
		size = float64(f.Size)
	}
	return PointToPixel(size, dpi)
}
