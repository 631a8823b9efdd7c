// Package cli maps hexradar's command-line flags onto chart input and
// render options.
package cli

import (
	radar "github.com/VantageDataChat/GoRadar"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// ChartFlags holds the input and style flags shared by render and view.
type ChartFlags struct {
	Title            string
	Categories       []string
	Values           []string
	InputPath        string
	Width            int
	Height           int
	Color            string
	Alpha            float64
	FontName         string
	FontDirs         []string
	RejectDegenerate bool
}

// Register adds the chart flags to fs.
func (f *ChartFlags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.Title, "title", "", "Chart title")
	fs.StringArrayVar(&f.Categories, "category", nil, "Category name (repeat 6 times)")
	fs.StringArrayVar(&f.Values, "value", nil, "Category value (repeat 6 times)")
	fs.StringVarP(&f.InputPath, "input", "i", "", "Read categories and values from a .csv or .xlsx file")
	fs.IntVar(&f.Width, "width", 800, "Output width in pixels")
	fs.IntVar(&f.Height, "height", 800, "Output height in pixels")
	fs.StringVar(&f.Color, "color", "0000FF", "Polygon color as RRGGBB")
	fs.Float64Var(&f.Alpha, "alpha", 0.25, "Polygon fill opacity (0-1)")
	fs.StringVar(&f.FontName, "font", "", "Font family for labels and title")
	fs.StringSliceVar(&f.FontDirs, "font-dir", nil, "Extra directories to search for fonts")
	fs.BoolVar(&f.RejectDegenerate, "reject-degenerate", false, "Fail instead of drawing a chart whose values are all zero")
}

// Input loads the chart input from --input or from the flag values. With
// --input, a --title given on the command line replaces the file's title.
// Field problems are logged in detail and reported as ErrIncompleteInput.
func (f *ChartFlags) Input(fs *pflag.FlagSet) (radar.ChartInput, error) {
	var (
		in  radar.ChartInput
		err error
	)
	if f.InputPath != "" {
		in, err = radar.Open(f.InputPath)
		if err == nil && fs.Changed("title") {
			in.Title = f.Title
		}
	} else {
		var raw radar.RawInput
		raw, err = radar.NewRawInput(f.Title, f.Categories, f.Values)
		if err == nil {
			in, err = raw.Parse()
		}
	}
	if errors.Is(err, radar.ErrIncompleteInput) {
		glog.Errorf("input rejected: %v", err)
		return in, radar.ErrIncompleteInput
	}
	return in, err
}

// Options builds render options from the style flags.
func (f *ChartFlags) Options() (*radar.RenderOptions, error) {
	if f.Alpha < 0 || f.Alpha > 1 {
		return nil, errors.Errorf("alpha must be between 0 and 1, got %g", f.Alpha)
	}
	style := radar.DefaultStyle()
	c := radar.NewColor(f.Color)
	style.Stroke, style.Fill = c, c
	style.SetFillAlpha(f.Alpha)
	if f.FontName != "" {
		for _, font := range []*radar.Font{style.LabelFont, style.TickFont, style.TitleFont} {
			font.SetName(f.FontName)
		}
	}

	opts := radar.DefaultRenderOptions()
	opts.Width = f.Width
	opts.Height = f.Height
	opts.Style = style
	opts.FontDirs = f.FontDirs
	opts.RejectDegenerate = f.RejectDegenerate
	return opts, nil
}
