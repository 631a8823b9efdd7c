package main

import (
	radar "github.com/VantageDataChat/GoRadar"
	"github.com/VantageDataChat/GoRadar/internal/cli"
	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

// chartWindow shows a pre-rendered chart; nothing changes between frames.
type chartWindow struct {
	img *ebiten.Image
}

func (w *chartWindow) Update() error { return nil }

func (w *chartWindow) Draw(screen *ebiten.Image) {
	screen.DrawImage(w.img, nil)
}

func (w *chartWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := w.img.Bounds()
	return b.Dx(), b.Dy()
}

// runView renders the chart fully before the window opens, so a failed
// render never shows a partial chart. It blocks until the window closes.
func runView(cmd *cobra.Command, flags *cli.ChartFlags) error {
	in, err := flags.Input(cmd.Flags())
	if err != nil {
		return err
	}
	opts, err := flags.Options()
	if err != nil {
		return err
	}
	img, err := radar.ChartToImage(in, opts)
	if err != nil {
		return err
	}

	title := in.Title
	if title == "" {
		title = "hexradar"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetTPS(10)
	glog.Infof("showing %q", in.Title)
	return ebiten.RunGame(&chartWindow{img: ebiten.NewImageFromImage(img)})
}
