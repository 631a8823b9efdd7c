// Command hexradar renders a six-axis radar chart from the command line.
package main

import (
	"flag"
	"fmt"
	"os"

	radar "github.com/VantageDataChat/GoRadar"
	"github.com/VantageDataChat/GoRadar/internal/cli"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	defer glog.Flush()

	var (
		flags      cli.ChartFlags
		outputPath string
	)

	rootCmd := &cobra.Command{
		Use:           "hexradar",
		Short:         "Render six-axis radar charts",
		Version:       radar.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart to a PNG, JPEG or SVG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, &flags, outputPath)
		},
	}
	flags.Register(renderCmd.Flags())
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "radar.png", "Output file (.png, .jpg or .svg)")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Show a chart in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, &flags)
		},
	}
	flags.Register(viewCmd.Flags())

	rootCmd.AddCommand(renderCmd, viewCmd)

	if err := rootCmd.Execute(); err != nil {
		glog.Errorf("hexradar: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		glog.Flush()
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, flags *cli.ChartFlags, outputPath string) error {
	in, err := flags.Input(cmd.Flags())
	if err != nil {
		return err
	}
	opts, err := flags.Options()
	if err != nil {
		return err
	}
	format, ok := radar.FormatFromPath(outputPath)
	if !ok {
		return errors.Errorf("unsupported output format: %s (use .png, .jpg or .svg)", outputPath)
	}
	opts.Format = format

	if err := radar.SaveChart(outputPath, in, opts); err != nil {
		return errors.Wrap(err, "render failed")
	}
	glog.Infof("rendered %q (%dx%d) to %s", in.Title, opts.Width, opts.Height, outputPath)
	fmt.Printf("Rendered chart to %s\n", outputPath)
	return nil
}
