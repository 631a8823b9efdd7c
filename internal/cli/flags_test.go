package cli

import (
	"os"
	"path/filepath"
	"testing"

	radar "github.com/VantageDataChat/GoRadar"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

var sixCategories = []string{
	"--category", "A", "--category", "B", "--category", "C",
	"--category", "D", "--category", "E", "--category", "F",
}

func parse(t *testing.T, args ...string) (*ChartFlags, *pflag.FlagSet) {
	t.Helper()
	var f ChartFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return &f, fs
}

func values(vs ...string) []string {
	var args []string
	for _, v := range vs {
		args = append(args, "--value", v)
	}
	return args
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantW     int
		wantH     int
		wantColor string
		wantAlpha float64
		wantFont  string
	}{
		{"defaults", nil, 800, 800, "FF0000FF", 0.25, "SimHei"},
		{"size", []string{"--width", "640", "--height", "480"}, 640, 480, "FF0000FF", 0.25, "SimHei"},
		{"color and font", []string{"--color", "#FF8800", "--font", "DejaVu Sans"}, 800, 800, "FFFF8800", 0.25, "DejaVu Sans"},
		{"zero alpha", []string{"--alpha", "0"}, 800, 800, "FF0000FF", 0, "SimHei"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := parse(t, tt.args...)
			opts, err := f.Options()
			if err != nil {
				t.Fatalf("Options: %v", err)
			}
			if opts.Width != tt.wantW || opts.Height != tt.wantH {
				t.Errorf("expected %dx%d, got %dx%d", tt.wantW, tt.wantH, opts.Width, opts.Height)
			}
			if opts.Style.Stroke.ARGB != tt.wantColor || opts.Style.Fill.ARGB != tt.wantColor {
				t.Errorf("expected color %s, got stroke %s fill %s", tt.wantColor, opts.Style.Stroke.ARGB, opts.Style.Fill.ARGB)
			}
			if opts.Style.Alpha() != tt.wantAlpha {
				t.Errorf("expected alpha %v, got %v", tt.wantAlpha, opts.Style.Alpha())
			}
			for _, font := range []*radar.Font{opts.Style.LabelFont, opts.Style.TickFont, opts.Style.TitleFont} {
				if font.Name != tt.wantFont {
					t.Errorf("expected font %q, got %q", tt.wantFont, font.Name)
				}
			}
		})
	}
}

func TestOptions_AlphaRange(t *testing.T) {
	for _, alpha := range []string{"-0.1", "1.5"} {
		f, _ := parse(t, "--alpha", alpha)
		if _, err := f.Options(); err == nil {
			t.Errorf("expected error for --alpha %s", alpha)
		}
	}
}

func TestOptions_RejectDegenerate(t *testing.T) {
	f, _ := parse(t, "--reject-degenerate", "--font-dir", "/a,/b")
	opts, err := f.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if !opts.RejectDegenerate {
		t.Error("expected RejectDegenerate")
	}
	if len(opts.FontDirs) != 2 || opts.FontDirs[1] != "/b" {
		t.Errorf("unexpected font dirs %v", opts.FontDirs)
	}
}

func TestInput_FromFlags(t *testing.T) {
	args := append([]string{"--title", "Flags"}, sixCategories...)
	args = append(args, values("1", "2", "3", "4", "5", "6.5")...)
	f, fs := parse(t, args...)
	in, err := f.Input(fs)
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if in.Title != "Flags" || in.Categories[2] != "C" || in.Values[5] != 6.5 {
		t.Errorf("unexpected input %+v", in)
	}
}

func TestInput_IncompleteCollapses(t *testing.T) {
	tests := []struct {
		name string
		vals []string
	}{
		{"not a number", []string{"1", "2", "x", "4", "5", "6"}},
		{"empty value", []string{"1", "2", "", "4", "5", "6"}},
		{"infinite", []string{"1", "2", "3", "Inf", "5", "6"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, fs := parse(t, append(sixCategories, values(tt.vals...)...)...)
			_, err := f.Input(fs)
			if err != radar.ErrIncompleteInput {
				t.Errorf("expected bare ErrIncompleteInput, got %v", err)
			}
		})
	}
}

func TestInput_WrongCount(t *testing.T) {
	f, fs := parse(t, append(sixCategories, values("1", "2", "3")...)...)
	_, err := f.Input(fs)
	if !radar.IsInvalidInput(err) {
		t.Errorf("expected InvalidInputError, got %v", err)
	}
	if errors.Is(err, radar.ErrIncompleteInput) {
		t.Error("shape errors should not be reported as incomplete input")
	}
}

func TestInput_FileTitleOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	data := "category,value,title\nA,1,From File\nB,2,\nC,3,\nD,4,\nE,5,\nF,6,\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	f, fs := parse(t, "-i", path)
	in, err := f.Input(fs)
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if in.Title != "From File" {
		t.Errorf("expected file title, got %q", in.Title)
	}

	f, fs = parse(t, "-i", path, "--title", "Override")
	in, err = f.Input(fs)
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if in.Title != "Override" {
		t.Errorf("expected overridden title, got %q", in.Title)
	}
}
