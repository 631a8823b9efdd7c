package radar

import (
	"bytes"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveChart_Formats(t *testing.T) {
	in := testInput(t, []float64{4, 8, 15, 16, 23, 42}, "Numbers")
	dir := t.TempDir()

	for _, name := range []string{"chart.png", "chart.jpg", "nested/dir/chart.svg"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			format, ok := FormatFromPath(path)
			if !ok {
				t.Fatalf("FormatFromPath(%q) not recognised", path)
			}
			opts := embeddedOptions()
			opts.Format = format
			opts.Width, opts.Height = 400, 400
			if err := SaveChart(path, in, opts); err != nil {
				t.Fatalf("SaveChart: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read back: %v", err)
			}
			switch format {
			case ImageFormatPNG:
				img, err := png.Decode(bytes.NewReader(data))
				if err != nil {
					t.Fatalf("png decode: %v", err)
				}
				if img.Bounds().Dx() != 400 {
					t.Errorf("expected width 400, got %d", img.Bounds().Dx())
				}
			case ImageFormatJPEG:
				if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
					t.Fatalf("jpeg decode: %v", err)
				}
			case ImageFormatSVG:
				if !strings.Contains(string(data), "<svg") || !strings.HasSuffix(strings.TrimSpace(string(data)), "</svg>") {
					t.Errorf("incomplete svg document")
				}
			}
		})
	}
}

func TestSaveChart_NoFileOnFailure(t *testing.T) {
	in := testInput(t, []float64{0, 0, 0, 0, 0, 0}, "")
	path := filepath.Join(t.TempDir(), "zero.png")
	opts := embeddedOptions()
	opts.RejectDegenerate = true

	err := SaveChart(path, in, opts)
	if !IsDegenerateScale(err) {
		t.Fatalf("expected DegenerateScaleError, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no file after failed render, stat: %v", err)
	}
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, os.ErrClosed
}

func TestWriteChart_NoWritesOnFailure(t *testing.T) {
	in := testInput(t, []float64{0, 0, 0, 0, 0, 0}, "")
	w := &failingWriter{}
	opts := embeddedOptions()
	opts.RejectDegenerate = true
	if err := WriteChart(w, in, opts); err == nil {
		t.Fatal("expected error")
	}
	if w.n != 0 {
		t.Errorf("expected no writes, got %d", w.n)
	}
}

func TestWriteChart_WriterError(t *testing.T) {
	in := testInput(t, []float64{1, 2, 3, 4, 5, 6}, "")
	opts := embeddedOptions()
	opts.Format = ImageFormatSVG
	if err := WriteChart(&failingWriter{}, in, opts); err == nil {
		t.Error("expected writer error to be reported")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want ImageFormat
		ok   bool
	}{
		{"a.png", ImageFormatPNG, true},
		{"a.JPG", ImageFormatJPEG, true},
		{"a.jpeg", ImageFormatJPEG, true},
		{"a.svg", ImageFormatSVG, true},
		{"a.gif", ImageFormatPNG, false},
		{"noext", ImageFormatPNG, false},
	}
	for _, tt := range tests {
		got, ok := FormatFromPath(tt.path)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FormatFromPath(%q) = %v, %v; want %v, %v", tt.path, got, ok, tt.want, tt.ok)
		}
	}
}
