package radar

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ChartToImage renders the chart to an image.
func ChartToImage(in ChartInput, opts *RenderOptions) (image.Image, error) {
	opts = opts.withDefaults()
	c := NewRasterCanvas(opts.Width, opts.Height, opts.fontCache())
	if _, err := Render(in, c, opts); err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// encodeChart renders and encodes the chart into memory, so a failure never
// reaches the destination writer half-done.
func encodeChart(in ChartInput, opts *RenderOptions) ([]byte, error) {
	opts = opts.withDefaults()
	var buf bytes.Buffer

	if opts.Format == ImageFormatSVG {
		c := NewSVGCanvas(&buf, opts.Width, opts.Height)
		if _, err := Render(in, c, opts); err != nil {
			return nil, err
		}
		if err := c.Close(); err != nil {
			return nil, errors.Wrap(err, "finish svg")
		}
		return buf.Bytes(), nil
	}

	img, err := ChartToImage(in, opts)
	if err != nil {
		return nil, err
	}
	switch opts.Format {
	case ImageFormatJPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: opts.JPEGQuality})
	default:
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return nil, errors.Wrap(err, "encode image")
	}
	return buf.Bytes(), nil
}

// WriteChart renders the chart in opts.Format and writes it to w.
func WriteChart(w io.Writer, in ChartInput, opts *RenderOptions) error {
	data, err := encodeChart(in, opts)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "write chart")
	}
	return nil
}

// SaveChart renders the chart and saves it to path. The file is created only
// after rendering succeeded and is removed again if writing fails.
func SaveChart(path string, in ChartInput, opts *RenderOptions) error {
	data, err := encodeChart(in, opts)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create directory")
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(err, "create file")
	}

	_, writeErr := f.Write(data)
	closeErr := f.Close()
	if writeErr != nil || closeErr != nil {
		os.Remove(path)
		if writeErr != nil {
			return errors.Wrap(writeErr, "write file")
		}
		return errors.Wrap(closeErr, "close file")
	}
	return nil
}

// FormatFromPath picks the output format from a file extension. Unknown
// extensions report ok == false.
func FormatFromPath(path string) (ImageFormat, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return ImageFormatPNG, true
	case ".jpg", ".jpeg":
		return ImageFormatJPEG, true
	case ".svg":
		return ImageFormatSVG, true
	}
	return ImageFormatPNG, false
}
