package radar

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/pkg/errors"
)

// DetectReaderType guesses the input format from the first bytes of a file.
// Zip containers (xlsx) are read as XLSX; everything else as CSV.
func DetectReaderType(head []byte) ReaderType {
	if filetype.Is(head, "xlsx") || filetype.Is(head, "zip") {
		return ReaderXLSX
	}
	return ReaderCSV
}

// Open reads chart input from a CSV or XLSX file. The extension decides the
// format when it is .csv or .xlsx; otherwise the content is sniffed.
func Open(path string) (ChartInput, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return (&CSVReader{}).Read(path)
	case ".xlsx":
		return (&XLSXReader{}).Read(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return ChartInput{}, errors.Wrap(err, "failed to open file")
	}
	defer f.Close()
	return ReadFrom(f)
}

// ReadFrom reads chart input from r, sniffing its format.
func ReadFrom(r io.Reader) (ChartInput, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxInputSize+1))
	if err != nil {
		return ChartInput{}, errors.Wrap(err, "failed to read input")
	}
	if len(data) > maxInputSize {
		return ChartInput{}, errors.Errorf("input exceeds maximum allowed size (%d bytes)", maxInputSize)
	}
	reader, err := NewReader(DetectReaderType(data))
	if err != nil {
		return ChartInput{}, err
	}
	return reader.ReadFrom(bytes.NewReader(data))
}
