package radar

import (
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// RawInput is an unparsed chart record as a form or file supplies it.
type RawInput struct {
	Title      string
	Categories [AxisCount]string
	Values     [AxisCount]string
}

// NewRawInput builds a RawInput from slices, failing with an
// *InvalidInputError unless both hold exactly AxisCount entries.
func NewRawInput(title string, categories, values []string) (RawInput, error) {
	var raw RawInput
	if len(categories) != AxisCount {
		return raw, newShapeMismatch("categories", len(categories))
	}
	if len(values) != AxisCount {
		return raw, newShapeMismatch("values", len(values))
	}
	raw.Title = title
	copy(raw.Categories[:], categories)
	copy(raw.Values[:], values)
	return raw, nil
}

// Parse validates the record and converts it into a ChartInput. Every field
// problem is reported as ErrIncompleteInput, wrapped with the field at fault.
func (r RawInput) Parse() (ChartInput, error) {
	var cats [AxisCount]string
	var vals [AxisCount]float64
	for i := range r.Values {
		cats[i] = strings.TrimSpace(r.Categories[i])
		s := strings.TrimSpace(r.Values[i])
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return ChartInput{}, errors.Wrapf(ErrIncompleteInput, "value %d (%q)", i+1, s)
		}
		vals[i] = v
	}
	in, err := NewChartInput(cats[:], vals[:], strings.TrimSpace(r.Title))
	if err != nil {
		return ChartInput{}, err
	}
	if err := in.Validate(); err != nil {
		return ChartInput{}, errors.Wrap(ErrIncompleteInput, err.Error())
	}
	return in, nil
}

// Reader is the interface for chart input readers.
type Reader interface {
	Read(path string) (ChartInput, error)
	ReadFrom(r io.Reader) (ChartInput, error)
}

// ReaderType represents the input format.
type ReaderType string

const (
	ReaderCSV  ReaderType = "csv"
	ReaderXLSX ReaderType = "xlsx"
)

// NewReader creates a reader for the given format.
func NewReader(format ReaderType) (Reader, error) {
	switch format {
	case ReaderCSV:
		return &CSVReader{}, nil
	case ReaderXLSX:
		return &XLSXReader{}, nil
	default:
		return nil, errors.Errorf("unsupported reader format: %s", format)
	}
}

// maxInputSize bounds how much of an input file is read into memory.
const maxInputSize = 10 << 20 // 10 MB

// inputRow is one category of an input table. The title column is optional;
// the first non-empty title wins.
type inputRow struct {
	Category string `csv:"category"`
	Value    string `csv:"value"`
	Title    string `csv:"title"`
}

func rawFromRows(rows []inputRow) (ChartInput, error) {
	var cats, vals []string
	title := ""
	for _, row := range rows {
		if title == "" {
			title = strings.TrimSpace(row.Title)
		}
		if strings.TrimSpace(row.Category) == "" && strings.TrimSpace(row.Value) == "" {
			continue
		}
		cats = append(cats, row.Category)
		vals = append(vals, row.Value)
	}
	raw, err := NewRawInput(title, cats, vals)
	if err != nil {
		return ChartInput{}, err
	}
	return raw.Parse()
}

func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	return f, nil
}

// CSVReader reads a table with a "category,value[,title]" header.
type CSVReader struct{}

// Read reads chart input from a CSV file.
func (r *CSVReader) Read(path string) (ChartInput, error) {
	f, err := openInput(path)
	if err != nil {
		return ChartInput{}, err
	}
	defer f.Close()
	return r.ReadFrom(f)
}

// ReadFrom reads chart input from CSV data.
func (r *CSVReader) ReadFrom(src io.Reader) (ChartInput, error) {
	var rows []inputRow
	if err := gocsv.Unmarshal(io.LimitReader(src, maxInputSize), &rows); err != nil {
		return ChartInput{}, errors.Wrap(err, "failed to parse csv")
	}
	return rawFromRows(rows)
}

// XLSXReader reads the same table from a worksheet. Sheet names the sheet to
// read; empty means the first one. A sheet without a recognised header row is
// read as category, value and title in columns A, B and C.
type XLSXReader struct {
	Sheet string
}

// Read reads chart input from an XLSX file.
func (r *XLSXReader) Read(path string) (ChartInput, error) {
	f, err := openInput(path)
	if err != nil {
		return ChartInput{}, err
	}
	defer f.Close()
	return r.ReadFrom(f)
}

// ReadFrom reads chart input from XLSX data.
func (r *XLSXReader) ReadFrom(src io.Reader) (ChartInput, error) {
	wb, err := excelize.OpenReader(io.LimitReader(src, maxInputSize))
	if err != nil {
		return ChartInput{}, errors.Wrap(err, "failed to open xlsx")
	}
	defer wb.Close()

	sheet := r.Sheet
	if sheet == "" {
		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return ChartInput{}, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	cells, err := wb.GetRows(sheet)
	if err != nil {
		return ChartInput{}, errors.Wrapf(err, "failed to read sheet %q", sheet)
	}
	return rawFromRows(rowsFromCells(cells))
}

// rowsFromCells maps spreadsheet rows onto inputRows using the header row
// when there is one.
func rowsFromCells(cells [][]string) []inputRow {
	catCol, valCol, titleCol := 0, 1, 2
	start := 0
	if len(cells) > 0 {
		header := map[string]int{}
		for i, h := range cells[0] {
			header[strings.ToLower(strings.TrimSpace(h))] = i
		}
		c, okC := header["category"]
		v, okV := header["value"]
		if okC && okV {
			catCol, valCol, start = c, v, 1
			titleCol = -1
			if t, ok := header["title"]; ok {
				titleCol = t
			}
		}
	}

	cell := func(row []string, col int) string {
		if col < 0 || col >= len(row) {
			return ""
		}
		return row[col]
	}
	rows := make([]inputRow, 0, len(cells))
	for _, row := range cells[start:] {
		rows = append(rows, inputRow{
			Category: cell(row, catCol),
			Value:    cell(row, valCol),
			Title:    cell(row, titleCol),
		})
	}
	return rows
}
