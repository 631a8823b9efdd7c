package radar

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const testCSV = `category,value,title
Speed,8,Player One
Power,6.5,
Stamina,7,
Skill,9,
Luck,3,
Defense,5,
`

var testValues = [AxisCount]float64{8, 6.5, 7, 9, 3, 5}

// buildXLSX writes rows to the first sheet of a new workbook.
func buildXLSX(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}
	return buf.Bytes()
}

func checkInput(t *testing.T, in ChartInput, title string) {
	t.Helper()
	if in.Title != title {
		t.Errorf("expected title %q, got %q", title, in.Title)
	}
	if in.Categories[0] != "Speed" || in.Categories[5] != "Defense" {
		t.Errorf("unexpected categories %v", in.Categories)
	}
	if in.Values != testValues {
		t.Errorf("expected values %v, got %v", testValues, in.Values)
	}
}

func TestCSVReader(t *testing.T) {
	r, err := NewReader(ReaderCSV)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	in, err := r.ReadFrom(strings.NewReader(testCSV))
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	checkInput(t, in, "Player One")
}

func TestCSVReader_NoTitleColumn(t *testing.T) {
	data := "category,value\nA,1\nB,2\nC,3\nD,4\nE,5\nF,6\n"
	in, err := (&CSVReader{}).ReadFrom(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if in.Title != "" || in.Values[5] != 6 {
		t.Errorf("unexpected input %+v", in)
	}
}

func TestCSVReader_WrongRowCount(t *testing.T) {
	data := "category,value\nA,1\nB,2\nC,3\nD,4\nE,5\n"
	_, err := (&CSVReader{}).ReadFrom(strings.NewReader(data))
	if !IsInvalidInput(err) {
		t.Errorf("expected InvalidInputError, got %v", err)
	}
}

func TestCSVReader_BadValue(t *testing.T) {
	data := strings.Replace(testCSV, "Luck,3", "Luck,lots", 1)
	_, err := (&CSVReader{}).ReadFrom(strings.NewReader(data))
	if !errors.Is(err, ErrIncompleteInput) {
		t.Errorf("expected ErrIncompleteInput, got %v", err)
	}
}

func TestXLSXReader_Header(t *testing.T) {
	data := buildXLSX(t, [][]any{
		{"Title", "Category", "Value"},
		{"Player One", "Speed", 8},
		{"", "Power", 6.5},
		{"", "Stamina", 7},
		{"", "Skill", 9},
		{"", "Luck", 3},
		{"", "Defense", 5},
	})
	in, err := (&XLSXReader{}).ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	checkInput(t, in, "Player One")
}

func TestXLSXReader_NoHeader(t *testing.T) {
	data := buildXLSX(t, [][]any{
		{"Speed", 8, "Player One"},
		{"Power", 6.5},
		{"Stamina", 7},
		{"Skill", 9},
		{"Luck", 3},
		{"Defense", 5},
	})
	in, err := (&XLSXReader{}).ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	checkInput(t, in, "Player One")
}

func TestXLSXReader_MissingSheet(t *testing.T) {
	data := buildXLSX(t, [][]any{{"Speed", 8}})
	_, err := (&XLSXReader{Sheet: "nope"}).ReadFrom(bytes.NewReader(data))
	if err == nil {
		t.Error("expected error for missing sheet")
	}
}

func TestDetectReaderType(t *testing.T) {
	xlsx := buildXLSX(t, [][]any{{"Speed", 8}})
	if got := DetectReaderType(xlsx); got != ReaderXLSX {
		t.Errorf("xlsx detected as %s", got)
	}
	if got := DetectReaderType([]byte(testCSV)); got != ReaderCSV {
		t.Errorf("csv detected as %s", got)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "input.csv")
	if err := os.WriteFile(csvPath, []byte(testCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	noExt := filepath.Join(dir, "input")
	xlsx := buildXLSX(t, [][]any{
		{"category", "value", "title"},
		{"Speed", 8, "Player One"},
		{"Power", 6.5},
		{"Stamina", 7},
		{"Skill", 9},
		{"Luck", 3},
		{"Defense", 5},
	})
	if err := os.WriteFile(noExt, xlsx, 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{csvPath, noExt} {
		in, err := Open(path)
		if err != nil {
			t.Fatalf("Open(%s): %v", path, err)
		}
		checkInput(t, in, "Player One")
	}

	if _, err := Open(filepath.Join(dir, "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewReader_Unsupported(t *testing.T) {
	if _, err := NewReader("ods"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
