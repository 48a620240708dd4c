package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/RichDInfGrp/FimiliarVis/internal/sheet"
)

// Workbook wraps an open xlsx file.
type Workbook struct {
	file *excelize.File
	path string
}

// OpenWorkbook opens an xlsx file for reading.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	return &Workbook{file: f, path: path}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// FirstSheetName returns the name of the first sheet in the workbook.
func (w *Workbook) FirstSheetName() string {
	return w.file.GetSheetName(0)
}

// Sheet reads a named sheet into a Sheet, treating the first row as the
// header. Cells are coerced: numeric strings become float64, empty cells
// become nil, everything else stays a string.
func (w *Workbook) Sheet(name string) (*sheet.Sheet, error) {
	rows, err := w.file.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", name, w.path, err)
	}
	if len(rows) == 0 {
		return sheet.New(nil), nil
	}
	s := sheet.New(rows[0])
	for _, row := range rows[1:] {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = coerceCell(cell)
		}
		s.Rows = append(s.Rows, cells)
	}
	return s, nil
}

// RawRows reads a sheet without header interpretation, skipping the first
// skip rows. Used for sheets with non-tabular layouts.
func (w *Workbook) RawRows(name string, skip int) ([][]any, error) {
	rows, err := w.file.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", name, w.path, err)
	}
	if skip > len(rows) {
		skip = len(rows)
	}
	out := make([][]any, 0, len(rows)-skip)
	for _, row := range rows[skip:] {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = coerceCell(cell)
		}
		out = append(out, cells)
	}
	return out, nil
}

// coerceCell maps a formatted cell string to its natural in-memory type.
func coerceCell(cell string) any {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64); err == nil {
		return f
	}
	return cell
}

// ReadSheet opens a workbook, reads one sheet, and closes the file. A sheet
// name of "" reads the first sheet.
func ReadSheet(path, sheetName string) (*sheet.Sheet, error) {
	wb, err := OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()
	if sheetName == "" {
		sheetName = wb.FirstSheetName()
	}
	return wb.Sheet(sheetName)
}

// ReadRawRows opens a workbook, reads one sheet without header
// interpretation, and closes the file. A sheet name of "" reads the first
// sheet.
func ReadRawRows(path, sheetName string, skip int) ([][]any, error) {
	wb, err := OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()
	if sheetName == "" {
		sheetName = wb.FirstSheetName()
	}
	return wb.RawRows(sheetName, skip)
}
