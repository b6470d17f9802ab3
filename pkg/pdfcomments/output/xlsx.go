// Package output serializes extracted records to spreadsheet files.
package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/pdfcomments-go/pkg/pdfcomments/models"
)

// DefaultFileName is the name of the generated workbook.
const DefaultFileName = "comments.xlsx"

// DefaultSheetName is the name of the single sheet in the workbook.
const DefaultSheetName = "Comments"

// ErrInvalidFormat indicates a workbook without the expected header row.
var ErrInvalidFormat = errors.New("invalid comments workbook")

// columnWidths are applied left to right across Columns.
var columnWidths = []float64{12, 18, 8, 12, 36, 60, 16, 48, 22}

// NewWorkbook builds a workbook with a header row followed by one row per
// record. Separator records become fully empty rows. Every value is written
// as a string cell.
func NewWorkbook(records []models.Record, sheet string) (*excelize.File, error) {
	if sheet == "" {
		sheet = DefaultSheetName
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, err
	}

	if err := writeRow(f, sheet, 1, models.Columns); err != nil {
		f.Close()
		return nil, err
	}
	for i, r := range records {
		if err := writeRow(f, sheet, i+2, r.Values()); err != nil {
			f.Close()
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(sheet, 1, 1, bold)
	}
	for i, w := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, col, col, w)
	}

	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, v); err != nil {
			return fmt.Errorf("write %s: %w", cell, err)
		}
	}
	return nil
}

// WriteXLSX writes records to a workbook file at path.
func WriteXLSX(records []models.Record, path, sheet string) error {
	f, err := NewWorkbook(records, sheet)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

// ToXLSX returns the workbook for records as bytes.
func ToXLSX(records []models.Record, sheet string) ([]byte, error) {
	f, err := NewWorkbook(records, sheet)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// ReadXLSX reads records back from a workbook produced by NewWorkbook.
func ReadXLSX(r io.Reader, sheet string) ([]models.Record, error) {
	if sheet == "" {
		sheet = DefaultSheetName
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Record
	header := true
	for rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		if header {
			if !sameHeader(cols) {
				return nil, fmt.Errorf("%w: unexpected header %v", ErrInvalidFormat, cols)
			}
			header = false
			continue
		}
		records = append(records, models.RecordFromValues(cols))
	}
	if header {
		return nil, fmt.Errorf("%w: missing header", ErrInvalidFormat)
	}
	return records, rows.Error()
}

func sameHeader(cols []string) bool {
	if len(cols) != len(models.Columns) {
		return false
	}
	for i, c := range models.Columns {
		if cols[i] != c {
			return false
		}
	}
	return true
}
