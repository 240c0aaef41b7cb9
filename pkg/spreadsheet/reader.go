package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Extension is the only upload format the ingestion endpoints accept.
const Extension = ".xlsx"

// Row is one data line of an uploaded workbook keyed by header label.
// A nil cell value marks a blank cell, so optional-field validation can
// distinguish "not provided" from an empty string.
type Row struct {
	Number int
	Cells  map[string]*string
}

// Get returns the trimmed cell value for a column, nil when blank or absent.
func (r Row) Get(column string) *string {
	return r.Cells[column]
}

// ReadRows parses a workbook into its header labels and ordered data rows.
// Only the first sheet is read; the header row is excluded from the result.
func ReadRows(r io.Reader) ([]string, []Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, errors.New("workbook has no sheets")
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(raw) == 0 {
		return nil, nil, errors.New("workbook is empty")
	}

	header := make([]string, 0, len(raw[0]))
	for _, label := range raw[0] {
		label = strings.TrimSpace(label)
		if label != "" {
			header = append(header, label)
		}
	}
	if len(header) == 0 {
		return nil, nil, errors.New("workbook has no header row")
	}

	rows := make([]Row, 0, len(raw)-1)
	for i, line := range raw[1:] {
		cells := make(map[string]*string, len(header))
		blank := true
		for j, column := range header {
			var value string
			if j < len(line) {
				value = strings.TrimSpace(line[j])
			}
			if value == "" {
				cells[column] = nil
				continue
			}
			blank = false
			v := value
			cells[column] = &v
		}
		if blank {
			continue
		}
		rows = append(rows, Row{Number: i + 2, Cells: cells})
	}

	return header, rows, nil
}
