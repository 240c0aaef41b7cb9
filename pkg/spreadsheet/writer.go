package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type served for generated workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Write produces a single-sheet workbook whose first row lists the given
// headers, ready to be filled in and uploaded back.
func Write(headers []string) ([]byte, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("workbook requires at least one header")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell %d: %w", i+1, err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("write header %q: %w", header, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}

	return buf.Bytes(), nil
}
