package xlsx

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// DefaultHeader is the column heading the stock name lists use.
const DefaultHeader = "中文名"

// ParseNameColumn reads names from the first worksheet of the XLSX in r.
//
// With a header, the column whose row-1 cell equals header is used and row 1
// is skipped. Without one, column A is read from row 1. Blank cells are
// dropped; nothing else is cleaned.
func ParseNameColumn(r io.ReaderAt, size int64, header string) (NameColumn, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return NameColumn{}, err
	}

	sheets := wb.Sheets()
	if len(sheets) == 0 {
		return NameColumn{}, errors.New("workbook has no sheets")
	}
	sheet := sheets[0]

	col := NameColumn{Sheet: sheet.Name(), Column: "A", Header: header}
	firstRow := uint32(1)
	if header != "" {
		c, ok := findHeader(sheet, header)
		if !ok {
			return NameColumn{}, fmt.Errorf("sheet %q has no column %q", sheet.Name(), header)
		}
		col.Column = c
		firstRow = 2
	}
	colIdx := reference.ColumnToIndex(col.Column)

	for _, row := range sheet.Rows() {
		if row.RowNumber() < firstRow {
			continue
		}
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil || reference.ColumnToIndex(colName) != colIdx {
				continue
			}
			v := cell.GetFormattedValue()
			if strings.TrimSpace(v) == "" {
				continue
			}
			col.Cells = append(col.Cells, NameCell{
				Ref:   fmt.Sprintf("%s%d", colName, row.RowNumber()),
				Value: v,
			})
		}
	}
	return col, nil
}
