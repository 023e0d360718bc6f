package xlsx

import (
	"strings"

	"github.com/unidoc/unioffice/spreadsheet"
)

// findHeader returns the column letter of the row-1 cell whose trimmed value
// equals header.
func findHeader(sheet spreadsheet.Sheet, header string) (string, bool) {
	for _, row := range sheet.Rows() {
		if row.RowNumber() != 1 {
			continue
		}
		for _, cell := range row.Cells() {
			if strings.TrimSpace(cell.GetFormattedValue()) != header {
				continue
			}
			if colName, err := cell.Column(); err == nil {
				return colName, true
			}
		}
		break
	}
	return "", false
}
