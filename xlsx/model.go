package xlsx

import "fmt"

// Intermediate representation of a name column read from a workbook.

// NameCell is one non-blank cell of the name column.
type NameCell struct {
	Ref   string // e.g. "B7"
	Value string // formatted value, as Excel displays it
}

func (c NameCell) String() string {
	return fmt.Sprintf("Ref: %s, Value: %q", c.Ref, c.Value)
}

// NameColumn is the ordered list of names found in one column.
type NameColumn struct {
	Sheet  string
	Column string // column letter, e.g. "A"
	Header string // empty when the column was read from row 1 without a header
	Cells  []NameCell
}

func (c NameColumn) String() string {
	return fmt.Sprintf("Sheet: %s, Column: %s, Header: %q, Cells: %d", c.Sheet, c.Column, c.Header, len(c.Cells))
}

// Values returns the raw cell values in row order.
func (c NameColumn) Values() []string {
	out := make([]string, len(c.Cells))
	for i, cell := range c.Cells {
		out[i] = cell.Value
	}
	return out
}
