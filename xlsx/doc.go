// Package xlsx reads the list of names from the first sheet of a workbook.
package xlsx
