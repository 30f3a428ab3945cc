package core

import "fmt"

// rowLimitError is returned when a workbook exceeds the configured row
// budget before any rule runs.
type rowLimitError struct {
	rows, max int
}

func (e rowLimitError) Error() string {
	return fmt.Sprintf("workbook has too many rows: %d exceeds limit of %d", e.rows, e.max)
}

func errTooManyRows(rows, max int) error {
	return rowLimitError{rows: rows, max: max}
}
