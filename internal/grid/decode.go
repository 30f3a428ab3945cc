package grid

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheets is returned when a workbook opens successfully but contains
// no sheets to validate.
var ErrNoSheets = errors.New("workbook has no sheets")

// Decode reads an .xlsx workbook and materializes its first sheet as a
// Grid. It is the only place file-format knowledge lives; everything
// downstream works on the typed grid.
func Decode(r io.Reader) (*Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	return FromRows(rows), nil
}
