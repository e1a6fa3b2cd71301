package export

import (
	"fmt"
	"io"

	"github.com/dgallion1/docdiff/internal/compare"
	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet of the XLSX export.
const SheetName = "Comparacao"

// WriteXLSX writes a workbook with one sheet holding the header and rows.
func WriteXLSX(w io.Writer, rows []compare.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := setRow(f, 1, compare.Header); err != nil {
		return err
	}
	for i, r := range rows {
		if err := setRow(f, i+2, r.Cells()); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, rowNum int, cells []string) error {
	axis, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(SheetName, axis, &values); err != nil {
		return fmt.Errorf("set row %d: %w", rowNum, err)
	}
	return nil
}
