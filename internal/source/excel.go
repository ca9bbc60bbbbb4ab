package source

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/mesh-intelligence/datagrid/pkg/types"
)

// LoadExcel reads the first sheet of a workbook into a dataset. The
// first row is the header; column kinds are inferred from the cell
// text of the remaining rows.
func LoadExcel(path string) (types.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return types.Dataset{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return types.Dataset{}, fmt.Errorf("%s: %w", path, types.ErrEmptyDataset)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return types.Dataset{}, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return types.Dataset{}, fmt.Errorf("%s: %w", path, types.ErrEmptyDataset)
	}

	return datasetFromRecords(rows[0], rows[1:])
}

// SaveExcel atomically writes a dataset as a single-sheet workbook,
// saving to a temp file first and renaming over the target. Numeric
// values are written as numbers, nulls as empty cells.
func SaveExcel(path string, ds types.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for c, col := range ds.Columns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col.Name); err != nil {
			return fmt.Errorf("writing header %s: %w", col.Name, err)
		}
	}
	for r, row := range ds.Rows {
		for c, v := range row {
			if v.IsNull() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("cell name (%d, %d): %w", r, c, err)
			}
			if err := f.SetCellValue(sheet, cell, v.Native()); err != nil {
				return fmt.Errorf("writing cell %s: %w", cell, err)
			}
		}
	}

	dir := filepath.Dir(path)
	// SaveAs validates the extension, so the temp name must keep the
	// target's own.
	tmp, err := os.CreateTemp(dir, "tmp-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	tmp.Close()

	if err := f.SaveAs(tmpName); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("saving workbook: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
