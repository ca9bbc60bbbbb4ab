// Package source imports and exports datasets in the supported
// interchange formats: CSV files, Excel workbooks, SQLite tables, and
// JSON HTTP APIs. Parsing and serialization are delegated to
// encoding/csv, excelize, and database/sql; this package only maps
// between those formats and the dataset snapshot type.
//
// A failed load returns an error without producing a dataset, so the
// caller's existing store and history are never touched.
package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/datagrid/pkg/types"
)

// Load reads a dataset from a file, dispatching on the extension.
// Returns ErrUnsupportedFormat for unrecognized extensions.
func Load(path string) (types.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx", ".xlsm":
		return LoadExcel(path)
	default:
		return types.Dataset{}, fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Save writes a dataset to a file, dispatching on the extension.
// Returns ErrUnsupportedFormat for unrecognized extensions.
func Save(path string, ds types.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return SaveCSV(path, ds)
	case ".xlsx", ".xlsm":
		return SaveExcel(path, ds)
	default:
		return fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// datasetFromRecords builds a dataset from a header row and string
// records: column kinds are inferred from the record fields, then each
// field is parsed to the established kind. Short records are padded
// with nulls.
func datasetFromRecords(header []string, records [][]string) (types.Dataset, error) {
	if len(header) == 0 {
		return types.Dataset{}, types.ErrEmptyDataset
	}

	columns := make([]types.Column, len(header))
	for c, name := range header {
		samples := make([]string, 0, len(records))
		for _, rec := range records {
			if c < len(rec) {
				samples = append(samples, rec[c])
			}
		}
		columns[c] = types.Column{Name: name, Kind: types.InferKind(samples)}
	}

	rows := make([][]types.Value, len(records))
	for r, rec := range records {
		row := make([]types.Value, len(columns))
		for c := range columns {
			if c < len(rec) {
				row[c] = types.ParseField(rec[c], columns[c].Kind)
			} else {
				row[c] = types.Null()
			}
		}
		rows[r] = row
	}

	return types.Dataset{Columns: columns, Rows: rows}, nil
}
