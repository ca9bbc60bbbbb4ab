package source

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/datagrid/pkg/types"
)

// LoadTable reads an entire SQLite table into a dataset. Column kinds
// follow the declared SQL types: INTEGER columns become integer, REAL
// and NUMERIC become float, everything else text. NULL cells stay null.
func LoadTable(path, table string) (types.Dataset, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return types.Dataset{}, fmt.Errorf("opening database %s: %w", path, err)
	}
	defer db.Close()

	cols, err := tableColumns(db, table)
	if err != nil {
		return types.Dataset{}, err
	}

	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = quoteIdent(c.Name)
	}
	rows, err := db.Query("SELECT " + strings.Join(names, ", ") + " FROM " + quoteIdent(table))
	if err != nil {
		return types.Dataset{}, fmt.Errorf("querying table %s: %w", table, err)
	}
	defer rows.Close()

	ds := types.Dataset{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return types.Dataset{}, fmt.Errorf("scanning row from %s: %w", table, err)
		}
		row := make([]types.Value, len(cols))
		for i, raw := range values {
			v, err := scanValue(raw, cols[i].Kind)
			if err != nil {
				return types.Dataset{}, fmt.Errorf("column %s: %w", cols[i].Name, err)
			}
			row[i] = v
		}
		ds.Rows = append(ds.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return types.Dataset{}, fmt.Errorf("iterating table %s: %w", table, err)
	}
	if len(ds.Rows) == 0 && len(ds.Columns) == 0 {
		return types.Dataset{}, fmt.Errorf("table %s: %w", table, types.ErrEmptyDataset)
	}
	return ds, nil
}

// SaveTable replaces a SQLite table with the dataset's contents. The
// table is dropped, recreated from the column kinds, and filled inside
// a single transaction so a failure leaves the database unchanged.
func SaveTable(path, table string, ds types.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DROP TABLE IF EXISTS " + quoteIdent(table)); err != nil {
		return fmt.Errorf("dropping table %s: %w", table, err)
	}

	defs := make([]string, len(ds.Columns))
	for i, col := range ds.Columns {
		defs[i] = quoteIdent(col.Name) + " " + sqlType(col.Kind)
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(table), strings.Join(defs, ", "))
	if _, err := tx.Exec(create); err != nil {
		return fmt.Errorf("creating table %s: %w", table, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ds.Columns)), ", ")
	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(table), placeholders)
	stmt, err := tx.Prepare(insert)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for r, row := range ds.Rows {
		args := make([]any, len(row))
		for i, v := range row {
			args[i] = v.Native()
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("inserting row %d: %w", r, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing table %s: %w", table, err)
	}
	return nil
}

// tableColumns reads the table's schema via PRAGMA table_info.
func tableColumns(db *sql.DB, table string) ([]types.Column, error) {
	rows, err := db.Query("PRAGMA table_info(" + quoteIdent(table) + ")")
	if err != nil {
		return nil, fmt.Errorf("reading schema for %s: %w", table, err)
	}
	defer rows.Close()

	var cols []types.Column
	for rows.Next() {
		var (
			cid       int
			name      string
			declType  string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &declType, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("scanning schema row: %w", err)
		}
		cols = append(cols, types.Column{Name: name, Kind: kindFromSQLType(declType)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schema for %s: %w", table, err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("table %s not found in database", table)
	}
	return cols, nil
}

// scanValue converts a raw driver value into a Value of the column's kind.
func scanValue(raw any, kind types.Kind) (types.Value, error) {
	if raw == nil {
		return types.Null(), nil
	}
	switch v := raw.(type) {
	case int64:
		if kind == types.KindFloat {
			return types.Float(float64(v)), nil
		}
		return types.Int(v), nil
	case float64:
		if kind == types.KindInteger {
			return types.Int(int64(v)), nil
		}
		return types.Float(v), nil
	case string:
		return types.ParseField(v, kind), nil
	case []byte:
		return types.ParseField(string(v), kind), nil
	default:
		return types.Value{}, fmt.Errorf("unsupported driver value %T", raw)
	}
}

func sqlType(kind types.Kind) string {
	switch kind {
	case types.KindInteger:
		return "INTEGER"
	case types.KindFloat:
		return "REAL"
	default:
		return "TEXT"
	}
}

func kindFromSQLType(declType string) types.Kind {
	switch strings.ToUpper(declType) {
	case "INTEGER", "INT", "BIGINT":
		return types.KindInteger
	case "REAL", "NUMERIC", "FLOAT", "DOUBLE":
		return types.KindFloat
	default:
		return types.KindText
	}
}

// quoteIdent wraps an identifier in double quotes, escaping embedded
// quotes, so arbitrary column and table names are safe to interpolate.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
