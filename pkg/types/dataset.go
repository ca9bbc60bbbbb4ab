package types

// Column describes one named column and its established scalar kind.
type Column struct {
	Name string
	Kind Kind
}

// Dataset is an immutable snapshot of tabular contents, exchanged
// between importers, the table store, and exporters. Rows are indexed
// row-major; every row holds exactly one value per column.
type Dataset struct {
	Columns []Column
	Rows    [][]Value
}

// Validate checks the row/column shape invariant. Returns
// ErrEmptyDataset when there are no columns and ErrRowWidth when any
// row's width differs from the column count.
func (d Dataset) Validate() error {
	if len(d.Columns) == 0 {
		return ErrEmptyDataset
	}
	for _, row := range d.Rows {
		if len(row) != len(d.Columns) {
			return ErrRowWidth
		}
	}
	return nil
}

// Clone returns a deep copy of the dataset.
func (d Dataset) Clone() Dataset {
	cols := make([]Column, len(d.Columns))
	copy(cols, d.Columns)
	rows := make([][]Value, len(d.Rows))
	for i, row := range d.Rows {
		rows[i] = make([]Value, len(row))
		copy(rows[i], row)
	}
	return Dataset{Columns: cols, Rows: rows}
}

// ColumnStats summarizes one column of a dataset.
type ColumnStats struct {
	Name    string  `json:"name"`
	Kind    string  `json:"kind"`
	Rows    int     `json:"rows"`
	Nulls   int     `json:"nulls"`
	Numeric bool    `json:"numeric"`
	Min     float64 `json:"min,omitempty"`
	Max     float64 `json:"max,omitempty"`
	Mean    float64 `json:"mean,omitempty"`
}

// Stats computes per-column summaries: row and null counts for every
// column, plus min/max/mean over non-null values for numeric columns.
func (d Dataset) Stats() []ColumnStats {
	stats := make([]ColumnStats, len(d.Columns))
	for c, col := range d.Columns {
		s := ColumnStats{
			Name:    col.Name,
			Kind:    col.Kind.String(),
			Rows:    len(d.Rows),
			Numeric: col.Kind == KindInteger || col.Kind == KindFloat,
		}
		var sum float64
		var n int
		for _, row := range d.Rows {
			v := row[c]
			if v.IsNull() {
				s.Nulls++
				continue
			}
			if !s.Numeric {
				continue
			}
			f := v.Float()
			if n == 0 || f < s.Min {
				s.Min = f
			}
			if n == 0 || f > s.Max {
				s.Max = f
			}
			sum += f
			n++
		}
		if s.Numeric && n > 0 {
			s.Mean = sum / float64(n)
		}
		stats[c] = s
	}
	return stats
}
