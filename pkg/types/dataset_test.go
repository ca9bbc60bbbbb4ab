package types

import "testing"

func sampleDataset() Dataset {
	return Dataset{
		Columns: []Column{
			{Name: "id", Kind: KindInteger},
			{Name: "score", Kind: KindFloat},
			{Name: "name", Kind: KindText},
		},
		Rows: [][]Value{
			{Int(1), Float(2.0), Text("a")},
			{Int(2), Null(), Text("b")},
			{Int(3), Float(4.0), Null()},
		},
	}
}

func TestDatasetValidate(t *testing.T) {
	ds := sampleDataset()
	if err := ds.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	empty := Dataset{}
	if err := empty.Validate(); err != ErrEmptyDataset {
		t.Errorf("empty Validate() = %v, want ErrEmptyDataset", err)
	}

	ragged := sampleDataset()
	ragged.Rows[1] = ragged.Rows[1][:2]
	if err := ragged.Validate(); err != ErrRowWidth {
		t.Errorf("ragged Validate() = %v, want ErrRowWidth", err)
	}
}

func TestDatasetClone(t *testing.T) {
	ds := sampleDataset()
	cp := ds.Clone()

	cp.Rows[0][0] = Int(99)
	cp.Columns[0].Name = "changed"

	if !ds.Rows[0][0].Equal(Int(1)) {
		t.Error("clone shares row storage with original")
	}
	if ds.Columns[0].Name != "id" {
		t.Error("clone shares column storage with original")
	}
}

func TestDatasetStats(t *testing.T) {
	stats := sampleDataset().Stats()
	if len(stats) != 3 {
		t.Fatalf("Stats() returned %d entries, want 3", len(stats))
	}

	id := stats[0]
	if !id.Numeric || id.Min != 1 || id.Max != 3 || id.Mean != 2 {
		t.Errorf("id stats = %+v, want min 1 max 3 mean 2", id)
	}

	score := stats[1]
	if score.Nulls != 1 || score.Min != 2 || score.Max != 4 || score.Mean != 3 {
		t.Errorf("score stats = %+v, want 1 null, min 2, max 4, mean 3", score)
	}

	name := stats[2]
	if name.Numeric {
		t.Error("text column reported as numeric")
	}
	if name.Nulls != 1 || name.Rows != 3 {
		t.Errorf("name stats = %+v, want 1 null over 3 rows", name)
	}
}
