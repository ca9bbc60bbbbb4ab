package source

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mesh-intelligence/datagrid/pkg/types"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadCSVInfersKinds(t *testing.T) {
	path := writeFile(t, "people.csv", "name,age,score\nalice,30,1.5\nbob,25,2\n")

	ds, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}

	want := []types.Column{
		{Name: "name", Kind: types.KindText},
		{Name: "age", Kind: types.KindInteger},
		{Name: "score", Kind: types.KindFloat},
	}
	if !reflect.DeepEqual(ds.Columns, want) {
		t.Fatalf("Columns = %+v, want %+v", ds.Columns, want)
	}
	if len(ds.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(ds.Rows))
	}
	if got := ds.Rows[0][1]; !got.Equal(types.Int(30)) {
		t.Errorf("Rows[0][1] = %v, want 30", got)
	}
	if got := ds.Rows[1][2]; !got.Equal(types.Float(2)) {
		t.Errorf("Rows[1][2] = %v, want 2.0", got)
	}
}

func TestLoadCSVBlankFieldsAreNull(t *testing.T) {
	path := writeFile(t, "gaps.csv", "id,score\n1,\n2,3.5\n")

	ds, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	if !ds.Rows[0][1].IsNull() {
		t.Errorf("Rows[0][1] = %v, want null", ds.Rows[0][1])
	}
	if ds.Columns[1].Kind != types.KindFloat {
		t.Errorf("Columns[1].Kind = %v, want float", ds.Columns[1].Kind)
	}
}

func TestLoadCSVEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	_, err := LoadCSV(path)
	if !errors.Is(err, types.ErrEmptyDataset) {
		t.Fatalf("LoadCSV() error = %v, want ErrEmptyDataset", err)
	}
}

func TestSaveCSVRoundTrip(t *testing.T) {
	ds := types.Dataset{
		Columns: []types.Column{
			{Name: "name", Kind: types.KindText},
			{Name: "count", Kind: types.KindInteger},
		},
		Rows: [][]types.Value{
			{types.Text("a"), types.Int(1)},
			{types.Text("b"), types.Null()},
		},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := SaveCSV(path, ds); err != nil {
		t.Fatalf("SaveCSV() error = %v", err)
	}

	got, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	if !reflect.DeepEqual(got, ds) {
		t.Errorf("round trip = %+v, want %+v", got, ds)
	}
}

func TestSaveCSVLeavesNoTempFileOnSuccess(t *testing.T) {
	dir := t.TempDir()
	ds := types.Dataset{
		Columns: []types.Column{{Name: "x", Kind: types.KindInteger}},
		Rows:    [][]types.Value{{types.Int(1)}},
	}
	if err := SaveCSV(filepath.Join(dir, "out.csv"), ds); err != nil {
		t.Fatalf("SaveCSV() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.csv" {
		t.Errorf("directory contents = %v, want only out.csv", entries)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load("data.parquet")
	if !errors.Is(err, types.ErrUnsupportedFormat) {
		t.Fatalf("Load() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSaveRejectsInvalidDataset(t *testing.T) {
	err := Save("out.csv", types.Dataset{})
	if !errors.Is(err, types.ErrEmptyDataset) {
		t.Fatalf("Save() error = %v, want ErrEmptyDataset", err)
	}
}
