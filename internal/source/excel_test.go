package source

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mesh-intelligence/datagrid/pkg/types"
)

func TestSaveExcelRoundTrip(t *testing.T) {
	ds := types.Dataset{
		Columns: []types.Column{
			{Name: "name", Kind: types.KindText},
			{Name: "count", Kind: types.KindInteger},
			{Name: "ratio", Kind: types.KindFloat},
		},
		Rows: [][]types.Value{
			{types.Text("a"), types.Int(1), types.Float(0.5)},
			{types.Text("b"), types.Int(2), types.Float(1.25)},
		},
	}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := SaveExcel(path, ds); err != nil {
		t.Fatalf("SaveExcel() error = %v", err)
	}

	got, err := LoadExcel(path)
	if err != nil {
		t.Fatalf("LoadExcel() error = %v", err)
	}
	if !reflect.DeepEqual(got, ds) {
		t.Errorf("round trip = %+v, want %+v", got, ds)
	}
}

func TestSaveExcelNullCellsStayNull(t *testing.T) {
	ds := types.Dataset{
		Columns: []types.Column{
			{Name: "id", Kind: types.KindInteger},
			{Name: "note", Kind: types.KindText},
		},
		Rows: [][]types.Value{
			{types.Int(1), types.Null()},
			{types.Int(2), types.Text("hi")},
		},
	}

	path := filepath.Join(t.TempDir(), "gaps.xlsx")
	if err := SaveExcel(path, ds); err != nil {
		t.Fatalf("SaveExcel() error = %v", err)
	}

	got, err := LoadExcel(path)
	if err != nil {
		t.Fatalf("LoadExcel() error = %v", err)
	}
	if !got.Rows[0][1].IsNull() {
		t.Errorf("Rows[0][1] = %v, want null", got.Rows[0][1])
	}
	if want := types.Text("hi"); !got.Rows[1][1].Equal(want) {
		t.Errorf("Rows[1][1] = %v, want %v", got.Rows[1][1], want)
	}
}

func TestSaveExcelLeavesOnlyTarget(t *testing.T) {
	dir := t.TempDir()
	ds := types.Dataset{
		Columns: []types.Column{{Name: "x", Kind: types.KindInteger}},
		Rows:    [][]types.Value{{types.Int(1)}},
	}
	if err := SaveExcel(filepath.Join(dir, "out.xlsx"), ds); err != nil {
		t.Fatalf("SaveExcel() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.xlsx" {
		t.Errorf("directory contents = %v, want only out.xlsx", entries)
	}
}

func TestLoadExcelDispatchesFromSave(t *testing.T) {
	ds := types.Dataset{
		Columns: []types.Column{{Name: "x", Kind: types.KindInteger}},
		Rows:    [][]types.Value{{types.Int(7)}},
	}

	path := filepath.Join(t.TempDir(), "via.xlsx")
	if err := Save(path, ds); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, ds) {
		t.Errorf("round trip = %+v, want %+v", got, ds)
	}
}
