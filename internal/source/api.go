package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/mesh-intelligence/datagrid/pkg/types"
)

// Fetch retrieves a JSON array of objects from the configured API and
// flattens it into a dataset. Nested objects are flattened with
// dot-joined keys ("address.city"). Columns appear in the order they
// are first seen, sorted within each record so the layout is stable
// across runs. Records missing a key get a null cell.
func Fetch(ctx context.Context, cfg types.Config) (types.Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return types.Dataset{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.APIURL, nil)
	if err != nil {
		return types.Dataset{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := &http.Client{Timeout: cfg.APITimeout()}
	resp, err := client.Do(req)
	if err != nil {
		return types.Dataset{}, fmt.Errorf("fetching %s: %w", cfg.APIURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Dataset{}, fmt.Errorf("fetching %s: unexpected status %s", cfg.APIURL, resp.Status)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return types.Dataset{}, fmt.Errorf("decoding response from %s: %w", cfg.APIURL, err)
	}
	if len(records) == 0 {
		return types.Dataset{}, fmt.Errorf("%s: %w", cfg.APIURL, types.ErrEmptyDataset)
	}

	return datasetFromObjects(records)
}

// datasetFromObjects flattens a slice of JSON objects into a dataset.
func datasetFromObjects(records []map[string]any) (types.Dataset, error) {
	flat := make([]map[string]types.Value, len(records))
	var names []string
	seen := make(map[string]bool)
	kinds := make(map[string]types.Kind)

	for i, rec := range records {
		row := make(map[string]types.Value)
		flattenObject("", rec, row)
		flat[i] = row

		keys := make([]string, 0, len(row))
		for k := range row {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
				kinds[k] = types.KindNull
			}
			kinds[k] = widenKind(kinds[k], row[k].Kind())
		}
	}

	ds := types.Dataset{Columns: make([]types.Column, len(names))}
	for i, name := range names {
		kind := kinds[name]
		if kind == types.KindNull {
			kind = types.KindText
		}
		ds.Columns[i] = types.Column{Name: name, Kind: kind}
	}
	for _, row := range flat {
		cells := make([]types.Value, len(names))
		for i, name := range names {
			v, ok := row[name]
			if !ok {
				cells[i] = types.Null()
				continue
			}
			cells[i] = widenValue(v, ds.Columns[i].Kind)
		}
		ds.Rows = append(ds.Rows, cells)
	}
	return ds, ds.Validate()
}

// flattenObject walks a decoded JSON object, writing scalar leaves
// into out with dot-joined keys. Arrays and unsupported values are
// re-encoded as JSON text so nothing is silently dropped.
func flattenObject(prefix string, obj map[string]any, out map[string]types.Value) {
	for k, raw := range obj {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := raw.(type) {
		case nil:
			out[key] = types.Null()
		case bool:
			if v {
				out[key] = types.Text("true")
			} else {
				out[key] = types.Text("false")
			}
		case string:
			out[key] = types.Text(v)
		case json.Number:
			out[key] = numberValue(v)
		case map[string]any:
			flattenObject(key, v, out)
		default:
			data, err := json.Marshal(v)
			if err != nil {
				out[key] = types.Null()
				continue
			}
			out[key] = types.Text(string(data))
		}
	}
}

// numberValue keeps whole numbers integral and everything else float.
func numberValue(n json.Number) types.Value {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return types.Int(i)
		}
	}
	f, err := n.Float64()
	if err != nil {
		return types.Text(s)
	}
	return types.Float(f)
}

// widenKind merges the kind observed in one cell into the column's
// running kind. Mixed numeric widens to float, anything else to text.
func widenKind(col, cell types.Kind) types.Kind {
	switch {
	case cell == types.KindNull:
		return col
	case col == types.KindNull:
		return cell
	case col == cell:
		return col
	case col == types.KindInteger && cell == types.KindFloat,
		col == types.KindFloat && cell == types.KindInteger:
		return types.KindFloat
	default:
		return types.KindText
	}
}

// widenValue converts a cell to the column's final kind.
func widenValue(v types.Value, kind types.Kind) types.Value {
	if v.IsNull() || v.Kind() == kind {
		return v
	}
	switch kind {
	case types.KindFloat:
		if v.Kind() == types.KindInteger {
			return types.Float(float64(v.Int()))
		}
	case types.KindText:
		return types.Text(v.String())
	}
	return v
}
