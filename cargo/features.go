package cargo

import (
	"github.com/zeenix/tomling/internal/perr"
	"github.com/zeenix/tomling/internal/value"
)

// Feature is one entry of the `[features]` table: a name mapped to an
// ordered list of other features or optional dependencies it enables
// (§4.E, original_source's feature map).
type Feature struct {
	Name     string
	Requires []string
}

func decodeFeatures(root *value.Table) ([]Feature, error) {
	t, err := getTable(root, "features")
	if err != nil || t == nil {
		return nil, err
	}
	out := make([]Feature, 0, t.Len())
	for _, e := range t.Iter() {
		field := "features." + e.Key
		arr, ok := e.Value.(*value.Array)
		if !ok {
			return nil, perr.NewSchema(field, "expected an array of strings")
		}
		reqs, err := decodeStringArray(arr, field)
		if err != nil {
			return nil, err
		}
		out = append(out, Feature{Name: e.Key, Requires: reqs})
	}
	return out, nil
}
