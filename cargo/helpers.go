// Package cargo implements §4.E: a schema-aware, non-owning view over a
// parsed generic value tree that interprets it as a Cargo manifest,
// including workspace-inheritance sentinels and tolerant dependency
// shapes. Field shapes are grounded on original_source/src/cargo/*.rs
// (the Rust crate this module's behavior is ported from); where that
// source enforces a cross-field constraint the specification explicitly
// declines to enforce (§9's open question on mutually exclusive
// dependency fields), this package follows the specification and leaves
// the fields independently readable.
package cargo

import (
	"github.com/zeenix/tomling/internal/perr"
	"github.com/zeenix/tomling/internal/value"
)

func getTable(t *value.Table, key string) (*value.Table, error) {
	n, ok := t.Get(key)
	if !ok {
		return nil, nil
	}
	tbl, ok := n.(*value.Table)
	if !ok {
		return nil, perr.NewSchema(key, "expected a table")
	}
	return tbl, nil
}

func getArray(t *value.Table, key string) (*value.Array, error) {
	n, ok := t.Get(key)
	if !ok {
		return nil, nil
	}
	arr, ok := n.(*value.Array)
	if !ok {
		return nil, perr.NewSchema(key, "expected an array")
	}
	return arr, nil
}

func optString(t *value.Table, parentField, key string) (*string, error) {
	n, ok := t.Get(key)
	if !ok {
		return nil, nil
	}
	v, ok := n.(*value.Value)
	if !ok {
		return nil, perr.NewSchema(parentField+"."+key, "expected a string")
	}
	s, ok := v.AsString()
	if !ok {
		return nil, perr.NewSchema(parentField+"."+key, "expected a string")
	}
	return &s, nil
}

func optBool(t *value.Table, parentField, key string) (*bool, error) {
	n, ok := t.Get(key)
	if !ok {
		return nil, nil
	}
	v, ok := n.(*value.Value)
	if !ok {
		return nil, perr.NewSchema(parentField+"."+key, "expected a bool")
	}
	b, ok := v.AsBool()
	if !ok {
		return nil, perr.NewSchema(parentField+"."+key, "expected a bool")
	}
	return &b, nil
}

func optStringArray(t *value.Table, parentField, key string) ([]string, error) {
	n, ok := t.Get(key)
	if !ok {
		return nil, nil
	}
	arr, ok := n.(*value.Array)
	if !ok {
		return nil, perr.NewSchema(parentField+"."+key, "expected an array of strings")
	}
	return decodeStringArray(arr, parentField+"."+key)
}

func decodeStringArray(arr *value.Array, field string) ([]string, error) {
	out := make([]string, 0, arr.Len())
	for _, el := range arr.Iter() {
		v, ok := el.(*value.Value)
		if !ok {
			return nil, perr.NewSchema(field, "expected an array of strings")
		}
		s, ok := v.AsString()
		if !ok {
			return nil, perr.NewSchema(field, "expected an array of strings")
		}
		out = append(out, s)
	}
	return out, nil
}
