package cargo

import (
	"fmt"

	"github.com/zeenix/tomling/internal/perr"
	"github.com/zeenix/tomling/internal/value"
)

// Target is one entry of a `[[bin]]`, `[[example]]`, `[[test]]`, or
// `[[bench]]` array (§4.E). Name is required; every other field is
// optional. original_source gives each of the four its own struct with
// an identical field set (bar `example`'s extra crate-type) — this
// module folds them into one shape, matching the specification's
// "name required, path optional, plus all free-form boolean flags"
// description more directly than four near-duplicate types would.
type Target struct {
	Name             string
	Path             *string
	Test             *bool
	Bench            *bool
	Doc              *bool
	Harness          *bool
	Edition          *string
	RequiredFeatures []string
	CrateType        []LibraryType // only populated for [[example]] entries
	Extra            map[string]bool
}

var knownTargetKeys = map[string]bool{
	"name": true, "path": true, "test": true, "bench": true, "doc": true,
	"harness": true, "edition": true, "required-features": true, "crate-type": true,
}

func decodeTarget(tt *value.Table, field string, withCrateType bool) (Target, error) {
	var tgt Target
	n, ok := tt.Get("name")
	if !ok {
		return tgt, perr.NewSchema(field+".name", "name is required")
	}
	v, ok := n.(*value.Value)
	if !ok {
		return tgt, perr.NewSchema(field+".name", "expected a string")
	}
	name, ok := v.AsString()
	if !ok {
		return tgt, perr.NewSchema(field+".name", "expected a string")
	}
	tgt.Name = name

	var err error
	if tgt.Path, err = optString(tt, field, "path"); err != nil {
		return tgt, err
	}
	if tgt.Test, err = optBool(tt, field, "test"); err != nil {
		return tgt, err
	}
	if tgt.Bench, err = optBool(tt, field, "bench"); err != nil {
		return tgt, err
	}
	if tgt.Doc, err = optBool(tt, field, "doc"); err != nil {
		return tgt, err
	}
	if tgt.Harness, err = optBool(tt, field, "harness"); err != nil {
		return tgt, err
	}
	if tgt.Edition, err = optString(tt, field, "edition"); err != nil {
		return tgt, err
	}
	if tgt.RequiredFeatures, err = optStringArray(tt, field, "required-features"); err != nil {
		return tgt, err
	}
	if withCrateType {
		if tgt.CrateType, err = decodeLibraryTypes(tt, field); err != nil {
			return tgt, err
		}
	}
	for _, e := range tt.Iter() {
		if knownTargetKeys[e.Key] {
			continue
		}
		bv, ok := e.Value.(*value.Value)
		if !ok {
			continue
		}
		b, ok := bv.AsBool()
		if !ok {
			continue
		}
		if tgt.Extra == nil {
			tgt.Extra = make(map[string]bool)
		}
		tgt.Extra[e.Key] = b
	}
	return tgt, nil
}

func decodeTargetList(root *value.Table, key string, withCrateType bool) ([]Target, error) {
	arr, err := getArray(root, key)
	if err != nil || arr == nil {
		return nil, err
	}
	out := make([]Target, 0, arr.Len())
	for i, el := range arr.Iter() {
		field := fmt.Sprintf("%s[%d]", key, i)
		tt, ok := el.(*value.Table)
		if !ok {
			return nil, perr.NewSchema(field, "expected a table")
		}
		tgt, err := decodeTarget(tt, field, key == "example")
		if err != nil {
			return nil, err
		}
		out = append(out, tgt)
	}
	return out, nil
}

// TargetPlatform is one `[target.<spec>]` entry: the verbatim spec
// string (e.g. `cfg(unix)`, `x86_64-pc-windows-msvc`) plus its own
// dependency tables (§4.E).
type TargetPlatform struct {
	Spec              string
	Dependencies      []DependencyEntry
	DevDependencies   []DependencyEntry
	BuildDependencies []DependencyEntry
}

func decodeTargetPlatforms(root *value.Table) ([]TargetPlatform, error) {
	t, err := getTable(root, "target")
	if err != nil || t == nil {
		return nil, err
	}
	out := make([]TargetPlatform, 0, t.Len())
	for _, e := range t.Iter() {
		specTable, ok := e.Value.(*value.Table)
		if !ok {
			return nil, perr.NewSchema("target."+e.Key, "expected a table")
		}
		field := "target." + e.Key
		tp := TargetPlatform{Spec: e.Key}
		if tp.Dependencies, err = decodeDependencyField(specTable, "dependencies", field+".dependencies"); err != nil {
			return nil, err
		}
		if tp.DevDependencies, err = decodeDependencyField(specTable, "dev-dependencies", field+".dev-dependencies"); err != nil {
			return nil, err
		}
		if tp.BuildDependencies, err = decodeDependencyField(specTable, "build-dependencies", field+".build-dependencies"); err != nil {
			return nil, err
		}
		out = append(out, tp)
	}
	return out, nil
}
