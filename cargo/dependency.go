package cargo

import (
	"github.com/zeenix/tomling/internal/perr"
	"github.com/zeenix/tomling/internal/value"
)

// Dependency is one entry of a `[dependencies]`-shaped table: either a
// bare version string, or a table carrying any combination of version,
// path, git, branch, tag, rev, registry, features, default-features,
// optional, workspace and package (§4.E). original_source groups git
// location and branch/tag/rev into nested Source/GitCommit enums and
// rejects combinations it considers invalid (e.g. both `git` and `path`);
// the specification explicitly declines to enforce Cargo's cross-field
// constraints (§9), so here every field is independently optional and
// readable regardless of what else is present.
type Dependency struct {
	Version         *string
	Path            *string
	Git             *string
	Branch          *string
	Tag             *string
	Rev             *string
	Registry        *string
	Features        []string
	DefaultFeatures *bool
	Optional        *bool
	Workspace       *bool
	Package         *string
}

// DependencyEntry pairs a dependency's table key with its decoded value,
// preserving the document's declaration order.
type DependencyEntry struct {
	Name       string
	Dependency *Dependency
}

func decodeDependency(field string, n value.Node) (*Dependency, error) {
	switch v := n.(type) {
	case *value.Value:
		s, ok := v.AsString()
		if !ok {
			return nil, perr.NewSchema(field, "expected a version string or a table")
		}
		return &Dependency{Version: &s}, nil
	case *value.Table:
		d := &Dependency{}
		var err error
		if d.Version, err = optString(v, field, "version"); err != nil {
			return nil, err
		}
		if d.Path, err = optString(v, field, "path"); err != nil {
			return nil, err
		}
		if d.Git, err = optString(v, field, "git"); err != nil {
			return nil, err
		}
		if d.Branch, err = optString(v, field, "branch"); err != nil {
			return nil, err
		}
		if d.Tag, err = optString(v, field, "tag"); err != nil {
			return nil, err
		}
		if d.Rev, err = optString(v, field, "rev"); err != nil {
			return nil, err
		}
		if d.Registry, err = optString(v, field, "registry"); err != nil {
			return nil, err
		}
		if d.Package, err = optString(v, field, "package"); err != nil {
			return nil, err
		}
		if d.DefaultFeatures, err = optBool(v, field, "default-features"); err != nil {
			return nil, err
		}
		if d.Optional, err = optBool(v, field, "optional"); err != nil {
			return nil, err
		}
		if d.Workspace, err = optBool(v, field, "workspace"); err != nil {
			return nil, err
		}
		if d.Features, err = optStringArray(v, field, "features"); err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, perr.NewSchema(field, "expected a version string or a table")
	}
}

func decodeDependencyTable(t *value.Table, field string) ([]DependencyEntry, error) {
	entries := make([]DependencyEntry, 0, t.Len())
	for _, e := range t.Iter() {
		d, err := decodeDependency(field+"."+e.Key, e.Value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, DependencyEntry{Name: e.Key, Dependency: d})
	}
	return entries, nil
}

func decodeDependencyField(t *value.Table, key, field string) ([]DependencyEntry, error) {
	dt, err := getTable(t, key)
	if err != nil {
		return nil, err
	}
	if dt == nil {
		return nil, nil
	}
	return decodeDependencyTable(dt, field)
}
