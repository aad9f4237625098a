package cargo

import (
	"github.com/zeenix/tomling/internal/perr"
	"github.com/zeenix/tomling/internal/value"
)

// WorkspacePackage is the `[workspace.package]` table: the plain
// (non-inheritable — a workspace cannot itself inherit) defaults member
// packages may pull in via `{ workspace = true }` (original_source's
// nested workspace::Package).
type WorkspacePackage struct {
	Version      *string
	Edition      *RustEdition
	RustVersion  *string
	Authors      []Author
	Description  *string
	Documentation *string
	Readme       *string
	Homepage     *string
	Repository   *string
	License      *string
	LicenseFile  *string
	Keywords     []string
	Categories   []string
	Publish      *bool
	Include      []string
	Exclude      []string
}

func decodeWorkspacePackage(t *value.Table) (*WorkspacePackage, error) {
	const field = "workspace.package"
	wp := &WorkspacePackage{}
	var err error
	if wp.Version, err = optString(t, field, "version"); err != nil {
		return nil, err
	}
	if n, ok := t.Get("edition"); ok {
		ed, err := decodeEditionNode(field + ".edition")(n)
		if err != nil {
			return nil, err
		}
		wp.Edition = &ed
	}
	if wp.RustVersion, err = optString(t, field, "rust-version"); err != nil {
		return nil, err
	}
	if n, ok := t.Get("authors"); ok {
		wp.Authors, err = decodeAuthorsNode(field + ".authors")(n)
		if err != nil {
			return nil, err
		}
	}
	if wp.Description, err = optString(t, field, "description"); err != nil {
		return nil, err
	}
	if wp.Documentation, err = optString(t, field, "documentation"); err != nil {
		return nil, err
	}
	if wp.Readme, err = optString(t, field, "readme"); err != nil {
		return nil, err
	}
	if wp.Homepage, err = optString(t, field, "homepage"); err != nil {
		return nil, err
	}
	if wp.Repository, err = optString(t, field, "repository"); err != nil {
		return nil, err
	}
	if wp.License, err = optString(t, field, "license"); err != nil {
		return nil, err
	}
	if wp.LicenseFile, err = optString(t, field, "license-file"); err != nil {
		return nil, err
	}
	if wp.Keywords, err = optStringArray(t, field, "keywords"); err != nil {
		return nil, err
	}
	if wp.Categories, err = optStringArray(t, field, "categories"); err != nil {
		return nil, err
	}
	if wp.Publish, err = optBool(t, field, "publish"); err != nil {
		return nil, err
	}
	if wp.Include, err = optStringArray(t, field, "include"); err != nil {
		return nil, err
	}
	if wp.Exclude, err = optStringArray(t, field, "exclude"); err != nil {
		return nil, err
	}
	return wp, nil
}

// Workspace is the `[workspace]` table view (§4.E, original_source's
// Workspace).
type Workspace struct {
	Package         *WorkspacePackage
	Resolver        *ResolverVersion
	Dependencies    []DependencyEntry
	Members         []string
	DefaultMembers  []string
	Exclude         []string
	Metadata        *value.Table
	Lints           *value.Table
}

func decodeWorkspace(t *value.Table) (*Workspace, error) {
	w := &Workspace{}
	pkgTable, err := getTable(t, "package")
	if err != nil {
		return nil, err
	}
	if pkgTable != nil {
		if w.Package, err = decodeWorkspacePackage(pkgTable); err != nil {
			return nil, err
		}
	}
	if n, ok := t.Get("resolver"); ok {
		v, ok := n.(*value.Value)
		if !ok {
			return nil, perr.NewSchema("workspace.resolver", "expected a string")
		}
		s, ok := v.AsString()
		if !ok {
			return nil, perr.NewSchema("workspace.resolver", "expected a string")
		}
		rv, err := parseResolverVersion("workspace.resolver", s)
		if err != nil {
			return nil, err
		}
		w.Resolver = &rv
	}
	if w.Dependencies, err = decodeDependencyField(t, "dependencies", "workspace.dependencies"); err != nil {
		return nil, err
	}
	if w.Members, err = optStringArray(t, "workspace", "members"); err != nil {
		return nil, err
	}
	if w.DefaultMembers, err = optStringArray(t, "workspace", "default-members"); err != nil {
		return nil, err
	}
	if w.Exclude, err = optStringArray(t, "workspace", "exclude"); err != nil {
		return nil, err
	}
	if w.Metadata, err = getTable(t, "metadata"); err != nil {
		return nil, err
	}
	if w.Lints, err = getTable(t, "lints"); err != nil {
		return nil, err
	}
	return w, nil
}
