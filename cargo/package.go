package cargo

import (
	"github.com/zeenix/tomling/internal/perr"
	"github.com/zeenix/tomling/internal/value"
)

// Package is a `[package]` table view (§4.E). Fields that Cargo allows a
// workspace to supply are exposed as Inheritable; the rest are plain
// optional accessors. Grounded on original_source/src/cargo/package.rs's
// field set, which is wider than the specification's explicit list of
// inheritable fields — the extra fields (documentation, readme,
// homepage, license-file, workspace, build, links, publish, metadata,
// include, exclude, default-run, the autobuild flags, resolver) are
// carried over since nothing in the specification's Non-goals excludes
// them.
type Package struct {
	t *value.Table
}

func newPackage(t *value.Table) *Package { return &Package{t: t} }

// Name is the package name, required and never inherited.
func (p *Package) Name() (string, error) {
	n, ok := p.t.Get("name")
	if !ok {
		return "", perr.NewSchema("package.name", "name is required")
	}
	v, ok := n.(*value.Value)
	if !ok {
		return "", perr.NewSchema("package.name", "expected a string")
	}
	s, ok := v.AsString()
	if !ok {
		return "", perr.NewSchema("package.name", "expected a string")
	}
	return s, nil
}

// Version is the package version, or the workspace-inherited sentinel.
func (p *Package) Version() (*Inheritable[string], error) {
	return decodeInheritable(p.t, "version", decodeStringNode("package.version"))
}

// Edition decodes to {2015, 2018, 2021, 2024}; unknown values error on
// access.
func (p *Package) Edition() (*Inheritable[RustEdition], error) {
	return decodeInheritable(p.t, "edition", decodeEditionNode("package.edition"))
}

func (p *Package) RustVersion() (*Inheritable[string], error) {
	return decodeInheritable(p.t, "rust-version", decodeStringNode("package.rust-version"))
}

func (p *Package) Authors() (*Inheritable[[]Author], error) {
	return decodeInheritable(p.t, "authors", decodeAuthorsNode("package.authors"))
}

func (p *Package) Description() (*Inheritable[string], error) {
	return decodeInheritable(p.t, "description", decodeStringNode("package.description"))
}

func (p *Package) Documentation() (*Inheritable[string], error) {
	return decodeInheritable(p.t, "documentation", decodeStringNode("package.documentation"))
}

func (p *Package) Readme() (*Inheritable[string], error) {
	return decodeInheritable(p.t, "readme", decodeStringNode("package.readme"))
}

func (p *Package) Homepage() (*Inheritable[string], error) {
	return decodeInheritable(p.t, "homepage", decodeStringNode("package.homepage"))
}

func (p *Package) Repository() (*Inheritable[string], error) {
	return decodeInheritable(p.t, "repository", decodeStringNode("package.repository"))
}

func (p *Package) License() (*Inheritable[string], error) {
	return decodeInheritable(p.t, "license", decodeStringNode("package.license"))
}

func (p *Package) LicenseFile() (*Inheritable[string], error) {
	return decodeInheritable(p.t, "license-file", decodeStringNode("package.license-file"))
}

func (p *Package) Keywords() (*Inheritable[[]string], error) {
	return decodeInheritable(p.t, "keywords", decodeStringArrayNode("package.keywords"))
}

func (p *Package) Categories() (*Inheritable[[]string], error) {
	return decodeInheritable(p.t, "categories", decodeStringArrayNode("package.categories"))
}

func (p *Package) Publish() (*Inheritable[bool], error) {
	return decodeInheritable(p.t, "publish", decodeBoolNode("package.publish"))
}

func (p *Package) Include() (*Inheritable[[]string], error) {
	return decodeInheritable(p.t, "include", decodeStringArrayNode("package.include"))
}

func (p *Package) Exclude() (*Inheritable[[]string], error) {
	return decodeInheritable(p.t, "exclude", decodeStringArrayNode("package.exclude"))
}

// Workspace is the relative path to this package's workspace manifest, if
// this package declares one explicitly (distinct from Manifest.Workspace,
// which reads this document's own `[workspace]` table).
func (p *Package) Workspace() (*string, error) { return optString(p.t, "package", "workspace") }

func (p *Package) Build() (*string, error) { return optString(p.t, "package", "build") }

func (p *Package) Links() (*string, error) { return optString(p.t, "package", "links") }

func (p *Package) DefaultRun() (*string, error) { return optString(p.t, "package", "default-run") }

func (p *Package) Autobins() (*bool, error) { return optBool(p.t, "package", "autobins") }

func (p *Package) Autoexamples() (*bool, error) { return optBool(p.t, "package", "autoexamples") }

func (p *Package) Autotests() (*bool, error) { return optBool(p.t, "package", "autotests") }

func (p *Package) Autobenches() (*bool, error) { return optBool(p.t, "package", "autobenches") }

// Resolver is the dependency resolver version this package requests.
func (p *Package) Resolver() (*ResolverVersion, error) {
	n, ok := p.t.Get("resolver")
	if !ok {
		return nil, nil
	}
	v, ok := n.(*value.Value)
	if !ok {
		return nil, perr.NewSchema("package.resolver", "expected a string")
	}
	s, ok := v.AsString()
	if !ok {
		return nil, perr.NewSchema("package.resolver", "expected a string")
	}
	rv, err := parseResolverVersion("package.resolver", s)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

// Metadata is the free-form `[package.metadata]` table, returned as the
// generic tree for the caller to interpret.
func (p *Package) Metadata() (*value.Table, error) { return getTable(p.t, "metadata") }
