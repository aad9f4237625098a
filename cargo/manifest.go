// Package cargo projects a parsed TOML document onto the shape of a Cargo
// manifest (§4.E): the subset of tables and keys a constrained environment
// needs to read dependency, target and workspace information without
// linking a full Cargo implementation. It deliberately does not enforce
// Cargo's own cross-field validation rules (git/path/branch/tag/rev
// mutual exclusivity) — see dependency.go — since the specification
// scopes this projection to reading, not validating, manifests.
package cargo

import "github.com/zeenix/tomling/internal/value"

// Manifest is a Cargo.toml document view rooted at a parsed table.
type Manifest struct {
	root *value.Table
}

// NewManifest wraps a parsed document for Cargo-shaped access. It performs
// no validation itself; every accessor below decodes and validates its own
// corner of the tree each time it is called. Nothing is cached.
func NewManifest(root *value.Table) *Manifest {
	return &Manifest{root: root}
}

// Package returns the `[package]` table, or nil if the document has none
// (a virtual workspace manifest, for instance).
func (m *Manifest) Package() (*Package, error) {
	t, err := getTable(m.root, "package")
	if err != nil || t == nil {
		return nil, err
	}
	return newPackage(t), nil
}

func (m *Manifest) Dependencies() ([]DependencyEntry, error) {
	return decodeDependencyField(m.root, "dependencies", "dependencies")
}

func (m *Manifest) DevDependencies() ([]DependencyEntry, error) {
	return decodeDependencyField(m.root, "dev-dependencies", "dev-dependencies")
}

func (m *Manifest) BuildDependencies() ([]DependencyEntry, error) {
	return decodeDependencyField(m.root, "build-dependencies", "build-dependencies")
}

// TargetPlatforms returns every `[target.<spec>]` entry.
func (m *Manifest) TargetPlatforms() ([]TargetPlatform, error) {
	return decodeTargetPlatforms(m.root)
}

// Features returns the `[features]` table's entries in document order.
func (m *Manifest) Features() ([]Feature, error) {
	return decodeFeatures(m.root)
}

// Library returns the `[lib]` target, or nil if absent.
func (m *Manifest) Library() (*Library, error) {
	t, err := getTable(m.root, "lib")
	if err != nil || t == nil {
		return nil, err
	}
	return decodeLibrary(t)
}

func (m *Manifest) Binaries() ([]Target, error) {
	return decodeTargetList(m.root, "bin", false)
}

// Examples additionally carries crate-type, matching Cargo's own
// [[example]] schema.
func (m *Manifest) Examples() ([]Target, error) {
	return decodeTargetList(m.root, "example", true)
}

func (m *Manifest) Tests() ([]Target, error) {
	return decodeTargetList(m.root, "test", false)
}

func (m *Manifest) Benches() ([]Target, error) {
	return decodeTargetList(m.root, "bench", false)
}

// Workspace returns the `[workspace]` table, or nil if this manifest does
// not define one.
func (m *Manifest) Workspace() (*Workspace, error) {
	t, err := getTable(m.root, "workspace")
	if err != nil || t == nil {
		return nil, err
	}
	return decodeWorkspace(t)
}
