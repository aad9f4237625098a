package cargo

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/zeenix/tomling/internal/parser"
)

func mustManifest(t *testing.T, src string) *Manifest {
	t.Helper()
	root, err := parser.Parse([]byte(src))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return NewManifest(root)
}

func TestPackageFields(t *testing.T) {
	convey.Convey("a package table with a mix of literal and inherited fields", t, func() {
		src := `
[package]
name = "example"
version = "1.2.3"
edition = "2021"
authors = ["Jane Doe <jane@example.com>", "Solo Author"]
license.workspace = true
`
		m := mustManifest(t, src)
		pkg, err := m.Package()
		convey.So(err, convey.ShouldBeNil)
		convey.So(pkg, convey.ShouldNotBeNil)

		name, err := pkg.Name()
		convey.So(err, convey.ShouldBeNil)
		convey.So(name, convey.ShouldEqual, "example")

		version, err := pkg.Version()
		convey.So(err, convey.ShouldBeNil)
		v, ok := version.Value()
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(v, convey.ShouldEqual, "1.2.3")

		edition, err := pkg.Edition()
		convey.So(err, convey.ShouldBeNil)
		ev, _ := edition.Value()
		convey.So(ev, convey.ShouldEqual, Edition2021)

		authors, err := pkg.Authors()
		convey.So(err, convey.ShouldBeNil)
		av, _ := authors.Value()
		convey.So(len(av), convey.ShouldEqual, 2)
		convey.So(av[0].Name, convey.ShouldEqual, "Jane Doe")
		convey.So(*av[0].Email, convey.ShouldEqual, "jane@example.com")
		convey.So(av[1].Name, convey.ShouldEqual, "Solo Author")
		convey.So(av[1].Email, convey.ShouldBeNil)

		license, err := pkg.License()
		convey.So(err, convey.ShouldBeNil)
		convey.So(license.Inherited(), convey.ShouldBeTrue)
	})

	convey.Convey("a package missing a name errors", t, func() {
		m := mustManifest(t, "[package]\nversion = \"0.1.0\"\n")
		pkg, err := m.Package()
		convey.So(err, convey.ShouldBeNil)
		_, err = pkg.Name()
		convey.So(err, convey.ShouldNotBeNil)
	})
}

func TestDependencyShapes(t *testing.T) {
	convey.Convey("dependencies given as bare strings or full tables", t, func() {
		src := `
[dependencies]
serde = "1.0"
tokio = { version = "1", features = ["full"], default-features = false }
local-crate = { path = "../local-crate" }
from-git = { git = "https://example.com/repo.git", branch = "main" }
`
		m := mustManifest(t, src)
		deps, err := m.Dependencies()
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(deps), convey.ShouldEqual, 4)

		byName := map[string]*Dependency{}
		for _, d := range deps {
			byName[d.Name] = d.Dependency
		}

		convey.So(*byName["serde"].Version, convey.ShouldEqual, "1.0")

		tokio := byName["tokio"]
		convey.So(*tokio.Version, convey.ShouldEqual, "1")
		convey.So(tokio.Features, convey.ShouldResemble, []string{"full"})
		convey.So(*tokio.DefaultFeatures, convey.ShouldBeFalse)

		convey.So(*byName["local-crate"].Path, convey.ShouldEqual, "../local-crate")

		fromGit := byName["from-git"]
		convey.So(*fromGit.Git, convey.ShouldEqual, "https://example.com/repo.git")
		convey.So(*fromGit.Branch, convey.ShouldEqual, "main")
		convey.So(fromGit.Path, convey.ShouldBeNil)
	})
}

func TestTargetsAndLibrary(t *testing.T) {
	convey.Convey("bin, example, lib and target-platform sections decode", t, func() {
		src := `
[lib]
name = "mylib"
crate-type = ["rlib", "cdylib"]

[[bin]]
name = "cli"
path = "src/main.rs"

[[example]]
name = "demo"
crate-type = ["lib"]
required-features = ["extra"]

[target."cfg(unix)".dependencies]
libc = "0.2"
`
		m := mustManifest(t, src)

		lib, err := m.Library()
		convey.So(err, convey.ShouldBeNil)
		convey.So(*lib.Name, convey.ShouldEqual, "mylib")
		convey.So(lib.CrateType, convey.ShouldResemble, []LibraryType{LibraryTypeRlib, LibraryTypeCdylib})

		bins, err := m.Binaries()
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(bins), convey.ShouldEqual, 1)
		convey.So(bins[0].Name, convey.ShouldEqual, "cli")
		convey.So(*bins[0].Path, convey.ShouldEqual, "src/main.rs")

		examples, err := m.Examples()
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(examples), convey.ShouldEqual, 1)
		convey.So(examples[0].CrateType, convey.ShouldResemble, []LibraryType{LibraryTypeLib})
		convey.So(examples[0].RequiredFeatures, convey.ShouldResemble, []string{"extra"})

		platforms, err := m.TargetPlatforms()
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(platforms), convey.ShouldEqual, 1)
		convey.So(platforms[0].Spec, convey.ShouldEqual, `cfg(unix)`)
		convey.So(*platforms[0].Dependencies[0].Dependency.Version, convey.ShouldEqual, "0.2")
	})
}

func TestFeaturesTable(t *testing.T) {
	convey.Convey("the features table maps names to their requirement lists", t, func() {
		src := `
[features]
default = ["std"]
std = []
extra = ["dep:serde", "std"]
`
		m := mustManifest(t, src)
		features, err := m.Features()
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(features), convey.ShouldEqual, 3)
		convey.So(features[0].Name, convey.ShouldEqual, "default")
		convey.So(features[0].Requires, convey.ShouldResemble, []string{"std"})
	})
}

func TestWorkspace(t *testing.T) {
	convey.Convey("a workspace table with members and shared package defaults", t, func() {
		src := `
[workspace]
resolver = "2"
members = ["crates/*"]
exclude = ["crates/experimental"]

[workspace.package]
version = "0.5.0"
edition = "2024"

[workspace.dependencies]
serde = "1.0"
`
		m := mustManifest(t, src)
		ws, err := m.Workspace()
		convey.So(err, convey.ShouldBeNil)
		convey.So(ws, convey.ShouldNotBeNil)
		convey.So(*ws.Resolver, convey.ShouldEqual, Resolver2)
		convey.So(ws.Members, convey.ShouldResemble, []string{"crates/*"})
		convey.So(ws.Exclude, convey.ShouldResemble, []string{"crates/experimental"})
		convey.So(*ws.Package.Version, convey.ShouldEqual, "0.5.0")
		convey.So(*ws.Package.Edition, convey.ShouldEqual, Edition2024)
		convey.So(len(ws.Dependencies), convey.ShouldEqual, 1)
	})

	convey.Convey("a manifest without a workspace table returns nil, not an error", t, func() {
		m := mustManifest(t, "[package]\nname = \"solo\"\n")
		ws, err := m.Workspace()
		convey.So(err, convey.ShouldBeNil)
		convey.So(ws, convey.ShouldBeNil)
	})
}
