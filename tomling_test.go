package tomling

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/zeenix/tomling/internal/value"
)

func TestParse(t *testing.T) {
	convey.Convey("Parse returns a walkable document tree", t, func() {
		doc, err := Parse([]byte("name = \"widget\"\n[meta]\ntags = [\"a\", \"b\"]\n"))
		convey.So(err, convey.ShouldBeNil)
		n, ok := doc.Get("name")
		convey.So(ok, convey.ShouldBeTrue)
		s, _ := n.(*value.Value).AsString()
		convey.So(s, convey.ShouldEqual, "widget")
	})

	convey.Convey("Parse surfaces a typed Error on malformed input", t, func() {
		_, err := Parse([]byte("a = \n"))
		convey.So(err, convey.ShouldNotBeNil)
		var target *Error
		convey.So(err, convey.ShouldHaveSameTypeAs, target)
	})
}

func TestDecode(t *testing.T) {
	convey.Convey("Decode projects a document onto the Cargo manifest shape", t, func() {
		src := `
[package]
name = "widget"
version = "0.1.0"

[dependencies]
serde = "1.0"
`
		manifest, err := Decode([]byte(src))
		convey.So(err, convey.ShouldBeNil)

		pkg, err := manifest.Package()
		convey.So(err, convey.ShouldBeNil)
		name, err := pkg.Name()
		convey.So(err, convey.ShouldBeNil)
		convey.So(name, convey.ShouldEqual, "widget")

		deps, err := manifest.Dependencies()
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(deps), convey.ShouldEqual, 1)
		convey.So(deps[0].Name, convey.ShouldEqual, "serde")
	})

	convey.Convey("Decode propagates a parse error without attempting projection", t, func() {
		_, err := Decode([]byte("a = \n"))
		convey.So(err, convey.ShouldNotBeNil)
	})
}
