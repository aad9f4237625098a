package parser

import (
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/zeenix/tomling/internal/value"
)

func mustParse(t *testing.T, src string) *value.Table {
	t.Helper()
	root, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return root
}

func TestScalarsAndDottedKeys(t *testing.T) {
	convey.Convey("a document of bare scalars and dotted keys", t, func() {
		src := `
name = "tomling"
version = 1
pi = 3.14
enabled = true
owner.name = "zeenix"
owner.id = 7
`
		root := mustParse(t, src)

		convey.Convey("top level scalars decode to their typed values", func() {
			n, ok := root.Get("name")
			convey.So(ok, convey.ShouldBeTrue)
			s, ok := n.(*value.Value).AsString()
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(s, convey.ShouldEqual, "tomling")
		})

		convey.Convey("a dotted key path creates an implicit intermediate table", func() {
			n, ok := root.Get("owner")
			convey.So(ok, convey.ShouldBeTrue)
			owner, ok := n.(*value.Table)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(owner.TableKind(), convey.ShouldEqual, value.TableImplicit)
			nameNode, ok := owner.Get("name")
			convey.So(ok, convey.ShouldBeTrue)
			s, _ := nameNode.(*value.Value).AsString()
			convey.So(s, convey.ShouldEqual, "zeenix")
		})
	})
}

func TestHeaderThenDottedAssembly(t *testing.T) {
	convey.Convey("an explicit header followed by a dotted sub-table header under it", t, func() {
		src := `
[server]
host = "localhost"

[server.limits]
max_conns = 10
`
		root := mustParse(t, src)
		n, ok := root.Get("server")
		convey.So(ok, convey.ShouldBeTrue)
		server := n.(*value.Table)
		convey.So(server.TableKind(), convey.ShouldEqual, value.TableExplicit)

		limitsNode, ok := server.Get("limits")
		convey.So(ok, convey.ShouldBeTrue)
		limits := limitsNode.(*value.Table)
		convey.So(limits.TableKind(), convey.ShouldEqual, value.TableExplicit)
		mc, _ := limits.Get("max_conns")
		i, _ := mc.(*value.Value).AsInt()
		convey.So(i, convey.ShouldEqual, 10)
	})
}

func TestArrayOfTablesExtension(t *testing.T) {
	convey.Convey("array-of-tables, including a dotted path into the last element", t, func() {
		src := `
[[fruits]]
name = "apple"

[fruits.variety]
name = "red delicious"

[[fruits]]
name = "banana"
`
		root := mustParse(t, src)
		n, ok := root.Get("fruits")
		convey.So(ok, convey.ShouldBeTrue)
		arr := n.(*value.Array)
		convey.So(arr.Len(), convey.ShouldEqual, 2)

		first, _ := arr.Get(0)
		firstTable := first.(*value.Table)
		nameNode, _ := firstTable.Get("name")
		s, _ := nameNode.(*value.Value).AsString()
		convey.So(s, convey.ShouldEqual, "apple")

		varietyNode, ok := firstTable.Get("variety")
		convey.So(ok, convey.ShouldBeTrue)
		variety := varietyNode.(*value.Table)
		vn, _ := variety.Get("name")
		vs, _ := vn.(*value.Value).AsString()
		convey.So(vs, convey.ShouldEqual, "red delicious")

		second, _ := arr.Get(1)
		secondTable := second.(*value.Table)
		sn, _ := secondTable.Get("name")
		ss, _ := sn.(*value.Value).AsString()
		convey.So(ss, convey.ShouldEqual, "banana")
	})
}

func TestInlineTablesAndArraysAreSealed(t *testing.T) {
	convey.Convey("an inline table cannot be extended after its closing brace", t, func() {
		src := `point = { x = 1, y = 2 }

[point.z]
v = 3
`
		_, err := Parse([]byte(src))
		convey.So(err, convey.ShouldNotBeNil)
	})

	convey.Convey("a heterogeneous, multi-line, trailing-comma array parses fine", t, func() {
		src := `
mixed = [
  1,
  "two",
  true, # trailing comment
]
`
		root := mustParse(t, src)
		n, _ := root.Get("mixed")
		arr := n.(*value.Array)
		convey.So(arr.Len(), convey.ShouldEqual, 3)
	})

	convey.Convey("an array-of-tables header cannot extend a name already bound to an inline array", t, func() {
		src := "a = [1, 2]\n[[a]]\n"
		_, err := Parse([]byte(src))
		convey.So(err, convey.ShouldNotBeNil)
	})
}

func TestDuplicateKeyIsRejected(t *testing.T) {
	convey.Convey("redefining a key in the same table errors", t, func() {
		_, err := Parse([]byte("a = 1\na = 2\n"))
		convey.So(err, convey.ShouldNotBeNil)
	})
}

func TestStringsAndEscapes(t *testing.T) {
	convey.Convey("basic string escapes, literal strings and multi-line strings decode correctly", t, func() {
		src := "basic = \"line1\\nline2\\t\\u00e9\"\n" +
			"lit = 'C:\\Users\\nope'\n" +
			"multi = \"\"\"\nfirst line\ncontinues\"\"\"\n"
		root := mustParse(t, src)

		n, _ := root.Get("basic")
		s, _ := n.(*value.Value).AsString()
		convey.So(s, convey.ShouldEqual, "line1\nline2\t\u00e9")

		n, _ = root.Get("lit")
		s, _ = n.(*value.Value).AsString()
		convey.So(s, convey.ShouldEqual, `C:\Users\nope`)

		n, _ = root.Get("multi")
		s, _ = n.(*value.Value).AsString()
		convey.So(strings.HasPrefix(s, "first line"), convey.ShouldBeTrue)
	})
}

func TestNumbersAndDatetimes(t *testing.T) {
	convey.Convey("integers, floats and datetimes in their various forms", t, func() {
		src := `
hex = 0xFF
oct = 0o17
bin = 0b1010
under = 1_000_000
flt = 1.5e10
neg_inf = -inf
odt = 1979-05-27T07:32:00Z
ld = 1979-05-27
lt = 07:32:00
`
		root := mustParse(t, src)

		n, _ := root.Get("hex")
		i, _ := n.(*value.Value).AsInt()
		convey.So(i, convey.ShouldEqual, 255)

		n, _ = root.Get("under")
		i, _ = n.(*value.Value).AsInt()
		convey.So(i, convey.ShouldEqual, 1000000)

		n, _ = root.Get("flt")
		f, _ := n.(*value.Value).AsFloat()
		convey.So(f, convey.ShouldEqual, 1.5e10)

		n, _ = root.Get("odt")
		dt, ok := n.(*value.Value).AsDatetime()
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(dt.Variant(), convey.ShouldEqual, value.VariantOffsetDateTime)

		n, _ = root.Get("ld")
		dt, _ = n.(*value.Value).AsDatetime()
		convey.So(dt.Variant(), convey.ShouldEqual, value.VariantLocalDate)

		n, _ = root.Get("lt")
		dt, _ = n.(*value.Value).AsDatetime()
		convey.So(dt.Variant(), convey.ShouldEqual, value.VariantLocalTime)
	})

	convey.Convey("a space-delimited date-time joins into a single local date-time value", t, func() {
		root := mustParse(t, "x = 1979-05-27 07:32:00\n")
		n, _ := root.Get("x")
		dt, ok := n.(*value.Value).AsDatetime()
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(dt.Variant(), convey.ShouldEqual, value.VariantLocalDateTime)
	})

	convey.Convey("a space-delimited date-time with an offset joins into a single offset date-time value", t, func() {
		root := mustParse(t, "x = 1979-05-27 07:32:00-07:00\n")
		n, _ := root.Get("x")
		dt, ok := n.(*value.Value).AsDatetime()
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(dt.Variant(), convey.ShouldEqual, value.VariantOffsetDateTime)
	})
}

func TestDepthLimitIsEnforced(t *testing.T) {
	convey.Convey("deeply nested inline tables past the depth bound error", t, func() {
		var b strings.Builder
		b.WriteString("v = ")
		for i := 0; i < MaxDepth+5; i++ {
			b.WriteString("{ a = ")
		}
		b.WriteString("1")
		for i := 0; i < MaxDepth+5; i++ {
			b.WriteString(" }")
		}
		_, err := Parse([]byte(b.String()))
		convey.So(err, convey.ShouldNotBeNil)
	})
}
