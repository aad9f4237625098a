package lexer

import (
	"math"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestCursorPrimitives(t *testing.T) {
	convey.Convey("a cursor over a short byte slice", t, func() {
		c := New([]byte("ab\nc"))
		convey.Convey("Peek does not advance, Advance does", func() {
			b, ok := c.Peek()
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(b, convey.ShouldEqual, byte('a'))
			convey.So(c.Pos(), convey.ShouldEqual, 0)
			c.Advance()
			convey.So(c.Pos(), convey.ShouldEqual, 1)
		})
		convey.Convey("HasPrefix matches at the current position only", func() {
			convey.So(c.HasPrefix("ab"), convey.ShouldBeTrue)
			c.Advance()
			convey.So(c.HasPrefix("ab"), convey.ShouldBeFalse)
			convey.So(c.HasPrefix("b"), convey.ShouldBeTrue)
		})
		convey.Convey("Eof is reported only once every byte is consumed", func() {
			convey.So(c.Eof(), convey.ShouldBeFalse)
			c.SkipN(4)
			convey.So(c.Eof(), convey.ShouldBeTrue)
		})
	})
}

func TestIntegerLiterals(t *testing.T) {
	convey.Convey("integer literal parsing", t, func() {
		convey.Convey("decimal, hex, octal and binary all parse", func() {
			for tok, want := range map[string]int64{
				"42":         42,
				"-17":        -17,
				"0xFF":       255,
				"0o17":       15,
				"0b1010":     10,
				"1_000_000":  1000000,
			} {
				got, err := ParseInteger(tok)
				convey.So(err, convey.ShouldBeNil)
				convey.So(got, convey.ShouldEqual, want)
			}
		})
		convey.Convey("a leading zero on a bare decimal is rejected", func() {
			_, err := ParseInteger("007")
			convey.So(err, convey.ShouldNotBeNil)
		})
		convey.Convey("a bare zero is accepted", func() {
			got, err := ParseInteger("0")
			convey.So(err, convey.ShouldBeNil)
			convey.So(got, convey.ShouldEqual, 0)
		})
		convey.Convey("an underscore must sit between two digits", func() {
			_, err := ParseInteger("1__000")
			convey.So(err, convey.ShouldNotBeNil)
			_, err = ParseInteger("_1000")
			convey.So(err, convey.ShouldNotBeNil)
			_, err = ParseInteger("1000_")
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestFloatLiterals(t *testing.T) {
	convey.Convey("float literal parsing", t, func() {
		convey.Convey("fractional and exponent forms parse", func() {
			f, err := ParseFloat("3.14")
			convey.So(err, convey.ShouldBeNil)
			convey.So(f, convey.ShouldEqual, 3.14)

			f, err = ParseFloat("1e10")
			convey.So(err, convey.ShouldBeNil)
			convey.So(f, convey.ShouldEqual, 1e10)
		})
		convey.Convey("signed infinity and nan are recognized", func() {
			f, err := ParseFloat("inf")
			convey.So(err, convey.ShouldBeNil)
			convey.So(math.IsInf(f, 1), convey.ShouldBeTrue)

			f, err = ParseFloat("-inf")
			convey.So(err, convey.ShouldBeNil)
			convey.So(math.IsInf(f, -1), convey.ShouldBeTrue)

			f, err = ParseFloat("nan")
			convey.So(err, convey.ShouldBeNil)
			convey.So(math.IsNaN(f), convey.ShouldBeTrue)
		})
		convey.Convey("a float without a fractional part or exponent is not float-shaped", func() {
			convey.So(LooksLikeFloat("42"), convey.ShouldBeFalse)
			convey.So(LooksLikeFloat("3.14"), convey.ShouldBeTrue)
			convey.So(LooksLikeFloat("1e10"), convey.ShouldBeTrue)
		})
	})
}

func TestDatetimeLiterals(t *testing.T) {
	convey.Convey("datetime token recognition", t, func() {
		convey.Convey("a full offset date-time parses with all three components", func() {
			dt, ok, err := ParseDatetime("1979-05-27T07:32:00Z")
			convey.So(err, convey.ShouldBeNil)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(dt.Date, convey.ShouldNotBeNil)
			convey.So(dt.Time, convey.ShouldNotBeNil)
			convey.So(dt.Offset, convey.ShouldNotBeNil)
		})
		convey.Convey("a bare local date has no time or offset", func() {
			dt, ok, err := ParseDatetime("1979-05-27")
			convey.So(err, convey.ShouldBeNil)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(dt.Time, convey.ShouldBeNil)
			convey.So(dt.Offset, convey.ShouldBeNil)
		})
		convey.Convey("a token that isn't date-shaped at all reports ok=false, not an error", func() {
			_, ok, err := ParseDatetime("hello")
			convey.So(err, convey.ShouldBeNil)
			convey.So(ok, convey.ShouldBeFalse)
		})
		convey.Convey("a date-shaped but invalid token errors", func() {
			_, ok, err := ParseDatetime("2021-13-40")
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestStringDecoding(t *testing.T) {
	convey.Convey("basic string escape decoding", t, func() {
		c := New([]byte(`"a\tb\u00e9" rest`))
		s, err := c.ReadBasicString()
		convey.So(err, convey.ShouldBeNil)
		convey.So(s, convey.ShouldEqual, "a\tbé")
	})

	convey.Convey("a lone surrogate escape is rejected", t, func() {
		c := New([]byte(`"\ud800"`))
		_, err := c.ReadBasicString()
		convey.So(err, convey.ShouldNotBeNil)
	})

	convey.Convey("a literal string performs no escape decoding", t, func() {
		c := New([]byte(`'C:\Users\nope'`))
		s, err := c.ReadLiteralString()
		convey.So(err, convey.ShouldBeNil)
		convey.So(s, convey.ShouldEqual, `C:\Users\nope`)
	})
}
