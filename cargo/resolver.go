package cargo

import (
	"strconv"

	"github.com/zeenix/tomling/internal/perr"
)

// ResolverVersion is the Cargo dependency resolver version (§4.E: "{1, 2,
// 3}"). original_source's own ResolverVersion enum only defines V1/V2 —
// this module follows the specification's literal text, which names 3 as
// a valid value, over the narrower original (see DESIGN.md).
type ResolverVersion uint8

const (
	Resolver1 ResolverVersion = iota + 1
	Resolver2
	Resolver3
)

func (r ResolverVersion) String() string {
	switch r {
	case Resolver1:
		return "1"
	case Resolver2:
		return "2"
	case Resolver3:
		return "3"
	default:
		return "unknown"
	}
}

func parseResolverVersion(field, s string) (ResolverVersion, error) {
	switch s {
	case "1":
		return Resolver1, nil
	case "2":
		return Resolver2, nil
	case "3":
		return Resolver3, nil
	default:
		return 0, perr.NewSchema(field, "unknown resolver version "+strconv.Quote(s))
	}
}
