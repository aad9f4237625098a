package cargo

import (
	"strconv"

	"github.com/zeenix/tomling/internal/perr"
	"github.com/zeenix/tomling/internal/value"
)

// RustEdition is the Rust edition a package or target declares (§4.E).
type RustEdition uint8

const (
	Edition2015 RustEdition = iota
	Edition2018
	Edition2021
	Edition2024
)

func (e RustEdition) String() string {
	switch e {
	case Edition2015:
		return "2015"
	case Edition2018:
		return "2018"
	case Edition2021:
		return "2021"
	case Edition2024:
		return "2024"
	default:
		return "unknown"
	}
}

func parseRustEdition(field, s string) (RustEdition, error) {
	switch s {
	case "2015":
		return Edition2015, nil
	case "2018":
		return Edition2018, nil
	case "2021":
		return Edition2021, nil
	case "2024":
		return Edition2024, nil
	default:
		return 0, perr.NewSchema(field, "unknown edition "+strconv.Quote(s))
	}
}

func decodeEditionNode(field string) func(value.Node) (RustEdition, error) {
	return func(n value.Node) (RustEdition, error) {
		v, ok := n.(*value.Value)
		if !ok {
			return 0, perr.NewSchema(field, "expected a string")
		}
		s, ok := v.AsString()
		if !ok {
			return 0, perr.NewSchema(field, "expected a string")
		}
		return parseRustEdition(field, s)
	}
}
