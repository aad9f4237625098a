package cargo

import (
	"strings"

	"github.com/zeenix/tomling/internal/perr"
	"github.com/zeenix/tomling/internal/value"
)

// Author is a parsed `[package] authors` entry: a name and an optional
// email, split on the Cargo convention `"name <email>"` (ported from
// original_source's Author::try_from).
type Author struct {
	Name  string
	Email *string
}

func parseAuthor(s string) Author {
	if i := strings.Index(s, " <"); i >= 0 && strings.HasSuffix(s, ">") {
		name := s[:i]
		email := s[i+2 : len(s)-1]
		return Author{Name: name, Email: &email}
	}
	return Author{Name: s}
}

func decodeAuthorsNode(field string) func(value.Node) ([]Author, error) {
	return func(n value.Node) ([]Author, error) {
		arr, ok := n.(*value.Array)
		if !ok {
			return nil, perr.NewSchema(field, "expected an array of author strings")
		}
		out := make([]Author, 0, arr.Len())
		for _, el := range arr.Iter() {
			v, ok := el.(*value.Value)
			if !ok {
				return nil, perr.NewSchema(field, "expected an array of author strings")
			}
			s, ok := v.AsString()
			if !ok {
				return nil, perr.NewSchema(field, "expected an array of author strings")
			}
			out = append(out, parseAuthor(s))
		}
		return out, nil
	}
}
