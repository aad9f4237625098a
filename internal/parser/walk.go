package parser

import (
	"github.com/zeenix/tomling/internal/perr"
	"github.com/zeenix/tomling/internal/value"
)

// walkToParent walks all but the last segment of parts starting at start,
// creating implicit tables as needed, and returns the table the final
// segment should be resolved against.
func (p *parser) walkToParent(start *value.Table, parts []string) (*value.Table, *perr.Error) {
	cur := start
	for _, seg := range parts[:len(parts)-1] {
		next, err := p.stepInto(cur, seg)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// stepInto resolves seg as a child of cur: an absent key becomes a fresh
// implicit table; an existing root/explicit/implicit table is reused; an
// Array of array-element tables descends into its last element (so
// `[[fruits]]` followed by `[fruits.variety]` extends the most recent
// element); anything else is an error (§4.C item 1).
func (p *parser) stepInto(cur *value.Table, seg string) (*value.Table, *perr.Error) {
	if cur.Sealed() {
		return nil, perr.New(perr.KindStructure, p.cur.Pos(), "traversal into sealed table")
	}
	existing, ok := cur.Get(seg)
	if !ok {
		t := value.NewTable(value.TableImplicit)
		cur.Set(seg, t)
		return t, nil
	}
	switch n := existing.(type) {
	case *value.Table:
		switch n.TableKind() {
		case value.TableRoot, value.TableExplicit, value.TableImplicit:
			return n, nil
		default:
			return nil, perr.New(perr.KindStructure, p.cur.Pos(), "cannot traverse into "+n.TableKind().String()+" table")
		}
	case *value.Array:
		last, ok := n.Get(n.Len() - 1)
		if !ok {
			return nil, perr.New(perr.KindStructure, p.cur.Pos(), "cannot traverse into an empty array")
		}
		t, ok := last.(*value.Table)
		if !ok || t.TableKind() != value.TableArrayElement {
			return nil, perr.New(perr.KindStructure, p.cur.Pos(), "cannot traverse into a non-table array")
		}
		return t, nil
	default:
		return nil, perr.New(perr.KindStructure, p.cur.Pos(), "key already bound to a non-table value")
	}
}
