package cargo

import (
	"github.com/zeenix/tomling/internal/perr"
	"github.com/zeenix/tomling/internal/value"
)

// Inheritable is the two-variant view §4.E specifies for a `[package]`
// field that may carry a literal value or the `{ workspace = true }`
// sentinel (ported from original_source's WorkspaceInheritable<W>, whose
// two cases, Uninherited(W)/Inherited, this mirrors).
type Inheritable[T any] struct {
	inherited bool
	value     T
}

// Inherited reports whether this field defers to the workspace manifest.
func (i Inheritable[T]) Inherited() bool { return i.inherited }

// Value returns the literal value and true, or the zero value and false
// if the field is inherited.
func (i Inheritable[T]) Value() (T, bool) {
	if i.inherited {
		var zero T
		return zero, false
	}
	return i.value, true
}

func isWorkspaceSentinel(t *value.Table) bool {
	if t.Len() != 1 {
		return false
	}
	n, ok := t.Get("workspace")
	if !ok {
		return false
	}
	v, ok := n.(*value.Value)
	if !ok {
		return false
	}
	b, ok := v.AsBool()
	return ok && b
}

// decodeInheritable decodes the field at key on t: absent yields (nil,
// nil); the `{ workspace = true }` sentinel yields an Inherited view;
// anything else is passed to decode.
func decodeInheritable[T any](t *value.Table, key string, decode func(value.Node) (T, error)) (*Inheritable[T], error) {
	n, ok := t.Get(key)
	if !ok {
		return nil, nil
	}
	if tbl, ok := n.(*value.Table); ok && isWorkspaceSentinel(tbl) {
		return &Inheritable[T]{inherited: true}, nil
	}
	v, err := decode(n)
	if err != nil {
		return nil, err
	}
	return &Inheritable[T]{value: v}, nil
}

func decodeStringNode(field string) func(value.Node) (string, error) {
	return func(n value.Node) (string, error) {
		v, ok := n.(*value.Value)
		if !ok {
			return "", perr.NewSchema(field, "expected a string")
		}
		s, ok := v.AsString()
		if !ok {
			return "", perr.NewSchema(field, "expected a string")
		}
		return s, nil
	}
}

func decodeBoolNode(field string) func(value.Node) (bool, error) {
	return func(n value.Node) (bool, error) {
		v, ok := n.(*value.Value)
		if !ok {
			return false, perr.NewSchema(field, "expected a bool")
		}
		b, ok := v.AsBool()
		if !ok {
			return false, perr.NewSchema(field, "expected a bool")
		}
		return b, nil
	}
}

func decodeStringArrayNode(field string) func(value.Node) ([]string, error) {
	return func(n value.Node) ([]string, error) {
		arr, ok := n.(*value.Array)
		if !ok {
			return nil, perr.NewSchema(field, "expected an array of strings")
		}
		return decodeStringArray(arr, field)
	}
}
