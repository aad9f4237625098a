// Package value implements the generic TOML value tree (spec §3): the
// handoff between the parser and any consumer, such as the Cargo
// projection in package cargo.
//
// The shape is carried over from capyflow-aq's parse/toml package (a
// Node interface with Kind(), implemented by Table/Array/Value) but
// generalized: Table gained an ordered-entries-plus-index layout and a
// TableKind tag (capyflow used a bare map and tracked no redefinition
// state at all), and Value gained a structured Datetime instead of
// reusing time.Time.
package value

// Kind is the tag of a Node.
type Kind uint8

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBool
	KindDatetime
	KindArray
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDatetime:
		return "datetime"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Node is any value in the tree: a scalar Value, an Array, or a Table.
type Node interface {
	Kind() Kind
}

// Value is a scalar: string, integer, float, bool, or datetime.
type Value struct {
	kind Kind
	str  string
	i    int64
	f    float64
	b    bool
	dt   Datetime
}

func (v *Value) Kind() Kind { return v.kind }

// NewString builds a string scalar.
func NewString(s string) *Value { return &Value{kind: KindString, str: s} }

// NewInteger builds an integer scalar.
func NewInteger(i int64) *Value { return &Value{kind: KindInteger, i: i} }

// NewFloat builds a float scalar.
func NewFloat(f float64) *Value { return &Value{kind: KindFloat, f: f} }

// NewBool builds a bool scalar.
func NewBool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// NewDatetime builds a datetime scalar.
func NewDatetime(dt Datetime) *Value { return &Value{kind: KindDatetime, dt: dt} }

// AsString returns the string value and whether v is a string.
func (v *Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsInt returns the integer value and whether v is an integer.
func (v *Value) AsInt() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	return v.i, true
}

// AsFloat returns the float value and whether v is a float.
func (v *Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

// AsBool returns the bool value and whether v is a bool.
func (v *Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsDatetime returns the datetime value and whether v is a datetime.
func (v *Value) AsDatetime() (Datetime, bool) {
	if v.kind != KindDatetime {
		return Datetime{}, false
	}
	return v.dt, true
}

// ToUntyped recursively converts a Node into plain Go values (string,
// int64, float64, bool, Datetime, []any, map[string]any). Ported from
// capyflow's ToUntyped, which performs the same reduction over its own
// Node/Table/Array/Value shape.
func ToUntyped(n Node) any {
	switch v := n.(type) {
	case *Value:
		switch v.kind {
		case KindString:
			return v.str
		case KindInteger:
			return v.i
		case KindFloat:
			return v.f
		case KindBool:
			return v.b
		case KindDatetime:
			return v.dt
		}
		return nil
	case *Array:
		out := make([]any, v.Len())
		for i, elem := range v.elems {
			out[i] = ToUntyped(elem)
		}
		return out
	case *Table:
		keys := v.Keys()
		m := make(map[string]any, len(keys))
		for _, k := range keys {
			child, _ := v.Get(k)
			m[k] = ToUntyped(child)
		}
		return m
	default:
		return nil
	}
}
