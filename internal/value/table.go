package value

// TableKind tags how a Table came to exist, driving the re-definition
// rules of spec §3 invariants 2-4.
type TableKind uint8

const (
	// TableRoot is the document root.
	TableRoot TableKind = iota
	// TableExplicit was materialized by a `[header]` line.
	TableExplicit
	// TableImplicit hosts a dotted intermediate, or a deeper `[header]`
	// seen before its own.
	TableImplicit
	// TableInline was built from `{ ... }` syntax.
	TableInline
	// TableArrayElement is an element of an array-of-tables.
	TableArrayElement
)

func (k TableKind) String() string {
	switch k {
	case TableRoot:
		return "root"
	case TableExplicit:
		return "explicit"
	case TableImplicit:
		return "implicit"
	case TableInline:
		return "inline"
	case TableArrayElement:
		return "array-element"
	default:
		return "unknown"
	}
}

// Table is an ordered mapping from string key to Node, preserving
// first-insertion order via a parallel key slice plus a side index for
// near-constant-time lookup (spec §9: "not a pure hash map").
type Table struct {
	kind   TableKind
	sealed bool
	keys   []string
	index  map[string]Node
}

// NewTable creates an empty table of the given kind.
func NewTable(kind TableKind) *Table {
	return &Table{kind: kind, index: make(map[string]Node)}
}

func (t *Table) Kind() Kind { return KindTable }

// TableKind reports how this table was created.
func (t *Table) TableKind() TableKind { return t.kind }

// SetTableKind re-tags the table, used when an implicit table is later
// promoted to explicit by a matching `[header]` line.
func (t *Table) SetTableKind(kind TableKind) { t.kind = kind }

// Sealed reports whether the table may no longer be extended (invariant 3:
// inline tables are sealed when their closing brace is parsed;
// array-element tables are not sealed).
func (t *Table) Sealed() bool { return t.sealed }

// Seal marks the table closed to further writes.
func (t *Table) Seal() { t.sealed = true }

// Get looks up a key, returning its Node and whether it was present.
func (t *Table) Get(key string) (Node, bool) {
	n, ok := t.index[key]
	return n, ok
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.index[key]
	return ok
}

// Set inserts or overwrites key with n, appending to the insertion order
// only the first time a key is seen.
func (t *Table) Set(key string, n Node) {
	if _, exists := t.index[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.index[key] = n
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.keys) }

// Keys returns the keys in insertion order. The returned slice must not
// be mutated by the caller.
func (t *Table) Keys() []string { return t.keys }

// Entry pairs a key with its Node, yielded by Iter in insertion order.
type Entry struct {
	Key   string
	Value Node
}

// Iter returns the table's entries in insertion order.
func (t *Table) Iter() []Entry {
	entries := make([]Entry, len(t.keys))
	for i, k := range t.keys {
		entries[i] = Entry{Key: k, Value: t.index[k]}
	}
	return entries
}
