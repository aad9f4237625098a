// Package tomling parses TOML 1.0 documents into a generic value tree and
// optionally projects that tree onto a Cargo manifest shape (package
// cargo). It performs no I/O; callers supply the document bytes and
// receive an owned tree back.
package tomling

import (
	"github.com/zeenix/tomling/cargo"
	"github.com/zeenix/tomling/internal/parser"
	"github.com/zeenix/tomling/internal/perr"
	"github.com/zeenix/tomling/internal/value"
)

// ErrorKind categorizes why a parse or projection failed (§7).
type ErrorKind = perr.Kind

const (
	ErrorLex       = perr.KindLex
	ErrorNumber    = perr.KindNumber
	ErrorDatetime  = perr.KindDatetime
	ErrorSyntax    = perr.KindSyntax
	ErrorStructure = perr.KindStructure
	ErrorDepth     = perr.KindDepth
	ErrorSchema    = perr.KindSchema
)

// Error is the single error type produced by this module (§6, §7): a
// kind, a byte offset (parser errors) or dotted field path (projection
// errors), and optional human-readable context.
type Error = perr.Error

// Document is the parsed generic value tree (§3): an ordered mapping from
// string key to Value/Array/Table, rooted at kind TableRoot.
type Document = value.Table

// Parse converts TOML source bytes into a Document. Parsing is
// synchronous and allocates only for the returned tree (§5); it never
// panics, blocks, or performs I/O.
func Parse(data []byte) (*Document, error) {
	root, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}
	return root, nil
}

// Decode parses data and projects the result onto a Cargo manifest shape
// (§4.E). It is the from_str(text) → typed_value entry point of §6,
// layered here rather than kept as a fully external collaborator since
// this module ships the Cargo projection itself.
func Decode(data []byte) (*cargo.Manifest, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cargo.NewManifest(doc), nil
}
