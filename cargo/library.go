package cargo

import "github.com/zeenix/tomling/internal/value"

// LibraryType is a `crate-type` entry (§4.E, original_source's
// LibraryType enum).
type LibraryType string

const (
	LibraryTypeLib       LibraryType = "lib"
	LibraryTypeRlib      LibraryType = "rlib"
	LibraryTypeDylib     LibraryType = "dylib"
	LibraryTypeCdylib    LibraryType = "cdylib"
	LibraryTypeStaticlib LibraryType = "staticlib"
	LibraryTypeProcMacro LibraryType = "proc-macro"
)

func decodeLibraryTypes(t *value.Table, field string) ([]LibraryType, error) {
	arr, err := getArray(t, "crate-type")
	if err != nil || arr == nil {
		return nil, err
	}
	strs, err := decodeStringArray(arr, field+".crate-type")
	if err != nil {
		return nil, err
	}
	out := make([]LibraryType, len(strs))
	for i, s := range strs {
		out[i] = LibraryType(s)
	}
	return out, nil
}

// Library is the `[lib]` target (§4.E, original_source's Library).
type Library struct {
	Name      *string
	Path      *string
	Test      *bool
	Bench     *bool
	Doc       *bool
	Doctest   *bool
	ProcMacro *bool
	Harness   *bool
	Edition   *string
	CrateType []LibraryType
}

func decodeLibrary(t *value.Table) (*Library, error) {
	const field = "lib"
	lib := &Library{}
	var err error
	if lib.Name, err = optString(t, field, "name"); err != nil {
		return nil, err
	}
	if lib.Path, err = optString(t, field, "path"); err != nil {
		return nil, err
	}
	if lib.Test, err = optBool(t, field, "test"); err != nil {
		return nil, err
	}
	if lib.Bench, err = optBool(t, field, "bench"); err != nil {
		return nil, err
	}
	if lib.Doc, err = optBool(t, field, "doc"); err != nil {
		return nil, err
	}
	if lib.Doctest, err = optBool(t, field, "doctest"); err != nil {
		return nil, err
	}
	if lib.ProcMacro, err = optBool(t, field, "proc-macro"); err != nil {
		return nil, err
	}
	if lib.Harness, err = optBool(t, field, "harness"); err != nil {
		return nil, err
	}
	if lib.Edition, err = optString(t, field, "edition"); err != nil {
		return nil, err
	}
	if lib.CrateType, err = decodeLibraryTypes(t, field); err != nil {
		return nil, err
	}
	return lib, nil
}
