package swift

import "strings"

// TrimLinkerPrefix drops the underscore Mach-O symbol tables put in front of
// every C-level name.
func TrimLinkerPrefix(name string) string {
	return strings.TrimPrefix(name, "_")
}

// IsFunctionSymbol reports whether name, with or without the linker
// underscore, is a mangled function entity.
func IsFunctionSymbol(name string) bool {
	name = TrimLinkerPrefix(name)
	return IsMangledSymbol(name) && IsFunctionEntity(name)
}
