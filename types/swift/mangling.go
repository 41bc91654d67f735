package swift

// Markers of the mangling scheme understood by the demangler.
const (
	// SymbolPrefix opens every mangled symbol.
	SymbolPrefix = "$S"
	// FunctionEntitySuffix closes a function entity.
	FunctionEntitySuffix = "F"
	// KnownTypePrefix starts every standard substitution code.
	KnownTypePrefix = 'S'
	// StandardNamespace qualifies rendered primitive types.
	StandardNamespace = "Std"
)
