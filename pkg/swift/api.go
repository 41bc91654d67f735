package swift

import "github.com/appsworld/go-swiftdemangle/internal/swiftdemangle"

// Decoded forms returned by the demangler.
type (
	Function          = swiftdemangle.Function
	FunctionSignature = swiftdemangle.FunctionSignature
	Param             = swiftdemangle.Param
	Primitive         = swiftdemangle.Primitive
	Symbol            = swiftdemangle.Symbol
	Type              = swiftdemangle.Type
	Option            = swiftdemangle.Option
)

// Decode failures; test with errors.Is.
var (
	ErrMalformedLength      = swiftdemangle.ErrMalformedLength
	ErrUnrecognizedTypeCode = swiftdemangle.ErrUnrecognizedTypeCode
	ErrEmptySignature       = swiftdemangle.ErrEmptySignature
	ErrIncompleteTokens     = swiftdemangle.ErrIncompleteTokens
	ErrLengthMismatch       = swiftdemangle.ErrLengthMismatch
)

// WithLogger routes demangler diagnostics to a zerolog logger.
var WithLogger = swiftdemangle.WithLogger

// IsMangledSymbol reports whether name starts with the mangled symbol marker.
// It is a cheap pre-filter; Demangle does not require it.
func IsMangledSymbol(name string) bool {
	return swiftdemangle.IsMangledSymbol(name)
}

// IsFunctionEntity reports whether name ends with the function entity marker.
func IsFunctionEntity(name string) bool {
	return swiftdemangle.IsFunctionEntity(name)
}

// Demangle returns the rendered signature of a mangled function entity,
// e.g. "ExampleNumber.isEven(number: Std.Int) -> Std.Bool".
func Demangle(input string, opts ...Option) (string, error) {
	text, _, err := swiftdemangle.Demangle(input, opts...)
	if err != nil {
		return "", err
	}
	return text, nil
}

// DemangleFunction returns the decoded parts of a mangled function entity.
func DemangleFunction(input string, opts ...Option) (*Function, error) {
	return swiftdemangle.New(opts...).DemangleFunction(input)
}

// DemangleType returns the rendering of a single substitution code or
// aggregate, e.g. "Si" -> "Std.Int", "Si_SSt" -> "(Std.Int, Std.String)".
func DemangleType(input string) (string, error) {
	t, err := swiftdemangle.TypeParser{}.Parse(input)
	if err != nil {
		return "", err
	}
	return swiftdemangle.Format(t), nil
}

// DemangleBlob replaces every mangled token in blob with its demangled equivalent.
func DemangleBlob(blob string, opts ...Option) string {
	return swiftdemangle.DemangleBlob(blob, opts...)
}
