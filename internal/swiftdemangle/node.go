package swiftdemangle

import "github.com/appsworld/go-swiftdemangle/types/swift"

// Symbol is a length-prefixed identifier recovered from a mangled name.
type Symbol struct {
	Identifier string
	Length     int
}

// Primitive identifies one of the standard types a substitution code can name.
type Primitive uint8

const (
	Bool Primitive = iota + 1
	Int
	String
	Float
)

// baseCodes maps the character following swift.KnownTypePrefix to the
// primitive it substitutes.
var baseCodes = map[byte]Primitive{
	'b': Bool,
	'i': Int,
	'S': String,
	'f': Float,
}

func (p Primitive) String() string {
	switch p {
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case String:
		return "String"
	case Float:
		return "Float"
	default:
		return "unknown"
	}
}

// Qualified returns the namespace-qualified spelling, e.g. "Std.Int".
func (p Primitive) Qualified() string {
	return swift.StandardNamespace + "." + p.String()
}

// Type is a decoded type: either a single primitive or a flat aggregate of
// primitives. Aggregate elements are primitives, so aggregates never nest.
type Type struct {
	Primitive Primitive
	List      bool
	Elems     []Primitive
}

// Scalar returns the primitive type p.
func Scalar(p Primitive) Type {
	return Type{Primitive: p}
}

// ListOf returns an aggregate holding elems in order.
func ListOf(elems ...Primitive) Type {
	return Type{List: true, Elems: append([]Primitive(nil), elems...)}
}

// Len reports the number of aggregate elements; zero for primitives.
func (t Type) Len() int {
	if !t.List {
		return 0
	}
	return len(t.Elems)
}

// FunctionSignature pairs a return type with the aggregate of parameter types.
type FunctionSignature struct {
	ReturnType Type
	ArgsType   Type
}
