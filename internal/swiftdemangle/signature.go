package swiftdemangle

import "fmt"

// ParseSignature decodes a function type: the first type found is the return
// type and the remaining ones form the parameter list. Parameter aggregates
// ("Si_SSt") are spliced into that list so it stays single-level.
func ParseSignature(s string) (FunctionSignature, error) {
	types := TypeParser{}.DecodeAll(s)
	if len(types) == 0 {
		return FunctionSignature{}, fmt.Errorf("%q: %w", s, ErrEmptySignature)
	}

	var args []Primitive
	for _, t := range types[1:] {
		if t.List {
			args = append(args, t.Elems...)
			continue
		}
		args = append(args, t.Primitive)
	}

	return FunctionSignature{
		ReturnType: types[0],
		ArgsType:   ListOf(args...),
	}, nil
}
