package swiftdemangle

import "strings"

// Format renders the canonical spelling of a type: "Std.Int" for primitives,
// "(Std.Int, Std.String)" for aggregates.
func Format(t Type) string {
	if !t.List {
		return t.Primitive.Qualified()
	}
	elems := make([]string, 0, len(t.Elems))
	for _, elem := range t.Elems {
		elems = append(elems, elem.Qualified())
	}
	return "(" + strings.Join(elems, ", ") + ")"
}

// String implements fmt.Stringer for convenience.
func (t Type) String() string {
	return Format(t)
}

// FormatFunction renders "Module.name(label: Type, ...) -> Return".
func FormatFunction(f *Function) string {
	if f == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(f.Module.Identifier)
	sb.WriteByte('.')
	sb.WriteString(f.Name.Identifier)
	sb.WriteByte('(')
	for i, param := range f.Params() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(param.Label)
		sb.WriteString(": ")
		sb.WriteString(param.Type.Qualified())
	}
	sb.WriteString(") -> ")
	sb.WriteString(Format(f.Signature.ReturnType))
	return sb.String()
}
