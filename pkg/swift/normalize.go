package swift

import "strings"

// Disassemblers and crash reports may print a keyword ahead of the symbol.
var declarationKeywords = []string{"func ", "method "}

// NormalizeIdentifier returns the rendered signature when name holds a mangled
// function entity, and name unchanged otherwise.
func NormalizeIdentifier(name string) string {
	if out, ok := TryNormalizeIdentifier(name); ok {
		return out
	}
	return name
}

// TryNormalizeIdentifier decodes name, which may carry a leading declaration
// keyword and the linker underscore. The keyword is kept in the output.
func TryNormalizeIdentifier(name string) (string, bool) {
	keyword, symbol := splitKeyword(strings.TrimSpace(name))
	symbol = TrimLinkerPrefix(symbol)
	if !IsFunctionSymbol(symbol) {
		return name, false
	}
	out, err := Demangle(symbol)
	if err != nil {
		return name, false
	}
	return keyword + out, true
}

func splitKeyword(s string) (string, string) {
	for _, kw := range declarationKeywords {
		if strings.HasPrefix(s, kw) {
			return kw, strings.TrimSpace(s[len(kw):])
		}
	}
	return "", s
}
