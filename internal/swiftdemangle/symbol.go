package swiftdemangle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/appsworld/go-swiftdemangle/types/swift"
)

var identifierPattern = regexp.MustCompile(`([0-9]+)([A-Za-z]+)`)

// IsMangledSymbol reports whether name carries the mangled symbol marker.
func IsMangledSymbol(name string) bool {
	return strings.HasPrefix(name, swift.SymbolPrefix)
}

// IsFunctionEntity reports whether name ends with the function entity marker.
func IsFunctionEntity(name string) bool {
	return strings.HasSuffix(name, swift.FunctionEntitySuffix)
}

// ParseSymbols extracts every length-prefixed identifier from name, in order.
//
// Candidates are digit runs immediately followed by letters. The identifier
// itself is the declared number of characters after the digits, which may
// extend past the letters that made the candidate match.
func ParseSymbols(name string) ([]Symbol, error) {
	matches := identifierPattern.FindAllStringSubmatchIndex(name, -1)
	symbols := make([]Symbol, 0, len(matches))
	for _, m := range matches {
		digits := name[m[2]:m[3]]
		length, err := strconv.Atoi(digits)
		if err != nil {
			return nil, fmt.Errorf("identifier at position %d: length %q: %w", m[2], digits, ErrMalformedLength)
		}
		ident, ok := takeRunes(name[m[3]:], length)
		if !ok {
			return nil, fmt.Errorf("identifier at position %d: declared length %d exceeds remaining input: %w", m[2], length, ErrMalformedLength)
		}
		symbols = append(symbols, Symbol{Identifier: ident, Length: length})
	}
	return symbols, nil
}

// takeRunes returns the first n characters of s.
func takeRunes(s string, n int) (string, bool) {
	end := 0
	for i := 0; i < n; i++ {
		if end >= len(s) {
			return "", false
		}
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return s[:end], true
}
