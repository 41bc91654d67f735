package swiftdemangle

import (
	"fmt"
	"regexp"

	"github.com/appsworld/go-swiftdemangle/types/swift"
)

var (
	// baseCodePattern matches any two character substitution code.
	baseCodePattern = regexp.MustCompile(`S[biSf]`)
	// listPattern matches a standalone aggregate: codes, '_', codes, 't'.
	listPattern = regexp.MustCompile(`(?:S[biSf])+_(?:S[biSf])*t`)
	// typePattern drives the bulk scan. An aggregate opens at the code
	// directly before its separator, so earlier codes stay top-level types.
	typePattern = regexp.MustCompile(`S[biSf]_(?:S[biSf])*t|S[biSf]`)
)

// TypeParser decodes substitution codes into types. The zero value is ready
// to use and holds no state between calls.
type TypeParser struct{}

// Parse decodes a single base code ("Si") or, failing that, an aggregate.
func (tp TypeParser) Parse(code string) (Type, error) {
	if len(code) == 0 || code[0] != swift.KnownTypePrefix {
		return Type{}, fmt.Errorf("%q: %w", code, ErrUnrecognizedTypeCode)
	}
	if p, ok := lookupBaseCode(code); ok {
		return Scalar(p), nil
	}
	return tp.ParseList(code)
}

// ParseList decodes the first aggregate found in s.
func (tp TypeParser) ParseList(s string) (Type, error) {
	match := listPattern.FindString(s)
	if match == "" {
		return Type{}, fmt.Errorf("no aggregate in %q: %w", s, ErrUnrecognizedTypeCode)
	}
	return decodeAggregate(match)
}

// DecodeAll returns every top-level type occurring in s, in source order.
func (tp TypeParser) DecodeAll(s string) []Type {
	var types []Type
	for _, match := range typePattern.FindAllString(s, -1) {
		if p, ok := lookupBaseCode(match); ok {
			types = append(types, Scalar(p))
			continue
		}
		if t, err := decodeAggregate(match); err == nil {
			types = append(types, t)
		}
	}
	return types
}

func decodeAggregate(match string) (Type, error) {
	codes := baseCodePattern.FindAllString(match, -1)
	elems := make([]Primitive, 0, len(codes))
	for _, code := range codes {
		p, ok := lookupBaseCode(code)
		if !ok {
			return Type{}, fmt.Errorf("%q: %w", code, ErrUnrecognizedTypeCode)
		}
		elems = append(elems, p)
	}
	return ListOf(elems...), nil
}

func lookupBaseCode(code string) (Primitive, bool) {
	if len(code) != 2 || code[0] != swift.KnownTypePrefix {
		return 0, false
	}
	p, ok := baseCodes[code[1]]
	return p, ok
}
