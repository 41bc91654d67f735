package swiftdemangle

import "errors"

var (
	// ErrMalformedLength reports an identifier whose declared length runs past the input.
	ErrMalformedLength = errors.New("malformed identifier length")
	// ErrUnrecognizedTypeCode reports a substring that is neither a base code nor an aggregate.
	ErrUnrecognizedTypeCode = errors.New("unrecognized type code")
	// ErrEmptySignature reports a signature without a single decodable type.
	ErrEmptySignature = errors.New("empty signature")
	// ErrIncompleteTokens reports a name without both a module and a declaration identifier.
	ErrIncompleteTokens = errors.New("incomplete identifier tokens")
	// ErrLengthMismatch reports differing parameter label and type counts.
	ErrLengthMismatch = errors.New("parameter label and type counts differ")
)
