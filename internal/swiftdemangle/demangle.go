package swiftdemangle

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Param is a labelled parameter of a decoded function.
type Param struct {
	Label string
	Type  Primitive
}

// Function is a decoded function entity.
type Function struct {
	Module    Symbol
	Name      Symbol
	Labels    []Symbol
	Signature FunctionSignature
}

// Params pairs labels with parameter types by position. Pairing stops at the
// shorter of the two; see Arity for detecting the difference.
func (f *Function) Params() []Param {
	n := len(f.Labels)
	if len(f.Signature.ArgsType.Elems) < n {
		n = len(f.Signature.ArgsType.Elems)
	}
	params := make([]Param, n)
	for i := 0; i < n; i++ {
		params[i] = Param{
			Label: f.Labels[i].Identifier,
			Type:  f.Signature.ArgsType.Elems[i],
		}
	}
	return params
}

// Arity returns an error wrapping ErrLengthMismatch when the number of labels
// differs from the number of parameter types.
func (f *Function) Arity() error {
	labels, types := len(f.Labels), f.Signature.ArgsType.Len()
	if labels != types {
		return fmt.Errorf("%s.%s: %d labels, %d parameter types: %w",
			f.Module.Identifier, f.Name.Identifier, labels, types, ErrLengthMismatch)
	}
	return nil
}

// String implements fmt.Stringer for convenience.
func (f *Function) String() string {
	return FormatFunction(f)
}

// Demangler decodes mangled function entities. It keeps no state between
// calls and is safe for concurrent use.
type Demangler struct {
	log zerolog.Logger
}

// New returns a new demangler.
func New(opts ...Option) *Demangler {
	cfg := buildOptions(opts...)
	return &Demangler{
		log: cfg.log.With().Str("component", "swiftdemangle").Logger(),
	}
}

// DemangleString returns both the decoded function and its rendering.
func (d *Demangler) DemangleString(mangled string) (string, *Function, error) {
	fn, err := d.DemangleFunction(mangled)
	if err != nil {
		return "", nil, err
	}
	return FormatFunction(fn), fn, nil
}

// DemangleFunction decodes the module, declaration name, parameter labels and
// signature of a mangled function entity.
func (d *Demangler) DemangleFunction(mangled string) (*Function, error) {
	symbols, err := ParseSymbols(mangled)
	if err != nil {
		return nil, fmt.Errorf("tokenize %q: %w", mangled, err)
	}
	if len(symbols) < 2 {
		return nil, fmt.Errorf("%q has %d identifier(s): %w", mangled, len(symbols), ErrIncompleteTokens)
	}
	d.log.Debug().
		Str("symbol", mangled).
		Int("tokens", len(symbols)).
		Msg("parsed identifiers")

	sig, err := ParseSignature(mangled)
	if err != nil {
		return nil, fmt.Errorf("signature of %q: %w", mangled, err)
	}
	if !sig.ArgsType.List {
		return nil, fmt.Errorf("signature of %q: parameters are not an aggregate: %w", mangled, ErrUnrecognizedTypeCode)
	}
	d.log.Debug().
		Str("symbol", mangled).
		Stringer("return", sig.ReturnType).
		Stringer("args", sig.ArgsType).
		Msg("parsed signature")

	fn := &Function{
		Module:    symbols[0],
		Name:      symbols[1],
		Labels:    symbols[2:],
		Signature: sig,
	}
	if err := fn.Arity(); err != nil {
		d.log.Warn().Err(err).Str("symbol", mangled).Msg("parameter labels truncated to shorter list")
	}
	return fn, nil
}
