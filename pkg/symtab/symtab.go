// Package symtab annotates symbol tables with demangled signatures.
package symtab

import (
	"fmt"
	"runtime"

	"github.com/gammazero/workerpool"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/appsworld/go-swiftdemangle/pkg/swift"
)

// Symbol is a symbol table entry together with its decoded form, if any.
type Symbol struct {
	Name      string
	Address   uint64
	Demangled string
	Function  *swift.Function
	Err       error
}

// Mangled reports whether the symbol looked like a mangled function entity.
func (s Symbol) Mangled() bool {
	return swift.IsFunctionSymbol(s.Name)
}

func (s Symbol) String() string {
	if s.Demangled == "" {
		return fmt.Sprintf("%#016x: %s", s.Address, s.Name)
	}
	return fmt.Sprintf("%#016x: %s", s.Address, s.Demangled)
}

type Option func(*Table)

// WithLogger sets the logger for the table and the demangler it drives.
func WithLogger(log zerolog.Logger) Option {
	return func(t *Table) {
		t.log = log
	}
}

// WithDemangleOptions passes opts to every decode.
func WithDemangleOptions(opts ...swift.Option) Option {
	return func(t *Table) {
		t.demangleOpts = append(t.demangleOpts, opts...)
	}
}

// WithWorkers bounds the number of concurrent decodes.
func WithWorkers(n int) Option {
	return func(t *Table) {
		if n > 0 {
			t.workers = n
		}
	}
}

// Table demangles batches of symbol names.
type Table struct {
	log          zerolog.Logger
	workers      int
	demangleOpts []swift.Option
}

// New returns a table using runtime.NumCPU workers and a no-op logger.
func New(opts ...Option) *Table {
	t := &Table{
		log:     zerolog.Nop(),
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.demangleOpts = append([]swift.Option{swift.WithLogger(t.log)}, t.demangleOpts...)
	t.log = t.log.With().Str("component", "symtab").Logger()
	return t
}

// DemangleNames decodes every name that carries the mangled function entity
// markers. Results keep the input order. Names that fail to decode keep their
// raw form, record the failure in Symbol.Err and contribute to the returned
// error.
func (t *Table) DemangleNames(names []string) ([]Symbol, error) {
	symbols := make([]Symbol, len(names))
	for i, name := range names {
		symbols[i] = Symbol{Name: name}
	}
	return t.demangle(symbols)
}

func (t *Table) demangle(symbols []Symbol) ([]Symbol, error) {
	wp := workerpool.New(t.workers)

	candidates := 0
	for i := range symbols {
		if !swift.IsFunctionSymbol(symbols[i].Name) {
			continue
		}
		candidates++
		sym := &symbols[i]
		wp.Submit(func() {
			fn, err := swift.DemangleFunction(swift.TrimLinkerPrefix(sym.Name), t.demangleOpts...)
			if err != nil {
				sym.Err = err
				return
			}
			sym.Function = fn
			sym.Demangled = fn.String()
		})
	}
	wp.StopWait()

	var errs *multierror.Error
	failed := 0
	for _, sym := range symbols {
		if sym.Err != nil {
			failed++
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", sym.Name, sym.Err))
		}
	}

	t.log.Debug().
		Int("symbols", len(symbols)).
		Int("candidates", candidates).
		Int("failed", failed).
		Msg("demangled symbol batch")

	return symbols, errs.ErrorOrNil()
}
