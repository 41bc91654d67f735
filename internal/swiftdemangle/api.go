package swiftdemangle

import (
	"regexp"

	"github.com/rs/zerolog"
)

var mangledTokenPattern = regexp.MustCompile(`\$S[A-Za-z0-9_]+`)

type Option func(*options)

type options struct {
	log zerolog.Logger
}

// WithLogger routes stage diagnostics to log.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// Demangle decodes a mangled function entity into its rendering.
func Demangle(mangled string, opts ...Option) (string, *Function, error) {
	return New(opts...).DemangleString(mangled)
}

// DemangleBlob replaces every mangled token found in blob with its rendering.
// Tokens that fail to decode are left untouched.
func DemangleBlob(blob string, opts ...Option) string {
	dem := New(opts...)
	return mangledTokenPattern.ReplaceAllStringFunc(blob, func(token string) string {
		out, _, err := dem.DemangleString(token)
		if err != nil {
			return token
		}
		return out
	})
}

func buildOptions(opts ...Option) options {
	cfg := options{log: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
