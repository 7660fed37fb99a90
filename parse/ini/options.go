package ini

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Option configures Parse and Load.
type Option func(*options)

type options struct {
	logger     zerolog.Logger
	encoding   encoding.Encoding
	bufferSize int
}

func newOptions(opts []Option) options {
	o := options{
		logger:     zerolog.Nop(),
		bufferSize: defaultBufferSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithLogger routes parser diagnostics to l. The parser is silent by default.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithEncoding decodes the input from enc to UTF-8 before lines are read.
// A nil encoding keeps the raw bytes.
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *options) {
		o.encoding = enc
	}
}

// WithInitialBufferSize sets the starting capacity of the line buffer.
// The buffer doubles whenever a line does not fit.
func WithInitialBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// LookupEncoding resolves a WHATWG encoding label such as "windows-1251"
// or "latin1". Empty labels and UTF-8 resolve to nil: the bytes are used as is.
func LookupEncoding(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("ini: unknown encoding %q: %w", label, err)
	}
	if name, _ := htmlindex.Name(enc); name == "utf-8" {
		return nil, nil
	}
	return enc, nil
}
