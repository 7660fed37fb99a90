package ini

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/text/transform"
)

// =========================
// Public API
// =========================

// Load opens path and parses it. Open failures wrap ErrOpen.
func Load(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// Parse reads r to the end and returns the resulting Document.
//
// Malformed lines are skipped. A read error part way through is treated as
// the end of input: it is logged and the entries read so far are returned.
// An empty input yields a Document with no sections.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	o := newOptions(opts)

	// the BOM is stripped from the raw bytes, before any decoding
	if o.encoding != nil {
		br := bufio.NewReader(r)
		skipBOM(br)
		r = transform.NewReader(br, o.encoding.NewDecoder())
	}

	lr := newLineReader(r, o.bufferSize)
	b := newBuilder(o.logger)
	for {
		line, ok := lr.Next()
		if !ok {
			break
		}
		b.apply(lr.startNo, classify(line))
	}

	if err := lr.Err(); err != nil {
		o.logger.Warn().
			Err(err).
			Str("event", "ini.read_error").
			Int("line", lr.lineNo).
			Msg("read failed, keeping lines read so far")
	}

	logDocument(o.logger, b.doc)
	return b.doc, nil
}

func logDocument(logger zerolog.Logger, doc *Document) {
	if e := logger.Debug(); e.Enabled() {
		names := make([]string, 0, doc.Len())
		for _, s := range doc.sections {
			names = append(names, s.name)
		}
		e.Str("event", "ini.loaded").
			Strs("sections", names).
			Msg("document loaded")
	}

	if logger.GetLevel() > zerolog.TraceLevel {
		return
	}
	for _, s := range doc.sections {
		for _, entry := range s.entries {
			logger.Trace().
				Str("section", s.name).
				Str("key", entry.Name).
				Str("value", entry.Value).
				Msg("entry")
		}
	}
}
