package ini

import (
	"slices"

	"github.com/rs/zerolog"
)

// GlobalSection names the implicit section that collects entries appearing
// before any "[section]" header. An empty section name in a lookup means
// this section.
const GlobalSection = "global"

// =========================
// Data Model
// =========================

// Entry is one key/value pair. Value is the raw trimmed text, quotes included.
type Entry struct {
	Name  string
	Value string
}

// Unquoted returns Value with one layer of surrounding double quotes removed.
func (e Entry) Unquoted() string {
	return unquote(e.Value)
}

// Section is a named, ordered group of entries with unique names.
type Section struct {
	name    string
	entries []Entry
	index   map[string]int
}

func newSection(name string) *Section {
	return &Section{name: name, index: make(map[string]int)}
}

// Name returns the section name as written in its header.
func (s *Section) Name() string { return s.name }

// Entries returns a copy of the section's entries in insertion order.
func (s *Section) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Len returns the number of entries.
func (s *Section) Len() int { return len(s.entries) }

// Get returns the entry named key.
func (s *Section) Get(key string) (Entry, bool) {
	i, ok := s.index[key]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// set overwrites key in place or appends it. It reports whether an
// existing entry was overwritten.
func (s *Section) set(key, value string) bool {
	if i, ok := s.index[key]; ok {
		s.entries[i].Value = value
		return true
	}
	s.index[key] = len(s.entries)
	s.entries = append(s.entries, Entry{Name: key, Value: value})
	return false
}

// Document is a parsed configuration file: an ordered sequence of sections
// with unique names. It is never modified after Parse returns.
type Document struct {
	sections []*Section
	index    map[string]int
}

func newDocument() *Document {
	return &Document{index: make(map[string]int)}
}

// Len returns the number of sections. A nil Document has none.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.sections)
}

// Sections returns the sections in the order they first appeared.
func (d *Document) Sections() []*Section {
	if d == nil {
		return nil
	}
	return slices.Clone(d.sections)
}

// Section returns the section with the exact given name. An empty name
// selects GlobalSection.
func (d *Document) Section(name string) (*Section, bool) {
	if d == nil {
		return nil, false
	}
	i, ok := d.index[normalizeSection(name)]
	if !ok {
		return nil, false
	}
	return d.sections[i], true
}

func (d *Document) find(name string) *Section {
	if i, ok := d.index[name]; ok {
		return d.sections[i]
	}
	return nil
}

func (d *Document) add(s *Section) {
	d.index[s.name] = len(d.sections)
	d.sections = append(d.sections, s)
}

// =========================
// Builder
// =========================

// builder folds classified lines into a Document in a single pass.
type builder struct {
	doc    *Document
	cur    *Section
	logger zerolog.Logger
}

func newBuilder(logger zerolog.Logger) *builder {
	return &builder{doc: newDocument(), logger: logger}
}

func (b *builder) apply(lineNo int, c classified) {
	switch c.kind {
	case lineSection:
		b.openSection(lineNo, c.name)
	case lineEntry:
		b.setEntry(lineNo, c.name, c.value)
	case lineMalformed:
		b.logger.Debug().
			Str("event", "ini.line_skipped").
			Int("line", lineNo).
			Msg("malformed line skipped")
	}
}

// openSection makes name the current section, reopening it when a header
// with the same name was seen before.
func (b *builder) openSection(lineNo int, name string) {
	if s := b.doc.find(name); s != nil {
		b.logger.Debug().
			Str("event", "ini.section_reopened").
			Str("section", name).
			Int("line", lineNo).
			Msg("appending to existing section")
		b.cur = s
		return
	}
	b.cur = newSection(name)
	b.doc.add(b.cur)
	b.logger.Debug().
		Str("event", "ini.section_created").
		Str("section", name).
		Int("line", lineNo).
		Msg("section created")
}

func (b *builder) setEntry(lineNo int, key, value string) {
	if b.cur == nil {
		b.openSection(lineNo, GlobalSection)
	}
	if b.cur.set(key, value) {
		b.logger.Debug().
			Str("event", "ini.key_overwritten").
			Str("section", b.cur.name).
			Str("key", key).
			Int("line", lineNo).
			Msg("key redefined, last value wins")
	}
}
