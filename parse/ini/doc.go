// Package ini implements a read-only parser for line-oriented, section-keyed
// configuration files and a typed lookup layer over the parsed document.
//
// Scope:
// - "[section]" headers, "key = value" entries, ';' and '#' comments
// - backslash line continuation
// - UTF-8 BOM skipping, optional legacy code page decoding
// - implicit "global" section for entries before any header
// - repeated sections merge, repeated keys overwrite (last value wins)
// - typed accessors with caller defaults and a tri-state Status
//
// Non-goals (by design):
// - Writing or round-tripping files
// - Comment preservation
// - Diagnostics: a malformed line is skipped, never reported as an error
//
// A Document is immutable once Parse or Load returns it and may be read
// from many goroutines at once.
package ini
