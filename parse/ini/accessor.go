package ini

import (
	"golang.org/x/text/cases"
)

// Status is the outcome of a typed lookup.
type Status int

const (
	// StatusError means the lookup could not be performed (empty key name).
	StatusError Status = -1
	// StatusFound means the value came from the document.
	StatusFound Status = 0
	// StatusUsedDefault means the section or key was absent and the
	// caller's default was returned.
	StatusUsedDefault Status = 1
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusUsedDefault:
		return "default"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Signed is the set of signed integer types ReadSigned accepts.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types ReadUnsigned accepts.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the set of floating point types ReadFloat accepts.
type Float interface {
	~float32 | ~float64
}

func normalizeSection(name string) string {
	if name == "" {
		return GlobalSection
	}
	return name
}

// unquote strips one layer of surrounding double quotes. A lone quote or
// an unbalanced one is left alone.
func unquote(v string) string {
	if len(v) > 1 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}

// Lookup returns the value of key in section with surrounding quotes
// stripped. An empty section name means GlobalSection. A nil Document
// finds nothing.
func (d *Document) Lookup(section, key string) (string, bool) {
	s, ok := d.Section(section)
	if !ok {
		return "", false
	}
	e, ok := s.Get(key)
	if !ok {
		return "", false
	}
	return unquote(e.Value), true
}

// ReadString returns the unquoted value of key, or def when it is absent.
func (d *Document) ReadString(section, key, def string) (string, Status) {
	if key == "" {
		return def, StatusError
	}
	if v, ok := d.Lookup(section, key); ok {
		return v, StatusFound
	}
	return def, StatusUsedDefault
}

// ReadSigned reads key as a signed integer of type T. Values wider than T
// are truncated the way a C cast would.
func ReadSigned[T Signed](d *Document, section, key string, def T) (T, Status) {
	s, status := d.ReadString(section, key, "")
	if status != StatusFound {
		return def, status
	}
	return T(parseIntPrefix(s)), StatusFound
}

// ReadUnsigned reads key as an unsigned integer of type T.
func ReadUnsigned[T Unsigned](d *Document, section, key string, def T) (T, Status) {
	s, status := d.ReadString(section, key, "")
	if status != StatusFound {
		return def, status
	}
	return T(parseUintPrefix(s)), StatusFound
}

// ReadFloat reads key as a floating point number of type T.
func ReadFloat[T Float](d *Document, section, key string, def T) (T, Status) {
	s, status := d.ReadString(section, key, "")
	if status != StatusFound {
		return def, status
	}
	return T(parseFloatPrefix(s)), StatusFound
}

// ReadBool reads key as a boolean. Only "true" and "false" in any letter
// case are recognized; any other text yields def with StatusFound.
func (d *Document) ReadBool(section, key string, def bool) (bool, Status) {
	s, status := d.ReadString(section, key, "")
	if status != StatusFound {
		return def, status
	}
	switch cases.Fold().String(s) {
	case "true":
		return true, StatusFound
	case "false":
		return false, StatusFound
	}
	return def, StatusFound
}

func (d *Document) ReadInt(section, key string, def int) (int, Status) {
	return ReadSigned(d, section, key, def)
}

func (d *Document) ReadInt8(section, key string, def int8) (int8, Status) {
	return ReadSigned(d, section, key, def)
}

func (d *Document) ReadInt16(section, key string, def int16) (int16, Status) {
	return ReadSigned(d, section, key, def)
}

func (d *Document) ReadInt32(section, key string, def int32) (int32, Status) {
	return ReadSigned(d, section, key, def)
}

func (d *Document) ReadInt64(section, key string, def int64) (int64, Status) {
	return ReadSigned(d, section, key, def)
}

func (d *Document) ReadUint(section, key string, def uint) (uint, Status) {
	return ReadUnsigned(d, section, key, def)
}

func (d *Document) ReadUint8(section, key string, def uint8) (uint8, Status) {
	return ReadUnsigned(d, section, key, def)
}

func (d *Document) ReadUint16(section, key string, def uint16) (uint16, Status) {
	return ReadUnsigned(d, section, key, def)
}

func (d *Document) ReadUint32(section, key string, def uint32) (uint32, Status) {
	return ReadUnsigned(d, section, key, def)
}

func (d *Document) ReadUint64(section, key string, def uint64) (uint64, Status) {
	return ReadUnsigned(d, section, key, def)
}

func (d *Document) ReadFloat32(section, key string, def float32) (float32, Status) {
	return ReadFloat(d, section, key, def)
}

func (d *Document) ReadFloat64(section, key string, def float64) (float64, Status) {
	return ReadFloat(d, section, key, def)
}
