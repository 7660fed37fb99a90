package ini

import "strings"

type lineKind uint8

const (
	lineBlank lineKind = iota
	lineComment
	lineMalformed
	lineSection
	lineEntry
)

func (k lineKind) String() string {
	switch k {
	case lineBlank:
		return "blank"
	case lineComment:
		return "comment"
	case lineMalformed:
		return "malformed"
	case lineSection:
		return "section"
	case lineEntry:
		return "entry"
	}
	return "unknown"
}

// classified is one logical line after classification. name holds the
// section name for lineSection and the key for lineEntry.
type classified struct {
	kind  lineKind
	name  string
	value string
}

// classify decides what a logical line is. It never fails: anything it
// cannot make sense of comes back as lineMalformed and is skipped by the
// builder.
func classify(line string) classified {
	s := strings.Trim(line, spaceChars)

	switch {
	case s == "":
		return classified{kind: lineBlank}
	case s[0] == ';' || s[0] == '#':
		return classified{kind: lineComment}
	}

	if len(s) >= 3 && s[0] == '[' && s[len(s)-1] == ']' {
		name := strings.Trim(s[1:len(s)-1], spaceChars)
		if name == "" {
			return classified{kind: lineMalformed}
		}
		return classified{kind: lineSection, name: name}
	}

	idx := strings.IndexByte(s, '=')
	if idx < 0 {
		return classified{kind: lineMalformed}
	}
	key := strings.TrimRight(s[:idx], spaceChars)
	if key == "" {
		return classified{kind: lineMalformed}
	}
	return classified{
		kind:  lineEntry,
		name:  key,
		value: strings.TrimLeft(s[idx+1:], spaceChars),
	}
}
