// Package export renders a parsed configuration document in other formats.
// Values are written the way the typed accessors see them: one layer of
// surrounding double quotes removed.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dzjyyds666/iniq/parse/ini"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for format names Write does not support.
var ErrUnknownFormat = errors.New("export: unknown format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatTOML, FormatYAML}
}

// ParseFormat resolves a format name, ignoring case. "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, name)
}

// Write renders doc to w in format f.
func Write(w io.Writer, doc *ini.Document, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toMap(doc))
	case FormatTOML:
		return toml.NewEncoder(w).Encode(toMap(doc))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toNode(doc)); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, f)
}

func toMap(doc *ini.Document) map[string]map[string]string {
	out := make(map[string]map[string]string, doc.Len())
	for _, s := range doc.Sections() {
		entries := make(map[string]string, s.Len())
		for _, e := range s.Entries() {
			entries[e.Name] = e.Unquoted()
		}
		out[s.Name()] = entries
	}
	return out
}

// toNode keeps section and key order, which maps would lose.
func toNode(doc *ini.Document) *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range doc.Sections() {
		section := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range s.Entries() {
			section.Content = append(section.Content, str(e.Name), str(e.Unquoted()))
		}
		root.Content = append(root.Content, str(s.Name()), section)
	}
	return root
}

func str(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
