// Package launcher reads the game launcher's settings from launcher.ini.
package launcher

import (
	"github.com/dzjyyds666/iniq/parse/ini"
)

const (
	// DefaultFile is the file the launcher reads next to its executable.
	DefaultFile = "launcher.ini"

	// DefaultTitle is the window title used when the file sets none.
	DefaultTitle = "<Untitled game launcher>"
)

// Setup is what the launcher needs from its configuration file.
type Setup struct {
	Title      string
	GamePath   string
	EditorPath string
}

// FromDocument reads the setup from doc. Missing keys, or a nil doc, fall
// back to the defaults.
func FromDocument(doc *ini.Document) Setup {
	var s Setup
	s.Title, _ = doc.ReadString("main", "title", DefaultTitle)
	s.GamePath, _ = doc.ReadString("app", "game", "")
	s.EditorPath, _ = doc.ReadString("app", "editor", "")
	return s
}

// Load reads path and returns its setup. When the file cannot be opened the
// defaults are returned together with the error.
func Load(path string, opts ...ini.Option) (Setup, error) {
	doc, err := ini.Load(path, opts...)
	return FromDocument(doc), err
}

// HasGame reports whether a game executable is configured.
func (s Setup) HasGame() bool { return s.GamePath != "" }

// HasEditor reports whether an editor executable is configured.
func (s Setup) HasEditor() bool { return s.EditorPath != "" }
