package ini

import "errors"

var (
	// ErrOpen is returned by Load when the configuration file cannot be opened.
	ErrOpen = errors.New("ini: open")

	// ErrNilReader is returned by Parse when it is handed a nil reader.
	ErrNilReader = errors.New("ini: nil reader")
)
