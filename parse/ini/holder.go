package ini

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const defaultDebounce = 250 * time.Millisecond

// Holder keeps the latest Document loaded from a file and can reload it
// when the file changes. Each reload builds a new Document and swaps it in
// atomically; readers holding an older one keep a valid, unchanged value.
type Holder struct {
	path     string
	opts     []Option
	logger   zerolog.Logger
	debounce time.Duration

	current atomic.Pointer[Document]

	mu        sync.Mutex
	listeners []chan<- *Document
}

// NewHolder loads path and returns a Holder serving it.
func NewHolder(path string, opts ...Option) (*Holder, error) {
	doc, err := Load(path, opts...)
	if err != nil {
		return nil, err
	}
	h := &Holder{
		path:     filepath.Clean(path),
		opts:     opts,
		logger:   newOptions(opts).logger,
		debounce: defaultDebounce,
	}
	h.current.Store(doc)
	return h, nil
}

// Get returns the current Document.
func (h *Holder) Get() *Document {
	return h.current.Load()
}

// Path returns the file the Holder reads.
func (h *Holder) Path() string { return h.path }

// Reload parses the file again and swaps the result in. On failure the
// current Document is kept.
func (h *Holder) Reload() error {
	doc, err := Load(h.path, h.opts...)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("event", "ini.reload_failed").
			Str("path", h.path).
			Msg("reload failed, keeping current document")
		return fmt.Errorf("reload %s: %w", h.path, err)
	}
	h.current.Store(doc)
	h.notify(doc)

	h.logger.Info().
		Str("event", "ini.reloaded").
		Str("path", h.path).
		Int("sections", doc.Len()).
		Msg("configuration reloaded")
	return nil
}

// Subscribe registers ch to receive every Document installed by a reload.
// Sends never block: a full channel misses that update.
func (h *Holder) Subscribe(ch chan<- *Document) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, ch)
}

func (h *Holder) notify(doc *Document) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.listeners {
		select {
		case ch <- doc:
		default:
			h.logger.Warn().
				Str("event", "ini.listener_skip").
				Msg("listener channel full, update dropped")
		}
	}
}

// Watch reloads the file whenever it is written, created or renamed into
// place, until ctx is done. Bursts of events within the debounce window
// cause a single reload. Watch blocks; run it in its own goroutine.
func (h *Holder) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// the directory is watched so editors that replace the file are seen
	if err := watcher.Add(filepath.Dir(h.path)); err != nil {
		return fmt.Errorf("watch %s: %w", h.path, err)
	}

	h.logger.Info().
		Str("event", "ini.watch_started").
		Str("path", h.path).
		Msg("watching configuration file")

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info().Str("event", "ini.watch_stopped").Msg("watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != h.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			h.logger.Debug().
				Str("event", "ini.file_changed").
				Str("op", event.Op.String()).
				Msg("configuration file changed")

			if timer == nil {
				timer = time.NewTimer(h.debounce)
			} else {
				timer.Reset(h.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			_ = h.Reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			h.logger.Error().
				Err(err).
				Str("event", "ini.watch_error").
				Msg("watcher error")
		}
	}
}
