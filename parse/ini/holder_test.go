package ini

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
	"go.uber.org/goleak"
)

func writeFile(path, content string) {
	err := os.WriteFile(path, []byte(content), 0o644)
	convey.So(err, convey.ShouldBeNil)
}

func TestHolderReload(t *testing.T) {
	convey.Convey("manual reloads", t, func() {
		path := filepath.Join(t.TempDir(), "app.ini")
		writeFile(path, "[main]\ntitle = one\n")

		h, err := NewHolder(path)
		convey.So(err, convey.ShouldBeNil)
		convey.So(h.Path(), convey.ShouldEqual, path)

		first := h.Get()
		v, _ := first.ReadString("main", "title", "")
		convey.So(v, convey.ShouldEqual, "one")

		convey.Convey("a reload swaps in a new document", func() {
			ch := make(chan *Document, 1)
			h.Subscribe(ch)

			writeFile(path, "[main]\ntitle = two\n")
			convey.So(h.Reload(), convey.ShouldBeNil)

			v, _ := h.Get().ReadString("main", "title", "")
			convey.So(v, convey.ShouldEqual, "two")

			pushed := <-ch
			convey.So(pushed, convey.ShouldEqual, h.Get())

			// readers holding the old document still see the old value
			v, _ = first.ReadString("main", "title", "")
			convey.So(v, convey.ShouldEqual, "one")
		})

		convey.Convey("a failed reload keeps the current document", func() {
			convey.So(os.Remove(path), convey.ShouldBeNil)
			err := h.Reload()
			convey.So(errors.Is(err, ErrOpen), convey.ShouldBeTrue)
			convey.So(h.Get(), convey.ShouldEqual, first)
		})

		convey.Convey("a full listener does not block reloads", func() {
			ch := make(chan *Document)
			h.Subscribe(ch)
			convey.So(h.Reload(), convey.ShouldBeNil)
		})
	})

	convey.Convey("a missing file cannot be held", t, func() {
		h, err := NewHolder(filepath.Join(t.TempDir(), "none.ini"))
		convey.So(h, convey.ShouldBeNil)
		convey.So(errors.Is(err, ErrOpen), convey.ShouldBeTrue)
	})
}

func TestHolderWatch(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	convey.Convey("file changes trigger a reload", t, func() {
		path := filepath.Join(t.TempDir(), "app.ini")
		writeFile(path, "[main]\nvolume = 1\n")

		h, err := NewHolder(path)
		convey.So(err, convey.ShouldBeNil)
		h.debounce = 20 * time.Millisecond

		ch := make(chan *Document, 4)
		h.Subscribe(ch)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- h.Watch(ctx) }()

		// give the watcher time to register before writing
		time.Sleep(100 * time.Millisecond)
		writeFile(path, "[main]\nvolume = 9\n")

		// a truncating write may be seen half done, so wait for the final value
		volume, status := 0, StatusUsedDefault
		deadline := time.After(5 * time.Second)
	wait:
		for volume != 9 {
			select {
			case doc := <-ch:
				volume, status = doc.ReadInt("main", "volume", 0)
			case <-deadline:
				break wait
			}
		}
		convey.So(volume, convey.ShouldEqual, 9)
		convey.So(status, convey.ShouldEqual, StatusFound)

		cancel()
		select {
		case err = <-done:
		case <-time.After(5 * time.Second):
			err = errors.New("watcher did not stop")
		}
		convey.So(err, convey.ShouldBeNil)
	})
}
