package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestConfigure(t *testing.T) {
	convey.Convey("configure the base logger", t, func() {
		ResetForTesting()
		defer ResetForTesting()

		var buf bytes.Buffer
		Configure(Config{Level: "debug", Output: &buf, Service: "test"})

		convey.Convey("component loggers carry service and component", func() {
			l := WithComponent("ini")
			l.Debug().Str("event", "probe").Msg("hello")
			out := buf.String()
			convey.So(out, convey.ShouldContainSubstring, `"service":"test"`)
			convey.So(out, convey.ShouldContainSubstring, `"component":"ini"`)
			convey.So(out, convey.ShouldContainSubstring, `"event":"probe"`)
		})

		convey.Convey("a second Configure is ignored", func() {
			var other bytes.Buffer
			Configure(Config{Level: "error", Output: &other})
			l := Base()
			l.Info().Msg("still here")
			convey.So(other.Len(), convey.ShouldEqual, 0)
			convey.So(strings.Contains(buf.String(), "still here"), convey.ShouldBeTrue)
		})
	})
}

func TestLevelFiltering(t *testing.T) {
	convey.Convey("levels below the configured one are dropped", t, func() {
		ResetForTesting()
		defer ResetForTesting()

		var buf bytes.Buffer
		Configure(Config{Level: "warn", Output: &buf})
		l := Base()
		l.Info().Msg("quiet")
		l.Warn().Msg("loud")
		convey.So(buf.String(), convey.ShouldNotContainSubstring, "quiet")
		convey.So(buf.String(), convey.ShouldContainSubstring, "loud")
	})
}
