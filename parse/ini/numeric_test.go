package ini

import (
	"math"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestParseIntPrefix(t *testing.T) {
	convey.Convey("signed integer prefixes", t, func() {
		cases := []struct {
			in   string
			want int64
		}{
			{"0", 0},
			{"123", 123},
			{"  +8", 8},
			{"-8", -8},
			{"0x10", 16},
			{"0XfF", 255},
			{"-0x10", -16},
			{"010", 8},
			{"08", 0},
			{"0x", 0},
			{"0xg", 0},
			{"12abc", 12},
			{"abc", 0},
			{"", 0},
			{"- 5", 0},
			{"9223372036854775807", math.MaxInt64},
			{"9223372036854775808", math.MaxInt64},
			{"-9223372036854775808", math.MinInt64},
			{"-99999999999999999999999", math.MinInt64},
		}
		for _, c := range cases {
			convey.So(parseIntPrefix(c.in), convey.ShouldEqual, c.want)
		}
	})

	convey.Convey("unsigned integer prefixes", t, func() {
		convey.So(parseUintPrefix("18446744073709551615"), convey.ShouldEqual, uint64(math.MaxUint64))
		convey.So(parseUintPrefix("18446744073709551616"), convey.ShouldEqual, uint64(math.MaxUint64))
		convey.So(parseUintPrefix("-1"), convey.ShouldEqual, uint64(math.MaxUint64))
		convey.So(parseUintPrefix("0777"), convey.ShouldEqual, uint64(511))
		convey.So(parseUintPrefix("42 apples"), convey.ShouldEqual, uint64(42))
	})
}

func TestParseFloatPrefix(t *testing.T) {
	convey.Convey("floating point prefixes", t, func() {
		cases := []struct {
			in   string
			want float64
		}{
			{"1.5", 1.5},
			{"  -2.25", -2.25},
			{".5", 0.5},
			{"5.", 5},
			{"1e2", 100},
			{"1E-2", 0.01},
			{"1e", 1},
			{"1e+", 1},
			{"3.5kg", 3.5},
			{"0x10", 16},
			{"0x1.8p1", 3},
			{"-0x8", -8},
			{"abc", 0},
			{".", 0},
			{"", 0},
		}
		for _, c := range cases {
			convey.So(parseFloatPrefix(c.in), convey.ShouldEqual, c.want)
		}

		convey.So(math.IsInf(parseFloatPrefix("inf"), 1), convey.ShouldBeTrue)
		convey.So(math.IsInf(parseFloatPrefix("-Infinity"), -1), convey.ShouldBeTrue)
		convey.So(math.IsNaN(parseFloatPrefix("NaN")), convey.ShouldBeTrue)
		convey.So(math.IsInf(parseFloatPrefix("1e999"), 1), convey.ShouldBeTrue)
	})
}
