package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestCheckFileExist(t *testing.T) {
	convey.Convey("check file exist", t, func() {
		dir := t.TempDir()
		file := filepath.Join(dir, "a.ini")
		convey.So(os.WriteFile(file, []byte("k=v\n"), 0o644), convey.ShouldBeNil)

		exist, err := CheckFileExist(file)
		convey.So(err, convey.ShouldBeNil)
		convey.So(exist, convey.ShouldBeTrue)

		exist, err = CheckFileExist(filepath.Join(dir, "missing.ini"))
		convey.So(err, convey.ShouldBeNil)
		convey.So(exist, convey.ShouldBeFalse)
	})
}

func TestCheckInputFile(t *testing.T) {
	convey.Convey("check input file", t, func() {
		dir := t.TempDir()
		file := filepath.Join(dir, "a.ini")
		convey.So(os.WriteFile(file, []byte("k=v\n"), 0o644), convey.ShouldBeNil)

		convey.So(CheckInputFile(file), convey.ShouldBeNil)
		convey.So(CheckInputFile(""), convey.ShouldNotBeNil)
		convey.So(CheckInputFile(filepath.Join(dir, "missing.ini")), convey.ShouldNotBeNil)
		convey.So(CheckInputFile(dir), convey.ShouldNotBeNil)
	})
}
