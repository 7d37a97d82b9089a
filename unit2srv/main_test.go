// Copyright 2026 The Unit2srv Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use file except in compliance with the License.
// You may obtain a copy of the license at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func writeUnit(dir, name, content string) string {
	path := filepath.Join(dir, name)
	So(os.WriteFile(path, []byte(content), 0o644), ShouldBeNil)
	return path
}

func TestRun(t *testing.T) {
	Convey("Converting a unit file", t, func() {
		dir := t.TempDir()
		wd, err := os.Getwd()
		So(err, ShouldBeNil)
		So(os.Chdir(dir), ShouldBeNil)
		t.Cleanup(func() { os.Chdir(wd) })
		var stdout, stderr bytes.Buffer

		Convey("Writes the service and its aliases", func() {
			unit := writeUnit(dir, "food.service", `[Unit]
Description=Food
[Service]
ExecStart=/usr/sbin/food
Bogus=yes
[Install]
Alias=food-alias
`)
			So(run(unit, false, &stdout, &stderr), ShouldEqual, 0)
			b, e := os.ReadFile(unit + ".dinit")
			So(e, ShouldBeNil)
			So(string(b), ShouldEqual,
				"# Description: Food\ncommand = /usr/sbin/food\ntype = process\n")

			b, e = os.ReadFile(filepath.Join(dir, "food-alias"))
			So(e, ShouldBeNil)
			So(string(b), ShouldEqual, "depends-on = "+unit+".dinit\n")

			So(stdout.String(), ShouldContainSubstring, "completed")
			So(stderr.String(), ShouldContainSubstring, "Unknown/Unsupported key: Bogus")
		})

		Convey("Quiet mode suppresses warnings", func() {
			unit := writeUnit(dir, "quiet.service", "Bogus=yes\nAfter=x\n")
			So(run(unit, true, &stdout, &stderr), ShouldEqual, 0)
			So(stderr.String(), ShouldBeEmpty)
			So(stdout.String(), ShouldContainSubstring, "Done")
		})

		Convey("DBus services fail without output", func() {
			unit := writeUnit(dir, "bus.service", "ExecStart=/bin/true\nType=dbus\n")
			So(run(unit, false, &stdout, &stderr), ShouldEqual, 1)
			So(stderr.String(), ShouldContainSubstring, "'type=dbus' isn't supported by dinit")
			_, e := os.Stat(unit + ".dinit")
			So(os.IsNotExist(e), ShouldBeTrue)
		})

		Convey("Missing units fail", func() {
			So(run(filepath.Join(dir, "nope.service"), false, &stdout, &stderr), ShouldEqual, 1)
			So(stderr.String(), ShouldContainSubstring, "Failed to read unit")
		})
	})
}
