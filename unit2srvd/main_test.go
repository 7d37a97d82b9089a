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
	"flag"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestResolveConfig(t *testing.T) {
	Convey("Resolving the daemon configuration", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "unit2srvd.toml")
		So(os.WriteFile(path, []byte("listen = \"0.0.0.0:9000\"\nquiet = true\n"), 0o644), ShouldBeNil)

		oaddr, ofile, oquiet := addr, cfgFile, quiet
		Reset(func() {
			addr, cfgFile, quiet = oaddr, ofile, oquiet
		})

		fs := flag.NewFlagSet("unit2srvd", flag.ContinueOnError)
		fs.StringVar(&addr, "a", addr, "")
		fs.StringVar(&cfgFile, "c", cfgFile, "")
		fs.BoolVar(&quiet, "q", quiet, "")

		Convey("Defaults apply without a file", func() {
			So(fs.Parse(nil), ShouldBeNil)
			cfg, e := resolveConfig(fs)
			So(e, ShouldBeNil)
			So(cfg.Listen, ShouldEqual, "127.0.0.1:8322")
			So(cfg.Quiet, ShouldBeFalse)
		})

		Convey("The file overrides defaults", func() {
			So(fs.Parse([]string{"-c", path}), ShouldBeNil)
			cfg, e := resolveConfig(fs)
			So(e, ShouldBeNil)
			So(cfg.Listen, ShouldEqual, "0.0.0.0:9000")
			So(cfg.Quiet, ShouldBeTrue)
		})

		Convey("Flags override the file", func() {
			So(fs.Parse([]string{"-c", path, "-a", ":8000", "-q=false"}), ShouldBeNil)
			cfg, e := resolveConfig(fs)
			So(e, ShouldBeNil)
			So(cfg.Listen, ShouldEqual, ":8000")
			So(cfg.Quiet, ShouldBeFalse)
		})

		Convey("Broken files are an error", func() {
			bad := filepath.Join(dir, "bad.toml")
			So(os.WriteFile(bad, []byte("listen = [[["), 0o644), ShouldBeNil)
			So(fs.Parse([]string{"-c", bad}), ShouldBeNil)
			_, e := resolveConfig(fs)
			So(e, ShouldNotBeNil)
		})
	})
}
