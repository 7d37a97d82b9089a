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

// Command unit2srv converts a systemd service unit into a dinit service.
//
// Usage:
//
//	unit2srv [-q] <unitfile>
//
// The service is written next to the unit, as <unitfile>.dinit.  Any
// Alias in the unit produces an additional service, in the working
// directory, that depends on the converted one.  Warnings about things
// that could not be converted faithfully go to standard error; -q
// (or -quiet) suppresses them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/unit2srv/unit2srv"
)

var quiet bool = false

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-q] <unitfile>\n",
		os.Args[0])
	flag.PrintDefaults()
}

// run converts unitFile and returns the exit status.
func run(unitFile string, quiet bool, stdout, stderr io.Writer) int {
	unit, e := unit2srv.ReadUnitFile(unitFile)
	if e != nil {
		fmt.Fprintf(stderr, "Failed to read unit: %v\n", e)
		return 1
	}

	target := unit2srv.TargetPath(unitFile)
	c := unit2srv.NewConverter(target)
	if quiet {
		c.SetLogger(nil)
	} else {
		c.SetLogger(log.New(stderr, "", 0))
	}

	svc, e := c.Convert(unit)
	if errors.Is(e, unit2srv.ErrUnsupportedType) {
		fmt.Fprintf(stderr, "%v\n", e)
		return 1
	} else if e != nil {
		fmt.Fprintf(stderr, "Failed to convert %s: %v\n", unitFile, e)
		return 1
	}

	if e := unit2srv.WriteService("", target, svc); e != nil {
		fmt.Fprintf(stderr, "Failed to write service: %v\n", e)
		return 1
	}

	fmt.Fprintln(stdout, "Converting service unit to dinit service is completed.")
	fmt.Fprintln(stdout, "It's HIGHLY recommended to modify the generated file to fit your needs.")
	fmt.Fprintf(stdout, "Done: %s\n", target)
	return 0
}

func main() {
	flag.BoolVar(&quiet, "q", quiet, "suppress warnings")
	flag.BoolVar(&quiet, "quiet", quiet, "suppress warnings")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	os.Exit(run(flag.Arg(0), quiet, os.Stdout, os.Stderr))
}
