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

package unit2srv

import (
	"log"
	"strconv"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLog(t *testing.T) {
	Convey("Log records each line", t, func() {
		l := NewLog(0)
		logger := log.New(l, "", 0)
		logger.Printf("one")
		logger.Printf("two\nthree")

		So(l.Lines(), ShouldResemble, []string{"one", "two", "three"})
		recs := l.Records()
		So(recs, ShouldHaveLength, 3)
		So(recs[0].Id, ShouldBeLessThan, recs[2].Id)
	})

	Convey("Log keeps only the newest records", t, func() {
		l := NewLog(3)
		for i := 0; i < 5; i++ {
			l.Write([]byte(strconv.Itoa(i) + "\n"))
		}
		So(l.Lines(), ShouldResemble, []string{"2", "3", "4"})
	})

	Convey("A zero Log is usable", t, func() {
		l := &Log{}
		So(l.Lines(), ShouldBeEmpty)
		l.Write([]byte("x"))
		So(l.Lines(), ShouldResemble, []string{"x"})
	})
}

func TestMultiLogger(t *testing.T) {
	Convey("MultiLogger copies to every logger", t, func() {
		a, b := NewLog(0), NewLog(0)
		la := log.New(a, "", 0)
		m := NewMultiLogger(la, nil, log.New(b, "", 0))
		m.AddLogger(la)

		m.Logger().Printf("WARN: first\nsecond")
		So(a.Lines(), ShouldResemble, []string{"WARN: first", "second"})
		So(b.Lines(), ShouldResemble, []string{"WARN: first", "second"})
	})
}
