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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// CommentPrefix marks comments carried over from the unit file.
const CommentPrefix = "# In systemd service unit comment: "

// Pair is a single key/value assignment from a unit file.
type Pair struct {
	Name  string
	Value string
}

// Unit holds the parsed contents of a systemd unit file.  Sections are
// not tracked, so keys from [Unit], [Service] and [Install] are all
// found in Pairs, in file order.  Comments are kept apart, already
// annotated with CommentPrefix, as they end up at the tail of the
// generated service.
type Unit struct {
	Pairs    []Pair
	Comments []string
}

func (u *Unit) parseLine(line string) {
	if len(line) == 0 {
		return
	}
	switch line[0] {
	case '#', ';':
		u.Comments = append(u.Comments, CommentPrefix+line)
	case '[':
		// section header
	default:
		name, value, found := strings.Cut(line, "=")
		if !found {
			return
		}
		if name = strings.TrimSpace(name); name == "" {
			return
		}
		u.Pairs = append(u.Pairs, Pair{
			Name:  name,
			Value: strings.TrimSpace(value),
		})
	}
}

// Values returns every value assigned to each key, in file order.
func (u *Unit) Values() map[string][]string {
	m := make(map[string][]string)
	for _, p := range u.Pairs {
		m[p.Name] = append(m[p.Name], p.Value)
	}
	return m
}

// Value returns the last value assigned to the named key.
func (u *Unit) Value(name string) (string, bool) {
	for i := len(u.Pairs) - 1; i >= 0; i-- {
		if u.Pairs[i].Name == name {
			return u.Pairs[i].Value, true
		}
	}
	return "", false
}

// ReadUnit parses a unit file from r.  Lines are taken as they are;
// there is no support for quoting, escapes or continuation lines.
func ReadUnit(r io.Reader) (*Unit, error) {
	u := &Unit{}
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) != 0 {
			u.parseLine(strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return u, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// ReadUnitFile opens and parses the named unit file.
func ReadUnitFile(path string) (*Unit, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer f.Close()

	u, e := ReadUnit(f)
	if e != nil {
		return nil, fmt.Errorf("reading %s: %w", path, e)
	}
	return u, nil
}
