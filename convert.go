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
	"io"
	"log"
	"os"
)

// MissingPIDFileComment is appended to forking services that do not name
// a pid-file.  dinit cannot track a self-backgrounding process without one.
const MissingPIDFileComment = `# Service is "forking" type but doesn't have any pid-file!`

type pidFileState int

const (
	pidFileUnset   pidFileState = iota // not a forking service
	pidFileMissing                     // forking, no PIDFile seen yet
	pidFilePresent                     // PIDFile seen
)

// Alias is an auxiliary dinit service generated for a systemd Alias.
// It does nothing but depend on the converted service.
type Alias struct {
	Name  string
	Lines []string
}

// Service is the result of a conversion.  Lines holds the translated
// settings in unit file order.  Trailer holds what goes after them: the
// default service type, the carried over comments and warnings.
type Service struct {
	Lines   []string
	Trailer []string
	Aliases []Alias
}

// Converter translates units into dinit services.  All state of a
// conversion lives in the call to Convert, so a Converter may be reused.
type Converter struct {
	target string
	logger *log.Logger
}

// session carries the state of one conversion.
type session struct {
	c        *Converter
	values   map[string][]string
	typeSeen bool
	pidFile  pidFileState
	svc      *Service
}

func (s *session) emit(name Setting, v string) {
	s.svc.Lines = append(s.svc.Lines, name.Line(v))
}

func (s *session) trail(line string) {
	s.svc.Trailer = append(s.svc.Trailer, line)
}

func (s *session) warn(format string, v ...interface{}) {
	s.c.logger.Printf("WARN: "+format, v...)
}

func (s *session) note(format string, v ...interface{}) {
	s.c.logger.Printf(format, v...)
}

// SetLogger sets where diagnostics go.  A nil logger silences them.
func (c *Converter) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	c.logger = l
}

// Target returns the name of the dinit service being generated.
func (c *Converter) Target() string {
	return c.target
}

// Convert translates the unit.  Keys that have no dinit counterpart are
// reported and skipped.  The only failure is a service type that dinit
// cannot express at all, in which case no Service is returned.
func (c *Converter) Convert(u *Unit) (*Service, error) {
	s := &session{
		c:      c,
		values: u.Values(),
		svc:    &Service{},
	}
	for _, p := range u.Pairs {
		fn, ok := rules[p.Name]
		if !ok {
			s.warn("Unknown/Unsupported key: %s", p.Name)
			continue
		}
		if e := fn(s, p.Name, p.Value); e != nil {
			return nil, e
		}
	}

	if !s.typeSeen {
		s.trail(SetType.Line(TypeProcess))
	}
	s.svc.Trailer = append(s.svc.Trailer, u.Comments...)
	if s.pidFile == pidFileMissing {
		s.warn(`Service is "forking" type but doesn't have any pid-file!`)
		s.trail(MissingPIDFileComment)
	}
	return s.svc, nil
}

// NewConverter returns a Converter for a dinit service named target.
// The name is what alias services will depend upon.  Diagnostics go to
// standard error until SetLogger is called.
func NewConverter(target string) *Converter {
	return &Converter{
		target: target,
		logger: log.New(os.Stderr, "", 0),
	}
}
