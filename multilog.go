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
	"strings"
	"sync"
)

// MultiLogger copies everything logged through it to each of a set of
// loggers.  The conversion service uses one per request, so diagnostics
// reach both the caller and the daemon's own log.
type MultiLogger struct {
	log     *log.Logger
	loggers []*log.Logger
	lock    sync.Mutex
}

func (l *MultiLogger) Write(b []byte) (int, error) {
	lines := strings.Split(strings.Trim(string(b), "\n"), "\n")
	l.lock.Lock()
	for _, line := range lines {
		for _, logger := range l.loggers {
			logger.Println(line)
		}
	}
	l.lock.Unlock()
	return len(b), nil
}

// AddLogger adds a destination.  Nil loggers and duplicates are ignored.
func (l *MultiLogger) AddLogger(logger *log.Logger) {
	if logger == nil {
		return
	}
	l.lock.Lock()
	defer l.lock.Unlock()
	for _, x := range l.loggers {
		if x == logger {
			return
		}
	}
	l.loggers = append(l.loggers, logger)
}

// Logger returns a logger that writes to all destinations.
func (l *MultiLogger) Logger() *log.Logger {
	return l.log
}

func NewMultiLogger(loggers ...*log.Logger) *MultiLogger {
	m := &MultiLogger{}
	m.log = log.New(m, "", 0)
	for _, logger := range loggers {
		m.AddLogger(logger)
	}
	return m
}
