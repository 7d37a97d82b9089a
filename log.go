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
	"strings"
	"sync"
	"time"
)

const (
	MaxLogRecords = 1000
)

type LogRecord struct {
	Id   int64     `json:"id,string"`
	Time time.Time `json:"time"`
	Text string    `json:"text"`
}

// Log keeps the most recent diagnostics of a conversion, so that they
// can be handed back to a remote caller.  It implements io.Writer, and is
// meant to sit behind a log.Logger.  Only the last MaxLogRecords lines
// are kept.
type Log struct {
	records    []LogRecord
	numRecords int
	maxRecords int
	id         int64
	mx         sync.Mutex
}

// Write implements the Writer interface consumed by Logger.  Each line
// becomes a record of its own.
func (log *Log) Write(b []byte) (int, error) {
	str := strings.Trim(string(b), "\n")
	log.mx.Lock()
	defer log.mx.Unlock()
	if log.maxRecords == 0 {
		log.maxRecords = MaxLogRecords
	}
	if log.records == nil {
		log.records = make([]LogRecord, log.maxRecords)
	}
	now := time.Now()
	for _, line := range strings.Split(str, "\n") {
		idx := log.numRecords % log.maxRecords
		log.id++
		log.records[idx] = LogRecord{Id: log.id, Time: now, Text: line}
		// NB: numRecords may exceed maxRecords once we have wrapped;
		// it is really just the next index.
		log.numRecords++
	}
	return len(b), nil
}

// Records returns the stored records, oldest first.
func (log *Log) Records() []LogRecord {
	log.mx.Lock()
	defer log.mx.Unlock()
	cnt := log.numRecords
	if cnt > log.maxRecords {
		cnt = log.maxRecords
	}
	recs := make([]LogRecord, 0, cnt)
	index := log.numRecords - cnt
	for j := 0; j < cnt; j++ {
		recs = append(recs, log.records[index%log.maxRecords])
		index++
	}
	return recs
}

// Lines returns just the text of the stored records.
func (log *Log) Lines() []string {
	recs := log.Records()
	lines := make([]string, 0, len(recs))
	for _, r := range recs {
		lines = append(lines, r.Text)
	}
	return lines
}

// NewLog returns a Log holding at most max records.  A max of zero
// selects MaxLogRecords.
func NewLog(max int) *Log {
	if max <= 0 {
		max = MaxLogRecords
	}
	return &Log{maxRecords: max}
}
