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
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// timeUnits maps the unit tags systemd accepts in time spans to their
// length in microseconds.  Months and years are fixed approximations
// (30 and 365 days), not calendar aware.
var timeUnits = map[string]float64{
	"us":      1,
	"usec":    1,
	"μs":      1, // greek mu
	"µs":      1, // micro sign
	"ms":      1e3,
	"msec":    1e3,
	"s":       1e6,
	"sec":     1e6,
	"second":  1e6,
	"seconds": 1e6,
	"m":       60e6,
	"min":     60e6,
	"minute":  60e6,
	"minutes": 60e6,
	"h":       3600e6,
	"hr":      3600e6,
	"hour":    3600e6,
	"hours":   3600e6,
	"d":       86400e6,
	"day":     86400e6,
	"days":    86400e6,
	"w":       604800e6,
	"week":    604800e6,
	"weeks":   604800e6,
	"M":       2592000e6,
	"month":   2592000e6,
	"months":  2592000e6,
	"y":       31536000e6,
	"year":    31536000e6,
	"years":   31536000e6,
}

// TimeSpanError reports the segments of a time span that could not be
// converted.  The segments are skipped; the rest of the span still counts.
type TimeSpanError struct {
	Span     string
	Segments []string
}

func (e *TimeSpanError) Error() string {
	if len(e.Segments) == 0 {
		return fmt.Sprintf("Can't parse given time %q", e.Span)
	}
	return fmt.Sprintf("Can't parse given time %q: %s", e.Span,
		strings.Join(e.Segments, ", "))
}

func (e *TimeSpanError) Unwrap() error {
	return ErrBadTimeSpan
}

type timeSegment struct {
	tag string
	mag string
}

func (seg timeSegment) String() string {
	return strings.TrimSpace(seg.mag + " " + seg.tag)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

// splitTimeSpan breaks a span such as "1h 30min" or "2d12h" into its
// segments.  There need not be any separator between a tag and the next
// magnitude, so a segment ends whenever a digit follows a letter.
// Anything that is neither a digit, a decimal point, nor a letter is
// ignored.
func splitTimeSpan(span string) []timeSegment {
	var segs []timeSegment
	var mag, tag strings.Builder
	letter := false
	for _, r := range span {
		switch {
		case unicode.IsSpace(r):
			continue
		case isDigit(r) || r == '.':
			if letter {
				segs = append(segs, timeSegment{tag.String(), mag.String()})
				mag.Reset()
				tag.Reset()
				letter = false
			}
			mag.WriteRune(r)
		case unicode.IsLetter(r):
			tag.WriteRune(r)
			letter = true
		}
	}
	return append(segs, timeSegment{tag.String(), mag.String()})
}

// ParseTimeSpan converts a systemd time span into seconds.  A purely
// numeric span is already a count of seconds.  Segments with an unknown
// unit or a malformed magnitude contribute nothing; if there are any,
// the total of the remaining segments is returned along with a
// *TimeSpanError.
func ParseTimeSpan(span string) (float64, error) {
	if isNumeric(span) {
		return strconv.ParseFloat(span, 64)
	}
	if strings.TrimSpace(span) == "" {
		return 0, &TimeSpanError{Span: span}
	}

	var usec float64
	var bad []string
	for _, seg := range splitTimeSpan(span) {
		scale, ok := timeUnits[seg.tag]
		if !ok {
			bad = append(bad, seg.String())
			continue
		}
		v, e := strconv.ParseFloat(seg.mag, 64)
		if e != nil {
			bad = append(bad, seg.String())
			continue
		}
		usec += v * scale
	}

	// NB: the sum is in microseconds, so 100us is exactly 0.0001.
	sec := usec / 1e6
	if len(bad) != 0 {
		return sec, &TimeSpanError{Span: span, Segments: bad}
	}
	return sec, nil
}

// FormatTimeSpan is ParseTimeSpan, rendered the way dinit expects a
// timeout: a decimal number of seconds.  Purely numeric input is returned
// unchanged.  The error, if any, is the one from ParseTimeSpan, and the
// returned value is still usable.
func FormatTimeSpan(span string) (string, error) {
	if isNumeric(span) {
		return span, nil
	}
	sec, e := ParseTimeSpan(span)
	return strconv.FormatFloat(sec, 'f', -1, 64), e
}
