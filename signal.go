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
)

// dinitSignals are the signal names dinit accepts symbolically.
var dinitSignals = map[string]bool{
	"HUP":  true,
	"INT":  true,
	"QUIT": true,
	"KILL": true,
	"USR1": true,
	"USR2": true,
	"TERM": true,
	"CONT": true,
	"STOP": true,
	"INFO": true,
}

func trimSignal(name string) string {
	return strings.TrimPrefix(name, "SIG")
}

// IsDinitSignal reports whether dinit knows the signal by name.  The
// conventional SIG prefix is optional.
func IsDinitSignal(name string) bool {
	return dinitSignals[trimSignal(name)]
}

// ResolveSignal translates a signal name, with or without the SIG prefix,
// into a form dinit accepts for term-signal.  Names dinit knows are
// returned bare ("SIGTERM" becomes "TERM").  Other names are looked up in
// the host's signal table and returned as a signal number.
func ResolveSignal(name string) (string, error) {
	sig := trimSignal(name)
	if dinitSignals[sig] {
		return sig, nil
	}
	if num, ok := platformSignal(sig); ok {
		return num, nil
	}
	return "", ErrUnknownSignal
}
