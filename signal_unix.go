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

//go:build unix

package unit2srv

import (
	"strconv"

	"golang.org/x/sys/unix"
)

func platformSignal(name string) (string, bool) {
	if sig := unix.SignalNum("SIG" + name); sig != 0 {
		return strconv.Itoa(int(sig)), true
	}
	return "", false
}
