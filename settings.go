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

// Setting names a dinit service setting.  Only the settings that the
// converter emits are listed here; dinit knows many more.
type Setting string

const (
	SetType                 Setting = "type"
	SetCommand              Setting = "command"
	SetStopCommand          Setting = "stop-command"
	SetWaitsFor             Setting = "waits-for"
	SetDependsOn            Setting = "depends-on"
	SetDependsMS            Setting = "depends-ms"
	SetBefore               Setting = "before"
	SetAfter                Setting = "after"
	SetChainTo              Setting = "chain-to"
	SetRestartLimitCount    Setting = "restart-limit-count"
	SetRestartLimitInterval Setting = "restart-limit-interval"
	SetPIDFile              Setting = "pid-file"
	SetEnvFile              Setting = "env-file"
	SetRestart              Setting = "restart"
	SetStartTimeout         Setting = "start-timeout"
	SetStopTimeout          Setting = "stop-timeout"
	SetRunAs                Setting = "run-as"
	SetWorkingDir           Setting = "working-dir"
	SetRlimitCore           Setting = "rlimit-core"
	SetRlimitData           Setting = "rlimit-data"
	SetRlimitNofile         Setting = "rlimit-nofile"
	SetInittabLine          Setting = "inittab-line"
	SetTermSignal           Setting = "term-signal"
)

// Service types understood by dinit.
const (
	TypeProcess   = "process"
	TypeBgProcess = "bgprocess"
	TypeScripted  = "scripted"
)

// Line renders the setting assigned to v in dinit's syntax.
func (s Setting) Line(v string) string {
	return string(s) + " = " + v
}
