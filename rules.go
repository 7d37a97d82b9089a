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
	"strings"
)

// A rule translates one unit file assignment.
type rule func(s *session, key, value string) error

// ruleTable lists every unit key the converter understands.
var ruleTable = []struct {
	key string
	fn  rule
}{
	{"Documentation", ignore},
	{"Type", convertType},
	{"Description", convertDescription},
	{"Wants", eachToken(SetWaitsFor)},
	{"Requires", eachToken(SetDependsOn)},
	{"Requisite", eachToken(SetDependsOn)},
	{"BindsTo", eachToken(SetDependsOn)},
	{"PartOf", eachToken(SetDependsOn)},
	{"Upholds", eachToken(SetWaitsFor)},
	{"UpHolds", eachToken(SetWaitsFor)},
	{"Before", ordering(SetBefore)},
	{"After", ordering(SetAfter)},
	{"OnSuccess", convertOnSuccess},
	{"StartLimitBurst", setting(SetRestartLimitCount)},
	{"StartLimitIntervalSec", timeSpan(SetRestartLimitInterval)},
	{"Alias", convertAlias},
	{"WantedBy", eachToken(SetDependsMS)},
	{"RequiredBy", eachToken(SetDependsMS)},
	{"UpheldBy", eachToken(SetDependsMS)},
	{"PIDFile", convertPIDFile},
	{"ExecStart", setting(SetCommand)},
	{"ExecStop", setting(SetStopCommand)},
	{"TimeoutStartSec", timeout(SetStartTimeout)},
	{"TimeoutStopSec", timeout(SetStopTimeout)},
	{"TimeoutSec", timeout(SetStartTimeout, SetStopTimeout)},
	{"Restart", convertRestart},
	{"EnvironmentFile", setting(SetEnvFile)},
	{"User", convertUser},
	{"Group", ignore}, // see convertUser
	{"WorkingDirectory", setting(SetWorkingDir)},
	{"LimitCORE", setting(SetRlimitCore)},
	{"LimitDATA", setting(SetRlimitData)},
	{"LimitNOFILE", setting(SetRlimitNofile)},
	{"UtmpIdentifier", setting(SetInittabLine)},
	{"KillSignal", convertKillSignal},
}

var rules = make(map[string]rule, len(ruleTable))

func init() {
	for _, r := range ruleTable {
		rules[r.key] = r.fn
	}
}

// Keys returns the unit keys that the converter understands.
func Keys() []string {
	keys := make([]string, 0, len(ruleTable))
	for _, r := range ruleTable {
		keys = append(keys, r.key)
	}
	return keys
}

// IsKnownKey reports whether the converter has a rule for the unit key.
func IsKnownKey(key string) bool {
	_, ok := rules[key]
	return ok
}

func ignore(*session, string, string) error {
	return nil
}

func setting(name Setting) rule {
	return func(s *session, _, v string) error {
		s.emit(name, v)
		return nil
	}
}

func eachToken(name Setting) rule {
	return func(s *session, _, v string) error {
		for _, tok := range strings.Fields(v) {
			s.emit(name, tok)
		}
		return nil
	}
}

// ordering handles Before and After.  In dinit these only order
// services that are both starting; they never pull a service in.
func ordering(name Setting) rule {
	each := eachToken(name)
	return func(s *session, k, v string) error {
		each(s, k, v)
		s.warn("%s in dinit has different functionality over systemd", k)
		return nil
	}
}

func (s *session) timeSpan(v string) string {
	sec, e := FormatTimeSpan(v)
	if e != nil {
		s.warn("%v", e)
	}
	return sec
}

func timeSpan(name Setting) rule {
	return func(s *session, _, v string) error {
		s.emit(name, s.timeSpan(v))
		return nil
	}
}

func timeout(names ...Setting) rule {
	return func(s *session, _, v string) error {
		sec := "0"
		if v != "infinity" {
			sec = s.timeSpan(v)
		}
		for _, name := range names {
			s.emit(name, sec)
		}
		return nil
	}
}

func convertDescription(s *session, _, v string) error {
	s.svc.Lines = append(s.svc.Lines, "# Description: "+v)
	return nil
}

func convertType(s *session, _, v string) error {
	switch v {
	case "simple", "exec", "idle":
		s.emit(SetType, TypeProcess)
	case "forking":
		s.emit(SetType, TypeBgProcess)
		if s.pidFile != pidFilePresent {
			s.pidFile = pidFileMissing
		}
	case "oneshot":
		s.emit(SetType, TypeScripted)
	case "notify":
		s.emit(SetType, TypeProcess)
		s.warn("This service uses the systemd activation protocol.\n" +
			"Please change your service to use a proper ready notification protocol:\n" +
			"https://skarnet.org/software/s6/notifywhenup.html")
	case "dbus":
		return fmt.Errorf("'type=%s' isn't supported by dinit: %w",
			v, ErrUnsupportedType)
	default:
		s.warn("Unknown service type: %s", v)
	}
	s.typeSeen = true
	return nil
}

func convertAlias(s *session, _, v string) error {
	for _, name := range strings.Fields(v) {
		s.svc.Aliases = append(s.svc.Aliases, Alias{
			Name:  name,
			Lines: []string{SetDependsOn.Line(s.c.target)},
		})
	}
	s.note(`Service unit has "Alias", creating another service to cover it`)
	return nil
}

// convertOnSuccess chains to the whole value once per listed unit, not
// to each unit in turn.
func convertOnSuccess(s *session, _, v string) error {
	for range strings.Fields(v) {
		s.emit(SetChainTo, v)
	}
	return nil
}

func convertPIDFile(s *session, _, v string) error {
	s.emit(SetPIDFile, v)
	s.pidFile = pidFilePresent
	return nil
}

func convertRestart(s *session, _, v string) error {
	if v == "no" {
		s.emit(SetRestart, "no")
	} else {
		s.emit(SetRestart, "yes")
	}
	return nil
}

// convertUser also accounts for Group, wherever it appears in the unit.
// If Group is given more than once, the last one wins.
func convertUser(s *session, _, v string) error {
	runAs := v
	if groups := s.values["Group"]; len(groups) != 0 {
		runAs = v + ":" + groups[len(groups)-1]
	}
	s.emit(SetRunAs, runAs)
	return nil
}

func convertKillSignal(s *session, _, v string) error {
	if !IsDinitSignal(v) {
		s.warn("%s isn't recognized by dinit, trying to resolve it to a number", v)
	}
	sig, e := ResolveSignal(v)
	if e != nil {
		s.note(" ... cannot resolve specified signal: %s", v)
		return nil
	}
	s.note(" ... resolved to %s", sig)
	s.emit(SetTermSignal, sig)
	return nil
}
