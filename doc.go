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

// Package unit2srv converts systemd service units into dinit service
// descriptions.
//
// A conversion is a single pass.  ReadUnit collects the key/value pairs
// (and comments) of a unit file without regard for sections.  A Converter
// then translates each recognized key through a fixed rule table into
// dinit settings, producing a Service.  Finally the Service is written,
// together with any auxiliary alias services, by WriteService.
//
// Concepts that do not map one to one are approximated.  Time spans are
// reduced to a number of seconds, service types are mapped onto dinit's
// process, bgprocess and scripted types, and signal names are translated
// into the symbolic or numeric form dinit accepts.  Anything that cannot
// be translated faithfully is reported as a diagnostic on the Converter's
// logger, which may be silenced.
//
// The package does not validate the resulting dinit service beyond the
// settings it emits itself.
package unit2srv
