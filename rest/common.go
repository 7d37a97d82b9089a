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

package rest

const (
	mimeJson = "application/json; charset=UTF-8"
	mimeText = "text/plain; charset=UTF-8"
)

// DefaultTarget names the generated service when the caller gives none.
const DefaultTarget = "service.dinit"

type AliasInfo struct {
	Name    string `json:"name"`
	Service string `json:"service"`
}

// ConvertResult is the reply to a conversion request.  Service holds
// the text of the dinit service, exactly as the CLI would write it.
type ConvertResult struct {
	Target      string      `json:"target"`
	Service     string      `json:"service"`
	Aliases     []AliasInfo `json:"aliases"`
	Diagnostics []string    `json:"diagnostics"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}
