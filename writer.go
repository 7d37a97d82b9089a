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
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// TargetSuffix is appended to a unit file's path to name its dinit
// service.
const TargetSuffix = ".dinit"

// TargetPath returns where the service converted from unitPath goes.
func TargetPath(unitPath string) string {
	return unitPath + TargetSuffix
}

func writeLines(w io.Writer, groups ...[]string) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, lines := range groups {
		for _, line := range lines {
			c, e := bw.WriteString(line)
			n += int64(c)
			if e != nil {
				return n, e
			}
			if e = bw.WriteByte('\n'); e != nil {
				return n, e
			}
			n++
		}
	}
	return n, bw.Flush()
}

// WriteTo writes the service description to w.
func (svc *Service) WriteTo(w io.Writer) (int64, error) {
	return writeLines(w, svc.Lines, svc.Trailer)
}

// Text returns the service description as it would be written.
func (svc *Service) Text() string {
	var sb strings.Builder
	svc.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes the alias service description to w.
func (a *Alias) WriteTo(w io.Writer) (int64, error) {
	return writeLines(w, a.Lines)
}

func writeFile(path string, src io.WriterTo) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()
	_, err = src.WriteTo(f)
	return err
}

// WriteService writes the service to path, replacing any existing file.
// Alias services are written first, each to the file named by the alias.
// Relative alias names are taken relative to dir, or to the working
// directory if dir is empty.  Existing alias files are overwritten.
func WriteService(dir, path string, svc *Service) error {
	for i := range svc.Aliases {
		a := &svc.Aliases[i]
		name := a.Name
		if dir != "" && !filepath.IsAbs(name) {
			name = filepath.Join(dir, name)
		}
		if e := writeFile(name, a); e != nil {
			return e
		}
	}
	return writeFile(path, svc)
}
