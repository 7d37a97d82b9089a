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

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/unit2srv/unit2srv"
)

// Handler converts unit files posted to it, adding http.Handler
// functionality to the converter.
type Handler struct {
	logger *log.Logger
	r      *mux.Router
}

func (h *Handler) internalError(w http.ResponseWriter, e error) {
	http.Error(w, e.Error(), http.StatusInternalServerError)
}

func (h *Handler) writeJson(w http.ResponseWriter, v interface{}) {
	if b, e := json.Marshal(v); e != nil {
		h.internalError(w, e)
	} else {
		w.Header().Set("Content-Type", mimeJson)
		w.Write(b)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, e *Error) {
	if b, err := json.Marshal(e); err != nil {
		h.internalError(w, err)
	} else {
		w.Header().Set("Content-Type", mimeJson)
		w.WriteHeader(e.Code)
		w.Write(b)
	}
}

func (h *Handler) listKeys(w http.ResponseWriter, r *http.Request) {
	h.writeJson(w, unit2srv.Keys())
}

func (h *Handler) convert(w http.ResponseWriter, r *http.Request) {
	target := strings.TrimSpace(r.URL.Query().Get("target"))
	if target == "" {
		target = DefaultTarget
	}

	unit, err := unit2srv.ReadUnit(r.Body)
	if err != nil {
		h.writeError(w, &Error{http.StatusBadRequest, err.Error()})
		return
	}

	// Diagnostics go back to the caller, and to our own log as well.
	diag := unit2srv.NewLog(0)
	ml := unit2srv.NewMultiLogger(log.New(diag, "", 0), h.logger)

	c := unit2srv.NewConverter(target)
	c.SetLogger(ml.Logger())
	svc, err := c.Convert(unit)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, unit2srv.ErrUnsupportedType) {
			code = http.StatusUnprocessableEntity
		}
		h.writeError(w, &Error{code, err.Error()})
		return
	}

	res := &ConvertResult{
		Target:      target,
		Service:     svc.Text(),
		Aliases:     make([]AliasInfo, 0, len(svc.Aliases)),
		Diagnostics: diag.Lines(),
	}
	for i := range svc.Aliases {
		a := &svc.Aliases[i]
		var sb strings.Builder
		a.WriteTo(&sb)
		res.Aliases = append(res.Aliases, AliasInfo{
			Name:    a.Name,
			Service: sb.String(),
		})
	}
	h.writeJson(w, res)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.r.ServeHTTP(w, req)
}

// NewHandler returns a Handler.  Diagnostics of every conversion are
// also written to logger, unless it is nil.
func NewHandler(logger *log.Logger) *Handler {
	r := mux.NewRouter()
	h := &Handler{logger: logger, r: r}
	r.HandleFunc("/keys", h.listKeys).Methods("GET")
	r.HandleFunc("/convert", h.convert).Methods("POST")
	return h
}
