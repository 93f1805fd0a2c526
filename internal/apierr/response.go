/*
 * API errors - JSON responses.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package apierr

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// Body is the JSON body written for every failure.
type Body struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// GetLogFields returns the log fields for this error.
func (e *Error) GetLogFields() log.Fields {
	fields := log.Fields{
		"kind":   e.Kind.String(),
		"status": e.Status(),
	}
	if e.Err != nil {
		fields["cause"] = e.Err.Error()
	}
	return fields
}

// Write maps err and writes the corresponding status and JSON body.
func Write(w http.ResponseWriter, entry *log.Entry, err error) {
	e := Map(err)
	status := e.Status()
	logEntry := entry.WithFields(e.GetLogFields())
	switch e.Class() {
	case ClassRejection:
		logEntry.Info(e.Message)
	default:
		logEntry.Error(e.Message)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := Body{Message: e.Message, Errors: e.Violations}
	if encErr := json.NewEncoder(w).Encode(body); encErr != nil {
		entry.WithField("error", encErr).Warn("could not encode error body")
	}
}
