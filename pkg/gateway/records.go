/*
 * Gateway - record set handlers.
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
package gateway

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dns-tenant-gateway/internal/dnsprovider"
	"dns-tenant-gateway/internal/model"
)

// bulkImportRequest carries the rows as a JSON string. A blank string is an
// empty import.
type bulkImportRequest struct {
	JSONData string `json:"jsonData"`
}

type recordsResponse struct {
	ResourceRecordSets []model.RecordSet `json:"ResourceRecordSets"`
}

// recordEdit is a single record operation of the reconciler.
type recordEdit func(ctx context.Context, sc *dnsprovider.ScopedClient, zone string, rs model.RecordSet) ([]model.RecordSet, error)

// writeRecords writes the record list or the error.
func writeRecords(w http.ResponseWriter, r *http.Request, sets []model.RecordSet, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	requestLog(r).Debugf("returning record sets count: %d", len(sets))
	writeJSON(w, r, http.StatusOK, recordsResponse{ResourceRecordSets: sets})
}

// ListRecords returns the record sets of a zone.
func (g *Gateway) ListRecords(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	sets, err := g.records.ListRecords(r.Context(), scope.Client, chi.URLParam(r, "hostedZoneId"))
	writeRecords(w, r, sets, err)
}

// editRecord decodes a record set and applies edit to it. The record set is
// validated by the reconciler.
func (g *Gateway) editRecord(w http.ResponseWriter, r *http.Request, edit recordEdit) {
	scope, err := scopeOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var rs model.RecordSet
	if err := decodeBody(w, r, &rs); err != nil {
		writeError(w, r, err)
		return
	}
	sets, err := edit(r.Context(), scope.Client, chi.URLParam(r, "hostedZoneId"), rs)
	writeRecords(w, r, sets, err)
}

// CreateRecord creates a record set.
func (g *Gateway) CreateRecord(w http.ResponseWriter, r *http.Request) {
	g.editRecord(w, r, g.records.CreateRecord)
}

// UpsertRecord creates or replaces a record set.
func (g *Gateway) UpsertRecord(w http.ResponseWriter, r *http.Request) {
	g.editRecord(w, r, g.records.UpsertRecord)
}

// DeleteRecord deletes a record set.
func (g *Gateway) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	g.editRecord(w, r, g.records.DeleteRecord)
}

// BulkImport upserts the rows of a bulk payload at the zone apex.
func (g *Gateway) BulkImport(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req bulkImportRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	sets, err := g.records.BulkImport(r.Context(), scope.Client, chi.URLParam(r, "hostedZoneId"), req.JSONData)
	writeRecords(w, r, sets, err)
}

// ExportZoneFile returns the record sets of a zone as a zone file.
func (g *Gateway) ExportZoneFile(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	file, err := g.records.ExportZoneFile(r.Context(), scope.Client, chi.URLParam(r, "hostedZoneId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/dns")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(file)); err != nil {
		requestLog(r).WithField("error", err).Warn("could not write zone file")
	}
}
