/*
 * Gateway - hosted zone handlers.
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
	"net/http"

	"github.com/go-chi/chi/v5"

	"dns-tenant-gateway/internal/model"
)

type createZoneRequest struct {
	DomainName  string `json:"domainName" validate:"required"`
	Description string `json:"description"`
}

type updateZoneRequest struct {
	Description string `json:"description"`
}

type zonesResponse struct {
	Domains []model.HostedZone `json:"domains"`
}

// writeZones writes the zone list or the error.
func writeZones(w http.ResponseWriter, r *http.Request, zones []model.HostedZone, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	requestLog(r).Debugf("returning zones count: %d", len(zones))
	writeJSON(w, r, http.StatusOK, zonesResponse{Domains: zones})
}

// ListZones returns the zones of the tenant.
func (g *Gateway) ListZones(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	zones, err := g.zones.ListZones(r.Context(), scope.Client)
	writeZones(w, r, zones, err)
}

// CreateZone creates a zone.
func (g *Gateway) CreateZone(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req createZoneRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	zones, err := g.zones.CreateZone(r.Context(), scope.Client, req.DomainName, req.Description)
	writeZones(w, r, zones, err)
}

// UpdateZoneComment replaces the description of a zone.
func (g *Gateway) UpdateZoneComment(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req updateZoneRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	zones, err := g.zones.UpdateZoneComment(r.Context(), scope.Client, chi.URLParam(r, "hostedZoneId"), req.Description)
	writeZones(w, r, zones, err)
}

// DeleteZone deletes a zone.
func (g *Gateway) DeleteZone(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	zones, err := g.zones.DeleteZone(r.Context(), scope.Client, chi.URLParam(r, "id"))
	writeZones(w, r, zones, err)
}
