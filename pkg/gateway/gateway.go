/*
 * Gateway - HTTP handlers.
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
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"dns-tenant-gateway/internal/apierr"
	"dns-tenant-gateway/internal/auth"
	"dns-tenant-gateway/internal/records"
	"dns-tenant-gateway/internal/users"
	"dns-tenant-gateway/internal/validation"
	"dns-tenant-gateway/internal/zones"
)

const (
	contentTypeHeader     = "Content-Type"
	contentTypeJSON       = "application/json"
	healthMessage         = "Health Check"
	logFieldRequestPath   = "requestPath"
	logFieldRequestMethod = "requestMethod"
	logFieldTenant        = "tenant"
	logFieldError         = "error"
	maxBodyBytes          = 1 << 20
)

// Binder wraps handlers so that they run bound to a tenant.
type Binder interface {
	Middleware(next http.Handler) http.Handler
}

// Gateway exposes the zone, record and account operations over HTTP.
type Gateway struct {
	binder  Binder
	zones   *zones.Manager
	records *records.Reconciler
	users   *users.Service
}

// New creates a Gateway.
func New(binder Binder, zm *zones.Manager, rc *records.Reconciler, us *users.Service) *Gateway {
	return &Gateway{
		binder:  binder,
		zones:   zm,
		records: rc,
		users:   us,
	}
}

// Routes registers the gateway routes on r.
func (g *Gateway) Routes(r chi.Router) {
	r.Get("/", g.Health)
	r.Route("/user", func(r chi.Router) {
		r.Post("/signup", g.Signup)
		r.Post("/signin", g.Signin)
		r.With(g.binder.Middleware).Get("/", g.Profile)
	})
	r.Route("/domain", func(r chi.Router) {
		r.Use(g.binder.Middleware)
		r.Get("/", g.ListZones)
		r.Post("/", g.CreateZone)
		r.Post("/{hostedZoneId}", g.UpdateZoneComment)
		r.Delete("/{id}", g.DeleteZone)
	})
	r.Route("/record", func(r chi.Router) {
		r.Use(g.binder.Middleware)
		r.Get("/{hostedZoneId}", g.ListRecords)
		r.Get("/{hostedZoneId}/zonefile", g.ExportZoneFile)
		r.Post("/create/{hostedZoneId}", g.CreateRecord)
		r.Post("/update/{hostedZoneId}", g.UpsertRecord)
		r.Post("/delete/{hostedZoneId}", g.DeleteRecord)
		r.Post("/bulk/{hostedZoneId}", g.BulkImport)
	})
}

// requestLog returns the log entry of a request.
func requestLog(r *http.Request) *log.Entry {
	entry := log.WithFields(log.Fields{
		logFieldRequestMethod: r.Method,
		logFieldRequestPath:   r.URL.Path,
	})
	if scope, ok := auth.ScopeFrom(r.Context()); ok {
		entry = entry.WithField(logFieldTenant, scope.Tenant.ID)
	}
	return entry
}

// writeJSON writes v with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set(contentTypeHeader, contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		requestLog(r).WithField(logFieldError, err).Error("error encoding response")
	}
}

// writeError maps err and writes the error response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apierr.Write(w, requestLog(r), err)
}

// decodeBody decodes the JSON body of r into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apierr.Validation("Invalid Body", "request body is empty")
		}
		return apierr.Validation("Invalid Body", err.Error())
	}
	return nil
}

// decodeAndValidate decodes the body and validates it.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) error {
	if err := decodeBody(w, r, v); err != nil {
		return err
	}
	return validation.Struct(v)
}

// scopeOf returns the scope bound by the middleware.
func scopeOf(r *http.Request) (*auth.Scope, error) {
	scope, ok := auth.ScopeFrom(r.Context())
	if !ok {
		return nil, apierr.Internal(errors.New("request is not bound to a tenant"))
	}
	return scope, nil
}

// Health answers the root path.
func (g *Gateway) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, healthMessage)
}
