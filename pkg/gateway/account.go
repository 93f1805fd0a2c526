/*
 * Gateway - account handlers.
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

	"dns-tenant-gateway/internal/users"
)

type tokenResponse struct {
	Token string `json:"token"`
}

// Signup creates a tenant after probing its credentials.
func (g *Gateway) Signup(w http.ResponseWriter, r *http.Request) {
	var req users.SignupRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	token, err := g.users.Signup(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	requestLog(r).WithFields(req.GetLogFields()).Info("signup completed")
	writeJSON(w, r, http.StatusOK, tokenResponse{Token: token})
}

// Signin returns a token for valid email and password.
func (g *Gateway) Signin(w http.ResponseWriter, r *http.Request) {
	var req users.SigninRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	token, err := g.users.Signin(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, tokenResponse{Token: token})
}

// Profile returns the profile of the bound tenant.
func (g *Gateway) Profile(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, users.ProfileOf(scope.Tenant))
}
