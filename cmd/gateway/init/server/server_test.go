/*
 * Server - unit tests.
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
package server

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"dns-tenant-gateway/cmd/gateway/init/configuration"
	"dns-tenant-gateway/internal/auth"
	"dns-tenant-gateway/internal/dnsprovider/dnsprovidertest"
	"dns-tenant-gateway/internal/records"
	"dns-tenant-gateway/internal/server"
	"dns-tenant-gateway/internal/tenant"
	"dns-tenant-gateway/internal/users"
	"dns-tenant-gateway/internal/zones"
	"dns-tenant-gateway/pkg/gateway"
)

func newTestGateway(t *testing.T) *gateway.Gateway {
	t.Helper()
	store, err := tenant.NewBoltStore(filepath.Join(t.TempDir(), "tenants.db"), bcrypt.MinCost)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	issuer, err := auth.NewTokenIssuer([]byte("secret"), 0)
	require.NoError(t, err)
	factory := dnsprovidertest.NewFactory()
	return gateway.New(
		auth.NewBinder(issuer, tenant.NewCachedFinder(store, 16, 0), factory),
		zones.NewManager(),
		records.NewReconciler(),
		users.NewService(store, issuer, factory),
	)
}

func Test_NewRouter_CORS(t *testing.T) {
	type testCase struct {
		name     string
		origins  []string
		origin   string
		expected []string
	}

	run := func(t *testing.T, tc testCase) {
		handler := NewRouter(configuration.Config{CORSAllowedOrigins: tc.origins}, newTestGateway(t))
		req := httptest.NewRequest(http.MethodOptions, "/domain", nil)
		req.Header.Set("Origin", tc.origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		req.Header.Set("Access-Control-Request-Headers", "Authorization")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Contains(t, tc.expected, rec.Header().Get("Access-Control-Allow-Origin"))
	}

	testCases := []testCase{
		{
			name:     "any origin",
			origins:  []string{"*"},
			origin:   "https://ui.example.com",
			expected: []string{"*", "https://ui.example.com"},
		},
		{
			name:     "listed origin",
			origins:  []string{"https://ui.example.com"},
			origin:   "https://ui.example.com",
			expected: []string{"https://ui.example.com"},
		},
		{
			name:     "other origin",
			origins:  []string{"https://ui.example.com"},
			origin:   "https://evil.example.com",
			expected: []string{""},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
}

func Test_NewRouter_Protected(t *testing.T) {
	handler := NewRouter(configuration.Config{CORSAllowedOrigins: []string{"*"}}, newTestGateway(t))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/domain", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Token not found"}`, rec.Body.String())
}

func Test_InitAndShutdown(t *testing.T) {
	options := server.ServerOptions{
		APIHost:         "127.0.0.1",
		APIPort:         0,
		ReadTimeout:     1000,
		WriteTimeout:    1000,
		ShutdownTimeout: 1000,
	}
	handler := NewRouter(configuration.Config{CORSAllowedOrigins: []string{"*"}}, newTestGateway(t))
	started := make(chan struct{}, 1)

	srv, err := Init(options, handler, started)
	require.NoError(t, err)
	<-started

	// The listener was bound on a random port; serve through the same
	// handler to check the wiring.
	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()
	resp, err := http.Get(fmt.Sprintf("%s/", ts.URL))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `"Health Check"`, string(body))

	ShutdownGracefully(srv, options)
	assert.ErrorIs(t, srv.ListenAndServe(), http.ErrServerClosed)
}

func Test_Init_BadAddress(t *testing.T) {
	options := server.ServerOptions{APIHost: "256.0.0.1", APIPort: 1}

	srv, err := Init(options, http.NotFoundHandler(), nil)

	assert.Error(t, err)
	assert.Nil(t, srv)
}
