/*
 * Server - public API server.
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
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"

	"dns-tenant-gateway/cmd/gateway/init/configuration"
	"dns-tenant-gateway/internal/server"
	"dns-tenant-gateway/pkg/gateway"
)

// NewRouter builds the router of the public API.
func NewRouter(config configuration.Config, g *gateway.Gateway) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: config.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	g.Routes(r)
	return r
}

// Init binds the listener and serves the API in background. startedChan,
// when not nil, receives a value once the listener is bound.
func Init(options server.ServerOptions, handler http.Handler, startedChan chan struct{}) (*http.Server, error) {
	srv := createHTTPServer(options, handler)
	l, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, err
	}
	go func() {
		log.Infof("starting server on addr: '%s' ", srv.Addr)
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("can't serve on addr: '%s', error: %v", srv.Addr, err)
		}
	}()
	if startedChan != nil {
		startedChan <- struct{}{}
	}
	return srv, nil
}

func createHTTPServer(options server.ServerOptions, hand http.Handler) *http.Server {
	return &http.Server{
		ReadTimeout:       options.GetReadTimeout(),
		WriteTimeout:      options.GetWriteTimeout(),
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		Addr:              options.GetAPIAddress(),
		Handler:           hand,
	}
}

// ShutdownGracefully shuts the server down, waiting for in-flight requests
// up to the configured grace period.
func ShutdownGracefully(srv *http.Server, options server.ServerOptions) {
	ctx, cancel := context.WithTimeout(context.Background(), options.GetShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("error shutting down server: %v", err)
	}
}
