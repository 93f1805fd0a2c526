/*
 * Metrics socket - probes and OpenMetrics endpoint.
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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// MetricsSocket represents the socket that serves the Open Metrics, as well as
// the liveness and readiness probes.
type MetricsSocket struct {
	status *Status
	reg    *prometheus.Registry
}

// NewMetricsSocket initializes a new MetricsSocket instance.
func NewMetricsSocket(status *Status, reg *prometheus.Registry) *MetricsSocket {
	return &MetricsSocket{
		status: status,
		reg:    reg,
	}
}

// probeHandler returns a handler that writes 200/OK when check returns true
// and 503/Service Unavailable otherwise.
func probeHandler(probe string, check func() bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		if check() {
			_, err = w.Write([]byte(http.StatusText(http.StatusOK)))
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, err = w.Write([]byte(http.StatusText(http.StatusServiceUnavailable)))
		}
		if err != nil {
			log.Warnf("Could not answer to a %s probe: %s", probe, err.Error())
		}
	}
}

// livenessHandler checks if the server is healthy.
func (s MetricsSocket) livenessHandler(w http.ResponseWriter, r *http.Request) {
	probeHandler("liveness", s.status.IsHealthy)(w, r)
}

// readinessHandler checks if the server is ready.
func (s MetricsSocket) readinessHandler(w http.ResponseWriter, r *http.Request) {
	probeHandler("readiness", s.status.IsReady)(w, r)
}

// healthzHandler checks if the server is live AND ready.
func (s MetricsSocket) healthzHandler(w http.ResponseWriter, r *http.Request) {
	probeHandler("healthz", func() bool {
		return s.status.IsHealthy() && s.status.IsReady()
	})(w, r)
}

// handler builds the mux for the socket.
func (s *MetricsSocket) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ready", s.readinessHandler)
	mux.HandleFunc("/health", s.livenessHandler)
	mux.HandleFunc("/healthz", s.healthzHandler)
	if s.reg != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{}))
	}
	return mux
}

// Start starts the metrics socket and blocks until ctx is done or the server
// fails. startedChan, when not nil, receives a value once the listener is
// bound.
func (s *MetricsSocket) Start(ctx context.Context, startedChan chan struct{}, options ServerOptions) error {
	address := options.GetMetricsAddress()
	srv := &http.Server{
		Addr:         address,
		Handler:      s.handler(),
		ReadTimeout:  options.GetReadTimeout(),
		WriteTimeout: options.GetWriteTimeout(),
	}

	l, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}

	if startedChan != nil {
		startedChan <- struct{}{}
	}

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Warnf("Error shutting down the metrics socket: %v", err)
		}
	}()

	if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
