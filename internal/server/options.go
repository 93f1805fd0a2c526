/*
 * Options - listener configuration.
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
	"time"
)

// ServerOptions contains the argument passed as environment variables that
// influence the listeners.
type ServerOptions struct {
	// Public API host
	APIHost string `env:"API_HOST" envDefault:"0.0.0.0"`
	// Public API port
	APIPort uint16 `env:"API_PORT" envDefault:"3000"`
	// Metrics, readiness and liveness probe host
	MetricsHost string `env:"METRICS_HOST" envDefault:"0.0.0.0"`
	// Metrics, readiness and liveness probe port
	MetricsPort uint16 `env:"METRICS_PORT" envDefault:"8080"`
	// Read timeout in milliseconds
	ReadTimeout int `env:"READ_TIMEOUT" envDefault:"60000"`
	// Write timeout in milliseconds
	WriteTimeout int `env:"WRITE_TIMEOUT" envDefault:"60000"`
	// Shutdown grace period in milliseconds
	ShutdownTimeout int `env:"SHUTDOWN_TIMEOUT" envDefault:"30000"`
}

// GetAPIAddress returns the public API address as "host:port".
func (o ServerOptions) GetAPIAddress() string {
	return fmt.Sprintf("%s:%d", o.APIHost, o.APIPort)
}

// GetMetricsAddress returns the address of the metrics socket as
// "host:port".
func (o ServerOptions) GetMetricsAddress() string {
	return fmt.Sprintf("%s:%d", o.MetricsHost, o.MetricsPort)
}

// GetReadTimeout returns the read timeout.
func (o ServerOptions) GetReadTimeout() time.Duration {
	return time.Duration(o.ReadTimeout) * time.Millisecond
}

// GetWriteTimeout returns the write timeout.
func (o ServerOptions) GetWriteTimeout() time.Duration {
	return time.Duration(o.WriteTimeout) * time.Millisecond
}

// GetShutdownTimeout returns the grace period for in-flight requests.
func (o ServerOptions) GetShutdownTimeout() time.Duration {
	return time.Duration(o.ShutdownTimeout) * time.Millisecond
}
