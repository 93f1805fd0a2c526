/*
 * Status - server status.
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

import "sync/atomic"

// Status contains the health and ready statuses for the gateway. The gateway
// is ready once the tenant store is open and the API listener is bound.
type Status struct {
	healthy atomic.Bool
	ready   atomic.Bool
}

// SetHealthy sets the health status.
func (s *Status) SetHealthy(v bool) {
	s.healthy.Store(v)
}

// SetReady sets the readiness status.
func (s *Status) SetReady(v bool) {
	s.ready.Store(v)
}

// IsHealthy returns the healthy flag.
func (s *Status) IsHealthy() bool {
	return s.healthy.Load()
}

// IsReady returns the readiness status.
func (s *Status) IsReady() bool {
	return s.ready.Load()
}

// newStatus builds a status with the given flags.
func newStatus(healthy, ready bool) *Status {
	s := &Status{}
	s.healthy.Store(healthy)
	s.ready.Store(ready)
	return s
}
