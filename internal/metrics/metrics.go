/*
 * Metrics - OpenMetrics implementation.
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
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics instance
var (
	metrics     *OpenMetrics
	metricsLock sync.Mutex
)

type OpenMetrics struct {
	registry *prometheus.Registry

	successfulApiCallsTotal *prometheus.CounterVec
	failedApiCallsTotal     *prometheus.CounterVec
	apiDelayHist            *prometheus.HistogramVec

	rejectedRequestsTotal *prometheus.CounterVec
	boundRequestsTotal    prometheus.Counter
}

// GetOpenMetricsInstance returns the current OpenMetrics instance or creates a
// new one if required.
func GetOpenMetricsInstance() *OpenMetrics {
	metricsLock.Lock()
	defer metricsLock.Unlock()
	if metrics == nil {
		reg := prometheus.NewRegistry()
		metrics = &OpenMetrics{
			registry: reg,
			successfulApiCallsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "successful_api_calls_total",
					Help: "The number of successful Route 53 API calls",
				},
				[]string{"action"},
			),
			failedApiCallsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "failed_api_calls_total",
					Help: "The number of Route 53 API calls that returned an error",
				},
				[]string{"action"},
			),
			apiDelayHist: prometheus.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "api_delay_hist",
					Help:    "Histogram of the delay in milliseconds when calling the Route 53 API",
					Buckets: []float64{10, 100, 250, 500, 1000, 1500, 2000},
				},
				[]string{"action"},
			),
			rejectedRequestsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "rejected_requests_total",
					Help: "The number of requests rejected before reaching Route 53",
				},
				[]string{"reason"},
			),
			boundRequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
				Name: "bound_requests_total",
				Help: "The number of requests bound to a tenant's credentials",
			}),
		}
		reg.MustRegister(metrics.successfulApiCallsTotal)
		reg.MustRegister(metrics.failedApiCallsTotal)
		reg.MustRegister(metrics.apiDelayHist)
		reg.MustRegister(metrics.rejectedRequestsTotal)
		reg.MustRegister(metrics.boundRequestsTotal)
	}
	return metrics
}

// getLabels builds the label map.
func getLabels(action string) prometheus.Labels {
	return prometheus.Labels{"action": action}
}

// GetRegistry returns the registry holding the metrics.
func (m OpenMetrics) GetRegistry() *prometheus.Registry {
	return m.registry
}

// IncSuccessfulApiCallsTotal increments the successful_api_calls_total counter.
func (m *OpenMetrics) IncSuccessfulApiCallsTotal(action string) {
	m.successfulApiCallsTotal.With(getLabels(action)).Inc()
}

// IncFailedApiCallsTotal increments the failed_api_calls_total counter.
func (m *OpenMetrics) IncFailedApiCallsTotal(action string) {
	m.failedApiCallsTotal.With(getLabels(action)).Inc()
}

// AddApiDelayHist adds an API delay in milliseconds to the histogram.
func (m *OpenMetrics) AddApiDelayHist(action string, delay int64) {
	m.apiDelayHist.With(getLabels(action)).Observe(float64(delay))
}

// IncRejectedRequestsTotal increments the rejected_requests_total counter.
func (m *OpenMetrics) IncRejectedRequestsTotal(reason string) {
	m.rejectedRequestsTotal.With(prometheus.Labels{"reason": reason}).Inc()
}

// IncBoundRequestsTotal increments the bound_requests_total counter.
func (m *OpenMetrics) IncBoundRequestsTotal() {
	m.boundRequestsTotal.Inc()
}
