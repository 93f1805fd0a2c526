/*
 * Auth - tenant context binding.
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
package auth

import (
	"context"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"dns-tenant-gateway/internal/apierr"
	"dns-tenant-gateway/internal/dnsprovider"
	"dns-tenant-gateway/internal/metrics"
	"dns-tenant-gateway/internal/tenant"
)

// Verifier returns the tenant id carried by a token.
type Verifier interface {
	Verify(token string) (string, error)
}

// Scope is the result of binding a request to a tenant.
type Scope struct {
	Tenant tenant.Tenant
	Client *dnsprovider.ScopedClient
}

// GetLogFields returns the log fields for the scope.
func (s *Scope) GetLogFields() log.Fields {
	return log.Fields{
		"tenant": s.Tenant.ID,
		"region": s.Tenant.Credentials.Region,
	}
}

type scopeKey struct{}

// WithScope returns a copy of ctx carrying the scope.
func WithScope(ctx context.Context, scope *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

// ScopeFrom returns the scope stored in ctx, if any.
func ScopeFrom(ctx context.Context) (*Scope, bool) {
	scope, ok := ctx.Value(scopeKey{}).(*Scope)
	return scope, ok && scope != nil
}

// Binder binds requests to the tenant identified by their token.
type Binder struct {
	verifier Verifier
	tenants  tenant.Finder
	factory  dnsprovider.Factory
	metrics  *metrics.OpenMetrics
}

// NewBinder creates a Binder.
func NewBinder(verifier Verifier, tenants tenant.Finder, factory dnsprovider.Factory) *Binder {
	return &Binder{
		verifier: verifier,
		tenants:  tenants,
		factory:  factory,
		metrics:  metrics.GetOpenMetricsInstance(),
	}
}

// Bind verifies the token, loads the tenant and builds a provider client
// from the tenant's own credentials. Nothing is shared between two calls.
func (b *Binder) Bind(ctx context.Context, token string) (*Scope, error) {
	tenantID, err := b.verifier.Verify(token)
	if err != nil {
		return nil, err
	}
	t, err := b.tenants.FindTenantByID(ctx, tenantID)
	if errors.Is(err, tenant.ErrNotFound) {
		return nil, apierr.UnknownTenant(err)
	} else if err != nil {
		return nil, apierr.Internal(err)
	}
	provider, err := b.factory.New(t.Credentials)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	return &Scope{
		Tenant: *t,
		Client: dnsprovider.NewScopedClient(t.ID, t.Credentials, provider),
	}, nil
}

// Middleware rejects unauthenticated requests and stores the scope of the
// authenticated ones in the request context.
func (b *Binder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := log.WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		})
		token := TokenFromHeader(r.Header.Get("Authorization"))
		scope, err := b.Bind(r.Context(), token)
		if err != nil {
			b.metrics.IncRejectedRequestsTotal(apierr.Map(err).Kind.String())
			apierr.Write(w, entry, err)
			return
		}
		b.metrics.IncBoundRequestsTotal()
		entry.WithFields(scope.GetLogFields()).Debug("request bound to tenant")
		next.ServeHTTP(w, r.WithContext(WithScope(r.Context(), scope)))
	})
}
