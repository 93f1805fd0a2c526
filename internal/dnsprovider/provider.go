/*
 * Provider - DNS provider capability and per-request scoped client.
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
package dnsprovider

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/route53/types"

	"dns-tenant-gateway/internal/apierr"
	"dns-tenant-gateway/internal/model"
)

// zoneIDPrefix is the prefix Route 53 puts in front of hosted zone ids.
const zoneIDPrefix = "/hostedzone/"

// BareZoneID strips the Route 53 prefix from a hosted zone id.
func BareZoneID(id string) string {
	return strings.TrimPrefix(id, zoneIDPrefix)
}

// ZoneID validates a hosted zone id received from a caller and returns it
// without prefix. A blank id is an InvalidZone error.
func ZoneID(id string) (string, error) {
	id = BareZoneID(strings.TrimSpace(id))
	if id == "" {
		return "", apierr.InvalidZone()
	}
	return id, nil
}

// Provider is the set of hosted zone and record set operations used by the
// gateway. Every method fails with the provider error, which carries the
// provider status code when one was returned.
type Provider interface {
	// ListHostedZones returns all the hosted zones, following pagination.
	ListHostedZones(ctx context.Context) ([]types.HostedZone, error)
	// CreateHostedZone creates a hosted zone.
	CreateHostedZone(ctx context.Context, name, callerRef, comment string) (*types.HostedZone, error)
	// UpdateHostedZoneComment replaces the comment of a hosted zone.
	UpdateHostedZoneComment(ctx context.Context, id, comment string) error
	// DeleteHostedZone deletes a hosted zone.
	DeleteHostedZone(ctx context.Context, id string) error
	// GetHostedZone returns a single hosted zone.
	GetHostedZone(ctx context.Context, id string) (*types.HostedZone, error)
	// ListResourceRecordSets returns all the record sets of a zone,
	// following pagination.
	ListResourceRecordSets(ctx context.Context, zoneID string) ([]types.ResourceRecordSet, error)
	// ChangeResourceRecordSets submits a change batch, which Route 53
	// applies atomically.
	ChangeResourceRecordSets(ctx context.Context, zoneID string, batch *types.ChangeBatch) error
}

// Factory builds a Provider bound to a credential triple.
type Factory interface {
	New(creds model.Credentials) (Provider, error)
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(creds model.Credentials) (Provider, error)

// New calls f.
func (f FactoryFunc) New(creds model.Credentials) (Provider, error) {
	return f(creds)
}

// ScopedClient pairs the credentials of one tenant with a provider client
// built from them. It lives for a single request and is never shared.
type ScopedClient struct {
	tenantID    string
	credentials model.Credentials
	provider    Provider
}

// NewScopedClient returns a ScopedClient for the given tenant.
func NewScopedClient(tenantID string, creds model.Credentials, provider Provider) *ScopedClient {
	return &ScopedClient{
		tenantID:    tenantID,
		credentials: creds,
		provider:    provider,
	}
}

// TenantID returns the id of the tenant owning the client.
func (s *ScopedClient) TenantID() string {
	return s.tenantID
}

// Credentials returns a copy of the credentials the client was built from.
func (s *ScopedClient) Credentials() model.Credentials {
	return s.credentials
}

// Provider returns the provider client.
func (s *ScopedClient) Provider() Provider {
	return s.provider
}
