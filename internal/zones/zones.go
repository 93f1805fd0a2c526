/*
 * Zones - hosted zone management.
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
package zones

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/idna"

	"dns-tenant-gateway/internal/apierr"
	"dns-tenant-gateway/internal/dnsprovider"
	"dns-tenant-gateway/internal/model"
)

// Manager manages the hosted zones of the tenant bound to a ScopedClient.
type Manager struct {
	refs *callerRefs
}

// NewManager creates a Manager.
func NewManager() *Manager {
	return &Manager{refs: newCallerRefs()}
}

// toView converts a Route 53 hosted zone into its normalized view.
func toView(z types.HostedZone) model.HostedZone {
	view := model.HostedZone{
		ID:                     dnsprovider.BareZoneID(aws.ToString(z.Id)),
		Name:                   aws.ToString(z.Name),
		ResourceRecordSetCount: aws.ToInt64(z.ResourceRecordSetCount),
	}
	if z.Config != nil {
		view.Description = aws.ToString(z.Config.Comment)
	}
	return view
}

// ListZones returns all the zones of the tenant.
func (m *Manager) ListZones(ctx context.Context, sc *dnsprovider.ScopedClient) ([]model.HostedZone, error) {
	zones, err := sc.Provider().ListHostedZones(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]model.HostedZone, 0, len(zones))
	for _, z := range zones {
		views = append(views, toView(z))
	}
	return views, nil
}

// normalizeName converts a zone name to its ASCII form.
func normalizeName(name string) (string, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".")
	if name == "" {
		return "", apierr.Validation("Invalid Body", "domainName is required")
	}
	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return "", apierr.Validation("Invalid Body", fmt.Sprintf("domainName: %q is not a valid domain name", name))
	}
	return ascii, nil
}

// CreateZone creates a public hosted zone and returns the refreshed list.
func (m *Manager) CreateZone(ctx context.Context, sc *dnsprovider.ScopedClient, name, description string) ([]model.HostedZone, error) {
	ascii, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	ref := m.refs.next()
	zone, err := sc.Provider().CreateHostedZone(ctx, ascii, ref, description)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"tenant":    sc.TenantID(),
		"zone":      aws.ToString(zone.Id),
		"name":      ascii,
		"callerRef": ref,
	}).Info("hosted zone created")
	return m.ListZones(ctx, sc)
}

// UpdateZoneComment replaces the comment of a zone and returns the refreshed
// list.
func (m *Manager) UpdateZoneComment(ctx context.Context, sc *dnsprovider.ScopedClient, id, description string) ([]model.HostedZone, error) {
	id, err := dnsprovider.ZoneID(id)
	if err != nil {
		return nil, err
	}
	if err := sc.Provider().UpdateHostedZoneComment(ctx, id, description); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"tenant": sc.TenantID(), "zone": id}).Info("hosted zone comment updated")
	return m.ListZones(ctx, sc)
}

// DeleteZone deletes a zone and returns the refreshed list. Provider
// failures, such as a zone still holding records, are returned unchanged.
func (m *Manager) DeleteZone(ctx context.Context, sc *dnsprovider.ScopedClient, id string) ([]model.HostedZone, error) {
	id, err := dnsprovider.ZoneID(id)
	if err != nil {
		return nil, err
	}
	if err := sc.Provider().DeleteHostedZone(ctx, id); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"tenant": sc.TenantID(), "zone": id}).Info("hosted zone deleted")
	return m.ListZones(ctx, sc)
}

// Probe checks that a provider built from candidate credentials can list
// zones. Every failure is reported as InvalidCredentials.
func Probe(ctx context.Context, p dnsprovider.Provider) error {
	if _, err := p.ListHostedZones(ctx); err != nil {
		return apierr.InvalidCredentials(err)
	}
	return nil
}
