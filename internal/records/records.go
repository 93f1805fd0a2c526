/*
 * Records - record set reconciliation.
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
package records

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	log "github.com/sirupsen/logrus"

	"dns-tenant-gateway/internal/apierr"
	"dns-tenant-gateway/internal/dnsprovider"
	"dns-tenant-gateway/internal/model"
	"dns-tenant-gateway/internal/validation"
	"dns-tenant-gateway/internal/zonefile"
)

// createTTL is the TTL of every record set created through CreateRecord.
const createTTL = 300

// Reconciler translates record edits into Route 53 change batches.
type Reconciler struct{}

// NewReconciler creates a Reconciler.
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// ListRecords returns all the record sets of a zone.
func (r *Reconciler) ListRecords(ctx context.Context, sc *dnsprovider.ScopedClient, zone string) ([]model.RecordSet, error) {
	id, err := dnsprovider.ZoneID(zone)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, sc, id)
}

func (r *Reconciler) list(ctx context.Context, sc *dnsprovider.ScopedClient, id string) ([]model.RecordSet, error) {
	sets, err := sc.Provider().ListResourceRecordSets(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]model.RecordSet, 0, len(sets))
	for _, rs := range sets {
		out = append(out, fromRoute53(rs))
	}
	return out, nil
}

// submit sends the changes as one batch and returns the refreshed list.
func (r *Reconciler) submit(ctx context.Context, sc *dnsprovider.ScopedClient, id string, changes []types.Change) ([]model.RecordSet, error) {
	for _, c := range changes {
		log.WithFields(getChangeLogFields(c)).WithFields(log.Fields{
			"tenant": sc.TenantID(),
			"zone":   id,
		}).Debug("submitting change")
	}
	batch := &types.ChangeBatch{Changes: changes}
	if err := sc.Provider().ChangeResourceRecordSets(ctx, id, batch); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"tenant":  sc.TenantID(),
		"zone":    id,
		"changes": len(changes),
	}).Info("change batch submitted")
	return r.list(ctx, sc, id)
}

// single validates the record and submits it as a one change batch.
func (r *Reconciler) single(ctx context.Context, sc *dnsprovider.ScopedClient, zone string, action types.ChangeAction, rs model.RecordSet) ([]model.RecordSet, error) {
	id, err := dnsprovider.ZoneID(zone)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(rs); err != nil {
		return nil, err
	}
	return r.submit(ctx, sc, id, []types.Change{newChange(action, rs)})
}

// DeleteRecord deletes the record set exactly as given. Route 53 only
// deletes a record set matching the stored one.
func (r *Reconciler) DeleteRecord(ctx context.Context, sc *dnsprovider.ScopedClient, zone string, rs model.RecordSet) ([]model.RecordSet, error) {
	return r.single(ctx, sc, zone, types.ChangeActionDelete, rs)
}

// CreateRecord creates a record set. The TTL is always createTTL, except for
// alias record sets which take the TTL of their target.
func (r *Reconciler) CreateRecord(ctx context.Context, sc *dnsprovider.ScopedClient, zone string, rs model.RecordSet) ([]model.RecordSet, error) {
	if rs.AliasTarget == nil {
		rs.TTL = createTTL
	} else {
		rs.TTL = 0
	}
	return r.single(ctx, sc, zone, types.ChangeActionCreate, rs)
}

// UpsertRecord creates or replaces a record set with the given TTL.
func (r *Reconciler) UpsertRecord(ctx context.Context, sc *dnsprovider.ScopedClient, zone string, rs model.RecordSet) ([]model.RecordSet, error) {
	return r.single(ctx, sc, zone, types.ChangeActionUpsert, rs)
}

// ParseBulk decodes and validates a bulk import payload.
func ParseBulk(payload string) ([]model.BulkImportRow, error) {
	if strings.TrimSpace(payload) == "" {
		return nil, apierr.EmptyImport()
	}
	var rows []model.BulkImportRow
	if err := json.Unmarshal([]byte(payload), &rows); err != nil {
		return nil, apierr.Validation("Invalid jsonData", err.Error())
	}
	if len(rows) == 0 {
		return nil, apierr.EmptyImport()
	}
	var violations []string
	for i, row := range rows {
		if err := validation.Validator().Struct(row); err != nil {
			for _, v := range validation.Violations(err) {
				violations = append(violations, fmt.Sprintf("jsonData[%d].%s", i, v))
			}
		}
	}
	if len(violations) > 0 {
		return nil, apierr.Validation("Invalid jsonData", violations...)
	}
	return rows, nil
}

// BulkImport upserts every row of the payload at the zone apex in a single
// change batch. Rows sharing the same type are resolved by Route 53.
func (r *Reconciler) BulkImport(ctx context.Context, sc *dnsprovider.ScopedClient, zone, payload string) ([]model.RecordSet, error) {
	id, err := dnsprovider.ZoneID(zone)
	if err != nil {
		return nil, err
	}
	rows, err := ParseBulk(payload)
	if err != nil {
		return nil, err
	}
	hz, err := sc.Provider().GetHostedZone(ctx, id)
	if err != nil {
		return nil, err
	}
	apex := strings.TrimSuffix(aws.ToString(hz.Name), ".")

	changes := make([]types.Change, 0, len(rows))
	for _, row := range rows {
		changes = append(changes, newChange(types.ChangeActionUpsert, model.RecordSet{
			Name:            apex,
			Type:            row.Type,
			TTL:             row.TTL,
			ResourceRecords: []model.ResourceRecord{{Value: row.Value}},
		}))
	}
	return r.submit(ctx, sc, id, changes)
}

// ExportZoneFile renders the record sets of a zone as a zone file.
func (r *Reconciler) ExportZoneFile(ctx context.Context, sc *dnsprovider.ScopedClient, zone string) (string, error) {
	id, err := dnsprovider.ZoneID(zone)
	if err != nil {
		return "", err
	}
	hz, err := sc.Provider().GetHostedZone(ctx, id)
	if err != nil {
		return "", err
	}
	sets, err := r.list(ctx, sc, id)
	if err != nil {
		return "", err
	}
	file, err := zonefile.Export(aws.ToString(hz.Name), sets)
	if err != nil {
		return "", apierr.Internal(err)
	}
	return file, nil
}
