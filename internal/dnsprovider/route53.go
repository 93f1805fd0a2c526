/*
 * Route 53 - API calls towards Amazon Route 53.
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
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	log "github.com/sirupsen/logrus"

	"dns-tenant-gateway/internal/metrics"
)

const (
	// Action constants used for metrics.
	actListHostedZones          = "list_hosted_zones"
	actCreateHostedZone         = "create_hosted_zone"
	actUpdateHostedZoneComment  = "update_hosted_zone_comment"
	actDeleteHostedZone         = "delete_hosted_zone"
	actGetHostedZone            = "get_hosted_zone"
	actListResourceRecordSets   = "list_resource_record_sets"
	actChangeResourceRecordSets = "change_resource_record_sets"
)

// route53Provider implements Provider on top of the Route 53 SDK client.
type route53Provider struct {
	client   apiClient
	metrics  *metrics.OpenMetrics
	pageSize int32
}

// observe records the outcome and the delay of an API call.
func (p route53Provider) observe(action string, start time.Time, err error) {
	if err != nil {
		p.metrics.IncFailedApiCallsTotal(action)
		log.WithFields(log.Fields{"action": action, "error": err}).Debug("Route 53 call failed")
		return
	}
	p.metrics.IncSuccessfulApiCallsTotal(action)
	p.metrics.AddApiDelayHist(action, time.Since(start).Milliseconds())
}

// maxItems returns the page size to request, nil meaning the API default.
func (p route53Provider) maxItems() *int32 {
	if p.pageSize <= 0 {
		return nil
	}
	return aws.Int32(p.pageSize)
}

// ListHostedZones fetches all the hosted zones.
func (p route53Provider) ListHostedZones(ctx context.Context) ([]types.HostedZone, error) {
	zones := []types.HostedZone{}
	input := &route53.ListHostedZonesInput{MaxItems: p.maxItems()}

	for {
		start := time.Now()
		out, err := p.client.ListHostedZones(ctx, input)
		p.observe(actListHostedZones, start, err)
		if err != nil {
			return nil, err
		}
		zones = append(zones, out.HostedZones...)

		if !out.IsTruncated || out.NextMarker == nil {
			break
		}
		input.Marker = out.NextMarker
	}

	return zones, nil
}

// CreateHostedZone creates a public hosted zone.
func (p route53Provider) CreateHostedZone(ctx context.Context, name, callerRef, comment string) (*types.HostedZone, error) {
	input := &route53.CreateHostedZoneInput{
		Name:            aws.String(name),
		CallerReference: aws.String(callerRef),
		HostedZoneConfig: &types.HostedZoneConfig{
			Comment: aws.String(comment),
		},
	}
	start := time.Now()
	out, err := p.client.CreateHostedZone(ctx, input)
	p.observe(actCreateHostedZone, start, err)
	if err != nil {
		return nil, err
	}
	return out.HostedZone, nil
}

// UpdateHostedZoneComment replaces the comment of a hosted zone.
func (p route53Provider) UpdateHostedZoneComment(ctx context.Context, id, comment string) error {
	input := &route53.UpdateHostedZoneCommentInput{
		Id:      aws.String(id),
		Comment: aws.String(comment),
	}
	start := time.Now()
	_, err := p.client.UpdateHostedZoneComment(ctx, input)
	p.observe(actUpdateHostedZoneComment, start, err)
	return err
}

// DeleteHostedZone deletes a hosted zone. Route 53 refuses to delete zones
// that still contain records other than the apex SOA and NS.
func (p route53Provider) DeleteHostedZone(ctx context.Context, id string) error {
	start := time.Now()
	_, err := p.client.DeleteHostedZone(ctx, &route53.DeleteHostedZoneInput{Id: aws.String(id)})
	p.observe(actDeleteHostedZone, start, err)
	return err
}

// GetHostedZone returns a hosted zone.
func (p route53Provider) GetHostedZone(ctx context.Context, id string) (*types.HostedZone, error) {
	start := time.Now()
	out, err := p.client.GetHostedZone(ctx, &route53.GetHostedZoneInput{Id: aws.String(id)})
	p.observe(actGetHostedZone, start, err)
	if err != nil {
		return nil, err
	}
	return out.HostedZone, nil
}

// ListResourceRecordSets fetches all the record sets of a zone.
func (p route53Provider) ListResourceRecordSets(ctx context.Context, zoneID string) ([]types.ResourceRecordSet, error) {
	records := []types.ResourceRecordSet{}
	input := &route53.ListResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
		MaxItems:     p.maxItems(),
	}

	for {
		start := time.Now()
		out, err := p.client.ListResourceRecordSets(ctx, input)
		p.observe(actListResourceRecordSets, start, err)
		if err != nil {
			return nil, err
		}
		records = append(records, out.ResourceRecordSets...)

		if !out.IsTruncated || out.NextRecordName == nil {
			break
		}
		input.StartRecordName = out.NextRecordName
		input.StartRecordType = out.NextRecordType
		input.StartRecordIdentifier = out.NextRecordIdentifier
	}

	return records, nil
}

// ChangeResourceRecordSets submits the change batch in a single call.
func (p route53Provider) ChangeResourceRecordSets(ctx context.Context, zoneID string, batch *types.ChangeBatch) error {
	input := &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
		ChangeBatch:  batch,
	}
	start := time.Now()
	out, err := p.client.ChangeResourceRecordSets(ctx, input)
	p.observe(actChangeResourceRecordSets, start, err)
	if err != nil {
		return err
	}
	if out.ChangeInfo != nil {
		log.WithFields(log.Fields{
			"zone":   zoneID,
			"change": aws.ToString(out.ChangeInfo.Id),
			"status": string(out.ChangeInfo.Status),
		}).Debug("Change batch accepted")
	}
	return nil
}
