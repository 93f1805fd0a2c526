/*
 * Records - conversions between the API record sets and Route 53.
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
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	log "github.com/sirupsen/logrus"

	"dns-tenant-gateway/internal/model"
)

// toRoute53 converts a record set for submission. Alias record sets carry
// no TTL and no resource records.
func toRoute53(rs model.RecordSet) *types.ResourceRecordSet {
	out := &types.ResourceRecordSet{
		Name:                    aws.String(rs.Name),
		Type:                    types.RRType(rs.Type),
		SetIdentifier:           optString(rs.SetIdentifier),
		Weight:                  rs.Weight,
		Region:                  types.ResourceRecordSetRegion(rs.Region),
		Failover:                types.ResourceRecordSetFailover(rs.Failover),
		HealthCheckId:           optString(rs.HealthCheckID),
		MultiValueAnswer:        rs.MultiValueAnswer,
		TrafficPolicyInstanceId: optString(rs.TrafficPolicyInstanceID),
	}
	if g := rs.GeoLocation; g != nil {
		out.GeoLocation = &types.GeoLocation{
			ContinentCode:   optString(g.ContinentCode),
			CountryCode:     optString(g.CountryCode),
			SubdivisionCode: optString(g.SubdivisionCode),
		}
	}
	if c := rs.CidrRoutingConfig; c != nil {
		out.CidrRoutingConfig = &types.CidrRoutingConfig{
			CollectionId: aws.String(c.CollectionID),
			LocationName: aws.String(c.LocationName),
		}
	}
	if rs.AliasTarget != nil {
		out.AliasTarget = &types.AliasTarget{
			DNSName:              aws.String(rs.AliasTarget.DNSName),
			HostedZoneId:         aws.String(rs.AliasTarget.HostedZoneID),
			EvaluateTargetHealth: rs.AliasTarget.EvaluateTargetHealth,
		}
		return out
	}
	out.TTL = aws.Int64(rs.TTL)
	for _, v := range rs.Values() {
		out.ResourceRecords = append(out.ResourceRecords, types.ResourceRecord{Value: aws.String(v)})
	}
	return out
}

// fromRoute53 converts a record set returned by Route 53.
func fromRoute53(rs types.ResourceRecordSet) model.RecordSet {
	out := model.RecordSet{
		Name:                    aws.ToString(rs.Name),
		Type:                    string(rs.Type),
		TTL:                     aws.ToInt64(rs.TTL),
		SetIdentifier:           aws.ToString(rs.SetIdentifier),
		Weight:                  rs.Weight,
		Region:                  string(rs.Region),
		Failover:                string(rs.Failover),
		HealthCheckID:           aws.ToString(rs.HealthCheckId),
		MultiValueAnswer:        rs.MultiValueAnswer,
		TrafficPolicyInstanceID: aws.ToString(rs.TrafficPolicyInstanceId),
	}
	for _, rr := range rs.ResourceRecords {
		out.ResourceRecords = append(out.ResourceRecords, model.ResourceRecord{Value: aws.ToString(rr.Value)})
	}
	if rs.AliasTarget != nil {
		out.AliasTarget = &model.AliasTarget{
			DNSName:              aws.ToString(rs.AliasTarget.DNSName),
			HostedZoneID:         aws.ToString(rs.AliasTarget.HostedZoneId),
			EvaluateTargetHealth: rs.AliasTarget.EvaluateTargetHealth,
		}
	}
	if g := rs.GeoLocation; g != nil {
		out.GeoLocation = &model.GeoLocation{
			ContinentCode:   aws.ToString(g.ContinentCode),
			CountryCode:     aws.ToString(g.CountryCode),
			SubdivisionCode: aws.ToString(g.SubdivisionCode),
		}
	}
	if c := rs.CidrRoutingConfig; c != nil {
		out.CidrRoutingConfig = &model.CidrRoutingConfig{
			CollectionID: aws.ToString(c.CollectionId),
			LocationName: aws.ToString(c.LocationName),
		}
	}
	return out
}

// optString returns nil for an empty string, since Route 53 rejects empty
// optional fields.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}

// newChange builds a change for a record set.
func newChange(action types.ChangeAction, rs model.RecordSet) types.Change {
	return types.Change{
		Action:            action,
		ResourceRecordSet: toRoute53(rs),
	}
}

// getChangeLogFields returns the log fields of a change.
func getChangeLogFields(c types.Change) log.Fields {
	rs := c.ResourceRecordSet
	fields := log.Fields{
		"action":     string(c.Action),
		"recordName": aws.ToString(rs.Name),
		"recordType": string(rs.Type),
	}
	if rs.TTL != nil {
		fields["ttl"] = *rs.TTL
	}
	if rs.SetIdentifier != nil {
		fields["setIdentifier"] = aws.ToString(rs.SetIdentifier)
	}
	if rs.AliasTarget != nil {
		fields["aliasTarget"] = aws.ToString(rs.AliasTarget.DNSName)
	} else {
		values := make([]string, 0, len(rs.ResourceRecords))
		for _, rr := range rs.ResourceRecords {
			values = append(values, aws.ToString(rr.Value))
		}
		fields["values"] = values
	}
	return fields
}
