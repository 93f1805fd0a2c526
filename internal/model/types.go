/*
 * API-independent types.
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

package model

// Credentials is the AWS credential triple stored for a tenant.
type Credentials struct {
	AccessKey string `json:"awsKey"`
	SecretKey string `json:"awsSecret"`
	Region    string `json:"awsRegion"`
}

// HostedZone is the normalized view of a hosted zone.
type HostedZone struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Description            string `json:"description"`
	ResourceRecordSetCount int64  `json:"resourceRecordSetCount"`
}

// ResourceRecord is a single value of a record set.
type ResourceRecord struct {
	Value string `json:"Value" validate:"required"`
}

// AliasTarget points an alias record set to another AWS resource.
type AliasTarget struct {
	DNSName              string `json:"DNSName" validate:"required"`
	HostedZoneID         string `json:"HostedZoneId" validate:"required"`
	EvaluateTargetHealth bool   `json:"EvaluateTargetHealth"`
}

// GeoLocation selects the callers of a geolocation record set.
type GeoLocation struct {
	ContinentCode   string `json:"ContinentCode,omitempty"`
	CountryCode     string `json:"CountryCode,omitempty"`
	SubdivisionCode string `json:"SubdivisionCode,omitempty"`
}

// CidrRoutingConfig selects the CIDR location of an IP-based record set.
type CidrRoutingConfig struct {
	CollectionID string `json:"CollectionId" validate:"required"`
	LocationName string `json:"LocationName" validate:"required"`
}

// RecordSet is a resource record set. The JSON field names follow the Route
// 53 API so that clients can send back what they received. A deleted record
// set must match the stored one in every field, routing policy included.
type RecordSet struct {
	Name                    string             `json:"Name" validate:"required"`
	Type                    string             `json:"Type" validate:"required,rrtype"`
	TTL                     int64              `json:"TTL,omitempty" validate:"gte=0"`
	ResourceRecords         []ResourceRecord   `json:"ResourceRecords,omitempty" validate:"required_without=AliasTarget,omitempty,dive"`
	AliasTarget             *AliasTarget       `json:"AliasTarget,omitempty"`
	SetIdentifier           string             `json:"SetIdentifier,omitempty"`
	Weight                  *int64             `json:"Weight,omitempty" validate:"omitempty,gte=0,lte=255"`
	Region                  string             `json:"Region,omitempty"`
	Failover                string             `json:"Failover,omitempty" validate:"omitempty,oneof=PRIMARY SECONDARY"`
	GeoLocation             *GeoLocation       `json:"GeoLocation,omitempty"`
	HealthCheckID           string             `json:"HealthCheckId,omitempty"`
	MultiValueAnswer        *bool              `json:"MultiValueAnswer,omitempty"`
	CidrRoutingConfig       *CidrRoutingConfig `json:"CidrRoutingConfig,omitempty"`
	TrafficPolicyInstanceID string             `json:"TrafficPolicyInstanceId,omitempty"`
}

// Values returns the values of the resource records.
func (rs RecordSet) Values() []string {
	values := make([]string, len(rs.ResourceRecords))
	for i, rr := range rs.ResourceRecords {
		values[i] = rr.Value
	}
	return values
}

// BulkImportRow is a simplified record from a bulk import payload.
type BulkImportRow struct {
	Type  string `json:"Type" validate:"required,rrtype"`
	TTL   int64  `json:"TTL" validate:"gte=0"`
	Value string `json:"Value" validate:"required"`
}
