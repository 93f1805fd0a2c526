/*
 * Factory - Route 53 clients built from tenant credentials.
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
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/route53"

	"dns-tenant-gateway/internal/metrics"
	"dns-tenant-gateway/internal/model"
)

// defaultRegion is used when a tenant did not store a region. Route 53 is a
// global service and signs requests against us-east-1.
const defaultRegion = "us-east-1"

// ClientFactory builds a fresh Route 53 client for every credential triple.
// The AWS configuration is assembled explicitly: nothing is read from the
// process environment or the shared AWS files.
type ClientFactory struct {
	// Endpoint overrides the Route 53 endpoint when not empty.
	Endpoint string
	// PageSize is the page size requested on list calls; 0 means the API
	// default.
	PageSize int32
}

// New returns a Provider using creds. Clients are built without retries:
// failures are reported to the caller as they happen.
func (f ClientFactory) New(creds model.Credentials) (Provider, error) {
	if creds.AccessKey == "" || creds.SecretKey == "" {
		return nil, errors.New("incomplete AWS credentials")
	}
	region := creds.Region
	if region == "" {
		region = defaultRegion
	}
	cfg := aws.Config{
		Region: region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(creds.AccessKey, creds.SecretKey, ""),
		),
		Retryer: func() aws.Retryer {
			return aws.NopRetryer{}
		},
	}
	client := route53.NewFromConfig(cfg, func(o *route53.Options) {
		if f.Endpoint != "" {
			o.BaseEndpoint = aws.String(f.Endpoint)
		}
	})
	return &route53Provider{
		client:   client,
		metrics:  metrics.GetOpenMetricsInstance(),
		pageSize: f.PageSize,
	}, nil
}
