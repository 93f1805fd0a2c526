/*
 * Provider fakes - in-memory provider for tests.
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

// Package dnsprovidertest provides an in-memory dnsprovider.Provider with
// call counters, for use in tests.
package dnsprovidertest

import (
	"context"
	"fmt"
	"path"
	"reflect"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"

	"dns-tenant-gateway/internal/dnsprovider"
	"dns-tenant-gateway/internal/model"
)

// Method names used as keys of the call counters and of Errs.
const (
	ListHostedZones          = "ListHostedZones"
	CreateHostedZone         = "CreateHostedZone"
	UpdateHostedZoneComment  = "UpdateHostedZoneComment"
	DeleteHostedZone         = "DeleteHostedZone"
	GetHostedZone            = "GetHostedZone"
	ListResourceRecordSets   = "ListResourceRecordSets"
	ChangeResourceRecordSets = "ChangeResourceRecordSets"
)

// StatusError simulates a provider error carrying a status code.
type StatusError struct {
	Code    int
	Message string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("StatusCode: %d, %s", e.Code, e.Message)
}

// HTTPStatusCode returns the status code.
func (e StatusError) HTTPStatusCode() int { return e.Code }

// ErrorMessage returns the provider message.
func (e StatusError) ErrorMessage() string { return e.Message }

// CreatedZone records the arguments of a CreateHostedZone call.
type CreatedZone struct {
	Name      string
	CallerRef string
	Comment   string
}

// FakeProvider is an in-memory provider. Zones and Records are the provider
// state; Errs makes single methods fail.
type FakeProvider struct {
	mu           sync.Mutex
	Credentials  model.Credentials
	Zones        []types.HostedZone
	Records      []types.ResourceRecordSet
	Errs         map[string]error
	Batches      []types.ChangeBatch
	CreatedZones []CreatedZone
	calls        map[string]int
	nextID       int
}

// NewFakeProvider returns an empty fake.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		Errs:  map[string]error{},
		calls: map[string]int{},
	}
}

// enter counts the call and returns the configured error, if any.
func (f *FakeProvider) enter(method string) error {
	f.calls[method]++
	return f.Errs[method]
}

// CallCount returns the number of calls of a method.
func (f *FakeProvider) CallCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

// TotalCalls returns the number of calls of all the methods.
func (f *FakeProvider) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

// LastBatch returns the last submitted change batch.
func (f *FakeProvider) LastBatch() *types.ChangeBatch {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Batches) == 0 {
		return nil
	}
	b := f.Batches[len(f.Batches)-1]
	return &b
}

// zoneIndex finds a zone by bare or prefixed id.
func (f *FakeProvider) zoneIndex(id string) int {
	for i, z := range f.Zones {
		if path.Base(aws.ToString(z.Id)) == path.Base(id) {
			return i
		}
	}
	return -1
}

func noSuchZone(id string) error {
	return StatusError{Code: 404, Message: "No hosted zone found with ID: " + id}
}

func (f *FakeProvider) ListHostedZones(_ context.Context) ([]types.HostedZone, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(ListHostedZones); err != nil {
		return nil, err
	}
	return append([]types.HostedZone{}, f.Zones...), nil
}

func (f *FakeProvider) CreateHostedZone(_ context.Context, name, callerRef, comment string) (*types.HostedZone, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(CreateHostedZone); err != nil {
		return nil, err
	}
	f.CreatedZones = append(f.CreatedZones, CreatedZone{Name: name, CallerRef: callerRef, Comment: comment})
	f.nextID++
	zone := types.HostedZone{
		Id:                     aws.String(fmt.Sprintf("/hostedzone/ZNEW%d", f.nextID)),
		Name:                   aws.String(name + "."),
		CallerReference:        aws.String(callerRef),
		Config:                 &types.HostedZoneConfig{Comment: aws.String(comment)},
		ResourceRecordSetCount: aws.Int64(2),
	}
	f.Zones = append(f.Zones, zone)
	return &zone, nil
}

func (f *FakeProvider) UpdateHostedZoneComment(_ context.Context, id, comment string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(UpdateHostedZoneComment); err != nil {
		return err
	}
	i := f.zoneIndex(id)
	if i < 0 {
		return noSuchZone(id)
	}
	f.Zones[i].Config = &types.HostedZoneConfig{Comment: aws.String(comment)}
	return nil
}

func (f *FakeProvider) DeleteHostedZone(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(DeleteHostedZone); err != nil {
		return err
	}
	i := f.zoneIndex(id)
	if i < 0 {
		return noSuchZone(id)
	}
	f.Zones = append(f.Zones[:i], f.Zones[i+1:]...)
	return nil
}

func (f *FakeProvider) GetHostedZone(_ context.Context, id string) (*types.HostedZone, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(GetHostedZone); err != nil {
		return nil, err
	}
	i := f.zoneIndex(id)
	if i < 0 {
		return nil, noSuchZone(id)
	}
	zone := f.Zones[i]
	return &zone, nil
}

func (f *FakeProvider) ListResourceRecordSets(_ context.Context, _ string) ([]types.ResourceRecordSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(ListResourceRecordSets); err != nil {
		return nil, err
	}
	return append([]types.ResourceRecordSet{}, f.Records...), nil
}

// ChangeResourceRecordSets records the batch and applies it to Records.
func (f *FakeProvider) ChangeResourceRecordSets(_ context.Context, _ string, batch *types.ChangeBatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(ChangeResourceRecordSets); err != nil {
		return err
	}
	f.Batches = append(f.Batches, *batch)
	// Batches are atomic: the changes are applied to a copy which replaces
	// the records only when every change succeeded.
	records := append([]types.ResourceRecordSet(nil), f.Records...)
	for _, c := range batch.Changes {
		rs := *c.ResourceRecordSet
		i := recordIndex(records, rs)
		switch c.Action {
		case types.ChangeActionDelete:
			if i < 0 || !reflect.DeepEqual(records[i], rs) {
				return notFoundForDelete(rs)
			}
			records = append(records[:i], records[i+1:]...)
		case types.ChangeActionCreate:
			if i >= 0 {
				return StatusError{Code: 400, Message: fmt.Sprintf(
					"Tried to create resource record set [name='%s', type='%s'] but it already exists",
					aws.ToString(rs.Name), rs.Type)}
			}
			records = append(records, rs)
		default:
			if i >= 0 {
				records[i] = rs
			} else {
				records = append(records, rs)
			}
		}
	}
	f.Records = records
	return nil
}

// notFoundForDelete is the error Route 53 returns when a deleted record set
// does not match the stored one in every field.
func notFoundForDelete(rs types.ResourceRecordSet) error {
	return StatusError{Code: 400, Message: fmt.Sprintf(
		"Tried to delete resource record set [name='%s', type='%s', set-identifier='%s'] but the values provided do not match the current values",
		aws.ToString(rs.Name), rs.Type, aws.ToString(rs.SetIdentifier))}
}

func recordIndex(records []types.ResourceRecordSet, rs types.ResourceRecordSet) int {
	for i, r := range records {
		if aws.ToString(r.Name) == aws.ToString(rs.Name) && r.Type == rs.Type &&
			aws.ToString(r.SetIdentifier) == aws.ToString(rs.SetIdentifier) {
			return i
		}
	}
	return -1
}

// Factory hands out fakes. Providers registered by access key are returned
// for those credentials; any other key gets a new empty fake.
type Factory struct {
	mu        sync.Mutex
	Providers map[string]*FakeProvider
	Err       error
	calls     int
	built     []*FakeProvider
}

// NewFactory returns an empty Factory.
func NewFactory() *Factory {
	return &Factory{Providers: map[string]*FakeProvider{}}
}

// New implements dnsprovider.Factory.
func (f *Factory) New(creds model.Credentials) (dnsprovider.Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.Err != nil {
		return nil, f.Err
	}
	p, ok := f.Providers[creds.AccessKey]
	if !ok {
		p = NewFakeProvider()
	}
	p.mu.Lock()
	p.Credentials = creds
	p.mu.Unlock()
	f.built = append(f.built, p)
	return p, nil
}

// Calls returns the number of New calls.
func (f *Factory) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// ProviderCalls returns the total number of provider calls issued through
// all the fakes built so far.
func (f *Factory) ProviderCalls() int {
	f.mu.Lock()
	built := append([]*FakeProvider{}, f.built...)
	f.mu.Unlock()
	total := 0
	for _, p := range built {
		total += p.TotalCalls()
	}
	return total
}
