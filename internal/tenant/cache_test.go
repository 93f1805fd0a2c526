/*
 * Cache - unit tests.
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
package tenant

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFinder counts the lookups that reach the wrapped store.
type mockFinder struct {
	m       sync.Mutex
	tenants map[string]*Tenant
	calls   int
}

func (f *mockFinder) FindTenantByID(_ context.Context, id string) (*Tenant, error) {
	f.m.Lock()
	defer f.m.Unlock()
	f.calls++
	t, ok := f.tenants[id]
	if !ok {
		return nil, ErrNotFound
	}
	return t, nil
}

func Test_CachedFinder_FindTenantByID(t *testing.T) {
	finder := &mockFinder{
		tenants: map[string]*Tenant{
			"alpha": {ID: "alpha", Username: "alpha", Credentials: testCredentials},
		},
	}
	cache := NewCachedFinder(finder, 10, time.Minute)
	ctx := context.Background()

	first, err := cache.FindTenantByID(ctx, "alpha")
	require.NoError(t, err)
	second, err := cache.FindTenantByID(ctx, "alpha")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
	assert.Equal(t, 1, finder.calls)
	assert.Equal(t, 1, cache.Len())
}

func Test_CachedFinder_NotFoundIsNotCached(t *testing.T) {
	finder := &mockFinder{tenants: map[string]*Tenant{}}
	cache := NewCachedFinder(finder, 10, time.Minute)

	for i := 0; i < 2; i++ {
		_, err := cache.FindTenantByID(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	}
	assert.Equal(t, 2, finder.calls)
	assert.Equal(t, 0, cache.Len())
}

func Test_CachedFinder_CopyIsIsolated(t *testing.T) {
	finder := &mockFinder{
		tenants: map[string]*Tenant{
			"alpha": {ID: "alpha", Credentials: testCredentials},
		},
	}
	cache := NewCachedFinder(finder, 10, time.Minute)

	first, err := cache.FindTenantByID(context.Background(), "alpha")
	require.NoError(t, err)
	first.Credentials.Region = "tampered"

	second, err := cache.FindTenantByID(context.Background(), "alpha")
	require.NoError(t, err)
	assert.Equal(t, testCredentials, second.Credentials)
}
