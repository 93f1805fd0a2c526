/*
 * Cache - in-memory tenant lookup cache.
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
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedFinder wraps a Finder with an expiring LRU cache. Only successful
// lookups are cached, so an unknown tenant is looked up every time. Entries
// expire after ttl, which bounds how long a tenant removed from the store
// keeps being served.
type CachedFinder struct {
	finder Finder
	lru    *expirable.LRU[string, Tenant]
}

// NewCachedFinder returns a CachedFinder holding at most size tenants.
func NewCachedFinder(finder Finder, size int, ttl time.Duration) *CachedFinder {
	return &CachedFinder{
		finder: finder,
		lru:    expirable.NewLRU[string, Tenant](size, nil, ttl),
	}
}

// FindTenantByID returns the tenant from the cache or from the wrapped
// finder. A copy is returned so that callers cannot alter cached entries.
func (c *CachedFinder) FindTenantByID(ctx context.Context, id string) (*Tenant, error) {
	if t, ok := c.lru.Get(id); ok {
		return &t, nil
	}
	t, err := c.finder.FindTenantByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.lru.Add(id, *t)
	cp := *t
	return &cp, nil
}

// Len returns the number of cached tenants.
func (c *CachedFinder) Len() int {
	return c.lru.Len()
}
