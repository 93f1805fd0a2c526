/*
 * Tenant - tenant model and store capability.
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
	"errors"
	"strings"
	"time"

	"dns-tenant-gateway/internal/model"
)

var (
	// ErrNotFound is returned when no tenant matches the lookup.
	ErrNotFound = errors.New("tenant not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Tenant is a registered user together with its AWS credentials. Tenants are
// never modified after creation.
type Tenant struct {
	ID           string            `json:"id"`
	Username     string            `json:"username"`
	Email        string            `json:"email"`
	PasswordHash []byte            `json:"passwordHash"`
	Credentials  model.Credentials `json:"credentials"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// NewTenant contains the data supplied at signup.
type NewTenant struct {
	Username    string
	Email       string
	Password    string
	Credentials model.Credentials
}

// Finder looks tenants up by id.
type Finder interface {
	FindTenantByID(ctx context.Context, id string) (*Tenant, error)
}

// Store is the credential store capability.
type Store interface {
	Finder
	FindTenantByEmailAndPassword(ctx context.Context, email, password string) (*Tenant, error)
	CreateTenant(ctx context.Context, data NewTenant) (*Tenant, error)
}

// emailKey returns the index key for an email address.
func emailKey(email string) []byte {
	return []byte(strings.ToLower(strings.TrimSpace(email)))
}
