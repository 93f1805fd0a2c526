/*
 * Users - account signup and signin.
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
package users

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"dns-tenant-gateway/internal/apierr"
	"dns-tenant-gateway/internal/dnsprovider"
	"dns-tenant-gateway/internal/model"
	"dns-tenant-gateway/internal/tenant"
	"dns-tenant-gateway/internal/validation"
	"dns-tenant-gateway/internal/zones"
)

// Minter mints the token of a tenant.
type Minter interface {
	Mint(tenantID string) (string, error)
}

// SignupRequest is the body of a signup. bcrypt hashes at most 72 bytes of
// the password.
type SignupRequest struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,maxbytes=72"`
	AWSKey    string `json:"awsKey" validate:"required"`
	AWSSecret string `json:"awsSecret" validate:"required"`
	AWSRegion string `json:"awsRegion" validate:"required"`
}

// GetLogFields returns the log fields of the request. Secrets are omitted.
func (r SignupRequest) GetLogFields() log.Fields {
	return log.Fields{
		"username": r.Username,
		"email":    r.Email,
		"region":   r.AWSRegion,
	}
}

// SigninRequest is the body of a signin.
type SigninRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Profile is the public view of a tenant.
type Profile struct {
	Username string `json:"username"`
}

// Service handles tenant accounts.
type Service struct {
	store   tenant.Store
	tokens  Minter
	factory dnsprovider.Factory
}

// NewService creates a Service.
func NewService(store tenant.Store, tokens Minter, factory dnsprovider.Factory) *Service {
	return &Service{store: store, tokens: tokens, factory: factory}
}

// Signup probes the credentials and, only if they work, creates the tenant.
// It returns the token of the new tenant.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (string, error) {
	if err := validation.Struct(req); err != nil {
		return "", err
	}
	creds := model.Credentials{
		AccessKey: strings.TrimSpace(req.AWSKey),
		SecretKey: req.AWSSecret,
		Region:    strings.TrimSpace(req.AWSRegion),
	}
	provider, err := s.factory.New(creds)
	if err != nil {
		return "", apierr.InvalidCredentials(err)
	}
	if err := zones.Probe(ctx, provider); err != nil {
		log.WithFields(req.GetLogFields()).WithField("error", err).Info("credential probe failed")
		return "", err
	}
	t, err := s.store.CreateTenant(ctx, tenant.NewTenant{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		Credentials: creds,
	})
	if errors.Is(err, tenant.ErrDuplicateEmail) {
		return "", apierr.DuplicateTenant(err)
	} else if err != nil {
		return "", apierr.Internal(err)
	}
	log.WithFields(req.GetLogFields()).WithField("tenant", t.ID).Info("tenant created")
	return s.mint(t.ID)
}

// Signin returns a token for the tenant with the given email and password.
func (s *Service) Signin(ctx context.Context, req SigninRequest) (string, error) {
	if err := validation.Struct(req); err != nil {
		return "", err
	}
	t, err := s.store.FindTenantByEmailAndPassword(ctx, req.Email, req.Password)
	if errors.Is(err, tenant.ErrNotFound) {
		return "", apierr.TenantNotFound(err)
	} else if err != nil {
		return "", apierr.Internal(err)
	}
	return s.mint(t.ID)
}

// ProfileOf returns the profile of a tenant.
func ProfileOf(t tenant.Tenant) Profile {
	return Profile{Username: t.Username}
}

func (s *Service) mint(id string) (string, error) {
	token, err := s.tokens.Mint(id)
	if err != nil {
		return "", apierr.Internal(err)
	}
	return token, nil
}
