/*
 * Users - unit tests.
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
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"dns-tenant-gateway/internal/apierr"
	"dns-tenant-gateway/internal/dnsprovider/dnsprovidertest"
	"dns-tenant-gateway/internal/tenant"
)

// mockStore wraps a store and counts the tenant creations.
type mockStore struct {
	tenant.Store
	created int
	err     error
}

func (m *mockStore) CreateTenant(ctx context.Context, data tenant.NewTenant) (*tenant.Tenant, error) {
	m.created++
	if m.err != nil {
		return nil, m.err
	}
	return m.Store.CreateTenant(ctx, data)
}

// mockMinter returns "token-<id>".
type mockMinter struct {
	err error
}

func (m mockMinter) Mint(id string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "token-" + id, nil
}

func newTestService(t *testing.T) (*Service, *mockStore, *dnsprovidertest.Factory) {
	t.Helper()
	bolt, err := tenant.NewBoltStore(filepath.Join(t.TempDir(), "tenants.db"), bcrypt.MinCost)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bolt.Close() })
	store := &mockStore{Store: bolt}
	factory := dnsprovidertest.NewFactory()
	return NewService(store, mockMinter{}, factory), store, factory
}

func validSignup() SignupRequest {
	return SignupRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "pw",
		AWSKey:    "AKIAALICE",
		AWSSecret: "secret",
		AWSRegion: "eu-west-1",
	}
}

func Test_Signup(t *testing.T) {
	s, store, factory := newTestService(t)

	token, err := s.Signup(context.Background(), validSignup())

	require.NoError(t, err)
	assert.Regexp(t, "^token-", token)
	assert.Equal(t, 1, store.created)
	assert.Equal(t, 1, factory.Calls())

	found, err := store.FindTenantByEmailAndPassword(context.Background(), "alice@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "token-"+found.ID, token)
	assert.Equal(t, "AKIAALICE", found.Credentials.AccessKey)
	assert.Equal(t, "eu-west-1", found.Credentials.Region)
}

func Test_Signup_Rejections(t *testing.T) {
	type testCase struct {
		name     string
		request  func() SignupRequest
		prepare  func(store *mockStore, factory *dnsprovidertest.Factory)
		expected struct {
			err     error
			created int
		}
	}

	run := func(t *testing.T, tc testCase) {
		s, store, factory := newTestService(t)
		if tc.prepare != nil {
			tc.prepare(store, factory)
		}
		exp := tc.expected

		token, err := s.Signup(context.Background(), tc.request())

		assert.Empty(t, token)
		assert.ErrorIs(t, err, exp.err)
		assert.Equal(t, exp.created, store.created)
	}

	testCases := []testCase{
		{
			name: "missing region",
			request: func() SignupRequest {
				r := validSignup()
				r.AWSRegion = ""
				return r
			},
			expected: struct {
				err     error
				created int
			}{err: apierr.ErrValidation},
		},
		{
			name: "invalid email",
			request: func() SignupRequest {
				r := validSignup()
				r.Email = "not-an-email"
				return r
			},
			expected: struct {
				err     error
				created int
			}{err: apierr.ErrValidation},
		},
		{
			name:    "probe fails",
			request: validSignup,
			prepare: func(_ *mockStore, factory *dnsprovidertest.Factory) {
				fake := dnsprovidertest.NewFakeProvider()
				fake.Errs[dnsprovidertest.ListHostedZones] = dnsprovidertest.StatusError{Code: 403, Message: "InvalidClientTokenId"}
				factory.Providers["AKIAALICE"] = fake
			},
			expected: struct {
				err     error
				created int
			}{err: apierr.ErrInvalidCredentials},
		},
		{
			name:    "client cannot be built",
			request: validSignup,
			prepare: func(_ *mockStore, factory *dnsprovidertest.Factory) {
				factory.Err = errors.New("incomplete AWS credentials")
			},
			expected: struct {
				err     error
				created int
			}{err: apierr.ErrInvalidCredentials},
		},
		{
			name:    "store failure",
			request: validSignup,
			prepare: func(store *mockStore, _ *dnsprovidertest.Factory) {
				store.err = errors.New("disk full")
			},
			expected: struct {
				err     error
				created int
			}{err: apierr.ErrInternal, created: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
}

func Test_Signup_DuplicateEmail(t *testing.T) {
	s, store, _ := newTestService(t)
	_, err := s.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	second := validSignup()
	second.Email = "ALICE@example.com"
	_, err = s.Signup(context.Background(), second)

	assert.ErrorIs(t, err, apierr.ErrDuplicateTenant)
	assert.Equal(t, 409, apierr.Map(err).Status())
	assert.Equal(t, 2, store.created)
}

func Test_Signin(t *testing.T) {
	type testCase struct {
		name     string
		request  SigninRequest
		expected error
	}

	s, _, _ := newTestService(t)
	_, err := s.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	run := func(t *testing.T, tc testCase) {
		token, err := s.Signin(context.Background(), tc.request)
		if tc.expected != nil {
			assert.ErrorIs(t, err, tc.expected)
			assert.Empty(t, token)
			return
		}
		assert.NoError(t, err)
		assert.Regexp(t, "^token-", token)
	}

	testCases := []testCase{
		{
			name:    "valid",
			request: SigninRequest{Email: "alice@example.com", Password: "pw"},
		},
		{
			name:     "wrong password",
			request:  SigninRequest{Email: "alice@example.com", Password: "nope"},
			expected: apierr.ErrTenantNotFound,
		},
		{
			name:     "unknown email",
			request:  SigninRequest{Email: "bob@example.com", Password: "pw"},
			expected: apierr.ErrTenantNotFound,
		},
		{
			name:     "missing password",
			request:  SigninRequest{Email: "alice@example.com"},
			expected: apierr.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
}

func Test_Signin_MintFailure(t *testing.T) {
	s, _, _ := newTestService(t)
	_, err := s.Signup(context.Background(), validSignup())
	require.NoError(t, err)
	s.tokens = mockMinter{err: errors.New("no key")}

	_, err = s.Signin(context.Background(), SigninRequest{Email: "alice@example.com", Password: "pw"})

	assert.ErrorIs(t, err, apierr.ErrInternal)
}

func Test_ProfileOf(t *testing.T) {
	assert.Equal(t, Profile{Username: "alice"}, ProfileOf(tenant.Tenant{ID: "1", Username: "alice"}))
}

func Test_Signup_PasswordTooLong(t *testing.T) {
	type testCase struct {
		name     string
		password string
		expected struct {
			err           error
			providerCalls int
		}
	}

	run := func(t *testing.T, tc testCase) {
		s, store, factory := newTestService(t)
		req := validSignup()
		req.Password = tc.password
		exp := tc.expected

		_, err := s.Signup(context.Background(), req)

		if exp.err != nil {
			var e *apierr.Error
			require.ErrorAs(t, err, &e)
			assert.ErrorIs(t, err, exp.err)
			assert.Equal(t, []string{"password must be at most 72 bytes long"}, e.Violations)
			assert.Zero(t, store.created)
		} else {
			assert.NoError(t, err)
		}
		assert.Equal(t, exp.providerCalls, factory.ProviderCalls())
	}

	testCases := []testCase{
		{
			name:     "72 bytes",
			password: strings.Repeat("p", 72),
			expected: struct {
				err           error
				providerCalls int
			}{providerCalls: 1},
		},
		{
			name:     "80 bytes",
			password: strings.Repeat("p", 80),
			expected: struct {
				err           error
				providerCalls int
			}{err: apierr.ErrValidation},
		},
		{
			name:     "25 runes over 72 bytes",
			password: strings.Repeat("€", 25),
			expected: struct {
				err           error
				providerCalls int
			}{err: apierr.ErrValidation},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
}
