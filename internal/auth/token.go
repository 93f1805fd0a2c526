/*
 * Auth - bearer tokens.
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
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dns-tenant-gateway/internal/apierr"
)

const bearerScheme = "Bearer"

// claims are the claims carried by the gateway tokens. The tenant id is
// stored both as subject and as userId.
type claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies HS256 tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer returns a TokenIssuer signing with secret. A zero ttl mints
// tokens without expiry.
func NewTokenIssuer(secret []byte, ttl time.Duration) (*TokenIssuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("token secret cannot be empty")
	}
	if ttl < 0 {
		return nil, errors.New("token ttl cannot be negative")
	}
	return &TokenIssuer{secret: secret, ttl: ttl, now: time.Now}, nil
}

// Mint returns a signed token for the tenant.
func (i *TokenIssuer) Mint(tenantID string) (string, error) {
	if tenantID == "" {
		return "", errors.New("cannot mint a token without subject")
	}
	now := i.now()
	c := claims{
		UserID: tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  tenantID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if i.ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(i.ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
}

// Verify validates the token and returns the tenant id it carries.
func (i *TokenIssuer) Verify(token string) (string, error) {
	if token == "" {
		return "", apierr.MissingToken()
	}
	c := &claims{}
	_, err := jwt.ParseWithClaims(token, c, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return "", apierr.InvalidToken(err)
	}
	subject := c.Subject
	if subject == "" {
		subject = c.UserID
	}
	if subject == "" {
		return "", apierr.InvalidToken(errors.New("token has no subject"))
	}
	return subject, nil
}

// TokenFromHeader extracts the token from an Authorization header value. The
// value is accepted with or without the Bearer prefix.
func TokenFromHeader(value string) string {
	value = strings.TrimSpace(value)
	n := len(bearerScheme)
	if len(value) >= n && strings.EqualFold(value[:n], bearerScheme) && (len(value) == n || value[n] == ' ') {
		value = value[n:]
	}
	return strings.TrimSpace(value)
}
