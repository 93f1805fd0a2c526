/*
 * Bolt store - tenants persisted in a bbolt database.
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
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	bbolt "go.etcd.io/bbolt"
	"golang.org/x/crypto/bcrypt"
)

var (
	bucketTenants = []byte("tenants")
	bucketEmails  = []byte("emails")
)

// BoltStore implements Store using bbolt. Tenants are stored as JSON keyed by
// id; a second bucket maps the lower-cased email to the id.
type BoltStore struct {
	db         *bbolt.DB
	bcryptCost int
	now        func() time.Time
	newID      func() string
}

// NewBoltStore opens (or creates) a Bolt database at path and ensures the
// buckets exist.
func NewBoltStore(path string, bcryptCost int) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("cannot open tenant store %s: %w", path, err)
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketTenants); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(bucketEmails); err != nil {
			return err
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cannot initialize tenant store: %w", err)
	}
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &BoltStore{
		db:         db,
		bcryptCost: bcryptCost,
		now:        time.Now,
		newID:      uuid.NewString,
	}, nil
}

// Close closes the database.
func (s *BoltStore) Close() error { return s.db.Close() }

// FindTenantByID returns the tenant with the given id or ErrNotFound.
func (s *BoltStore) FindTenantByID(_ context.Context, id string) (*Tenant, error) {
	var t *Tenant
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		t, err = getTenant(tx, []byte(id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// FindTenantByEmailAndPassword returns the tenant registered with email when
// password matches its hash. A wrong password is reported as ErrNotFound.
func (s *BoltStore) FindTenantByEmailAndPassword(_ context.Context, email, password string) (*Tenant, error) {
	var t *Tenant
	err := s.db.View(func(tx *bbolt.Tx) error {
		id := tx.Bucket(bucketEmails).Get(emailKey(email))
		if id == nil {
			return ErrNotFound
		}
		var err error
		t, err = getTenant(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword(t.PasswordHash, []byte(password)); err != nil {
		log.WithField("tenant", t.ID).Debug("Password mismatch")
		return nil, ErrNotFound
	}
	return t, nil
}

// CreateTenant stores a new tenant. The email index and the tenant are
// written in the same transaction.
func (s *BoltStore) CreateTenant(_ context.Context, data NewTenant) (*Tenant, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("cannot hash password: %w", err)
	}
	t := &Tenant{
		ID:           s.newID(),
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: hash,
		Credentials:  data.Credentials,
		CreatedAt:    s.now().UTC(),
	}
	value, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		emails := tx.Bucket(bucketEmails)
		key := emailKey(data.Email)
		if emails.Get(key) != nil {
			return ErrDuplicateEmail
		}
		if err := emails.Put(key, []byte(t.ID)); err != nil {
			return err
		}
		return tx.Bucket(bucketTenants).Put([]byte(t.ID), value)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// getTenant decodes the tenant stored under id.
func getTenant(tx *bbolt.Tx, id []byte) (*Tenant, error) {
	value := tx.Bucket(bucketTenants).Get(id)
	if value == nil {
		return nil, ErrNotFound
	}
	t := &Tenant{}
	if err := json.Unmarshal(value, t); err != nil {
		return nil, fmt.Errorf("corrupted tenant %s: %w", id, err)
	}
	return t, nil
}
