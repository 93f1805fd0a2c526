/*
 * Configuration - gateway settings read from the environment.
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
package configuration

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v8"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Config struct for configuration environmental variables
type Config struct {
	// JWTSecret signs the tenant tokens.
	JWTSecret string `env:"JWT_SECRET,required"`
	// TokenTTL is the lifetime of the tokens, 0 for no expiry.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"0s"`
	// DBPath is the path of the tenant database.
	DBPath string `env:"DB_PATH" envDefault:"tenants.db"`
	// TenantCacheSize is the number of tenants kept in memory.
	TenantCacheSize int `env:"TENANT_CACHE_SIZE" envDefault:"1024"`
	// TenantCacheTTL is how long a cached tenant is kept.
	TenantCacheTTL time.Duration `env:"TENANT_CACHE_TTL" envDefault:"1m"`
	// BcryptCost is the cost used to hash the passwords.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
	// CORSAllowedOrigins lists the origins allowed to call the API.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	// Route53Endpoint overrides the Route 53 endpoint.
	Route53Endpoint string `env:"ROUTE53_ENDPOINT" envDefault:""`
	// Route53PageSize is the page size of the list calls, 0 for the default.
	Route53PageSize int32 `env:"ROUTE53_PAGE_SIZE" envDefault:"0"`
}

// Validate checks the values that env cannot check.
func (c Config) Validate() error {
	if c.TokenTTL < 0 {
		return errors.New("TOKEN_TTL cannot be negative")
	}
	if c.TenantCacheSize < 0 {
		return errors.New("TENANT_CACHE_SIZE cannot be negative")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return errors.New("BCRYPT_COST is out of range")
	}
	if c.Route53PageSize < 0 {
		return errors.New("ROUTE53_PAGE_SIZE cannot be negative")
	}
	return nil
}

// GetLogFields returns the log fields of the configuration. The secret is
// never logged.
func (c Config) GetLogFields() log.Fields {
	return log.Fields{
		"tokenTTL":        c.TokenTTL.String(),
		"dbPath":          c.DBPath,
		"tenantCacheSize": c.TenantCacheSize,
		"tenantCacheTTL":  c.TenantCacheTTL.String(),
		"corsOrigins":     c.CORSAllowedOrigins,
		"route53Endpoint": c.Route53Endpoint,
	}
}

// Read parses and validates the configuration.
func Read() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Init sets up configuration by reading set environmental variables
func Init() Config {
	cfg, err := Read()
	if err != nil {
		log.Fatalf("Error reading configuration from environment: %v", err)
	}
	log.WithFields(cfg.GetLogFields()).Info("configuration read")
	return cfg
}
