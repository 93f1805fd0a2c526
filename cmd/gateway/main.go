/*
 * DNS tenant gateway - entry point.
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
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v8"
	log "github.com/sirupsen/logrus"

	"dns-tenant-gateway/cmd/gateway/init/configuration"
	"dns-tenant-gateway/cmd/gateway/init/logging"
	apiserver "dns-tenant-gateway/cmd/gateway/init/server"
	"dns-tenant-gateway/internal/auth"
	"dns-tenant-gateway/internal/dnsprovider"
	"dns-tenant-gateway/internal/metrics"
	"dns-tenant-gateway/internal/records"
	"dns-tenant-gateway/internal/server"
	"dns-tenant-gateway/internal/tenant"
	"dns-tenant-gateway/internal/users"
	"dns-tenant-gateway/internal/zones"
	"dns-tenant-gateway/pkg/gateway"
)

const banner = `
 dns-tenant-gateway
 version: %s (%s)

`

var (
	Version = "local"
	Gitsha  = "?"
)

var (
	// notify requires the SIGINT and SIGTERM signals to be sent to the caller.
	notify = func(sig chan os.Signal) {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	}
)

// healthStatus is the interface used by loop.
type healthStatus interface {
	SetHealthy(bool)
	SetReady(bool)
}

// loop waits for a SIGTERM or a SIGINT and then flags the gateway as not
// healthy and not ready.
func loop(status healthStatus) {
	exitSignal := make(chan os.Signal, 1)
	notify(exitSignal)
	signal := <-exitSignal

	log.Infof("Signal %s received. Shutting down the gateway.", signal.String())
	status.SetHealthy(false)
	status.SetReady(false)
}

// main function
func main() {
	fmt.Printf(banner, Version, Gitsha)
	logging.Init()
	config := configuration.Init()

	// Read server options
	serverOptions := server.ServerOptions{}
	if err := env.Parse(&serverOptions); err != nil {
		log.Fatal(err)
	}

	// Start the metrics socket
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	status := &server.Status{}
	status.SetHealthy(true)
	socket := server.NewMetricsSocket(status, metrics.GetOpenMetricsInstance().GetRegistry())
	log.Infof("Starting metrics, liveness and readiness server on %s", serverOptions.GetMetricsAddress())
	go func() {
		if err := socket.Start(ctx, nil, serverOptions); err != nil {
			log.Errorf("metrics socket failed: %v", err)
		}
	}()

	// Open the tenant store
	store, err := tenant.NewBoltStore(config.DBPath, config.BcryptCost)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warnf("error closing the tenant store: %v", err)
		}
	}()

	issuer, err := auth.NewTokenIssuer([]byte(config.JWTSecret), config.TokenTTL)
	if err != nil {
		log.Fatal(err)
	}
	factory := dnsprovider.ClientFactory{
		Endpoint: config.Route53Endpoint,
		PageSize: config.Route53PageSize,
	}
	finder := tenant.NewCachedFinder(store, config.TenantCacheSize, config.TenantCacheTTL)
	g := gateway.New(
		auth.NewBinder(issuer, finder, factory),
		zones.NewManager(),
		records.NewReconciler(),
		users.NewService(store, issuer, factory),
	)

	// Start the public API
	startedChan := make(chan struct{}, 1)
	srv, err := apiserver.Init(serverOptions, apiserver.NewRouter(config, g), startedChan)
	if err != nil {
		log.Fatal(err)
	}
	<-startedChan
	status.SetReady(true)

	// Loops until a signal tells us to exit
	loop(status)
	apiserver.ShutdownGracefully(srv, serverOptions)
}
