/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
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
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/carverauto/xiobridge/pkg/config"
	"github.com/carverauto/xiobridge/pkg/logger"
	"github.com/carverauto/xiobridge/pkg/tools"
	"github.com/carverauto/xiobridge/pkg/xio"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	configPath := flag.String("config", "/etc/xiobridge/xiobridge.json", "Path to config file")
	listenAddr := flag.String("listen", ":8090", "Listen address for the tool endpoints")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logg, err := logger.New(logger.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	cfgLoader := config.NewConfig(logg)

	var cfg xio.Config

	if err := cfgLoader.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := xio.NewClient(&cfg, logg)
	if err != nil {
		log.Fatalf("Failed to create XiO client: %v", err)
	}

	router := mux.NewRouter()
	tools.NewServer(client, logg).RegisterRoutes(router)

	srv := &http.Server{
		Addr:              *listenAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		logg.Info().Str("listen_addr", *listenAddr).Msg("Starting xiobridge")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logg.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logg.Error().Err(err).Msg("Shutdown failed")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}
}
