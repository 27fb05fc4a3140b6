// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/autobrain/internal/adapter"
	"github.com/MKhiriev/autobrain/internal/client"
	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/llm"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/notify"
	"github.com/MKhiriev/autobrain/internal/service"
	"github.com/MKhiriev/autobrain/internal/store"
	"github.com/MKhiriev/autobrain/internal/tui"
	"github.com/MKhiriev/autobrain/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("autobrain-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("autobrain-client", cfg.App.LogPath)
	logger.SetLevel(cfg.App.LogLevel)

	remote, err := adapter.NewHTTPRemoteStore(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote store adapter")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := localStorage.Close(); err != nil {
			log.Err(err).Msg("close local storage")
		}
	}()

	services := service.NewClientServices(localStorage, remote, llm.NewClient(cfg.LLM, log), notify.NewLogNotifier(log), cfg, log)
	scheduler := workers.NewScheduler(cfg.Workers, workers.NewStaticConditions(cfg.Device), log)

	app, err := client.NewApp(services, scheduler, tui.New(services, log), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
