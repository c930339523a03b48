// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-array-keeper/internal/client"
	"github.com/MKhiriev/go-array-keeper/internal/config"
	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetClientConfig()
	if err != nil {
		log := logger.NewClientLogger("array-keeper-client", "")
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("array-keeper-client", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
