// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-array-keeper/internal/config"
	"github.com/MKhiriev/go-array-keeper/internal/handler"
	"github.com/MKhiriev/go-array-keeper/internal/logger"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(s.httpServer.RunServer)

	// listen for stop signals or a failed listener
	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
