// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/lsirikh/GopApiServer/internal/config"
	"github.com/lsirikh/GopApiServer/internal/telemetry"
)

// New initialize a new Server and configure an Echo server.
func New(
	appConfig config.Config,
	logger *slog.Logger,
	resolver Resolver,
	opts ...Option,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	s := &Server{
		Echo:      e,
		logger:    logger,
		appConfig: appConfig,
		resolver:  resolver,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Initialize CORS configuration
	corsConfig := middleware.CORSConfig{AllowOrigins: []string{"*"}}

	allowOrigins := appConfig.API.Server.CORS.AllowOrigins
	if len(allowOrigins) > 0 {
		corsConfig.AllowOrigins = allowOrigins
	}

	e.Use(requestIDMiddleware())
	e.Use(otelecho.Middleware(telemetry.ServiceName))
	e.Use(slogecho.New(logger))

	// Register audit middleware if an audit store is configured.
	if s.auditStore != nil {
		e.Use(auditMiddleware(
			s.auditStore,
			logger,
			s.instruments,
			auditWriteTimeout(appConfig.API.Audit, logger),
			appConfig.API.Audit.ExcludePaths,
		))
	}

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(corsConfig))

	return s
}

// auditWriteTimeout parses the configured timeout, falling back to
// DefaultAuditWriteTimeout when it is empty or invalid.
func auditWriteTimeout(
	cfg config.APIAudit,
	logger *slog.Logger,
) time.Duration {
	if cfg.WriteTimeout == "" {
		return DefaultAuditWriteTimeout
	}

	d, err := time.ParseDuration(cfg.WriteTimeout)
	if err != nil || d <= 0 {
		logger.Warn(
			"invalid audit write timeout, using default",
			slog.String("value", cfg.WriteTimeout),
			slog.String("default", DefaultAuditWriteTimeout.String()),
		)
		return DefaultAuditWriteTimeout
	}

	return d
}

// Start starts the Echo server on the configured host and port.
func (s *Server) Start() {
	go func() {
		listenAddr := fmt.Sprintf(
			"%s:%d",
			s.appConfig.API.Server.Host,
			s.appConfig.API.Server.Port,
		)
		s.logger.Info(
			"starting server",
			slog.String("address", listenAddr),
			slog.String("auth_mode", string(s.resolver.Mode())),
		)
		if err := s.Echo.Start(listenAddr); err != nil && err != http.ErrServerClosed {
			s.logger.Error(
				"failed to start server",
				slog.String("error", err.Error()),
			)
		}
	}()
}

// Stop gracefully shuts down the Echo server.
func (s *Server) Stop(
	ctx context.Context,
) {
	s.logger.Info("stopping server")

	if err := s.Echo.Shutdown(ctx); err != nil {
		s.logger.Error(
			"server shutdown failed",
			slog.String("error", err.Error()),
		)
	} else {
		s.logger.Info("server stopped gracefully")
	}
}
