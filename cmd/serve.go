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

package cmd

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/lsirikh/GopApiServer/internal/api"
	"github.com/lsirikh/GopApiServer/internal/api/health"
	"github.com/lsirikh/GopApiServer/internal/auth"
	"github.com/lsirikh/GopApiServer/internal/cli"
	"github.com/lsirikh/GopApiServer/internal/telemetry"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the API server.

Opens and migrates the database, provisions the bootstrap administrator,
then serves the REST API until interrupted.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		db := openDatabase(ctx)

		principals := auth.NewSQLPrincipalStore(db)
		if _, err := auth.EnsureAdmin(ctx, logger, principals, appConfig.Auth.Bootstrap); err != nil {
			cli.LogFatal(logger, "failed to bootstrap administrator", err)
		}

		shutdownTracer, err := telemetry.InitTracer(
			ctx,
			telemetry.ServiceName,
			appConfig.Telemetry.Tracing,
		)
		if err != nil {
			cli.LogFatal(logger, "failed to initialize tracer", err)
		}

		metrics, err := telemetry.InitMeter(appConfig.Telemetry.Metrics)
		if err != nil {
			cli.LogFatal(logger, "failed to initialize metrics", err)
		}

		mode, err := auth.ParseAccessMode(appConfig.Auth.Mode)
		if err != nil {
			cli.LogFatal(logger, "invalid access mode", err)
		}

		codec := newTokenCodec()
		resolver := auth.NewResolver(logger, mode, principals, codec, metrics.Instruments)
		backend := openAuditStore(db)

		sm := api.New(
			appConfig,
			logger,
			resolver,
			api.WithAuditStore(backend.Store),
			api.WithInstruments(metrics.Instruments),
		)

		handlers := make([]func(e *echo.Echo), 0, 8)
		handlers = append(handlers, sm.GetHealthHandler(
			&health.StoreChecker{DBCheck: db.CheckHealth, AuditCheck: backend.Check},
			buildVersion().GitVersion,
		)...)
		handlers = append(handlers, sm.GetMetricsHandler(metrics.Handler, metrics.Path)...)
		handlers = append(handlers, sm.GetAuthHandler(
			auth.NewAuthenticator(logger, principals, codec, metrics.Instruments),
		)...)
		handlers = append(handlers, sm.GetDeviceHandler(db)...)
		handlers = append(handlers, sm.GetEventHandler(db)...)
		handlers = append(handlers, sm.GetAuditHandler(backend.Store)...)
		sm.RegisterHandlers(handlers)

		sm.Start()
		cli.RunServer(
			ctx,
			logger,
			sm,
			backend.Close,
			metrics.Shutdown,
			shutdownTracer,
			func(context.Context) error { return db.Close() },
		)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
