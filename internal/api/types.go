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
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/lsirikh/GopApiServer/internal/audit"
	"github.com/lsirikh/GopApiServer/internal/config"
	"github.com/lsirikh/GopApiServer/internal/telemetry"
)

// Server implementation of the Server's API operations.
type Server struct {
	// Echo server instance.
	Echo *echo.Echo

	logger      *slog.Logger
	appConfig   config.Config
	resolver    Resolver
	auditStore  audit.Store
	instruments *telemetry.Instruments
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithAuditStore enables the audit middleware backed by store.
func WithAuditStore(
	store audit.Store,
) Option {
	return func(s *Server) {
		s.auditStore = store
	}
}

// WithInstruments records domain metrics on instruments.
func WithInstruments(
	instruments *telemetry.Instruments,
) Option {
	return func(s *Server) {
		s.instruments = instruments
	}
}
