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

// Package audit provides the API log query handler.
package audit

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	auditstore "github.com/lsirikh/GopApiServer/internal/audit"
	"github.com/lsirikh/GopApiServer/internal/query"
)

// Audit implements the audit log handlers.
type Audit struct {
	// Store is the audit record backend.
	Store  auditstore.Store
	logger *slog.Logger
}

// ListParams are the /api/logs query filters.
type ListParams struct {
	StartDate  *query.Time `query:"start_date"`
	EndDate    *query.Time `query:"end_date"`
	Method     string      `query:"method"`
	Resource   string      `query:"resource"`
	ClientUUID string      `query:"client_uuid"`
}

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	store auditstore.Store,
) *Audit {
	return &Audit{
		Store:  store,
		logger: logger,
	}
}

// Register mounts GET /logs on g.
func (a *Audit) Register(
	g *echo.Group,
) {
	g.GET("/logs", a.GetAuditLogs)
}
