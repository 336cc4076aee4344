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
	"log/slog"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lsirikh/GopApiServer/internal/api/common"
	"github.com/lsirikh/GopApiServer/internal/audit"
	"github.com/lsirikh/GopApiServer/internal/telemetry"
)

// HeaderClientUUID identifies the calling client installation. It is
// recorded as sent and never validated.
const HeaderClientUUID = "X-Client-UUID"

// DefaultAuditWriteTimeout bounds an audit write when none is configured.
const DefaultAuditWriteTimeout = 5 * time.Second

// auditMiddleware records one audit record per completed request. The
// response is rendered first so the record carries the final status. Write
// failures are logged and counted, never returned.
func auditMiddleware(
	store audit.Store,
	logger *slog.Logger,
	instruments *telemetry.Instruments,
	timeout time.Duration,
	excludePaths []string,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			path := req.URL.Path

			for _, prefix := range excludePaths {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			record := audit.Record{
				Timestamp:   time.Now().UTC(),
				Resource:    audit.ResourcePath(path),
				Method:      req.Method,
				RequestID:   common.RequestID(c),
				Description: audit.Describe(req.Method, path, status),
				StatusCode:  status,
			}
			if v := req.Header.Get(HeaderClientUUID); v != "" {
				record.ClientUUID = &v
			}
			if p := common.Principal(c); p != nil {
				id := p.ID
				record.UserID = &id
			}

			ctx, cancel := context.WithTimeout(context.WithoutCancel(req.Context()), timeout)
			defer cancel()

			if writeErr := store.Write(ctx, record); writeErr != nil {
				instruments.AuditWriteFailed(ctx)
				logger.WarnContext(
					ctx,
					"failed to write audit record",
					slog.String("error", writeErr.Error()),
					slog.String("method", record.Method),
					slog.String("resource", record.Resource),
				)
			}

			return err
		}
	}
}
