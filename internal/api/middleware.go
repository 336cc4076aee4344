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

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/lsirikh/GopApiServer/internal/api/common"
	"github.com/lsirikh/GopApiServer/internal/auth"
	"github.com/lsirikh/GopApiServer/internal/telemetry"
)

// requestIDMiddleware reuses a caller supplied X-Request-ID or generates a
// UUIDv4, echoes it in the response and exposes it to handlers and logs.
func requestIDMiddleware() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			c.Set(common.ContextKeyRequestID, id)

			req := c.Request()
			c.SetRequest(req.WithContext(telemetry.WithRequestID(req.Context(), id)))
		},
	})
}

// Resolver resolves the calling principal from an Authorization header.
type Resolver interface {
	Resolve(ctx context.Context, authorization string) (auth.Resolution, error)
	Authenticate(ctx context.Context, authorization string) (*auth.Principal, error)
	Mode() auth.AccessMode
}

// accessMiddleware admits or rejects requests according to the resolver's
// access mode and stores the principal for handlers and the audit record.
func accessMiddleware(
	resolver Resolver,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res, err := resolver.Resolve(
				c.Request().Context(),
				c.Request().Header.Get(echo.HeaderAuthorization),
			)
			if err != nil {
				return err
			}

			if res.Principal != nil {
				c.Set(common.ContextKeyPrincipal, res.Principal)
			}

			return next(c)
		}
	}
}
