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

// Package health provides the root and health check handlers.
package health

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RootMessage is the banner returned by GET /.
const RootMessage = "GOP RESTful API Server"

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	checker Checker,
	version string,
	authMode string,
) *Health {
	return &Health{
		Checker:  checker,
		Version:  version,
		AuthMode: authMode,
		logger:   logger,
	}
}

// Register mounts GET / and GET /health on e.
func (h *Health) Register(
	e *echo.Echo,
) {
	e.GET("/", h.GetRoot)
	e.GET("/health", h.GetHealth)
}

// GetRoot describes the running server.
func (h *Health) GetRoot(
	c echo.Context,
) error {
	return c.JSON(http.StatusOK, RootResponse{
		Message:  RootMessage,
		Version:  h.Version,
		Status:   "running",
		AuthMode: h.AuthMode,
	})
}

// GetHealth reports 200 when every dependency responds and 503 otherwise.
func (h *Health) GetHealth(
	c echo.Context,
) error {
	if h.Checker != nil {
		if err := h.Checker.CheckHealth(c.Request().Context()); err != nil {
			h.logger.WarnContext(
				c.Request().Context(),
				"health check failed",
				slog.String("error", err.Error()),
			)

			return c.JSON(http.StatusServiceUnavailable, StatusResponse{
				Status:   "unhealthy",
				AuthMode: h.AuthMode,
				Error:    err.Error(),
			})
		}
	}

	return c.JSON(http.StatusOK, StatusResponse{
		Status:   "healthy",
		AuthMode: h.AuthMode,
	})
}
