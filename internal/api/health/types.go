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

package health

import (
	"context"
	"log/slog"
)

// Checker checks the health of a dependency.
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// Health implements the root and health handlers.
type Health struct {
	// Checker verifies the stores the server depends on.
	Checker Checker
	// Version is the running build version.
	Version string
	// AuthMode is the configured access mode, reported to clients.
	AuthMode string

	logger *slog.Logger
}

// RootResponse describes the running server.
type RootResponse struct {
	Message  string `json:"message"`
	Version  string `json:"version"`
	Status   string `json:"status"`
	AuthMode string `json:"auth_mode"`
}

// StatusResponse reports dependency health.
type StatusResponse struct {
	Status   string `json:"status"`
	AuthMode string `json:"auth_mode"`
	Error    string `json:"error,omitempty"`
}
