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

package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName is the instrumentation scope for domain instruments.
const MeterName = "github.com/lsirikh/GopApiServer"

// Instruments holds the domain counters recorded by the auth and audit paths.
type Instruments struct {
	auditWriteFailures metric.Int64Counter
	loginAttempts      metric.Int64Counter
	resolutions        metric.Int64Counter
}

// NewInstruments creates the domain counters on meter. A nil meter uses the
// global meter provider.
func NewInstruments(
	meter metric.Meter,
) (*Instruments, error) {
	if meter == nil {
		meter = otel.Meter(MeterName)
	}

	auditWriteFailures, err := meter.Int64Counter(
		"gop.audit.write.failures",
		metric.WithDescription("Audit records that could not be persisted."),
	)
	if err != nil {
		return nil, fmt.Errorf("creating audit failure counter: %w", err)
	}

	loginAttempts, err := meter.Int64Counter(
		"gop.auth.login.attempts",
		metric.WithDescription("Login attempts by outcome."),
	)
	if err != nil {
		return nil, fmt.Errorf("creating login counter: %w", err)
	}

	resolutions, err := meter.Int64Counter(
		"gop.auth.resolutions",
		metric.WithDescription("Access resolutions by mode and outcome."),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resolution counter: %w", err)
	}

	return &Instruments{
		auditWriteFailures: auditWriteFailures,
		loginAttempts:      loginAttempts,
		resolutions:        resolutions,
	}, nil
}

// AuditWriteFailed records a failed audit write.
func (i *Instruments) AuditWriteFailed(
	ctx context.Context,
) {
	if i == nil {
		return
	}
	i.auditWriteFailures.Add(ctx, 1)
}

// LoginAttempted records a login attempt with outcome "success", "failure"
// or "error".
func (i *Instruments) LoginAttempted(
	ctx context.Context,
	outcome string,
) {
	if i == nil {
		return
	}
	i.loginAttempts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

// Resolved records an access resolution.
func (i *Instruments) Resolved(
	ctx context.Context,
	mode string,
	outcome string,
) {
	if i == nil {
		return
	}
	i.resolutions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.String("outcome", outcome),
	))
}
