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

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/lsirikh/GopApiServer/internal/telemetry"
)

// Authenticator verifies credentials and issues tokens.
type Authenticator struct {
	logger      *slog.Logger
	store       PrincipalStore
	codec       TokenCodec
	instruments *telemetry.Instruments
}

// NewAuthenticator creates an Authenticator. instruments may be nil.
func NewAuthenticator(
	logger *slog.Logger,
	store PrincipalStore,
	codec TokenCodec,
	instruments *telemetry.Instruments,
) *Authenticator {
	return &Authenticator{
		logger:      logger,
		store:       store,
		codec:       codec,
		instruments: instruments,
	}
}

// Login returns a signed token for username when password verifies.
// An unknown user and a wrong password both return ErrInvalidCredentials.
func (a *Authenticator) Login(
	ctx context.Context,
	username string,
	password string,
) (string, error) {
	p, err := a.store.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, ErrPrincipalNotFound) {
		a.instruments.LoginAttempted(ctx, "error")
		return "", fmt.Errorf("looking up principal: %w", err)
	}

	if p == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		a.instruments.LoginAttempted(ctx, "failure")
		a.logger.Debug("login rejected", slog.String("username", username))
		return "", ErrInvalidCredentials
	}

	if !VerifyPassword(p.PasswordHash, password) {
		a.instruments.LoginAttempted(ctx, "failure")
		a.logger.Debug("login rejected", slog.String("username", username))
		return "", ErrInvalidCredentials
	}

	token, err := a.codec.Generate(p.Username)
	if err != nil {
		a.instruments.LoginAttempted(ctx, "error")
		return "", fmt.Errorf("issuing token: %w", err)
	}

	a.instruments.LoginAttempted(ctx, "success")
	a.logger.Info("login succeeded", slog.String("username", username))

	return token, nil
}
