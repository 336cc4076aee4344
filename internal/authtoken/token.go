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

// Package authtoken encodes and decodes the signed, expiring bearer tokens
// issued at login.
package authtoken

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrTokenInvalid is returned by Validate for any token that must not be
// trusted. The underlying cause is wrapped.
var ErrTokenInvalid = errors.New("invalid token")

// DefaultLifetime is used when a non-positive lifetime is configured.
const DefaultLifetime = 24 * time.Hour

// Claims is the claim set carried by a token: sub, exp and iat.
type Claims struct {
	jwt.RegisteredClaims
}

// Token signs and verifies tokens with a single HMAC key and algorithm.
type Token struct {
	logger     *slog.Logger
	signingKey []byte
	method     *jwt.SigningMethodHMAC
	lifetime   time.Duration
	now        func() time.Time
}

// Option customizes a Token.
type Option func(*Token)

// WithClock replaces the time source used for iat, exp and expiry checks.
func WithClock(
	now func() time.Time,
) Option {
	return func(t *Token) {
		t.now = now
	}
}

// New returns a Token for the given key and algorithm (HS256, HS384 or HS512).
func New(
	logger *slog.Logger,
	signingKey string,
	algorithm string,
	lifetime time.Duration,
	opts ...Option,
) (*Token, error) {
	if signingKey == "" {
		return nil, errors.New("signing key must not be empty")
	}

	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm: %q", algorithm)
	}

	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}

	t := &Token{
		logger:     logger,
		signingKey: []byte(signingKey),
		method:     method,
		lifetime:   lifetime,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// Algorithm returns the configured signing algorithm name.
func (t *Token) Algorithm() string {
	return t.method.Alg()
}

// Lifetime returns how long issued tokens remain valid.
func (t *Token) Lifetime() time.Duration {
	return t.lifetime
}

// Generate issues a token for subject expiring after the configured lifetime.
func (t *Token) Generate(
	subject string,
) (string, error) {
	if subject == "" {
		return "", errors.New("subject must not be empty")
	}

	now := t.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.lifetime)),
		},
	}

	signed, err := jwt.NewWithClaims(t.method, claims).SignedString(t.signingKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	t.logger.Debug(
		"issued token",
		slog.String("subject", subject),
		slog.Time("expires_at", claims.ExpiresAt.Time),
	)

	return signed, nil
}
