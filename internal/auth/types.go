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

// Package auth verifies credentials, issues tokens, and resolves the calling
// principal for each request according to the configured access mode.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lsirikh/GopApiServer/internal/authtoken"
)

// Sentinel errors.
var (
	// ErrInvalidCredentials is returned by Login for an unknown user or a
	// wrong password. The two cases are indistinguishable.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrUnauthorized is returned by the resolver when a request must be
	// rejected with 401.
	ErrUnauthorized = errors.New("not authenticated")
	// ErrPrincipalNotFound is returned by a PrincipalStore lookup miss.
	ErrPrincipalNotFound = errors.New("principal not found")
	// ErrPrincipalExists is returned by Create for a taken username.
	ErrPrincipalExists = errors.New("principal already exists")
)

// Role is the authorization role stored with a principal.
type Role string

// Roles.
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole returns the Role for s.
func ParseRole(
	s string,
) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	}

	return "", fmt.Errorf("invalid role %q (allowed: admin, user)", s)
}

// AccessMode selects how requests without a valid token are treated.
type AccessMode string

// Access modes.
const (
	// AccessModeRequired rejects requests without a valid token.
	AccessModeRequired AccessMode = "required"
	// AccessModeOpen admits every request and attaches the principal only
	// when a valid token names a known user.
	AccessModeOpen AccessMode = "open"
)

// ParseAccessMode returns the AccessMode for s. The legacy names "token"
// and "public" map to required and open.
func ParseAccessMode(
	s string,
) (AccessMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "required", "token":
		return AccessModeRequired, nil
	case "open", "public":
		return AccessModeOpen, nil
	}

	return "", fmt.Errorf("invalid access mode %q (allowed: required, open)", s)
}

// Principal is an authenticated identity.
type Principal struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PrincipalStore is the credential store.
type PrincipalStore interface {
	// GetByUsername returns ErrPrincipalNotFound when no row matches.
	GetByUsername(ctx context.Context, username string) (*Principal, error)
	// Create returns ErrPrincipalExists for a duplicate username.
	Create(ctx context.Context, username, passwordHash string, role Role) (*Principal, error)
	// List returns every principal ordered by id.
	List(ctx context.Context) ([]Principal, error)
}

// TokenCodec issues and verifies bearer tokens.
type TokenCodec interface {
	Generate(subject string) (string, error)
	Validate(token string) (*authtoken.Claims, error)
}
