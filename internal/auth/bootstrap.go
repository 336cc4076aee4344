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

	"github.com/lsirikh/GopApiServer/internal/config"
)

// EnsureAdmin creates the bootstrap principal when it does not exist.
// An existing principal is left untouched. It reports whether a principal
// was created.
func EnsureAdmin(
	ctx context.Context,
	logger *slog.Logger,
	store PrincipalStore,
	cfg config.Bootstrap,
) (bool, error) {
	if !cfg.Enabled {
		return false, nil
	}

	_, err := store.GetByUsername(ctx, cfg.Username)
	if err == nil {
		logger.Debug("bootstrap principal exists", slog.String("username", cfg.Username))
		return false, nil
	}
	if !errors.Is(err, ErrPrincipalNotFound) {
		return false, fmt.Errorf("checking bootstrap principal: %w", err)
	}

	role := RoleAdmin
	if cfg.Role != "" {
		if role, err = ParseRole(cfg.Role); err != nil {
			return false, err
		}
	}

	hash, err := HashPassword(cfg.Password)
	if err != nil {
		return false, err
	}

	if _, err := store.Create(ctx, cfg.Username, hash, role); err != nil {
		return false, fmt.Errorf("creating bootstrap principal: %w", err)
	}

	logger.Info(
		"created bootstrap principal",
		slog.String("username", cfg.Username),
		slog.String("role", string(role)),
	)

	return true, nil
}
