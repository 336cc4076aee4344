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
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lsirikh/GopApiServer/internal/database"
)

// SQLPrincipalStore persists principals in the users table.
type SQLPrincipalStore struct {
	db  *database.DB
	now func() time.Time
}

// NewSQLPrincipalStore creates a store over db.
func NewSQLPrincipalStore(
	db *database.DB,
) *SQLPrincipalStore {
	return &SQLPrincipalStore{
		db:  db,
		now: time.Now,
	}
}

const principalColumns = "id, username, hashed_password, role, created_at, updated_at"

// GetByUsername looks up a principal by exact username.
func (s *SQLPrincipalStore) GetByUsername(
	ctx context.Context,
	username string,
) (*Principal, error) {
	row := s.db.QueryRowContext(
		ctx,
		s.db.Rebind("SELECT "+principalColumns+" FROM users WHERE username = ?"),
		username,
	)

	p, err := scanPrincipal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPrincipalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying principal: %w", err)
	}

	return p, nil
}

// Create inserts a principal with an already hashed password.
func (s *SQLPrincipalStore) Create(
	ctx context.Context,
	username string,
	passwordHash string,
	role Role,
) (*Principal, error) {
	now := s.now().UTC()
	p := &Principal{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.db.QueryRowContext(
		ctx,
		s.db.Rebind(`INSERT INTO users (username, hashed_password, role, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?) RETURNING id`),
		p.Username,
		p.PasswordHash,
		string(p.Role),
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&p.ID)
	if database.IsUniqueViolation(err) {
		return nil, fmt.Errorf("%w: %s", ErrPrincipalExists, username)
	}
	if err != nil {
		return nil, fmt.Errorf("creating principal: %w", err)
	}

	return p, nil
}

// List returns all principals ordered by id.
func (s *SQLPrincipalStore) List(
	ctx context.Context,
) ([]Principal, error) {
	rows, err := s.db.QueryContext(
		ctx,
		"SELECT "+principalColumns+" FROM users ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("listing principals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var principals []Principal
	for rows.Next() {
		p, err := scanPrincipal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning principal: %w", err)
		}
		principals = append(principals, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating principals: %w", err)
	}

	return principals, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPrincipal(
	row scanner,
) (*Principal, error) {
	var (
		p    Principal
		role string
	)

	if err := row.Scan(
		&p.ID,
		&p.Username,
		&p.PasswordHash,
		&role,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Role = Role(role)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()

	return &p, nil
}
