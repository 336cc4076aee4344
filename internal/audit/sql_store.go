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

package audit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lsirikh/GopApiServer/internal/database"
	"github.com/lsirikh/GopApiServer/internal/query"
)

// ensure SQLStore implements Store at compile time.
var _ Store = (*SQLStore)(nil)

// SQLStore implements Store on the api_logs table.
type SQLStore struct {
	db *database.DB
}

// NewSQLStore creates a new SQLStore.
func NewSQLStore(
	db *database.DB,
) *SQLStore {
	return &SQLStore{db: db}
}

const recordColumns = "id, timestamp, resource, method, client_uuid, request_id, description, status_code, user_id"

// Write inserts a record.
func (s *SQLStore) Write(
	ctx context.Context,
	record Record,
) error {
	r := record.Normalize()

	if _, err := s.db.ExecContext(
		ctx,
		s.db.Rebind(`INSERT INTO api_logs
			(timestamp, resource, method, client_uuid, request_id, description, status_code, user_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		r.Timestamp,
		r.Resource,
		r.Method,
		r.ClientUUID,
		r.RequestID,
		r.Description,
		r.StatusCode,
		r.UserID,
	); err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}

	return nil
}

// List returns matching records newest first.
func (s *SQLStore) List(
	ctx context.Context,
	filter Filter,
	page int,
	limit int,
) ([]Record, int, error) {
	if err := validatePage(page, limit); err != nil {
		return nil, 0, err
	}

	var b query.Builder
	if filter.Start != nil {
		b.Gte("timestamp", filter.Start.UTC())
	}
	if filter.End != nil {
		b.Lte("timestamp", filter.End.UTC())
	}
	if filter.Method != "" {
		b.Eq("method", filter.Method)
	}
	if filter.Resource != "" {
		b.Eq("resource", filter.Resource)
	}
	if filter.ClientUUID != "" {
		b.Eq("client_uuid", filter.ClientUUID)
	}

	var total int
	if err := s.db.QueryRowContext(
		ctx,
		s.db.Rebind("SELECT COUNT(*) FROM api_logs"+b.Where()),
		b.Args()...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit records: %w", err)
	}

	stmt, args := query.Paginate(
		"SELECT "+recordColumns+" FROM api_logs"+b.Where()+" ORDER BY timestamp DESC, id DESC",
		b.Args(),
		query.Page{Page: page, Limit: limit},
	)

	rows, err := s.db.QueryContext(ctx, s.db.Rebind(stmt), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]Record, 0, limit)
	for rows.Next() {
		var (
			r          Record
			clientUUID sql.NullString
			userID     sql.NullInt64
		)

		if err := rows.Scan(
			&r.ID,
			&r.Timestamp,
			&r.Resource,
			&r.Method,
			&clientUUID,
			&r.RequestID,
			&r.Description,
			&r.StatusCode,
			&userID,
		); err != nil {
			return nil, 0, fmt.Errorf("scan audit record: %w", err)
		}

		r.Timestamp = r.Timestamp.UTC()
		if clientUUID.Valid {
			r.ClientUUID = &clientUUID.String
		}
		if userID.Valid {
			r.UserID = &userID.Int64
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate audit records: %w", err)
	}

	return records, total, nil
}
