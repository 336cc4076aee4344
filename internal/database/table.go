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

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lsirikh/GopApiServer/internal/query"
)

// Querier is satisfied by *sql.DB, *sql.Tx and *DB.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Table maps a struct type to a table with an integer "id" primary key.
type Table[T any] struct {
	// Name is the table name.
	Name string
	// Entity is the display name used in errors, e.g. "Controller".
	Entity string
	// Columns lists every column except id, in Values order.
	Columns []string
	// Values returns the column values of a row in Columns order.
	Values func(row *T) []any
	// Scan reads "id" followed by Columns.
	Scan func(s Scanner) (*T, error)
	// SetID stores the generated id.
	SetID func(row *T, id int64)
	// Unique is the column carrying a unique constraint, if any.
	Unique string
	// UniqueValue returns the value of Unique for conflict messages.
	UniqueValue func(row *T) any
	// Parent is the entity a foreign key column points at, if any.
	Parent string
	// ParentID returns the foreign key value for not-found messages.
	ParentID func(row *T) int64

	driver string
}

// Bind returns t bound to the placeholder style of driver.
func (t Table[T]) Bind(
	driver string,
) *Table[T] {
	t.driver = driver
	return &t
}

func (t *Table[T]) selectColumns() string {
	return "id, " + strings.Join(t.Columns, ", ")
}

// List returns one page of rows matching b in order and the total count.
func (t *Table[T]) List(
	ctx context.Context,
	q Querier,
	b *query.Builder,
	order string,
	page query.Page,
) ([]T, int, error) {
	var total int
	if err := q.QueryRowContext(
		ctx,
		Rebind(t.driver, "SELECT COUNT(*) FROM "+t.Name+b.Where()),
		b.Args()...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting %s: %w", t.Name, err)
	}

	stmt, args := query.Paginate(
		"SELECT "+t.selectColumns()+" FROM "+t.Name+b.Where()+" ORDER BY "+order,
		b.Args(),
		page,
	)

	rows, err := q.QueryContext(ctx, Rebind(t.driver, stmt), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing %s: %w", t.Name, err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]T, 0, page.Limit)
	for rows.Next() {
		item, err := t.Scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning %s: %w", t.Name, err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating %s: %w", t.Name, err)
	}

	return items, total, nil
}

// Get returns the row with id or a *NotFoundError.
func (t *Table[T]) Get(
	ctx context.Context,
	q Querier,
	id int64,
) (*T, error) {
	row := q.QueryRowContext(
		ctx,
		Rebind(t.driver, "SELECT "+t.selectColumns()+" FROM "+t.Name+" WHERE id = ?"),
		id,
	)

	item, err := t.Scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Entity: t.Entity, ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s %d: %w", t.Name, id, err)
	}

	return item, nil
}

// Exists reports whether a row with id exists.
func (t *Table[T]) Exists(
	ctx context.Context,
	q Querier,
	id int64,
) (bool, error) {
	var one int
	err := q.QueryRowContext(
		ctx,
		Rebind(t.driver, "SELECT 1 FROM "+t.Name+" WHERE id = ?"),
		id,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s %d: %w", t.Name, id, err)
	}

	return true, nil
}

// Insert writes row and stores the generated id on it.
func (t *Table[T]) Insert(
	ctx context.Context,
	q Querier,
	row *T,
) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.Columns)), ", ")

	var id int64
	err := q.QueryRowContext(
		ctx,
		Rebind(t.driver, "INSERT INTO "+t.Name+" ("+strings.Join(t.Columns, ", ")+
			") VALUES ("+placeholders+") RETURNING id"),
		t.Values(row)...,
	).Scan(&id)
	if err != nil {
		return t.writeError("inserting", row, err)
	}

	t.SetID(row, id)

	return nil
}

// Update overwrites every column of the row with id.
func (t *Table[T]) Update(
	ctx context.Context,
	q Querier,
	id int64,
	row *T,
) error {
	sets := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		sets[i] = c + " = ?"
	}

	args := append(t.Values(row), id)
	res, err := q.ExecContext(
		ctx,
		Rebind(t.driver, "UPDATE "+t.Name+" SET "+strings.Join(sets, ", ")+" WHERE id = ?"),
		args...,
	)
	if err != nil {
		return t.writeError("updating", row, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &NotFoundError{Entity: t.Entity, ID: id}
	}

	return nil
}

// Delete removes the row with id or returns a *NotFoundError.
func (t *Table[T]) Delete(
	ctx context.Context,
	q Querier,
	id int64,
) error {
	res, err := q.ExecContext(
		ctx,
		Rebind(t.driver, "DELETE FROM "+t.Name+" WHERE id = ?"),
		id,
	)
	if err != nil {
		return fmt.Errorf("deleting %s %d: %w", t.Name, id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting %s %d: %w", t.Name, id, err)
	}
	if n == 0 {
		return &NotFoundError{Entity: t.Entity, ID: id}
	}

	return nil
}

func (t *Table[T]) writeError(
	op string,
	row *T,
	err error,
) error {
	if t.Unique != "" && IsUniqueViolation(err) {
		return &ConflictError{Entity: t.Entity, Field: t.Unique, Value: t.UniqueValue(row)}
	}
	if t.Parent != "" && IsForeignKeyViolation(err) {
		return &NotFoundError{Entity: t.Parent, ID: t.ParentID(row)}
	}

	return fmt.Errorf("%s %s: %w", op, t.Name, err)
}

// InTx runs fn in a transaction, committing when fn returns nil.
func (db *DB) InTx(
	ctx context.Context,
	fn func(tx *sql.Tx) error,
) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
