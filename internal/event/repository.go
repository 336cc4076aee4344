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

package event

import (
	"context"
	"database/sql"
	"time"

	"github.com/lsirikh/GopApiServer/internal/database"
	"github.com/lsirikh/GopApiServer/internal/query"
)

// eventOrder lists events newest first with ties broken by id.
const eventOrder = "datetime DESC, id DESC"

// Input builds a new row of type T.
type Input[T any] interface {
	Event() T
}

// Patch updates the set fields of a row of type T.
type Patch[T any] interface {
	Apply(row *T)
}

// Filter narrows a listing.
type Filter interface {
	Apply(b *query.Builder)
}

// Repository stores one event stream.
type Repository[T any, I Input[T], P Patch[T], F Filter] struct {
	db    *database.DB
	table *database.Table[T]
	// stamps returns the created_at and updated_at fields of a row.
	stamps func(row *T) (created, updated *time.Time)
	now    func() time.Time
}

// Repositories for each event stream.
type (
	DetectionRepository   = Repository[Detection, DetectionInput, DetectionPatch, DetectionFilter]
	MalfunctionRepository = Repository[Malfunction, MalfunctionInput, MalfunctionPatch, MalfunctionFilter]
	ConnectionRepository  = Repository[Connection, ConnectionInput, ConnectionPatch, ConnectionFilter]
	ActionRepository      = Repository[Action, ActionInput, ActionPatch, ActionFilter]
)

// NewDetectionRepository creates a DetectionRepository over db.
func NewDetectionRepository(
	db *database.DB,
) *DetectionRepository {
	return &DetectionRepository{
		db:    db,
		table: detectionTable.Bind(db.Driver),
		stamps: func(d *Detection) (*time.Time, *time.Time) {
			return &d.CreatedAt, &d.UpdatedAt
		},
		now: time.Now,
	}
}

// NewMalfunctionRepository creates a MalfunctionRepository over db.
func NewMalfunctionRepository(
	db *database.DB,
) *MalfunctionRepository {
	return &MalfunctionRepository{
		db:    db,
		table: malfunctionTable.Bind(db.Driver),
		stamps: func(m *Malfunction) (*time.Time, *time.Time) {
			return &m.CreatedAt, &m.UpdatedAt
		},
		now: time.Now,
	}
}

// NewConnectionRepository creates a ConnectionRepository over db.
func NewConnectionRepository(
	db *database.DB,
) *ConnectionRepository {
	return &ConnectionRepository{
		db:    db,
		table: connectionTable.Bind(db.Driver),
		stamps: func(c *Connection) (*time.Time, *time.Time) {
			return &c.CreatedAt, &c.UpdatedAt
		},
		now: time.Now,
	}
}

// NewActionRepository creates an ActionRepository over db.
func NewActionRepository(
	db *database.DB,
) *ActionRepository {
	return &ActionRepository{
		db:    db,
		table: actionTable.Bind(db.Driver),
		stamps: func(a *Action) (*time.Time, *time.Time) {
			return &a.CreatedAt, &a.UpdatedAt
		},
		now: time.Now,
	}
}

// List returns one page of events matching f, newest first.
func (r *Repository[T, I, P, F]) List(
	ctx context.Context,
	f F,
	page query.Page,
) ([]T, int, error) {
	var b query.Builder
	f.Apply(&b)

	return r.table.List(ctx, r.db, &b, eventOrder, page)
}

// Get returns the event with id.
func (r *Repository[T, I, P, F]) Get(
	ctx context.Context,
	id int64,
) (*T, error) {
	return r.table.Get(ctx, r.db, id)
}

// Create inserts an event.
func (r *Repository[T, I, P, F]) Create(
	ctx context.Context,
	in I,
) (*T, error) {
	row := in.Event()
	created, updated := r.stamps(&row)
	*created = r.now().UTC()
	*updated = *created

	if err := r.table.Insert(ctx, r.db, &row); err != nil {
		return nil, err
	}

	return &row, nil
}

// Patch updates the set fields of the event with id.
func (r *Repository[T, I, P, F]) Patch(
	ctx context.Context,
	id int64,
	in P,
) (*T, error) {
	var out *T
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		row, err := r.table.Get(ctx, tx, id)
		if err != nil {
			return err
		}

		in.Apply(row)
		_, updated := r.stamps(row)
		*updated = r.now().UTC()
		if err := r.table.Update(ctx, tx, id, row); err != nil {
			return err
		}

		out = row
		return nil
	})

	return out, err
}

// Replace overwrites every field of the event with id.
func (r *Repository[T, I, P, F]) Replace(
	ctx context.Context,
	id int64,
	in I,
) (*T, error) {
	var out *T
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		cur, err := r.table.Get(ctx, tx, id)
		if err != nil {
			return err
		}
		wasCreated, _ := r.stamps(cur)

		row := in.Event()
		r.table.SetID(&row, id)
		created, updated := r.stamps(&row)
		*created = *wasCreated
		*updated = r.now().UTC()
		if err := r.table.Update(ctx, tx, id, &row); err != nil {
			return err
		}

		out = &row
		return nil
	})

	return out, err
}

// Delete removes the event with id.
func (r *Repository[T, I, P, F]) Delete(
	ctx context.Context,
	id int64,
) error {
	return r.table.Delete(ctx, r.db, id)
}
