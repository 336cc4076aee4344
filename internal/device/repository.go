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

package device

import (
	"context"
	"database/sql"
	"time"

	"github.com/lsirikh/GopApiServer/internal/database"
	"github.com/lsirikh/GopApiServer/internal/query"
)

// deviceOrder lists devices oldest first.
const deviceOrder = "id ASC"

// ControllerRepository stores controllers.
type ControllerRepository struct {
	db    *database.DB
	table *database.Table[Controller]
	now   func() time.Time
}

// NewControllerRepository creates a ControllerRepository over db.
func NewControllerRepository(
	db *database.DB,
) *ControllerRepository {
	return &ControllerRepository{
		db:    db,
		table: controllerTable.Bind(db.Driver),
		now:   time.Now,
	}
}

// List returns one page of controllers matching f.
func (r *ControllerRepository) List(
	ctx context.Context,
	f ControllerFilter,
	page query.Page,
) ([]Controller, int, error) {
	var b query.Builder
	if f.GroupDevice != nil {
		b.Eq("group_device", *f.GroupDevice)
	}
	if f.TypeDevice != nil {
		b.Eq("type_device", string(*f.TypeDevice))
	}
	if f.Status != nil {
		b.Eq("status", string(*f.Status))
	}

	return r.table.List(ctx, r.db, &b, deviceOrder, page)
}

// Get returns the controller with id.
func (r *ControllerRepository) Get(
	ctx context.Context,
	id int64,
) (*Controller, error) {
	return r.table.Get(ctx, r.db, id)
}

// Create inserts a controller.
func (r *ControllerRepository) Create(
	ctx context.Context,
	in ControllerInput,
) (*Controller, error) {
	c := in.Controller()
	c.CreatedAt = r.now().UTC()
	c.UpdatedAt = c.CreatedAt

	if err := r.table.Insert(ctx, r.db, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

// Patch updates the set fields of the controller with id.
func (r *ControllerRepository) Patch(
	ctx context.Context,
	id int64,
	in ControllerPatch,
) (*Controller, error) {
	var out *Controller
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		c, err := r.table.Get(ctx, tx, id)
		if err != nil {
			return err
		}

		in.Apply(c)
		c.UpdatedAt = r.now().UTC()
		if err := r.table.Update(ctx, tx, id, c); err != nil {
			return err
		}

		out = c
		return nil
	})

	return out, err
}

// Replace overwrites every field of the controller with id.
func (r *ControllerRepository) Replace(
	ctx context.Context,
	id int64,
	in ControllerInput,
) (*Controller, error) {
	var out *Controller
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		cur, err := r.table.Get(ctx, tx, id)
		if err != nil {
			return err
		}

		c := in.Controller()
		c.ID = id
		c.CreatedAt = cur.CreatedAt
		c.UpdatedAt = r.now().UTC()
		if err := r.table.Update(ctx, tx, id, &c); err != nil {
			return err
		}

		out = &c
		return nil
	})

	return out, err
}

// Delete removes the controller with id and its sensors.
func (r *ControllerRepository) Delete(
	ctx context.Context,
	id int64,
) error {
	return r.table.Delete(ctx, r.db, id)
}

// SensorRepository stores sensors and checks their controller reference.
type SensorRepository struct {
	db          *database.DB
	table       *database.Table[Sensor]
	controllers *database.Table[Controller]
	now         func() time.Time
}

// NewSensorRepository creates a SensorRepository over db.
func NewSensorRepository(
	db *database.DB,
) *SensorRepository {
	return &SensorRepository{
		db:          db,
		table:       sensorTable.Bind(db.Driver),
		controllers: controllerTable.Bind(db.Driver),
		now:         time.Now,
	}
}

// List returns one page of sensors matching f, with their controllers
// when f.IncludeController is set.
func (r *SensorRepository) List(
	ctx context.Context,
	f SensorFilter,
	page query.Page,
) ([]Sensor, int, error) {
	var b query.Builder
	if f.GroupDevice != nil {
		b.Eq("group_device", *f.GroupDevice)
	}
	if f.ControllerID != nil {
		b.Eq("controller_id", *f.ControllerID)
	}
	if f.TypeDevice != nil {
		b.Eq("type_device", string(*f.TypeDevice))
	}
	if f.Status != nil {
		b.Eq("status", string(*f.Status))
	}

	sensors, total, err := r.table.List(ctx, r.db, &b, deviceOrder, page)
	if err != nil || !f.IncludeController {
		return sensors, total, err
	}

	cache := make(map[int64]*Controller)
	for i := range sensors {
		if err := r.attach(ctx, &sensors[i], cache); err != nil {
			return nil, 0, err
		}
	}

	return sensors, total, nil
}

// Get returns the sensor with id.
func (r *SensorRepository) Get(
	ctx context.Context,
	id int64,
) (*Sensor, error) {
	return r.table.Get(ctx, r.db, id)
}

// GetExpanded returns the sensor with id, with its controller when include
// is set.
func (r *SensorRepository) GetExpanded(
	ctx context.Context,
	id int64,
	include bool,
) (*Sensor, error) {
	s, err := r.table.Get(ctx, r.db, id)
	if err != nil || !include {
		return s, err
	}

	if err := r.attach(ctx, s, nil); err != nil {
		return nil, err
	}

	return s, nil
}

func (r *SensorRepository) attach(
	ctx context.Context,
	s *Sensor,
	cache map[int64]*Controller,
) error {
	if c, ok := cache[s.ControllerID]; ok {
		s.Controller = c
		return nil
	}

	c, err := r.controllers.Get(ctx, r.db, s.ControllerID)
	if err != nil {
		return err
	}
	if cache != nil {
		cache[s.ControllerID] = c
	}
	s.Controller = c

	return nil
}

// requireController returns a *database.NotFoundError naming the
// controller when it does not exist.
func (r *SensorRepository) requireController(
	ctx context.Context,
	q database.Querier,
	id int64,
) error {
	ok, err := r.controllers.Exists(ctx, q, id)
	if err != nil {
		return err
	}
	if !ok {
		return &database.NotFoundError{Entity: r.controllers.Entity, ID: id}
	}

	return nil
}

// Create inserts a sensor after checking its controller exists.
func (r *SensorRepository) Create(
	ctx context.Context,
	in SensorInput,
) (*Sensor, error) {
	s := in.Sensor()
	s.CreatedAt = r.now().UTC()
	s.UpdatedAt = s.CreatedAt

	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		if err := r.requireController(ctx, tx, s.ControllerID); err != nil {
			return err
		}

		return r.table.Insert(ctx, tx, &s)
	})
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// Patch updates the set fields of the sensor with id.
func (r *SensorRepository) Patch(
	ctx context.Context,
	id int64,
	in SensorPatch,
) (*Sensor, error) {
	var out *Sensor
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		s, err := r.table.Get(ctx, tx, id)
		if err != nil {
			return err
		}

		if in.ControllerID != nil {
			if err := r.requireController(ctx, tx, *in.ControllerID); err != nil {
				return err
			}
		}

		in.Apply(s)
		s.UpdatedAt = r.now().UTC()
		if err := r.table.Update(ctx, tx, id, s); err != nil {
			return err
		}

		out = s
		return nil
	})

	return out, err
}

// Replace overwrites every field of the sensor with id.
func (r *SensorRepository) Replace(
	ctx context.Context,
	id int64,
	in SensorInput,
) (*Sensor, error) {
	var out *Sensor
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		cur, err := r.table.Get(ctx, tx, id)
		if err != nil {
			return err
		}

		s := in.Sensor()
		if err := r.requireController(ctx, tx, s.ControllerID); err != nil {
			return err
		}

		s.ID = id
		s.CreatedAt = cur.CreatedAt
		s.UpdatedAt = r.now().UTC()
		if err := r.table.Update(ctx, tx, id, &s); err != nil {
			return err
		}

		out = &s
		return nil
	})

	return out, err
}

// Delete removes the sensor with id.
func (r *SensorRepository) Delete(
	ctx context.Context,
	id int64,
) error {
	return r.table.Delete(ctx, r.db, id)
}

// CameraRepository stores cameras.
type CameraRepository struct {
	db    *database.DB
	table *database.Table[Camera]
	now   func() time.Time
}

// NewCameraRepository creates a CameraRepository over db.
func NewCameraRepository(
	db *database.DB,
) *CameraRepository {
	return &CameraRepository{
		db:    db,
		table: cameraTable.Bind(db.Driver),
		now:   time.Now,
	}
}

// List returns one page of cameras matching f.
func (r *CameraRepository) List(
	ctx context.Context,
	f CameraFilter,
	page query.Page,
) ([]Camera, int, error) {
	var b query.Builder
	if f.GroupDevice != nil {
		b.Eq("group_device", *f.GroupDevice)
	}
	if f.TypeDevice != nil {
		b.Eq("type_device", string(*f.TypeDevice))
	}
	if f.Status != nil {
		b.Eq("status", string(*f.Status))
	}
	if f.Mode != nil {
		b.Eq("mode", string(*f.Mode))
	}
	if f.Category != nil {
		b.Eq("category", string(*f.Category))
	}

	return r.table.List(ctx, r.db, &b, deviceOrder, page)
}

// Get returns the camera with id.
func (r *CameraRepository) Get(
	ctx context.Context,
	id int64,
) (*Camera, error) {
	return r.table.Get(ctx, r.db, id)
}

// Create inserts a camera.
func (r *CameraRepository) Create(
	ctx context.Context,
	in CameraInput,
) (*Camera, error) {
	c := in.Camera()
	c.CreatedAt = r.now().UTC()
	c.UpdatedAt = c.CreatedAt

	if err := r.table.Insert(ctx, r.db, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

// Patch updates the set fields of the camera with id.
func (r *CameraRepository) Patch(
	ctx context.Context,
	id int64,
	in CameraPatch,
) (*Camera, error) {
	var out *Camera
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		c, err := r.table.Get(ctx, tx, id)
		if err != nil {
			return err
		}

		in.Apply(c)
		c.UpdatedAt = r.now().UTC()
		if err := r.table.Update(ctx, tx, id, c); err != nil {
			return err
		}

		out = c
		return nil
	})

	return out, err
}

// Replace overwrites every field of the camera with id.
func (r *CameraRepository) Replace(
	ctx context.Context,
	id int64,
	in CameraInput,
) (*Camera, error) {
	var out *Camera
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		cur, err := r.table.Get(ctx, tx, id)
		if err != nil {
			return err
		}

		c := in.Camera()
		c.ID = id
		c.CreatedAt = cur.CreatedAt
		c.UpdatedAt = r.now().UTC()
		if err := r.table.Update(ctx, tx, id, &c); err != nil {
			return err
		}

		out = &c
		return nil
	})

	return out, err
}

// Delete removes the camera with id.
func (r *CameraRepository) Delete(
	ctx context.Context,
	id int64,
) error {
	return r.table.Delete(ctx, r.db, id)
}
