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
	"github.com/lsirikh/GopApiServer/internal/database"
)

var controllerTable = database.Table[Controller]{
	Name:   "controllers",
	Entity: "Controller",
	Columns: []string{
		"number_device", "group_device", "name_device", "type_device", "version",
		"status", "ip_address", "ip_port", "created_at", "updated_at",
	},
	Values: func(c *Controller) []any {
		return []any{
			c.NumberDevice, c.GroupDevice, c.NameDevice, string(c.TypeDevice), c.Version,
			string(c.Status), c.IPAddress, c.IPPort, c.CreatedAt, c.UpdatedAt,
		}
	},
	Scan: func(s database.Scanner) (*Controller, error) {
		var c Controller
		if err := s.Scan(
			&c.ID, &c.NumberDevice, &c.GroupDevice, &c.NameDevice, &c.TypeDevice, &c.Version,
			&c.Status, &c.IPAddress, &c.IPPort, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		c.CreatedAt, c.UpdatedAt = c.CreatedAt.UTC(), c.UpdatedAt.UTC()
		return &c, nil
	},
	SetID:       func(c *Controller, id int64) { c.ID = id },
	Unique:      "number_device",
	UniqueValue: func(c *Controller) any { return c.NumberDevice },
}

var sensorTable = database.Table[Sensor]{
	Name:   "sensors",
	Entity: "Sensor",
	Columns: []string{
		"number_device", "group_device", "name_device", "type_device", "version",
		"status", "controller_id", "created_at", "updated_at",
	},
	Values: func(s *Sensor) []any {
		return []any{
			s.NumberDevice, s.GroupDevice, s.NameDevice, string(s.TypeDevice), s.Version,
			string(s.Status), s.ControllerID, s.CreatedAt, s.UpdatedAt,
		}
	},
	Scan: func(sc database.Scanner) (*Sensor, error) {
		var s Sensor
		if err := sc.Scan(
			&s.ID, &s.NumberDevice, &s.GroupDevice, &s.NameDevice, &s.TypeDevice, &s.Version,
			&s.Status, &s.ControllerID, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		s.CreatedAt, s.UpdatedAt = s.CreatedAt.UTC(), s.UpdatedAt.UTC()
		return &s, nil
	},
	SetID:       func(s *Sensor, id int64) { s.ID = id },
	Unique:      "number_device",
	UniqueValue: func(s *Sensor) any { return s.NumberDevice },
	Parent:      "Controller",
	ParentID:    func(s *Sensor) int64 { return s.ControllerID },
}

var cameraTable = database.Table[Camera]{
	Name:   "cameras",
	Entity: "Camera",
	Columns: []string{
		"number_device", "group_device", "name_device", "type_device", "version",
		"status", "ip_address", "ip_port", "user_name", "user_password",
		"rtsp_uri", "rtsp_port", "mode", "category", "created_at", "updated_at",
	},
	Values: func(c *Camera) []any {
		return []any{
			c.NumberDevice, c.GroupDevice, c.NameDevice, string(c.TypeDevice), c.Version,
			string(c.Status), c.IPAddress, c.IPPort, c.UserName, c.UserPassword,
			c.RTSPURI, c.RTSPPort, string(c.Mode), string(c.Category), c.CreatedAt, c.UpdatedAt,
		}
	},
	Scan: func(s database.Scanner) (*Camera, error) {
		var c Camera
		if err := s.Scan(
			&c.ID, &c.NumberDevice, &c.GroupDevice, &c.NameDevice, &c.TypeDevice, &c.Version,
			&c.Status, &c.IPAddress, &c.IPPort, &c.UserName, &c.UserPassword,
			&c.RTSPURI, &c.RTSPPort, &c.Mode, &c.Category, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		c.CreatedAt, c.UpdatedAt = c.CreatedAt.UTC(), c.UpdatedAt.UTC()
		return &c, nil
	},
	SetID:       func(c *Camera, id int64) { c.ID = id },
	Unique:      "number_device",
	UniqueValue: func(c *Camera) any { return c.NumberDevice },
}
