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
	"github.com/lsirikh/GopApiServer/internal/database"
)

var detectionTable = database.Table[Detection]{
	Name:   "detection_events",
	Entity: "Detection event",
	Columns: []string{
		"group_event", "type_event", "controller", "sensor", "type_device", "sequence",
		"action_reported", "result", "datetime", "created_at", "updated_at",
	},
	Values: func(d *Detection) []any {
		return []any{
			d.GroupEvent, string(d.TypeEvent), d.Controller, d.Sensor, string(d.TypeDevice), d.Sequence,
			string(d.ActionReported), string(d.Result), d.DateTime, d.CreatedAt, d.UpdatedAt,
		}
	},
	Scan: func(s database.Scanner) (*Detection, error) {
		var d Detection
		if err := s.Scan(
			&d.ID, &d.GroupEvent, &d.TypeEvent, &d.Controller, &d.Sensor, &d.TypeDevice, &d.Sequence,
			&d.ActionReported, &d.Result, &d.DateTime, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		d.DateTime, d.CreatedAt, d.UpdatedAt = d.DateTime.UTC(), d.CreatedAt.UTC(), d.UpdatedAt.UTC()
		return &d, nil
	},
	SetID: func(d *Detection, id int64) { d.ID = id },
}

var malfunctionTable = database.Table[Malfunction]{
	Name:   "malfunction_events",
	Entity: "Malfunction event",
	Columns: []string{
		"group_event", "type_event", "controller", "sensor", "type_device", "sequence",
		"action_reported", "reason", "first_start", "first_end", "second_start", "second_end",
		"datetime", "created_at", "updated_at",
	},
	Values: func(m *Malfunction) []any {
		return []any{
			m.GroupEvent, string(m.TypeEvent), m.Controller, m.Sensor, string(m.TypeDevice), m.Sequence,
			string(m.ActionReported), string(m.Reason), m.FirstStart, m.FirstEnd, m.SecondStart, m.SecondEnd,
			m.DateTime, m.CreatedAt, m.UpdatedAt,
		}
	},
	Scan: func(s database.Scanner) (*Malfunction, error) {
		var m Malfunction
		if err := s.Scan(
			&m.ID, &m.GroupEvent, &m.TypeEvent, &m.Controller, &m.Sensor, &m.TypeDevice, &m.Sequence,
			&m.ActionReported, &m.Reason, &m.FirstStart, &m.FirstEnd, &m.SecondStart, &m.SecondEnd,
			&m.DateTime, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		m.DateTime, m.CreatedAt, m.UpdatedAt = m.DateTime.UTC(), m.CreatedAt.UTC(), m.UpdatedAt.UTC()
		return &m, nil
	},
	SetID: func(m *Malfunction, id int64) { m.ID = id },
}

var connectionTable = database.Table[Connection]{
	Name:   "connection_events",
	Entity: "Connection event",
	Columns: []string{
		"group_event", "type_event", "controller", "sensor", "type_device", "sequence",
		"datetime", "created_at", "updated_at",
	},
	Values: func(c *Connection) []any {
		return []any{
			c.GroupEvent, string(c.TypeEvent), c.Controller, c.Sensor, string(c.TypeDevice), c.Sequence,
			c.DateTime, c.CreatedAt, c.UpdatedAt,
		}
	},
	Scan: func(s database.Scanner) (*Connection, error) {
		var c Connection
		if err := s.Scan(
			&c.ID, &c.GroupEvent, &c.TypeEvent, &c.Controller, &c.Sensor, &c.TypeDevice, &c.Sequence,
			&c.DateTime, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		c.DateTime, c.CreatedAt, c.UpdatedAt = c.DateTime.UTC(), c.CreatedAt.UTC(), c.UpdatedAt.UTC()
		return &c, nil
	},
	SetID: func(c *Connection, id int64) { c.ID = id },
}

var actionTable = database.Table[Action]{
	Name:   "action_events",
	Entity: "Action event",
	Columns: []string{
		"type_event", "content", `"user"`, "from_event_id", "from_event_type",
		"datetime", "created_at", "updated_at",
	},
	Values: func(a *Action) []any {
		return []any{
			string(a.TypeEvent), a.Content, a.User, a.FromEventID, string(a.FromEventType),
			a.DateTime, a.CreatedAt, a.UpdatedAt,
		}
	},
	Scan: func(s database.Scanner) (*Action, error) {
		var a Action
		if err := s.Scan(
			&a.ID, &a.TypeEvent, &a.Content, &a.User, &a.FromEventID, &a.FromEventType,
			&a.DateTime, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		a.DateTime, a.CreatedAt, a.UpdatedAt = a.DateTime.UTC(), a.CreatedAt.UTC(), a.UpdatedAt.UTC()
		return &a, nil
	},
	SetID: func(a *Action, id int64) { a.ID = id },
}
