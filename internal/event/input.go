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
	"time"

	"github.com/lsirikh/GopApiServer/internal/enum"
	"github.com/lsirikh/GopApiServer/internal/query"
)

// DetectionInput is the body of a detection create or replace. TypeEvent
// defaults to Intrusion.
type DetectionInput struct {
	GroupEvent     *string             `json:"group_event"     validate:"required,max=100"`
	TypeEvent      *enum.EventType     `json:"type_event"`
	Controller     *int                `json:"controller"      validate:"required"`
	Sensor         *int                `json:"sensor"          validate:"required"`
	TypeDevice     *enum.DeviceType    `json:"type_device"     validate:"required"`
	Sequence       *int                `json:"sequence"        validate:"required"`
	ActionReported *enum.TrueFalse     `json:"action_reported" validate:"required"`
	Result         *enum.DetectionType `json:"result"          validate:"required"`
	DateTime       *query.Time         `json:"datetime"        validate:"required"`
}

// Event returns the row described by in.
func (in DetectionInput) Event() Detection {
	return Detection{
		GroupEvent:     *in.GroupEvent,
		TypeEvent:      typeOrDefault(in.TypeEvent, enum.EventTypeIntrusion),
		Controller:     *in.Controller,
		Sensor:         *in.Sensor,
		TypeDevice:     *in.TypeDevice,
		Sequence:       *in.Sequence,
		ActionReported: *in.ActionReported,
		Result:         *in.Result,
		DateTime:       in.DateTime.UTC(),
	}
}

// DetectionPatch is the body of a detection partial update.
type DetectionPatch struct {
	GroupEvent     *string             `json:"group_event" validate:"omitempty,max=100"`
	TypeEvent      *enum.EventType     `json:"type_event"`
	Controller     *int                `json:"controller"`
	Sensor         *int                `json:"sensor"`
	TypeDevice     *enum.DeviceType    `json:"type_device"`
	Sequence       *int                `json:"sequence"`
	ActionReported *enum.TrueFalse     `json:"action_reported"`
	Result         *enum.DetectionType `json:"result"`
	DateTime       *query.Time         `json:"datetime"`
}

// Apply copies the set fields onto d.
func (p DetectionPatch) Apply(d *Detection) {
	set(&d.GroupEvent, p.GroupEvent)
	set(&d.TypeEvent, p.TypeEvent)
	set(&d.Controller, p.Controller)
	set(&d.Sensor, p.Sensor)
	set(&d.TypeDevice, p.TypeDevice)
	set(&d.Sequence, p.Sequence)
	set(&d.ActionReported, p.ActionReported)
	set(&d.Result, p.Result)
	setTime(&d.DateTime, p.DateTime)
}

// MalfunctionInput is the body of a malfunction create or replace.
// TypeEvent defaults to Fault.
type MalfunctionInput struct {
	GroupEvent     *string          `json:"group_event"     validate:"required,max=100"`
	TypeEvent      *enum.EventType  `json:"type_event"`
	Controller     *int             `json:"controller"      validate:"required"`
	Sensor         *int             `json:"sensor"          validate:"required"`
	TypeDevice     *enum.DeviceType `json:"type_device"     validate:"required"`
	Sequence       *int             `json:"sequence"        validate:"required"`
	ActionReported *enum.TrueFalse  `json:"action_reported" validate:"required"`
	Reason         *enum.FaultType  `json:"reason"          validate:"required"`
	FirstStart     *int             `json:"first_start"     validate:"required"`
	FirstEnd       *int             `json:"first_end"       validate:"required"`
	SecondStart    *int             `json:"second_start"    validate:"required"`
	SecondEnd      *int             `json:"second_end"      validate:"required"`
	DateTime       *query.Time      `json:"datetime"        validate:"required"`
}

// Event returns the row described by in.
func (in MalfunctionInput) Event() Malfunction {
	return Malfunction{
		GroupEvent:     *in.GroupEvent,
		TypeEvent:      typeOrDefault(in.TypeEvent, enum.EventTypeFault),
		Controller:     *in.Controller,
		Sensor:         *in.Sensor,
		TypeDevice:     *in.TypeDevice,
		Sequence:       *in.Sequence,
		ActionReported: *in.ActionReported,
		Reason:         *in.Reason,
		FirstStart:     *in.FirstStart,
		FirstEnd:       *in.FirstEnd,
		SecondStart:    *in.SecondStart,
		SecondEnd:      *in.SecondEnd,
		DateTime:       in.DateTime.UTC(),
	}
}

// MalfunctionPatch is the body of a malfunction partial update.
type MalfunctionPatch struct {
	GroupEvent     *string          `json:"group_event" validate:"omitempty,max=100"`
	TypeEvent      *enum.EventType  `json:"type_event"`
	Controller     *int             `json:"controller"`
	Sensor         *int             `json:"sensor"`
	TypeDevice     *enum.DeviceType `json:"type_device"`
	Sequence       *int             `json:"sequence"`
	ActionReported *enum.TrueFalse  `json:"action_reported"`
	Reason         *enum.FaultType  `json:"reason"`
	FirstStart     *int             `json:"first_start"`
	FirstEnd       *int             `json:"first_end"`
	SecondStart    *int             `json:"second_start"`
	SecondEnd      *int             `json:"second_end"`
	DateTime       *query.Time      `json:"datetime"`
}

// Apply copies the set fields onto m.
func (p MalfunctionPatch) Apply(m *Malfunction) {
	set(&m.GroupEvent, p.GroupEvent)
	set(&m.TypeEvent, p.TypeEvent)
	set(&m.Controller, p.Controller)
	set(&m.Sensor, p.Sensor)
	set(&m.TypeDevice, p.TypeDevice)
	set(&m.Sequence, p.Sequence)
	set(&m.ActionReported, p.ActionReported)
	set(&m.Reason, p.Reason)
	set(&m.FirstStart, p.FirstStart)
	set(&m.FirstEnd, p.FirstEnd)
	set(&m.SecondStart, p.SecondStart)
	set(&m.SecondEnd, p.SecondEnd)
	setTime(&m.DateTime, p.DateTime)
}

// ConnectionInput is the body of a connection create or replace.
// TypeEvent defaults to Connection.
type ConnectionInput struct {
	GroupEvent *string          `json:"group_event" validate:"required,max=100"`
	TypeEvent  *enum.EventType  `json:"type_event"`
	Controller *int             `json:"controller"  validate:"required"`
	Sensor     *int             `json:"sensor"      validate:"required"`
	TypeDevice *enum.DeviceType `json:"type_device" validate:"required"`
	Sequence   *int             `json:"sequence"    validate:"required"`
	DateTime   *query.Time      `json:"datetime"    validate:"required"`
}

// Event returns the row described by in.
func (in ConnectionInput) Event() Connection {
	return Connection{
		GroupEvent: *in.GroupEvent,
		TypeEvent:  typeOrDefault(in.TypeEvent, enum.EventTypeConnection),
		Controller: *in.Controller,
		Sensor:     *in.Sensor,
		TypeDevice: *in.TypeDevice,
		Sequence:   *in.Sequence,
		DateTime:   in.DateTime.UTC(),
	}
}

// ConnectionPatch is the body of a connection partial update.
type ConnectionPatch struct {
	GroupEvent *string          `json:"group_event" validate:"omitempty,max=100"`
	TypeEvent  *enum.EventType  `json:"type_event"`
	Controller *int             `json:"controller"`
	Sensor     *int             `json:"sensor"`
	TypeDevice *enum.DeviceType `json:"type_device"`
	Sequence   *int             `json:"sequence"`
	DateTime   *query.Time      `json:"datetime"`
}

// Apply copies the set fields onto c.
func (p ConnectionPatch) Apply(c *Connection) {
	set(&c.GroupEvent, p.GroupEvent)
	set(&c.TypeEvent, p.TypeEvent)
	set(&c.Controller, p.Controller)
	set(&c.Sensor, p.Sensor)
	set(&c.TypeDevice, p.TypeDevice)
	set(&c.Sequence, p.Sequence)
	setTime(&c.DateTime, p.DateTime)
}

// ActionInput is the body of an action create or replace. TypeEvent
// defaults to Action.
type ActionInput struct {
	TypeEvent     *enum.EventType       `json:"type_event"`
	Content       *string               `json:"content"         validate:"required,max=500"`
	User          *string               `json:"user"            validate:"required,max=100"`
	FromEventID   *int64                `json:"from_event_id"   validate:"required"`
	FromEventType *enum.SourceEventType `json:"from_event_type" validate:"required"`
	DateTime      *query.Time           `json:"datetime"        validate:"required"`
}

// Event returns the row described by in.
func (in ActionInput) Event() Action {
	return Action{
		TypeEvent:     typeOrDefault(in.TypeEvent, enum.EventTypeAction),
		Content:       *in.Content,
		User:          *in.User,
		FromEventID:   *in.FromEventID,
		FromEventType: *in.FromEventType,
		DateTime:      in.DateTime.UTC(),
	}
}

// ActionPatch is the body of an action partial update.
type ActionPatch struct {
	TypeEvent     *enum.EventType       `json:"type_event"`
	Content       *string               `json:"content"   validate:"omitempty,max=500"`
	User          *string               `json:"user"      validate:"omitempty,max=100"`
	FromEventID   *int64                `json:"from_event_id"`
	FromEventType *enum.SourceEventType `json:"from_event_type"`
	DateTime      *query.Time           `json:"datetime"`
}

// Apply copies the set fields onto a.
func (p ActionPatch) Apply(a *Action) {
	set(&a.TypeEvent, p.TypeEvent)
	set(&a.Content, p.Content)
	set(&a.User, p.User)
	set(&a.FromEventID, p.FromEventID)
	set(&a.FromEventType, p.FromEventType)
	setTime(&a.DateTime, p.DateTime)
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setTime(
	dst *time.Time,
	src *query.Time,
) {
	if src != nil {
		*dst = src.UTC()
	}
}

func typeOrDefault(
	t *enum.EventType,
	def enum.EventType,
) enum.EventType {
	if t == nil {
		return def
	}

	return *t
}
