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

// Package event stores the detection, malfunction, connection and action
// event streams reported by field devices and operators.
package event

import (
	"time"

	"github.com/lsirikh/GopApiServer/internal/enum"
	"github.com/lsirikh/GopApiServer/internal/query"
)

// Detection is an intrusion reported by a sensor.
type Detection struct {
	ID             int64              `json:"id"`
	GroupEvent     string             `json:"group_event"`
	TypeEvent      enum.EventType     `json:"type_event"`
	Controller     int                `json:"controller"`
	Sensor         int                `json:"sensor"`
	TypeDevice     enum.DeviceType    `json:"type_device"`
	Sequence       int                `json:"sequence"`
	ActionReported enum.TrueFalse     `json:"action_reported"`
	Result         enum.DetectionType `json:"result"`
	DateTime       time.Time          `json:"datetime"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// Malfunction is a device fault. Sensor is 0 for a controller fault.
type Malfunction struct {
	ID             int64           `json:"id"`
	GroupEvent     string          `json:"group_event"`
	TypeEvent      enum.EventType  `json:"type_event"`
	Controller     int             `json:"controller"`
	Sensor         int             `json:"sensor"`
	TypeDevice     enum.DeviceType `json:"type_device"`
	Sequence       int             `json:"sequence"`
	ActionReported enum.TrueFalse  `json:"action_reported"`
	Reason         enum.FaultType  `json:"reason"`
	FirstStart     int             `json:"first_start"`
	FirstEnd       int             `json:"first_end"`
	SecondStart    int             `json:"second_start"`
	SecondEnd      int             `json:"second_end"`
	DateTime       time.Time       `json:"datetime"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Connection records a device connecting or dropping.
type Connection struct {
	ID         int64           `json:"id"`
	GroupEvent string          `json:"group_event"`
	TypeEvent  enum.EventType  `json:"type_event"`
	Controller int             `json:"controller"`
	Sensor     int             `json:"sensor"`
	TypeDevice enum.DeviceType `json:"type_device"`
	Sequence   int             `json:"sequence"`
	DateTime   time.Time       `json:"datetime"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Action is an operator response to another event.
type Action struct {
	ID            int64                `json:"id"`
	TypeEvent     enum.EventType       `json:"type_event"`
	Content       string               `json:"content"`
	User          string               `json:"user"`
	FromEventID   int64                `json:"from_event_id"`
	FromEventType enum.SourceEventType `json:"from_event_type"`
	DateTime      time.Time            `json:"datetime"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// Range bounds the event datetime, both ends inclusive.
type Range struct {
	StartDate *query.Time `query:"start_date"`
	EndDate   *query.Time `query:"end_date"`
}

func (r Range) apply(b *query.Builder) {
	if r.StartDate != nil {
		b.Gte("datetime", r.StartDate.Time)
	}
	if r.EndDate != nil {
		b.Lte("datetime", r.EndDate.Time)
	}
}

// DetectionFilter narrows a detection listing.
type DetectionFilter struct {
	Controller     *int                `query:"controller"`
	Sensor         *int                `query:"sensor"`
	TypeDevice     *enum.DeviceType    `query:"type_device"`
	GroupEvent     *string             `query:"group_event"`
	ActionReported *enum.TrueFalse     `query:"action_reported"`
	Result         *enum.DetectionType `query:"result"`
	Range
}

// Apply adds the set conditions to b.
func (f DetectionFilter) Apply(b *query.Builder) {
	eqInt(b, "controller", f.Controller)
	eqInt(b, "sensor", f.Sensor)
	eq(b, "type_device", f.TypeDevice)
	eq(b, "group_event", f.GroupEvent)
	eq(b, "action_reported", f.ActionReported)
	eq(b, "result", f.Result)
	f.apply(b)
}

// MalfunctionFilter narrows a malfunction listing.
type MalfunctionFilter struct {
	Controller     *int             `query:"controller"`
	Sensor         *int             `query:"sensor"`
	TypeDevice     *enum.DeviceType `query:"type_device"`
	GroupEvent     *string          `query:"group_event"`
	ActionReported *enum.TrueFalse  `query:"action_reported"`
	Reason         *enum.FaultType  `query:"reason"`
	Range
}

// Apply adds the set conditions to b.
func (f MalfunctionFilter) Apply(b *query.Builder) {
	eqInt(b, "controller", f.Controller)
	eqInt(b, "sensor", f.Sensor)
	eq(b, "type_device", f.TypeDevice)
	eq(b, "group_event", f.GroupEvent)
	eq(b, "action_reported", f.ActionReported)
	eq(b, "reason", f.Reason)
	f.apply(b)
}

// ConnectionFilter narrows a connection listing.
type ConnectionFilter struct {
	Controller *int             `query:"controller"`
	Sensor     *int             `query:"sensor"`
	TypeDevice *enum.DeviceType `query:"type_device"`
	GroupEvent *string          `query:"group_event"`
	Range
}

// Apply adds the set conditions to b.
func (f ConnectionFilter) Apply(b *query.Builder) {
	eqInt(b, "controller", f.Controller)
	eqInt(b, "sensor", f.Sensor)
	eq(b, "type_device", f.TypeDevice)
	eq(b, "group_event", f.GroupEvent)
	f.apply(b)
}

// ActionFilter narrows an action listing.
type ActionFilter struct {
	User          *string               `query:"user"`
	FromEventID   *int64                `query:"from_event_id"`
	FromEventType *enum.SourceEventType `query:"from_event_type"`
	Range
}

// Apply adds the set conditions to b.
func (f ActionFilter) Apply(b *query.Builder) {
	eq(b, `"user"`, f.User)
	eqInt(b, "from_event_id", f.FromEventID)
	eq(b, "from_event_type", f.FromEventType)
	f.apply(b)
}

// eq adds "column = *v" when v is set. Named string types are passed as
// plain strings so every driver accepts them.
func eq[T ~string](
	b *query.Builder,
	column string,
	v *T,
) {
	if v != nil {
		b.Eq(column, string(*v))
	}
}

func eqInt[T int | int64](
	b *query.Builder,
	column string,
	v *T,
) {
	if v != nil {
		b.Eq(column, *v)
	}
}
