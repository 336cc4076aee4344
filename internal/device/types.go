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

// Package device stores controllers, sensors and cameras.
package device

import (
	"time"

	"github.com/lsirikh/GopApiServer/internal/enum"
)

// Controller is a field controller reachable over IP.
type Controller struct {
	ID           int64             `json:"id"`
	NumberDevice int               `json:"number_device"`
	GroupDevice  int               `json:"group_device"`
	NameDevice   string            `json:"name_device"`
	TypeDevice   enum.DeviceType   `json:"type_device"`
	Version      string            `json:"version"`
	Status       enum.DeviceStatus `json:"status"`
	IPAddress    string            `json:"ip_address"`
	IPPort       int               `json:"ip_port"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Sensor is attached to a controller and removed with it.
type Sensor struct {
	ID           int64             `json:"id"`
	NumberDevice int               `json:"number_device"`
	GroupDevice  int               `json:"group_device"`
	NameDevice   string            `json:"name_device"`
	TypeDevice   enum.DeviceType   `json:"type_device"`
	Version      string            `json:"version"`
	Status       enum.DeviceStatus `json:"status"`
	ControllerID int64             `json:"controller_id"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	// Controller is populated only when requested.
	Controller *Controller `json:"controller,omitempty"`
}

// Camera is an IP camera with its stream endpoint.
type Camera struct {
	ID           int64             `json:"id"`
	NumberDevice int               `json:"number_device"`
	GroupDevice  int               `json:"group_device"`
	NameDevice   string            `json:"name_device"`
	TypeDevice   enum.DeviceType   `json:"type_device"`
	Version      string            `json:"version"`
	Status       enum.DeviceStatus `json:"status"`
	IPAddress    string            `json:"ip_address"`
	IPPort       int               `json:"ip_port"`
	UserName     string            `json:"user_name"`
	UserPassword string            `json:"user_password"`
	RTSPURI      string            `json:"rtsp_uri"`
	RTSPPort     int               `json:"rtsp_port"`
	Mode         enum.CameraMode   `json:"mode"`
	Category     enum.CameraType   `json:"category"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ControllerFilter narrows a controller listing.
type ControllerFilter struct {
	GroupDevice *int               `query:"group_device"`
	TypeDevice  *enum.DeviceType   `query:"type_device"`
	Status      *enum.DeviceStatus `query:"status"`
}

// SensorFilter narrows a sensor listing.
type SensorFilter struct {
	GroupDevice       *int               `query:"group_device"`
	ControllerID      *int64             `query:"controller_id"`
	TypeDevice        *enum.DeviceType   `query:"type_device"`
	Status            *enum.DeviceStatus `query:"status"`
	IncludeController bool               `query:"include_controller"`
}

// CameraFilter narrows a camera listing.
type CameraFilter struct {
	GroupDevice *int               `query:"group_device"`
	TypeDevice  *enum.DeviceType   `query:"type_device"`
	Status      *enum.DeviceStatus `query:"status"`
	Mode        *enum.CameraMode   `query:"mode"`
	Category    *enum.CameraType   `query:"category"`
}
