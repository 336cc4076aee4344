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
	"github.com/lsirikh/GopApiServer/internal/enum"
)

// ControllerInput is the body of a controller create or replace. Status
// defaults to ACTIVATED.
type ControllerInput struct {
	NumberDevice *int               `json:"number_device" validate:"required"`
	GroupDevice  *int               `json:"group_device"  validate:"required"`
	NameDevice   *string            `json:"name_device"   validate:"required,max=100"`
	TypeDevice   *enum.DeviceType   `json:"type_device"   validate:"required"`
	Version      *string            `json:"version"       validate:"required,max=50"`
	Status       *enum.DeviceStatus `json:"status"`
	IPAddress    *string            `json:"ip_address"    validate:"required,max=64"`
	IPPort       *int               `json:"ip_port"       validate:"required,gte=0,lte=65535"`
}

// Controller returns the row described by in.
func (in ControllerInput) Controller() Controller {
	return Controller{
		NumberDevice: *in.NumberDevice,
		GroupDevice:  *in.GroupDevice,
		NameDevice:   *in.NameDevice,
		TypeDevice:   *in.TypeDevice,
		Version:      *in.Version,
		Status:       statusOrDefault(in.Status),
		IPAddress:    *in.IPAddress,
		IPPort:       *in.IPPort,
	}
}

// ControllerPatch is the body of a controller partial update.
type ControllerPatch struct {
	NumberDevice *int               `json:"number_device"`
	GroupDevice  *int               `json:"group_device"`
	NameDevice   *string            `json:"name_device"   validate:"omitempty,max=100"`
	TypeDevice   *enum.DeviceType   `json:"type_device"`
	Version      *string            `json:"version"       validate:"omitempty,max=50"`
	Status       *enum.DeviceStatus `json:"status"`
	IPAddress    *string            `json:"ip_address"    validate:"omitempty,max=64"`
	IPPort       *int               `json:"ip_port"       validate:"omitempty,gte=0,lte=65535"`
}

// Apply copies the set fields onto c.
func (p ControllerPatch) Apply(c *Controller) {
	set(&c.NumberDevice, p.NumberDevice)
	set(&c.GroupDevice, p.GroupDevice)
	set(&c.NameDevice, p.NameDevice)
	set(&c.TypeDevice, p.TypeDevice)
	set(&c.Version, p.Version)
	set(&c.Status, p.Status)
	set(&c.IPAddress, p.IPAddress)
	set(&c.IPPort, p.IPPort)
}

// SensorInput is the body of a sensor create or replace.
type SensorInput struct {
	NumberDevice *int               `json:"number_device" validate:"required"`
	GroupDevice  *int               `json:"group_device"  validate:"required"`
	NameDevice   *string            `json:"name_device"   validate:"required,max=100"`
	TypeDevice   *enum.DeviceType   `json:"type_device"   validate:"required"`
	Version      *string            `json:"version"       validate:"required,max=50"`
	Status       *enum.DeviceStatus `json:"status"`
	ControllerID *int64             `json:"controller_id" validate:"required,gt=0"`
}

// Sensor returns the row described by in.
func (in SensorInput) Sensor() Sensor {
	return Sensor{
		NumberDevice: *in.NumberDevice,
		GroupDevice:  *in.GroupDevice,
		NameDevice:   *in.NameDevice,
		TypeDevice:   *in.TypeDevice,
		Version:      *in.Version,
		Status:       statusOrDefault(in.Status),
		ControllerID: *in.ControllerID,
	}
}

// SensorPatch is the body of a sensor partial update.
type SensorPatch struct {
	NumberDevice *int               `json:"number_device"`
	GroupDevice  *int               `json:"group_device"`
	NameDevice   *string            `json:"name_device"   validate:"omitempty,max=100"`
	TypeDevice   *enum.DeviceType   `json:"type_device"`
	Version      *string            `json:"version"       validate:"omitempty,max=50"`
	Status       *enum.DeviceStatus `json:"status"`
	ControllerID *int64             `json:"controller_id" validate:"omitempty,gt=0"`
}

// Apply copies the set fields onto s.
func (p SensorPatch) Apply(s *Sensor) {
	set(&s.NumberDevice, p.NumberDevice)
	set(&s.GroupDevice, p.GroupDevice)
	set(&s.NameDevice, p.NameDevice)
	set(&s.TypeDevice, p.TypeDevice)
	set(&s.Version, p.Version)
	set(&s.Status, p.Status)
	set(&s.ControllerID, p.ControllerID)
}

// CameraInput is the body of a camera create or replace.
type CameraInput struct {
	NumberDevice *int               `json:"number_device" validate:"required"`
	GroupDevice  *int               `json:"group_device"  validate:"required"`
	NameDevice   *string            `json:"name_device"   validate:"required,max=100"`
	TypeDevice   *enum.DeviceType   `json:"type_device"   validate:"required"`
	Version      *string            `json:"version"       validate:"required,max=50"`
	Status       *enum.DeviceStatus `json:"status"`
	IPAddress    *string            `json:"ip_address"    validate:"required,max=64"`
	IPPort       *int               `json:"ip_port"       validate:"required,gte=0,lte=65535"`
	UserName     *string            `json:"user_name"     validate:"required,max=100"`
	UserPassword *string            `json:"user_password" validate:"required,max=255"`
	RTSPURI      *string            `json:"rtsp_uri"      validate:"required,max=255"`
	RTSPPort     *int               `json:"rtsp_port"     validate:"required,gte=0,lte=65535"`
	Mode         *enum.CameraMode   `json:"mode"          validate:"required"`
	Category     *enum.CameraType   `json:"category"      validate:"required"`
}

// Camera returns the row described by in.
func (in CameraInput) Camera() Camera {
	return Camera{
		NumberDevice: *in.NumberDevice,
		GroupDevice:  *in.GroupDevice,
		NameDevice:   *in.NameDevice,
		TypeDevice:   *in.TypeDevice,
		Version:      *in.Version,
		Status:       statusOrDefault(in.Status),
		IPAddress:    *in.IPAddress,
		IPPort:       *in.IPPort,
		UserName:     *in.UserName,
		UserPassword: *in.UserPassword,
		RTSPURI:      *in.RTSPURI,
		RTSPPort:     *in.RTSPPort,
		Mode:         *in.Mode,
		Category:     *in.Category,
	}
}

// CameraPatch is the body of a camera partial update.
type CameraPatch struct {
	NumberDevice *int               `json:"number_device"`
	GroupDevice  *int               `json:"group_device"`
	NameDevice   *string            `json:"name_device"   validate:"omitempty,max=100"`
	TypeDevice   *enum.DeviceType   `json:"type_device"`
	Version      *string            `json:"version"       validate:"omitempty,max=50"`
	Status       *enum.DeviceStatus `json:"status"`
	IPAddress    *string            `json:"ip_address"    validate:"omitempty,max=64"`
	IPPort       *int               `json:"ip_port"       validate:"omitempty,gte=0,lte=65535"`
	UserName     *string            `json:"user_name"     validate:"omitempty,max=100"`
	UserPassword *string            `json:"user_password" validate:"omitempty,max=255"`
	RTSPURI      *string            `json:"rtsp_uri"      validate:"omitempty,max=255"`
	RTSPPort     *int               `json:"rtsp_port"     validate:"omitempty,gte=0,lte=65535"`
	Mode         *enum.CameraMode   `json:"mode"`
	Category     *enum.CameraType   `json:"category"`
}

// Apply copies the set fields onto c.
func (p CameraPatch) Apply(c *Camera) {
	set(&c.NumberDevice, p.NumberDevice)
	set(&c.GroupDevice, p.GroupDevice)
	set(&c.NameDevice, p.NameDevice)
	set(&c.TypeDevice, p.TypeDevice)
	set(&c.Version, p.Version)
	set(&c.Status, p.Status)
	set(&c.IPAddress, p.IPAddress)
	set(&c.IPPort, p.IPPort)
	set(&c.UserName, p.UserName)
	set(&c.UserPassword, p.UserPassword)
	set(&c.RTSPURI, p.RTSPURI)
	set(&c.RTSPPort, p.RTSPPort)
	set(&c.Mode, p.Mode)
	set(&c.Category, p.Category)
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func statusOrDefault(
	s *enum.DeviceStatus,
) enum.DeviceStatus {
	if s == nil {
		return enum.DeviceStatusActivated
	}

	return *s
}
