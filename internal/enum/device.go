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

package enum

// DeviceType is the hardware kind of a device.
type DeviceType string

// DeviceType variants.
const (
	DeviceTypeNone          DeviceType = "NONE"
	DeviceTypeController    DeviceType = "Controller"
	DeviceTypeMulti         DeviceType = "Multi"
	DeviceTypeFence         DeviceType = "Fence"
	DeviceTypeUnderground   DeviceType = "Underground"
	DeviceTypeContact       DeviceType = "Contact"
	DeviceTypePIR           DeviceType = "PIR"
	DeviceTypeIoController  DeviceType = "IoController"
	DeviceTypeLaser         DeviceType = "Laser"
	DeviceTypeCable         DeviceType = "Cable"
	DeviceTypeIpCamera      DeviceType = "IpCamera"
	DeviceTypeSmartSensor   DeviceType = "SmartSensor"
	DeviceTypeSmartSensor2  DeviceType = "SmartSensor2"
	DeviceTypeSmartCompound DeviceType = "SmartCompound"
	DeviceTypeIpSpeaker     DeviceType = "IpSpeaker"
	DeviceTypeRadar         DeviceType = "Radar"
	DeviceTypeOpticalCable  DeviceType = "OpticalCable"
	DeviceTypeFenceGroup    DeviceType = "Fence_Group"
)

// DeviceTypes lists every DeviceType variant.
var DeviceTypes = []DeviceType{
	DeviceTypeNone,
	DeviceTypeController,
	DeviceTypeMulti,
	DeviceTypeFence,
	DeviceTypeUnderground,
	DeviceTypeContact,
	DeviceTypePIR,
	DeviceTypeIoController,
	DeviceTypeLaser,
	DeviceTypeCable,
	DeviceTypeIpCamera,
	DeviceTypeSmartSensor,
	DeviceTypeSmartSensor2,
	DeviceTypeSmartCompound,
	DeviceTypeIpSpeaker,
	DeviceTypeRadar,
	DeviceTypeOpticalCable,
	DeviceTypeFenceGroup,
}

// ParseDeviceType returns the DeviceType named by s.
func ParseDeviceType(
	s string,
) (DeviceType, error) {
	return parse("type_device", s, DeviceTypes)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *DeviceType) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(data, t, ParseDeviceType)
}

// UnmarshalParam implements echo.BindUnmarshaler.
func (t *DeviceType) UnmarshalParam(param string) (err error) {
	*t, err = ParseDeviceType(param)
	return err
}

// DeviceStatus is the operational state of a device.
type DeviceStatus string

// DeviceStatus variants.
const (
	DeviceStatusActivated   DeviceStatus = "ACTIVATED"
	DeviceStatusError       DeviceStatus = "ERROR"
	DeviceStatusDeactivated DeviceStatus = "DEACTIVATED"
)

// DeviceStatuses lists every DeviceStatus variant.
var DeviceStatuses = []DeviceStatus{
	DeviceStatusActivated,
	DeviceStatusError,
	DeviceStatusDeactivated,
}

// ParseDeviceStatus returns the DeviceStatus named by s.
func ParseDeviceStatus(
	s string,
) (DeviceStatus, error) {
	return parse("status", s, DeviceStatuses)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *DeviceStatus) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(data, t, ParseDeviceStatus)
}

// UnmarshalParam implements echo.BindUnmarshaler.
func (t *DeviceStatus) UnmarshalParam(param string) (err error) {
	*t, err = ParseDeviceStatus(param)
	return err
}

// CameraMode is the control protocol a camera speaks.
type CameraMode string

// CameraMode variants.
const (
	CameraModeNone       CameraMode = "NONE"
	CameraModeONVIF      CameraMode = "ONVIF"
	CameraModeEmstoneAPI CameraMode = "EMSTONE_API"
	CameraModeInnodepAPI CameraMode = "INNODEP_API"
	CameraModeETC        CameraMode = "ETC"
)

// CameraModes lists every CameraMode variant.
var CameraModes = []CameraMode{
	CameraModeNone,
	CameraModeONVIF,
	CameraModeEmstoneAPI,
	CameraModeInnodepAPI,
	CameraModeETC,
}

// ParseCameraMode returns the CameraMode named by s.
func ParseCameraMode(
	s string,
) (CameraMode, error) {
	return parse("mode", s, CameraModes)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *CameraMode) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(data, t, ParseCameraMode)
}

// UnmarshalParam implements echo.BindUnmarshaler.
func (t *CameraMode) UnmarshalParam(param string) (err error) {
	*t, err = ParseCameraMode(param)
	return err
}

// CameraType is the optical category of a camera.
type CameraType string

// CameraType variants.
const (
	CameraTypeNone     CameraType = "NONE"
	CameraTypeFixed    CameraType = "FIXED"
	CameraTypePTZ      CameraType = "PTZ"
	CameraTypeFisheyes CameraType = "FISHEYES"
	CameraTypeThermal  CameraType = "THERMAL"
)

// CameraTypes lists every CameraType variant.
var CameraTypes = []CameraType{
	CameraTypeNone,
	CameraTypeFixed,
	CameraTypePTZ,
	CameraTypeFisheyes,
	CameraTypeThermal,
}

// ParseCameraType returns the CameraType named by s.
func ParseCameraType(
	s string,
) (CameraType, error) {
	return parse("category", s, CameraTypes)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *CameraType) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(data, t, ParseCameraType)
}

// UnmarshalParam implements echo.BindUnmarshaler.
func (t *CameraType) UnmarshalParam(param string) (err error) {
	*t, err = ParseCameraType(param)
	return err
}
