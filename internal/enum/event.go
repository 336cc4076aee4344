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

// EventType classifies an event record.
type EventType string

// EventType variants.
const (
	EventTypeNone       EventType = "None"
	EventTypeIntrusion  EventType = "Intrusion"
	EventTypeContactOn  EventType = "ContactOn"
	EventTypeContactOff EventType = "ContactOff"
	EventTypeConnection EventType = "Connection"
	EventTypeAction     EventType = "Action"
	EventTypeFault      EventType = "Fault"
	EventTypeWindyMode  EventType = "WindyMode"
)

// EventTypes lists every EventType variant.
var EventTypes = []EventType{
	EventTypeNone,
	EventTypeIntrusion,
	EventTypeContactOn,
	EventTypeContactOff,
	EventTypeConnection,
	EventTypeAction,
	EventTypeFault,
	EventTypeWindyMode,
}

// ParseEventType returns the EventType named by s.
func ParseEventType(
	s string,
) (EventType, error) {
	return parse("type_event", s, EventTypes)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *EventType) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(data, t, ParseEventType)
}

// UnmarshalParam implements echo.BindUnmarshaler.
func (t *EventType) UnmarshalParam(param string) (err error) {
	*t, err = ParseEventType(param)
	return err
}

// DetectionType is the sensing mechanism that raised a detection.
type DetectionType string

// DetectionType variants.
const (
	DetectionTypeNone            DetectionType = "NONE"
	DetectionTypeCableCutting    DetectionType = "CABLE_CUTTING"
	DetectionTypeCableConnected  DetectionType = "CABLE_CONNECTED"
	DetectionTypePIRSensor       DetectionType = "PIR_SENSOR"
	DetectionTypeThermalSensor   DetectionType = "THERMAL_SENSOR"
	DetectionTypeVibrationSensor DetectionType = "VIBRATION_SENSOR"
	DetectionTypeContactSensor   DetectionType = "CONTACT_SENSOR"
	DetectionTypeDistanceSensor  DetectionType = "DISTANCE_SENSOR"
)

// DetectionTypes lists every DetectionType variant.
var DetectionTypes = []DetectionType{
	DetectionTypeNone,
	DetectionTypeCableCutting,
	DetectionTypeCableConnected,
	DetectionTypePIRSensor,
	DetectionTypeThermalSensor,
	DetectionTypeVibrationSensor,
	DetectionTypeContactSensor,
	DetectionTypeDistanceSensor,
}

// ParseDetectionType returns the DetectionType named by s.
func ParseDetectionType(
	s string,
) (DetectionType, error) {
	return parse("result", s, DetectionTypes)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *DetectionType) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(data, t, ParseDetectionType)
}

// UnmarshalParam implements echo.BindUnmarshaler.
func (t *DetectionType) UnmarshalParam(param string) (err error) {
	*t, err = ParseDetectionType(param)
	return err
}

// FaultType is the cause reported by a malfunction.
type FaultType string

// FaultType variants.
const (
	FaultTypeController   FaultType = "FAULT_CONTROLLER"
	FaultTypeFence        FaultType = "FAULT_FENCE"
	FaultTypeMulti        FaultType = "FAULT_MULTI"
	FaultTypeCableCutting FaultType = "FAULT_CABLE_CUTTING"
	FaultTypeETC          FaultType = "FAULT_ETC"
)

// FaultTypes lists every FaultType variant.
var FaultTypes = []FaultType{
	FaultTypeController,
	FaultTypeFence,
	FaultTypeMulti,
	FaultTypeCableCutting,
	FaultTypeETC,
}

// ParseFaultType returns the FaultType named by s.
func ParseFaultType(
	s string,
) (FaultType, error) {
	return parse("reason", s, FaultTypes)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *FaultType) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(data, t, ParseFaultType)
}

// UnmarshalParam implements echo.BindUnmarshaler.
func (t *FaultType) UnmarshalParam(param string) (err error) {
	*t, err = ParseFaultType(param)
	return err
}

// TrueFalse is a string-encoded boolean carried by field devices.
type TrueFalse string

// TrueFalse variants.
const (
	False TrueFalse = "False"
	True  TrueFalse = "True"
)

// TrueFalseValues lists every TrueFalse variant.
var TrueFalseValues = []TrueFalse{False, True}

// ParseTrueFalse returns the TrueFalse named by s.
func ParseTrueFalse(
	s string,
) (TrueFalse, error) {
	return parse("action_reported", s, TrueFalseValues)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TrueFalse) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(data, t, ParseTrueFalse)
}

// UnmarshalParam implements echo.BindUnmarshaler.
func (t *TrueFalse) UnmarshalParam(param string) (err error) {
	*t, err = ParseTrueFalse(param)
	return err
}

// SourceEventType names the event kind an action responds to.
type SourceEventType string

// SourceEventType variants.
const (
	SourceEventDetection   SourceEventType = "detection"
	SourceEventMalfunction SourceEventType = "malfunction"
	SourceEventConnection  SourceEventType = "connection"
)

// SourceEventTypes lists every SourceEventType variant.
var SourceEventTypes = []SourceEventType{
	SourceEventDetection,
	SourceEventMalfunction,
	SourceEventConnection,
}

// ParseSourceEventType returns the SourceEventType named by s.
func ParseSourceEventType(
	s string,
) (SourceEventType, error) {
	return parse("from_event_type", s, SourceEventTypes)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *SourceEventType) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(data, t, ParseSourceEventType)
}

// UnmarshalParam implements echo.BindUnmarshaler.
func (t *SourceEventType) UnmarshalParam(param string) (err error) {
	*t, err = ParseSourceEventType(param)
	return err
}
