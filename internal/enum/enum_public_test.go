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

package enum_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lsirikh/GopApiServer/internal/enum"
)

type EnumPublicTestSuite struct {
	suite.Suite
}

func (s *EnumPublicTestSuite) TestParse() {
	tests := []struct {
		name      string
		parse     func(string) (string, error)
		input     string
		want      string
		wantField string
	}{
		{
			name: "device type accepts exact variant",
			parse: func(v string) (string, error) {
				t, err := enum.ParseDeviceType(v)
				return string(t), err
			},
			input: "Fence_Group",
			want:  "Fence_Group",
		},
		{
			name: "device type is case sensitive",
			parse: func(v string) (string, error) {
				t, err := enum.ParseDeviceType(v)
				return string(t), err
			},
			input:     "controller",
			wantField: "type_device",
		},
		{
			name: "device status rejects empty",
			parse: func(v string) (string, error) {
				t, err := enum.ParseDeviceStatus(v)
				return string(t), err
			},
			input:     "",
			wantField: "status",
		},
		{
			name: "camera mode",
			parse: func(v string) (string, error) {
				t, err := enum.ParseCameraMode(v)
				return string(t), err
			},
			input: "ONVIF",
			want:  "ONVIF",
		},
		{
			name: "camera type rejects unknown",
			parse: func(v string) (string, error) {
				t, err := enum.ParseCameraType(v)
				return string(t), err
			},
			input:     "DOME",
			wantField: "category",
		},
		{
			name: "event type",
			parse: func(v string) (string, error) {
				t, err := enum.ParseEventType(v)
				return string(t), err
			},
			input: "WindyMode",
			want:  "WindyMode",
		},
		{
			name: "detection type",
			parse: func(v string) (string, error) {
				t, err := enum.ParseDetectionType(v)
				return string(t), err
			},
			input: "PIR_SENSOR",
			want:  "PIR_SENSOR",
		},
		{
			name: "fault type rejects unknown",
			parse: func(v string) (string, error) {
				t, err := enum.ParseFaultType(v)
				return string(t), err
			},
			input:     "FAULT_POWER",
			wantField: "reason",
		},
		{
			name: "true false rejects lowercase",
			parse: func(v string) (string, error) {
				t, err := enum.ParseTrueFalse(v)
				return string(t), err
			},
			input:     "true",
			wantField: "action_reported",
		},
		{
			name: "source event type",
			parse: func(v string) (string, error) {
				t, err := enum.ParseSourceEventType(v)
				return string(t), err
			},
			input: "malfunction",
			want:  "malfunction",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := tt.parse(tt.input)

			if tt.wantField != "" {
				var perr *enum.ParseError
				s.Require().ErrorAs(err, &perr)
				s.Equal(tt.wantField, perr.Field)
				s.Equal(tt.input, perr.Value)
				s.NotEmpty(perr.Allowed)
				s.Contains(err.Error(), tt.wantField)
				return
			}

			s.NoError(err)
			s.Equal(tt.want, got)
		})
	}
}

func (s *EnumPublicTestSuite) TestUnmarshalJSON() {
	type payload struct {
		TypeDevice enum.DeviceType   `json:"type_device"`
		Status     enum.DeviceStatus `json:"status"`
	}

	tests := []struct {
		name    string
		body    string
		want    payload
		wantErr bool
	}{
		{
			name: "valid values",
			body: `{"type_device":"PIR","status":"ERROR"}`,
			want: payload{TypeDevice: enum.DeviceTypePIR, Status: enum.DeviceStatusError},
		},
		{
			name:    "invalid value is a parse error",
			body:    `{"type_device":"Toaster","status":"ERROR"}`,
			wantErr: true,
		},
		{
			name:    "non string value",
			body:    `{"type_device":5}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			var got payload
			err := json.Unmarshal([]byte(tt.body), &got)

			if tt.wantErr {
				s.Error(err)
				return
			}

			s.NoError(err)
			s.Equal(tt.want, got)
		})
	}
}

func (s *EnumPublicTestSuite) TestUnmarshalParam() {
	var status enum.DeviceStatus
	s.NoError(status.UnmarshalParam("DEACTIVATED"))
	s.Equal(enum.DeviceStatusDeactivated, status)

	var perr *enum.ParseError
	s.ErrorAs(status.UnmarshalParam("OFF"), &perr)
}

func TestEnumPublicTestSuite(t *testing.T) {
	suite.Run(t, new(EnumPublicTestSuite))
}
