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

package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lsirikh/GopApiServer/internal/api/common"
	"github.com/lsirikh/GopApiServer/internal/auth"
)

var jsonHeader = map[string]string{echo.HeaderContentType: echo.MIMEApplicationJSON}

func controllerBody(
	number int,
) string {
	return fmt.Sprintf(`{
		"number_device": %d,
		"group_device": 1,
		"name_device": "Controller %d",
		"type_device": "Controller",
		"version": "1.0.0",
		"ip_address": "10.0.0.%d",
		"ip_port": 8080
	}`, number, number, number)
}

func (s *ServerPublicTestSuite) createController(
	number int,
) {
	rec := s.do(http.MethodPost, "/api/controllers", strings.NewReader(controllerBody(number)), jsonHeader)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
}

func (s *ServerPublicTestSuite) TestListPagination() {
	tests := []struct {
		name      string
		create    int
		target    string
		wantLen   int
		wantPages common.Pagination
	}{
		{
			name:      "first page of five by three",
			create:    5,
			target:    "/api/controllers?limit=3",
			wantLen:   3,
			wantPages: common.Pagination{Page: 1, Limit: 3, Total: 5, TotalPages: 2},
		},
		{
			name:      "second page of five by three",
			create:    5,
			target:    "/api/controllers?limit=3&page=2",
			wantLen:   2,
			wantPages: common.Pagination{Page: 2, Limit: 3, Total: 5, TotalPages: 2},
		},
		{
			name:      "page past the end is empty",
			create:    5,
			target:    "/api/controllers?limit=3&page=4",
			wantLen:   0,
			wantPages: common.Pagination{Page: 4, Limit: 3, Total: 5, TotalPages: 2},
		},
		{
			name:      "empty collection still has one page",
			target:    "/api/controllers",
			wantLen:   0,
			wantPages: common.Pagination{Page: 1, Limit: 20, Total: 0, TotalPages: 1},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.start(auth.AccessModeOpen)
			for i := 1; i <= tt.create; i++ {
				s.createController(i)
			}

			rec := s.do(http.MethodGet, tt.target, nil, nil)
			s.Require().Equal(http.StatusOK, rec.Code)

			env := s.envelope(rec)
			s.True(env.Success)
			s.Equal("Controllers retrieved successfully", env.Message)
			s.Require().NotNil(env.Pagination)
			s.Equal(tt.wantPages, *env.Pagination)

			data, ok := env.Data.([]any)
			s.Require().True(ok)
			s.Len(data, tt.wantLen)
		})
	}
}

func (s *ServerPublicTestSuite) TestQueryValidation() {
	tests := []struct {
		name        string
		target      string
		wantMessage string
	}{
		{name: "limit zero", target: "/api/cameras?limit=0", wantMessage: "limit must be between 1 and 100"},
		{name: "limit too large", target: "/api/cameras?limit=500", wantMessage: "limit must be between 1 and 100"},
		{name: "page zero", target: "/api/cameras?page=0", wantMessage: "page must be at least 1"},
		{name: "page not a number", target: "/api/cameras?page=two", wantMessage: "page must be an integer"},
		{name: "bad enum filter", target: "/api/controllers?status=BROKEN", wantMessage: `invalid status value "BROKEN"`},
		{name: "bad id", target: "/api/controllers/abc", wantMessage: "id must be an integer"},
		{name: "bad date", target: "/api/detections?start_date=13/01/2024", wantMessage: "invalid date"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.start(auth.AccessModeOpen)

			rec := s.do(http.MethodGet, tt.target, nil, nil)

			s.Equal(http.StatusUnprocessableEntity, rec.Code)
			env := s.envelope(rec)
			s.False(env.Success)
			s.Contains(env.Message, tt.wantMessage)
		})
	}
}

func (s *ServerPublicTestSuite) TestControllerLifecycle() {
	s.start(auth.AccessModeOpen)
	s.createController(7)

	rec := s.do(http.MethodPost, "/api/controllers", strings.NewReader(controllerBody(7)), jsonHeader)
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("Controller with number_device 7 already exists", s.envelope(rec).Message)

	rec = s.do(http.MethodPost, "/api/controllers", strings.NewReader(`{"number_device": 8}`), jsonHeader)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(
		http.MethodPost,
		"/api/controllers",
		strings.NewReader(strings.Replace(controllerBody(9), `"Controller",`, `"Toaster",`, 1)),
		jsonHeader,
	)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(s.envelope(rec).Message, `invalid type_device value "Toaster"`)

	rec = s.do(http.MethodGet, "/api/controllers/1", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	env := s.envelope(rec)
	s.Equal("Controller retrieved successfully", env.Message)
	s.Equal("ACTIVATED", env.Data.(map[string]any)["status"])

	rec = s.do(http.MethodPatch, "/api/controllers/1", strings.NewReader(`{"status": "ERROR"}`), jsonHeader)
	s.Require().Equal(http.StatusOK, rec.Code)
	env = s.envelope(rec)
	s.Equal("Controller updated successfully", env.Message)
	s.Equal("ERROR", env.Data.(map[string]any)["status"])
	s.Equal("Controller 7", env.Data.(map[string]any)["name_device"])

	rec = s.do(http.MethodPut, "/api/controllers/1", strings.NewReader(controllerBody(11)), jsonHeader)
	s.Require().Equal(http.StatusOK, rec.Code)
	env = s.envelope(rec)
	s.Equal("Controller replaced successfully", env.Message)
	s.EqualValues(11, env.Data.(map[string]any)["number_device"])
	s.Equal("ACTIVATED", env.Data.(map[string]any)["status"])

	rec = s.do(http.MethodDelete, "/api/controllers/1", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	env = s.envelope(rec)
	s.Equal("Controller deleted successfully", env.Message)
	s.EqualValues(1, env.Data.(map[string]any)["id"])

	rec = s.do(http.MethodGet, "/api/controllers/1", nil, nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("Controller with id 1 not found", s.envelope(rec).Message)
}

func (s *ServerPublicTestSuite) TestNonPositiveID() {
	tests := []struct {
		name        string
		method      string
		target      string
		wantMessage string
	}{
		{name: "get zero", method: http.MethodGet, target: "/api/controllers/0", wantMessage: "Controller with id 0 not found"},
		{name: "get negative", method: http.MethodGet, target: "/api/controllers/-1", wantMessage: "Controller with id -1 not found"},
		{name: "delete zero", method: http.MethodDelete, target: "/api/sensors/0", wantMessage: "Sensor with id 0 not found"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.start(auth.AccessModeOpen)

			rec := s.do(tt.method, tt.target, nil, nil)

			s.Equal(http.StatusNotFound, rec.Code)
			s.Equal(tt.wantMessage, s.envelope(rec).Message)
		})
	}
}

func (s *ServerPublicTestSuite) TestSensorController() {
	s.start(auth.AccessModeOpen)
	s.createController(1)

	sensor := func(controllerID int) string {
		return fmt.Sprintf(`{
			"number_device": 1,
			"group_device": 1,
			"name_device": "Fence 1",
			"type_device": "Fence",
			"version": "2.1",
			"controller_id": %d
		}`, controllerID)
	}

	rec := s.do(http.MethodPost, "/api/sensors", strings.NewReader(sensor(999)), jsonHeader)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("Controller with id 999 not found", s.envelope(rec).Message)

	rec = s.do(http.MethodPost, "/api/sensors", strings.NewReader(sensor(1)), jsonHeader)
	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Equal("Sensor created successfully", s.envelope(rec).Message)

	rec = s.do(http.MethodGet, "/api/sensors/1", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.NotContains(s.envelope(rec).Data.(map[string]any), "controller")

	rec = s.do(http.MethodGet, "/api/sensors/1?include_controller=true", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	nested, ok := s.envelope(rec).Data.(map[string]any)["controller"].(map[string]any)
	s.Require().True(ok)
	s.EqualValues(1, nested["number_device"])

	rec = s.do(http.MethodGet, "/api/sensors?controller_id=1&include_controller=true", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	items := s.envelope(rec).Data.([]any)
	s.Require().Len(items, 1)
	s.Contains(items[0].(map[string]any), "controller")
}

func (s *ServerPublicTestSuite) TestDetectionEvents() {
	s.start(auth.AccessModeOpen)

	detection := func(sequence int, at string) string {
		return fmt.Sprintf(`{
			"group_event": "zone-a",
			"controller": 1,
			"sensor": 2,
			"type_device": "Fence",
			"sequence": %d,
			"action_reported": "False",
			"result": "CABLE_CUTTING",
			"datetime": %q
		}`, sequence, at)
	}

	for i, at := range []string{"2024-01-01T08:00:00", "2024-01-02T08:00:00", "2024-01-03T08:00:00Z"} {
		rec := s.do(http.MethodPost, "/api/detections", strings.NewReader(detection(i+1, at)), jsonHeader)
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
		s.Equal("Detection event created successfully", s.envelope(rec).Message)
	}

	rec := s.do(http.MethodGet, "/api/detections", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	env := s.envelope(rec)
	s.Equal("Detection events retrieved successfully", env.Message)

	items := env.Data.([]any)
	s.Require().Len(items, 3)
	s.EqualValues(3, items[0].(map[string]any)["sequence"])
	s.Equal("Intrusion", items[0].(map[string]any)["type_event"])

	rec = s.do(http.MethodGet, "/api/detections?start_date=2024-01-02&end_date=2024-01-02T23:59:59", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	env = s.envelope(rec)
	s.Equal(1, env.Pagination.Total)
	s.EqualValues(2, env.Data.([]any)[0].(map[string]any)["sequence"])

	rec = s.do(http.MethodPost, "/api/detections", strings.NewReader(`{"group_event": "zone-a"}`), jsonHeader)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(http.MethodGet, "/api/detections/42", nil, nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("Detection event with id 42 not found", s.envelope(rec).Message)
}

func (s *ServerPublicTestSuite) TestActionEvents() {
	s.start(auth.AccessModeOpen)

	body := `{
		"content": "dispatched patrol",
		"user": "operator",
		"from_event_id": 3,
		"from_event_type": "detection",
		"datetime": "2024-05-01T10:00:00Z"
	}`
	rec := s.do(http.MethodPost, "/api/actions", strings.NewReader(body), jsonHeader)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data map[string]any `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Equal("Action", created.Data["type_event"])
	s.Equal("operator", created.Data["user"])

	rec = s.do(http.MethodGet, "/api/actions?user=operator", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(1, s.envelope(rec).Pagination.Total)

	rec = s.do(http.MethodGet, "/api/actions?user=nobody", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(0, s.envelope(rec).Pagination.Total)
}
