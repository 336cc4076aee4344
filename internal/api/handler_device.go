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

package api

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/lsirikh/GopApiServer/internal/api/resource"
	"github.com/lsirikh/GopApiServer/internal/database"
	"github.com/lsirikh/GopApiServer/internal/device"
)

// GetDeviceHandler returns the controller, sensor and camera handlers for
// registration.
func (s *Server) GetDeviceHandler(
	db *database.DB,
) []func(e *echo.Echo) {
	controllers := resource.New[device.Controller, device.ControllerInput, device.ControllerPatch, device.ControllerFilter](
		resource.Names{Singular: "Controller", Plural: "Controllers"},
		device.NewControllerRepository(db),
	)

	sensorRepo := device.NewSensorRepository(db)
	sensors := resource.New[device.Sensor, device.SensorInput, device.SensorPatch, device.SensorFilter](
		resource.Names{Singular: "Sensor", Plural: "Sensors"},
		sensorRepo,
	)
	sensors.Detail = func(
		ctx context.Context,
		id int64,
		f device.SensorFilter,
	) (*device.Sensor, error) {
		return sensorRepo.GetExpanded(ctx, id, f.IncludeController)
	}

	cameras := resource.New[device.Camera, device.CameraInput, device.CameraPatch, device.CameraFilter](
		resource.Names{Singular: "Camera", Plural: "Cameras"},
		device.NewCameraRepository(db),
	)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			g := s.protected(e)
			controllers.Register(g, "/controllers")
			sensors.Register(g, "/sensors")
			cameras.Register(g, "/cameras")
		},
	}
}
