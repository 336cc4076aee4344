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
	"github.com/labstack/echo/v4"

	"github.com/lsirikh/GopApiServer/internal/api/resource"
	"github.com/lsirikh/GopApiServer/internal/database"
	"github.com/lsirikh/GopApiServer/internal/event"
)

// GetEventHandler returns the detection, malfunction, connection and action
// event handlers for registration.
func (s *Server) GetEventHandler(
	db *database.DB,
) []func(e *echo.Echo) {
	detections := resource.New[event.Detection, event.DetectionInput, event.DetectionPatch, event.DetectionFilter](
		resource.Names{Singular: "Detection event", Plural: "Detection events"},
		event.NewDetectionRepository(db),
	)
	malfunctions := resource.New[event.Malfunction, event.MalfunctionInput, event.MalfunctionPatch, event.MalfunctionFilter](
		resource.Names{Singular: "Malfunction event", Plural: "Malfunction events"},
		event.NewMalfunctionRepository(db),
	)
	connections := resource.New[event.Connection, event.ConnectionInput, event.ConnectionPatch, event.ConnectionFilter](
		resource.Names{Singular: "Connection event", Plural: "Connection events"},
		event.NewConnectionRepository(db),
	)
	actions := resource.New[event.Action, event.ActionInput, event.ActionPatch, event.ActionFilter](
		resource.Names{Singular: "Action event", Plural: "Action events"},
		event.NewActionRepository(db),
	)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			g := s.protected(e)
			detections.Register(g, "/detections")
			malfunctions.Register(g, "/malfunctions")
			connections.Register(g, "/connections")
			actions.Register(g, "/actions")
		},
	}
}
