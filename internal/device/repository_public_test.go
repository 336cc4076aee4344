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

package device_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"github.com/lsirikh/GopApiServer/internal/config"
	"github.com/lsirikh/GopApiServer/internal/database"
	"github.com/lsirikh/GopApiServer/internal/device"
	"github.com/lsirikh/GopApiServer/internal/enum"
	"github.com/lsirikh/GopApiServer/internal/query"
)

type RepositoryPublicTestSuite struct {
	suite.Suite

	ctx         context.Context
	db          *database.DB
	controllers *device.ControllerRepository
	sensors     *device.SensorRepository
	cameras     *device.CameraRepository
}

func (s *RepositoryPublicTestSuite) SetupTest() {
	s.ctx = context.Background()

	db, err := database.Open(s.ctx, config.Database{Driver: database.DriverSQLite, DSN: ":memory:"})
	s.Require().NoError(err)
	_, err = db.Migrate(s.ctx)
	s.Require().NoError(err)

	s.db = db
	s.controllers = device.NewControllerRepository(db)
	s.sensors = device.NewSensorRepository(db)
	s.cameras = device.NewCameraRepository(db)
}

func (s *RepositoryPublicTestSuite) TearDownTest() {
	_ = s.db.Close()
}

func ptr[T any](v T) *T {
	return &v
}

func controllerInput(number int) device.ControllerInput {
	return device.ControllerInput{
		NumberDevice: ptr(number),
		GroupDevice:  ptr(1),
		NameDevice:   ptr("gate"),
		TypeDevice:   ptr(enum.DeviceTypeController),
		Version:      ptr("1.0.0"),
		IPAddress:    ptr("192.168.0.10"),
		IPPort:       ptr(4001),
	}
}

func sensorInput(number int, controllerID int64) device.SensorInput {
	return device.SensorInput{
		NumberDevice: ptr(number),
		GroupDevice:  ptr(2),
		NameDevice:   ptr("fence"),
		TypeDevice:   ptr(enum.DeviceTypeFence),
		Version:      ptr("2.1"),
		ControllerID: ptr(controllerID),
	}
}

func cameraInput(number int) device.CameraInput {
	return device.CameraInput{
		NumberDevice: ptr(number),
		GroupDevice:  ptr(3),
		NameDevice:   ptr("north"),
		TypeDevice:   ptr(enum.DeviceTypeIpCamera),
		Version:      ptr("5"),
		IPAddress:    ptr("10.0.0.5"),
		IPPort:       ptr(80),
		UserName:     ptr("admin"),
		UserPassword: ptr("secret"),
		RTSPURI:      ptr("/stream1"),
		RTSPPort:     ptr(554),
		Mode:         ptr(enum.CameraModeONVIF),
		Category:     ptr(enum.CameraTypeFixed),
	}
}

func (s *RepositoryPublicTestSuite) TestControllerCreate() {
	tests := []struct {
		name    string
		inputs  []device.ControllerInput
		wantErr string
	}{
		{
			name:   "defaults status to activated",
			inputs: []device.ControllerInput{controllerInput(1)},
		},
		{
			name:    "duplicate number_device conflicts",
			inputs:  []device.ControllerInput{controllerInput(7), controllerInput(7)},
			wantErr: "Controller with number_device 7 already exists",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			var (
				c   *device.Controller
				err error
			)
			for _, in := range tt.inputs {
				c, err = s.controllers.Create(s.ctx, in)
			}

			if tt.wantErr != "" {
				s.EqualError(err, tt.wantErr)
				s.True(errors.Is(err, database.ErrConflict))
				return
			}

			s.Require().NoError(err)
			s.Positive(c.ID)
			s.Equal(enum.DeviceStatusActivated, c.Status)
			s.False(c.CreatedAt.IsZero())

			got, err := s.controllers.Get(s.ctx, c.ID)
			s.Require().NoError(err)
			s.Equal(c.NumberDevice, got.NumberDevice)
			s.Equal(c.IPAddress, got.IPAddress)
			s.True(c.CreatedAt.Equal(got.CreatedAt))
		})
	}
}

func (s *RepositoryPublicTestSuite) TestControllerNotFound() {
	_, err := s.controllers.Get(s.ctx, 42)
	s.EqualError(err, "Controller with id 42 not found")
	s.True(errors.Is(err, database.ErrNotFound))

	_, err = s.controllers.Patch(s.ctx, 42, device.ControllerPatch{})
	s.True(errors.Is(err, database.ErrNotFound))

	_, err = s.controllers.Replace(s.ctx, 42, controllerInput(1))
	s.True(errors.Is(err, database.ErrNotFound))

	err = s.controllers.Delete(s.ctx, 42)
	s.True(errors.Is(err, database.ErrNotFound))
}

func (s *RepositoryPublicTestSuite) TestControllerPatchAndReplace() {
	c, err := s.controllers.Create(s.ctx, controllerInput(1))
	s.Require().NoError(err)

	patched, err := s.controllers.Patch(s.ctx, c.ID, device.ControllerPatch{
		NameDevice: ptr("renamed"),
		Status:     ptr(enum.DeviceStatusDeactivated),
	})
	s.Require().NoError(err)
	s.Equal("renamed", patched.NameDevice)
	s.Equal(enum.DeviceStatusDeactivated, patched.Status)
	s.Equal("192.168.0.10", patched.IPAddress)
	s.True(c.CreatedAt.Equal(patched.CreatedAt))

	replaced, err := s.controllers.Replace(s.ctx, c.ID, controllerInput(9))
	s.Require().NoError(err)
	s.Equal(c.ID, replaced.ID)
	s.Equal(9, replaced.NumberDevice)
	s.Equal("gate", replaced.NameDevice)
	s.Equal(enum.DeviceStatusActivated, replaced.Status)

	got, err := s.controllers.Get(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(9, got.NumberDevice)
}

func (s *RepositoryPublicTestSuite) TestControllerPatchConflict() {
	_, err := s.controllers.Create(s.ctx, controllerInput(1))
	s.Require().NoError(err)
	c, err := s.controllers.Create(s.ctx, controllerInput(2))
	s.Require().NoError(err)

	_, err = s.controllers.Patch(s.ctx, c.ID, device.ControllerPatch{NumberDevice: ptr(1)})
	s.EqualError(err, "Controller with number_device 1 already exists")
}

func (s *RepositoryPublicTestSuite) TestControllerListPagination() {
	for i := 1; i <= 5; i++ {
		_, err := s.controllers.Create(s.ctx, controllerInput(i))
		s.Require().NoError(err)
	}

	tests := []struct {
		name       string
		page       query.Page
		wantTotal  int
		wantNumber []int
	}{
		{name: "first page", page: query.Page{Page: 1, Limit: 3}, wantTotal: 5, wantNumber: []int{1, 2, 3}},
		{name: "second page", page: query.Page{Page: 2, Limit: 3}, wantTotal: 5, wantNumber: []int{4, 5}},
		{name: "past the end", page: query.Page{Page: 3, Limit: 3}, wantTotal: 5, wantNumber: []int{}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			items, total, err := s.controllers.List(s.ctx, device.ControllerFilter{}, tt.page)
			s.Require().NoError(err)
			s.Equal(tt.wantTotal, total)

			numbers := make([]int, 0, len(items))
			for _, c := range items {
				numbers = append(numbers, c.NumberDevice)
			}
			s.Equal(tt.wantNumber, numbers)
		})
	}
}

func (s *RepositoryPublicTestSuite) TestControllerListFilter() {
	in := controllerInput(1)
	in.GroupDevice = ptr(5)
	_, err := s.controllers.Create(s.ctx, in)
	s.Require().NoError(err)

	in = controllerInput(2)
	in.Status = ptr(enum.DeviceStatusError)
	_, err = s.controllers.Create(s.ctx, in)
	s.Require().NoError(err)

	page := query.Page{Page: 1, Limit: 10}

	items, total, err := s.controllers.List(s.ctx, device.ControllerFilter{GroupDevice: ptr(5)}, page)
	s.Require().NoError(err)
	s.Equal(1, total)
	s.Equal(1, items[0].NumberDevice)

	items, total, err = s.controllers.List(
		s.ctx,
		device.ControllerFilter{Status: ptr(enum.DeviceStatusError)},
		page,
	)
	s.Require().NoError(err)
	s.Equal(1, total)
	s.Equal(2, items[0].NumberDevice)
}

func (s *RepositoryPublicTestSuite) TestSensorControllerReference() {
	c, err := s.controllers.Create(s.ctx, controllerInput(1))
	s.Require().NoError(err)

	tests := []struct {
		name    string
		run     func() error
		wantErr string
	}{
		{
			name: "create with unknown controller",
			run: func() error {
				_, err := s.sensors.Create(s.ctx, sensorInput(10, 999))
				return err
			},
			wantErr: "Controller with id 999 not found",
		},
		{
			name: "create with known controller",
			run: func() error {
				_, err := s.sensors.Create(s.ctx, sensorInput(11, c.ID))
				return err
			},
		},
		{
			name: "patch to unknown controller",
			run: func() error {
				sensor, err := s.sensors.Create(s.ctx, sensorInput(12, c.ID))
				if err != nil {
					return err
				}
				_, err = s.sensors.Patch(s.ctx, sensor.ID, device.SensorPatch{ControllerID: ptr(int64(555))})
				return err
			},
			wantErr: "Controller with id 555 not found",
		},
		{
			name: "replace with unknown controller",
			run: func() error {
				sensor, err := s.sensors.Create(s.ctx, sensorInput(13, c.ID))
				if err != nil {
					return err
				}
				_, err = s.sensors.Replace(s.ctx, sensor.ID, sensorInput(13, 777))
				return err
			},
			wantErr: "Controller with id 777 not found",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := tt.run()
			if tt.wantErr != "" {
				s.EqualError(err, tt.wantErr)
				s.True(errors.Is(err, database.ErrNotFound))
				return
			}
			s.NoError(err)
		})
	}
}

func (s *RepositoryPublicTestSuite) TestSensorIncludeController() {
	c, err := s.controllers.Create(s.ctx, controllerInput(1))
	s.Require().NoError(err)
	for i := 10; i < 12; i++ {
		_, err = s.sensors.Create(s.ctx, sensorInput(i, c.ID))
		s.Require().NoError(err)
	}

	page := query.Page{Page: 1, Limit: 10}

	items, total, err := s.sensors.List(s.ctx, device.SensorFilter{}, page)
	s.Require().NoError(err)
	s.Equal(2, total)
	s.Nil(items[0].Controller)

	items, _, err = s.sensors.List(s.ctx, device.SensorFilter{IncludeController: true}, page)
	s.Require().NoError(err)
	s.Require().NotNil(items[0].Controller)
	s.Equal(c.ID, items[0].Controller.ID)
	s.Same(items[0].Controller, items[1].Controller)

	got, err := s.sensors.GetExpanded(s.ctx, items[0].ID, true)
	s.Require().NoError(err)
	s.Require().NotNil(got.Controller)
	s.Equal("gate", got.Controller.NameDevice)

	got, err = s.sensors.GetExpanded(s.ctx, items[0].ID, false)
	s.Require().NoError(err)
	s.Nil(got.Controller)

	items, total, err = s.sensors.List(s.ctx, device.SensorFilter{ControllerID: ptr(int64(99))}, page)
	s.Require().NoError(err)
	s.Zero(total)
	s.Empty(items)
}

func (s *RepositoryPublicTestSuite) TestControllerDeleteCascades() {
	c, err := s.controllers.Create(s.ctx, controllerInput(1))
	s.Require().NoError(err)
	sensor, err := s.sensors.Create(s.ctx, sensorInput(10, c.ID))
	s.Require().NoError(err)

	s.Require().NoError(s.controllers.Delete(s.ctx, c.ID))

	_, err = s.sensors.Get(s.ctx, sensor.ID)
	s.EqualError(err, "Sensor with id 1 not found")
}

func (s *RepositoryPublicTestSuite) TestCameraLifecycle() {
	cam, err := s.cameras.Create(s.ctx, cameraInput(100))
	s.Require().NoError(err)
	s.Equal(enum.CameraModeONVIF, cam.Mode)

	_, err = s.cameras.Create(s.ctx, cameraInput(100))
	s.EqualError(err, "Camera with number_device 100 already exists")

	patched, err := s.cameras.Patch(s.ctx, cam.ID, device.CameraPatch{
		Category: ptr(enum.CameraTypePTZ),
		RTSPPort: ptr(8554),
	})
	s.Require().NoError(err)
	s.Equal(enum.CameraTypePTZ, patched.Category)
	s.Equal(8554, patched.RTSPPort)
	s.Equal("/stream1", patched.RTSPURI)

	items, total, err := s.cameras.List(
		s.ctx,
		device.CameraFilter{Category: ptr(enum.CameraTypePTZ)},
		query.Page{Page: 1, Limit: 10},
	)
	s.Require().NoError(err)
	s.Equal(1, total)
	s.Equal(cam.ID, items[0].ID)

	replaced, err := s.cameras.Replace(s.ctx, cam.ID, cameraInput(101))
	s.Require().NoError(err)
	s.Equal(101, replaced.NumberDevice)
	s.Equal(enum.CameraTypeFixed, replaced.Category)

	s.Require().NoError(s.cameras.Delete(s.ctx, cam.ID))
	_, err = s.cameras.Get(s.ctx, cam.ID)
	s.True(errors.Is(err, database.ErrNotFound))
}

func (s *RepositoryPublicTestSuite) TestQueryErrors() {
	sqlDB, mock, err := sqlmock.New()
	s.Require().NoError(err)
	defer func() { _ = sqlDB.Close() }()

	db := database.New(sqlDB, database.DriverPostgres)
	repo := device.NewControllerRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM controllers`).
		WillReturnError(errors.New("connection reset"))
	_, _, err = repo.List(s.ctx, device.ControllerFilter{}, query.Page{Page: 1, Limit: 10})
	s.ErrorContains(err, "counting controllers: connection reset")

	mock.ExpectQuery(`SELECT id, number_device`).
		WithArgs(int64(3)).
		WillReturnError(errors.New("timeout"))
	_, err = repo.Get(s.ctx, 3)
	s.ErrorContains(err, "reading controllers 3: timeout")

	mock.ExpectBegin().WillReturnError(errors.New("busy"))
	_, err = repo.Patch(s.ctx, 3, device.ControllerPatch{})
	s.ErrorContains(err, "beginning transaction: busy")

	mock.ExpectExec(`DELETE FROM controllers WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err = repo.Delete(s.ctx, 3)
	s.EqualError(err, "Controller with id 3 not found")

	s.NoError(mock.ExpectationsWereMet())
}

func (s *RepositoryPublicTestSuite) TestClockIndependence() {
	before := time.Now().UTC().Add(-time.Second)
	c, err := s.controllers.Create(s.ctx, controllerInput(1))
	s.Require().NoError(err)
	s.True(c.CreatedAt.After(before))
	s.Equal(time.UTC, c.CreatedAt.Location())
}

func TestRepositoryPublicTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryPublicTestSuite))
}
