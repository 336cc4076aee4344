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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/lsirikh/GopApiServer/internal/api"
	"github.com/lsirikh/GopApiServer/internal/api/common"
	"github.com/lsirikh/GopApiServer/internal/api/health"
	"github.com/lsirikh/GopApiServer/internal/audit"
	"github.com/lsirikh/GopApiServer/internal/auth"
	"github.com/lsirikh/GopApiServer/internal/authtoken"
	"github.com/lsirikh/GopApiServer/internal/config"
	"github.com/lsirikh/GopApiServer/internal/database"
)

const testVersion = "1.0.0"

type ServerPublicTestSuite struct {
	suite.Suite

	ctx    context.Context
	logger *slog.Logger
	db     *database.DB
	server *api.Server
}

func (s *ServerPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.DiscardHandler)
}

func (s *ServerPublicTestSuite) TearDownTest() {
	if s.db != nil {
		_ = s.db.Close()
		s.db = nil
	}
}

// start builds a fully wired server over a fresh in-memory database with
// the bootstrap administrator admin/admin123.
func (s *ServerPublicTestSuite) start(
	mode auth.AccessMode,
) {
	if s.db != nil {
		_ = s.db.Close()
	}

	db, err := database.Open(s.ctx, config.Database{Driver: "sqlite3", DSN: ":memory:"})
	s.Require().NoError(err)
	_, err = db.Migrate(s.ctx)
	s.Require().NoError(err)
	s.db = db

	principals := auth.NewSQLPrincipalStore(db)
	_, err = auth.EnsureAdmin(s.ctx, s.logger, principals, config.Bootstrap{
		Enabled:  true,
		Username: "admin",
		Password: "admin123",
	})
	s.Require().NoError(err)

	codec, err := authtoken.New(s.logger, "test-signing-key", "HS256", time.Hour)
	s.Require().NoError(err)

	resolver := auth.NewResolver(s.logger, mode, principals, codec, nil)
	auditStore := audit.NewSQLStore(db)

	appConfig := config.Config{}
	appConfig.API.Audit.ExcludePaths = []string{"/health", "/metrics"}

	s.server = api.New(appConfig, s.logger, resolver, api.WithAuditStore(auditStore))

	metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "gop_up 1\n")
	})

	handlers := make([]func(e *echo.Echo), 0, 8)
	handlers = append(handlers, s.server.GetHealthHandler(
		&health.StoreChecker{DBCheck: db.CheckHealth},
		testVersion,
	)...)
	handlers = append(handlers, s.server.GetMetricsHandler(metricsHandler, "/metrics")...)
	handlers = append(handlers, s.server.GetAuthHandler(
		auth.NewAuthenticator(s.logger, principals, codec, nil),
	)...)
	handlers = append(handlers, s.server.GetDeviceHandler(db)...)
	handlers = append(handlers, s.server.GetEventHandler(db)...)
	handlers = append(handlers, s.server.GetAuditHandler(auditStore)...)
	s.server.RegisterHandlers(handlers)
}

func (s *ServerPublicTestSuite) do(
	method string,
	target string,
	body io.Reader,
	header map[string]string,
) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.server.Echo.ServeHTTP(rec, req)

	return rec
}

func (s *ServerPublicTestSuite) login(
	username string,
	password string,
) *httptest.ResponseRecorder {
	form := url.Values{"username": {username}, "password": {password}}

	return s.do(
		http.MethodPost,
		"/api/auth/login",
		strings.NewReader(form.Encode()),
		map[string]string{echo.HeaderContentType: echo.MIMEApplicationForm},
	)
}

func (s *ServerPublicTestSuite) envelope(
	rec *httptest.ResponseRecorder,
) common.Envelope {
	var env common.Envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func (s *ServerPublicTestSuite) TestLoginThenMe() {
	s.start(auth.AccessModeRequired)

	rec := s.login("admin", "admin123")
	s.Require().Equal(http.StatusOK, rec.Code)

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &token))
	s.Equal("bearer", token.TokenType)
	s.NotEmpty(token.AccessToken)

	rec = s.do(http.MethodGet, "/api/auth/me", nil, map[string]string{
		echo.HeaderAuthorization: "Bearer " + token.AccessToken,
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	var me map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &me))
	s.Equal("admin", me["username"])
	s.Equal("admin", me["role"])
	s.EqualValues(1, me["id"])
	s.NotContains(me, "password_hash")
	s.Contains(me, "created_at")

	rec = s.do(http.MethodGet, "/api/controllers", nil, map[string]string{
		echo.HeaderAuthorization: "Bearer " + token.AccessToken,
	})
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerPublicTestSuite) TestLoginFailures() {
	tests := []struct {
		name        string
		username    string
		password    string
		wantCode    int
		wantMessage string
	}{
		{
			name:        "wrong password",
			username:    "admin",
			password:    "nope",
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Incorrect username or password",
		},
		{
			name:        "unknown user reads the same",
			username:    "mallory",
			password:    "admin123",
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Incorrect username or password",
		},
		{
			name:     "missing password",
			username: "admin",
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.start(auth.AccessModeRequired)

			rec := s.login(tt.username, tt.password)

			s.Equal(tt.wantCode, rec.Code)
			env := s.envelope(rec)
			s.False(env.Success)
			if tt.wantMessage != "" {
				s.Equal(tt.wantMessage, env.Message)
			}
			if tt.wantCode == http.StatusUnauthorized {
				s.Equal("Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
			}
		})
	}
}

func (s *ServerPublicTestSuite) TestLoginLogging() {
	tests := []struct {
		name      string
		password  string
		wantCode  int
		wantLines int
	}{
		{
			name:      "success is logged once",
			password:  "admin123",
			wantCode:  http.StatusOK,
			wantLines: 1,
		},
		{
			name:      "failure is not logged as success",
			password:  "nope",
			wantCode:  http.StatusUnauthorized,
			wantLines: 0,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			var buf bytes.Buffer
			s.logger = slog.New(slog.NewTextHandler(&buf, nil))
			s.start(auth.AccessModeRequired)

			rec := s.login("admin", tt.password)

			s.Equal(tt.wantCode, rec.Code)
			s.Equal(tt.wantLines, strings.Count(buf.String(), "login succeeded"))
		})
	}
}

func (s *ServerPublicTestSuite) TestMeRequiresTokenInOpenMode() {
	s.start(auth.AccessModeOpen)

	rec := s.do(http.MethodGet, "/api/auth/me", nil, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/controllers", nil, nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerPublicTestSuite) TestAccessModes() {
	tests := []struct {
		name     string
		mode     auth.AccessMode
		path     string
		wantCode int
	}{
		{name: "required gates resources", mode: auth.AccessModeRequired, path: "/api/sensors", wantCode: http.StatusUnauthorized},
		{name: "required gates logs", mode: auth.AccessModeRequired, path: "/api/logs", wantCode: http.StatusUnauthorized},
		{name: "required leaves health open", mode: auth.AccessModeRequired, path: "/health", wantCode: http.StatusOK},
		{name: "required leaves root open", mode: auth.AccessModeRequired, path: "/", wantCode: http.StatusOK},
		{name: "required leaves metrics open", mode: auth.AccessModeRequired, path: "/metrics", wantCode: http.StatusOK},
		{name: "open admits anonymous", mode: auth.AccessModeOpen, path: "/api/detections", wantCode: http.StatusOK},
		{name: "open admits anonymous logs", mode: auth.AccessModeOpen, path: "/api/logs", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.start(tt.mode)

			rec := s.do(http.MethodGet, tt.path, nil, nil)

			s.Equal(tt.wantCode, rec.Code)
			s.NotEmpty(rec.Header().Get(echo.HeaderXRequestID))
		})
	}
}

func (s *ServerPublicTestSuite) TestRootAndHealth() {
	s.start(auth.AccessModeOpen)

	rec := s.do(http.MethodGet, "/", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var root health.RootResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &root))
	s.Equal(health.RootMessage, root.Message)
	s.Equal(testVersion, root.Version)
	s.Equal("open", root.AuthMode)

	rec = s.do(http.MethodGet, "/health", nil, nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"healthy"`)

	s.Require().NoError(s.db.Close())

	rec = s.do(http.MethodGet, "/health", nil, nil)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Contains(rec.Body.String(), `"unhealthy"`)
	s.db = nil
}

func (s *ServerPublicTestSuite) TestMetrics() {
	s.start(auth.AccessModeRequired)

	rec := s.do(http.MethodGet, "/metrics", nil, nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "gop_up 1")
}

func (s *ServerPublicTestSuite) TestAuditTrail() {
	s.start(auth.AccessModeOpen)

	_ = s.login("admin", "nope")
	_ = s.do(http.MethodGet, "/api/controllers/9", nil, map[string]string{
		api.HeaderClientUUID: "console-1",
		echo.HeaderXRequestID: "req-42",
	})
	_ = s.do(http.MethodGet, "/health", nil, nil)

	rec := s.do(http.MethodGet, "/api/logs", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var env struct {
		Data       []audit.Record    `json:"data"`
		Pagination common.Pagination `json:"pagination"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))

	s.Equal(2, env.Pagination.Total)
	s.Require().Len(env.Data, 2)

	newest := env.Data[0]
	s.Equal("controllers/9", newest.Resource)
	s.Equal("Controller read failed", newest.Description)
	s.Equal(http.StatusNotFound, newest.StatusCode)
	s.Equal("req-42", newest.RequestID)
	s.Require().NotNil(newest.ClientUUID)
	s.Equal("console-1", *newest.ClientUUID)

	s.Equal("auth/login", env.Data[1].Resource)
	s.Equal("Login create failed", env.Data[1].Description)

	rec = s.do(http.MethodGet, "/api/logs?client_uuid=console-1&method=get", nil, nil)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))
	s.Equal(1, env.Pagination.Total)
}

func (s *ServerPublicTestSuite) TestUnknownRoute() {
	s.start(auth.AccessModeOpen)

	rec := s.do(http.MethodGet, "/api/does-not-exist", nil, nil)

	s.Equal(http.StatusNotFound, rec.Code)
	env := s.envelope(rec)
	s.False(env.Success)
	s.Equal(rec.Header().Get(echo.HeaderXRequestID), env.Meta.RequestID)
}

func TestServerPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ServerPublicTestSuite))
}
