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

package health_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lsirikh/GopApiServer/internal/api/health"
)

type CheckerPublicTestSuite struct {
	suite.Suite

	ctx context.Context
}

func (s *CheckerPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *CheckerPublicTestSuite) TestCheckHealth() {
	ok := func(context.Context) error { return nil }

	tests := []struct {
		name    string
		checker *health.StoreChecker
		wantErr []string
	}{
		{
			name:    "all checks pass",
			checker: &health.StoreChecker{DBCheck: ok, AuditCheck: ok},
		},
		{
			name: "database check fails",
			checker: &health.StoreChecker{
				DBCheck:    func(context.Context) error { return errors.New("database is locked") },
				AuditCheck: ok,
			},
			wantErr: []string{"database: database is locked"},
		},
		{
			name: "audit check fails",
			checker: &health.StoreChecker{
				DBCheck:    ok,
				AuditCheck: func(context.Context) error { return errors.New("nats: no servers available") },
			},
			wantErr: []string{"audit store: nats: no servers available"},
		},
		{
			name: "both checks fail",
			checker: &health.StoreChecker{
				DBCheck:    func(context.Context) error { return errors.New("db down") },
				AuditCheck: func(context.Context) error { return errors.New("kv down") },
			},
			wantErr: []string{"database: db down", "audit store: kv down"},
		},
		{
			name:    "nil checks pass",
			checker: &health.StoreChecker{},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := tt.checker.CheckHealth(s.ctx)

			if len(tt.wantErr) == 0 {
				s.NoError(err)
				return
			}

			s.Require().Error(err)
			for _, msg := range tt.wantErr {
				s.Contains(err.Error(), msg)
			}
		})
	}
}

func TestCheckerPublicTestSuite(t *testing.T) {
	suite.Run(t, new(CheckerPublicTestSuite))
}
