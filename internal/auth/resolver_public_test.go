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

package auth_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/lsirikh/GopApiServer/internal/auth"
	"github.com/lsirikh/GopApiServer/internal/auth/mocks"
	"github.com/lsirikh/GopApiServer/internal/authtoken"
)

type ResolverPublicTestSuite struct {
	suite.Suite

	ctx       context.Context
	mockCtrl  *gomock.Controller
	store     *mocks.MockPrincipalStore
	codec     *mocks.MockTokenCodec
	principal *auth.Principal
}

func (s *ResolverPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.store = mocks.NewMockPrincipalStore(s.mockCtrl)
	s.codec = mocks.NewMockTokenCodec(s.mockCtrl)
	s.principal = &auth.Principal{ID: 1, Username: "admin", Role: auth.RoleAdmin}
}

func (s *ResolverPublicTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func claimsFor(subject string) *authtoken.Claims {
	return &authtoken.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: subject}}
}

func (s *ResolverPublicTestSuite) TestResolve() {
	tests := []struct {
		name           string
		mode           auth.AccessMode
		header         string
		setupMock      func()
		wantErr        error
		wantPrincipal  bool
		wantTransition string
	}{
		{
			name:           "required without token is unauthorized",
			mode:           auth.AccessModeRequired,
			header:         "",
			setupMock:      func() {},
			wantErr:        auth.ErrUnauthorized,
			wantTransition: "required_missing_token",
		},
		{
			name:   "required with invalid token is unauthorized",
			mode:   auth.AccessModeRequired,
			header: "Bearer garbage",
			setupMock: func() {
				s.codec.EXPECT().Validate("garbage").
					Return(nil, authtoken.ErrTokenInvalid)
			},
			wantErr:        auth.ErrUnauthorized,
			wantTransition: "required_invalid_token",
		},
		{
			name:           "required with non-bearer scheme is unauthorized",
			mode:           auth.AccessModeRequired,
			header:         "Basic YWRtaW46YWRtaW4=",
			setupMock:      func() {},
			wantErr:        auth.ErrUnauthorized,
			wantTransition: "required_invalid_token",
		},
		{
			name:   "required with unknown subject is unauthorized",
			mode:   auth.AccessModeRequired,
			header: "Bearer good",
			setupMock: func() {
				s.codec.EXPECT().Validate("good").Return(claimsFor("ghost"), nil)
				s.store.EXPECT().GetByUsername(gomock.Any(), "ghost").
					Return(nil, auth.ErrPrincipalNotFound)
			},
			wantErr:        auth.ErrUnauthorized,
			wantTransition: "required_unknown_subject",
		},
		{
			name:   "required with valid token resolves principal",
			mode:   auth.AccessModeRequired,
			header: "Bearer good",
			setupMock: func() {
				s.codec.EXPECT().Validate("good").Return(claimsFor("admin"), nil)
				s.store.EXPECT().GetByUsername(gomock.Any(), "admin").
					Return(s.principal, nil)
			},
			wantPrincipal:  true,
			wantTransition: "required_authenticated",
		},
		{
			name:           "open without token is anonymous",
			mode:           auth.AccessModeOpen,
			header:         "",
			setupMock:      func() {},
			wantTransition: "open_anonymous",
		},
		{
			name:   "open with invalid token fails open",
			mode:   auth.AccessModeOpen,
			header: "Bearer expired",
			setupMock: func() {
				s.codec.EXPECT().Validate("expired").
					Return(nil, authtoken.ErrTokenInvalid)
			},
			wantTransition: "open_fail_open_invalid_token",
		},
		{
			name:   "open with unknown subject fails open",
			mode:   auth.AccessModeOpen,
			header: "bearer good",
			setupMock: func() {
				s.codec.EXPECT().Validate("good").Return(claimsFor("ghost"), nil)
				s.store.EXPECT().GetByUsername(gomock.Any(), "ghost").
					Return(nil, auth.ErrPrincipalNotFound)
			},
			wantTransition: "open_fail_open_unknown_subject",
		},
		{
			name:   "open with valid token resolves principal",
			mode:   auth.AccessModeOpen,
			header: "Bearer good",
			setupMock: func() {
				s.codec.EXPECT().Validate("good").Return(claimsFor("admin"), nil)
				s.store.EXPECT().GetByUsername(gomock.Any(), "admin").
					Return(s.principal, nil)
			},
			wantPrincipal:  true,
			wantTransition: "open_authenticated",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.setupMock()

			r := auth.NewResolver(slog.Default(), tt.mode, s.store, s.codec, nil)
			res, err := r.Resolve(s.ctx, tt.header)

			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
			} else {
				s.NoError(err)
			}
			s.Equal(tt.wantTransition, res.Transition)
			if tt.wantPrincipal {
				s.Equal(s.principal, res.Principal)
				s.False(res.Anonymous())
			} else {
				s.True(res.Anonymous())
			}
		})
	}
}

func (s *ResolverPublicTestSuite) TestResolveStoreError() {
	storeErr := errors.New("database is locked")

	for _, mode := range []auth.AccessMode{auth.AccessModeRequired, auth.AccessModeOpen} {
		s.Run(string(mode), func() {
			s.codec.EXPECT().Validate("good").Return(claimsFor("admin"), nil)
			s.store.EXPECT().GetByUsername(gomock.Any(), "admin").Return(nil, storeErr)

			r := auth.NewResolver(slog.Default(), mode, s.store, s.codec, nil)
			_, err := r.Resolve(s.ctx, "Bearer good")

			s.ErrorIs(err, storeErr)
			s.NotErrorIs(err, auth.ErrUnauthorized)
		})
	}
}

func (s *ResolverPublicTestSuite) TestAuthenticate() {
	tests := []struct {
		name      string
		header    string
		setupMock func()
		wantErr   error
	}{
		{
			name:      "open mode still requires a token",
			header:    "",
			setupMock: func() {},
			wantErr:   auth.ErrUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func() {
				s.codec.EXPECT().Validate("good").Return(claimsFor("admin"), nil)
				s.store.EXPECT().GetByUsername(gomock.Any(), "admin").
					Return(s.principal, nil)
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.setupMock()

			r := auth.NewResolver(slog.Default(), auth.AccessModeOpen, s.store, s.codec, nil)
			p, err := r.Authenticate(s.ctx, tt.header)

			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
				s.Nil(p)
				return
			}

			s.NoError(err)
			s.Equal(s.principal, p)
		})
	}
}

func (s *ResolverPublicTestSuite) TestTransitionTableIsTotal() {
	states := []auth.TokenState{
		auth.TokenAbsent,
		auth.TokenInvalid,
		auth.TokenUnknownSubject,
		auth.TokenValid,
	}

	for _, mode := range []auth.AccessMode{auth.AccessModeRequired, auth.AccessModeOpen} {
		for _, state := range states {
			s.Run(string(mode)+"/"+state.String(), func() {
				t, ok := auth.TransitionFor(mode, state)
				s.True(ok)
				s.NotEmpty(t.Name)

				if state == auth.TokenValid {
					s.Equal(auth.OutcomePrincipal, t.Outcome)
				} else if mode == auth.AccessModeRequired {
					s.Equal(auth.OutcomeUnauthorized, t.Outcome)
				} else {
					s.Equal(auth.OutcomeAnonymous, t.Outcome)
				}
			})
		}
	}
}

func (s *ResolverPublicTestSuite) TestBearerToken() {
	tests := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{name: "bearer", header: "Bearer abc", want: "abc", wantOK: true},
		{name: "lowercase scheme", header: "bearer abc", want: "abc", wantOK: true},
		{name: "surrounding space", header: "  Bearer   abc  ", want: "abc", wantOK: true},
		{name: "no token", header: "Bearer", wantOK: false},
		{name: "blank token", header: "Bearer   ", wantOK: false},
		{name: "other scheme", header: "Basic abc", wantOK: false},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, ok := auth.BearerToken(tt.header)
			s.Equal(tt.wantOK, ok)
			s.Equal(tt.want, got)
		})
	}
}

func TestResolverPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverPublicTestSuite))
}
