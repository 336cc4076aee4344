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

package authtoken_test

import (
	"encoding/base64"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/suite"

	"github.com/lsirikh/GopApiServer/internal/authtoken"
)

type AuthTokenPublicTestSuite struct {
	suite.Suite

	now        time.Time
	token      *authtoken.Token
	signingKey string
}

func (s *AuthTokenPublicTestSuite) SetupTest() {
	s.now = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.signingKey = "test-signing-key-for-jwt-operations"
	s.token = s.newToken(s.signingKey, "HS256", s.now)
}

func (s *AuthTokenPublicTestSuite) newToken(
	key string,
	algorithm string,
	at time.Time,
) *authtoken.Token {
	t, err := authtoken.New(
		slog.Default(),
		key,
		algorithm,
		time.Hour,
		authtoken.WithClock(func() time.Time { return at }),
	)
	s.Require().NoError(err)

	return t
}

func (s *AuthTokenPublicTestSuite) TestNew() {
	tests := []struct {
		name         string
		key          string
		algorithm    string
		lifetime     time.Duration
		wantLifetime time.Duration
		errContains  string
	}{
		{
			name:         "HS256",
			key:          "k",
			algorithm:    "HS256",
			lifetime:     time.Hour,
			wantLifetime: time.Hour,
		},
		{
			name:         "HS512 with default lifetime",
			key:          "k",
			algorithm:    "HS512",
			wantLifetime: authtoken.DefaultLifetime,
		},
		{
			name:        "asymmetric algorithm rejected",
			key:         "k",
			algorithm:   "RS256",
			errContains: "unsupported signing algorithm",
		},
		{
			name:        "unknown algorithm rejected",
			key:         "k",
			algorithm:   "HS1",
			errContains: "unsupported signing algorithm",
		},
		{
			name:        "empty key rejected",
			algorithm:   "HS256",
			errContains: "signing key must not be empty",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t, err := authtoken.New(slog.Default(), tt.key, tt.algorithm, tt.lifetime)

			if tt.errContains != "" {
				s.Error(err)
				s.Contains(err.Error(), tt.errContains)
				return
			}

			s.Require().NoError(err)
			s.Equal(tt.algorithm, t.Algorithm())
			s.Equal(tt.wantLifetime, t.Lifetime())
		})
	}
}

func (s *AuthTokenPublicTestSuite) TestGenerate() {
	tests := []struct {
		name        string
		subject     string
		errContains string
	}{
		{
			name:    "issues token for subject",
			subject: "admin",
		},
		{
			name:        "empty subject",
			subject:     "",
			errContains: "subject must not be empty",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			tokenString, err := s.token.Generate(tt.subject)

			if tt.errContains != "" {
				s.Error(err)
				s.Contains(err.Error(), tt.errContains)
				return
			}

			s.NoError(err)
			s.NotEmpty(tokenString)
		})
	}
}

func (s *AuthTokenPublicTestSuite) TestValidate() {
	sign := func(method jwt.SigningMethod, key string, claims jwt.Claims) string {
		t, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
		s.Require().NoError(err)
		return t
	}

	tests := []struct {
		name        string
		tokenFunc   func() string
		validator   func() *authtoken.Token
		errContains string
		validate    func(*authtoken.Claims)
	}{
		{
			name: "round trip",
			tokenFunc: func() string {
				t, _ := s.token.Generate("admin")
				return t
			},
			validate: func(claims *authtoken.Claims) {
				s.Equal("admin", claims.Subject)
				s.Equal(s.now.Unix(), claims.IssuedAt.Unix())
				s.Equal(s.now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
			},
		},
		{
			name: "just before expiry",
			tokenFunc: func() string {
				t, _ := s.token.Generate("admin")
				return t
			},
			validator: func() *authtoken.Token {
				return s.newToken(s.signingKey, "HS256", s.now.Add(time.Hour-time.Second))
			},
			validate: func(claims *authtoken.Claims) {
				s.Equal("admin", claims.Subject)
			},
		},
		{
			name: "expired at exactly expiry",
			tokenFunc: func() string {
				t, _ := s.token.Generate("admin")
				return t
			},
			validator: func() *authtoken.Token {
				return s.newToken(s.signingKey, "HS256", s.now.Add(time.Hour))
			},
			errContains: "token is expired",
		},
		{
			name: "wrong signing key",
			tokenFunc: func() string {
				t, _ := s.token.Generate("admin")
				return t
			},
			validator: func() *authtoken.Token {
				return s.newToken("wrong-key", "HS256", s.now)
			},
			errContains: "signature is invalid",
		},
		{
			name: "algorithm differs from configured",
			tokenFunc: func() string {
				t, _ := s.newToken(s.signingKey, "HS512", s.now).Generate("admin")
				return t
			},
			errContains: "signing method HS512 is invalid",
		},
		{
			name: "malformed token",
			tokenFunc: func() string {
				return "not-a-valid-jwt-token"
			},
			errContains: "token contains an invalid number of segments",
		},
		{
			name: "empty token",
			tokenFunc: func() string {
				return ""
			},
			errContains: "token contains an invalid number of segments",
		},
		{
			name: "unsigned token",
			tokenFunc: func() string {
				header := base64.RawURLEncoding.EncodeToString(
					[]byte(`{"alg":"none","typ":"JWT"}`),
				)
				payload := base64.RawURLEncoding.EncodeToString(
					[]byte(`{"sub":"admin"}`),
				)
				return header + "." + payload + "."
			},
			errContains: "signing method none is invalid",
		},
		{
			name: "missing subject",
			tokenFunc: func() string {
				return sign(jwt.SigningMethodHS256, s.signingKey, jwt.RegisteredClaims{
					IssuedAt:  jwt.NewNumericDate(s.now),
					ExpiresAt: jwt.NewNumericDate(s.now.Add(time.Hour)),
				})
			},
			errContains: "token has no subject",
		},
		{
			name: "missing expiry",
			tokenFunc: func() string {
				return sign(jwt.SigningMethodHS256, s.signingKey, jwt.RegisteredClaims{
					Subject:  "admin",
					IssuedAt: jwt.NewNumericDate(s.now),
				})
			},
			errContains: "token has no expiry",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			v := s.token
			if tt.validator != nil {
				v = tt.validator()
			}

			claims, err := v.Validate(tt.tokenFunc())

			if tt.errContains != "" {
				s.Error(err)
				s.True(errors.Is(err, authtoken.ErrTokenInvalid))
				s.Contains(err.Error(), tt.errContains)
				s.Nil(claims)
				return
			}

			s.Require().NoError(err)
			tt.validate(claims)
		})
	}
}

func TestAuthTokenPublicTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTokenPublicTestSuite))
}
