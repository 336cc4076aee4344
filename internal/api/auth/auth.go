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

package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lsirikh/GopApiServer/internal/api/common"
)

// New creates the authentication handlers.
func New(
	authenticator Authenticator,
	resolver PrincipalResolver,
) *Auth {
	return &Auth{
		authenticator: authenticator,
		resolver:      resolver,
	}
}

// Register mounts the handlers on g.
func (a *Auth) Register(
	g *echo.Group,
) {
	g.POST("/login", a.PostLogin)
	g.GET("/me", a.GetMe)
}

// PostLogin issues a bearer token for valid credentials.
func (a *Auth) PostLogin(
	c echo.Context,
) error {
	var req LoginRequest
	if err := common.BindBody(c, &req); err != nil {
		return err
	}

	token, err := a.authenticator.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// GetMe returns the principal named by a valid bearer token.
func (a *Auth) GetMe(
	c echo.Context,
) error {
	p, err := a.resolver.Authenticate(
		c.Request().Context(),
		c.Request().Header.Get(echo.HeaderAuthorization),
	)
	if err != nil {
		return err
	}

	c.Set(common.ContextKeyPrincipal, p)

	return c.JSON(http.StatusOK, p)
}
