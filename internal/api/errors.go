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
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lsirikh/GopApiServer/internal/api/common"
	"github.com/lsirikh/GopApiServer/internal/auth"
	"github.com/lsirikh/GopApiServer/internal/database"
	"github.com/lsirikh/GopApiServer/internal/enum"
	"github.com/lsirikh/GopApiServer/internal/validation"
)

// Messages for errors whose cause is not shown to the caller.
const (
	msgInvalidCredentials = "Incorrect username or password"
	msgUnauthorized       = "Not authenticated"
	msgInternal           = "Internal server error"
)

// errorHandler renders every handler error as a failed envelope.
func errorHandler(
	logger *slog.Logger,
) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := classify(err)
		if status == http.StatusUnauthorized {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		}
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(
				c.Request().Context(),
				"request failed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.String("error", err.Error()),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = common.RespondError(c, status, message)
		}
		if err != nil {
			logger.Error("writing error response", slog.String("error", err.Error()))
		}
	}
}

// classify maps err to a status code and a caller-safe message.
func classify(
	err error,
) (int, string) {
	var (
		parseErr      *enum.ParseError
		validationErr *validation.Error
		unprocessable *common.UnprocessableError
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, msgInvalidCredentials
	case errors.Is(err, auth.ErrUnauthorized):
		return http.StatusUnauthorized, msgUnauthorized
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, database.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity, parseErr.Error()
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity, validationErr.Error()
	case errors.As(err, &unprocessable):
		return http.StatusUnprocessableEntity, unprocessable.Error()
	case errors.As(err, &httpErr):
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, msgInternal
		}
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	default:
		return http.StatusInternalServerError, msgInternal
	}
}
