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

package common

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lsirikh/GopApiServer/internal/database"
	"github.com/lsirikh/GopApiServer/internal/enum"
	"github.com/lsirikh/GopApiServer/internal/query"
	"github.com/lsirikh/GopApiServer/internal/validation"
)

var binder = &echo.DefaultBinder{}

// ParsePage reads page and limit from the query string.
func ParsePage(
	c echo.Context,
) (query.Page, error) {
	page, err := intParam(c, "page", DefaultPage)
	if err != nil {
		return query.Page{}, err
	}
	if page < 1 {
		return query.Page{}, &UnprocessableError{Message: "page must be at least 1"}
	}

	limit, err := intParam(c, "limit", DefaultLimit)
	if err != nil {
		return query.Page{}, err
	}
	if limit < 1 || limit > MaxLimit {
		return query.Page{}, &UnprocessableError{
			Message: fmt.Sprintf("limit must be between 1 and %d", MaxLimit),
		}
	}

	return query.Page{Page: page, Limit: limit}, nil
}

func intParam(
	c echo.Context,
	name string,
	def int,
) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &UnprocessableError{Message: fmt.Sprintf("%s must be an integer", name)}
	}

	return v, nil
}

// ParseID reads the integer path parameter "id". A non-integer is
// unprocessable. Zero and negative ids name no row of entity.
func ParseID(
	c echo.Context,
	entity string,
) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, &UnprocessableError{Message: "id must be an integer"}
	}
	if id < 1 {
		return 0, &database.NotFoundError{Entity: entity, ID: id}
	}

	return id, nil
}

// BindQuery binds query parameters into dst.
func BindQuery(
	c echo.Context,
	dst any,
) error {
	if err := binder.BindQueryParams(c, dst); err != nil {
		return &UnprocessableError{Message: bindMessage(err)}
	}

	return nil
}

// BindBody decodes the request body into dst and validates it.
func BindBody(
	c echo.Context,
	dst any,
) error {
	if err := binder.BindBody(c, dst); err != nil {
		return &UnprocessableError{Message: bindMessage(err)}
	}

	return validation.Validate(dst)
}

// bindMessage prefers the field-qualified enum message over echo's wrapper.
func bindMessage(
	err error,
) string {
	var parseErr *enum.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Error()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Internal != nil {
			return httpErr.Internal.Error()
		}
		return fmt.Sprint(httpErr.Message)
	}

	return err.Error()
}
