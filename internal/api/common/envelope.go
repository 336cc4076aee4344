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
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lsirikh/GopApiServer/internal/auth"
	"github.com/lsirikh/GopApiServer/internal/query"
)

// now is replaced in tests.
var now = time.Now

// NewPagination returns the pagination block for page with total rows.
// TotalPages is at least 1.
func NewPagination(
	page query.Page,
	total int,
) Pagination {
	pages := 1
	if page.Limit > 0 && total > 0 {
		pages = (total + page.Limit - 1) / page.Limit
	}

	return Pagination{
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      total,
		TotalPages: pages,
	}
}

// MetaFor returns the response metadata for c.
func MetaFor(
	c echo.Context,
) Meta {
	return Meta{
		Timestamp: now().UTC(),
		RequestID: RequestID(c),
	}
}

// Respond writes a successful envelope.
func Respond(
	c echo.Context,
	status int,
	message string,
	data any,
) error {
	return c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    MetaFor(c),
	})
}

// RespondList writes a successful envelope with pagination.
func RespondList(
	c echo.Context,
	message string,
	data any,
	page query.Page,
	total int,
) error {
	p := NewPagination(page, total)

	return c.JSON(http.StatusOK, Envelope{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: &p,
		Meta:       MetaFor(c),
	})
}

// RespondError writes a failed envelope.
func RespondError(
	c echo.Context,
	status int,
	message string,
) error {
	return c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Meta:    MetaFor(c),
	})
}

// RequestID returns the correlation id assigned to c.
func RequestID(
	c echo.Context,
) string {
	id, _ := c.Get(ContextKeyRequestID).(string)
	return id
}

// Principal returns the principal resolved for c, or nil.
func Principal(
	c echo.Context,
) *auth.Principal {
	p, _ := c.Get(ContextKeyPrincipal).(*auth.Principal)
	return p
}
