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

package audit

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lsirikh/GopApiServer/internal/api/common"
	auditstore "github.com/lsirikh/GopApiServer/internal/audit"
)

// GetAuditLogs returns a page of audit records, newest first.
func (a *Audit) GetAuditLogs(
	c echo.Context,
) error {
	page, err := common.ParsePage(c)
	if err != nil {
		return err
	}

	var params ListParams
	if err := common.BindQuery(c, &params); err != nil {
		return err
	}

	filter := auditstore.Filter{
		Start:      params.StartDate.Ptr(),
		End:        params.EndDate.Ptr(),
		Method:     strings.ToUpper(params.Method),
		Resource:   params.Resource,
		ClientUUID: params.ClientUUID,
	}

	records, total, err := a.Store.List(c.Request().Context(), filter, page.Page, page.Limit)
	if err != nil {
		a.logger.ErrorContext(
			c.Request().Context(),
			"failed to list audit records",
			slog.String("error", err.Error()),
		)
		return err
	}

	if records == nil {
		records = []auditstore.Record{}
	}

	return common.RespondList(c, "API logs retrieved successfully", records, page, total)
}
