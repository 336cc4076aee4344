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

// Package query builds the filtered, paginated SELECT statements shared by
// the SQL stores.
package query

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Builder accumulates AND-ed WHERE conditions with "?" placeholders.
type Builder struct {
	conds []string
	args  []any
}

// Eq adds "column = value".
func (b *Builder) Eq(
	column string,
	value any,
) *Builder {
	b.conds = append(b.conds, column+" = ?")
	b.args = append(b.args, value)
	return b
}

// Gte adds "column >= value".
func (b *Builder) Gte(
	column string,
	value any,
) *Builder {
	b.conds = append(b.conds, column+" >= ?")
	b.args = append(b.args, value)
	return b
}

// Lte adds "column <= value".
func (b *Builder) Lte(
	column string,
	value any,
) *Builder {
	b.conds = append(b.conds, column+" <= ?")
	b.args = append(b.args, value)
	return b
}

// Where returns the clause including the leading " WHERE", or "".
func (b *Builder) Where() string {
	if len(b.conds) == 0 {
		return ""
	}

	return " WHERE " + strings.Join(b.conds, " AND ")
}

// Args returns the accumulated arguments in placeholder order.
func (b *Builder) Args() []any {
	return b.args
}

// Page is a 1-based page request.
type Page struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return (p.Page - 1) * p.Limit
}

// Paginate appends LIMIT and OFFSET to stmt and returns the extended args.
func Paginate(
	stmt string,
	args []any,
	p Page,
) (string, []any) {
	out := make([]any, 0, len(args)+2)
	out = append(out, args...)
	out = append(out, p.Limit, p.Offset())

	return stmt + " LIMIT ? OFFSET ?", out
}

// timeLayouts are accepted by ParseTime, most specific first.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseTime parses an ISO 8601 date or date-time. Values without a zone
// are read as UTC.
func ParseTime(
	s string,
) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q (expected ISO 8601, e.g. 2024-01-02 or 2024-01-02T15:04:05Z)", s)
}

// Time is a timestamp accepted in query parameters and request bodies in
// any layout ParseTime understands.
type Time struct {
	time.Time
}

// UnmarshalParam implements echo.BindUnmarshaler.
func (t *Time) UnmarshalParam(
	param string,
) error {
	v, err := ParseTime(param)
	if err != nil {
		return err
	}

	t.Time = v
	return nil
}

// UnmarshalJSON accepts a JSON string in any ParseTime layout.
func (t *Time) UnmarshalJSON(
	data []byte,
) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid date %s: expected a string", data)
	}

	return t.UnmarshalParam(s)
}

// Ptr returns the wrapped time, or nil when t is nil.
func (t *Time) Ptr() *time.Time {
	if t == nil {
		return nil
	}

	v := t.Time
	return &v
}
