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

// Package audit derives and persists the per-request audit trail.
package audit

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Column limits for persisted records.
const (
	MaxResourceLen    = 100
	MaxMethodLen      = 10
	MaxDescriptionLen = 500
	MaxRequestIDLen   = 100
	MaxClientUUIDLen  = 100
)

// Record is a single audit log row. It is written once and never mutated.
type Record struct {
	// ID is assigned by the store.
	ID int64 `json:"id"`
	// Timestamp is when the request completed, in UTC.
	Timestamp time.Time `json:"timestamp"`
	// Resource is the request path without the /api/ prefix, e.g. "controllers/12".
	Resource string `json:"resource"`
	// Method is the HTTP method.
	Method string `json:"method"`
	// ClientUUID is the caller-supplied X-Client-UUID header.
	ClientUUID *string `json:"client_uuid"`
	// RequestID is the correlation id of the request.
	RequestID string `json:"request_id"`
	// Description is the human-readable summary derived from route and method.
	Description string `json:"description"`
	// StatusCode is the response status.
	StatusCode int `json:"status_code"`
	// UserID is the resolved principal, if any.
	UserID *int64 `json:"user_id"`
}

// Normalize returns r with a UTC timestamp and fields truncated to the
// column limits.
func (r Record) Normalize() Record {
	r.Timestamp = r.Timestamp.UTC()
	r.Resource = truncate(r.Resource, MaxResourceLen)
	r.Method = truncate(r.Method, MaxMethodLen)
	r.Description = truncate(r.Description, MaxDescriptionLen)
	r.RequestID = truncate(r.RequestID, MaxRequestIDLen)
	if r.ClientUUID != nil {
		clientUUID := truncate(*r.ClientUUID, MaxClientUUIDLen)
		r.ClientUUID = &clientUUID
	}

	return r
}

// CSV renders the record as
// "timestamp,resource,method,client_uuid,request_id,description" with a
// millisecond timestamp.
func (r Record) CSV() string {
	var clientUUID string
	if r.ClientUUID != nil {
		clientUUID = *r.ClientUUID
	}

	return strings.Join([]string{
		r.Timestamp.UTC().Format("2006-01-02T15:04:05.000"),
		r.Resource,
		r.Method,
		clientUUID,
		r.RequestID,
		r.Description,
	}, ",")
}

// Filter narrows a List call. Zero values match everything.
type Filter struct {
	Start      *time.Time
	End        *time.Time
	Method     string
	Resource   string
	ClientUUID string
}

// Match reports whether r satisfies f.
func (f Filter) Match(
	r Record,
) bool {
	if f.Start != nil && r.Timestamp.Before(*f.Start) {
		return false
	}
	if f.End != nil && r.Timestamp.After(*f.End) {
		return false
	}
	if f.Method != "" && r.Method != f.Method {
		return false
	}
	if f.Resource != "" && r.Resource != f.Resource {
		return false
	}
	if f.ClientUUID != "" && (r.ClientUUID == nil || *r.ClientUUID != f.ClientUUID) {
		return false
	}

	return true
}

// Store persists and queries audit records.
type Store interface {
	// Write persists a record.
	Write(ctx context.Context, record Record) error
	// List returns one page of matching records, newest first, and the
	// total number of matches.
	List(ctx context.Context, filter Filter, page int, limit int) ([]Record, int, error)
}

func truncate(
	s string,
	n int,
) string {
	if len(s) <= n {
		return s
	}

	// Cut on a rune boundary.
	cut := 0
	for i := range s {
		if i > n {
			break
		}
		cut = i
	}

	return s[:cut]
}

func validatePage(
	page int,
	limit int,
) error {
	if page < 1 {
		return fmt.Errorf("page must be at least 1")
	}
	if limit < 1 {
		return fmt.Errorf("limit must be at least 1")
	}

	return nil
}
