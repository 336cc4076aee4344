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
	"strconv"
	"strings"
)

// resourceNames maps the resource segment of a path to its display name.
var resourceNames = map[string]string{
	"controllers":  "Controller",
	"sensors":      "Sensor",
	"cameras":      "Camera",
	"detections":   "Detection event",
	"malfunctions": "Malfunction event",
	"connections":  "Connection event",
	"actions":      "Action event",
	"logs":         "API log",
	"login":        "Login",
	"me":           "Current user",
}

// actionNames maps HTTP methods to the verb used in descriptions.
var actionNames = map[string]string{
	"GET":    "read",
	"POST":   "create",
	"PUT":    "full-update",
	"PATCH":  "partial-update",
	"DELETE": "delete",
}

// ResourcePath strips the /api/ prefix and surrounding slashes from path.
func ResourcePath(
	path string,
) string {
	return strings.Trim(strings.TrimPrefix(path, "/api/"), "/")
}

// Describe derives the audit description for a completed request.
func Describe(
	method string,
	path string,
	status int,
) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")

	key := parts[len(parts)-1]
	detail := isID(key)
	if detail && len(parts) >= 2 {
		key = parts[len(parts)-2]
	}

	resource, ok := resourceNames[key]
	if !ok {
		resource = key
	}

	action, ok := actionNames[method]
	if !ok {
		action = method
	}

	var desc string
	switch {
	case status >= 400:
		desc = resource + " " + action + " failed"
	case !detail && method == "GET":
		desc = resource + " list read"
	default:
		desc = resource + " " + action
	}

	return strings.TrimSpace(desc)
}

// isID reports whether segment is a positive decimal integer.
func isID(
	segment string,
) bool {
	if segment == "" {
		return false
	}
	for _, c := range segment {
		if c < '0' || c > '9' {
			return false
		}
	}

	n, err := strconv.ParseUint(segment, 10, 64)
	return err == nil && n > 0
}
