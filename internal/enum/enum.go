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

// Package enum defines the closed string enumerations used by device and
// event records. Each type parses once at the API boundary and rejects
// anything outside its variant set with a *ParseError.
package enum

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError reports a value outside an enumeration's variant set.
type ParseError struct {
	// Field is the input field the enumeration backs, e.g. "type_device".
	Field string
	// Value is the rejected input.
	Value string
	// Allowed lists the accepted variants.
	Allowed []string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"invalid %s value %q (allowed: %s)",
		e.Field,
		e.Value,
		strings.Join(e.Allowed, ", "),
	)
}

// parse matches value exactly against allowed.
func parse[T ~string](
	field string,
	value string,
	allowed []T,
) (T, error) {
	for _, a := range allowed {
		if string(a) == value {
			return a, nil
		}
	}

	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}

	return "", &ParseError{Field: field, Value: value, Allowed: names}
}

// unmarshalJSON decodes a JSON string and parses it with fn.
func unmarshalJSON[T ~string](
	data []byte,
	dst *T,
	fn func(string) (T, error),
) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	v, err := fn(s)
	if err != nil {
		return err
	}

	*dst = v
	return nil
}
