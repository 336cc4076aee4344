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

// Package validation provides a shared validator instance.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var instance = newValidator()

// Error is a field-qualified validation failure.
type Error struct {
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON name so API callers see the names they sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// tagHints maps validator tags to a readable rendering of the failure.
var tagHints = map[string]func(field string, fe validator.FieldError) string{
	"required": func(field string, _ validator.FieldError) string {
		return fmt.Sprintf("%s is required", field)
	},
	"required_if": func(field string, _ validator.FieldError) string {
		return fmt.Sprintf("%s is required", field)
	},
	"oneof": func(field string, fe validator.FieldError) string {
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	},
	"min": func(field string, fe validator.FieldError) string {
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	},
	"gte": func(field string, fe validator.FieldError) string {
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	},
	"gt": func(field string, fe validator.FieldError) string {
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	},
	"max": func(field string, fe validator.FieldError) string {
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	},
	"lte": func(field string, fe validator.FieldError) string {
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	},
	"email": func(field string, _ validator.FieldError) string {
		return fmt.Sprintf("%s must be a valid email", field)
	},
	"ip": func(field string, _ validator.FieldError) string {
		return fmt.Sprintf("%s must be a valid IP address", field)
	},
}

// Struct validates a struct and returns the error message and false if invalid.
func Struct(
	v any,
) (string, bool) {
	if err := instance.Struct(v); err != nil {
		return render(err), false
	}

	return "", true
}

// Var validates a single value against a tag expression.
func Var(
	field any,
	tag string,
) (string, bool) {
	if err := instance.Var(field, tag); err != nil {
		return render(err), false
	}

	return "", true
}

// Validate is Struct returning an *Error, for callers that propagate errors.
func Validate(
	v any,
) error {
	if msg, ok := Struct(v); !ok {
		return &Error{Message: msg}
	}

	return nil
}

func render(
	err error,
) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	return formatErrors(validationErrors)
}

// formatErrors renders each failure as "<field> <constraint>", joined by "; ".
func formatErrors(
	errs validator.ValidationErrors,
) string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		field := fe.Field()
		if field == "" {
			field = "value"
		}

		if fn, ok := tagHints[fe.Tag()]; ok {
			msgs = append(msgs, fn(field, fe))
			continue
		}

		msgs = append(msgs, fmt.Sprintf("%s failed on the '%s' validation", field, fe.Tag()))
	}

	return strings.Join(msgs, "; ")
}
