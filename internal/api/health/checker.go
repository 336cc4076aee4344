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

package health

import (
	"context"
	"errors"
	"fmt"
)

// StoreChecker checks the database and the audit store.
type StoreChecker struct {
	// DBCheck verifies database connectivity.
	DBCheck func(ctx context.Context) error
	// AuditCheck verifies the audit store when it is not the database.
	AuditCheck func(ctx context.Context) error
}

// CheckHealth runs all checks and joins their errors.
func (c *StoreChecker) CheckHealth(
	ctx context.Context,
) error {
	var errs []error

	if c.DBCheck != nil {
		if err := c.DBCheck(ctx); err != nil {
			errs = append(errs, fmt.Errorf("database: %w", err))
		}
	}

	if c.AuditCheck != nil {
		if err := c.AuditCheck(ctx); err != nil {
			errs = append(errs, fmt.Errorf("audit store: %w", err))
		}
	}

	return errors.Join(errs...)
}
