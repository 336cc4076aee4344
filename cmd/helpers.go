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

package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/lsirikh/GopApiServer/internal/audit"
	"github.com/lsirikh/GopApiServer/internal/authtoken"
	"github.com/lsirikh/GopApiServer/internal/cli"
	"github.com/lsirikh/GopApiServer/internal/database"
)

// openDatabase opens the configured database and applies pending
// migrations.
func openDatabase(
	ctx context.Context,
) *database.DB {
	db, err := database.Open(ctx, appConfig.Database)
	if err != nil {
		cli.LogFatal(logger, "failed to open database", err, "driver", appConfig.Database.Driver)
	}

	applied, err := db.Migrate(ctx)
	if err != nil {
		_ = db.Close()
		cli.LogFatal(logger, "failed to migrate database", err)
	}
	if len(applied) > 0 {
		logger.Info("applied migrations", slog.Any("versions", applied))
	}

	return db
}

// newTokenCodec builds the token signer from the auth settings.
func newTokenCodec() *authtoken.Token {
	codec, err := authtoken.New(
		logger,
		appConfig.Auth.SigningKey,
		appConfig.Auth.Algorithm,
		time.Duration(appConfig.Auth.ExpirationHours)*time.Hour,
	)
	if err != nil {
		cli.LogFatal(logger, "failed to create token codec", err)
	}

	return codec
}

// auditBackend is the selected audit store with its health check and
// cleanup.
type auditBackend struct {
	Store audit.Store
	// Check is nil when the store is the database itself.
	Check func(ctx context.Context) error
	Close cli.CleanupFunc
}

// openAuditStore returns the audit store selected by audit.store.
func openAuditStore(
	db *database.DB,
) auditBackend {
	if appConfig.Audit.Store != "nats" {
		return auditBackend{
			Store: audit.NewSQLStore(db),
			Close: func(context.Context) error { return nil },
		}
	}

	kv, closeFn, err := cli.ConnectAuditKV(logger, appConfig.Audit.NATS)
	if err != nil {
		cli.LogFatal(logger, "failed to connect audit store", err, "url", appConfig.Audit.NATS.URL)
	}

	return auditBackend{
		Store: audit.NewKVStore(logger, kv),
		Check: func(context.Context) error {
			_, err := kv.Status()
			return err
		},
		Close: func(context.Context) error {
			closeFn()
			return nil
		},
	}
}
