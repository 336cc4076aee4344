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

// Package config defines the server configuration and its defaults.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/lsirikh/GopApiServer/internal/validation"
)

// SetDefaults registers default values for every optional setting.
func SetDefaults(
	v *viper.Viper,
) {
	v.SetDefault("api.server.host", "0.0.0.0")
	v.SetDefault("api.server.port", 8000)
	v.SetDefault("api.server.cors.allow_origins", []string{"*"})
	v.SetDefault("api.audit.exclude_paths", []string{})
	v.SetDefault("api.audit.write_timeout", "5s")

	v.SetDefault("auth.mode", "required")
	v.SetDefault("auth.algorithm", "HS256")
	v.SetDefault("auth.expiration_hours", 24)
	v.SetDefault("auth.bootstrap.enabled", true)
	v.SetDefault("auth.bootstrap.username", "admin")
	v.SetDefault("auth.bootstrap.password", "admin123")
	v.SetDefault("auth.bootstrap.role", "admin")

	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.dsn", "./data/gop.db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.busy_timeout_ms", 5000)

	v.SetDefault("audit.store", "database")
	v.SetDefault("audit.nats.url", "nats://localhost:4222")
	v.SetDefault("audit.nats.bucket", "gop-audit")
	v.SetDefault("audit.nats.storage", "file")
	v.SetDefault("audit.nats.replicas", 1)

	v.SetDefault("telemetry.metrics.path", "/metrics")
}

// Validate checks the configuration against its struct tags and the
// cross-field rules that tags cannot express.
func Validate(
	cfg *Config,
) error {
	if errMsg, ok := validation.Struct(cfg); !ok {
		return fmt.Errorf("invalid configuration: %s", errMsg)
	}

	if cfg.Audit.Store == "nats" && (cfg.Audit.NATS.URL == "" || cfg.Audit.NATS.Bucket == "") {
		return fmt.Errorf("invalid configuration: audit.nats.url and audit.nats.bucket are required when audit.store is nats")
	}

	return nil
}
