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

package config

// Config represents the root structure of the YAML configuration file.
// This struct is used to unmarshal configuration data from Viper.
type Config struct {
	API       API       `mapstructure:"api"`
	Auth      Auth      `mapstructure:"auth"`
	Database  Database  `mapstructure:"database"`
	Audit     Audit     `mapstructure:"audit"`
	Telemetry Telemetry `mapstructure:"telemetry"`
	// Debug enable or disable debug option set from CLI.
	Debug bool `mapstructure:"debug"`
}

// API configuration settings.
type API struct {
	Server Server   `mapstructure:"server"`
	Audit  APIAudit `mapstructure:"audit"`
}

// Server configuration settings.
type Server struct {
	// Host the server will bind to.
	Host string `mapstructure:"host"`
	// Port the server will bind to.
	Port int `mapstructure:"port" validate:"gte=0,lte=65535"`
	// CORS Cross-Origin Resource Sharing (CORS) settings for the server.
	CORS CORS `mapstructure:"cors"`
}

// CORS represents the CORS (Cross-Origin Resource Sharing) settings.
type CORS struct {
	// List of origins allowed to access the server (e.g., "foo").
	AllowOrigins []string `mapstructure:"allow_origins,omitempty"`
}

// APIAudit controls the request audit middleware.
type APIAudit struct {
	// ExcludePaths lists path prefixes that do not produce audit records.
	ExcludePaths []string `mapstructure:"exclude_paths"`
	// WriteTimeout bounds a single audit write, e.g. "5s".
	WriteTimeout string `mapstructure:"write_timeout"`
}

// Auth configuration settings.
type Auth struct {
	// Mode is the access mode: "required" or "open". The legacy values
	// "token" and "public" are accepted as aliases.
	Mode string `mapstructure:"mode" validate:"required,oneof=required open token public"`
	// SigningKey is the key used for signing or validating tokens.
	SigningKey string `mapstructure:"signing_key" validate:"required"`
	// Algorithm is the HMAC signing algorithm.
	Algorithm string `mapstructure:"algorithm" validate:"required,oneof=HS256 HS384 HS512"`
	// ExpirationHours is the token lifetime.
	ExpirationHours int `mapstructure:"expiration_hours" validate:"gt=0"`
	// Bootstrap describes the administrator provisioned at startup.
	Bootstrap Bootstrap `mapstructure:"bootstrap"`
}

// Bootstrap holds the administrator account created when absent.
type Bootstrap struct {
	Enabled  bool   `mapstructure:"enabled"`
	Username string `mapstructure:"username" validate:"required_if=Enabled true"`
	Password string `mapstructure:"password" validate:"required_if=Enabled true"`
	Role     string `mapstructure:"role"     validate:"omitempty,oneof=admin user"`
}

// Database configuration settings.
type Database struct {
	// Driver is the database/sql driver name: "sqlite3" or "postgres".
	Driver string `mapstructure:"driver" validate:"required,oneof=sqlite3 postgres"`
	// DSN is the file path for sqlite3 or the connection string for postgres.
	DSN string `mapstructure:"dsn" validate:"required"`
	// MaxOpenConns limits the pool size. Ignored for sqlite3, which always uses one.
	MaxOpenConns int `mapstructure:"max_open_conns"`
	// BusyTimeoutMs is the sqlite3 busy timeout in milliseconds.
	BusyTimeoutMs int `mapstructure:"busy_timeout_ms"`
}

// Audit configuration for audit record persistence.
type Audit struct {
	// Store selects the backend: "database" or "nats".
	Store string    `mapstructure:"store" validate:"required,oneof=database nats"`
	NATS  AuditNATS `mapstructure:"nats"`
}

// AuditNATS configuration for the audit log KV bucket.
type AuditNATS struct {
	// URL of the NATS server, e.g. "nats://localhost:4222".
	URL string `mapstructure:"url"`
	// Bucket is the KV bucket name for audit records.
	Bucket   string `mapstructure:"bucket"`
	Storage  string `mapstructure:"storage"` // "file" or "memory"
	Replicas int    `mapstructure:"replicas"`
}

// Telemetry configuration settings.
type Telemetry struct {
	Tracing TracingConfig `mapstructure:"tracing,omitempty"`
	Metrics MetricsConfig `mapstructure:"metrics,omitempty"`
}

// MetricsConfig configuration settings for Prometheus metrics.
type MetricsConfig struct {
	// Path is the HTTP path for the Prometheus scrape endpoint.
	// Defaults to "/metrics" when empty.
	Path string `mapstructure:"path"`
}

// TracingConfig configuration settings for distributed tracing.
type TracingConfig struct {
	// Enabled enables or disables tracing.
	Enabled bool `mapstructure:"enabled"`
	// Exporter selects the trace exporter: "stdout" or "otlp".
	Exporter string `mapstructure:"exporter"`
	// OTLPEndpoint is the gRPC endpoint for the OTLP exporter (e.g., "localhost:4317").
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}
