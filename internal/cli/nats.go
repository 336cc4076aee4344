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

// Package cli provides shared utilities for the gop commands.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/lsirikh/GopApiServer/internal/config"
)

// DefaultAuditBucket is used when audit.nats.bucket is empty.
const DefaultAuditBucket = "gop-audit"

// natsConnect is replaced in tests.
var natsConnect = nats.Connect

// ParseStorageType maps "memory"/"file" strings to nats.StorageType.
func ParseStorageType(
	s string,
) nats.StorageType {
	if s == "memory" {
		return nats.MemoryStorage
	}

	return nats.FileStorage
}

// BuildAuditKVConfig builds the KV bucket config for the audit store.
func BuildAuditKVConfig(
	cfg config.AuditNATS,
) *nats.KeyValueConfig {
	bucket := cfg.Bucket
	if bucket == "" {
		bucket = DefaultAuditBucket
	}

	replicas := cfg.Replicas
	if replicas < 1 {
		replicas = 1
	}

	return &nats.KeyValueConfig{
		Bucket:      bucket,
		Description: "GOP API audit records",
		Storage:     ParseStorageType(cfg.Storage),
		Replicas:    replicas,
	}
}

// ConnectAuditKV connects to the NATS server in cfg and binds the audit
// bucket, creating it when missing. The returned close function drains the
// connection.
func ConnectAuditKV(
	logger *slog.Logger,
	cfg config.AuditNATS,
) (nats.KeyValue, func(), error) {
	url := cfg.URL
	if url == "" {
		url = nats.DefaultURL
	}

	nc, err := natsConnect(url, nats.Name("gop-api"))
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to nats %s: %w", url, err)
	}
	closeFn := func() { _ = nc.Drain() }

	js, err := nc.JetStream()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("creating jetstream context: %w", err)
	}

	kvConfig := BuildAuditKVConfig(cfg)

	kv, err := js.KeyValue(kvConfig.Bucket)
	if errors.Is(err, nats.ErrBucketNotFound) {
		logger.Info("creating audit bucket", slog.String("bucket", kvConfig.Bucket))
		kv, err = js.CreateKeyValue(kvConfig)
	}
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("binding audit bucket %s: %w", kvConfig.Bucket, err)
	}

	return kv, closeFn, nil
}
