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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// ensure KVStore implements Store at compile time.
var _ Store = (*KVStore)(nil)

// marshalJSON is replaceable in tests.
var marshalJSON = json.Marshal

// KeyValue is the subset of nats.KeyValue used by KVStore.
type KeyValue interface {
	Put(key string, value []byte) (uint64, error)
	Get(key string) (nats.KeyValueEntry, error)
	Keys(opts ...nats.WatchOpt) ([]string, error)
}

// KVStore implements Store backed by a NATS KeyValue bucket. Keys are
// zero-padded nanosecond timestamps so lexical order is time order.
type KVStore struct {
	kv     KeyValue
	logger *slog.Logger
	now    func() time.Time
}

// NewKVStore creates a new KVStore.
func NewKVStore(
	logger *slog.Logger,
	kv KeyValue,
) *KVStore {
	return &KVStore{
		kv:     kv,
		logger: logger,
		now:    time.Now,
	}
}

// Key returns the bucket key for a record written at ts.
func Key(
	ts time.Time,
	suffix string,
) string {
	return fmt.Sprintf("%020d-%s", ts.UnixNano(), suffix)
}

// Write persists a record to the KV bucket. The record ID is set to its
// nanosecond timestamp.
func (s *KVStore) Write(
	_ context.Context,
	record Record,
) error {
	r := record.Normalize()
	if r.Timestamp.IsZero() {
		r.Timestamp = s.now().UTC()
	}
	r.ID = r.Timestamp.UnixNano()

	data, err := marshalJSON(r)
	if err != nil {
		return fmt.Errorf("marshal audit record: %w", err)
	}

	if _, err := s.kv.Put(Key(r.Timestamp, uuid.NewString()), data); err != nil {
		return fmt.Errorf("put audit record: %w", err)
	}

	return nil
}

// List returns matching records newest first. Filtering happens after
// reading each key, so cost grows with bucket size.
func (s *KVStore) List(
	_ context.Context,
	filter Filter,
	page int,
	limit int,
) ([]Record, int, error) {
	if err := validatePage(page, limit); err != nil {
		return nil, 0, err
	}

	keys, err := s.kv.Keys()
	if err != nil {
		// nats.ErrNoKeysFound means the bucket is empty
		if errors.Is(err, nats.ErrNoKeysFound) {
			return []Record{}, 0, nil
		}
		return nil, 0, fmt.Errorf("list audit keys: %w", err)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	matched := make([]Record, 0, len(keys))
	for _, key := range keys {
		kve, err := s.kv.Get(key)
		if err != nil {
			s.logger.Warn(
				"failed to get audit record",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			continue
		}

		var r Record
		if err := json.Unmarshal(kve.Value(), &r); err != nil {
			s.logger.Warn(
				"failed to unmarshal audit record",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			continue
		}

		if filter.Match(r) {
			matched = append(matched, r)
		}
	}

	total := len(matched)
	offset := (page - 1) * limit
	if offset >= total {
		return []Record{}, total, nil
	}

	end := offset + limit
	if end > total {
		end = total
	}

	return matched[offset:end], total, nil
}
