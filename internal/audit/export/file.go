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

package export

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/lsirikh/GopApiServer/internal/audit"
)

// Format selects the line encoding of a FileExporter.
type Format string

// Formats.
const (
	// FormatJSONL writes one JSON object per line.
	FormatJSONL Format = "jsonl"
	// FormatCSV writes "timestamp,resource,method,client_uuid,request_id,description" lines.
	FormatCSV Format = "csv"
)

// ParseFormat returns the Format for s.
func ParseFormat(
	s string,
) (Format, error) {
	switch Format(s) {
	case FormatJSONL, FormatCSV:
		return Format(s), nil
	}

	return "", fmt.Errorf("invalid export format %q (allowed: jsonl, csv)", s)
}

// FileExporter writes audit records to a file, one per line.
type FileExporter struct {
	Path   string
	Format Format

	fs     afero.Fs
	file   io.WriteCloser
	writer *bufio.Writer
}

// NewFileExporter creates a FileExporter writing path on fs.
func NewFileExporter(
	fs afero.Fs,
	path string,
	format Format,
) *FileExporter {
	return &FileExporter{
		Path:   path,
		Format: format,
		fs:     fs,
	}
}

// Open creates the output file and prepares for writing.
func (e *FileExporter) Open(
	_ context.Context,
) error {
	if dir := filepath.Dir(e.Path); dir != "." {
		if err := e.fs.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}

	f, err := e.fs.OpenFile(e.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return fmt.Errorf("opening export file: %w", err)
	}

	e.file = f
	e.writer = bufio.NewWriter(f)

	return nil
}

// Write encodes a record and writes it as a single line.
func (e *FileExporter) Write(
	_ context.Context,
	record audit.Record,
) error {
	if e.writer == nil {
		return fmt.Errorf("exporter not opened")
	}

	var data []byte
	switch e.Format {
	case FormatCSV:
		data = []byte(record.CSV())
	default:
		var err error
		if data, err = json.Marshal(record); err != nil {
			return fmt.Errorf("marshaling record: %w", err)
		}
	}

	if _, err := e.writer.Write(data); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}

	if err := e.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("writing newline: %w", err)
	}

	return nil
}

// Close flushes the buffer and closes the file.
func (e *FileExporter) Close(
	_ context.Context,
) error {
	if e.writer == nil {
		return fmt.Errorf("exporter not opened")
	}

	if err := e.writer.Flush(); err != nil {
		return fmt.Errorf("flushing writer: %w", err)
	}

	if err := e.file.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}

	return nil
}
