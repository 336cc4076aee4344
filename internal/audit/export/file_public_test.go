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

package export_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/lsirikh/GopApiServer/internal/audit"
	"github.com/lsirikh/GopApiServer/internal/audit/export"
)

type FileExporterPublicTestSuite struct {
	suite.Suite

	ctx context.Context
	fs  afero.Fs
}

func (suite *FileExporterPublicTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.fs = afero.NewMemMapFs()
}

func (suite *FileExporterPublicTestSuite) readLines(
	path string,
) []string {
	data, err := afero.ReadFile(suite.fs, path)
	suite.Require().NoError(err)

	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func (suite *FileExporterPublicTestSuite) TestOpenWriteClose() {
	tests := []struct {
		name         string
		path         string
		format       export.Format
		records      []audit.Record
		validateFunc func(path string)
	}{
		{
			name:    "when jsonl writes one object per line",
			path:    "/out/audit.jsonl",
			format:  export.FormatJSONL,
			records: []audit.Record{newRecord("r1"), newRecord("r2"), newRecord("r3")},
			validateFunc: func(path string) {
				lines := suite.readLines(path)
				suite.Len(lines, 3)

				for i, id := range []string{"r1", "r2", "r3"} {
					var r audit.Record
					suite.NoError(json.Unmarshal([]byte(lines[i]), &r))
					suite.Equal(id, r.RequestID)
				}
			},
		},
		{
			name:    "when csv writes the log line format",
			path:    "audit.csv",
			format:  export.FormatCSV,
			records: []audit.Record{newRecord("r1")},
			validateFunc: func(path string) {
				lines := suite.readLines(path)
				suite.Equal(
					[]string{"2026-02-21T10:30:00.000,controllers,GET,,r1,Controller list read"},
					lines,
				)
			},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			sut := export.NewFileExporter(suite.fs, tc.path, tc.format)

			suite.Require().NoError(sut.Open(suite.ctx))
			for _, r := range tc.records {
				suite.Require().NoError(sut.Write(suite.ctx, r))
			}
			suite.Require().NoError(sut.Close(suite.ctx))

			tc.validateFunc(tc.path)
		})
	}
}

func (suite *FileExporterPublicTestSuite) TestOpenTruncatesExisting() {
	suite.Require().NoError(afero.WriteFile(suite.fs, "audit.jsonl", []byte("old\nold\nold\n"), 0o640))

	sut := export.NewFileExporter(suite.fs, "audit.jsonl", export.FormatJSONL)
	suite.Require().NoError(sut.Open(suite.ctx))
	suite.Require().NoError(sut.Write(suite.ctx, newRecord("r1")))
	suite.Require().NoError(sut.Close(suite.ctx))

	suite.Len(suite.readLines("audit.jsonl"), 1)
}

func (suite *FileExporterPublicTestSuite) TestOpenError() {
	sut := export.NewFileExporter(afero.NewReadOnlyFs(suite.fs), "audit.jsonl", export.FormatJSONL)

	err := sut.Open(suite.ctx)
	suite.Error(err)
	suite.Contains(err.Error(), "opening export file")
}

func (suite *FileExporterPublicTestSuite) TestNotOpened() {
	sut := export.NewFileExporter(suite.fs, "audit.jsonl", export.FormatJSONL)

	err := sut.Write(suite.ctx, newRecord("r1"))
	suite.Error(err)
	suite.Contains(err.Error(), "exporter not opened")

	err = sut.Close(suite.ctx)
	suite.Error(err)
	suite.Contains(err.Error(), "exporter not opened")
}

func (suite *FileExporterPublicTestSuite) TestParseFormat() {
	tests := []struct {
		input   string
		want    export.Format
		wantErr bool
	}{
		{input: "jsonl", want: export.FormatJSONL},
		{input: "csv", want: export.FormatCSV},
		{input: "xml", wantErr: true},
	}

	for _, tc := range tests {
		suite.Run(tc.input, func() {
			got, err := export.ParseFormat(tc.input)
			if tc.wantErr {
				suite.Error(err)
				return
			}
			suite.NoError(err)
			suite.Equal(tc.want, got)
		})
	}
}

func TestFileExporterPublicTestSuite(t *testing.T) {
	suite.Run(t, new(FileExporterPublicTestSuite))
}
