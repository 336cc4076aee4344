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
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lsirikh/GopApiServer/internal/audit"
	"github.com/lsirikh/GopApiServer/internal/audit/export"
	"github.com/lsirikh/GopApiServer/internal/cli"
	"github.com/lsirikh/GopApiServer/internal/query"
)

var (
	auditListLimit  int
	auditListPage   int
	auditMethod     string
	auditResource   string
	auditClientUUID string
	auditStartDate  string
	auditEndDate    string

	auditExportOutput    string
	auditExportFormat    string
	auditExportBatchSize int
)

// auditCmd represents the audit command.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the API audit trail",
}

// auditListCmd represents the auditList command.
var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List audit records",
	Long: `List audit records newest first, read directly from the configured
audit store.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		filter := auditFilter()

		db := openDatabase(ctx)
		defer func() { _ = db.Close() }()

		backend := openAuditStore(db)
		defer func() { _ = backend.Close(ctx) }()

		records, total, err := backend.Store.List(ctx, filter, auditListPage, auditListLimit)
		if err != nil {
			cli.LogFatal(logger, "failed to list audit records", err)
		}

		if jsonOutput {
			out, err := json.Marshal(records)
			if err != nil {
				cli.LogFatal(logger, "failed to encode audit records", err)
			}
			fmt.Println(string(out))
			return
		}

		fmt.Println()
		cli.PrintKV(
			os.Stdout,
			"Total", strconv.Itoa(total),
			"Page", strconv.Itoa(auditListPage),
		)

		if len(records) == 0 {
			fmt.Println(cli.DimStyle.Render("  No audit records found."))
			return
		}

		headers, rows := cli.BuildAuditTable(records)
		cli.PrintCompactTable(os.Stdout, []cli.Section{
			{Title: "Audit Records", Headers: headers, Rows: rows},
		})
	},
}

// auditExportCmd represents the auditExport command.
var auditExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export audit records to a file",
	Long: `Export every audit record matching the filters to a file for
long-term retention, one record per line as JSON or CSV.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		filter := auditFilter()

		format, err := export.ParseFormat(auditExportFormat)
		if err != nil {
			cli.LogFatal(logger, "invalid export format", err)
		}

		db := openDatabase(ctx)
		defer func() { _ = db.Close() }()

		backend := openAuditStore(db)
		defer func() { _ = backend.Close(ctx) }()

		fetcher := func(ctx context.Context, page int, limit int) ([]audit.Record, int, error) {
			return backend.Store.List(ctx, filter, page, limit)
		}

		result, err := export.Run(
			ctx,
			logger,
			fetcher,
			export.NewFileExporter(appFs, auditExportOutput, format),
			auditExportBatchSize,
			func(exported int, total int) {
				logger.Debug(
					"export progress",
					slog.Int("exported", exported),
					slog.Int("total", total),
				)
			},
		)
		if err != nil {
			cli.LogFatal(logger, "failed to export audit records", err, "output", auditExportOutput)
		}

		fmt.Println()
		cli.PrintKV(
			os.Stdout,
			"Exported", strconv.Itoa(result.ExportedRecords),
			"Total", strconv.Itoa(result.TotalRecords),
		)
		cli.PrintKV(os.Stdout, "Output", auditExportOutput)
	},
}

// auditFilter builds the record filter from the shared flags.
func auditFilter() audit.Filter {
	filter := audit.Filter{
		Method:     strings.ToUpper(auditMethod),
		Resource:   auditResource,
		ClientUUID: auditClientUUID,
	}

	filter.Start = parseDateFlag("start-date", auditStartDate)
	filter.End = parseDateFlag("end-date", auditEndDate)

	return filter
}

func parseDateFlag(
	name string,
	value string,
) *time.Time {
	if value == "" {
		return nil
	}

	t, err := query.ParseTime(value)
	if err != nil {
		cli.LogFatal(logger, "invalid date flag", err, "flag", name)
	}

	return &t
}

func addAuditFilterFlags(
	cmd *cobra.Command,
) {
	cmd.Flags().StringVar(&auditMethod, "method", "", "Only records with this HTTP method")
	cmd.Flags().StringVar(&auditResource, "resource", "", "Only records for this resource, e.g. controllers/1")
	cmd.Flags().StringVar(&auditClientUUID, "client-uuid", "", "Only records from this client")
	cmd.Flags().StringVar(&auditStartDate, "start-date", "", "Only records at or after this date (ISO 8601)")
	cmd.Flags().StringVar(&auditEndDate, "end-date", "", "Only records at or before this date (ISO 8601)")
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.AddCommand(auditListCmd)
	auditCmd.AddCommand(auditExportCmd)

	addAuditFilterFlags(auditListCmd)
	auditListCmd.Flags().
		IntVar(&auditListLimit, "limit", 20, "Maximum number of records to return")
	auditListCmd.Flags().IntVar(&auditListPage, "page", 1, "Page number, starting at 1")

	addAuditFilterFlags(auditExportCmd)
	auditExportCmd.Flags().
		StringVar(&auditExportOutput, "output", "", "Output file path (required)")
	auditExportCmd.Flags().
		StringVar(&auditExportFormat, "format", string(export.FormatJSONL), "Output format (jsonl, csv)")
	auditExportCmd.Flags().
		IntVar(&auditExportBatchSize, "batch-size", 100, "Records fetched per page")
	_ = auditExportCmd.MarkFlagRequired("output")
}
