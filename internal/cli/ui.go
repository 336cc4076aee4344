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

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lsirikh/GopApiServer/internal/audit"
	"github.com/lsirikh/GopApiServer/internal/auth"
)

// Theme colors for terminal UI rendering.
var (
	Purple = lipgloss.Color("99")
	Gray   = lipgloss.Color("245")
	White  = lipgloss.Color("15")
	Teal   = lipgloss.Color("#06ffa5")
)

// Reusable inline styles for compact key-value output.
var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(Purple)
	valueStyle = lipgloss.NewStyle().Foreground(Teal)

	// DimStyle is a muted style for secondary text.
	DimStyle = lipgloss.NewStyle().Foreground(Gray)
)

// Section represents a header with its corresponding rows.
type Section struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// timeLayout renders timestamps in tables.
const timeLayout = "2006-01-02 15:04:05"

// BuildPrincipalTable builds headers and rows for a principal listing.
// Password hashes are never rendered.
func BuildPrincipalTable(
	principals []auth.Principal,
) ([]string, [][]string) {
	headers := []string{"ID", "USERNAME", "ROLE", "CREATED"}

	rows := make([][]string, 0, len(principals))
	for _, p := range principals {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Username,
			string(p.Role),
			p.CreatedAt.UTC().Format(timeLayout),
		})
	}

	return headers, rows
}

// BuildAuditTable builds headers and rows for an audit record listing.
func BuildAuditTable(
	records []audit.Record,
) ([]string, [][]string) {
	headers := []string{
		"TIMESTAMP", "METHOD", "RESOURCE", "STATUS", "DESCRIPTION", "CLIENT", "USER", "REQUEST ID",
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Timestamp.UTC().Format(timeLayout),
			r.Method,
			r.Resource,
			strconv.Itoa(r.StatusCode),
			r.Description,
			SafeString(r.ClientUUID),
			SafeInt64(r.UserID),
			r.RequestID,
		})
	}

	return headers, rows
}

// compactMaxColWidth is the maximum column width before truncation.
const compactMaxColWidth = 50

// PrintCompactTable renders a compact column-aligned table to w.
// Headers are uppercase purple and data rows alternate teal and white.
// Multi-line cell values are flattened to a single line and long values
// are truncated with an ellipsis.
func PrintCompactTable(
	w io.Writer,
	sections []Section,
) {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(Purple)
	evenStyle := lipgloss.NewStyle().Foreground(Teal)
	oddStyle := lipgloss.NewStyle().Foreground(White)

	const colGap = 2

	for _, section := range sections {
		if section.Title != "" {
			_, _ = fmt.Fprintf(w, "\n  %s:\n", headerStyle.Render(section.Title))
		} else {
			_, _ = fmt.Fprintln(w)
		}

		flatRows := make([][]string, len(section.Rows))
		for r, row := range section.Rows {
			flat := make([]string, len(row))
			for c, cell := range row {
				flat[c] = strings.Join(strings.Fields(cell), " ")
			}
			flatRows[r] = flat
		}

		widths := columnWidths(section.Headers, flatRows)

		var hdr strings.Builder
		hdr.WriteString("  ")
		for i, h := range section.Headers {
			hdr.WriteString(headerStyle.Render(pad(strings.ToUpper(h), widths[i]+colGap, i == len(section.Headers)-1)))
		}
		_, _ = fmt.Fprintln(w, hdr.String())

		for r, row := range flatRows {
			rowStyle := evenStyle
			if r%2 != 0 {
				rowStyle = oddStyle
			}

			var line strings.Builder
			line.WriteString("  ")
			for i := range section.Headers {
				cell := ""
				if i < len(row) {
					cell = truncate(row[i], widths[i])
				}
				line.WriteString(rowStyle.Render(pad(cell, widths[i]+colGap, i == len(section.Headers)-1)))
			}
			_, _ = fmt.Fprintln(w, line.String())
		}
	}
}

// columnWidths returns the widest cell per column, capped at
// compactMaxColWidth.
func columnWidths(
	headers []string,
	rows [][]string,
) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := len([]rune(cell)); i < len(widths) && n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i := range widths {
		widths[i] = min(widths[i], compactMaxColWidth)
	}

	return widths
}

func pad(
	s string,
	width int,
	last bool,
) string {
	if last {
		return s
	}

	return fmt.Sprintf("%-*s", width, s)
}

func truncate(
	s string,
	width int,
) string {
	r := []rune(s)
	if len(r) <= width || width < 1 {
		return s
	}

	return string(r[:width-1]) + "…"
}

// KVMinColWidth is the minimum visual width for each key-value column.
// A consistent minimum ensures columns align across consecutive PrintKV calls.
const KVMinColWidth = 20

// PrintKV prints labeled key-value pairs on a single indented line to w.
// Arguments alternate between labels and values: label1, val1, label2, val2, ...
func PrintKV(
	w io.Writer,
	pairs ...string,
) {
	if len(pairs)%2 != 0 || len(pairs) == 0 {
		return
	}

	rendered := make([]string, 0, len(pairs)/2)
	maxWidth := KVMinColWidth
	for i := 0; i < len(pairs); i += 2 {
		pair := labelStyle.Render(pairs[i]+":") + " " + valueStyle.Render(pairs[i+1])
		rendered = append(rendered, pair)
		if width := lipgloss.Width(pair); width > maxWidth {
			maxWidth = width
		}
	}

	var line strings.Builder
	line.WriteString("  ")
	for i, pair := range rendered {
		line.WriteString(pair)
		if i < len(rendered)-1 {
			line.WriteString(strings.Repeat(" ", maxWidth-lipgloss.Width(pair)+4))
		}
	}
	_, _ = fmt.Fprintln(w, line.String())
}

// FormatAge formats a duration as a human-readable age string.
// Returns "3d 4h", "12h 30m", "45m", "30s" etc.
func FormatAge(
	d time.Duration,
) string {
	if d <= 0 {
		return ""
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
}

// SafeString function to safely dereference string pointers.
func SafeString(
	s *string,
) string {
	if s != nil {
		return *s
	}
	return ""
}

// SafeInt64 converts a *int64 to a string. Returns "" if nil.
func SafeInt64(
	i *int64,
) string {
	if i != nil {
		return strconv.FormatInt(*i, 10)
	}
	return ""
}
