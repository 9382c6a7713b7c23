// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"strings"
	"time"

	schema "github.com/ticketdesk/ticketdesk/lib/schema/ticket"
)

// csvHeader is the fixed header row of every export. The field order
// here defines the column order of the data rows.
const csvHeader = "Date,Name,Email,Category,Priority,Status,Description"

// csvByteOrderMark prefixes the output so spreadsheet tools detect
// UTF-8 instead of guessing a legacy codepage from the first bytes.
const csvByteOrderMark = "\uFEFF"

// CSV serializes tickets to RFC-4180-style CSV text: BOM, header row,
// one row per ticket, rows joined by \n with no trailing newline.
// An empty input produces header-only output; callers that want to
// refuse empty exports must check before calling (the export action
// does).
func CSV(tickets []schema.Ticket) string {
	rows := make([]string, 0, len(tickets)+1)
	rows = append(rows, csvHeader)
	for _, t := range tickets {
		fields := []string{
			escapeCSVField(t.Date),
			escapeCSVField(t.Name),
			escapeCSVField(t.Email),
			escapeCSVField(t.Category),
			escapeCSVField(string(t.Priority)),
			escapeCSVField(string(t.Status)),
			escapeCSVField(t.Description),
		}
		rows = append(rows, strings.Join(fields, ","))
	}
	return csvByteOrderMark + strings.Join(rows, "\n")
}

// escapeCSVField quotes a value when it contains a comma, a double
// quote, or any newline character, doubling internal quotes. Values
// that need no quoting pass through untouched.
func escapeCSVField(value string) string {
	if !strings.ContainsAny(value, ",\"\n\r") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// ExportFileName names an export file after the calendar date of the
// export: tickets-2026-03-14.csv.
func ExportFileName(now time.Time) string {
	return "tickets-" + now.Format("2006-01-02") + ".csv"
}
