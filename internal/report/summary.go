package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow, color.Bold)
	red    = color.New(color.FgRed)
)

// PrintSummary writes a human readable outcome of the batch to w.
func PrintSummary(w io.Writer, report Report) {
	for _, f := range report.Files {
		switch {
		case f.Failed:
			red.Fprintf(w, "  ✗ %s (%s)\n", f.File, f.Account)
		default:
			green.Fprintf(w, "  → %s (%s): %d converted, %d skipped\n", f.File, f.Account, f.Converted, f.Skipped)
		}
	}

	if len(report.InvalidRows) > 0 {
		yellow.Fprintf(w, "\n%d invalid row(s):\n", len(report.InvalidRows))
		for _, row := range report.InvalidRows {
			fmt.Fprintf(w, "  %s:%d", row.File, row.Row)
			for _, msg := range row.Errors {
				fmt.Fprintf(w, " [%s]", msg)
			}
			fmt.Fprintln(w)
		}
	}

	if len(report.UndefinedContents) > 0 {
		yellow.Fprintf(w, "\n%d undefined name(s), add them to the catalog:\n", len(report.UndefinedContents))
		for _, row := range report.UndefinedContents {
			if row.ItemName != "" {
				fmt.Fprintf(w, "  %s: item '%s'\n", row.AccountFile, row.ItemName)
			} else {
				fmt.Fprintf(w, "  %s: store '%s'\n", row.AccountFile, row.StoreName)
			}
		}
	}

	if report.Fatal != nil {
		red.Fprintf(w, "\nError: %v\n", report.Fatal)
	}

	if !report.HasErrors() {
		green.Fprintln(w, "\nAll rows converted.")
	}
}
