package report

import (
	"io"

	"github.com/spencrc/cssmin"
)

// Format represents the report output format.
type Format string

const (
	// FormatIssues shows only issues in golangci-lint format (CI-friendly)
	FormatIssues Format = "issues"
	// FormatSummary shows the per-file size table only
	FormatSummary Format = "summary"
	// FormatFull shows issues plus the size table
	FormatFull Format = "full"
	// FormatJSON exports structured data in JSON format (tooling integration)
	FormatJSON Format = "json"
)

// DetermineFormat selects the output format based on flags.
// The default follows golangci-lint's UX: issues only, clean and fast.
func DetermineFormat(formatFlag string, quiet bool) Format {
	if quiet {
		return FormatIssues // Will be suppressed by the caller
	}

	switch formatFlag {
	case "issues":
		return FormatIssues
	case "summary":
		return FormatSummary
	case "full":
		return FormatFull
	case "json":
		return FormatJSON
	}
	return FormatFull
}

// WriteOutput writes the minification result in the specified format.
func WriteOutput(w io.Writer, result *cssmin.Result, format Format, opts Options) error {
	switch format {
	case FormatIssues:
		r := NewReporter(w, opts)
		r.PrintIssues(result.Issues())

	case FormatSummary:
		r := NewReporter(w, opts)
		r.PrintSummary(result)

	case FormatFull:
		r := NewReporter(w, opts)
		r.PrintIssues(result.Issues())
		r.PrintSummary(result)

	case FormatJSON:
		return WriteJSON(w, result)
	}
	return nil
}
