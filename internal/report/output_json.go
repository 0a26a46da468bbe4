package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/spencrc/cssmin"
)

// JSONOutput represents the structured JSON export schema.
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Files     []JSONFile  `json:"files"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains run-level counts.
type JSONSummary struct {
	FilesDiscovered int `json:"files_discovered"`
	FilesMinified   int `json:"files_minified"`
	FilesSkipped    int `json:"files_skipped"`
	TotalIssues     int `json:"total_issues"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
	BytesIn         int `json:"bytes_in"`
	BytesOut        int `json:"bytes_out"`
	BytesSaved      int `json:"bytes_saved"`
}

// JSONFile contains per-stylesheet sizes.
type JSONFile struct {
	Path         string `json:"path"`
	OutputPath   string `json:"output_path"`
	OriginalSize int    `json:"original_size"`
	MinifiedSize int    `json:"minified_size"`
	Saved        int    `json:"saved"`
}

// JSONIssue represents a single tokenize/verify issue.
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Offset   int    `json:"offset"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Checker  string `json:"checker"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the minification result as JSON.
func WriteJSON(w io.Writer, result *cssmin.Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts a Result to the export schema.
func buildJSONOutput(result *cssmin.Result) JSONOutput {
	issues := result.Issues()

	var errors, warnings int
	for _, issue := range issues {
		switch issue.Severity {
		case cssmin.SeverityError:
			errors++
		case cssmin.SeverityWarning:
			warnings++
		}
	}

	jsonFiles := make([]JSONFile, len(result.Files))
	var bytesIn, bytesOut int
	for i, f := range result.Files {
		jsonFiles[i] = JSONFile{
			Path:         f.Path,
			OutputPath:   f.OutputPath,
			OriginalSize: f.OriginalSize,
			MinifiedSize: f.MinifiedSize,
			Saved:        f.Saved(),
		}
		bytesIn += f.OriginalSize
		bytesOut += f.MinifiedSize
	}

	jsonIssues := make([]JSONIssue, len(issues))
	for i, issue := range issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Offset:   issue.Pos.Offset,
			Severity: issue.Severity,
			Message:  issue.Text,
			Checker:  issue.FromChecker,
			Source:   source,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			FilesDiscovered: result.Stats.FilesDiscovered,
			FilesMinified:   result.Stats.FilesMinified,
			FilesSkipped:    result.Stats.FilesSkipped,
			TotalIssues:     len(issues),
			Errors:          errors,
			Warnings:        warnings,
			BytesIn:         bytesIn,
			BytesOut:        bytesOut,
			BytesSaved:      bytesIn - bytesOut,
		},
		Files:  jsonFiles,
		Issues: jsonIssues,
	}
}
