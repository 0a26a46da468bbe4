package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spencrc/cssmin"
)

// Options configures reporter behavior.
type Options struct {
	UseColors        bool // Force colors on; otherwise auto-detected
	PrintIssuedLines bool // Show stylesheet lines under each issue
	PrintCheckerName bool // Show (tokenize)/(verify) suffix on issues
}

// Reporter formats minification results and issues for terminals.
type Reporter struct {
	w                io.Writer
	useColors        bool
	printLines       bool
	printCheckerName bool
}

// NewReporter creates a new reporter with the given options.
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:                w,
		useColors:        shouldUseColors(opts),
		printLines:       opts.PrintIssuedLines,
		printCheckerName: opts.PrintCheckerName,
	}
}

// shouldUseColors determines if colors should be enabled.
func shouldUseColors(opts Options) bool {
	// Explicit flag wins
	if opts.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintIssues outputs issues in golangci-lint format.
func (r *Reporter) PrintIssues(issues []cssmin.Issue) {
	// Sort issues by file, then line, then column
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue as file:line:col: message (checker).
func (r *Reporter) printIssue(issue cssmin.Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	checkerSuffix := ""
	if r.printCheckerName {
		checkerSuffix = fmt.Sprintf(" (%s)", issue.FromChecker)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, checkerSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are reproduced as tabs so alignment survives them.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the per-file size table and the run totals.
func (r *Reporter) PrintSummary(result *cssmin.Result) {
	if len(result.Files) == 0 {
		fmt.Fprintln(r.w, "No stylesheets matched the include patterns")
		return
	}

	fmt.Fprintln(r.w, "")
	for _, f := range result.Files {
		if f.MinifiedSize == 0 && len(f.Issues) > 0 {
			fmt.Fprintf(r.w, "%s %s\n",
				RenderStyle(StyleRed, "✗", r.useColors),
				f.Path)
			continue
		}
		fmt.Fprintf(r.w, "%s %s %s\n",
			RenderStyle(StyleGreen, "✓", r.useColors),
			f.Path,
			RenderStyle(StyleGray, sizeChange(f.OriginalSize, f.MinifiedSize), r.useColors))
	}

	var totalIn, totalOut int
	for _, f := range result.Files {
		totalIn += f.OriginalSize
		totalOut += f.MinifiedSize
	}

	fmt.Fprintf(r.w, "\n%s %s, %s\n",
		RenderStyle(StyleCyan, pluralizeCount(len(result.Files), "stylesheet minified", "stylesheets minified"), r.useColors),
		RenderStyle(StyleGray, fmt.Sprintf("(%d skipped)", result.Stats.FilesSkipped), r.useColors),
		RenderStyle(StyleGreen, sizeChange(totalIn, totalOut), r.useColors))

	if n := len(result.Issues()); n > 0 {
		fmt.Fprintf(r.w, "%s\n",
			RenderStyle(StyleYellow, pluralizeCount(n, "issue", "issues"), r.useColors))
	}
}

// sizeChange formats "1024 -> 512 bytes (50.0% smaller)".
func sizeChange(before, after int) string {
	if before == 0 {
		return fmt.Sprintf("%d -> %d bytes", before, after)
	}
	pct := 100 * float64(before-after) / float64(before)
	return fmt.Sprintf("%d -> %d bytes (%.1f%% smaller)", before, after, pct)
}

// pluralizeCount returns a formatted string with count and singular/plural form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
