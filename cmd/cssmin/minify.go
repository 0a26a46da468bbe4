package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spencrc/cssmin"
	"github.com/spencrc/cssmin/internal/report"
)

var minifyCmd = &cobra.Command{
	Use:     "minify [patterns...]",
	Aliases: []string{"min"},
	Short:   "Minify CSS stylesheets",
	Long: `Tokenize stylesheets and re-emit them without whitespace or comments.
Positional arguments override the configured include patterns.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runMinify,
}

func init() {
	f := minifyCmd.Flags()
	f.StringSlice("include", nil, "Glob patterns for stylesheets to minify")
	f.String("output-dir", "", "Output directory (default: next to each input)")
	f.String("suffix", cssmin.DefaultSuffix, "Output filename suffix")
	f.BoolP("write", "w", false, "Write minified files (default: print to stdout)")
	f.Bool("verify", false, "Re-lex minified output with an independent lexer")
	f.Bool("strict", false, "Exit 1 on any issue, warnings included (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Bool("print-lines", true, "Show stylesheet lines with issues")
	f.Bool("print-checker-name", true, "Show (tokenize)/(verify) suffix on issues")
}

// runMinify is shared between `cssmin minify` and the bare `cssmin` root.
func runMinify(_ *cobra.Command, args []string) error {
	config := buildMinifyConfig()
	if len(args) > 0 {
		config.Includes = args
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	result, err := cssmin.Minify(config)
	if err != nil {
		return err
	}

	// Without --write, minified content goes straight to stdout so the
	// tool composes with shell pipelines.
	if !config.Write {
		return printResults(result, quiet)
	}

	outputFormat := getStringWithFallback("output-format", "minify.output-format", "")
	format := report.DetermineFormat(outputFormat, quiet)

	if !quiet {
		if err := report.WriteOutput(os.Stdout, result, format, buildReportOptions()); err != nil {
			return err
		}
	}

	exitOnIssues(result, quiet)
	return nil
}

// printResults handles the no-write mode: minified content to stdout,
// issues to stderr.
func printResults(result *cssmin.Result, quiet bool) error {
	if !quiet {
		for _, f := range result.Files {
			if _, err := os.Stdout.Write(f.Minified); err != nil {
				return err
			}
			fmt.Println()
		}
		if issues := result.Issues(); len(issues) > 0 {
			r := report.NewReporter(os.Stderr, buildReportOptions())
			r.PrintIssues(issues)
		}
	}
	exitOnIssues(result, quiet)
	return nil
}

// exitOnIssues implements the "Soft Gate" exit code logic: errors always
// fail the run, warnings only under --strict.
func exitOnIssues(result *cssmin.Result, quiet bool) {
	strict := getBoolWithFallback("strict", "minify.strict", false)
	if strict {
		if n := len(result.Issues()); n > 0 {
			if !quiet {
				fmt.Fprintf(os.Stderr, "\nStrict mode: %d issue(s) found\n", n)
			}
			os.Exit(1)
		}
		return
	}
	if result.ErrorCount() > 0 {
		os.Exit(1)
	}
}
