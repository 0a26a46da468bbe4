package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spencrc/cssmin"
	"github.com/spencrc/cssmin/internal/report"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Dump the token stream of a stylesheet",
	Long: `Tokenize a stylesheet and print one token per line with its byte
offset, kind, and lexeme. Useful for debugging minification output.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		skipTrivia, _ := cmd.Flags().GetBool("skip-trivia")
		return runTokens(args[0], skipTrivia)
	},
}

func init() {
	tokensCmd.Flags().Bool("skip-trivia", false, "Omit whitespace and comment tokens")
}

func runTokens(path string, skipTrivia bool) error {
	// #nosec G304 - path comes from the command line
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	ts, err := cssmin.Tokenize(src)
	if err != nil {
		return fmt.Errorf("tokenize %s: %w", path, err)
	}

	useColors := getBoolWithFallback("color", "color", false)
	for _, t := range ts {
		if skipTrivia && (t.Kind == cssmin.KindWhitespace || t.Kind == cssmin.KindComment) {
			continue
		}
		line := fmt.Sprintf("%6d  %-11s %q", t.Offset, t.Kind, t.Lexeme)
		switch t.Kind {
		case cssmin.KindNumber, cssmin.KindPercentage:
			line += fmt.Sprintf("  [%s]", t.NumberType)
		case cssmin.KindDimension:
			line += fmt.Sprintf("  [%s, unit=%q]", t.NumberType, t.Unit)
		}
		if t.Kind == cssmin.KindBadString || t.Kind == cssmin.KindBadURL {
			line = report.RenderStyle(report.StyleYellow, line, useColors)
		}
		fmt.Println(line)
	}

	return nil
}
