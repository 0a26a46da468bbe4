// Package cssmin provides a CSS tokenizer and whitespace/comment minifier.
//
// The tokenizer is a hand-rolled byte-level scanner for the CSS syntax
// grammar. It produces a lossless token stream: whitespace runs and
// comments are tokens too, and concatenating every lexeme reproduces the
// input exactly. Lexemes are zero-copy views into the source buffer.
//
// # Tokenizing
//
//	ts, err := cssmin.Tokenize([]byte(`a { color: #fff }`))
//
// # Minifying
//
//	out, err := cssmin.MinifyBytes(src)
//
// Minification drops whitespace and comment tokens and re-emits the rest,
// inserting a single space where two word-like tokens would otherwise
// merge.
//
// # CLI tool
//
// cssmin also provides a CLI. Install with:
//
//	go install github.com/spencrc/cssmin/cmd/cssmin@latest
package cssmin

import (
	"errors"
	"fmt"
	"os"
)

// DefaultSuffix is the filename suffix for minified output files.
const DefaultSuffix = ".min.css"

// Config holds minifier configuration.
type Config struct {
	Includes  []string // Glob patterns for stylesheets, e.g. ["styles/**/*.css"]
	OutputDir string   // Output directory; empty writes next to the input
	Suffix    string   // Output filename suffix (default ".min.css")
	Write     bool     // Write output files; false keeps results in memory
	Verify    bool     // Re-lex minified output with an independent lexer
	Verbose   bool     // Enable verbose logging
}

// FileResult holds the outcome for one stylesheet.
type FileResult struct {
	Path         string  // Input path
	OutputPath   string  // Where the minified form was (or would be) written
	OriginalSize int     // Input bytes
	MinifiedSize int     // Output bytes
	Minified     []byte  // Minified content (kept when Config.Write is false)
	Issues       []Issue // Tokenize/verify defects for this file
}

// Saved returns the byte count removed from this stylesheet.
func (f FileResult) Saved() int {
	return f.OriginalSize - f.MinifiedSize
}

// Result contains the outcome of one Minify run.
type Result struct {
	Files []FileResult
	Stats ScanStats
}

// Issues returns every issue across all files, in file order.
func (r *Result) Issues() []Issue {
	var all []Issue
	for _, f := range r.Files {
		all = append(all, f.Issues...)
	}
	return all
}

// ErrorCount returns the number of error-severity issues.
func (r *Result) ErrorCount() int {
	var n int
	for _, f := range r.Files {
		for _, is := range f.Issues {
			if is.Severity == SeverityError {
				n++
			}
		}
	}
	return n
}

// TotalSaved returns the byte count removed across all stylesheets.
func (r *Result) TotalSaved() int {
	var n int
	for _, f := range r.Files {
		n += f.Saved()
	}
	return n
}

// Minify expands the configured glob patterns and minifies every matching
// stylesheet. A stylesheet that fails to tokenize is reported as an
// error-severity issue on its FileResult and does not stop the run; the
// returned error covers I/O and pattern failures only.
func Minify(cfg Config) (*Result, error) {
	if cfg.Suffix == "" {
		cfg.Suffix = DefaultSuffix
	}

	files, stats, err := expandGlobPatterns(cfg.Includes, cfg.Suffix)
	if err != nil {
		return nil, fmt.Errorf("expanding include patterns: %w", err)
	}

	result := &Result{Stats: stats}
	for _, path := range files {
		fr, err := minifyFile(path, cfg)
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, fr)
	}

	return result, nil
}

// minifyFile minifies a single stylesheet per the config.
func minifyFile(path string, cfg Config) (FileResult, error) {
	// #nosec G304 - path comes from the configured include patterns
	src, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, fmt.Errorf("read file: %w", err)
	}

	fr := FileResult{
		Path:         path,
		OutputPath:   outputPath(path, cfg.OutputDir, cfg.Suffix),
		OriginalSize: len(src),
	}

	ts, err := Tokenize(src)
	if err != nil {
		var uerr *UnexpectedCharacterError
		if !errors.As(err, &uerr) {
			return FileResult{}, err
		}
		fr.Issues = append(fr.Issues, tokenizeIssue(src, path, uerr))
		return fr, nil
	}

	out := MinifyTokens(ts)
	fr.MinifiedSize = len(out)

	if cfg.Verify {
		fr.Issues = append(fr.Issues, Verify(out, path)...)
	}

	if cfg.Write {
		if cfg.OutputDir != "" {
			if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
				return FileResult{}, fmt.Errorf("creating output dir: %w", err)
			}
		}
		if err := os.WriteFile(fr.OutputPath, out, 0o644); err != nil {
			return FileResult{}, fmt.Errorf("writing %s: %w", fr.OutputPath, err)
		}
	} else {
		fr.Minified = out
	}

	return fr, nil
}
