package cssmin

import (
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Verify re-lexes a minified stylesheet with an independent CSS lexer and
// reports anything that no longer scans cleanly. It catches separator-rule
// regressions (merged tokens) and any structurally bad output: a lexer
// error is an error issue, a bad-string or bad-url token a warning.
func Verify(minified []byte, filename string) []Issue {
	var issues []Issue

	input := parse.NewInputBytes(minified)
	lexer := css.NewLexer(input)
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				issues = append(issues, issueAt(minified, filename, input.Offset(),
					SeverityError, fmt.Sprintf("minified output does not lex: %v", err)))
			}
			break
		}
		switch tt {
		case css.BadStringToken:
			issues = append(issues, issueAt(minified, filename, input.Offset()-len(data),
				SeverityWarning, fmt.Sprintf("minified output contains a bad string %q", data)))
		case css.BadURLToken:
			issues = append(issues, issueAt(minified, filename, input.Offset()-len(data),
				SeverityWarning, fmt.Sprintf("minified output contains a bad url %q", data)))
		}
	}

	return issues
}

// issueAt builds a verify issue pointing at a byte offset.
func issueAt(src []byte, filename string, offset int, severity, text string) Issue {
	if offset < 0 {
		offset = 0
	}
	line, col, lineText := positionOf(src, offset)
	return Issue{
		FromChecker: CheckerVerify,
		Text:        text,
		Severity:    severity,
		SourceLines: []string{lineText},
		Pos: IssuePos{
			Filename: filename,
			Line:     line,
			Column:   col,
			Offset:   offset,
		},
	}
}

// tokenizeIssue converts the lexer's fatal error into a reportable issue.
func tokenizeIssue(src []byte, filename string, err *UnexpectedCharacterError) Issue {
	line, col, lineText := positionOf(src, err.Offset)
	return Issue{
		FromChecker: CheckerTokenize,
		Text:        err.Error(),
		Severity:    SeverityError,
		SourceLines: []string{lineText},
		Pos: IssuePos{
			Filename: filename,
			Line:     line,
			Column:   col,
			Offset:   err.Offset,
		},
	}
}
