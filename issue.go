package cssmin

// Issue represents a single defect found while minifying or verifying a
// stylesheet, in golangci-lint format.
type Issue struct {
	FromChecker string   `json:"FromChecker"` // "tokenize", "verify"
	Text        string   `json:"Text"`        // "unexpected character '\\x00' at offset 12"
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of stylesheet with the defect
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based
	Offset   int    `json:"Offset"` // byte offset into the input
}

// Issue severity constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Checker names attached to issues.
const (
	CheckerTokenize = "tokenize"
	CheckerVerify   = "verify"
)

// positionOf converts a byte offset into a 1-based line/column pair plus
// the text of the containing line.
func positionOf(src []byte, offset int) (line, col int, text string) {
	if offset > len(src) {
		offset = len(src)
	}
	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := lineStart
	for lineEnd < len(src) && src[lineEnd] != '\n' {
		lineEnd++
	}
	return line, offset - lineStart + 1, string(src[lineStart:lineEnd])
}
