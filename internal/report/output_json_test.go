package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spencrc/cssmin"
)

func TestWriteJSON(t *testing.T) {
	result := &cssmin.Result{
		Files: []cssmin.FileResult{
			{
				Path:         "a.css",
				OutputPath:   "a.min.css",
				OriginalSize: 100,
				MinifiedSize: 60,
				Issues: []cssmin.Issue{
					{
						FromChecker: cssmin.CheckerVerify,
						Text:        "minified output contains a bad url",
						Severity:    cssmin.SeverityWarning,
						SourceLines: []string{"a{b:url(a b)}"},
						Pos:         cssmin.IssuePos{Filename: "a.css", Line: 1, Column: 5, Offset: 4},
					},
				},
			},
			{Path: "b.css", OutputPath: "b.min.css", OriginalSize: 40, MinifiedSize: 40},
		},
		Stats: cssmin.ScanStats{FilesDiscovered: 2, FilesMinified: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, result))

	var decoded JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "1.0", decoded.Version)
	assert.NotEmpty(t, decoded.Timestamp)

	assert.Equal(t, 2, decoded.Summary.FilesMinified)
	assert.Equal(t, 1, decoded.Summary.TotalIssues)
	assert.Equal(t, 0, decoded.Summary.Errors)
	assert.Equal(t, 1, decoded.Summary.Warnings)
	assert.Equal(t, 140, decoded.Summary.BytesIn)
	assert.Equal(t, 100, decoded.Summary.BytesOut)
	assert.Equal(t, 40, decoded.Summary.BytesSaved)

	require.Len(t, decoded.Files, 2)
	assert.Equal(t, "a.min.css", decoded.Files[0].OutputPath)
	assert.Equal(t, 40, decoded.Files[0].Saved)

	require.Len(t, decoded.Issues, 1)
	assert.Equal(t, "verify", decoded.Issues[0].Checker)
	assert.Equal(t, "warning", decoded.Issues[0].Severity)
	assert.Equal(t, 5, decoded.Issues[0].Column)
	assert.Equal(t, "a{b:url(a b)}", decoded.Issues[0].Source)
}
