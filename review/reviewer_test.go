package review

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/promptctl/client"
	"github.com/randalmurphal/promptctl/config"
)

const goodReply = `{
  "summary": "One real bug.",
  "findings": [
    {"severity": "error", "category": "correctness", "file": "main.go", "line": 12,
     "message": "off-by-one", "suggestion": "use <="},
    {"severity": "info", "category": "style", "file": "", "line": 0,
     "message": "naming", "suggestion": ""}
  ]
}`

func TestReview_ParsesFindings(t *testing.T) {
	mock := (&client.Mock{}).WithResults(&client.Result{
		Response: goodReply, InputTokens: 200, OutputTokens: 100,
	})
	r := NewReviewer(mock, config.Defaults())

	report, err := r.Review(context.Background(), "package main", Options{SourceFile: "main.go"})
	require.NoError(t, err)

	assert.Equal(t, "One real bug.", report.Summary)
	require.Len(t, report.Findings, 2)
	assert.Equal(t, SeverityError, report.Findings[0].Severity)
	assert.Equal(t, 12, report.Findings[0].Line)
	assert.Equal(t, 1, report.ErrorCount())
	assert.Equal(t, 0, report.WarningCount())
	assert.Equal(t, 1, report.InfoCount())
	assert.Equal(t, 200, report.InputTokens)

	// The file label prefixes the reviewed content.
	assert.True(t, strings.HasPrefix(mock.Calls[0].Messages[0].Content, "File: main.go\n\n"))
}

func TestReview_FencedReplyAccepted(t *testing.T) {
	mock := client.NewMock("```json\n" + goodReply + "\n```")
	r := NewReviewer(mock, config.Defaults())

	report, err := r.Review(context.Background(), "code", Options{})
	require.NoError(t, err)
	assert.Len(t, report.Findings, 2)
}

func TestReview_UnparseableReplyDegrades(t *testing.T) {
	raw := strings.Repeat("not json ", 100)
	mock := client.NewMock(raw)
	r := NewReviewer(mock, config.Defaults())

	report, err := r.Review(context.Background(), "code", Options{})
	require.NoError(t, err, "untrusted model output must never fail the caller")
	assert.Empty(t, report.Findings)
	assert.LessOrEqual(t, len(report.Summary), 500)
	assert.True(t, strings.HasPrefix(raw, report.Summary))
}

func TestReview_MalformedFindingsSkipped(t *testing.T) {
	reply := `{
  "summary": "mixed",
  "findings": [
    "just a string",
    {"severity": "catastrophic", "category": "style", "message": "bad severity"},
    {"severity": "warning", "category": "vibes", "message": "bad category"},
    {"severity": "warning", "category": "testing", "message": "kept"}
  ]
}`
	r := NewReviewer(client.NewMock(reply), config.Defaults())

	report, err := r.Review(context.Background(), "code", Options{})
	require.NoError(t, err)
	require.Len(t, report.Findings, 1)
	assert.Equal(t, "kept", report.Findings[0].Message)
}

func TestReview_ClientErrorPropagates(t *testing.T) {
	mock := client.NewMock("x").WithError(client.ErrAPI)
	r := NewReviewer(mock, config.Defaults())

	_, err := r.Review(context.Background(), "code", Options{})
	assert.ErrorIs(t, err, client.ErrAPI)
}
