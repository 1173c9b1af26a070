package review

import (
	"context"
	"log/slog"

	"github.com/randalmurphal/promptctl/client"
	"github.com/randalmurphal/promptctl/config"
	"github.com/randalmurphal/promptctl/model"
	"github.com/randalmurphal/promptctl/parser"
	"github.com/randalmurphal/promptctl/truncate"
)

// Severity of a review finding.
type Severity string

// Finding severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Category is a review dimension.
type Category string

// Review dimensions.
const (
	CategoryCorrectness     Category = "correctness"
	CategorySecurity        Category = "security"
	CategoryPerformance     Category = "performance"
	CategoryMaintainability Category = "maintainability"
	CategoryTesting         Category = "testing"
	CategoryStyle           Category = "style"
)

// Finding is a single review finding.
type Finding struct {
	Severity   Severity `json:"severity"`
	Category   Category `json:"category"`
	File       string   `json:"file,omitempty"`
	Line       int      `json:"line,omitempty"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Report is a complete code review report.
type Report struct {
	Findings     []Finding `json:"findings"`
	Summary      string    `json:"summary"`
	Model        string    `json:"model"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	CostUSD      float64   `json:"cost_usd"`
}

// ErrorCount returns the number of error-severity findings.
func (r *Report) ErrorCount() int { return r.countBySeverity(SeverityError) }

// WarningCount returns the number of warning-severity findings.
func (r *Report) WarningCount() int { return r.countBySeverity(SeverityWarning) }

// InfoCount returns the number of info-severity findings.
func (r *Report) InfoCount() int { return r.countBySeverity(SeverityInfo) }

func (r *Report) countBySeverity(s Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

const systemPrompt = `You are an expert code reviewer. Analyze the provided code or diff and return a JSON object with your findings.

Review across these 6 dimensions:
1. **Correctness** — Does it work? Edge cases? Race conditions?
2. **Security** — Input validation, injection risks, credential handling
3. **Performance** — Time/space complexity, unnecessary operations
4. **Maintainability** — Readability, naming, modularity, DRY
5. **Testing** — Coverage gaps, missing edge cases
6. **Style** — Formatting, conventions, consistency

Return ONLY valid JSON in this exact format:
{
  "summary": "Brief overall assessment",
  "findings": [
    {
      "severity": "error|warning|info",
      "category": "correctness|security|performance|maintainability|testing|style",
      "file": "filename or empty string",
      "line": 0,
      "message": "What the issue is",
      "suggestion": "How to fix it"
    }
  ]
}

If the code looks good, return {"summary": "No issues found.", "findings": []}.`

// Reviewer runs code reviews through the API.
type Reviewer struct {
	client client.Client
	cfg    config.Config
}

// NewReviewer creates a reviewer using the given client and configuration.
func NewReviewer(c client.Client, cfg config.Config) *Reviewer {
	return &Reviewer{client: c, cfg: cfg}
}

// Options adjust a single review.
type Options struct {
	// Model overrides the configured model.
	Model string

	// SourceFile labels the code with its file name in the request.
	SourceFile string
}

// Review sends code for review and returns the structured report.
func (r *Reviewer) Review(ctx context.Context, code string, opts Options) (*Report, error) {
	resolvedModel := opts.Model
	if resolvedModel == "" {
		resolvedModel = r.cfg.Model
	}

	content := code
	if opts.SourceFile != "" {
		content = "File: " + opts.SourceFile + "\n\n" + code
	}

	result, err := r.client.Send(ctx, client.Request{
		Model:       resolvedModel,
		System:      systemPrompt,
		Messages:    client.UserMessage(content),
		MaxTokens:   4096,
		Temperature: 0,
	})
	if err != nil {
		return nil, err
	}

	return parseReport(result.Response, resolvedModel, result.InputTokens, result.OutputTokens), nil
}

// parseReport turns the model's JSON reply into a Report. Model output is
// untrusted: unparseable replies degrade to a preview summary with no
// findings, and malformed finding entries are skipped.
func parseReport(response, modelID string, inputTokens, outputTokens int) *Report {
	report := &Report{
		Model:        modelID,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		CostUSD:      model.Cost(modelID, inputTokens, outputTokens),
	}

	data := parser.ExtractJSON(response)
	if data == nil {
		slog.Warn("failed to parse review response as JSON")
		report.Summary = truncate.Fallback(response)
		return report
	}

	report.Summary = parser.String(data, "summary", "")
	items, _ := data["findings"].([]any)
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			slog.Debug("skipping non-object finding", "finding", item)
			continue
		}
		f := Finding{
			Severity:   Severity(parser.String(m, "severity", string(SeverityInfo))),
			Category:   Category(parser.String(m, "category", string(CategoryStyle))),
			File:       parser.String(m, "file", ""),
			Message:    parser.String(m, "message", ""),
			Suggestion: parser.String(m, "suggestion", ""),
		}
		if line, ok := m["line"].(float64); ok {
			f.Line = int(line)
		}
		if !validSeverity(f.Severity) || !validCategory(f.Category) {
			slog.Debug("skipping malformed finding", "finding", m)
			continue
		}
		report.Findings = append(report.Findings, f)
	}
	return report
}

func validSeverity(s Severity) bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

func validCategory(c Category) bool {
	switch c {
	case CategoryCorrectness, CategorySecurity, CategoryPerformance,
		CategoryMaintainability, CategoryTesting, CategoryStyle:
		return true
	}
	return false
}
