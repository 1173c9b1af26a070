package lint

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/randalmurphal/promptctl/client"
	"github.com/randalmurphal/promptctl/config"
	"github.com/randalmurphal/promptctl/license"
	"github.com/randalmurphal/promptctl/parser"
	"github.com/randalmurphal/promptctl/truncate"
)

const fixSystemPrompt = `You are a YAML prompt template expert. Given a YAML file and its lint violations, produce a corrected version of the file. Return ONLY valid JSON:
{
  "fixed": "The corrected YAML content",
  "explanation": "Brief explanation of changes made",
  "violations_addressed": ["L001", "L002"]
}`

// Fix is a suggested correction for a file's lint violations. Fixed equals
// Original when there was nothing to fix or the suggestion did not parse.
type Fix struct {
	Original            string   `json:"original"`
	Fixed               string   `json:"fixed"`
	Explanation         string   `json:"explanation"`
	ViolationsAddressed []string `json:"violations_addressed,omitempty"`
	Model               string   `json:"model,omitempty"`
	InputTokens         int      `json:"input_tokens"`
	OutputTokens        int      `json:"output_tokens"`
	CostUSD             float64  `json:"cost_usd"`
}

// Fixer produces AI fix suggestions for lint violations.
type Fixer struct {
	client client.Client
	cfg    config.Config
}

// NewFixer creates a fixer using the given client and configuration.
func NewFixer(c client.Client, cfg config.Config) *Fixer {
	return &Fixer{client: c, cfg: cfg}
}

// Suggest runs the local lint checks and asks the model to correct the
// violations found. Requires a PRO license. An empty modelID uses the
// configured model.
func (f *Fixer) Suggest(ctx context.Context, path, modelID string) (*Fix, error) {
	return license.Gate("lint fix", func() (*Fix, error) {
		return f.suggest(ctx, path, modelID)
	})()
}

func (f *Fixer) suggest(ctx context.Context, path, modelID string) (*Fix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read %s: %v", ErrUnreadable, path, err)
	}
	original := string(raw)

	report, err := Check(path)
	if err != nil {
		return nil, err
	}
	if len(report.Violations) == 0 {
		return &Fix{Original: original, Fixed: original, Explanation: "No violations to fix."}, nil
	}

	resolved := modelID
	if resolved == "" {
		resolved = f.cfg.Model
	}

	var lines []string
	for _, v := range report.Violations {
		lines = append(lines, fmt.Sprintf("- [%s] %s", v.RuleID, v.Message))
	}
	userContent := fmt.Sprintf(
		"YAML file content:\n```yaml\n%s\n```\n\nLint violations found:\n%s",
		original, strings.Join(lines, "\n"),
	)

	result, err := f.client.Send(ctx, client.Request{
		Model:       resolved,
		System:      fixSystemPrompt,
		Messages:    client.UserMessage(userContent),
		MaxTokens:   4096,
		Temperature: 0,
	})
	if err != nil {
		return nil, err
	}

	fix := &Fix{
		Original:     original,
		Fixed:        original,
		Explanation:  truncate.Fallback(result.Response),
		Model:        resolved,
		InputTokens:  result.InputTokens,
		OutputTokens: result.OutputTokens,
		CostUSD:      result.CostUSD,
	}
	if data := parser.ExtractJSON(result.Response); data != nil {
		fix.Fixed = parser.String(data, "fixed", original)
		fix.Explanation = parser.String(data, "explanation", fix.Explanation)
		fix.ViolationsAddressed = parser.StringSlice(data, "violations_addressed")
	} else {
		slog.Warn("fix response did not parse as JSON", "path", path)
	}
	return fix, nil
}
