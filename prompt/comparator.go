package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/randalmurphal/promptctl/client"
	"github.com/randalmurphal/promptctl/license"
	"github.com/randalmurphal/promptctl/model"
	"github.com/randalmurphal/promptctl/truncate"
)

// ComparisonEntry is the result for one model in a comparison.
type ComparisonEntry struct {
	Model           string  `json:"model"`
	ResponsePreview string  `json:"response_preview"`
	InputTokens     int     `json:"input_tokens"`
	OutputTokens    int     `json:"output_tokens"`
	CostUSD         float64 `json:"cost_usd"`
	LatencyMS       float64 `json:"latency_ms"`
}

// ComparisonResult captures a prompt run against multiple models. Entries
// follow the requested model order.
type ComparisonResult struct {
	PromptName string            `json:"prompt_name"`
	Entries    []ComparisonEntry `json:"entries"`
}

// Compare runs the same prompt against each model in turn and collects
// per-model cost, latency, and token counts. Pro feature. Models may be a
// comma-separated list; empty selects the default sonnet/haiku pair.
func (r *Runner) Compare(ctx context.Context, templatePath, models string) (*ComparisonResult, error) {
	return license.Gate("multi-model comparison", func() (*ComparisonResult, error) {
		return r.compare(ctx, templatePath, models)
	})()
}

func (r *Runner) compare(ctx context.Context, templatePath, models string) (*ComparisonResult, error) {
	tpl, err := Load(templatePath)
	if err != nil {
		return nil, err
	}

	modelList := []string{string(model.Sonnet), string(model.Haiku)}
	if models != "" {
		modelList = modelList[:0]
		for _, m := range strings.Split(models, ",") {
			modelList = append(modelList, strings.TrimSpace(m))
		}
	}
	if len(modelList) < 2 {
		return nil, fmt.Errorf("%w: comparison requires at least 2 models", ErrTemplate)
	}

	messages := client.UserMessage(tpl.Interpolate())

	entries := make([]ComparisonEntry, 0, len(modelList))
	for _, m := range modelList {
		result, err := r.client.Send(ctx, client.Request{
			Model:       m,
			System:      tpl.System,
			Messages:    messages,
			MaxTokens:   tpl.MaxTokens,
			Temperature: tpl.Temperature,
		})
		if err != nil {
			return nil, err
		}
		entries = append(entries, ComparisonEntry{
			Model:           m,
			ResponsePreview: truncate.Preview(result.Response, truncate.ComparisonLen),
			InputTokens:     result.InputTokens,
			OutputTokens:    result.OutputTokens,
			CostUSD:         result.CostUSD,
			LatencyMS:       result.LatencyMS,
		})
	}

	return &ComparisonResult{PromptName: tpl.Name, Entries: entries}, nil
}
