package document

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/randalmurphal/promptctl/chunk"
	"github.com/randalmurphal/promptctl/client"
	"github.com/randalmurphal/promptctl/model"
	"github.com/randalmurphal/promptctl/parser"
	"github.com/randalmurphal/promptctl/truncate"
)

// sectionDivider separates labeled section summaries in the reduce input.
const sectionDivider = "\n\n---\n\n"

const chunkSummaryPrompt = `Summarize this section of a larger document. Focus on key information, main arguments, and important details. Return ONLY valid JSON:
{
  "section_summary": "Summary of this section"
}`

const reducePrompt = `You are given summaries of different sections of a document. Synthesize them into a cohesive executive summary. Return ONLY valid JSON:
{
  "executive_summary": "Cohesive executive summary",
  "sections": ["Section 1 summary", "Section 2 summary"]
}`

// mapReduce summarizes text too large for a single call: each chunk is
// summarized independently in order, then the section summaries are
// synthesized in one reduce call. Token counts accumulate across every call
// and cost is computed once from the grand totals. A failing call aborts the
// whole operation with no partial result.
func (a *Analyzer) mapReduce(ctx context.Context, text, modelID string, wordCount int) (*Summary, error) {
	chunks := chunk.Split(text, a.chunkSize, a.chunkOverlap)

	var totals model.Usage
	sections := make([]string, 0, len(chunks))
	for i, c := range chunks {
		result, err := a.client.Send(ctx, client.Request{
			Model:       modelID,
			System:      chunkSummaryPrompt,
			Messages:    client.UserMessage(c),
			MaxTokens:   2048,
			Temperature: 0,
		})
		if err != nil {
			return nil, err
		}
		totals.Add(model.Usage{InputTokens: result.InputTokens, OutputTokens: result.OutputTokens})

		if data := parser.ExtractJSON(result.Response); data != nil {
			sections = append(sections, parser.String(data, "section_summary", truncate.Fallback(result.Response)))
		} else {
			slog.Debug("chunk summary did not parse as JSON", "chunk", i+1)
			sections = append(sections, truncate.Fallback(result.Response))
		}
	}

	labeled := make([]string, len(sections))
	for i, s := range sections {
		labeled[i] = fmt.Sprintf("Section %d:\n%s", i+1, s)
	}
	combined := strings.Join(labeled, sectionDivider)

	reduceResult, err := a.client.Send(ctx, client.Request{
		Model:       modelID,
		System:      reducePrompt,
		Messages:    client.UserMessage(combined),
		MaxTokens:   4096,
		Temperature: 0,
	})
	if err != nil {
		return nil, err
	}
	totals.Add(model.Usage{InputTokens: reduceResult.InputTokens, OutputTokens: reduceResult.OutputTokens})

	summary := &Summary{
		ExecutiveSummary: truncate.Fallback(reduceResult.Response),
		Sections:         sections,
		WordCount:        wordCount,
		Model:            modelID,
		InputTokens:      totals.InputTokens,
		OutputTokens:     totals.OutputTokens,
		CostUSD:          model.CostUsage(modelID, totals),
		ChunksProcessed:  len(chunks),
	}
	if data := parser.ExtractJSON(reduceResult.Response); data != nil {
		summary.ExecutiveSummary = parser.String(data, "executive_summary", summary.ExecutiveSummary)
		if parsed := parser.StringSlice(data, "sections"); parsed != nil {
			summary.Sections = parsed
		}
	} else {
		slog.Debug("reduce summary did not parse as JSON")
	}
	return summary, nil
}
