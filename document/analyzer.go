package document

import (
	"context"
	"log/slog"

	"github.com/randalmurphal/promptctl/chunk"
	"github.com/randalmurphal/promptctl/client"
	"github.com/randalmurphal/promptctl/config"
	"github.com/randalmurphal/promptctl/parser"
	"github.com/randalmurphal/promptctl/tokens"
	"github.com/randalmurphal/promptctl/truncate"
)

// MaxContextTokens is the estimated-token ceiling above which Summarize
// switches to the map-reduce path.
const MaxContextTokens = 180_000

const analyzeSystemPrompt = `You are a document analysis expert. Analyze the provided document and return a JSON object with your findings.

Return ONLY valid JSON in this exact format:
{
  "summary": "Brief overview of the document",
  "key_points": ["Point 1", "Point 2"],
  "entities": ["Entity 1", "Entity 2"],
  "themes": ["Theme 1", "Theme 2"]
}`

const askSystemSuffix = `Answer questions about the document above. Return ONLY valid JSON:
{
  "answer": "Your answer here",
  "confidence": "high|medium|low",
  "source_quotes": ["Relevant quote from the document"]
}`

const summarizeSystemPrompt = `You are an expert summarizer. Create an executive summary of the provided document. Return ONLY valid JSON:
{
  "executive_summary": "Concise executive summary",
  "sections": ["Section 1 summary", "Section 2 summary"]
}`

// Analyzer runs document operations through the API.
type Analyzer struct {
	client client.Client
	cfg    config.Config

	chunkSize    int
	chunkOverlap int
}

// NewAnalyzer creates an analyzer using the given client and configuration.
func NewAnalyzer(c client.Client, cfg config.Config) *Analyzer {
	return &Analyzer{
		client:       c,
		cfg:          cfg,
		chunkSize:    chunk.DefaultSize,
		chunkOverlap: chunk.DefaultOverlap,
	}
}

func (a *Analyzer) resolveModel(override string) string {
	if override != "" {
		return override
	}
	return a.cfg.Model
}

// Analyze reads a document and extracts a summary, key points, entities, and
// themes. An empty modelID uses the configured model.
func (a *Analyzer) Analyze(ctx context.Context, path, modelID string) (*Analysis, error) {
	content, wordCount, err := Read(path)
	if err != nil {
		return nil, err
	}
	resolved := a.resolveModel(modelID)

	result, err := a.client.Send(ctx, client.Request{
		Model:       resolved,
		System:      analyzeSystemPrompt,
		Messages:    client.UserMessage(content),
		MaxTokens:   4096,
		Temperature: 0,
	})
	if err != nil {
		return nil, err
	}

	analysis := &Analysis{
		Summary:       truncate.Fallback(result.Response),
		WordCount:     wordCount,
		TokenEstimate: tokens.Estimate(content),
		Model:         resolved,
		InputTokens:   result.InputTokens,
		OutputTokens:  result.OutputTokens,
		CostUSD:       result.CostUSD,
	}
	if data := parser.ExtractJSON(result.Response); data != nil {
		analysis.Summary = parser.String(data, "summary", analysis.Summary)
		analysis.KeyPoints = parser.StringSlice(data, "key_points")
		analysis.Entities = parser.StringSlice(data, "entities")
		analysis.Themes = parser.StringSlice(data, "themes")
	} else {
		slog.Warn("analysis response did not parse as JSON", "path", path)
	}
	return analysis, nil
}

// Ask answers a question about a document. The document content is placed in
// a cached system block so repeated questions reuse the provider-side cache.
func (a *Analyzer) Ask(ctx context.Context, path, question, modelID string) (*Answer, error) {
	content, _, err := Read(path)
	if err != nil {
		return nil, err
	}
	resolved := a.resolveModel(modelID)

	result, err := a.client.Send(ctx, client.Request{
		Model: resolved,
		SystemBlocks: []client.SystemBlock{
			{Text: "Document content:\n\n" + content, Cache: true},
			{Text: askSystemSuffix},
		},
		Messages:    client.UserMessage(question),
		MaxTokens:   4096,
		Temperature: 0,
	})
	if err != nil {
		return nil, err
	}

	answer := &Answer{
		Answer:       truncate.Fallback(result.Response),
		Model:        resolved,
		InputTokens:  result.InputTokens,
		OutputTokens: result.OutputTokens,
		CostUSD:      result.CostUSD,
	}
	if data := parser.ExtractJSON(result.Response); data != nil {
		answer.Answer = parser.String(data, "answer", answer.Answer)
		answer.Confidence = parser.String(data, "confidence", "")
		answer.SourceQuotes = parser.StringSlice(data, "source_quotes")
	} else {
		slog.Warn("answer response did not parse as JSON", "path", path)
	}
	return answer, nil
}

// Summarize produces an executive summary of a document. Documents whose
// estimated token count exceeds MaxContextTokens are summarized chunk by
// chunk and synthesized in a final reduce call.
func (a *Analyzer) Summarize(ctx context.Context, path, modelID string) (*Summary, error) {
	content, wordCount, err := Read(path)
	if err != nil {
		return nil, err
	}
	resolved := a.resolveModel(modelID)

	if tokens.Estimate(content) > MaxContextTokens {
		return a.mapReduce(ctx, content, resolved, wordCount)
	}

	result, err := a.client.Send(ctx, client.Request{
		Model:       resolved,
		System:      summarizeSystemPrompt,
		Messages:    client.UserMessage(content),
		MaxTokens:   4096,
		Temperature: 0,
	})
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		ExecutiveSummary: truncate.Fallback(result.Response),
		WordCount:        wordCount,
		Model:            resolved,
		InputTokens:      result.InputTokens,
		OutputTokens:     result.OutputTokens,
		CostUSD:          result.CostUSD,
		ChunksProcessed:  1,
	}
	if data := parser.ExtractJSON(result.Response); data != nil {
		summary.ExecutiveSummary = parser.String(data, "executive_summary", summary.ExecutiveSummary)
		summary.Sections = parser.StringSlice(data, "sections")
	} else {
		slog.Warn("summary response did not parse as JSON", "path", path)
	}
	return summary, nil
}
