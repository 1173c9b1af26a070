package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/randalmurphal/promptctl/config"
	"github.com/randalmurphal/promptctl/model"
)

// Anthropic is the production Client backed by the Anthropic SDK.
type Anthropic struct {
	api anthropic.Client
}

// New creates an Anthropic client from the configured API key
// (ANTHROPIC_API_KEY or the api_key config value).
func New() (*Anthropic, error) {
	key := config.APIKey()
	if key == "" {
		return nil, fmt.Errorf("%w: set %s or run 'promptctl config set api_key <key>'",
			ErrNoAPIKey, config.EnvAPIKey)
	}
	return &Anthropic{api: anthropic.NewClient(option.WithAPIKey(key))}, nil
}

// Send implements Client.
func (c *Anthropic) Send(ctx context.Context, req Request) (*Result, error) {
	params := buildParams(req)

	start := time.Now()
	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAPI, err)
	}

	text := ""
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			text += tb.Text
		}
	}
	return result(req.Model, text, msg.Usage, time.Since(start)), nil
}

// SendWithTools implements Client.
func (c *Anthropic) SendWithTools(ctx context.Context, req Request, tools []Tool) (*Result, []ToolCall, error) {
	params := buildParams(req)
	params.Tools = buildTools(tools)

	start := time.Now()
	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrAPI, err)
	}

	text := ""
	var calls []ToolCall
	for _, block := range msg.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			text += b.Text
		case anthropic.ToolUseBlock:
			input := map[string]any{}
			if len(b.Input) > 0 {
				// Tool input is model output; a malformed payload yields an
				// empty input map rather than a failure.
				_ = json.Unmarshal(b.Input, &input)
			}
			calls = append(calls, ToolCall{ID: b.ID, Name: b.Name, Input: input})
		}
	}
	return result(req.Model, text, msg.Usage, time.Since(start)), calls, nil
}

// SendStream implements Client.
func (c *Anthropic) SendStream(ctx context.Context, req Request, onToken func(string)) (*Result, error) {
	params := buildParams(req)

	start := time.Now()
	stream := c.api.Messages.NewStreaming(ctx, params)
	msg := anthropic.Message{}
	text := ""

	for stream.Next() {
		event := stream.Current()
		if err := msg.Accumulate(event); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAPI, err)
		}
		if ev, ok := event.AsAny().(anthropic.ContentBlockDeltaEvent); ok {
			if delta, ok := ev.Delta.AsAny().(anthropic.TextDelta); ok && delta.Text != "" {
				text += delta.Text
				if onToken != nil {
					onToken(delta.Text)
				}
			}
		}
	}
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAPI, err)
	}

	return result(req.Model, text, msg.Usage, time.Since(start)), nil
}

func buildParams(req Request) anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(req.Model),
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(req.Temperature),
		Messages:    buildMessages(req.Messages),
	}

	switch {
	case len(req.SystemBlocks) > 0:
		blocks := make([]anthropic.TextBlockParam, 0, len(req.SystemBlocks))
		for _, sb := range req.SystemBlocks {
			blk := anthropic.TextBlockParam{Text: sb.Text}
			if sb.Cache {
				blk.CacheControl = anthropic.NewCacheControlEphemeralParam()
			}
			blocks = append(blocks, blk)
		}
		params.System = blocks
	case req.System != "":
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	return params
}

func buildMessages(messages []Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(messages))
	for _, m := range messages {
		block := anthropic.NewTextBlock(m.Content)
		if m.Role == RoleAssistant {
			out = append(out, anthropic.NewAssistantMessage(block))
		} else {
			out = append(out, anthropic.NewUserMessage(block))
		}
	}
	return out
}

func buildTools(tools []Tool) []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(tools))
	for _, t := range tools {
		var required []string
		if req, ok := t.InputSchema["required"].([]any); ok {
			for _, r := range req {
				if s, ok := r.(string); ok {
					required = append(required, s)
				}
			}
		}
		param := anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Type:       "object",
				Properties: t.InputSchema["properties"],
				Required:   required,
			},
		}
		out = append(out, anthropic.ToolUnionParam{OfTool: &param})
	}
	return out
}

func result(modelID, text string, usage anthropic.Usage, elapsed time.Duration) *Result {
	in := int(usage.InputTokens)
	out := int(usage.OutputTokens)
	return &Result{
		Model:        modelID,
		Response:     text,
		InputTokens:  in,
		OutputTokens: out,
		CostUSD:      model.Cost(modelID, in, out),
		LatencyMS:    float64(elapsed) / float64(time.Millisecond),
	}
}
