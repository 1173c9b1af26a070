package client

import "context"

// Role identifies a message sender.
type Role string

// Message roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one conversation turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// UserMessage creates a single-turn user message list.
func UserMessage(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

// SystemBlock is one segment of a structured system prompt. Cache marks the
// segment for provider-side prompt caching.
type SystemBlock struct {
	Text  string
	Cache bool
}

// Request configures a generation call.
type Request struct {
	// Model is the model identifier to query.
	Model string

	// System is a plain system instruction. Ignored when SystemBlocks is set.
	System string

	// SystemBlocks is a structured system instruction with caching hints.
	SystemBlocks []SystemBlock

	// Messages is the ordered conversation history.
	Messages []Message

	// MaxTokens limits the response length.
	MaxTokens int

	// Temperature controls response randomness.
	Temperature float64
}

// Tool defines a tool the model may invoke. InputSchema is a JSON Schema
// object; see NewTool for deriving one from a Go struct.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]any
}

// ToolCall is a tool invocation extracted from a model reply.
type ToolCall struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Input map[string]any `json:"input"`
}

// Result is the outcome of a generation call.
type Result struct {
	Model        string  `json:"model"`
	Response     string  `json:"response"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	CostUSD      float64 `json:"cost_usd"`
	LatencyMS    float64 `json:"latency_ms"`
}

// Client is the generation boundary used by the rest of the toolkit.
type Client interface {
	// Send issues one generation call and returns the aggregate result.
	Send(ctx context.Context, req Request) (*Result, error)

	// SendWithTools issues a generation call with tools available and
	// additionally returns any tool invocations found in the reply.
	SendWithTools(ctx context.Context, req Request, tools []Tool) (*Result, []ToolCall, error)

	// SendStream issues a generation call, invoking onToken for each text
	// fragment as it arrives. The returned result has the same shape as Send.
	SendStream(ctx context.Context, req Request, onToken func(string)) (*Result, error)
}
