package client

import (
	"context"
	"sync"

	"github.com/randalmurphal/promptctl/model"
)

// Mock is a test double for Client. It supports fixed responses, sequential
// results with explicit token counts, errors, and custom handlers.
type Mock struct {
	mu       sync.Mutex
	results  []*Result
	idx      int
	err      error
	sendFunc func(ctx context.Context, req Request) (*Result, error)
	tools    []ToolCall

	// Calls records every request for assertions.
	Calls []Request
}

// NewMock creates a mock returning one fixed text response per call, cycling
// after the list is exhausted.
func NewMock(responses ...string) *Mock {
	m := &Mock{}
	for _, r := range responses {
		m.results = append(m.results, &Result{Response: r})
	}
	return m
}

// WithResults configures sequential results, including token counts and
// costs. Cycles after exhausting the list.
func (m *Mock) WithResults(results ...*Result) *Mock {
	m.results = results
	return m
}

// WithError configures the mock to always fail.
func (m *Mock) WithError(err error) *Mock {
	m.err = err
	return m
}

// WithSendFunc sets a custom handler, taking precedence over fixed results.
func (m *Mock) WithSendFunc(fn func(ctx context.Context, req Request) (*Result, error)) *Mock {
	m.sendFunc = fn
	return m
}

// WithToolCalls configures the tool invocations SendWithTools returns.
func (m *Mock) WithToolCalls(calls ...ToolCall) *Mock {
	m.tools = calls
	return m
}

// Send implements Client.
func (m *Mock) Send(ctx context.Context, req Request) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.sendFunc != nil {
		return m.sendFunc(ctx, req)
	}
	if m.err != nil {
		return nil, m.err
	}

	res := &Result{Model: req.Model}
	if len(m.results) > 0 {
		next := m.results[m.idx%len(m.results)]
		m.idx++
		copied := *next
		res = &copied
		if res.Model == "" {
			res.Model = req.Model
		}
		if res.CostUSD == 0 {
			res.CostUSD = model.Cost(res.Model, res.InputTokens, res.OutputTokens)
		}
	}
	return res, nil
}

// SendWithTools implements Client.
func (m *Mock) SendWithTools(ctx context.Context, req Request, _ []Tool) (*Result, []ToolCall, error) {
	res, err := m.Send(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return res, m.tools, nil
}

// SendStream implements Client. The whole response is delivered as a single
// token before the aggregate result is returned.
func (m *Mock) SendStream(ctx context.Context, req Request, onToken func(string)) (*Result, error) {
	res, err := m.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	if onToken != nil && res.Response != "" {
		onToken(res.Response)
	}
	return res, nil
}
