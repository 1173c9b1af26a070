package prompt

import (
	"context"

	"github.com/randalmurphal/promptctl/client"
	"github.com/randalmurphal/promptctl/config"
)

// Runner executes prompt templates against the API.
type Runner struct {
	client client.Client
	cfg    config.Config
}

// NewRunner creates a runner using the given client and configuration.
func NewRunner(c client.Client, cfg config.Config) *Runner {
	return &Runner{client: c, cfg: cfg}
}

// RunOptions override template and config settings for a single run.
type RunOptions struct {
	// Model overrides the template's model.
	Model string

	// Temperature overrides the template's temperature when non-nil.
	Temperature *float64

	// MaxTokens overrides the template's max tokens when positive.
	MaxTokens int

	// Stream delivers response fragments through OnToken as they arrive.
	Stream  bool
	OnToken func(string)
}

// Run loads a template, interpolates its variables, and executes it.
func (r *Runner) Run(ctx context.Context, templatePath string, opts RunOptions) (*client.Result, error) {
	tpl, err := Load(templatePath)
	if err != nil {
		return nil, err
	}

	req := r.request(tpl, opts)
	if opts.Stream {
		return r.client.SendStream(ctx, req, opts.OnToken)
	}
	return r.client.Send(ctx, req)
}

// request resolves the effective model settings: explicit option, then
// template, then config.
func (r *Runner) request(tpl *Template, opts RunOptions) client.Request {
	m := opts.Model
	if m == "" {
		m = tpl.Model
	}
	if m == "" {
		m = r.cfg.Model
	}

	temperature := tpl.Temperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}

	maxTokens := tpl.MaxTokens
	if opts.MaxTokens > 0 {
		maxTokens = opts.MaxTokens
	}

	return client.Request{
		Model:       m,
		System:      tpl.System,
		Messages:    client.UserMessage(tpl.Interpolate()),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
}
