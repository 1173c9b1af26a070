package prompt

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/promptctl/model"
)

// Template is a prompt template loaded from YAML.
type Template struct {
	Name        string
	System      string
	User        string
	Variables   map[string]string
	Model       string
	Temperature float64
	MaxTokens   int
}

// templateFile mirrors the YAML document. Pointer fields distinguish an
// absent key from an explicit zero (temperature: 0.0 is meaningful).
type templateFile struct {
	Name        string            `yaml:"name"`
	System      string            `yaml:"system"`
	User        string            `yaml:"user"`
	Variables   map[string]string `yaml:"variables"`
	Model       string            `yaml:"model"`
	Temperature *float64          `yaml:"temperature"`
	MaxTokens   *int              `yaml:"max_tokens"`
}

// Load reads a prompt template from a YAML file.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: template file not found: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	var tf templateFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("%w: bad YAML in %s: %v", ErrTemplate, path, err)
	}
	if tf.Name == "" {
		return nil, fmt.Errorf("%w: missing required 'name' field", ErrTemplate)
	}
	if tf.User == "" {
		return nil, fmt.Errorf("%w: missing required 'user' field", ErrTemplate)
	}

	t := &Template{
		Name:        tf.Name,
		System:      tf.System,
		User:        tf.User,
		Variables:   tf.Variables,
		Model:       tf.Model,
		Temperature: model.DefaultTemperature,
		MaxTokens:   model.DefaultMaxTokens,
	}
	if t.Model == "" {
		t.Model = string(model.Default)
	}
	if tf.Temperature != nil {
		t.Temperature = *tf.Temperature
	}
	if tf.MaxTokens != nil {
		t.MaxTokens = *tf.MaxTokens
	}
	return t, nil
}

// Interpolate substitutes the template's variables into the user prompt.
// A variable named foo replaces every {foo} occurrence. This is a plain
// substring replacement, matching the linter's notion of a used variable.
func (t *Template) Interpolate() string {
	text := t.User
	for key, value := range t.Variables {
		text = strings.ReplaceAll(text, "{"+key+"}", value)
	}
	return text
}
