package lint

import (
	"fmt"
	"strings"
)

// Severity of a lint rule or violation.
type Severity string

// Rule severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Category groups related rules.
type Category string

// Rule categories.
const (
	CategoryStructure  Category = "structure"
	CategorySyntax     Category = "syntax"
	CategorySecurity   Category = "security"
	CategoryStyle      Category = "style"
	CategoryComplexity Category = "complexity"
)

// Rule is one built-in lint rule.
type Rule struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Category    Category `json:"category"`
}

// Violation is one instance of a rule triggered on a file. Line is 1-based;
// 0 means the location is unknown.
type Violation struct {
	RuleID     string   `json:"rule_id"`
	File       string   `json:"file"`
	Line       int      `json:"line,omitempty"`
	Column     int      `json:"column,omitempty"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	Severity   Severity `json:"severity"`
}

// Report is the outcome of linting one file.
type Report struct {
	Violations []Violation `json:"violations"`
	Summary    string      `json:"summary"`
	FilePath   string      `json:"file_path"`
}

// buildSummary renders the severity counts as a phrase, in the order error,
// warning, info. Info counts are never pluralized.
func buildSummary(violations []Violation) string {
	if len(violations) == 0 {
		return "No issues found."
	}
	var errors, warnings, infos int
	for _, v := range violations {
		switch v.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		case SeverityInfo:
			infos++
		}
	}
	var parts []string
	if errors > 0 {
		parts = append(parts, fmt.Sprintf("%d error%s", errors, plural(errors)))
	}
	if warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warning%s", warnings, plural(warnings)))
	}
	if infos > 0 {
		parts = append(parts, fmt.Sprintf("%d info", infos))
	}
	return strings.Join(parts, ", ") + "."
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
