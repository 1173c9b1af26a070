package lint

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrUnreadable indicates the lint target is missing, not a regular file, or
// not valid text. Malformed YAML content is a violation, not an error.
var ErrUnreadable = errors.New("unreadable lint target")

// MaxNestingDepth is the L008 threshold.
const MaxNestingDepth = 6

// secretPatterns match API-key-like tokens and generic credential
// assignments for L006.
var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)sk-ant-[a-zA-Z0-9]{10,}`),
	regexp.MustCompile(`(?i)sk-[a-zA-Z0-9]{20,}`),
	regexp.MustCompile(`(?i)api[_-]?key\s*[:=]\s*['"][^'"]{10,}['"]`),
	regexp.MustCompile(`(?i)password\s*[:=]\s*['"][^'"]{5,}['"]`),
	regexp.MustCompile(`(?i)secret\s*[:=]\s*['"][^'"]{5,}['"]`),
}

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// Check runs all lint rules on a YAML file. Purely local, no API calls.
func Check(path string) (*Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: file not found: %s", ErrUnreadable, path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: not a file: %s", ErrUnreadable, path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read %s: %v", ErrUnreadable, path, err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: cannot read binary file: %s", ErrUnreadable, path)
	}
	content := string(raw)

	// L001 short-circuits: no further checks run on unparseable input.
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return &Report{
			Violations: []Violation{{
				RuleID:   "L001",
				File:     path,
				Message:  "Invalid YAML syntax.",
				Severity: rulesByID["L001"].Severity,
			}},
			Summary:  "1 error (invalid YAML)",
			FilePath: path,
		}, nil
	}

	var violations []Violation

	// L004 duplicates are found while turning the node tree into plain
	// values. yaml.v3 would reject duplicate keys during a map decode, so
	// the walk builds the document itself, last value winning.
	var dupes []string
	value := buildValue(&root, &dupes)
	for _, key := range dupes {
		violations = append(violations, Violation{
			RuleID:   "L004",
			File:     path,
			Message:  fmt.Sprintf("Duplicate key: '%s'.", key),
			Severity: rulesByID["L004"].Severity,
		})
	}

	doc, ok := value.(map[string]any)
	if !ok {
		return &Report{Violations: violations, Summary: buildSummary(violations), FilePath: path}, nil
	}

	violations = checkMissingField(doc, "name", "L002", path, violations)
	violations = checkMissingField(doc, "version", "L003", path, violations)
	violations = checkUnusedVariables(doc, path, violations)
	violations = checkHardcodedSecrets(content, path, violations)
	violations = checkNamingConvention(doc, path, violations)
	violations = checkDeepNesting(doc, path, violations)

	return &Report{Violations: violations, Summary: buildSummary(violations), FilePath: path}, nil
}

// buildValue converts a parsed node tree into maps, slices, and scalars,
// recording duplicate mapping keys in document order.
func buildValue(n *yaml.Node, dupes *[]string) any {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return buildValue(n.Content[0], dupes)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		seen := make(map[string]bool, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if seen[key] {
				*dupes = append(*dupes, key)
			}
			seen[key] = true
			m[key] = buildValue(n.Content[i+1], dupes)
		}
		return m
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			items = append(items, buildValue(c, dupes))
		}
		return items
	case yaml.AliasNode:
		return buildValue(n.Alias, dupes)
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return n.Value
		}
		return v
	}
}

func checkMissingField(doc map[string]any, field, ruleID, path string, violations []Violation) []Violation {
	if _, ok := doc[field]; ok {
		return violations
	}
	return append(violations, Violation{
		RuleID:   ruleID,
		File:     path,
		Message:  fmt.Sprintf("Missing '%s' field.", field),
		Severity: rulesByID[ruleID].Severity,
	})
}

// checkUnusedVariables flags variables never referenced as {{name}} or
// {name} in the template's text fields. The substring heuristic is a stable
// contract: a variable used only inside a longer token still counts as used.
func checkUnusedVariables(doc map[string]any, path string, violations []Violation) []Violation {
	variables, ok := doc["variables"].(map[string]any)
	if !ok {
		return violations
	}

	var text strings.Builder
	for _, key := range []string{"prompt", "system", "template", "messages"} {
		switch val := doc[key].(type) {
		case string:
			text.WriteString(val)
		case []any:
			for _, item := range val {
				switch it := item.(type) {
				case string:
					text.WriteString(it)
				case map[string]any:
					if content, ok := it["content"]; ok {
						fmt.Fprint(&text, content)
					}
				}
			}
		}
	}
	fields := text.String()

	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if strings.Contains(fields, "{{"+name+"}}") || strings.Contains(fields, "{"+name+"}") {
			continue
		}
		violations = append(violations, Violation{
			RuleID:   "L005",
			File:     path,
			Message:  fmt.Sprintf("Variable '%s' defined but not used in prompt.", name),
			Severity: rulesByID["L005"].Severity,
		})
	}
	return violations
}

func checkHardcodedSecrets(content, path string, violations []Violation) []Violation {
	for i, line := range strings.Split(content, "\n") {
		for _, pattern := range secretPatterns {
			if !pattern.MatchString(line) {
				continue
			}
			violations = append(violations, Violation{
				RuleID:     "L006",
				File:       path,
				Line:       i + 1,
				Message:    "Potential hardcoded secret detected.",
				Suggestion: "Use environment variables instead.",
				Severity:   rulesByID["L006"].Severity,
			})
			// One violation per line.
			break
		}
	}
	return violations
}

func checkNamingConvention(doc map[string]any, path string, violations []Violation) []Violation {
	name, ok := doc["name"].(string)
	if !ok || namePattern.MatchString(name) {
		return violations
	}
	return append(violations, Violation{
		RuleID:     "L007",
		File:       path,
		Message:    fmt.Sprintf("Name '%s' should be lowercase with hyphens/underscores.", name),
		Suggestion: "Use lowercase letters, digits, hyphens, or underscores.",
		Severity:   rulesByID["L007"].Severity,
	})
}

func checkDeepNesting(doc map[string]any, path string, violations []Violation) []Violation {
	depth := measureDepth(doc, 0)
	if depth <= MaxNestingDepth {
		return violations
	}
	return append(violations, Violation{
		RuleID:     "L008",
		File:       path,
		Message:    fmt.Sprintf("Nesting depth %d exceeds maximum of %d.", depth, MaxNestingDepth),
		Suggestion: "Consider flattening the structure.",
		Severity:   rulesByID["L008"].Severity,
	})
}

// measureDepth counts container levels; an empty container still counts as
// one level and scalars contribute nothing.
func measureDepth(v any, current int) int {
	switch val := v.(type) {
	case map[string]any:
		if len(val) == 0 {
			return current + 1
		}
		max := 0
		for _, child := range val {
			if d := measureDepth(child, current+1); d > max {
				max = d
			}
		}
		return max
	case []any:
		if len(val) == 0 {
			return current + 1
		}
		max := 0
		for _, item := range val {
			if d := measureDepth(item, current+1); d > max {
				max = d
			}
		}
		return max
	default:
		return current
	}
}
