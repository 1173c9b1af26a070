package lint

// rules is the built-in catalog. Order and ids are a stable contract for
// consuming tools.
var rules = []Rule{
	{
		ID:          "L001",
		Name:        "invalid-yaml-syntax",
		Description: "File is not valid YAML.",
		Severity:    SeverityError,
		Category:    CategorySyntax,
	},
	{
		ID:          "L002",
		Name:        "missing-name-field",
		Description: "Prompt template should have a 'name' field.",
		Severity:    SeverityError,
		Category:    CategoryStructure,
	},
	{
		ID:          "L003",
		Name:        "missing-version-field",
		Description: "Prompt template should have a 'version' field.",
		Severity:    SeverityWarning,
		Category:    CategoryStructure,
	},
	{
		ID:          "L004",
		Name:        "duplicate-keys",
		Description: "YAML contains duplicate mapping keys.",
		Severity:    SeverityError,
		Category:    CategorySyntax,
	},
	{
		ID:          "L005",
		Name:        "unused-variables",
		Description: "Template variables defined but not used in prompt text.",
		Severity:    SeverityWarning,
		Category:    CategoryStyle,
	},
	{
		ID:          "L006",
		Name:        "hardcoded-secrets",
		Description: "Potential secrets or API keys found in template.",
		Severity:    SeverityError,
		Category:    CategorySecurity,
	},
	{
		ID:          "L007",
		Name:        "naming-convention",
		Description: "Template name should be lowercase with hyphens or underscores.",
		Severity:    SeverityInfo,
		Category:    CategoryStyle,
	},
	{
		ID:          "L008",
		Name:        "deep-nesting",
		Description: "YAML nesting exceeds recommended depth.",
		Severity:    SeverityWarning,
		Category:    CategoryComplexity,
	},
}

var rulesByID = func() map[string]Rule {
	m := make(map[string]Rule, len(rules))
	for _, r := range rules {
		m[r.ID] = r
	}
	return m
}()

// Rules returns a copy of all built-in rules in catalog order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Lookup returns the rule with the given id.
func Lookup(id string) (Rule, bool) {
	r, ok := rulesByID[id]
	return r, ok
}
