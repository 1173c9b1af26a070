// Package lint statically checks prompt template YAML files against a fixed
// catalog of rules. Checking is purely local; the optional fix suggestions
// go through the API and require a PRO license.
package lint
