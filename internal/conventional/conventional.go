// Package conventional holds the Conventional Commits type registry and the
// classifier that decides whether a message already follows the convention.
// The same registry feeds the model prompt, so the classifier and the
// instructions given to the model cannot drift apart.
package conventional

import (
	"regexp"
	"strings"
)

// typeDescriptions maps each supported commit type to the description shown
// to the model.
var typeDescriptions = map[string]string{
	"feat":     "A new feature",
	"fix":      "A bug fix",
	"docs":     "Documentation only changes",
	"style":    "Changes that do not affect the meaning of the code",
	"refactor": "A code change that neither fixes a bug nor adds a feature",
	"perf":     "A code change that improves performance",
	"test":     "Adding missing tests or correcting existing tests",
	"build":    "Changes that affect the build system or external dependencies",
	"ci":       "Changes to CI configuration files and scripts",
	"chore":    "Other changes that don't modify src or test files",
	"revert":   "Reverts a previous commit",
}

// typeOrder fixes the order types appear in prompts and patterns.
var typeOrder = []string{
	"feat", "fix", "docs", "style", "refactor", "perf",
	"test", "build", "ci", "chore", "revert",
}

// Accepts "type: text", "type(scope): text" and "type(scope)!: text",
// case-insensitive on the type.
var messagePattern = regexp.MustCompile(`(?i)^(` + TypesPattern() + `)(\(.+\))?!?:\s*.+`)

// Types returns all supported commit types in prompt order.
func Types() []string {
	types := make([]string, len(typeOrder))
	copy(types, typeOrder)
	return types
}

// Describe returns the description for a commit type, or empty string if the
// type is not in the registry.
func Describe(commitType string) string {
	return typeDescriptions[strings.ToLower(commitType)]
}

// TypesPattern returns an alternation pattern matching all commit types.
func TypesPattern() string {
	return strings.Join(typeOrder, "|")
}

// IsConventional reports whether the message already follows the
// Conventional Commits format. Empty messages and messages missing the colon
// separator are rejected.
func IsConventional(message string) bool {
	return messagePattern.MatchString(strings.TrimSpace(message))
}
