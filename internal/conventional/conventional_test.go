package conventional

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConventional_AllTypes(t *testing.T) {
	for _, commitType := range Types() {
		t.Run(commitType, func(t *testing.T) {
			assert.True(t, IsConventional(commitType+": do something"))
			assert.True(t, IsConventional(commitType+"(api): do something"))
			assert.True(t, IsConventional(commitType+"(api)!: drop old endpoint"))
			assert.True(t, IsConventional(commitType+"!: drop old endpoint"))
		})
	}
}

func TestIsConventional_CaseInsensitive(t *testing.T) {
	assert.True(t, IsConventional("FEAT: add dark mode"))
	assert.True(t, IsConventional("Fix(auth): correct token refresh"))
	assert.True(t, IsConventional("ReFaCtOr: simplify parser"))
}

func TestIsConventional_Whitespace(t *testing.T) {
	assert.True(t, IsConventional("  feat: add dark mode toggle  "))
	assert.True(t, IsConventional("fix:correct login validation"))
	assert.True(t, IsConventional("feat: multi-line subject\n\nwith a body"))
}

func TestIsConventional_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"empty string", ""},
		{"whitespace only", "   \n  "},
		{"no colon", "feat add dark mode"},
		{"unknown type", "feature: add dark mode"},
		{"typo in type", "fxi: correct bug"},
		{"plain sentence", "fixed bug in login"},
		{"type only", "feat:"},
		{"scope without colon", "feat(api) add endpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, IsConventional(tt.message))
		})
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "A new feature", Describe("feat"))
	assert.Equal(t, "A new feature", Describe("FEAT"))
	assert.Equal(t, "Reverts a previous commit", Describe("revert"))
	assert.Empty(t, Describe("unknown"))
}

func TestTypesPattern(t *testing.T) {
	pattern := TypesPattern()
	assert.Equal(t, strings.Count(pattern, "|")+1, len(Types()))
	for _, commitType := range Types() {
		assert.Contains(t, pattern, commitType)
	}
}

func TestTypes_RegistryComplete(t *testing.T) {
	assert.Len(t, Types(), len(typeDescriptions))
	for _, commitType := range Types() {
		assert.NotEmpty(t, Describe(commitType), fmt.Sprintf("type %s has no description", commitType))
	}
}
