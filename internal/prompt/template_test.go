package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/seoyeonmun/commit-formatter/internal/conventional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_Builtin(t *testing.T) {
	result, err := System("")
	require.NoError(t, err)

	assert.Contains(t, result, "Conventional Commits format")
	assert.Contains(t, result, "50 characters or less")
	assert.Contains(t, result, "imperative mood")
	assert.Contains(t, result, "Do not end the description with a period")
	assert.Contains(t, result, "return it as-is")

	// Every registry type must be enumerated so the prompt and the
	// classifier agree on the valid tag set.
	for _, commitType := range conventional.Types() {
		assert.Contains(t, result, "- "+commitType+": "+conventional.Describe(commitType))
	}
}

func TestSystem_YAMLTemplateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `name: strict
description: stricter formatter
template: |
  Rewrite commit messages. Allowed types:
  {{.Types}}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	result, err := System(path)
	require.NoError(t, err)

	assert.Contains(t, result, "Rewrite commit messages.")
	assert.Contains(t, result, "- feat: A new feature")
	assert.NotContains(t, result, "{{.Types}}")
}

func TestSystem_RawTemplateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.txt")
	require.NoError(t, os.WriteFile(path, []byte("Just format it. Types: {{.Types}}"), 0o600))

	result, err := System(path)
	require.NoError(t, err)
	assert.Contains(t, result, "Just format it.")
	assert.Contains(t, result, "- fix: A bug fix")
}

func TestSystem_MissingFile(t *testing.T) {
	_, err := System(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSystem_InvalidTemplateSyntax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.txt")
	require.NoError(t, os.WriteFile(path, []byte("{{.Types"), 0o600))

	_, err := System(path)
	assert.Error(t, err)
}
