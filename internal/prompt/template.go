package prompt

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/seoyeonmun/commit-formatter/internal/conventional"
	"gopkg.in/yaml.v3"
)

// Template is the on-disk form of a custom system prompt.
type Template struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Template    string `yaml:"template"`
}

// TemplateData is what a system prompt template can reference.
type TemplateData struct {
	Types string
}

const defaultSystemTemplate = `You are a commit message formatter that converts informal commit messages into Conventional Commits format.

Conventional Commits format:
<type>(<optional scope>): <description>

Types:
{{.Types}}

Rules:
1. Analyze the commit message and determine the most appropriate type
2. Keep the description concise (50 characters or less)
3. Use imperative mood (e.g., "add" not "added" or "adds")
4. Do not end the description with a period
5. If the commit message already follows conventional commits, return it as-is`

// System renders the system prompt. templatePath may be empty (builtin) or
// point to a yaml template file; a file that is not valid yaml is used as a
// raw template.
func System(templatePath string) (string, error) {
	content := defaultSystemTemplate
	if templatePath != "" {
		raw, err := os.ReadFile(templatePath)
		if err != nil {
			return "", fmt.Errorf("unable to read template file %s: %w", templatePath, err)
		}

		var tpl Template
		if yaml.Unmarshal(raw, &tpl) == nil && tpl.Template != "" {
			content = tpl.Template
		} else {
			content = string(raw)
		}
	}

	return render(content, TemplateData{Types: typeListBlock()})
}

func render(content string, data TemplateData) (string, error) {
	tmpl, err := template.New("system").Parse(content)
	if err != nil {
		return "", fmt.Errorf("invalid prompt template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt template: %w", err)
	}
	return buf.String(), nil
}

func typeListBlock() string {
	var b strings.Builder
	for _, commitType := range conventional.Types() {
		fmt.Fprintf(&b, "- %s: %s\n", commitType, conventional.Describe(commitType))
	}
	return strings.TrimRight(b.String(), "\n")
}
