// Package prompt builds the system and user prompts sent to the completion
// API.
package prompt

import (
	"fmt"
	"strings"
)

// languageNames maps supported two-letter codes to display names. Unknown
// codes are passed through literally.
var languageNames = map[string]string{
	"en": "English",
	"ko": "Korean",
	"ja": "Japanese",
	"zh": "Chinese",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"pt": "Portuguese",
	"ru": "Russian",
	"it": "Italian",
}

// DefaultLanguage is the language code that produces no extra instruction.
const DefaultLanguage = "en"

// LanguageName returns the display name for a language code. Codes outside
// the table are returned as-is.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// User composes the user prompt for a single formatting request. The
// language instruction is only appended for non-default languages; custom
// instructions are appended verbatim when present.
func User(message, language, customPrompt string) string {
	var b strings.Builder

	b.WriteString("Convert the following commit message to Conventional Commits format:\n\n")
	fmt.Fprintf(&b, "\"%s\"\n\n", message)
	b.WriteString("Return ONLY the formatted commit message, nothing else.")

	if language != "" && language != DefaultLanguage {
		name := LanguageName(language)
		fmt.Fprintf(&b,
			"\n\nIMPORTANT: Write the commit message in %s. The type prefix (feat, fix, etc.) "+
				"should remain in English, but the description should be in %s.",
			name, name)
	}

	if customPrompt != "" {
		fmt.Fprintf(&b, "\n\nAdditional instructions: %s", customPrompt)
	}

	return b.String()
}
