// Package output appends workflow output values to the file GitHub Actions
// names through GITHUB_OUTPUT.
package output

import (
	"fmt"
	"os"
	"strings"
)

// Writer appends name/value pairs to the output file. A nil Writer or an
// empty path makes every write a no-op, so local runs work without a sink.
type Writer struct {
	Path string
}

func New(path string) *Writer {
	return &Writer{Path: path}
}

// Set appends one output value. Multiline values use the delimiter form so
// commit bodies survive the line-oriented format.
func (w *Writer) Set(name, value string) error {
	if w == nil || w.Path == "" {
		return nil
	}

	f, err := os.OpenFile(w.Path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatPair(name, value)); err != nil {
		return fmt.Errorf("failed to write output %s: %w", name, err)
	}
	return nil
}

func formatPair(name, value string) string {
	if !strings.Contains(value, "\n") {
		return fmt.Sprintf("%s=%s\n", name, value)
	}

	delimiter := "EOF"
	for strings.Contains(value, delimiter) {
		delimiter += "_"
	}
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
}
