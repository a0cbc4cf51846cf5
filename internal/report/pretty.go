package report

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultWrap is the column width Pretty wraps to.
const DefaultWrap = 80

// Pretty renders Markdown for a terminal. Outside a TTY glamour falls
// back to its plain style, so the output stays readable when piped.
func Pretty(md string, width int) (string, error) {
	if width <= 0 {
		width = DefaultWrap
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
