package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// When styled is false the plain ASCII style is used (pipes, CI logs).
func NewRenderer(styled bool) func(string) (string, error) {
	style := glamour.WithStandardStyle("ascii")
	if styled {
		// Automatically detect light/dark background
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
