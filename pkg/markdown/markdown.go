package markdown

import (
	"github.com/charmbracelet/glamour"
)

// Render converts markdown to styled terminal text. Rendering is a pure
// presentation transform; on any renderer failure the raw text is returned
// unchanged.
func Render(text string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return text
	}

	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return out
}
