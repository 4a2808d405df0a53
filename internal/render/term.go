package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// PrintMarkdown renders markdown to w with terminal styling. If the styled
// renderer cannot be built the raw markdown is printed instead, so the
// report always reaches the user.
func PrintMarkdown(w io.Writer, markdown string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Fprintln(w, markdown)
		return
	}
	styled, err := r.Render(markdown)
	if err != nil {
		fmt.Fprintln(w, markdown)
		return
	}
	fmt.Fprint(w, styled)
}
