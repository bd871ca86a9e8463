package cmd

import (
	"fmt"
	"log"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders md for the terminal, it falls back to the markdown source.
func printMarkdown(md string) {
	out, err := renderMarkdown(md)
	if err != nil {
		log.Printf("warning, cannot render markdown: %v", err)
		out = md
	}
	fmt.Fprint(stdout, out)
}

func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
