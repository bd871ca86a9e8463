// Package renderer turns projections into markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/compound"
)

//go:embed templates/*.md
var templates embed.FS

// funcs are available in every template.
var funcs = template.FuncMap{
	"multiplier": formatMultiplier,
}

// formatMultiplier writes a Scale-d multiplier as a decimal, 160 is "1.60".
func formatMultiplier(m uint64) string {
	return fmt.Sprintf("%d.%02d", m/compound.Scale, m%compound.Scale)
}

// RenderSchedule renders the yearly schedule of in to a markdown string.
func RenderSchedule(in compound.Input, rows []compound.Projection) string {
	var b strings.Builder
	b.WriteString(renderTemplate("schedule", "schedule.md", NewSchedule(in, rows)))
	ConditionalBlock(&b, func(w io.Writer) bool { return renderDrift(w, rows) })
	return b.String()
}

// renderTemplate executes the template stored in file under the given name.
func renderTemplate(name, file string, data any) string {
	content, err := fs.ReadFile(templates, "templates/"+file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(name).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
