package html

import (
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"

	"github.com/RichardKnop/gptzero"
)

// Render writes the report as a standalone HTML document. The body is
// composed as Markdown and converted with blackfriday.
func (a *Adapter) Render(w io.Writer, report *gptzero.Report) error {
	// Smartypants is off so sentences keep their punctuation as sent.
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.UseXHTML,
	})
	body := blackfriday.Run(
		[]byte(markdown(report)),
		blackfriday.WithExtensions(blackfriday.CommonExtensions),
		blackfriday.WithRenderer(renderer),
	)

	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s
</style>
</head>
<body>
%s</body>
</html>
`, html.EscapeString(report.Title), a.stylesheet, body)
	if err != nil {
		return fmt.Errorf("writing html: %w", err)
	}

	a.logger.Sugar().With("notes", len(report.Notes)).Debug("rendered html report")

	return nil
}

func markdown(report *gptzero.Report) string {
	sb := new(strings.Builder)

	fmt.Fprintf(sb, "# %s\n\n", escape(report.Title))

	fmt.Fprintf(sb, "## %s\n\n", gptzero.SectionMeasurements)
	for _, measurement := range report.Measurements {
		fmt.Fprintf(sb, "- %s\n", escape(measurement.String()))
	}
	sb.WriteString("\n")

	fmt.Fprintf(sb, "## %s\n\n", gptzero.SectionProcessedText)
	for _, paragraph := range report.Paragraphs {
		if len(paragraph.Sentences) == 0 {
			continue
		}
		parts := make([]string, 0, len(paragraph.Sentences))
		for _, sentence := range paragraph.Sentences {
			if sentence.Highlighted {
				parts = append(parts, fmt.Sprintf(`<span class="generated">%s<sup>%s</sup></span>`, escape(sentence.Text), escape(sentence.Marker())))
				continue
			}
			parts = append(parts, escape(sentence.Text))
		}
		sb.WriteString(escapeBlockStart(strings.Join(parts, " ")))
		sb.WriteString("\n\n")
	}

	fmt.Fprintf(sb, "## %s\n\n", gptzero.SectionNotes)
	if len(report.Notes) == 0 {
		sb.WriteString(gptzero.NoNotesMessage)
		sb.WriteString("\n")
		return sb.String()
	}
	for _, line := range report.NoteLines() {
		fmt.Fprintf(sb, "- %s\n", escape(line))
	}

	return sb.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`#`, `\#`,
	`|`, `\|`,
	`~`, `\~`,
)

// escape makes API supplied text safe to embed in Markdown with inline HTML.
func escape(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return html.EscapeString(markdownEscaper.Replace(s))
}

var orderedListStart = regexp.MustCompile(`^(\d+)([.)])`)

// escapeBlockStart stops a paragraph from being read as a list item.
func escapeBlockStart(s string) string {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return `\` + s
	}
	return orderedListStart.ReplaceAllString(s, `$1\$2`)
}
