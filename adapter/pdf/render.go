package pdf

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/RichardKnop/gptzero"
)

const (
	margin      = 72.0
	titleSize   = 20.0
	sectionSize = 16.0
	bodySize    = 12.0
	noteSize    = 8.0
	leading     = 1.2
	// vertical offset of note markers above the baseline
	markerRise = 4.0
)

type rgb struct{ r, g, b int }

var (
	black = rgb{0, 0, 0}
	red   = rgb{255, 0, 0}
)

// Render paints the report onto pages of the configured size using the core fonts. Highlighted
// sentences are red and followed by a superscript note marker.
func (a *Adapter) Render(w io.Writer, report *gptzero.Report) error {
	doc := fpdf.New("P", "pt", a.pageSize, "")
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(true, margin)
	doc.SetTitle(report.Title, true)
	doc.SetCreator(a.creator, false)
	doc.AliasNbPages("")

	p := &painter{
		doc:    doc,
		family: a.fontFamily,
		tr:     doc.UnicodeTranslatorFromDescriptor(""),
	}

	doc.SetFooterFunc(func() {
		doc.SetY(-margin / 2)
		p.font(noteSize, black)
		doc.CellFormat(0, noteSize*leading, fmt.Sprintf("Page %d of {nb}", doc.PageNo()), "", 0, "C", false, 0, "")
	})

	doc.AddPage()

	p.heading(report.Title, titleSize)
	p.moveDown(sectionSize, 1)
	p.heading(gptzero.SectionMeasurements, sectionSize)
	p.moveDown(bodySize, 1)
	for _, measurement := range report.Measurements {
		p.bullet(measurement.String(), bodySize)
	}

	p.moveDown(sectionSize, 1)
	p.heading(gptzero.SectionProcessedText, sectionSize)
	p.moveDown(bodySize, 1)

	for _, paragraph := range report.Paragraphs {
		for _, sentence := range paragraph.Sentences {
			if sentence.Highlighted {
				p.font(bodySize, red)
				p.write(sentence.Text+" ", bodySize)
				doc.SubWrite(bodySize*leading, sentence.Marker(), noteSize, markerRise, 0, "")
				p.write(" ", bodySize)
				continue
			}
			p.font(bodySize, black)
			p.write(sentence.Text+" ", bodySize)
		}
		p.font(bodySize, black)
		p.moveDown(bodySize, 2)
	}

	p.moveDown(bodySize, 3)
	p.heading(gptzero.SectionNotes, bodySize)
	for _, line := range report.NoteLines() {
		p.line(line, noteSize)
	}

	a.logger.Sugar().With(
		"pages", doc.PageCount(),
		"notes", len(report.Notes),
	).Debug("rendered pdf report")

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}

	return nil
}

type painter struct {
	doc    *fpdf.Fpdf
	family string
	tr     func(string) string
}

func (p *painter) font(size float64, color rgb) {
	p.doc.SetFont(p.family, "", size)
	p.doc.SetTextColor(color.r, color.g, color.b)
}

func (p *painter) write(text string, size float64) {
	p.doc.Write(size*leading, p.tr(text))
}

func (p *painter) heading(text string, size float64) {
	p.font(size, black)
	p.doc.MultiCell(0, size*leading, p.tr(text), "", "L", false)
}

func (p *painter) line(text string, size float64) {
	p.font(size, black)
	p.doc.MultiCell(0, size*leading, p.tr(text), "", "L", false)
}

func (p *painter) bullet(text string, size float64) {
	p.font(size, black)
	p.doc.SetX(margin + size)
	p.doc.MultiCell(0, size*leading, p.tr("• "+text), "", "L", false)
}

// moveDown advances by n lines of the given font size, ending the current line first.
func (p *painter) moveDown(size float64, n int) {
	p.doc.Ln(size * leading * float64(n))
}
