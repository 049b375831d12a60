package pdf

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/pagetree"
	"seehuhn.de/go/pdf/reader"
)

// ExtractText reads a PDF document, typically a rendered report, and returns
// the text of every page.
func (a *Adapter) ExtractText(data io.ReadSeeker) ([]string, error) {
	r, err := pdf.NewReader(data, nil)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}

	numPages, err := pagetree.NumPages(r)
	if err != nil {
		return nil, fmt.Errorf("counting pages: %w", err)
	}

	var (
		spaceWidths = make(map[font.Embedded]float64)
		unmapped    int
		w           *strings.Builder
		pages       = make([]string, 0, numPages)
	)

	contents := reader.New(r, nil)
	contents.TextEvent = func(op reader.TextEvent, arg float64) {
		switch op {
		case reader.TextEventSpace:
			w0, ok := spaceWidths[contents.TextFont]
			if !ok {
				w0 = spaceWidth(contents.TextFont)
				spaceWidths[contents.TextFont] = w0
			}

			if arg > 0.3*w0 {
				w.WriteString(" ")
			}
		case reader.TextEventNL, reader.TextEventMove:
			w.WriteString("\n")
		}
	}
	// Reports only use core fonts, whose encodings map every code to text.
	contents.Character = func(_ cid.CID, text string) error {
		if text == "" {
			unmapped++
			return nil
		}
		w.WriteString(text)
		return nil
	}

	for pageNo := 1; pageNo <= numPages; pageNo++ {
		_, pageDict, err := pagetree.GetPage(r, pageNo-1)
		if err != nil {
			return nil, fmt.Errorf("reading page %d: %w", pageNo, err)
		}

		w = new(strings.Builder)
		if err := contents.ParsePage(pageDict, matrix.Identity); err != nil {
			return nil, fmt.Errorf("error parsing page %d: %w", pageNo, err)
		}
		pages = append(pages, w.String())
	}

	a.logger.Sugar().With(
		"pages", numPages,
		"unmapped characters", unmapped,
	).Debug("extracted pdf text")

	return pages, nil
}

// Space widths are in glyph space units, 1/1000 of the font size.
const (
	defaultSpaceWidth = 250 // Times-Roman
	minSpaceWidth     = 200
	maxSpaceWidth     = 1000
)

// spaceWidth returns the width of a space in F. Fonts without a space glyph
// get half their median glyph width, which is close for the Latin core fonts.
func spaceWidth(F font.Embedded) float64 {
	fromFile, ok := F.(font.FromFile)
	if !ok {
		return defaultSpaceWidth
	}

	d := fromFile.GetDict()
	if d == nil {
		return defaultSpaceWidth
	}

	var widths []float64
	for _, info := range d.Characters() {
		if info.Width <= 0 {
			continue
		}
		if info.Text == " " {
			return info.Width
		}
		widths = append(widths, info.Width)
	}

	return medianSpaceWidth(widths)
}

func medianSpaceWidth(widths []float64) float64 {
	if len(widths) == 0 {
		return defaultSpaceWidth
	}

	sorted := slices.Clone(widths)
	slices.Sort(sorted)

	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return min(max(median/2, minSpaceWidth), maxSpaceWidth)
}
