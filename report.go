package gptzero

import (
	"fmt"
	"strconv"
	"time"
)

const (
	ReportTitle           = "GPTZero Report"
	SectionMeasurements   = "Overall Measurements"
	SectionProcessedText  = "Processed Text"
	SectionNotes          = "Notes"
	NoNotesMessage        = "No notes were recorded"
	defaultReportBaseName = "GPTZero Report"
)

type Measurement struct {
	Label string
	Value float64
}

func (m Measurement) String() string {
	return fmt.Sprintf("%s: %s", m.Label, FormatNumber(m.Value))
}

// ReportSentence is a sentence as it appears in the processed text. Note is
// zero unless the sentence is highlighted.
type ReportSentence struct {
	Text        string
	Highlighted bool
	Note        int
}

// Marker returns the footnote marker of a highlighted sentence, e.g. "[3]".
func (s ReportSentence) Marker() string {
	if !s.Highlighted {
		return ""
	}
	return fmt.Sprintf("[%d]", s.Note)
}

type ReportParagraph struct {
	Sentences []ReportSentence
}

type Note struct {
	Number        int
	GeneratedProb float64
	Perplexity    float64
}

func (n Note) String() string {
	return fmt.Sprintf("[%d] : Generated probability: %s; Perplexity: %s", n.Number, FormatNumber(n.GeneratedProb), FormatNumber(n.Perplexity))
}

// Report is a renderer neutral layout of one document prediction.
type Report struct {
	Title        string
	Measurements []Measurement
	Paragraphs   []ReportParagraph
	Notes        []Note
}

// NewReport walks the paragraphs of a prediction and highlights every
// sentence whose generated probability reaches GeneratedThreshold, numbering
// notes in the order the sentences are encountered.
func NewReport(prediction DocumentPrediction) (*Report, error) {
	if err := prediction.Validate(); err != nil {
		return nil, err
	}

	report := &Report{
		Title: ReportTitle,
		Measurements: []Measurement{
			{Label: "Overall Generated Probability", Value: prediction.AverageGeneratedProb},
			{Label: "Completely Generated Probability", Value: prediction.CompletelyGeneratedProb},
			{Label: "Overall Burstiness", Value: prediction.OverallBurstiness},
		},
		Paragraphs: make([]ReportParagraph, 0, len(prediction.Paragraphs)),
	}

	noteNum := 1
	for _, paragraph := range prediction.Paragraphs {
		// Span cannot fail here, Validate has checked every paragraph.
		sentences, _ := paragraph.Span(prediction.Sentences)

		reportParagraph := ReportParagraph{
			Sentences: make([]ReportSentence, 0, len(sentences)),
		}
		for _, sentence := range sentences {
			if sentence.GeneratedProb < GeneratedThreshold {
				reportParagraph.Sentences = append(reportParagraph.Sentences, ReportSentence{Text: sentence.Sentence})
				continue
			}

			reportParagraph.Sentences = append(reportParagraph.Sentences, ReportSentence{
				Text:        sentence.Sentence,
				Highlighted: true,
				Note:        noteNum,
			})
			report.Notes = append(report.Notes, Note{
				Number:        noteNum,
				GeneratedProb: sentence.GeneratedProb,
				Perplexity:    sentence.Perplexity,
			})
			noteNum++
		}
		report.Paragraphs = append(report.Paragraphs, reportParagraph)
	}

	return report, nil
}

// NoteLines returns the lines of the notes section.
func (r *Report) NoteLines() []string {
	if len(r.Notes) == 0 {
		return []string{NoNotesMessage}
	}
	lines := make([]string, 0, len(r.Notes))
	for _, note := range r.Notes {
		lines = append(lines, note.String())
	}
	return lines
}

// FormatNumber prints the shortest representation that round-trips.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// DefaultReportName is the file name used when the caller does not name a report.
func DefaultReportName(t time.Time, extension string) string {
	return fmt.Sprintf("%s - %d%s", defaultReportBaseName, t.UnixMilli(), extension)
}
