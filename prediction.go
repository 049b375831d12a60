package gptzero

import "fmt"

// Response is the payload returned by both prediction endpoints. The file
// endpoint returns one document prediction per submitted file, in order.
type Response struct {
	Documents []DocumentPrediction `json:"documents" yaml:"documents"`
}

type DocumentPrediction struct {
	AverageGeneratedProb    float64           `json:"average_generated_prob" yaml:"average_generated_prob"`
	CompletelyGeneratedProb float64           `json:"completely_generated_prob" yaml:"completely_generated_prob"`
	OverallBurstiness       float64           `json:"overall_burstiness" yaml:"overall_burstiness"`
	Paragraphs              []ParagraphResult `json:"paragraphs" yaml:"paragraphs"`
	Sentences               []SentenceResult  `json:"sentences" yaml:"sentences"`
}

type ParagraphResult struct {
	CompletelyGeneratedProb float64 `json:"completely_generated_prob" yaml:"completely_generated_prob"`
	StartSentenceIndex      int     `json:"start_sentence_index" yaml:"start_sentence_index"`
	NumSentences            int     `json:"num_sentences" yaml:"num_sentences"`
}

type SentenceResult struct {
	GeneratedProb float64 `json:"generated_prob" yaml:"generated_prob"`
	Perplexity    float64 `json:"perplexity" yaml:"perplexity"`
	Sentence      string  `json:"sentence" yaml:"sentence"`
}

// Span returns the sentences covered by the paragraph.
func (p ParagraphResult) Span(sentences []SentenceResult) ([]SentenceResult, error) {
	if p.StartSentenceIndex < 0 || p.NumSentences < 0 {
		return nil, fmt.Errorf("%w: negative sentence span [%d, +%d)", ErrMalformedResponse, p.StartSentenceIndex, p.NumSentences)
	}
	end := p.StartSentenceIndex + p.NumSentences
	if end > len(sentences) {
		return nil, fmt.Errorf("%w: sentence span [%d, %d) exceeds %d sentences", ErrMalformedResponse, p.StartSentenceIndex, end, len(sentences))
	}
	return sentences[p.StartSentenceIndex:end], nil
}

// Validate checks that every paragraph refers to existing sentences. Whether
// paragraphs are contiguous and non-overlapping is not checked.
func (d DocumentPrediction) Validate() error {
	for i, paragraph := range d.Paragraphs {
		if _, err := paragraph.Span(d.Sentences); err != nil {
			return fmt.Errorf("paragraph %d: %w", i, err)
		}
	}
	return nil
}
