package gptzerotest

import (
	"github.com/RichardKnop/gptzero"
)

type SentenceOption func(*gptzero.SentenceResult)

func WithSentenceGeneratedProb(prob float64) SentenceOption {
	return func(s *gptzero.SentenceResult) {
		s.GeneratedProb = prob
	}
}

func WithSentenceText(text string) SentenceOption {
	return func(s *gptzero.SentenceResult) {
		s.Sentence = text
	}
}

func (g *DataGen) Sentence(options ...SentenceOption) gptzero.SentenceResult {
	aSentence := gptzero.SentenceResult{
		GeneratedProb: g.Float64Range(0, 1),
		Perplexity:    g.Float64Range(1, 500),
		Sentence:      g.Faker.Sentence(g.IntRange(4, 16)),
	}

	for _, o := range options {
		o(&aSentence)
	}

	return aSentence
}

type PredictionOption func(*gptzero.DocumentPrediction)

// WithParagraphSizes replaces the paragraphs with contiguous paragraphs of the
// given sizes, generating as many sentences as they cover.
func WithParagraphSizes(g *DataGen, sizes ...int) PredictionOption {
	return func(p *gptzero.DocumentPrediction) {
		p.Paragraphs = make([]gptzero.ParagraphResult, 0, len(sizes))
		p.Sentences = nil
		for _, size := range sizes {
			p.Paragraphs = append(p.Paragraphs, gptzero.ParagraphResult{
				CompletelyGeneratedProb: g.Float64Range(0, 1),
				StartSentenceIndex:      len(p.Sentences),
				NumSentences:            size,
			})
			for range size {
				p.Sentences = append(p.Sentences, g.Sentence())
			}
		}
	}
}

// WithGeneratedProbs overrides the generated probability of the first
// len(probs) sentences.
func WithGeneratedProbs(probs ...float64) PredictionOption {
	return func(p *gptzero.DocumentPrediction) {
		for i, prob := range probs {
			if i >= len(p.Sentences) {
				return
			}
			p.Sentences[i].GeneratedProb = prob
		}
	}
}

func WithParagraphs(paragraphs ...gptzero.ParagraphResult) PredictionOption {
	return func(p *gptzero.DocumentPrediction) {
		p.Paragraphs = paragraphs
	}
}

func WithSentences(sentences ...gptzero.SentenceResult) PredictionOption {
	return func(p *gptzero.DocumentPrediction) {
		p.Sentences = sentences
	}
}

// Prediction returns a well formed document prediction with one to four
// contiguous paragraphs.
func (g *DataGen) Prediction(options ...PredictionOption) gptzero.DocumentPrediction {
	aPrediction := gptzero.DocumentPrediction{
		AverageGeneratedProb:    g.Float64Range(0, 1),
		CompletelyGeneratedProb: g.Float64Range(0, 1),
		OverallBurstiness:       g.Float64Range(0, 200),
	}

	sizes := make([]int, g.IntRange(1, 4))
	for i := range sizes {
		sizes[i] = g.IntRange(1, 6)
	}
	WithParagraphSizes(g, sizes...)(&aPrediction)

	for _, o := range options {
		o(&aPrediction)
	}

	return aPrediction
}

func (g *DataGen) Response(numDocuments int, options ...PredictionOption) *gptzero.Response {
	aResponse := &gptzero.Response{
		Documents: make([]gptzero.DocumentPrediction, 0, numDocuments),
	}
	for range numDocuments {
		aResponse.Documents = append(aResponse.Documents, g.Prediction(options...))
	}
	return aResponse
}
