// Package scoring turns a transcript, a transcription confidence, and an
// audio duration into a structured speech-delivery report: clarity, fluency,
// pace, filler usage, and an estimated pronunciation score.
//
// Every sub-scorer is pure and synchronous. Collaborator failures and
// insufficient-signal inputs resolve to documented neutral fallbacks, never
// to an error from Analyze. The two lexicons in this package are read-only
// after process start, so an Analyzer is safe for unlimited concurrent use.
package scoring

import (
	"strings"
	"unicode/utf8"

	"speech-scoring-service/internal/models"
)

// WordTokenizer splits text into lower-cased word tokens. It may fail on
// malformed input; scorers then fall back to their neutral score.
type WordTokenizer interface {
	Words(text string) ([]string, error)
}

// SentenceTokenizer splits text into sentence strings.
type SentenceTokenizer interface {
	Sentences(text string) ([]string, error)
}

// SimilarityScorer compares two raw texts and returns a value in [0, 1].
type SimilarityScorer interface {
	Similarity(a, b string) (float64, error)
}

// Analyzer runs the scoring pipeline. Construct it explicitly with
// NewAnalyzer and share it freely; it holds no mutable state.
type Analyzer struct {
	cfg        Config
	words      WordTokenizer
	sentences  SentenceTokenizer
	similarity SimilarityScorer
}

// NewAnalyzer builds an Analyzer with the given configuration and injected
// capabilities. The similarity scorer may be nil when reference comparison is
// never used; word and sentence tokenizers are required.
func NewAnalyzer(cfg Config, words WordTokenizer, sentences SentenceTokenizer, similarity SimilarityScorer) *Analyzer {
	return &Analyzer{
		cfg:        cfg,
		words:      words,
		sentences:  sentences,
		similarity: similarity,
	}
}

// Config returns the analyzer's active configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Result pairs the assembled report with the component scores behind it,
// so callers can observe which components took their fallback path.
type Result struct {
	Report     models.ScoreReport
	Clarity    Score
	Fluency    Score
	Vocabulary Score
	Coherence  Score
}

// Fallbacks returns the names of the components that resolved to a
// fallback rather than a computed value.
func (r Result) Fallbacks() []string {
	var out []string
	if r.Clarity.Fallback {
		out = append(out, "clarity")
	}
	if r.Fluency.Fallback {
		out = append(out, "fluency")
	}
	if r.Vocabulary.Fallback {
		out = append(out, "vocabulary")
	}
	if r.Coherence.Fallback {
		out = append(out, "coherence")
	}
	return out
}

// Analyze scores a transcript and assembles the report. referenceText may be
// empty when there is no expected text to compare against. The call is a
// pure function of its inputs: identical arguments and identical collaborator
// outputs produce an identical report.
func (a *Analyzer) Analyze(text string, confidence, durationSeconds float64, referenceText string) models.ScoreReport {
	return a.AnalyzeDetailed(text, confidence, durationSeconds, referenceText).Report
}

// AnalyzeDetailed is Analyze with the component scores exposed.
func (a *Analyzer) AnalyzeDetailed(text string, confidence, durationSeconds float64, referenceText string) Result {
	fillerCount := CountFillers(text)

	vocab := a.VocabularyScore(text)
	coherence := a.CoherenceScore(text)
	clarity := a.clarityFrom(text, referenceText, fillerCount, vocab, coherence)
	fluency := a.fluencyWith(text, durationSeconds, fillerCount)

	return Result{
		Report: models.ScoreReport{
			TranscribedText:    text,
			ClarityScore:       clarity.Value,
			FluencyScore:       fluency.Value,
			PaceWPM:            Pace(text, durationSeconds),
			FillerWordsCount:   fillerCount,
			Confidence:         clamp(confidence, 0, 1),
			PronunciationScore: a.Pronunciation(confidence, text),
		},
		Clarity:    clarity,
		Fluency:    fluency,
		Vocabulary: vocab,
		Coherence:  coherence,
	}
}

// trimmedLen counts characters, not bytes, so multi-byte input is gated the
// same way as ASCII.
func trimmedLen(text string) int {
	return utf8.RuneCountInString(strings.TrimSpace(text))
}
