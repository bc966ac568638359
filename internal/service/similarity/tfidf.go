// Package similarity provides the text similarity capability: stopword-aware
// TF-IDF vectorization with cosine similarity between two raw texts.
package similarity

import (
	"errors"
	"math"
	"strings"

	"github.com/bbalet/stopwords"
	"github.com/james-bowman/nlp"
	"github.com/james-bowman/nlp/measures/pairwise"
	"gonum.org/v1/gonum/mat"
)

// ErrNoSignal is returned when either text has no comparable terms left
// after stopword removal, or the resulting vectors are degenerate.
var ErrNoSignal = errors.New("similarity: no comparable terms")

// TFIDF scores two texts by cosine similarity over TF-IDF vectors. The zero
// value is not usable; call NewTFIDF. Stateless and safe for concurrent use:
// a fresh vectorizer pipeline is fitted per comparison, so no vocabulary
// leaks across calls.
type TFIDF struct {
	langCode string
}

// NewTFIDF returns a TFIDF scorer using English stopwords.
func NewTFIDF() *TFIDF {
	return &TFIDF{langCode: "en"}
}

// Similarity returns the cosine similarity of a and b in [0, 1]. Errors mean
// the comparison had no signal; callers are expected to absorb them into
// their documented neutral fallback.
func (s *TFIDF) Similarity(a, b string) (float64, error) {
	cleanA := strings.TrimSpace(stopwords.CleanString(a, s.langCode, false))
	cleanB := strings.TrimSpace(stopwords.CleanString(b, s.langCode, false))
	if cleanA == "" || cleanB == "" {
		return 0, ErrNoSignal
	}

	pipeline := nlp.NewPipeline(nlp.NewCountVectoriser(), nlp.NewTfidfTransformer())
	m, err := pipeline.FitTransform(cleanA, cleanB)
	if err != nil {
		return 0, err
	}

	// The fitted matrix is sparse (term rows, document columns); densify it
	// so the two document columns can be sliced for the cosine measure.
	dense := mat.DenseCopyOf(m)
	sim := pairwise.CosineSimilarity(dense.ColView(0), dense.ColView(1))
	if math.IsNaN(sim) || math.IsInf(sim, 0) {
		return 0, ErrNoSignal
	}
	return math.Min(math.Max(sim, 0), 1), nil
}
