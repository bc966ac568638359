// Package tokenize provides the word and sentence tokenization capability
// used by the scoring pipeline. Words come from prose's treebank-style
// tokenizer; sentences come from a Punkt sentence tokenizer, the same
// algorithm family the original analysis stack used.
package tokenize

import (
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Tokenizer implements the scoring package's WordTokenizer and
// SentenceTokenizer interfaces. Safe for concurrent use.
type Tokenizer struct {
	punkt *sentences.DefaultSentenceTokenizer
}

// New builds a Tokenizer with the embedded English Punkt training data.
func New() (*Tokenizer, error) {
	punkt, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{punkt: punkt}, nil
}

// Words splits text into lower-cased word tokens. Punctuation becomes its
// own token, matching the behavior the vocabulary scorer was calibrated
// against.
func (t *Tokenizer) Words(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}

	tokens := doc.Tokens()
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		words = append(words, strings.ToLower(tok.Text))
	}
	return words, nil
}

// Sentences splits text into trimmed sentence strings. Terminal punctuation
// stays attached to its sentence, which the fluency completion check relies
// on.
func (t *Tokenizer) Sentences(text string) ([]string, error) {
	split := t.punkt.Tokenize(text)
	out := make([]string, 0, len(split))
	for _, s := range split {
		if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out, nil
}
