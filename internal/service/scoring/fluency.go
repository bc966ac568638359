package scoring

import (
	"math"
	"strings"
)

// Fluency scores delivery flow on a 0-100 scale from three components: a
// pace-fit tier, a filler-density penalty, and the fraction of sentences
// ending in terminal punctuation. Empty text or a non-positive duration
// scores 0. A sentence tokenizer failure drops the completion component
// rather than failing the call; zero sentences count as a neutral completion.
func (a *Analyzer) Fluency(text string, durationSeconds float64) Score {
	return a.fluencyWith(text, durationSeconds, CountFillers(text))
}

func (a *Analyzer) fluencyWith(text string, durationSeconds float64, fillerCount int) Score {
	if text == "" || durationSeconds <= 0 {
		return computed(0.0)
	}

	var scores []float64

	wpm := Pace(text, durationSeconds)
	scores = append(scores, a.paceFit(wpm))

	if wordCount := len(strings.Fields(text)); wordCount > 0 {
		ratio := float64(fillerCount) / float64(wordCount)
		scores = append(scores, math.Max(0, 100-ratio*a.cfg.FluencyFillerPenalty))
	}

	if sentences, err := a.sentences.Sentences(text); err == nil {
		completion := a.cfg.NeutralScore
		if len(sentences) > 0 {
			complete := 0
			for _, s := range sentences {
				if endsWithTerminal(strings.TrimSpace(s)) {
					complete++
				}
			}
			completion = float64(complete) / float64(len(sentences)) * 100
		}
		scores = append(scores, completion)
	}

	if len(scores) == 0 {
		return neutral(a.cfg.NeutralScore)
	}
	return computed(clamp(mean(scores), 0, 100))
}

// paceFit maps words-per-minute onto the five-tier fit score.
func (a *Analyzer) paceFit(wpm float64) float64 {
	switch {
	case wpm >= a.cfg.IdealPaceMin && wpm <= a.cfg.IdealPaceMax:
		return 100
	case (wpm >= a.cfg.GoodPaceMin && wpm < a.cfg.IdealPaceMin) ||
		(wpm > a.cfg.IdealPaceMax && wpm <= a.cfg.GoodPaceMax):
		return 85
	case (wpm >= a.cfg.FairPaceMin && wpm < a.cfg.GoodPaceMin) ||
		(wpm > a.cfg.GoodPaceMax && wpm <= a.cfg.FairPaceMax):
		return 70
	default:
		return math.Max(0, 50-math.Abs(wpm-a.cfg.PaceCenter)/a.cfg.PaceFalloff)
	}
}

func endsWithTerminal(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "?") || strings.HasSuffix(s, "!")
}
