package scoring

import (
	"errors"
	"testing"
)

func TestClarity_TooShort(t *testing.T) {
	a := newTestAnalyzer()

	for _, text := range []string{"", "hi", "  hi  ", "abcd"} {
		score := a.Clarity(text, "")
		if score.Fallback {
			t.Errorf("Clarity(%q): short text is a real zero, not a fallback", text)
		}
		if score.Value != 0 {
			t.Errorf("Clarity(%q) = %v, want 0", text, score.Value)
		}
	}
}

func TestClarity_NoReference(t *testing.T) {
	a := newTestAnalyzer()

	// vocabulary 100, coherence 80, filler penalty 100:
	// mean = 93.33...
	score := a.Clarity(cleanUtterance, "")

	if score.Fallback {
		t.Error("expected a computed score")
	}
	if !approx(score.Value, (100.0+80+100)/3) {
		t.Errorf("expected 93.33, got %v", score.Value)
	}
}

func TestClarity_WithReference(t *testing.T) {
	a := NewAnalyzer(DefaultConfig(), fieldWords{}, punctSentences{}, fixedSimilarity{sim: 1})

	// Perfect similarity joins the component list:
	// mean(100, 100, 80, 100) = 95.
	score := a.Clarity(cleanUtterance, "an expected answer that is long enough")

	if !approx(score.Value, 95) {
		t.Errorf("expected 95, got %v", score.Value)
	}
}

func TestClarity_ShortReferenceSkipsSimilarity(t *testing.T) {
	a := NewAnalyzer(DefaultConfig(), fieldWords{}, punctSentences{}, fixedSimilarity{sim: 1})

	withShortRef := a.Clarity(cleanUtterance, "hi")
	without := a.Clarity(cleanUtterance, "")

	if withShortRef.Value != without.Value {
		t.Errorf("short reference should be ignored: got %v vs %v", withShortRef.Value, without.Value)
	}
}

func TestClarity_FillerHeavyTextScoresLower(t *testing.T) {
	a := newTestAnalyzer()

	clean := a.Clarity(cleanUtterance, "")
	fillerHeavy := a.Clarity("So, um, like, you know, we, uh, basically finished it, right.", "")

	if fillerHeavy.Value >= clean.Value {
		t.Errorf("filler-heavy text should score lower: %v vs %v", fillerHeavy.Value, clean.Value)
	}
}

func TestReferenceSimilarity(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("nil scorer falls back", func(t *testing.T) {
		a := NewAnalyzer(cfg, fieldWords{}, punctSentences{}, nil)
		score := a.ReferenceSimilarity("one text", "another text")
		if !score.Fallback || score.Value != 0.5 {
			t.Errorf("expected neutral 0.5 fallback, got %+v", score)
		}
	})

	t.Run("scorer error falls back", func(t *testing.T) {
		a := NewAnalyzer(cfg, fieldWords{}, punctSentences{}, fixedSimilarity{err: errors.New("no signal")})
		score := a.ReferenceSimilarity("one text", "another text")
		if !score.Fallback || score.Value != 0.5 {
			t.Errorf("expected neutral 0.5 fallback, got %+v", score)
		}
	})

	t.Run("result is clamped", func(t *testing.T) {
		a := NewAnalyzer(cfg, fieldWords{}, punctSentences{}, fixedSimilarity{sim: 1.7})
		score := a.ReferenceSimilarity("one text", "another text")
		if score.Fallback || score.Value != 1 {
			t.Errorf("expected computed 1, got %+v", score)
		}
	})
}
