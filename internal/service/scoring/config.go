package scoring

// Config collects every weight and threshold used by the scoring pipeline in
// one place, so tuning never requires touching blend logic. All blends read
// these fields; none of them inline their own literals.
type Config struct {
	// NeutralScore is returned by a sub-scorer that has insufficient signal
	// or whose collaborator failed (0-100 scale).
	NeutralScore float64
	// NeutralSimilarity is the fallback when the similarity capability fails
	// (0-1 scale).
	NeutralSimilarity float64
	// DefaultConfidence is assumed when the transcription engine reports no
	// segments to derive a confidence from.
	DefaultConfidence float64

	// MinScorableChars gates clarity scoring and reference comparison:
	// clarity returns 0 below this many trimmed characters, and a reference
	// text must exceed it to participate.
	MinScorableChars int

	// Vocabulary sophistication weights and normalization. The weighted sum
	// is divided by VocabNormDivisor and scaled to the 0-100 range.
	MinVocabTokens   int
	UniqueWordWeight float64
	DomainWordWeight float64
	WordLengthWeight float64
	WordLengthNorm   float64
	VocabNormDivisor float64

	// Sentence coherence thresholds.
	IdealSentenceMin    float64
	IdealSentenceMax    float64
	LongSentencePenalty float64
	VarietyScale        float64
	LengthBlendWeight   float64
	VarietyBlendWeight  float64

	// Filler density penalties. Clarity and fluency deliberately use
	// different slopes.
	ClarityFillerPenalty float64
	FluencyFillerPenalty float64

	// Pace tiers in words per minute.
	IdealPaceMin float64
	IdealPaceMax float64
	GoodPaceMin  float64
	GoodPaceMax  float64
	FairPaceMin  float64
	FairPaceMax  float64
	PaceCenter   float64
	PaceFalloff  float64

	// Pronunciation penalties.
	GarbledWordLength float64
	GarbledPenalty    float64
	RepeatRunLength   int
	RepeatRunPenalty  float64
}

// DefaultConfig returns the calibrated production configuration.
func DefaultConfig() Config {
	return Config{
		NeutralScore:      50.0,
		NeutralSimilarity: 0.5,
		DefaultConfidence: 0.5,

		MinScorableChars: 5,

		MinVocabTokens:   3,
		UniqueWordWeight: 30,
		DomainWordWeight: 40,
		WordLengthWeight: 30,
		WordLengthNorm:   8,
		VocabNormDivisor: 30,

		IdealSentenceMin:    10,
		IdealSentenceMax:    25,
		LongSentencePenalty: 5,
		VarietyScale:        10,
		LengthBlendWeight:   0.6,
		VarietyBlendWeight:  0.4,

		ClarityFillerPenalty: 500,
		FluencyFillerPenalty: 400,

		IdealPaceMin: 120,
		IdealPaceMax: 160,
		GoodPaceMin:  100,
		GoodPaceMax:  180,
		FairPaceMin:  80,
		FairPaceMax:  200,
		PaceCenter:   140,
		PaceFalloff:  2,

		GarbledWordLength: 2,
		GarbledPenalty:    0.8,
		RepeatRunLength:   4,
		RepeatRunPenalty:  0.9,
	}
}
