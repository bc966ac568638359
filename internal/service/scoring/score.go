package scoring

// Score is the outcome of a single sub-scorer. Fallback reports whether the
// value is a documented neutral fallback (insufficient signal or collaborator
// failure) rather than a computed result. Either way Value is usable as-is;
// the flag exists so callers and tests can tell the two paths apart.
type Score struct {
	Value    float64
	Fallback bool
}

func computed(v float64) Score { return Score{Value: v} }

func neutral(v float64) Score { return Score{Value: v, Fallback: true} }

// clamp bounds v to [lo, hi]. Blends may transiently exceed their stated
// range before this is applied.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
