package dialect

// Classification is the result of scoring evidence for a file.
type Classification struct {
	Kind            Kind
	Score           int
	TotalScore      int
	Confidence      float64
	RunnerUp        Kind
	RunnerUpScore   int
	ObservedSignals int
}

// Classifier scores evidence and picks the dominant language.
// Thresholds are left to the caller.
type Classifier struct{}

func (Classifier) Classify(e *Evidence) Classification {
	if e == nil || len(e.hints) == 0 {
		return Classification{Kind: Unknown}
	}

	var scores [kindCount]int
	total := 0
	for _, h := range e.hints {
		if h.Score <= 0 || h.Dialect <= Unknown || h.Dialect >= kindCount {
			continue
		}
		scores[h.Dialect] += h.Score
		total += h.Score
	}

	best, bestScore := Unknown, 0
	runner, runnerScore := Unknown, 0
	for k := VisualBasic; k < kindCount; k++ {
		score := scores[k]
		if score > bestScore {
			runner, runnerScore = best, bestScore
			best, bestScore = k, score
			continue
		}
		if score > runnerScore {
			runner, runnerScore = k, score
		}
	}

	conf := 0.0
	if total > 0 {
		conf = float64(bestScore) / float64(total)
	}
	return Classification{
		Kind:            best,
		Score:           bestScore,
		TotalScore:      total,
		Confidence:      conf,
		RunnerUp:        runner,
		RunnerUpScore:   runnerScore,
		ObservedSignals: len(e.hints),
	}
}

// LooksForeign reports whether the evidence points at C# strongly enough to
// skip analysis.
func (c Classification) LooksForeign() bool {
	return c.Kind == CSharp && c.Score >= 8 && c.Confidence >= 0.6
}
