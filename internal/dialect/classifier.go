package dialect

// Classification is the result of scoring evidence for an input.
type Classification struct {
	Notation        Notation
	Score           int
	TotalScore      int
	Confidence      float64
	RunnerUp        Notation
	RunnerUpScore   int
	ObservedSignals int
}

// Classifier scores evidence and chooses a dominant notation.
// Ties resolve to Unknown; callers apply their own thresholds.
type Classifier struct{}

func (Classifier) Classify(e *Evidence) Classification {
	if e == nil || len(e.hints) == 0 {
		return Classification{Notation: Unknown}
	}

	var scores [notationCount]int
	total := 0
	observed := 0
	for _, h := range e.hints {
		observed++
		if h.Score <= 0 || !h.Notation.Valid() {
			continue
		}
		scores[h.Notation] += h.Score
		total += h.Score
	}

	best, runner := CGIF, CL
	if scores[CL] > scores[CGIF] {
		best, runner = CL, CGIF
	}
	c := Classification{
		Notation:        best,
		Score:           scores[best],
		TotalScore:      total,
		RunnerUp:        runner,
		RunnerUpScore:   scores[runner],
		ObservedSignals: observed,
	}
	if c.Score == 0 || c.Score == c.RunnerUpScore {
		c.Notation = Unknown
	}
	if total > 0 {
		c.Confidence = float64(c.Score) / float64(total)
	}
	return c
}
