package assessment

// Band is the three-tier color banding applied to the score gauge.
type Band int

const (
	BandLow Band = iota
	BandMid
	BandHigh
)

// ScoreBand places a score into its display band. Boundaries are inclusive
// upward: exactly 80 is high, exactly 50 is mid.
func ScoreBand(score float64) Band {
	switch {
	case score >= 80:
		return BandHigh
	case score >= 50:
		return BandMid
	default:
		return BandLow
	}
}

// GaugeFill clamps a score to [0,100] for the gauge fill proportion. The raw
// score is still shown verbatim in the numeric display.
func GaugeFill(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
