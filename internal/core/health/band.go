package health

// Band is the display category of a score.
type Band string

const (
	BandGood Band = "good"
	BandMid  Band = "mid"
	BandBad  Band = "bad"
)

// BandFor categorises a score: >=60 good, 40-59 mid, below 40 bad.
func BandFor(score int) Band {
	switch {
	case score >= 60:
		return BandGood
	case score >= 40:
		return BandMid
	default:
		return BandBad
	}
}
