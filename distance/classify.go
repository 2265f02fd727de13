package distance

// Difference is a qualitative bucket for a delta-E value.
type Difference int

const (
	Imperceptible Difference = iota
	CloseObservation
	AtAGlance
	MoreSimilar
	ExactOpposite
	Obvious
)

var differenceNames = [...]string{
	Imperceptible:    "not perceptible by human eyes",
	CloseObservation: "perceptible through close observation",
	AtAGlance:        "perceptible at a glance",
	MoreSimilar:      "colors are more similar than opposite",
	ExactOpposite:    "colors are exact opposite",
	Obvious:          "large, obvious difference",
}

func (d Difference) String() string {
	if d < 0 || int(d) >= len(differenceNames) {
		return "unknown difference"
	}
	return differenceNames[d]
}

// Classify buckets a delta-E value. Exactly 100 is reported as
// ExactOpposite; every other value from 49 up is Obvious.
func Classify(deltaE float64) Difference {
	switch {
	case deltaE < 1:
		return Imperceptible
	case deltaE < 2:
		return CloseObservation
	case deltaE < 10:
		return AtAGlance
	case deltaE < 49:
		return MoreSimilar
	case deltaE == 100:
		return ExactOpposite
	default:
		return Obvious
	}
}
