package entity

// Outcome is a position evaluation from one side's point of view. The
// values double as search scores.
type Outcome int

const (
	Win  Outcome = 1000
	Draw Outcome = 0
	Loss Outcome = -1000
)

func (that Outcome) Score() int {
	return int(that)
}

// Invert returns the same outcome seen by the other side.
func (that Outcome) Invert() Outcome {
	return -that
}

func (that Outcome) String() string {
	switch that {
	case Win:
		return "WIN"
	case Loss:
		return "LOSS"
	default:
		return "DRAW"
	}
}
