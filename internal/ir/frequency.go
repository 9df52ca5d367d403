package ir

// Frequency is a coarse execution-likelihood class on a CFG edge.
type Frequency uint8

const (
	// FrequencyNormal means no hypothesis about how often the edge runs.
	FrequencyNormal Frequency = iota
	// FrequencyRare marks edges expected to run almost never. Rare code
	// may be punished hard, so when merging classes never pick Rare
	// unless both inputs are Rare.
	FrequencyRare
)

// MaxFrequency merges two frequency classes. Normal is absorbing.
func MaxFrequency(a, b Frequency) Frequency {
	if a == FrequencyNormal {
		return a
	}
	return b
}

func (f Frequency) String() string {
	if f == FrequencyRare {
		return "Rare"
	}
	return "Normal"
}

// FrequentBlock is a successor edge: a target block tagged with the
// frequency class of the transfer.
type FrequentBlock struct {
	Block BlockID
	Freq  Frequency
}
