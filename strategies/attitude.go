package strategies

import (
	"strings"

	"github.com/samber/lo"
)

// Attitude is one of the three behavioral archetypes a batch requests.
type Attitude string

const (
	Aggressive  Attitude = "Aggressive"
	Cooperative Attitude = "Cooperative"
	Neutral     Attitude = "Neutral"
)

// All returns the attitudes in their fixed, deterministic order.
func All() []Attitude {
	return []Attitude{Aggressive, Cooperative, Neutral}
}

// Shuffled returns the attitudes in a fresh random order, used to vary the
// request order per batch so accumulated conversation context differs
// between runs.
func Shuffled() []Attitude {
	return lo.Shuffle(All())
}

func (a Attitude) Lower() string {
	return strings.ToLower(string(a))
}

func (a Attitude) Upper() string {
	return strings.ToUpper(string(a))
}
