package equity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Weights multiply the five feature differences.
type Weights struct {
	Pieces        float64 `json:"pieces" yaml:"pieces"`
	Kings         float64 `json:"kings" yaml:"kings"`
	Moves         float64 `json:"moves" yaml:"moves"`
	Opportunities float64 `json:"opportunities" yaml:"opportunities"`
	KingHopefuls  float64 `json:"king_hopefuls" yaml:"king_hopefuls"`
}

// DefaultWeights counts material only: pieces, with kings counted once more.
// Each call returns a fresh value.
func DefaultWeights() Weights {
	return Weights{Pieces: 1, Kings: 1}
}

var ErrBadWeights = errors.New("weights must be five comma-separated numbers")

// ParseWeights reads a tuple like "1,1,0.5,0.5,0.25", in the order pieces,
// kings, moves, opportunities, king-hopefuls.
func ParseWeights(s string) (Weights, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 5 {
		return Weights{}, fmt.Errorf("%w: got %q", ErrBadWeights, s)
	}
	vals := make([]float64, 5)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Weights{}, fmt.Errorf("%w: %v", ErrBadWeights, err)
		}
		vals[i] = v
	}
	return Weights{vals[0], vals[1], vals[2], vals[3], vals[4]}, nil
}

func (w Weights) String() string {
	vals := []float64{w.Pieces, w.Kings, w.Moves, w.Opportunities, w.KingHopefuls}
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(strs, ",")
}
