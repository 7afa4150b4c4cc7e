package catan

import (
	"github.com/KirkDiggler/catan-odds/internal/errors"
)

// Chit is the number token on a tile: a 2d6 sum other than 7, or NoChit.
type Chit int

// NoChit marks a tile that never produces.
const NoChit Chit = 0

// DiceOutcomes is the number of equally likely results of rolling 2d6.
const DiceOutcomes = 36

// Ways to roll each sum on 2d6. Index 7 stays zero since the robber owns it.
var chitOutcomes = [13]int{
	2:  1,
	3:  2,
	4:  3,
	5:  4,
	6:  5,
	8:  5,
	9:  4,
	10: 3,
	11: 2,
	12: 1,
}

// Valid reports whether c is NoChit or a key of the odds table.
func (c Chit) Valid() bool {
	if c == NoChit {
		return true
	}
	return c >= 2 && c <= 12 && c != 7
}

// Chits returns the valid non-sentinel chit values in ascending order.
func Chits() []Chit {
	out := make([]Chit, 0, 10)
	for c := Chit(2); c <= 12; c++ {
		if c != 7 {
			out = append(out, c)
		}
	}
	return out
}

// ChitOutcomes returns how many of the 36 dice outcomes hit c.
func ChitOutcomes(c Chit) (int, error) {
	if !c.Valid() {
		return 0, errors.InvalidChit(int(c), "not a dice sum in the odds table")
	}
	if c == NoChit {
		return 0, nil
	}
	return chitOutcomes[c], nil
}

// ChitProbability returns the probability of rolling c on 2d6.
// NoChit is 0.
func ChitProbability(c Chit) (float64, error) {
	n, err := ChitOutcomes(c)
	if err != nil {
		return 0, err
	}
	return float64(n) / DiceOutcomes, nil
}

// probability is ChitProbability for chits already validated at tile construction.
func probability(c Chit) float64 {
	if c == NoChit || !c.Valid() {
		return 0
	}
	return float64(chitOutcomes[c]) / DiceOutcomes
}
