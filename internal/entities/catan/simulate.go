package catan

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/catan-odds/internal/errors"
)

// MaxSimulationTurns bounds a single simulation run.
const MaxSimulationTurns = 1_000_000

// SimulationResult tallies a run of simulated turns for one settlement.
type SimulationResult struct {
	SettlementIndex int
	Turns           int
	// Hits counts turns on which at least one adjacent tile produced.
	Hits int
	// Cards counts resources received directly, no trading.
	Cards map[Resource]int
	// Sums counts how often each 2d6 total came up, indexed by the total.
	Sums             [13]int
	EmpiricalHitRate float64
	ExpectedHitRate  float64
}

// Simulate rolls 2d6 through roller for the given number of turns and
// records what settlement s collects. It cross-checks HitRate.
func Simulate(s *Settlement, roller dice.Roller, turns int) (*SimulationResult, error) {
	if s == nil {
		return nil, errors.InvalidArgument("settlement is required")
	}
	if roller == nil {
		return nil, errors.InvalidArgument("dice roller is required")
	}
	if turns < 1 || turns > MaxSimulationTurns {
		return nil, errors.InvalidArgumentf("turns must be between 1 and %d, got %d", MaxSimulationTurns, turns)
	}

	result := &SimulationResult{
		SettlementIndex: s.index,
		Turns:           turns,
		Cards:           make(map[Resource]int),
		ExpectedHitRate: s.HitRate(),
	}

	for turn := 0; turn < turns; turn++ {
		rolls, err := roller.RollN(2, 6)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll turn %d", turn+1)
		}
		if len(rolls) != 2 {
			return nil, errors.Internalf("roller returned %d dice, expected 2", len(rolls))
		}

		sum := rolls[0] + rolls[1]
		if sum < 2 || sum > 12 {
			return nil, errors.Internalf("roller returned impossible 2d6 total %d", sum)
		}
		result.Sums[sum]++

		if !s.Produces(sum) {
			continue
		}
		result.Hits++
		for _, t := range s.tiles {
			if !t.IsDesert() && int(t.chit) == sum {
				result.Cards[t.resource]++
			}
		}
	}

	result.EmpiricalHitRate = float64(result.Hits) / float64(turns)
	return result, nil
}
