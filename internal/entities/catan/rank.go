package catan

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/catan-odds/internal/errors"
)

// RankBy picks the primary ordering key of RankSettlements.
type RankBy string

// Ranking keys
const (
	RankByYield   RankBy = "yield"
	RankByHitRate RankBy = "hit-rate"
)

// ParseRankBy accepts "yield" (the default for "") and "hit-rate".
func ParseRankBy(name string) (RankBy, error) {
	switch RankBy(strings.ToLower(strings.TrimSpace(name))) {
	case "", RankByYield:
		return RankByYield, nil
	case RankByHitRate, "hitrate", "hit_rate":
		return RankByHitRate, nil
	}
	return "", errors.InvalidArgumentf("invalid rank key %q (expected yield or hit-rate)", name)
}

// SettlementOdds is the evaluated production of one settlement.
type SettlementOdds struct {
	Index         int                  `json:"index"`
	TileIndices   []int                `json:"tile_indices"`
	TurnRates     map[Resource]float64 `json:"turn_rates"`
	ExpectedYield float64              `json:"expected_yield"`
	HitRate       float64              `json:"hit_rate"`
}

// Evaluate computes the odds of s for an owner trading at profile.
func Evaluate(s *Settlement, profile *TradeProfile) SettlementOdds {
	rates := s.TurnRates(profile)

	var yield float64
	for _, rate := range rates {
		yield += rate
	}

	indices := make([]int, len(s.tiles))
	for i, t := range s.tiles {
		indices[i] = t.index
	}

	return SettlementOdds{
		Index:         s.index,
		TileIndices:   indices,
		TurnRates:     rates,
		ExpectedYield: yield,
		HitRate:       s.HitRate(),
	}
}

// RankSettlements evaluates every settlement of b and orders them best
// first by the chosen key, breaking ties on the other key and then on index.
func RankSettlements(b *Board, profile *TradeProfile, by RankBy) []SettlementOdds {
	ranked := make([]SettlementOdds, 0, len(b.settlements))
	for _, s := range b.settlements {
		ranked = append(ranked, Evaluate(s, profile))
	}

	primary := func(o SettlementOdds) float64 { return o.ExpectedYield }
	secondary := func(o SettlementOdds) float64 { return o.HitRate }
	if by == RankByHitRate {
		primary, secondary = secondary, primary
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		x, y := ranked[i], ranked[j]
		if px, py := primary(x), primary(y); !nearlyEqual(px, py) {
			return px > py
		}
		if sx, sy := secondary(x), secondary(y); !nearlyEqual(sx, sy) {
			return sx > sy
		}
		return x.Index < y.Index
	})
	return ranked
}

// Float sums over different tile orders can differ in the last bits.
func nearlyEqual(a, b float64) bool {
	const epsilon = 1e-12
	d := a - b
	return d < epsilon && d > -epsilon
}
