package catan

// Settlement is a building spot and the tiles touching it. The tiles are
// borrowed from the board that built the settlement.
type Settlement struct {
	index int
	tiles []*Tile
}

// Index is the settlement position on the board, 0..53.
func (s *Settlement) Index() int { return s.index }

// Tiles returns the adjacent tiles ordered by tile index.
func (s *Settlement) Tiles() []*Tile {
	out := make([]*Tile, len(s.tiles))
	copy(out, s.tiles)
	return out
}

// TurnRates sums the production rates of every adjacent tile. A resource
// no adjacent tile yields, directly or by trade, is absent.
func (s *Settlement) TurnRates(profile *TradeProfile) map[Resource]float64 {
	if profile == nil {
		profile = NewTradeProfile()
	}

	rates := make(map[Resource]float64)
	for _, t := range s.tiles {
		for r, rate := range t.ProductionRates(profile) {
			rates[r] += rate
		}
	}
	return rates
}

// ExpectedYield is the total of TurnRates: cards per turn once every
// shortfall is traded for.
func (s *Settlement) ExpectedYield(profile *TradeProfile) float64 {
	var total float64
	for _, rate := range s.TurnRates(profile) {
		total += rate
	}
	return total
}

// HitRate is the chance that at least one adjacent tile produces on a roll.
// Tiles sharing a chit fire on the same roll, so each distinct chit counts once.
func (s *Settlement) HitRate() float64 {
	outcomes := 0
	for _, c := range s.distinctChits() {
		outcomes += chitOutcomes[c]
	}
	return float64(outcomes) / DiceOutcomes
}

// Produces reports whether a dice sum makes any adjacent tile produce.
func (s *Settlement) Produces(sum int) bool {
	for _, t := range s.tiles {
		if !t.IsDesert() && int(t.chit) == sum {
			return true
		}
	}
	return false
}

func (s *Settlement) distinctChits() []Chit {
	seen := make(map[Chit]bool, len(s.tiles))
	var chits []Chit
	for _, t := range s.tiles {
		if t.chit == NoChit || seen[t.chit] {
			continue
		}
		seen[t.chit] = true
		chits = append(chits, t.chit)
	}
	return chits
}
