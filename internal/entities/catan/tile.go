package catan

import (
	"github.com/KirkDiggler/catan-odds/internal/errors"
)

// Tile is one hex of the board. It is immutable once built.
type Tile struct {
	index    int
	resource Resource
	chit     Chit
}

// NewTile validates and builds a tile. Resource names are case-insensitive.
// A desert must carry NoChit; whether a producing tile may carry NoChit is
// left to the board.
func NewTile(index int, resource string, chit int) (*Tile, error) {
	if index < 0 {
		return nil, errors.InvalidArgumentf("tile index must not be negative, got %d", index)
	}

	r, err := ParseResource(resource)
	if err != nil {
		return nil, err
	}
	if !r.IsProducing() && r != ResourceDesert {
		return nil, errors.InvalidResource(resource)
	}

	c := Chit(chit)
	if !c.Valid() {
		return nil, errors.InvalidChit(chit, "not a dice sum in the odds table").
			WithMeta("tile_index", index)
	}
	if r == ResourceDesert && c != NoChit {
		return nil, errors.InvalidChit(chit, "a desert tile cannot carry a chit").
			WithMeta("tile_index", index)
	}

	return &Tile{
		index:    index,
		resource: r,
		chit:     c,
	}, nil
}

// Index is the tile position on the board, 0..18.
func (t *Tile) Index() int { return t.index }

// Resource is the canonical lowercase resource, or ResourceDesert.
func (t *Tile) Resource() Resource { return t.resource }

// Chit is the number token, NoChit for the desert.
func (t *Tile) Chit() Chit { return t.chit }

// IsDesert reports whether the tile never produces.
func (t *Tile) IsDesert() bool { return t.resource == ResourceDesert }

// HitProbability is the chance this tile produces on a single roll.
func (t *Tile) HitProbability() float64 {
	if t.IsDesert() {
		return 0
	}
	return probability(t.chit)
}

// ProductionRates returns the expected amount of every resource this tile
// yields per turn for an owner trading at profile's ratios. The tile's own
// resource arrives directly; any other resource r is bought by trading the
// production away at profile.Ratio(r). A desert yields an empty map.
// A nil profile trades at the bank rate.
func (t *Tile) ProductionRates(profile *TradeProfile) map[Resource]float64 {
	rates := make(map[Resource]float64)
	if t.IsDesert() {
		return rates
	}
	if profile == nil {
		profile = NewTradeProfile()
	}

	p := t.HitProbability()
	for _, r := range resources {
		if r == t.resource {
			rates[r] = p
			continue
		}
		rates[r] = p / float64(profile.Ratio(r))
	}
	return rates
}
