package catan

import (
	"github.com/KirkDiggler/catan-odds/internal/errors"
)

// TileSpec is the (resource, chit) pair a tile is built from.
type TileSpec struct {
	Resource string `json:"resource" yaml:"resource"`
	Chit     int    `json:"chit" yaml:"chit"`
}

// Layout is the ordered list of 19 tile specs a board is built from.
type Layout []TileSpec

// Fixed tile distribution of a standard board.
var resourceCounts = map[Resource]int{
	ResourceWood:   4,
	ResourceWheat:  4,
	ResourceSheep:  4,
	ResourceBrick:  3,
	ResourceOre:    3,
	ResourceDesert: 1,
}

// Two of each middle chit, one each of 2 and 12.
var chitCounts = map[Chit]int{
	2: 1, 3: 2, 4: 2, 5: 2, 6: 2,
	8: 2, 9: 2, 10: 2, 11: 2, 12: 1,
}

// Board owns the tiles and the settlements derived from them.
// It is immutable and safe for concurrent reads.
type Board struct {
	tiles       []*Tile
	settlements []*Settlement
}

// NewBoard builds the 19 tiles of layout, position i becoming tile i, then
// binds the 54 settlements through the fixed topology. Construction is
// all-or-nothing.
func NewBoard(layout Layout) (*Board, error) {
	if len(layout) != TileCount {
		return nil, errors.InvalidLayoutf("layout must have %d tiles, got %d", TileCount, len(layout))
	}

	tiles := make([]*Tile, TileCount)
	for i, spec := range layout {
		t, err := NewTile(i, spec.Resource, spec.Chit)
		if err != nil {
			return nil, err
		}
		if !t.IsDesert() && t.chit == NoChit {
			return nil, errors.InvalidChit(spec.Chit, "a producing tile needs a chit").
				WithMeta("tile_index", i)
		}
		tiles[i] = t
	}

	if err := validateDistribution(tiles); err != nil {
		return nil, err
	}

	settlements := make([]*Settlement, SettlementCount)
	for i := range settlements {
		adjacent := make([]*Tile, 0, len(settlementTiles[i]))
		for _, ti := range settlementTiles[i] {
			adjacent = append(adjacent, tiles[ti])
		}
		settlements[i] = &Settlement{index: i, tiles: adjacent}
	}

	return &Board{
		tiles:       tiles,
		settlements: settlements,
	}, nil
}

func validateDistribution(tiles []*Tile) error {
	gotResources := make(map[Resource]int, len(resourceCounts))
	gotChits := make(map[Chit]int, len(chitCounts))
	for _, t := range tiles {
		gotResources[t.resource]++
		if t.chit != NoChit {
			gotChits[t.chit]++
		}
	}

	for r, want := range resourceCounts {
		if got := gotResources[r]; got != want {
			return errors.InvalidLayoutf("layout must have %d %s tiles, got %d", want, r, got).
				WithMeta("resource", string(r))
		}
	}
	for c, want := range chitCounts {
		if got := gotChits[c]; got != want {
			return errors.InvalidLayoutf("layout must have %d chits of %d, got %d", want, c, got).
				WithMeta("chit", int(c))
		}
	}
	return nil
}

// Tiles returns the 19 tiles in index order.
func (b *Board) Tiles() []*Tile {
	out := make([]*Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// Tile returns tile i.
func (b *Board) Tile(i int) (*Tile, error) {
	if i < 0 || i >= len(b.tiles) {
		return nil, errors.OutOfRangef("tile index %d out of range 0-%d", i, TileCount-1)
	}
	return b.tiles[i], nil
}

// Settlements returns the 54 settlements in index order.
func (b *Board) Settlements() []*Settlement {
	out := make([]*Settlement, len(b.settlements))
	copy(out, b.settlements)
	return out
}

// Settlement returns settlement i.
func (b *Board) Settlement(i int) (*Settlement, error) {
	if i < 0 || i >= len(b.settlements) {
		return nil, errors.OutOfRangef("settlement index %d out of range 0-%d", i, SettlementCount-1)
	}
	return b.settlements[i], nil
}

// Layout returns the specs the board can be rebuilt from.
func (b *Board) Layout() Layout {
	layout := make(Layout, len(b.tiles))
	for i, t := range b.tiles {
		layout[i] = TileSpec{Resource: string(t.resource), Chit: int(t.chit)}
	}
	return layout
}
