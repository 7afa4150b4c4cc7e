package catan

import "sort"

// Board dimensions
const (
	TileCount       = 19
	SettlementCount = 54
)

// tileSettlements lists the settlement spots around each tile. Tiles are
// numbered row by row over the 3-4-5-4-3 layout; settlements row by row,
// top to bottom, left to right.
var tileSettlements = [TileCount][6]int{
	{0, 3, 4, 7, 8, 12},
	{1, 4, 5, 8, 9, 13},
	{2, 5, 6, 9, 10, 14},
	{7, 11, 12, 16, 17, 22},
	{8, 12, 13, 17, 18, 23},
	{9, 13, 14, 18, 19, 24},
	{10, 14, 15, 19, 20, 25},
	{16, 21, 22, 27, 28, 33},
	{17, 22, 23, 28, 29, 34},
	{18, 23, 24, 29, 30, 35},
	{19, 24, 25, 30, 31, 36},
	{20, 25, 26, 31, 32, 37},
	{28, 33, 34, 38, 39, 43},
	{29, 34, 35, 39, 40, 44},
	{30, 35, 36, 40, 41, 45},
	{31, 36, 37, 41, 42, 46},
	{39, 43, 44, 47, 48, 51},
	{40, 44, 45, 48, 49, 52},
	{41, 45, 46, 49, 50, 53},
}

// settlementTiles is tileSettlements inverted, each row in tile order.
var settlementTiles = invertTopology(tileSettlements)

func invertTopology(table [TileCount][6]int) [SettlementCount][]int {
	var out [SettlementCount][]int
	for tile, spots := range table {
		for _, spot := range spots {
			out[spot] = append(out[spot], tile)
		}
	}
	for i := range out {
		sort.Ints(out[i])
	}
	return out
}

// TileSettlements returns the settlement spots touching tile i, or nil
// when i is off the board.
func TileSettlements(i int) []int {
	if i < 0 || i >= TileCount {
		return nil
	}
	out := make([]int, len(tileSettlements[i]))
	copy(out, tileSettlements[i][:])
	return out
}

// SettlementTiles returns the tile indices touching settlement i, or nil
// when i is off the board.
func SettlementTiles(i int) []int {
	if i < 0 || i >= SettlementCount {
		return nil
	}
	out := make([]int, len(settlementTiles[i]))
	copy(out, settlementTiles[i])
	return out
}
