package catan_test

import (
	"github.com/KirkDiggler/catan-odds/internal/entities/catan"
)

// standardLayout is a legal board with a few hand-placed neighborhoods:
//   - settlement 0 touches only tile 0 (wood 6)
//   - settlement 4 touches tiles 0 and 1, both on 6
//   - settlement 12 touches tiles 0, 3, 4 on 6, 8, 5
//   - settlement 22 touches tiles 3, 7 and the desert at 8
func standardLayout() catan.Layout {
	return catan.Layout{
		{Resource: "wood", Chit: 6},
		{Resource: "brick", Chit: 6},
		{Resource: "sheep", Chit: 11},
		{Resource: "wheat", Chit: 8},
		{Resource: "ore", Chit: 5},
		{Resource: "wood", Chit: 10},
		{Resource: "sheep", Chit: 3},
		{Resource: "wheat", Chit: 9},
		{Resource: "desert", Chit: 0},
		{Resource: "brick", Chit: 4},
		{Resource: "ore", Chit: 8},
		{Resource: "wood", Chit: 5},
		{Resource: "sheep", Chit: 2},
		{Resource: "wheat", Chit: 9},
		{Resource: "brick", Chit: 10},
		{Resource: "ore", Chit: 12},
		{Resource: "wood", Chit: 11},
		{Resource: "sheep", Chit: 3},
		{Resource: "wheat", Chit: 4},
	}
}

// scriptedRoller replays fixed dice, cycling when it runs out.
type scriptedRoller struct {
	values []int
	next   int
}

func (r *scriptedRoller) Roll(_ int) (int, error) {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v, nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
