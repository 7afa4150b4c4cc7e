package catan

import (
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/catan-odds/internal/errors"
)

// resourceTokens is the pre-shuffle order of the 18 producing tiles.
var resourceTokens = [...]Resource{
	ResourceWood, ResourceWood, ResourceWood, ResourceWood,
	ResourceWheat, ResourceWheat, ResourceWheat, ResourceWheat,
	ResourceSheep, ResourceSheep, ResourceSheep, ResourceSheep,
	ResourceBrick, ResourceBrick, ResourceBrick,
	ResourceOre, ResourceOre, ResourceOre,
}

// chitTokens is the pre-shuffle order of the 18 chits.
var chitTokens = [...]Chit{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}

type generateOptions struct {
	roller dice.Roller
}

// GenerateOption configures board generation
type GenerateOption func(*generateOptions)

// WithSeed makes generation reproducible.
func WithSeed(seed int64) GenerateOption {
	return func(o *generateOptions) {
		o.roller = NewSeededRoller(seed)
	}
}

// WithRoller draws shuffle positions from roller.
func WithRoller(roller dice.Roller) GenerateOption {
	return func(o *generateOptions) {
		o.roller = roller
	}
}

// GenerateLayout shuffles the resource tokens and the chits independently,
// pairs them by position and appends the desert as the 19th tile.
func GenerateLayout(opts ...GenerateOption) (Layout, error) {
	o := &generateOptions{roller: dice.DefaultRoller}
	for _, opt := range opts {
		opt(o)
	}
	if o.roller == nil {
		return nil, errors.InvalidArgument("dice roller is required")
	}

	res := resourceTokens
	if err := shuffle(o.roller, len(res), func(i, j int) { res[i], res[j] = res[j], res[i] }); err != nil {
		return nil, errors.Wrap(err, "failed to shuffle resources")
	}

	chits := chitTokens
	if err := shuffle(o.roller, len(chits), func(i, j int) { chits[i], chits[j] = chits[j], chits[i] }); err != nil {
		return nil, errors.Wrap(err, "failed to shuffle chits")
	}

	layout := make(Layout, 0, TileCount)
	for i := range res {
		layout = append(layout, TileSpec{Resource: string(res[i]), Chit: int(chits[i])})
	}
	layout = append(layout, TileSpec{Resource: string(ResourceDesert), Chit: int(NoChit)})

	return layout, nil
}

// Generate builds a random board. See GenerateLayout.
func Generate(opts ...GenerateOption) (*Board, error) {
	layout, err := GenerateLayout(opts...)
	if err != nil {
		return nil, err
	}
	return NewBoard(layout)
}

// shuffle is Fisher-Yates driven by die rolls: a d(i+1) picks the swap
// partner for position i.
func shuffle(roller dice.Roller, n int, swap func(i, j int)) error {
	for i := n - 1; i > 0; i-- {
		roll, err := roller.Roll(i + 1)
		if err != nil {
			return err
		}
		if roll < 1 || roll > i+1 {
			return errors.Internalf("roller returned %d for a d%d", roll, i+1)
		}
		swap(i, roll-1)
	}
	return nil
}

// SeededRoller is a deterministic dice.Roller.
type SeededRoller struct {
	rng *rand.Rand
}

// NewSeededRoller returns a roller whose sequence depends only on seed.
func NewSeededRoller(seed int64) *SeededRoller {
	return &SeededRoller{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

var _ dice.Roller = (*SeededRoller)(nil)

// Roll returns a value in 1..size.
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	return r.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size.
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative, got %d", count)
	}
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
