package catan_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/catan-odds/internal/entities/catan"
	"github.com/KirkDiggler/catan-odds/internal/errors"
)

type TileTestSuite struct {
	suite.Suite
}

func TestTileSuite(t *testing.T) {
	suite.Run(t, new(TileTestSuite))
}

func (s *TileTestSuite) TestNewTile() {
	testCases := []struct {
		name      string
		index     int
		resource  string
		chit      int
		wantCheck func(error) bool
		want      catan.Resource
	}{
		{name: "lowercase", index: 0, resource: "wood", chit: 6, want: catan.ResourceWood},
		{name: "mixed case canonicalized", index: 3, resource: "WhEaT", chit: 9, want: catan.ResourceWheat},
		{name: "desert", index: 18, resource: "Desert", chit: 0, want: catan.ResourceDesert},
		{name: "unknown resource", resource: "granite", chit: 6, wantCheck: errors.IsInvalidResource},
		{name: "none is not a tile", resource: "none", chit: 6, wantCheck: errors.IsInvalidResource},
		{name: "seven", resource: "ore", chit: 7, wantCheck: errors.IsInvalidChit},
		{name: "thirteen", resource: "ore", chit: 13, wantCheck: errors.IsInvalidChit},
		{name: "one", resource: "ore", chit: 1, wantCheck: errors.IsInvalidChit},
		{name: "negative", resource: "ore", chit: -4, wantCheck: errors.IsInvalidChit},
		{name: "desert with chit", resource: "desert", chit: 8, wantCheck: errors.IsInvalidChit},
		{name: "negative index", index: -1, resource: "ore", chit: 8, wantCheck: errors.IsInvalidArgument},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tile, err := catan.NewTile(tc.index, tc.resource, tc.chit)
			if tc.wantCheck != nil {
				s.Require().Error(err)
				s.True(tc.wantCheck(err), "unexpected error: %v", err)
				s.Nil(tile)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.index, tile.Index())
			s.Equal(tc.want, tile.Resource())
			s.Equal(catan.Chit(tc.chit), tile.Chit())
		})
	}
}

func (s *TileTestSuite) TestDesertNeverProduces() {
	desert, err := catan.NewTile(8, "desert", 0)
	s.Require().NoError(err)

	s.True(desert.IsDesert())
	s.Zero(desert.HitProbability())
	s.Empty(desert.ProductionRates(nil))

	ported, err := catan.NewTradeProfileWithPorts([]string{"all", "ore"})
	s.Require().NoError(err)
	s.Empty(desert.ProductionRates(ported))
}

func (s *TileTestSuite) TestProductionRatesDefaultProfile() {
	tile, err := catan.NewTile(0, "brick", 8)
	s.Require().NoError(err)

	p := 5.0 / 36
	rates := tile.ProductionRates(catan.NewTradeProfile())

	s.Len(rates, 5)
	s.InDelta(p, rates[catan.ResourceBrick], 1e-15)
	for _, r := range []catan.Resource{catan.ResourceWood, catan.ResourceSheep, catan.ResourceWheat, catan.ResourceOre} {
		s.InDelta(p/4, rates[r], 1e-15, "resource %s", r)
	}
}

func (s *TileTestSuite) TestProductionRatesUsePortedRatio() {
	tile, err := catan.NewTile(0, "brick", 8)
	s.Require().NoError(err)

	profile, err := catan.NewTradeProfileWithPorts([]string{"ore"})
	s.Require().NoError(err)

	p := 5.0 / 36
	rates := tile.ProductionRates(profile)
	s.InDelta(p/2, rates[catan.ResourceOre], 1e-15)
	s.InDelta(p/4, rates[catan.ResourceWood], 1e-15)
	s.InDelta(p, rates[catan.ResourceBrick], 1e-15)
}
