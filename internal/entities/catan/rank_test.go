package catan_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/catan-odds/internal/entities/catan"
	"github.com/KirkDiggler/catan-odds/internal/errors"
)

type RankTestSuite struct {
	suite.Suite
	board *catan.Board
}

func TestRankSuite(t *testing.T) {
	suite.Run(t, new(RankTestSuite))
}

func (s *RankTestSuite) SetupTest() {
	board, err := catan.NewBoard(standardLayout())
	s.Require().NoError(err)
	s.board = board
}

func (s *RankTestSuite) TestEvaluate() {
	st, err := s.board.Settlement(12)
	s.Require().NoError(err)

	odds := catan.Evaluate(st, nil)
	s.Equal(12, odds.Index)
	s.Equal([]int{0, 3, 4}, odds.TileIndices)
	s.InDelta(14.0/36, odds.HitRate, 1e-15)
	s.InDelta(st.ExpectedYield(nil), odds.ExpectedYield, 1e-15)
}

func (s *RankTestSuite) TestRankByYield() {
	ranked := catan.RankSettlements(s.board, catan.NewTradeProfile(), catan.RankByYield)
	s.Require().Len(ranked, catan.SettlementCount)

	for i := 1; i < len(ranked); i++ {
		s.GreaterOrEqual(ranked[i-1].ExpectedYield+1e-12, ranked[i].ExpectedYield)
	}
}

func (s *RankTestSuite) TestRankByHitRate() {
	ranked := catan.RankSettlements(s.board, nil, catan.RankByHitRate)
	s.Require().Len(ranked, catan.SettlementCount)

	for i := 1; i < len(ranked); i++ {
		s.GreaterOrEqual(ranked[i-1].HitRate+1e-12, ranked[i].HitRate)
	}
	// a lone 2 or 12 is the worst a spot can do
	s.InDelta(1.0/36, ranked[len(ranked)-1].HitRate, 1e-15)
}

func (s *RankTestSuite) TestParseRankBy() {
	by, err := catan.ParseRankBy("")
	s.Require().NoError(err)
	s.Equal(catan.RankByYield, by)

	by, err = catan.ParseRankBy("Hit-Rate")
	s.Require().NoError(err)
	s.Equal(catan.RankByHitRate, by)

	_, err = catan.ParseRankBy("pips")
	s.True(errors.IsInvalidArgument(err))
}
