package catan_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/catan-odds/internal/entities/catan"
	"github.com/KirkDiggler/catan-odds/internal/errors"
)

type ProbabilityTestSuite struct {
	suite.Suite
}

func TestProbabilitySuite(t *testing.T) {
	suite.Run(t, new(ProbabilityTestSuite))
}

func (s *ProbabilityTestSuite) TestTableCoversEveryRoll() {
	outcomes := 0
	for _, c := range catan.Chits() {
		n, err := catan.ChitOutcomes(c)
		s.Require().NoError(err)
		outcomes += n
	}
	sentinel, err := catan.ChitOutcomes(catan.NoChit)
	s.Require().NoError(err)
	outcomes += sentinel

	// the six ways to roll a 7 are the only outcomes the table leaves out
	s.Equal(30, outcomes)
	s.Equal(catan.DiceOutcomes, outcomes+6)
}

func (s *ProbabilityTestSuite) TestSymmetry() {
	for _, c := range catan.Chits() {
		p, err := catan.ChitProbability(c)
		s.Require().NoError(err)
		mirror, err := catan.ChitProbability(14 - c)
		s.Require().NoError(err)
		s.Equal(p, mirror, "chit %d vs %d", c, 14-c)
	}
}

func (s *ProbabilityTestSuite) TestKnownValues() {
	testCases := []struct {
		chit     catan.Chit
		expected float64
	}{
		{chit: catan.NoChit, expected: 0},
		{chit: 2, expected: 1.0 / 36},
		{chit: 3, expected: 2.0 / 36},
		{chit: 6, expected: 5.0 / 36},
		{chit: 8, expected: 5.0 / 36},
		{chit: 11, expected: 2.0 / 36},
		{chit: 12, expected: 1.0 / 36},
	}

	for _, tc := range testCases {
		p, err := catan.ChitProbability(tc.chit)
		s.Require().NoError(err)
		s.InDelta(tc.expected, p, 1e-15, "chit %d", tc.chit)
	}
}

func (s *ProbabilityTestSuite) TestInvalidChits() {
	for _, c := range []catan.Chit{7, -1, 1, 13, 100} {
		s.False(c.Valid())
		_, err := catan.ChitProbability(c)
		s.True(errors.IsInvalidChit(err), "chit %d", c)
	}
}

func (s *ProbabilityTestSuite) TestChitsExcludesSeven() {
	s.Equal([]catan.Chit{2, 3, 4, 5, 6, 8, 9, 10, 11, 12}, catan.Chits())
}
