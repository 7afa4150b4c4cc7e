package odds_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/catan-odds/internal/entities/catan"
	"github.com/KirkDiggler/catan-odds/internal/errors"
	"github.com/KirkDiggler/catan-odds/internal/orchestrators/odds"
	"github.com/KirkDiggler/catan-odds/internal/pkg/idgen"
	"github.com/KirkDiggler/catan-odds/internal/repositories/boards"
	boardsmock "github.com/KirkDiggler/catan-odds/internal/repositories/boards/mock"
)

// testLayout puts wood 6 alone on settlement 0
func testLayout() catan.Layout {
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

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *boardsmock.MockRepository
	orchestrator odds.Service
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = boardsmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.orchestrator, err = odds.NewOrchestrator(&odds.Config{
		BoardRepo:   s.mockRepo,
		IDGenerator: idgen.NewSequential("board"),
		BoardTTL:    time.Hour,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectStoredBoard(id string) {
	s.mockRepo.EXPECT().
		Get(gomock.Any(), boards.GetInput{ID: id}).
		Return(&boards.GetOutput{Data: &boards.BoardData{ID: id, Layout: testLayout()}}, nil)
}

func (s *OrchestratorTestSuite) TestNewOrchestrator() {
	testCases := []struct {
		name   string
		config *odds.Config
		errMsg string
	}{
		{
			name:   "nil config",
			config: nil,
			errMsg: "config cannot be nil",
		},
		{
			name:   "missing repository",
			config: &odds.Config{IDGenerator: idgen.NewSequential("b")},
			errMsg: "BoardRepo: is required",
		},
		{
			name:   "missing id generator",
			config: &odds.Config{BoardRepo: s.mockRepo},
			errMsg: "IDGenerator: is required",
		},
		{
			name: "negative ttl",
			config: &odds.Config{
				BoardRepo:   s.mockRepo,
				IDGenerator: idgen.NewSequential("b"),
				BoardTTL:    -time.Second,
			},
			errMsg: "BoardTTL: must not be negative",
		},
		{
			name: "unknown port mode",
			config: &odds.Config{
				BoardRepo:   s.mockRepo,
				IDGenerator: idgen.NewSequential("b"),
				PortMode:    catan.PortMode(9),
			},
			errMsg: "PortMode: unknown mode 9",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := odds.NewOrchestrator(tc.config)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(svc)
		})
	}
}

func (s *OrchestratorTestSuite) TestGenerateBoard_Seeded() {
	seed := int64(7)
	want, err := catan.GenerateLayout(catan.WithSeed(seed))
	s.Require().NoError(err)

	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input boards.CreateInput) (*boards.CreateOutput, error) {
			s.Equal("board_1", input.ID)
			s.Equal(time.Hour, input.TTL)
			s.Require().NotNil(input.Seed)
			s.Equal(seed, *input.Seed)
			s.Equal(want, input.Layout)
			return &boards.CreateOutput{Data: &boards.BoardData{
				ID:     input.ID,
				Seed:   input.Seed,
				Layout: input.Layout,
			}}, nil
		})

	out, err := s.orchestrator.GenerateBoard(s.ctx, &odds.GenerateBoardInput{Seed: &seed})
	s.Require().NoError(err)
	s.Equal("board_1", out.BoardID)
	s.Equal(want, out.Board.Layout())
	s.Equal("board_1", out.Data.ID)
}

func (s *OrchestratorTestSuite) TestGenerateBoard_StoreFails() {
	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	out, err := s.orchestrator.GenerateBoard(s.ctx, &odds.GenerateBoardInput{})
	s.Nil(out)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
	s.Contains(err.Error(), "failed to store board")
}

func (s *OrchestratorTestSuite) TestCreateBoard() {
	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input boards.CreateInput) (*boards.CreateOutput, error) {
			s.Nil(input.Seed)
			s.Equal(testLayout(), input.Layout)
			return &boards.CreateOutput{Data: &boards.BoardData{ID: input.ID, Layout: input.Layout}}, nil
		})

	out, err := s.orchestrator.CreateBoard(s.ctx, &odds.CreateBoardInput{Layout: testLayout()})
	s.Require().NoError(err)
	s.Equal("board_1", out.BoardID)
	s.Len(out.Board.Settlements(), catan.SettlementCount)
}

func (s *OrchestratorTestSuite) TestCreateBoard_InvalidLayout() {
	testCases := []struct {
		name   string
		layout catan.Layout
		check  func(error) bool
	}{
		{
			name:   "empty",
			layout: nil,
			check:  errors.IsInvalidArgument,
		},
		{
			name:   "short",
			layout: testLayout()[:18],
			check:  errors.IsInvalidLayout,
		},
		{
			name: "unknown resource",
			layout: func() catan.Layout {
				l := testLayout()
				l[0].Resource = "gold"
				return l
			}(),
			check: errors.IsInvalidResource,
		},
		{
			name: "seven chit",
			layout: func() catan.Layout {
				l := testLayout()
				l[0].Chit = 7
				return l
			}(),
			check: errors.IsInvalidChit,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.orchestrator.CreateBoard(s.ctx, &odds.CreateBoardInput{Layout: tc.layout})
			s.Nil(out)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error: %v", err)
		})
	}
}

func (s *OrchestratorTestSuite) TestGetBoard() {
	s.expectStoredBoard("board_9")

	out, err := s.orchestrator.GetBoard(s.ctx, &odds.GetBoardInput{BoardID: "board_9"})
	s.Require().NoError(err)
	s.Equal(testLayout(), out.Board.Layout())
	s.Equal("board_9", out.Data.ID)
}

func (s *OrchestratorTestSuite) TestGetBoard_NotFound() {
	s.mockRepo.EXPECT().
		Get(gomock.Any(), boards.GetInput{ID: "board_missing"}).
		Return(nil, errors.NotFound("board not found"))

	_, err := s.orchestrator.GetBoard(s.ctx, &odds.GetBoardInput{BoardID: "board_missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.GetBoard(s.ctx, &odds.GetBoardInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetBoard_CorruptStoredLayout() {
	s.mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(&boards.GetOutput{Data: &boards.BoardData{
			ID:     "board_bad",
			Layout: testLayout()[:3],
		}}, nil)

	_, err := s.orchestrator.GetBoard(s.ctx, &odds.GetBoardInput{BoardID: "board_bad"})
	s.True(errors.IsInternal(err))
	s.Equal("board_bad", errors.GetMeta(err)["board_id"])
}

func (s *OrchestratorTestSuite) TestDeleteBoard() {
	s.mockRepo.EXPECT().
		Delete(gomock.Any(), boards.DeleteInput{ID: "board_1"}).
		Return(&boards.DeleteOutput{Deleted: true}, nil)

	out, err := s.orchestrator.DeleteBoard(s.ctx, &odds.DeleteBoardInput{BoardID: "board_1"})
	s.Require().NoError(err)
	s.True(out.Deleted)
}

func (s *OrchestratorTestSuite) TestGetSettlementOdds() {
	s.expectStoredBoard("board_1")

	out, err := s.orchestrator.GetSettlementOdds(s.ctx, &odds.GetSettlementOddsInput{
		BoardID:         "board_1",
		SettlementIndex: 0,
		Ports:           []string{"Brick"},
	})
	s.Require().NoError(err)

	p := 5.0 / 36.0
	s.Equal(0, out.Odds.Index)
	s.Equal([]int{0}, out.Odds.TileIndices)
	s.InDelta(p, out.Odds.TurnRates[catan.ResourceWood], 1e-12)
	s.InDelta(p/2, out.Odds.TurnRates[catan.ResourceBrick], 1e-12)
	s.InDelta(p/4, out.Odds.TurnRates[catan.ResourceOre], 1e-12)
	s.InDelta(p, out.Odds.HitRate, 1e-12)
	s.InDelta(p+p/2+3*p/4, out.Odds.ExpectedYield, 1e-12)

	s.Equal(catan.ResourcePortRatio, out.Ratios[catan.ResourceBrick])
	s.Equal(catan.BankTradeRatio, out.Ratios[catan.ResourceWood])
	s.Equal(catan.PortModeStandard, out.Mode)
}

func (s *OrchestratorTestSuite) TestGetSettlementOdds_LegacyPorts() {
	svc, err := odds.NewOrchestrator(&odds.Config{
		BoardRepo:   s.mockRepo,
		IDGenerator: idgen.NewSequential("board"),
		PortMode:    catan.PortModeLegacy,
	})
	s.Require().NoError(err)
	s.expectStoredBoard("board_1")

	out, err := svc.GetSettlementOdds(s.ctx, &odds.GetSettlementOddsInput{
		BoardID: "board_1",
		Ports:   []string{"brick"},
	})
	s.Require().NoError(err)
	s.Equal(catan.BankTradeRatio, out.Ratios[catan.ResourceBrick])
	s.Equal(catan.ResourcePortRatio, out.Ratios[catan.ResourceOre])
	s.Equal(catan.PortModeLegacy, out.Mode)
}

func (s *OrchestratorTestSuite) TestGetSettlementOdds_Errors() {
	s.Run("invalid port never touches storage", func() {
		_, err := s.orchestrator.GetSettlementOdds(s.ctx, &odds.GetSettlementOddsInput{
			BoardID: "board_1",
			Ports:   []string{"desert"},
		})
		s.True(errors.IsInvalidPortKind(err))
	})

	s.Run("settlement out of range", func() {
		s.expectStoredBoard("board_1")
		_, err := s.orchestrator.GetSettlementOdds(s.ctx, &odds.GetSettlementOddsInput{
			BoardID:         "board_1",
			SettlementIndex: catan.SettlementCount,
		})
		s.True(errors.IsOutOfRange(err))
	})

	s.Run("missing board id", func() {
		_, err := s.orchestrator.GetSettlementOdds(s.ctx, &odds.GetSettlementOddsInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestRankSettlements() {
	s.expectStoredBoard("board_1")

	out, err := s.orchestrator.RankSettlements(s.ctx, &odds.RankSettlementsInput{
		BoardID: "board_1",
		SortBy:  "hit-rate",
		Limit:   5,
	})
	s.Require().NoError(err)
	s.Equal(catan.RankByHitRate, out.SortBy)
	s.Require().Len(out.Rankings, 5)
	for i := 1; i < len(out.Rankings); i++ {
		s.GreaterOrEqual(out.Rankings[i-1].HitRate, out.Rankings[i].HitRate)
	}
}

func (s *OrchestratorTestSuite) TestRankSettlements_AllByDefault() {
	s.expectStoredBoard("board_1")

	out, err := s.orchestrator.RankSettlements(s.ctx, &odds.RankSettlementsInput{BoardID: "board_1"})
	s.Require().NoError(err)
	s.Equal(catan.RankByYield, out.SortBy)
	s.Len(out.Rankings, catan.SettlementCount)
	for i := 1; i < len(out.Rankings); i++ {
		s.GreaterOrEqual(out.Rankings[i-1].ExpectedYield+1e-12, out.Rankings[i].ExpectedYield)
	}
}

func (s *OrchestratorTestSuite) TestRankSettlements_Errors() {
	_, err := s.orchestrator.RankSettlements(s.ctx, &odds.RankSettlementsInput{BoardID: "board_1", SortBy: "luck"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.RankSettlements(s.ctx, &odds.RankSettlementsInput{BoardID: "board_1", Limit: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSimulateSettlement() {
	seed := int64(42)
	s.expectStoredBoard("board_1")
	s.expectStoredBoard("board_1")

	input := &odds.SimulateSettlementInput{
		BoardID:         "board_1",
		SettlementIndex: 12,
		Turns:           2000,
		Seed:            &seed,
	}

	first, err := s.orchestrator.SimulateSettlement(s.ctx, input)
	s.Require().NoError(err)
	second, err := s.orchestrator.SimulateSettlement(s.ctx, input)
	s.Require().NoError(err)

	s.Equal(first.Result, second.Result, "same seed should replay the same run")
	s.Equal(2000, first.Result.Turns)
	s.Equal(12, first.Result.SettlementIndex)
}

func (s *OrchestratorTestSuite) TestSimulateSettlement_TurnBounds() {
	for _, turns := range []int{0, -3, catan.MaxSimulationTurns + 1} {
		_, err := s.orchestrator.SimulateSettlement(s.ctx, &odds.SimulateSettlementInput{
			BoardID: "board_1",
			Turns:   turns,
		})
		s.True(errors.IsInvalidArgument(err), "turns=%d", turns)
		s.Contains(err.Error(), "Turns: must be between 1 and 1000000")
	}
}
