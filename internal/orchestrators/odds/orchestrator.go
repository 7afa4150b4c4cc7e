// Package odds implements the odds orchestrator: it stores boards and
// answers production questions about their settlements
package odds

//go:generate mockgen -destination=mock/mock_service.go -package=oddsmock github.com/KirkDiggler/catan-odds/internal/orchestrators/odds Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/catan-odds/internal/entities/catan"
	"github.com/KirkDiggler/catan-odds/internal/errors"
	"github.com/KirkDiggler/catan-odds/internal/pkg/idgen"
	"github.com/KirkDiggler/catan-odds/internal/repositories/boards"
)

// Service defines the interface for board and odds operations
type Service interface {
	// Board lifecycle
	GenerateBoard(ctx context.Context, input *GenerateBoardInput) (*GenerateBoardOutput, error)
	CreateBoard(ctx context.Context, input *CreateBoardInput) (*CreateBoardOutput, error)
	GetBoard(ctx context.Context, input *GetBoardInput) (*GetBoardOutput, error)
	DeleteBoard(ctx context.Context, input *DeleteBoardInput) (*DeleteBoardOutput, error)

	// Odds queries
	GetSettlementOdds(ctx context.Context, input *GetSettlementOddsInput) (*GetSettlementOddsOutput, error)
	RankSettlements(ctx context.Context, input *RankSettlementsInput) (*RankSettlementsOutput, error)
	SimulateSettlement(ctx context.Context, input *SimulateSettlementInput) (*SimulateSettlementOutput, error)
}

// Config holds the dependencies for the odds orchestrator
type Config struct {
	BoardRepo   boards.Repository
	IDGenerator idgen.Generator

	// Roller backs unseeded generation and simulation. Defaults to dice.DefaultRoller.
	Roller dice.Roller

	// PortMode decides how resource ports change trade ratios
	PortMode catan.PortMode

	// BoardTTL is how long stored boards live. Zero uses the repository default.
	BoardTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.BoardRepo == nil {
		vb.RequiredField("BoardRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.BoardTTL < 0 {
		vb.Field("BoardTTL", "must not be negative")
	}
	if c.PortMode != catan.PortModeStandard && c.PortMode != catan.PortModeLegacy {
		vb.Fieldf("PortMode", "unknown mode %d", c.PortMode)
	}

	return vb.Build()
}

type orchestrator struct {
	boardRepo boards.Repository
	idGen     idgen.Generator
	roller    dice.Roller
	portMode  catan.PortMode
	boardTTL  time.Duration
}

// NewOrchestrator creates a new odds orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		boardRepo: cfg.BoardRepo,
		idGen:     cfg.IDGenerator,
		roller:    roller,
		portMode:  cfg.PortMode,
		boardTTL:  cfg.BoardTTL,
	}, nil
}

// GenerateBoard shuffles a new board and stores it
func (o *orchestrator) GenerateBoard(ctx context.Context, input *GenerateBoardInput) (*GenerateBoardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	opt := catan.WithRoller(o.roller)
	if input.Seed != nil {
		opt = catan.WithSeed(*input.Seed)
	}

	board, err := catan.Generate(opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate board")
	}

	data, err := o.store(ctx, board, input.Seed)
	if err != nil {
		return nil, err
	}

	slog.Info("Board generated",
		"board_id", data.ID,
		"seeded", input.Seed != nil,
	)

	return &GenerateBoardOutput{
		BoardID: data.ID,
		Board:   board,
		Data:    data,
	}, nil
}

// CreateBoard validates a caller-supplied layout and stores it
func (o *orchestrator) CreateBoard(ctx context.Context, input *CreateBoardInput) (*CreateBoardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Layout) == 0 {
		return nil, errors.InvalidArgument("layout is required")
	}

	board, err := catan.NewBoard(input.Layout)
	if err != nil {
		return nil, errors.Wrap(err, "invalid board layout")
	}

	data, err := o.store(ctx, board, nil)
	if err != nil {
		return nil, err
	}

	slog.Info("Board created", "board_id", data.ID)

	return &CreateBoardOutput{
		BoardID: data.ID,
		Board:   board,
		Data:    data,
	}, nil
}

// GetBoard loads a stored board and rebuilds it
func (o *orchestrator) GetBoard(ctx context.Context, input *GetBoardInput) (*GetBoardOutput, error) {
	if input == nil || input.BoardID == "" {
		return nil, errors.InvalidArgument("board ID is required")
	}

	board, data, err := o.loadBoard(ctx, input.BoardID)
	if err != nil {
		return nil, err
	}

	return &GetBoardOutput{Board: board, Data: data}, nil
}

// DeleteBoard removes a stored board
func (o *orchestrator) DeleteBoard(ctx context.Context, input *DeleteBoardInput) (*DeleteBoardOutput, error) {
	if input == nil || input.BoardID == "" {
		return nil, errors.InvalidArgument("board ID is required")
	}

	out, err := o.boardRepo.Delete(ctx, boards.DeleteInput{ID: input.BoardID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete board")
	}

	slog.Info("Board deleted",
		"board_id", input.BoardID,
		"deleted", out.Deleted,
	)

	return &DeleteBoardOutput{Deleted: out.Deleted}, nil
}

// GetSettlementOdds evaluates one settlement for an owner holding the given ports
func (o *orchestrator) GetSettlementOdds(ctx context.Context, input *GetSettlementOddsInput) (*GetSettlementOddsOutput, error) {
	if input == nil || input.BoardID == "" {
		return nil, errors.InvalidArgument("board ID is required")
	}

	profile, err := o.profile(input.Ports)
	if err != nil {
		return nil, err
	}

	board, _, err := o.loadBoard(ctx, input.BoardID)
	if err != nil {
		return nil, err
	}

	settlement, err := board.Settlement(input.SettlementIndex)
	if err != nil {
		return nil, err
	}

	return &GetSettlementOddsOutput{
		Odds:   catan.Evaluate(settlement, profile),
		Ratios: profile.Ratios(),
		Mode:   profile.Mode(),
	}, nil
}

// RankSettlements orders every settlement of a board best first
func (o *orchestrator) RankSettlements(ctx context.Context, input *RankSettlementsInput) (*RankSettlementsOutput, error) {
	if input == nil || input.BoardID == "" {
		return nil, errors.InvalidArgument("board ID is required")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgumentf("limit must not be negative, got %d", input.Limit)
	}

	by, err := catan.ParseRankBy(input.SortBy)
	if err != nil {
		return nil, err
	}

	profile, err := o.profile(input.Ports)
	if err != nil {
		return nil, err
	}

	board, _, err := o.loadBoard(ctx, input.BoardID)
	if err != nil {
		return nil, err
	}

	rankings := catan.RankSettlements(board, profile, by)
	if input.Limit > 0 && input.Limit < len(rankings) {
		rankings = rankings[:input.Limit]
	}

	slog.Info("Settlements ranked",
		"board_id", input.BoardID,
		"sort_by", by,
		"ports", len(input.Ports),
		"returned", len(rankings),
	)

	return &RankSettlementsOutput{
		Rankings: rankings,
		SortBy:   by,
		Ratios:   profile.Ratios(),
	}, nil
}

// SimulateSettlement plays out turns of 2d6 against one settlement
func (o *orchestrator) SimulateSettlement(ctx context.Context, input *SimulateSettlementInput) (*SimulateSettlementOutput, error) {
	if input == nil || input.BoardID == "" {
		return nil, errors.InvalidArgument("board ID is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("Turns", input.Turns, 1, catan.MaxSimulationTurns, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	board, _, err := o.loadBoard(ctx, input.BoardID)
	if err != nil {
		return nil, err
	}

	settlement, err := board.Settlement(input.SettlementIndex)
	if err != nil {
		return nil, err
	}

	roller := o.roller
	if input.Seed != nil {
		roller = catan.NewSeededRoller(*input.Seed)
	}

	result, err := catan.Simulate(settlement, roller, input.Turns)
	if err != nil {
		return nil, errors.Wrap(err, "failed to simulate settlement")
	}

	slog.Info("Settlement simulated",
		"board_id", input.BoardID,
		"settlement", input.SettlementIndex,
		"turns", result.Turns,
		"empirical_hit_rate", result.EmpiricalHitRate,
		"expected_hit_rate", result.ExpectedHitRate,
	)

	return &SimulateSettlementOutput{Result: result}, nil
}

func (o *orchestrator) store(ctx context.Context, board *catan.Board, seed *int64) (*boards.BoardData, error) {
	out, err := o.boardRepo.Create(ctx, boards.CreateInput{
		ID:     o.idGen.Generate(),
		Seed:   seed,
		Layout: board.Layout(),
		TTL:    o.boardTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store board")
	}
	return out.Data, nil
}

func (o *orchestrator) loadBoard(ctx context.Context, boardID string) (*catan.Board, *boards.BoardData, error) {
	out, err := o.boardRepo.Get(ctx, boards.GetInput{ID: boardID})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get board")
	}

	board, err := catan.NewBoard(out.Data.Layout)
	if err != nil {
		// a stored layout passed validation once, so this is corruption
		return nil, nil, errors.WrapWithCode(err, errors.CodeInternal, "stored board is invalid").
			WithMeta("board_id", boardID)
	}

	return board, out.Data, nil
}

func (o *orchestrator) profile(ports []string) (*catan.TradeProfile, error) {
	return catan.NewTradeProfileWithPorts(ports, catan.WithPortMode(o.portMode))
}
