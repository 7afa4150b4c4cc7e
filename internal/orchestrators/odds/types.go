package odds

import (
	"github.com/KirkDiggler/catan-odds/internal/entities/catan"
	"github.com/KirkDiggler/catan-odds/internal/repositories/boards"
)

// GenerateBoardInput defines the request for generating a random board
type GenerateBoardInput struct {
	// Seed makes the layout reproducible; nil draws from the service roller
	Seed *int64
}

// GenerateBoardOutput defines the response for generating a board
type GenerateBoardOutput struct {
	BoardID string
	Board   *catan.Board
	Data    *boards.BoardData
}

// CreateBoardInput defines the request for storing a hand-built layout
type CreateBoardInput struct {
	Layout catan.Layout
}

// CreateBoardOutput defines the response for storing a layout
type CreateBoardOutput struct {
	BoardID string
	Board   *catan.Board
	Data    *boards.BoardData
}

// GetBoardInput defines the request for loading a board
type GetBoardInput struct {
	BoardID string
}

// GetBoardOutput defines the response for loading a board
type GetBoardOutput struct {
	Board *catan.Board
	Data  *boards.BoardData
}

// DeleteBoardInput defines the request for deleting a board
type DeleteBoardInput struct {
	BoardID string
}

// DeleteBoardOutput defines the response for deleting a board
type DeleteBoardOutput struct {
	Deleted bool
}

// GetSettlementOddsInput defines the request for one settlement's odds
type GetSettlementOddsInput struct {
	BoardID         string
	SettlementIndex int
	Ports           []string // "all" or resource names, applied in order
}

// GetSettlementOddsOutput defines the response for one settlement's odds
type GetSettlementOddsOutput struct {
	Odds   catan.SettlementOdds
	Ratios map[catan.Resource]int
	Mode   catan.PortMode
}

// RankSettlementsInput defines the request for ranking every settlement
type RankSettlementsInput struct {
	BoardID string
	Ports   []string
	SortBy  string // "yield" (default) or "hit-rate"
	Limit   int    // 0 returns all 54
}

// RankSettlementsOutput defines the response for ranking settlements
type RankSettlementsOutput struct {
	Rankings []catan.SettlementOdds
	SortBy   catan.RankBy
	Ratios   map[catan.Resource]int
}

// SimulateSettlementInput defines the request for a Monte Carlo run
type SimulateSettlementInput struct {
	BoardID         string
	SettlementIndex int
	Turns           int
	Seed            *int64
}

// SimulateSettlementOutput defines the response for a Monte Carlo run
type SimulateSettlementOutput struct {
	Result *catan.SimulationResult
}
