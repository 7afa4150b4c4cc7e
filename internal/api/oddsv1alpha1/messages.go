package oddsv1alpha1

import "time"

// TileSpec is one (resource, chit) pair; chit 0 means none
type TileSpec struct {
	Resource string `json:"resource"`
	Chit     int    `json:"chit"`
}

// Board is a stored board. Seeds are carried as strings so int64 values
// survive the float64 numbers of google.protobuf.Value.
type Board struct {
	BoardID   string     `json:"board_id"`
	Seed      *int64     `json:"seed,omitempty,string"`
	Layout    []TileSpec `json:"layout"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// GenerateBoardRequest asks for a shuffled board
type GenerateBoardRequest struct {
	Seed *int64 `json:"seed,omitempty,string"`
}

// CreateBoardRequest stores a caller-built layout
type CreateBoardRequest struct {
	Layout []TileSpec `json:"layout"`
}

// BoardResponse answers GenerateBoard, CreateBoard and GetBoard
type BoardResponse struct {
	Board Board `json:"board"`
}

// GetBoardRequest loads a board
type GetBoardRequest struct {
	BoardID string `json:"board_id"`
}

// DeleteBoardRequest removes a board
type DeleteBoardRequest struct {
	BoardID string `json:"board_id"`
}

// DeleteBoardResponse reports whether anything was removed
type DeleteBoardResponse struct {
	Deleted bool `json:"deleted"`
}

// SettlementOdds is the evaluated production of one settlement
type SettlementOdds struct {
	Index         int                `json:"index"`
	TileIndices   []int              `json:"tile_indices"`
	TurnRates     map[string]float64 `json:"turn_rates"`
	ExpectedYield float64            `json:"expected_yield"`
	HitRate       float64            `json:"hit_rate"`
}

// GetSettlementOddsRequest asks for one settlement's odds
type GetSettlementOddsRequest struct {
	BoardID         string   `json:"board_id"`
	SettlementIndex int      `json:"settlement_index"`
	Ports           []string `json:"ports,omitempty"`
}

// GetSettlementOddsResponse carries the odds and the ratios they assumed
type GetSettlementOddsResponse struct {
	Odds     SettlementOdds `json:"odds"`
	Ratios   map[string]int `json:"ratios"`
	PortMode string         `json:"port_mode"`
}

// RankSettlementsRequest asks for settlements best first
type RankSettlementsRequest struct {
	BoardID string   `json:"board_id"`
	Ports   []string `json:"ports,omitempty"`
	SortBy  string   `json:"sort_by,omitempty"`
	Limit   int      `json:"limit,omitempty"`
}

// RankSettlementsResponse lists settlements best first
type RankSettlementsResponse struct {
	Rankings []SettlementOdds `json:"rankings"`
	SortBy   string           `json:"sort_by"`
	Ratios   map[string]int   `json:"ratios"`
}

// SimulateSettlementRequest runs dice against one settlement
type SimulateSettlementRequest struct {
	BoardID         string `json:"board_id"`
	SettlementIndex int    `json:"settlement_index"`
	Turns           int    `json:"turns"`
	Seed            *int64 `json:"seed,omitempty,string"`
}

// SimulateSettlementResponse tallies a simulation run
type SimulateSettlementResponse struct {
	SettlementIndex  int            `json:"settlement_index"`
	Turns            int            `json:"turns"`
	Hits             int            `json:"hits"`
	Cards            map[string]int `json:"cards"`
	Sums             []int          `json:"sums"` // index is the 2d6 total
	EmpiricalHitRate float64        `json:"empirical_hit_rate"`
	ExpectedHitRate  float64        `json:"expected_hit_rate"`
}
