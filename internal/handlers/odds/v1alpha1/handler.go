// Package v1alpha1 handles the odds grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	oddsv1alpha1 "github.com/KirkDiggler/catan-odds/internal/api/oddsv1alpha1"
	"github.com/KirkDiggler/catan-odds/internal/errors"
	"github.com/KirkDiggler/catan-odds/internal/orchestrators/odds"
)

// HandlerConfig holds dependencies for the odds handler
type HandlerConfig struct {
	OddsService odds.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.OddsService == nil {
		return errors.InvalidArgument("odds service is required")
	}
	return nil
}

// Handler implements the OddsService gRPC server
type Handler struct {
	oddsv1alpha1.UnimplementedOddsServiceServer
	oddsService odds.Service
}

var _ oddsv1alpha1.OddsServiceServer = (*Handler)(nil)

// NewHandler creates a new odds handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		oddsService: cfg.OddsService,
	}, nil
}

// GenerateBoard shuffles and stores a new board
func (h *Handler) GenerateBoard(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req oddsv1alpha1.GenerateBoardRequest
	if err := oddsv1alpha1.Decode(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.oddsService.GenerateBoard(ctx, &odds.GenerateBoardInput{Seed: req.Seed})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return encode(&oddsv1alpha1.BoardResponse{Board: convertBoardToProto(out.Data)})
}

// CreateBoard validates and stores a caller-built layout
func (h *Handler) CreateBoard(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req oddsv1alpha1.CreateBoardRequest
	if err := oddsv1alpha1.Decode(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if len(req.Layout) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("layout is required"))
	}

	out, err := h.oddsService.CreateBoard(ctx, &odds.CreateBoardInput{
		Layout: convertLayoutFromProto(req.Layout),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return encode(&oddsv1alpha1.BoardResponse{Board: convertBoardToProto(out.Data)})
}

// GetBoard loads a stored board
func (h *Handler) GetBoard(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req oddsv1alpha1.GetBoardRequest
	if err := oddsv1alpha1.Decode(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.BoardID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("board_id is required"))
	}

	out, err := h.oddsService.GetBoard(ctx, &odds.GetBoardInput{BoardID: req.BoardID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return encode(&oddsv1alpha1.BoardResponse{Board: convertBoardToProto(out.Data)})
}

// DeleteBoard removes a stored board
func (h *Handler) DeleteBoard(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req oddsv1alpha1.DeleteBoardRequest
	if err := oddsv1alpha1.Decode(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.BoardID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("board_id is required"))
	}

	out, err := h.oddsService.DeleteBoard(ctx, &odds.DeleteBoardInput{BoardID: req.BoardID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return encode(&oddsv1alpha1.DeleteBoardResponse{Deleted: out.Deleted})
}

// GetSettlementOdds evaluates one settlement
func (h *Handler) GetSettlementOdds(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req oddsv1alpha1.GetSettlementOddsRequest
	if err := oddsv1alpha1.Decode(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.BoardID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("board_id is required"))
	}

	out, err := h.oddsService.GetSettlementOdds(ctx, &odds.GetSettlementOddsInput{
		BoardID:         req.BoardID,
		SettlementIndex: req.SettlementIndex,
		Ports:           req.Ports,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return encode(&oddsv1alpha1.GetSettlementOddsResponse{
		Odds:     convertOddsToProto(out.Odds),
		Ratios:   convertRatiosToProto(out.Ratios),
		PortMode: out.Mode.String(),
	})
}

// RankSettlements lists settlements best first
func (h *Handler) RankSettlements(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req oddsv1alpha1.RankSettlementsRequest
	if err := oddsv1alpha1.Decode(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.BoardID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("board_id is required"))
	}

	out, err := h.oddsService.RankSettlements(ctx, &odds.RankSettlementsInput{
		BoardID: req.BoardID,
		Ports:   req.Ports,
		SortBy:  req.SortBy,
		Limit:   req.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	rankings := make([]oddsv1alpha1.SettlementOdds, 0, len(out.Rankings))
	for _, o := range out.Rankings {
		rankings = append(rankings, convertOddsToProto(o))
	}

	return encode(&oddsv1alpha1.RankSettlementsResponse{
		Rankings: rankings,
		SortBy:   string(out.SortBy),
		Ratios:   convertRatiosToProto(out.Ratios),
	})
}

// SimulateSettlement runs dice against one settlement
func (h *Handler) SimulateSettlement(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req oddsv1alpha1.SimulateSettlementRequest
	if err := oddsv1alpha1.Decode(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.BoardID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("board_id is required"))
	}

	out, err := h.oddsService.SimulateSettlement(ctx, &odds.SimulateSettlementInput{
		BoardID:         req.BoardID,
		SettlementIndex: req.SettlementIndex,
		Turns:           req.Turns,
		Seed:            req.Seed,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return encode(convertSimulationToProto(out.Result))
}

func encode(msg any) (*structpb.Struct, error) {
	out, err := oddsv1alpha1.Encode(msg)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
