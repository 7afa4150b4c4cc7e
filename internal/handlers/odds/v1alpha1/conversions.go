package v1alpha1

import (
	oddsv1alpha1 "github.com/KirkDiggler/catan-odds/internal/api/oddsv1alpha1"
	"github.com/KirkDiggler/catan-odds/internal/entities/catan"
	"github.com/KirkDiggler/catan-odds/internal/repositories/boards"
)

func convertLayoutFromProto(specs []oddsv1alpha1.TileSpec) catan.Layout {
	layout := make(catan.Layout, len(specs))
	for i, spec := range specs {
		layout[i] = catan.TileSpec{Resource: spec.Resource, Chit: spec.Chit}
	}
	return layout
}

func convertBoardToProto(data *boards.BoardData) oddsv1alpha1.Board {
	if data == nil {
		return oddsv1alpha1.Board{}
	}

	layout := make([]oddsv1alpha1.TileSpec, len(data.Layout))
	for i, spec := range data.Layout {
		layout[i] = oddsv1alpha1.TileSpec{Resource: spec.Resource, Chit: spec.Chit}
	}

	return oddsv1alpha1.Board{
		BoardID:   data.ID,
		Seed:      data.Seed,
		Layout:    layout,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}

func convertOddsToProto(o catan.SettlementOdds) oddsv1alpha1.SettlementOdds {
	rates := make(map[string]float64, len(o.TurnRates))
	for r, rate := range o.TurnRates {
		rates[string(r)] = rate
	}

	return oddsv1alpha1.SettlementOdds{
		Index:         o.Index,
		TileIndices:   o.TileIndices,
		TurnRates:     rates,
		ExpectedYield: o.ExpectedYield,
		HitRate:       o.HitRate,
	}
}

func convertRatiosToProto(ratios map[catan.Resource]int) map[string]int {
	out := make(map[string]int, len(ratios))
	for r, ratio := range ratios {
		out[string(r)] = ratio
	}
	return out
}

func convertSimulationToProto(r *catan.SimulationResult) *oddsv1alpha1.SimulateSettlementResponse {
	cards := make(map[string]int, len(r.Cards))
	for res, n := range r.Cards {
		cards[string(res)] = n
	}

	return &oddsv1alpha1.SimulateSettlementResponse{
		SettlementIndex:  r.SettlementIndex,
		Turns:            r.Turns,
		Hits:             r.Hits,
		Cards:            cards,
		Sums:             r.Sums[:],
		EmpiricalHitRate: r.EmpiricalHitRate,
		ExpectedHitRate:  r.ExpectedHitRate,
	}
}
