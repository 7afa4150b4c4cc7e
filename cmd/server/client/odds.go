package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oddsv1alpha1 "github.com/KirkDiggler/catan-odds/internal/api/oddsv1alpha1"
	"github.com/KirkDiggler/catan-odds/internal/entities/catan"
)

var (
	oddsSettlement int
	oddsPorts      []string
)

var oddsCmd = &cobra.Command{
	Use:   "odds [board-id]",
	Short: "Show one settlement's odds on a stored board",
	Long: `Show what one settlement produces per turn. Examples:

  odds board_1b4e28ba --settlement 12
  odds board_1b4e28ba --settlement 12 --port ore --port all`,
	Args: cobra.ExactArgs(1),
	RunE: settlementOdds,
}

func init() {
	oddsCmd.Flags().IntVar(&oddsSettlement, "settlement", 0, "Settlement index (0-53)")
	oddsCmd.Flags().StringArrayVar(&oddsPorts, "port", nil, "Port held: all or a resource name (repeatable)")
}

func settlementOdds(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createOddsClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	wire, err := oddsv1alpha1.Encode(&oddsv1alpha1.GetSettlementOddsRequest{
		BoardID:         args[0],
		SettlementIndex: oddsSettlement,
		Ports:           oddsPorts,
	})
	if err != nil {
		return err
	}

	respWire, err := client.GetSettlementOdds(ctx, wire)
	if err != nil {
		return describeError("get settlement odds", err)
	}

	var resp oddsv1alpha1.GetSettlementOddsResponse
	if err := oddsv1alpha1.Decode(respWire, &resp); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Settlement %d (tiles %v)\n", resp.Odds.Index, resp.Odds.TileIndices)
	if len(oddsPorts) > 0 {
		labels := make([]string, len(oddsPorts))
		for i, p := range oddsPorts {
			labels[i] = catan.PortLabel(p)
		}
		fmt.Fprintf(w, "Ports: %s (%s mode)\n", strings.Join(labels, ", "), resp.PortMode)
	}
	fmt.Fprintf(w, "Hit rate: %.4f\n", resp.Odds.HitRate)
	fmt.Fprintf(w, "Expected yield: %.4f cards/turn\n", resp.Odds.ExpectedYield)
	for _, r := range catan.Resources() {
		fmt.Fprintf(w, "  %-6s %d:1  %.4f\n", r, resp.Ratios[string(r)], resp.Odds.TurnRates[string(r)])
	}
	return nil
}
