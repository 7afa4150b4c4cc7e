package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	oddsv1alpha1 "github.com/KirkDiggler/catan-odds/internal/api/oddsv1alpha1"
)

var (
	rankPorts []string
	rankBy    string
	rankLimit int
)

var rankCmd = &cobra.Command{
	Use:   "rank [board-id]",
	Short: "Rank a stored board's settlements best first",
	Args:  cobra.ExactArgs(1),
	RunE:  rankSettlements,
}

func init() {
	rankCmd.Flags().StringArrayVar(&rankPorts, "port", nil, "Port held: all or a resource name (repeatable)")
	rankCmd.Flags().StringVar(&rankBy, "by", "yield", "Sort key: yield or hit-rate")
	rankCmd.Flags().IntVar(&rankLimit, "limit", 10, "How many settlements to show; 0 shows all")
}

func rankSettlements(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createOddsClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	wire, err := oddsv1alpha1.Encode(&oddsv1alpha1.RankSettlementsRequest{
		BoardID: args[0],
		Ports:   rankPorts,
		SortBy:  rankBy,
		Limit:   rankLimit,
	})
	if err != nil {
		return err
	}

	respWire, err := client.RankSettlements(ctx, wire)
	if err != nil {
		return describeError("rank settlements", err)
	}

	var resp oddsv1alpha1.RankSettlementsResponse
	if err := oddsv1alpha1.Decode(respWire, &resp); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Ranked by %s\n", resp.SortBy)
	for i, o := range resp.Rankings {
		fmt.Fprintf(w, "%3d. settlement %2d  tiles %-10v yield %.4f  hit rate %.4f\n",
			i+1, o.Index, o.TileIndices, o.ExpectedYield, o.HitRate)
	}
	return nil
}
