package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	oddsv1alpha1 "github.com/KirkDiggler/catan-odds/internal/api/oddsv1alpha1"
)

var generateSeed int64

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and store a board on the server",
	Long: `Generate a shuffled board on the server and print its ID and layout. Examples:

  generate
  generate --seed 42`,
	Args: cobra.NoArgs,
	RunE: generateBoard,
}

func init() {
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Seed for a reproducible board")
}

func generateBoard(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createOddsClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &oddsv1alpha1.GenerateBoardRequest{}
	if cmd.Flags().Changed("seed") {
		seed := generateSeed
		req.Seed = &seed
	}

	wire, err := oddsv1alpha1.Encode(req)
	if err != nil {
		return err
	}

	respWire, err := client.GenerateBoard(ctx, wire)
	if err != nil {
		return describeError("generate board", err)
	}

	var resp oddsv1alpha1.BoardResponse
	if err := oddsv1alpha1.Decode(respWire, &resp); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Board: %s\n", resp.Board.BoardID)
	if resp.Board.Seed != nil {
		fmt.Fprintf(w, "Seed: %d\n", *resp.Board.Seed)
	}
	fmt.Fprintf(w, "Expires: %s\n\n", resp.Board.ExpiresAt.Format("2006-01-02 15:04:05 MST"))

	for i, tile := range resp.Board.Layout {
		if tile.Chit == 0 {
			fmt.Fprintf(w, "  %2d  %s\n", i, tile.Resource)
			continue
		}
		fmt.Fprintf(w, "  %2d  %-6s %2d\n", i, tile.Resource, tile.Chit)
	}
	return nil
}
