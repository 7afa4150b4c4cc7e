package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/catan-odds/internal/entities/catan"
	"github.com/KirkDiggler/catan-odds/internal/orchestrators/odds"
	"github.com/KirkDiggler/catan-odds/internal/pkg/clock"
	"github.com/KirkDiggler/catan-odds/internal/pkg/idgen"
	"github.com/KirkDiggler/catan-odds/internal/repositories/boards"
)

var (
	layoutFile      string
	outFile         string
	boardSeed       int64
	settlementIndex int
	ports           []string
	localPortMode   string
	rankBy          string
	rankLimit       int
	simTurns        int
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Evaluate board layouts locally",
	Long: `Board commands work on layout files without a server. A layout file is a YAML
(or JSON) list of 19 {resource, chit} entries in tile order; the desert has chit 0.`,
}

var boardGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Shuffle a legal board and print or save its layout",
	Args:  cobra.NoArgs,
	RunE:  runBoardGenerate,
}

var boardOddsCmd = &cobra.Command{
	Use:   "odds",
	Short: "Show turn rates and hit rate for one settlement",
	Long: `Show what one settlement spot produces per turn. Examples:

  board odds --layout board.yaml --settlement 12
  board odds --layout board.yaml --settlement 12 --port wood --port all`,
	Args: cobra.NoArgs,
	RunE: runBoardOdds,
}

var boardRankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank every settlement spot best first",
	Args:  cobra.NoArgs,
	RunE:  runBoardRank,
}

var boardSimulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Roll dice against one settlement and compare with the exact odds",
	Args:  cobra.NoArgs,
	RunE:  runBoardSimulate,
}

func init() {
	boardGenerateCmd.Flags().Int64Var(&boardSeed, "seed", 0, "Seed for a reproducible board")
	boardGenerateCmd.Flags().StringVar(&outFile, "out", "", "Write the layout here (.yaml or .json) instead of stdout")

	for _, cmd := range []*cobra.Command{boardOddsCmd, boardRankCmd, boardSimulateCmd} {
		cmd.Flags().StringVar(&layoutFile, "layout", "", "Layout file (YAML or JSON)")
		_ = cmd.MarkFlagRequired("layout")
	}
	for _, cmd := range []*cobra.Command{boardOddsCmd, boardRankCmd} {
		cmd.Flags().StringArrayVar(&ports, "port", nil, "Port held: all or a resource name (repeatable)")
		cmd.Flags().StringVar(&localPortMode, "port-mode", "standard", "How resource ports apply: standard or legacy")
	}
	for _, cmd := range []*cobra.Command{boardOddsCmd, boardSimulateCmd} {
		cmd.Flags().IntVar(&settlementIndex, "settlement", 0, "Settlement index (0-53)")
	}

	boardRankCmd.Flags().StringVar(&rankBy, "by", string(catan.RankByYield), "Sort key: yield or hit-rate")
	boardRankCmd.Flags().IntVar(&rankLimit, "limit", 10, "How many settlements to show; 0 shows all")

	boardSimulateCmd.Flags().IntVar(&simTurns, "turns", 10000, "Turns to simulate")
	boardSimulateCmd.Flags().Int64Var(&boardSeed, "seed", 0, "Seed for reproducible dice")

	boardCmd.AddCommand(boardGenerateCmd)
	boardCmd.AddCommand(boardOddsCmd)
	boardCmd.AddCommand(boardRankCmd)
	boardCmd.AddCommand(boardSimulateCmd)
}

// newLocalService runs the orchestrator over in-memory storage
func newLocalService(mode string) (odds.Service, error) {
	portMode, err := catan.ParsePortMode(mode)
	if err != nil {
		return nil, err
	}

	return odds.NewOrchestrator(&odds.Config{
		BoardRepo:   boards.NewInMemory(clock.New()),
		IDGenerator: idgen.NewSequential("local"),
		PortMode:    portMode,
	})
}

// loadLocalBoard stores the layout file in svc and returns its ID
func loadLocalBoard(ctx context.Context, svc odds.Service, path string) (string, error) {
	layout, err := readLayout(path)
	if err != nil {
		return "", err
	}

	out, err := svc.CreateBoard(ctx, &odds.CreateBoardInput{Layout: layout})
	if err != nil {
		return "", fmt.Errorf("invalid layout in %s: %w", path, err)
	}
	return out.BoardID, nil
}

func readLayout(path string) (catan.Layout, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}

	// JSON is valid YAML, so one decoder covers both
	var layout catan.Layout
	if err := yaml.Unmarshal(raw, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	return layout, nil
}

func writeLayout(w io.Writer, path string, layout catan.Layout) error {
	var (
		raw []byte
		err error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		raw, err = json.MarshalIndent(layout, "", "  ")
		raw = append(raw, '\n')
	} else {
		raw, err = yaml.Marshal(layout)
	}
	if err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}

	if path == "" {
		_, err = w.Write(raw)
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func runBoardGenerate(cmd *cobra.Command, args []string) error {
	svc, err := newLocalService("")
	if err != nil {
		return err
	}

	input := &odds.GenerateBoardInput{}
	if cmd.Flags().Changed("seed") {
		seed := boardSeed
		input.Seed = &seed
	}

	out, err := svc.GenerateBoard(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("failed to generate board: %w", err)
	}

	if err := writeLayout(cmd.OutOrStdout(), outFile, out.Board.Layout()); err != nil {
		return err
	}
	if outFile != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Layout written to %s\n", outFile)
	}
	return nil
}

func runBoardOdds(cmd *cobra.Command, args []string) error {
	svc, err := newLocalService(localPortMode)
	if err != nil {
		return err
	}

	boardID, err := loadLocalBoard(cmd.Context(), svc, layoutFile)
	if err != nil {
		return err
	}

	out, err := svc.GetSettlementOdds(cmd.Context(), &odds.GetSettlementOddsInput{
		BoardID:         boardID,
		SettlementIndex: settlementIndex,
		Ports:           ports,
	})
	if err != nil {
		return fmt.Errorf("failed to evaluate settlement: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Settlement %d (tiles %v)\n", out.Odds.Index, out.Odds.TileIndices)
	if len(ports) > 0 {
		labels := make([]string, len(ports))
		for i, p := range ports {
			labels[i] = catan.PortLabel(p)
		}
		fmt.Fprintf(w, "Ports: %s (%s mode)\n", strings.Join(labels, ", "), out.Mode)
	}
	fmt.Fprintf(w, "Hit rate: %.4f (%s)\n", out.Odds.HitRate, asOutcomes(out.Odds.HitRate))
	fmt.Fprintf(w, "Expected yield: %.4f cards/turn\n\n", out.Odds.ExpectedYield)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RESOURCE\tRATIO\tPER TURN")
	for _, r := range catan.Resources() {
		fmt.Fprintf(tw, "%s\t%d:1\t%.4f\n", r, out.Ratios[r], out.Odds.TurnRates[r])
	}
	return tw.Flush()
}

func runBoardRank(cmd *cobra.Command, args []string) error {
	svc, err := newLocalService(localPortMode)
	if err != nil {
		return err
	}

	boardID, err := loadLocalBoard(cmd.Context(), svc, layoutFile)
	if err != nil {
		return err
	}

	out, err := svc.RankSettlements(cmd.Context(), &odds.RankSettlementsInput{
		BoardID: boardID,
		Ports:   ports,
		SortBy:  rankBy,
		Limit:   rankLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to rank settlements: %w", err)
	}

	return printRankings(cmd.OutOrStdout(), out.Rankings)
}

func runBoardSimulate(cmd *cobra.Command, args []string) error {
	svc, err := newLocalService("")
	if err != nil {
		return err
	}

	boardID, err := loadLocalBoard(cmd.Context(), svc, layoutFile)
	if err != nil {
		return err
	}

	input := &odds.SimulateSettlementInput{
		BoardID:         boardID,
		SettlementIndex: settlementIndex,
		Turns:           simTurns,
	}
	if cmd.Flags().Changed("seed") {
		seed := boardSeed
		input.Seed = &seed
	}

	out, err := svc.SimulateSettlement(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("failed to simulate settlement: %w", err)
	}

	r := out.Result
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Settlement %d over %d turns\n", r.SettlementIndex, r.Turns)
	fmt.Fprintf(w, "Hits: %d\n", r.Hits)
	fmt.Fprintf(w, "Hit rate: %.4f simulated, %.4f exact\n\n", r.EmpiricalHitRate, r.ExpectedHitRate)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RESOURCE\tCARDS\tPER TURN")
	for _, res := range catan.Resources() {
		n := r.Cards[res]
		fmt.Fprintf(tw, "%s\t%d\t%.4f\n", res, n, float64(n)/float64(r.Turns))
	}
	return tw.Flush()
}

func printRankings(w io.Writer, rankings []catan.SettlementOdds) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tSETTLEMENT\tTILES\tYIELD\tHIT RATE")
	for i, o := range rankings {
		fmt.Fprintf(tw, "%d\t%d\t%v\t%.4f\t%.4f\n", i+1, o.Index, o.TileIndices, o.ExpectedYield, o.HitRate)
	}
	return tw.Flush()
}

// asOutcomes renders a probability as a count of the 36 dice outcomes
func asOutcomes(p float64) string {
	return fmt.Sprintf("%.0f/%d", p*catan.DiceOutcomes, catan.DiceOutcomes)
}
