package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/catan-odds/internal/config"
	"github.com/KirkDiggler/catan-odds/internal/redis"
	"github.com/KirkDiggler/catan-odds/internal/repositories/boards"
)

var (
	pruneRedisAddrs []string
	pruneYes        bool
)

var pruneCmd = &cobra.Command{
	Use:   "prune-boards",
	Short: "Find and delete stored boards that can no longer be read",
	Long: `Scan every board key in Redis, report records that fail to decode or hold an
illegal layout, and delete them after confirmation.`,
	Args: cobra.NoArgs,
	RunE: runPrune,
}

func init() {
	pruneCmd.Flags().StringSliceVar(&pruneRedisAddrs, "redis-addr", nil, "Redis address(es); defaults to CATAN_ODDS_REDIS_ADDR")
	pruneCmd.Flags().BoolVar(&pruneYes, "yes", false, "Delete without asking")
}

func runPrune(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cmd.Flags().Changed("redis-addr") {
		cfg.RedisAddrs = pruneRedisAddrs
	}
	if len(cfg.RedisAddrs) == 0 {
		return fmt.Errorf("no redis address: set --redis-addr or CATAN_ODDS_REDIS_ADDR")
	}

	client, err := newRedisClient(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	return prune(cmd, client)
}

func prune(cmd *cobra.Command, client redis.Client) error {
	out := cmd.OutOrStdout()

	report, err := boards.FindCorrupt(cmd.Context(), client)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Checked %d boards, found %d corrupted\n", report.Checked, len(report.Corrupt))
	if len(report.Corrupt) == 0 {
		return nil
	}

	keys := make([]string, len(report.Corrupt))
	for i, c := range report.Corrupt {
		keys[i] = c.Key
		fmt.Fprintf(out, "  - %s: %s\n", c.Key, c.Reason)
	}

	if !pruneYes && !confirm(cmd.InOrStdin(), out) {
		fmt.Fprintln(out, "Aborted - no changes made")
		return nil
	}

	removed, err := boards.RemoveKeys(cmd.Context(), client, keys)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted %d boards\n", removed)
	return nil
}

func confirm(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Delete these boards? (yes/no): ")
	line, _ := bufio.NewReader(in).ReadString('\n')
	return strings.TrimSpace(line) == "yes"
}
