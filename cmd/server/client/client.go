// Package client provides commands that call a running catan-odds server
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	oddsv1alpha1 "github.com/KirkDiggler/catan-odds/internal/api/oddsv1alpha1"
	"github.com/KirkDiggler/catan-odds/internal/errors"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running catan-odds server",
	Long:  `Client commands make real gRPC requests against a catan-odds server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(generateCmd)
	ClientCmd.AddCommand(oddsCmd)
	ClientCmd.AddCommand(rankCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createOddsClient creates an odds service client
func createOddsClient() (oddsv1alpha1.OddsServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return oddsv1alpha1.NewOddsServiceClient(conn), cleanup, nil
}

// describeError turns a gRPC status back into a readable error, keeping
// the reason and value metadata the server attached
func describeError(action string, err error) error {
	recovered := errors.FromGRPCError(err)
	meta := errors.GetMeta(recovered)
	if reason, ok := meta[errors.MetaReason]; ok {
		return fmt.Errorf("failed to %s: %s [%v %v]", action, errors.GetMessage(recovered), reason, meta[errors.MetaValue])
	}
	return fmt.Errorf("failed to %s: %w", action, recovered)
}
