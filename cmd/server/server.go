package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	oddsv1alpha1 "github.com/KirkDiggler/catan-odds/internal/api/oddsv1alpha1"
	"github.com/KirkDiggler/catan-odds/internal/config"
	"github.com/KirkDiggler/catan-odds/internal/errors"
	"github.com/KirkDiggler/catan-odds/internal/handlers/odds/v1alpha1"
	"github.com/KirkDiggler/catan-odds/internal/orchestrators/odds"
	"github.com/KirkDiggler/catan-odds/internal/pkg/clock"
	"github.com/KirkDiggler/catan-odds/internal/pkg/idgen"
	"github.com/KirkDiggler/catan-odds/internal/redis"
	"github.com/KirkDiggler/catan-odds/internal/repositories/boards"
)

var (
	grpcPort   int
	redisAddrs []string
	boardTTL   time.Duration
	portMode   string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the catan-odds gRPC server. Settings come from CATAN_ODDS_* environment
variables; flags given on the command line win.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringSliceVar(&redisAddrs, "redis-addr", nil, "Redis address(es); empty keeps boards in memory")
	serverCmd.Flags().DurationVar(&boardTTL, "board-ttl", 24*time.Hour, "How long stored boards live")
	serverCmd.Flags().StringVar(&portMode, "port-mode", "standard", "How resource ports apply: standard or legacy")
}

// loadServerConfig reads the environment, then applies flags the user set
func loadServerConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = grpcPort
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddrs = redisAddrs
	}
	if flags.Changed("board-ttl") {
		cfg.BoardTTL = boardTTL
	}
	if flags.Changed("port-mode") {
		cfg.PortMode = portMode
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadServerConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping")
		cancel()
	}()

	boardRepo, closeRepo, err := newBoardRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	oddsService, err := odds.NewOrchestrator(&odds.Config{
		BoardRepo:   boardRepo,
		IDGenerator: idgen.NewUUID("board"),
		PortMode:    cfg.Mode(),
		BoardTTL:    cfg.BoardTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create odds orchestrator: %w", err)
	}

	srv, err := newGRPCServer(oddsService, logger)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting",
			"port", cfg.Port,
			"port_mode", cfg.Mode().String(),
			"redis_addrs", cfg.RedisAddrs,
		)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// newGRPCServer wires the odds handler, health and reflection into a server
// with logging and panic recovery
func newGRPCServer(oddsService odds.Service, logger *slog.Logger) (*grpc.Server, error) {
	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		OddsService: oddsService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create odds handler: %w", err)
	}

	logFunc := interceptorLogger(logger)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logFunc),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic)),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logFunc),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic)),
		),
	)

	oddsv1alpha1.RegisterOddsServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(oddsv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, nil
}

// newBoardRepository picks in-memory, single-node or cluster storage from
// the configured Redis addresses
func newBoardRepository(ctx context.Context, cfg *config.Config) (boards.Repository, func(), error) {
	if len(cfg.RedisAddrs) == 0 {
		slog.Warn("No Redis configured, boards are kept in memory")
		return boards.NewInMemory(clock.New()), func() {}, nil
	}

	client, err := newRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	repo, err := boards.NewRedisRepository(&boards.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create board repository: %w", err)
	}

	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}
	return repo, cleanup, nil
}

// newRedisClient connects to one node or a cluster and checks it answers
func newRedisClient(ctx context.Context, cfg *config.Config) (redis.Client, error) {
	opts := &redis.Options{
		Password: cfg.RedisPassword,
		UseTLS:   cfg.RedisTLS,
	}

	var (
		client redis.Client
		err    error
	)
	if len(cfg.RedisAddrs) == 1 {
		client, err = redis.NewClient(cfg.RedisAddrs[0], opts)
	} else {
		client, err = redis.NewClusterClient(cfg.RedisAddrs, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis at %v: %w", cfg.RedisAddrs, err)
	}
	return client, nil
}

// interceptorLogger adapts slog to the middleware logger
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(level), msg, fields...)
	})
}

func recoverPanic(p any) error {
	slog.Error("Recovered from panic in handler", "panic", p)
	return errors.ToGRPCError(errors.Internal("internal error"))
}
