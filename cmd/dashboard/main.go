package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/broadcast"
	"github.com/goodnatureofminers/arogya-ledger-backend/internal/ledger"
	"github.com/goodnatureofminers/arogya-ledger-backend/internal/metrics"
	"github.com/goodnatureofminers/arogya-ledger-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/arogya-ledger-backend/internal/seed"
	"github.com/goodnatureofminers/arogya-ledger-backend/internal/service/activity"
	"github.com/goodnatureofminers/arogya-ledger-backend/internal/service/archive"
	"github.com/goodnatureofminers/arogya-ledger-backend/internal/transport"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("dashboard failed", zap.Error(err))
	}
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	records, err := seed.Load(cfg.RecordsFile, logger.Named("seed"))
	if err != nil {
		return fmt.Errorf("load seed records: %w", err)
	}

	l, err := ledger.New(cfg.Seed.stats(), nil, metrics.NewLedger(), logger.Named("ledger"))
	if err != nil {
		return fmt.Errorf("init ledger: %w", err)
	}

	b, err := broadcast.New(l, cfg.SubscriberBuffer, metrics.NewBroadcaster(), logger.Named("broadcaster"))
	if err != nil {
		return fmt.Errorf("init broadcaster: %w", err)
	}
	l.AddPublisher(b)

	var audit transport.AuditTrail
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error("close repository", zap.Error(err))
			}
		}()
		if err := repo.Ping(ctx); err != nil {
			return err
		}

		writer, err := archive.NewWriter(repo, metrics.NewArchiveWriter(), cfg.ArchiveFlushSize, cfg.ArchiveFlushEvery, logger)
		if err != nil {
			return fmt.Errorf("init archive writer: %w", err)
		}
		// The writer outlives ctx so the final flush is not canceled.
		writer.Start(context.WithoutCancel(ctx))
		defer writer.Stop()
		l.AddPublisher(writer)
		audit = repo
		logger.Info("transaction archive enabled")
	}

	generator, err := activity.NewGeneratorService(
		l,
		metrics.NewActivityGenerator(),
		cfg.ActivityInterval,
		cfg.ActivityProbability,
		logger.Named("activity_generator"),
	)
	if err != nil {
		return fmt.Errorf("init activity generator: %w", err)
	}
	go func() {
		if err := generator.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("activity generator stopped", zap.Error(err))
		}
	}()

	if err := startGRPCServer(ctx, cfg.GRPCAddr, logger); err != nil {
		return err
	}

	handler, err := transport.NewHandler(l, b, records, audit, logger)
	if err != nil {
		return fmt.Errorf("init http handler: %w", err)
	}
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	addr := listenAddr(cfg.Addr)
	s := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
		// Event streams end with ctx.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		b.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

func startGRPCServer(ctx context.Context, addr string, logger *zap.Logger) error {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	streamChain := []grpc.StreamServerInterceptor{
		grpcRecovery.StreamServerInterceptor(),
		grpcCtxTags.StreamServerInterceptor(),
		grpcPrometheus.StreamServerInterceptor,
		grpcZap.StreamServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
		grpc.StreamInterceptor(grpcMiddleware.ChainStreamServer(streamChain...)),
	)

	health := transport.NewHealthServer()
	healthpb.RegisterHealthServer(grpcServer, health)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen grpc %s: %w", addr, err)
	}
	go func() {
		logger.Info("Starting gRPC server", zap.String("addr", addr))
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("gRPC server stopped", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		health.Shutdown()
		grpcServer.GracefulStop()
	}()
	return nil
}
