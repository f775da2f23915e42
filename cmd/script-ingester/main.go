package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/network"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/service/ingester"
)

type config struct {
	ClickhouseDSN string          `long:"clickhouse-dsn" env:"SCRIPT_INGESTER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Network       network.Network `long:"network" env:"SCRIPT_INGESTER_NETWORK" description:"network name (mainnet, testnet, regtest, signet)" required:"true"`
	RPCURL        string          `long:"rpc-url" env:"SCRIPT_INGESTER_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string          `long:"rpc-user" env:"SCRIPT_INGESTER_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword   string          `long:"rpc-password" env:"SCRIPT_INGESTER_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCRPS        int             `long:"rpc-rps" env:"SCRIPT_INGESTER_RPC_RPS" description:"max RPC requests per second, 0 disables the limit" default:"0"`
	StartHeight   uint64          `long:"start-height" env:"SCRIPT_INGESTER_START_HEIGHT" description:"first block height to classify" default:"0"`
	BatchSize     uint64          `long:"batch-size" env:"SCRIPT_INGESTER_BATCH_SIZE" description:"blocks per batch" default:"100"`
	Workers       int             `long:"workers" env:"SCRIPT_INGESTER_WORKERS" description:"parallel block fetchers" default:"20"`
	MetricsAddr   string          `long:"metrics-addr" env:"SCRIPT_INGESTER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("script ingester failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()
	if err := repo.Ping(ctx); err != nil {
		return fmt.Errorf("ping clickhouse: %w", err)
	}

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()

	rpc := bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(model.BTC, cfg.Network), cfg.RPCRPS)
	resolver := chain.NewTransactionOutputResolver(repo, model.BTC, cfg.Network)
	source := bitcoin.NewBlockSource(rpc, resolver, cfg.Network)

	svc, err := ingester.NewScriptIngesterService(
		repo,
		source,
		metrics.NewScriptIngester(model.BTC, cfg.Network),
		model.BTC,
		cfg.Network,
		ingester.Config{
			StartHeight: cfg.StartHeight,
			BatchSize:   cfg.BatchSize,
			WorkerCount: cfg.Workers,
		},
		logger,
	)
	if err != nil {
		return err
	}
	logger.Info("starting script ingester",
		zap.Stringer("network", cfg.Network),
		zap.Uint64("start_height", cfg.StartHeight),
	)
	return svc.Run(ctx)
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("rpc url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   parsed.Scheme == "http",
	}, nil)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown", zap.Error(err))
		}
	}()
}
