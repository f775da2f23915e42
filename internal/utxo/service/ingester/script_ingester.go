package ingester

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/network"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
)

// Config tunes the ingestion loop. Zero values fall back to defaults.
type Config struct {
	StartHeight uint64
	BatchSize   uint64
	WorkerCount int
}

// ScriptIngesterService classifies block inputs in height order and stores them.
type ScriptIngesterService struct {
	logger                 *zap.Logger
	metrics                ScriptIngesterMetrics
	sleep                  func(context.Context, time.Duration) error
	backoff                *clock.Backoff
	idleSleepDuration      time.Duration
	postBatchSleepDuration time.Duration
	heightFetcher          HeightFetcher
	blockProcessor         BlockProcessor
	blockWriter            BlockWriter
}

// NewScriptIngesterService builds a ScriptIngesterService with the given dependencies.
func NewScriptIngesterService(
	repo ClickhouseRepository,
	source BlockSource,
	metrics ScriptIngesterMetrics,
	coin model.Coin,
	net network.Network,
	cfg Config,
	logger *zap.Logger,
) (*ScriptIngesterService, error) {
	if metrics == nil {
		return nil, errors.New("script ingester metrics is required")
	}
	if repo == nil || source == nil {
		return nil, errors.New("script ingester repository and block source are required")
	}
	logger = logger.With(
		zap.String("coin", string(coin)),
		zap.Stringer("network", net),
	)

	batchSize := cfg.BatchSize
	if batchSize == 0 {
		batchSize = defaultBatchSize
	}
	workerCount := cfg.WorkerCount
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}

	return &ScriptIngesterService{
		logger:                 logger,
		metrics:                metrics,
		sleep:                  clock.SleepWithContext,
		backoff:                clock.NewBackoff(backoffInitial, backoffMax),
		idleSleepDuration:      idleSleepDuration,
		postBatchSleepDuration: postBatchSleepDuration,
		heightFetcher: &heightFetcher{
			repository:  repo,
			source:      source,
			coin:        coin,
			network:     net,
			startHeight: cfg.StartHeight,
			limit:       batchSize,
		},
		blockProcessor: &blockProcessor{
			workerCount: workerCount,
			source:      source,
			metrics:     metrics,
			logger:      logger.Named("blockProcessor"),
		},
		blockWriter: &blockWriter{
			repo:    repo,
			metrics: metrics,
			logger:  logger.Named("blockWriter"),
		},
	}, nil
}

// Run starts the ingestion loop until the context is canceled.
func (s *ScriptIngesterService) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			delay := s.backoff.Next()
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", delay))
			if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		s.backoff.Reset()
	}
}

func (s *ScriptIngesterService) run(ctx context.Context) error {
	started := time.Now()
	heights, err := s.heightFetcher.Fetch(ctx)
	s.metrics.ObserveFetchHeights(err, started)
	if err != nil {
		s.logger.Error("fetch heights failed", zap.Error(err))
		return err
	}

	if len(heights) == 0 {
		s.logger.Debug("caught up with node tip; sleeping", zap.Duration("sleep", s.idleSleepDuration))
		return s.sleep(ctx, s.idleSleepDuration)
	}

	s.logger.Info("processing batch",
		zap.Uint64("from", heights[0]),
		zap.Uint64("to", heights[len(heights)-1]),
	)
	started = time.Now()
	blocks, err := s.blockProcessor.Process(ctx, heights)
	if err != nil {
		s.metrics.ObserveProcessBatch(err, len(heights), started)
		s.logger.Error("process batch failed", zap.Int("heights", len(heights)), zap.Error(err))
		return err
	}
	if err = s.blockWriter.WriteBlocks(ctx, blocks); err != nil {
		s.metrics.ObserveProcessBatch(err, len(heights), started)
		s.logger.Error("write batch failed", zap.Int("heights", len(heights)), zap.Error(err))
		return err
	}
	s.metrics.ObserveProcessBatch(nil, len(heights), started)

	return s.sleep(ctx, s.postBatchSleepDuration)
}
