// Package ingester classifies the inputs of consecutive blocks and stores them in ClickHouse.
package ingester

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-scripts/pkg/workerpool"
)

type blockProcessor struct {
	workerCount int
	source      BlockSource
	metrics     ScriptIngesterMetrics
	logger      *zap.Logger
}

// Process fetches heights concurrently and returns the blocks in height order.
func (p *blockProcessor) Process(ctx context.Context, heights []uint64) ([]*model.ScriptBlock, error) {
	return workerpool.Map(ctx, p.workerCount, heights, p.processHeight)
}

func (p *blockProcessor) processHeight(ctx context.Context, height uint64) (block *model.ScriptBlock, err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveProcessHeight(err, height, started)
	}()

	block, err = p.source.FetchBlock(ctx, height)
	if err != nil {
		p.logger.Error("fetch block failed", zap.Uint64("height", height), zap.Error(err))
		return nil, fmt.Errorf("fetch block height %d: %w", height, err)
	}
	p.logger.Debug("block classified",
		zap.Uint64("height", height),
		zap.Int("outputs", len(block.Outputs)),
		zap.Int("inputs", len(block.Inputs)),
	)
	return block, nil
}
