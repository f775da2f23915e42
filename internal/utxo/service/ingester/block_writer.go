package ingester

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-scripts/pkg/batcher"
)

// blockWriter persists blocks so that a stored block marker implies its outputs and inputs are stored.
type blockWriter struct {
	repo    ClickhouseRepository
	metrics ScriptIngesterMetrics
	logger  *zap.Logger
}

func (w *blockWriter) WriteBlocks(ctx context.Context, blocks []*model.ScriptBlock) error {
	if len(blocks) == 0 {
		return nil
	}

	outputs := batcher.New(w.logger, w.repo.InsertTransactionOutputsLookup, outputFlushThreshold)
	inputs := batcher.New(w.logger, w.repo.InsertInputScripts, inputFlushThreshold)
	for _, block := range blocks {
		if err := outputs.Add(ctx, block.Outputs...); err != nil {
			return fmt.Errorf("insert outputs lookup up to height %d: %w", block.Height, err)
		}
	}
	if err := outputs.Flush(ctx); err != nil {
		return fmt.Errorf("insert outputs lookup: %w", err)
	}
	for _, block := range blocks {
		if err := inputs.Add(ctx, block.Inputs...); err != nil {
			return fmt.Errorf("insert input scripts up to height %d: %w", block.Height, err)
		}
	}
	if err := inputs.Flush(ctx); err != nil {
		return fmt.Errorf("insert input scripts: %w", err)
	}

	markers := make([]model.ScriptBlock, 0, len(blocks))
	for _, block := range blocks {
		markers = append(markers, *block)
	}
	if err := w.repo.InsertScriptBlocks(ctx, markers); err != nil {
		return fmt.Errorf("insert script blocks: %w", err)
	}

	for _, block := range blocks {
		w.metrics.ObserveWrittenBlock(block)
	}
	w.logger.Info("blocks stored",
		zap.Uint64("from", blocks[0].Height),
		zap.Uint64("to", blocks[len(blocks)-1].Height),
	)
	return nil
}
