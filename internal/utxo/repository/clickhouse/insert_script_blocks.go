package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-scripts/pkg/safe"
)

const insertScriptBlocksQuery = `INSERT INTO utxo_script_blocks (
	coin,
	network,
	height,
	hash,
	timestamp,
	output_count,
	input_count
) VALUES`

// InsertScriptBlocks marks blocks as fully classified. It must run after their outputs and inputs are stored.
func (r *Repository) InsertScriptBlocks(ctx context.Context, blocks []model.ScriptBlock) (err error) {
	if len(blocks) == 0 {
		return nil
	}
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_script_blocks", blocks[0].Coin, blocks[0].Network, err, start)
	}()

	err = sendBatch(ctx, r.conn, insertScriptBlocksQuery, len(blocks), func(b Batch, i int) error {
		block := blocks[i]
		outputCount, err := safe.Uint32(len(block.Outputs))
		if err != nil {
			return fmt.Errorf("block %d output count: %w", block.Height, err)
		}
		inputCount, err := safe.Uint32(len(block.Inputs))
		if err != nil {
			return fmt.Errorf("block %d input count: %w", block.Height, err)
		}
		return b.Append(
			string(block.Coin),
			block.Network.String(),
			block.Height,
			block.Hash,
			block.Timestamp,
			outputCount,
			inputCount,
		)
	})
	if err != nil {
		return fmt.Errorf("insert script blocks: %w", err)
	}
	return nil
}
