package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/network"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
)

const maxScriptBlockHeightQuery = `
SELECT
	toBool(count() > 0) AS found,
	coalesce(max(height), toUInt64(0)) AS max_height
FROM utxo_script_blocks
WHERE coin = ? AND network = ?`

// MaxScriptBlockHeight returns the highest classified block height. found is false when nothing is stored yet.
func (r *Repository) MaxScriptBlockHeight(ctx context.Context, coin model.Coin, net network.Network) (height uint64, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_script_block_height", coin, net, err, start)
	}()

	rows, err := r.conn.Query(ctx, maxScriptBlockHeightQuery, string(coin), net.String())
	if err != nil {
		return 0, false, fmt.Errorf("query max script block height: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		return 0, false, fmt.Errorf("max script block height not found")
	}
	if err = rows.Scan(&found, &height); err != nil {
		return 0, false, fmt.Errorf("scan max script block height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate max script block height: %w", err)
	}

	return height, found, nil
}
