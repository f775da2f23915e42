package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
)

const insertTransactionOutputsLookupQuery = `INSERT INTO utxo_transaction_outputs_lookup (
	coin,
	network,
	txid,
	output_index,
	value,
	script_hex,
	addresses
) VALUES`

// InsertTransactionOutputsLookup stores outputs so later blocks can resolve the scripts they spend.
func (r *Repository) InsertTransactionOutputsLookup(ctx context.Context, outputs []model.TransactionOutputLookup) (err error) {
	if len(outputs) == 0 {
		return nil
	}
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_transaction_outputs_lookup", outputs[0].Coin, outputs[0].Network, err, start)
	}()

	err = sendBatch(ctx, r.conn, insertTransactionOutputsLookupQuery, len(outputs), func(b Batch, i int) error {
		output := outputs[i]
		return b.Append(
			string(output.Coin),
			output.Network.String(),
			output.TxID,
			output.Index,
			output.Value,
			output.ScriptHex,
			output.Addresses,
		)
	})
	if err != nil {
		return fmt.Errorf("insert transaction outputs lookup: %w", err)
	}
	return nil
}
