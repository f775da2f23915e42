package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/network"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
)

const transactionOutputsLookupByTxIDsQuery = `
SELECT
	txid,
	output_index,
	anyLast(value) AS value,
	anyLast(script_hex) AS script_hex,
	anyLast(addresses) AS addresses
FROM utxo_transaction_outputs_lookup
WHERE coin = ? AND network = ? AND txid IN ?
GROUP BY
	txid,
	output_index
ORDER BY output_index ASC
SETTINGS max_threads = 1`

// TransactionOutputsLookupByTxIDs returns the stored outputs of txids keyed by transaction id.
func (r *Repository) TransactionOutputsLookupByTxIDs(ctx context.Context, coin model.Coin, net network.Network, txids []string) (result map[string][]model.TransactionOutputLookup, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transaction_outputs_lookup_by_txids", coin, net, err, start)
	}()

	result = make(map[string][]model.TransactionOutputLookup, len(txids))
	if len(txids) == 0 {
		return result, nil
	}

	rows, err := r.conn.Query(ctx, transactionOutputsLookupByTxIDsQuery, string(coin), net.String(), txids)
	if err != nil {
		return nil, fmt.Errorf("query transaction outputs by txids: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var (
			txid   string
			output model.TransactionOutputLookup
		)
		if err = rows.Scan(
			&txid,
			&output.Index,
			&output.Value,
			&output.ScriptHex,
			&output.Addresses,
		); err != nil {
			return nil, fmt.Errorf("scan transaction output: %w", err)
		}

		output.Coin = coin
		output.Network = net
		output.TxID = txid

		result[txid] = append(result[txid], output)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction outputs: %w", err)
	}

	return result, nil
}
