package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
)

const insertInputScriptsQuery = `INSERT INTO utxo_input_scripts (
	coin,
	network,
	block_height,
	block_timestamp,
	txid,
	input_index,
	prev_txid,
	prev_vout,
	spend_type,
	incomplete,
	has_redeem_script,
	redeem_script_hex,
	redeem_script_asm,
	has_witness_script,
	witness_script_hex,
	witness_script_asm,
	prev_address
) VALUES`

// InsertInputScripts stores classified inputs.
func (r *Repository) InsertInputScripts(ctx context.Context, inputs []model.InputScripts) (err error) {
	if len(inputs) == 0 {
		return nil
	}
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_input_scripts", inputs[0].Coin, inputs[0].Network, err, start)
	}()

	err = sendBatch(ctx, r.conn, insertInputScriptsQuery, len(inputs), func(b Batch, i int) error {
		in := inputs[i]
		return b.Append(
			string(in.Coin),
			in.Network.String(),
			in.BlockHeight,
			in.BlockTime,
			in.TxID,
			in.Index,
			in.PrevTxID,
			in.PrevVout,
			string(in.SpendType),
			in.Incomplete,
			in.HasRedeemScript,
			in.RedeemScriptHex,
			in.RedeemScriptAsm,
			in.HasWitnessScript,
			in.WitnessScriptHex,
			in.WitnessScriptAsm,
			in.PrevAddress,
		)
	})
	if err != nil {
		return fmt.Errorf("insert input scripts: %w", err)
	}
	return nil
}
