package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/btcjson"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/network"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-scripts/pkg/safe"
)

// OutputConverter turns RPC transaction outputs into lookup records.
type OutputConverter struct {
	decoder ScriptDecoder
	network network.Network
}

// NewOutputConverter constructs a converter for the given network.
func NewOutputConverter(n network.Network) OutputConverter {
	return OutputConverter{decoder: NewScriptDecoder(n), network: n}
}

// Convert maps every output of tx to a lookup record keeping its script.
func (c OutputConverter) Convert(tx btcjson.TxRawResult) ([]model.TransactionOutputLookup, error) {
	outputs := make([]model.TransactionOutputLookup, 0, len(tx.Vout))
	for idx, vout := range tx.Vout {
		if vout.Value < 0 {
			return nil, fmt.Errorf("tx %s output %d negative value: %f", tx.Txid, idx, vout.Value)
		}
		index, err := safe.Uint32(idx)
		if err != nil {
			return nil, fmt.Errorf("tx %s output index overflow: %w", tx.Txid, err)
		}
		value, err := BtcToSatoshis(vout.Value)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d safe value: %w", tx.Txid, idx, err)
		}
		addresses, err := c.decoder.Addresses(vout)
		if err != nil {
			return nil, fmt.Errorf("decode addresses for tx %s output %d: %w", tx.Txid, idx, err)
		}

		outputs = append(outputs, model.TransactionOutputLookup{
			Coin:      model.BTC,
			Network:   c.network,
			TxID:      tx.Txid,
			Index:     index,
			Value:     value,
			ScriptHex: vout.ScriptPubKey.Hex,
			Addresses: addresses,
		})
	}
	return outputs, nil
}

// findOutput returns the output with the given index.
func findOutput(outputs []model.TransactionOutputLookup, vout uint32) (model.TransactionOutputLookup, bool) {
	if int(vout) < len(outputs) && outputs[vout].Index == vout {
		return outputs[vout], true
	}
	for _, out := range outputs {
		if out.Index == vout {
			return out, true
		}
	}
	return model.TransactionOutputLookup{}, false
}
