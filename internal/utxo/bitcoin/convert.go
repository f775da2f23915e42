// Package bitcoin implements Bitcoin-specific script classification on top of node RPC data.
package bitcoin

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-scripts/pkg/safe"
)

// BtcToSatoshis converts BTC amount to satoshis with overflow checks.
func BtcToSatoshis(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return safe.Uint64(int64(amt))
}

// TxInFromVin rebuilds the script-bearing parts of a wire input from its RPC form.
func TxInFromVin(vin btcjson.Vin) (*wire.TxIn, error) {
	txIn := &wire.TxIn{Sequence: vin.Sequence}
	if vin.ScriptSig != nil && vin.ScriptSig.Hex != "" {
		sigScript, err := hex.DecodeString(vin.ScriptSig.Hex)
		if err != nil {
			return nil, fmt.Errorf("decode script sig: %w", err)
		}
		txIn.SignatureScript = sigScript
	}
	if len(vin.Witness) > 0 {
		txIn.Witness = make(wire.TxWitness, 0, len(vin.Witness))
		for i, item := range vin.Witness {
			decoded, err := hex.DecodeString(item)
			if err != nil {
				return nil, fmt.Errorf("decode witness item %d: %w", i, err)
			}
			txIn.Witness = append(txIn.Witness, decoded)
		}
	}
	return txIn, nil
}

// TxOutFromScriptHex rebuilds a wire output from a hex encoded script.
func TxOutFromScriptHex(scriptHex string, value uint64) (*wire.TxOut, error) {
	pkScript, err := hex.DecodeString(scriptHex)
	if err != nil {
		return nil, fmt.Errorf("decode pk script: %w", err)
	}
	amount, err := safe.Int64(value)
	if err != nil {
		return nil, fmt.Errorf("output value: %w", err)
	}
	return wire.NewTxOut(amount, pkScript), nil
}
