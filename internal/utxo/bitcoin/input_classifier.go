package bitcoin

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/network"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/script"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-scripts/pkg/safe"
)

// InputClassifier recovers the inner scripts of RPC inputs.
type InputClassifier struct {
	network network.Network
}

// NewInputClassifier constructs a classifier for the given network.
func NewInputClassifier(n network.Network) InputClassifier {
	return InputClassifier{network: n}
}

// Classify classifies input idx of tx spending prevOut. Errors are reserved for undecodable
// hex; scripts that do not match a template produce an empty classification.
func (c InputClassifier) Classify(tx btcjson.TxRawResult, idx int, prevOut model.TransactionOutputLookup) (model.InputScripts, error) {
	if idx < 0 || idx >= len(tx.Vin) {
		return model.InputScripts{}, fmt.Errorf("tx %s has no input %d", tx.Txid, idx)
	}
	vin := tx.Vin[idx]
	index, err := safe.Uint32(idx)
	if err != nil {
		return model.InputScripts{}, fmt.Errorf("tx %s input index overflow: %w", tx.Txid, err)
	}

	txIn, err := TxInFromVin(vin)
	if err != nil {
		return model.InputScripts{}, fmt.Errorf("tx %s input %d: %w", tx.Txid, idx, err)
	}
	txOut, err := TxOutFromScriptHex(prevOut.ScriptHex, prevOut.Value)
	if err != nil {
		return model.InputScripts{}, fmt.Errorf("tx %s input %d prevout %s:%d: %w", tx.Txid, idx, vin.Txid, vin.Vout, err)
	}

	classification := script.Classify(txIn, txOut)
	result := model.InputScripts{
		Coin:       model.BTC,
		Network:    c.network,
		TxID:       tx.Txid,
		Index:      index,
		PrevTxID:   vin.Txid,
		PrevVout:   vin.Vout,
		SpendType:  classification.SpendType,
		Incomplete: classification.Incomplete,
	}
	if rs := classification.RedeemScript; rs != nil {
		result.HasRedeemScript = true
		result.RedeemScriptHex = hex.EncodeToString(rs)
		result.RedeemScriptAsm = script.ToAsm(rs)
	}
	if ws := classification.WitnessScript; ws != nil {
		result.HasWitnessScript = true
		result.WitnessScriptHex = hex.EncodeToString(ws)
		result.WitnessScriptAsm = script.ToAsm(ws)
	}
	if len(prevOut.Addresses) > 0 {
		result.PrevAddress = prevOut.Addresses[0]
	}
	return result, nil
}
