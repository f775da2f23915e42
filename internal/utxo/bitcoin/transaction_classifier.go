package bitcoin

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/network"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
)

// TransactionClassifier classifies the inputs of a single transaction using node lookups only.
type TransactionClassifier struct {
	rpc        NodeClient
	converter  OutputConverter
	classifier InputClassifier
}

// NewTransactionClassifier creates a TransactionClassifier for the given network.
func NewTransactionClassifier(rpc NodeClient, n network.Network) *TransactionClassifier {
	return &TransactionClassifier{
		rpc:        rpc,
		converter:  NewOutputConverter(n),
		classifier: NewInputClassifier(n),
	}
}

// Classify returns the classification of every non-coinbase input of txid.
func (c *TransactionClassifier) Classify(ctx context.Context, txid string) ([]model.InputScripts, error) {
	txHash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, fmt.Errorf("parse txid %q: %w", txid, err)
	}
	tx, err := c.rpc.GetRawTransactionVerbose(txHash)
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", txid, err)
	}

	var blockTime time.Time
	if tx.Blocktime > 0 {
		blockTime = time.Unix(tx.Blocktime, 0).UTC()
	}

	prevOutputs := make(map[string][]model.TransactionOutputLookup)
	inputs := make([]model.InputScripts, 0, len(tx.Vin))
	for idx, vin := range tx.Vin {
		if vin.IsCoinBase() {
			continue
		}
		outputs, ok := prevOutputs[vin.Txid]
		if !ok {
			outputs, err = fetchOutputs(ctx, c.rpc, c.converter, vin.Txid)
			if err != nil {
				return nil, err
			}
			prevOutputs[vin.Txid] = outputs
		}
		prevOut, ok := findOutput(outputs, vin.Vout)
		if !ok {
			return nil, fmt.Errorf("tx %s input %d references missing output %s:%d", tx.Txid, idx, vin.Txid, vin.Vout)
		}
		input, err := c.classifier.Classify(*tx, idx, prevOut)
		if err != nil {
			return nil, err
		}
		input.BlockTime = blockTime
		inputs = append(inputs, input)
	}
	return inputs, nil
}
