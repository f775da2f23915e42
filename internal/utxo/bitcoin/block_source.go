package bitcoin

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/network"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-scripts/pkg/safe"
)

// BlockSource fetches blocks from a node and classifies their inputs.
type BlockSource struct {
	rpc        NodeClient
	resolver   OutputResolver
	converter  OutputConverter
	classifier InputClassifier
	network    network.Network
}

// NewBlockSource creates a BlockSource resolving prevouts through resolver first and the node second.
func NewBlockSource(rpc NodeClient, resolver OutputResolver, n network.Network) *BlockSource {
	return &BlockSource{
		rpc:        rpc,
		resolver:   resolver,
		converter:  NewOutputConverter(n),
		classifier: NewInputClassifier(n),
		network:    n,
	}
}

// LatestHeight returns the latest block height available from the node.
func (s *BlockSource) LatestHeight(_ context.Context) (uint64, error) {
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// FetchBlock retrieves the block at height with its outputs and classified inputs.
func (s *BlockSource) FetchBlock(ctx context.Context, height uint64) (*model.ScriptBlock, error) {
	if height > math.MaxInt64 {
		return nil, fmt.Errorf("block height %d exceeds rpc limit", height)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := s.rpc.GetBlockHash(int64(height))
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	src, err := s.rpc.GetBlockVerboseTx(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}

	block := &model.ScriptBlock{
		Coin:      model.BTC,
		Network:   s.network,
		Height:    height,
		Hash:      src.Hash,
		Timestamp: time.Unix(src.Time, 0).UTC(),
	}

	known := make(map[string][]model.TransactionOutputLookup, len(src.Tx))
	for _, tx := range src.Tx {
		outputs, err := s.converter.Convert(tx)
		if err != nil {
			return nil, err
		}
		known[tx.Txid] = outputs
		block.Outputs = append(block.Outputs, outputs...)
	}

	if err := s.resolvePrevOuts(ctx, src.Tx, known); err != nil {
		return nil, fmt.Errorf("resolve prev outputs for block %d: %w", height, err)
	}

	for _, tx := range src.Tx {
		for idx, vin := range tx.Vin {
			if vin.IsCoinBase() {
				continue
			}
			prevOut, ok := findOutput(known[vin.Txid], vin.Vout)
			if !ok {
				return nil, fmt.Errorf("tx %s input %d references missing output %s:%d", tx.Txid, idx, vin.Txid, vin.Vout)
			}
			input, err := s.classifier.Classify(tx, idx, prevOut)
			if err != nil {
				return nil, err
			}
			input.BlockHeight = block.Height
			input.BlockTime = block.Timestamp
			block.Inputs = append(block.Inputs, input)
		}
	}

	return block, nil
}

// resolvePrevOuts adds the outputs spent by txs to known, querying the resolver for
// transactions outside known and the node for whatever the resolver lacks.
func (s *BlockSource) resolvePrevOuts(ctx context.Context, txs []btcjson.TxRawResult, known map[string][]model.TransactionOutputLookup) error {
	missing := make([]string, 0)
	seen := make(map[string]struct{})
	for _, tx := range txs {
		for _, vin := range tx.Vin {
			if vin.IsCoinBase() {
				continue
			}
			if _, ok := known[vin.Txid]; ok {
				continue
			}
			if _, dup := seen[vin.Txid]; dup {
				continue
			}
			seen[vin.Txid] = struct{}{}
			missing = append(missing, vin.Txid)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	resolved, err := s.resolver.ResolveBatch(ctx, missing)
	if err != nil {
		return err
	}
	for _, txid := range missing {
		if outputs := resolved[txid]; len(outputs) > 0 {
			known[txid] = outputs
			continue
		}
		outputs, err := fetchOutputs(ctx, s.rpc, s.converter, txid)
		if err != nil {
			return err
		}
		known[txid] = outputs
	}
	return nil
}

func fetchOutputs(ctx context.Context, rpc NodeClient, converter OutputConverter, txid string) ([]model.TransactionOutputLookup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	txHash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, fmt.Errorf("parse txid %q: %w", txid, err)
	}
	tx, err := rpc.GetRawTransactionVerbose(txHash)
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", txid, err)
	}
	return converter.Convert(*tx)
}
