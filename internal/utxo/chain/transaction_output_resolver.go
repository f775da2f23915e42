// Package chain holds the chain-agnostic pieces shared by the classification components.
package chain

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/network"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Repository describes the output lookups the resolver needs.
type Repository interface {
	TransactionOutputsLookupByTxIDs(ctx context.Context, coin model.Coin, network network.Network, txids []string) (map[string][]model.TransactionOutputLookup, error)
}

// defaultBatchSize controls how many txids are fetched in one repository call.
const defaultBatchSize = 1000

// TransactionOutputResolver fetches previously indexed outputs in bounded batches.
type TransactionOutputResolver struct {
	repo      Repository
	coin      model.Coin
	network   network.Network
	batchSize int
}

// NewTransactionOutputResolver constructs a TransactionOutputResolver for a specific network.
func NewTransactionOutputResolver(repo Repository, coin model.Coin, n network.Network) *TransactionOutputResolver {
	return &TransactionOutputResolver{
		repo:      repo,
		coin:      coin,
		network:   n,
		batchSize: defaultBatchSize,
	}
}

// ResolveBatch returns outputs for many transactions. Every requested txid is present in the
// result; transactions unknown to the repository map to nil.
func (r *TransactionOutputResolver) ResolveBatch(ctx context.Context, txids []string) (map[string][]model.TransactionOutputLookup, error) {
	result := make(map[string][]model.TransactionOutputLookup, len(txids))

	unique := make([]string, 0, len(txids))
	for _, txid := range txids {
		if _, dup := result[txid]; dup {
			continue
		}
		result[txid] = nil
		unique = append(unique, txid)
	}

	size := r.batchSize
	if size <= 0 {
		size = defaultBatchSize
	}
	for start := 0; start < len(unique); start += size {
		end := min(start+size, len(unique))

		fromRepo, err := r.repo.TransactionOutputsLookupByTxIDs(ctx, r.coin, r.network, unique[start:end])
		if err != nil {
			return nil, fmt.Errorf("query outputs for txids: %w", err)
		}
		for _, txid := range unique[start:end] {
			result[txid] = fromRepo[txid]
		}
	}

	return result, nil
}
