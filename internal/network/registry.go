package network

import (
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Registry caches per-network data that is derived on first use.
// The zero value is ready to use and safe for concurrent access.
type Registry struct {
	genesis [networkCount]genesisEntry
}

type genesisEntry struct {
	once sync.Once
	hash chainhash.Hash
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// GenesisHash returns the hash of the network's genesis block, computing it once per registry.
func (r *Registry) GenesisHash(n Network) chainhash.Hash {
	params := n.Params()
	entry := &r.genesis[n]
	entry.once.Do(func() {
		entry.hash = params.GenesisBlock.BlockHash()
	})
	return entry.hash
}
