package ingester

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/network"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
)

// heightFetcher returns the contiguous heights following the last classified block, up to the node tip.
type heightFetcher struct {
	repository  ClickhouseRepository
	source      BlockSource
	coin        model.Coin
	network     network.Network
	startHeight uint64
	limit       uint64
}

func (f *heightFetcher) Fetch(ctx context.Context) ([]uint64, error) {
	maxHeight, found, err := f.repository.MaxScriptBlockHeight(ctx, f.coin, f.network)
	if err != nil {
		return nil, fmt.Errorf("max script block height: %w", err)
	}
	next := f.startHeight
	if found && maxHeight+1 > next {
		next = maxHeight + 1
	}

	tip, err := f.source.LatestHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest height: %w", err)
	}
	if next > tip {
		return nil, nil
	}

	limit := max(f.limit, 1)
	last := tip
	if tip-next >= limit {
		last = next + limit - 1
	}

	heights := make([]uint64, 0, last-next+1)
	for h := next; h <= last; h++ {
		heights = append(heights, h)
	}
	return heights, nil
}
