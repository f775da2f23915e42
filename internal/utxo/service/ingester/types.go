package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/network"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HeightFetcher interface {
		Fetch(ctx context.Context) ([]uint64, error)
	}
	BlockProcessor interface {
		Process(ctx context.Context, heights []uint64) ([]*model.ScriptBlock, error)
	}
	BlockWriter interface {
		WriteBlocks(ctx context.Context, blocks []*model.ScriptBlock) error
	}
	ScriptIngesterMetrics interface {
		ObserveFetchHeights(err error, started time.Time)
		ObserveProcessBatch(err error, heights int, started time.Time)
		ObserveProcessHeight(err error, height uint64, started time.Time)
		ObserveWrittenBlock(block *model.ScriptBlock)
	}
	BlockSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) (*model.ScriptBlock, error)
	}
	ClickhouseRepository interface {
		MaxScriptBlockHeight(ctx context.Context, coin model.Coin, network network.Network) (uint64, bool, error)
		InsertTransactionOutputsLookup(ctx context.Context, outputs []model.TransactionOutputLookup) error
		InsertInputScripts(ctx context.Context, inputs []model.InputScripts) error
		InsertScriptBlocks(ctx context.Context, blocks []model.ScriptBlock) error
	}
)
