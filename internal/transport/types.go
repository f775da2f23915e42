package transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// InputScriptsClassifier classifies the inputs of a transaction by id.
	InputScriptsClassifier interface {
		Classify(ctx context.Context, txid string) ([]model.InputScripts, error)
	}
)
