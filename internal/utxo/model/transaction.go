package model

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/network"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/script"
)

// TransactionOutputLookup is the part of an output needed to classify the inputs spending it.
type TransactionOutputLookup struct {
	Coin      Coin
	Network   network.Network
	TxID      string
	Index     uint32
	Value     uint64
	ScriptHex string
	Addresses []string
}

// InputScripts is the classification of a single non-coinbase input.
type InputScripts struct {
	Coin             Coin
	Network          network.Network
	BlockHeight      uint64
	BlockTime        time.Time
	TxID             string
	Index            uint32
	PrevTxID         string
	PrevVout         uint32
	SpendType        script.SpendType
	Incomplete       bool
	HasRedeemScript  bool
	RedeemScriptHex  string
	RedeemScriptAsm  string
	HasWitnessScript bool
	WitnessScriptHex string
	WitnessScriptAsm string
	PrevAddress      string
}

// ScriptBlock groups the outputs and classified inputs of one block.
type ScriptBlock struct {
	Coin      Coin
	Network   network.Network
	Height    uint64
	Hash      string
	Timestamp time.Time
	Outputs   []TransactionOutputLookup
	Inputs    []InputScripts
}
