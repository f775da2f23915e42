// Package model defines domain models for UTXO script classification.
package model

type Coin string

var (
	BTC Coin = "BTC"
)
