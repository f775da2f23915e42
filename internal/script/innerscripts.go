// Package script recovers the redeem and witness scripts revealed by transaction inputs.
//
// Recovery is template matching over the spent output and the spending input. Recovered
// scripts are not checked against the hash committed to by the output, so callers must not
// treat them as verified.
package script

import (
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// Script is a serialized script. A nil Script is absent; a non-nil empty Script is present.
type Script []byte

// InnerScripts holds the scripts an input revealed to satisfy the output it spends.
type InnerScripts struct {
	RedeemScript  Script
	WitnessScript Script
}

// SpendType names the wrapping pattern of a spent output.
type SpendType string

const (
	SpendDirect    SpendType = "direct"
	SpendP2SH      SpendType = "p2sh"
	SpendP2WSH     SpendType = "p2wsh"
	SpendP2SHP2WSH SpendType = "p2sh-p2wsh"
)

const scriptVersion0 = 0

// Classification extends InnerScripts with the detected spend type.
// Incomplete is set when the output template promised an inner script that was not recovered.
type Classification struct {
	InnerScripts
	SpendType  SpendType
	Incomplete bool
}

// GetInnerScripts returns the redeem script of a P2SH spend and the witness script of a
// P2WSH or P2SH-P2WSH spend. Malformed or mismatching data yields absent fields.
func GetInnerScripts(txIn *wire.TxIn, prevOut *wire.TxOut) InnerScripts {
	if txIn == nil || prevOut == nil {
		return InnerScripts{}
	}

	var scripts InnerScripts
	if txscript.IsPayToScriptHash(prevOut.PkScript) {
		scripts.RedeemScript = lastPush(txIn.SignatureScript)
	}

	if txscript.IsPayToWitnessScriptHash(prevOut.PkScript) ||
		(scripts.RedeemScript != nil && txscript.IsPayToWitnessScriptHash(scripts.RedeemScript)) {
		scripts.WitnessScript = lastWitnessItem(txIn.Witness)
	}

	return scripts
}

// Classify runs GetInnerScripts and reports which spending pattern the output uses.
func Classify(txIn *wire.TxIn, prevOut *wire.TxOut) Classification {
	c := Classification{
		InnerScripts: GetInnerScripts(txIn, prevOut),
		SpendType:    SpendDirect,
	}
	if prevOut == nil {
		return c
	}

	switch {
	case txscript.IsPayToScriptHash(prevOut.PkScript):
		c.SpendType = SpendP2SH
		if c.RedeemScript == nil {
			c.Incomplete = true
			break
		}
		if txscript.IsPayToWitnessScriptHash(c.RedeemScript) {
			c.SpendType = SpendP2SHP2WSH
			c.Incomplete = c.WitnessScript == nil
		}
	case txscript.IsPayToWitnessScriptHash(prevOut.PkScript):
		c.SpendType = SpendP2WSH
		c.Incomplete = c.WitnessScript == nil
	}
	return c
}

// lastPush returns the payload of the final instruction when it is a data push.
func lastPush(sigScript []byte) Script {
	var (
		last   Script
		isPush bool
	)
	tokenizer := txscript.MakeScriptTokenizer(scriptVersion0, sigScript)
	for tokenizer.Next() {
		isPush = tokenizer.Opcode() <= txscript.OP_PUSHDATA4
		if isPush {
			last = append(Script{}, tokenizer.Data()...)
		}
	}
	if tokenizer.Err() != nil || !isPush {
		return nil
	}
	return last
}

func lastWitnessItem(witness wire.TxWitness) Script {
	if len(witness) == 0 {
		return nil
	}
	return append(Script{}, witness[len(witness)-1]...)
}
