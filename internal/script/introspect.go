package script

import (
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/txscript"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/network"
)

// ToAsm renders the script as space separated opcode mnemonics and hex data pushes.
// Parsing stops at the first malformed instruction, which is rendered as "[error]".
func ToAsm(s Script) string {
	asm, _ := txscript.DisasmString(s)
	return asm
}

// ToAddress encodes the script as an address of the given network. Scripts that pay to a
// single standard address (P2PKH, P2SH, P2WPKH, P2WSH, P2TR) or to a witness program of
// version 1 to 16 have one.
func ToAddress(s Script, n network.Network) (string, bool) {
	class, addrs, _, err := txscript.ExtractPkScriptAddrs(s, n.Params())
	if err != nil {
		return "", false
	}
	if len(addrs) != 1 {
		return witnessAddress(s, n)
	}
	switch class {
	case txscript.PubKeyHashTy,
		txscript.ScriptHashTy,
		txscript.WitnessV0PubKeyHashTy,
		txscript.WitnessV0ScriptHashTy,
		txscript.WitnessV1TaprootTy:
		return addrs[0].EncodeAddress(), true
	default:
		return witnessAddress(s, n)
	}
}

// witnessAddress encodes witness programs of version 1 and above as bech32m.
// Version 0 programs only have the P2WPKH and P2WSH forms handled by btcutil.
func witnessAddress(s Script, n network.Network) (string, bool) {
	if !txscript.IsWitnessProgram(s) {
		return "", false
	}
	version, program, err := txscript.ExtractWitnessProgramInfo(s)
	if err != nil || version < 1 {
		return "", false
	}
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", false
	}
	addr, err := bech32.EncodeM(n.Params().Bech32HRPSegwit, append([]byte{byte(version)}, converted...))
	if err != nil {
		return "", false
	}
	return addr, true
}
