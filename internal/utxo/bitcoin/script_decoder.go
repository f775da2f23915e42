package bitcoin

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcjson"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/network"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/script"
)

// ScriptDecoder extracts human-readable addresses from ScriptPubKey results.
type ScriptDecoder struct {
	network network.Network
}

// NewScriptDecoder initializes a decoder encoding addresses for the provided network.
func NewScriptDecoder(n network.Network) ScriptDecoder {
	return ScriptDecoder{network: n}
}

// Addresses encodes the output script locally and falls back to the addresses reported by the node.
func (d ScriptDecoder) Addresses(vout btcjson.Vout) ([]string, error) {
	if vout.ScriptPubKey.Hex != "" {
		pkScript, err := hex.DecodeString(vout.ScriptPubKey.Hex)
		if err != nil {
			return nil, err
		}
		if addr, ok := script.ToAddress(pkScript, d.network); ok {
			return []string{addr}, nil
		}
	}
	if len(vout.ScriptPubKey.Addresses) > 0 {
		return append([]string(nil), vout.ScriptPubKey.Addresses...), nil
	}
	if vout.ScriptPubKey.Address != "" {
		return []string{vout.ScriptPubKey.Address}, nil
	}
	return nil, nil
}
