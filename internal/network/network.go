// Package network maps the supported Bitcoin networks to their chain parameters.
package network

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

// ErrUnsupportedNetwork is returned for names or parameters outside the supported set.
var ErrUnsupportedNetwork = errors.New("unsupported network")

// Network identifies one of the supported Bitcoin networks.
type Network uint8

const (
	MainNet Network = iota
	TestNet
	RegTest
	SigNet
)

type definition struct {
	name   string
	params *chaincfg.Params
}

// definitions is indexed by Network and fixes the canonical name order.
var definitions = [...]definition{
	MainNet: {name: "mainnet", params: &chaincfg.MainNetParams},
	TestNet: {name: "testnet", params: &chaincfg.TestNet3Params},
	RegTest: {name: "regtest", params: &chaincfg.RegressionNetParams},
	SigNet:  {name: "signet", params: &chaincfg.SigNetParams},
}

const networkCount = len(definitions)

// All returns every supported network in canonical order.
func All() []Network {
	all := make([]Network, 0, networkCount)
	for i := range definitions {
		all = append(all, Network(i))
	}
	return all
}

// Names returns the canonical network names: mainnet, testnet, regtest, signet.
func Names() []string {
	names := make([]string, 0, networkCount)
	for _, def := range definitions {
		names = append(names, def.name)
	}
	return names
}

// FromName resolves a canonical network name.
func FromName(name string) (Network, error) {
	for i, def := range definitions {
		if def.name == name {
			return Network(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedNetwork, name)
}

// MustFromName is like FromName but panics on an unknown name.
func MustFromName(name string) Network {
	n, err := FromName(name)
	if err != nil {
		panic(err)
	}
	return n
}

// FromParams resolves the network described by btcd chain parameters.
func FromParams(params *chaincfg.Params) (Network, error) {
	if params == nil {
		return 0, fmt.Errorf("%w: nil params", ErrUnsupportedNetwork)
	}
	return FromBitcoinNet(params.Net)
}

// FromBitcoinNet resolves a network from its wire magic.
func FromBitcoinNet(net wire.BitcoinNet) (Network, error) {
	for i, def := range definitions {
		if def.params.Net == net {
			return Network(i), nil
		}
	}
	return 0, fmt.Errorf("%w: magic %#08x", ErrUnsupportedNetwork, uint32(net))
}

func (n Network) definition() definition {
	if int(n) >= networkCount {
		panic(fmt.Sprintf("network: invalid network value %d", uint8(n)))
	}
	return definitions[n]
}

// Params returns the btcd chain parameters of the network.
func (n Network) Params() *chaincfg.Params {
	return n.definition().params
}

// Magic returns the wire protocol magic number.
func (n Network) Magic() uint32 {
	return uint32(n.definition().params.Net)
}

// IsRegtest reports whether n is the regression test network.
func (n Network) IsRegtest() bool {
	return n == RegTest
}

// String returns the canonical lowercase name.
func (n Network) String() string {
	if int(n) >= networkCount {
		return fmt.Sprintf("network(%d)", uint8(n))
	}
	return definitions[n].name
}

// UnmarshalFlag implements flags.Unmarshaler so an unknown --network fails argument parsing.
func (n *Network) UnmarshalFlag(value string) error {
	parsed, err := FromName(value)
	if err != nil {
		return fmt.Errorf("%w (supported: %v)", err, Names())
	}
	*n = parsed
	return nil
}

// MarshalFlag implements flags.Marshaler.
func (n Network) MarshalFlag() (string, error) {
	return n.String(), nil
}
