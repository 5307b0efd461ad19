package config

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
)

var ErrConfigUnknownNetwork = errors.New("unknown bitcoin network")

// GetChainParams maps the chain name reported by getblockchaininfo to its parameters.
func GetChainParams(chain string) (*chaincfg.Params, error) {
	switch chain {
	case "main":
		return &chaincfg.MainNetParams, nil
	case "test":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	}

	return nil, errors.Join(ErrConfigUnknownNetwork, fmt.Errorf("network: %s", chain))
}

func (l *LightningConfig) ListenAddr() string {
	return fmt.Sprintf(":%d", l.Port)
}
