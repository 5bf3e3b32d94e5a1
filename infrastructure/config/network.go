package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytecoinlabs/currencyd/domain/currency"
	"github.com/jessevdk/go-flags"
	"github.com/mohae/deepcopy"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet            bool   `long:"testnet" description:"Use the test network"`
	OverrideParamsFile string `long:"override-params-file" description:"Overrides currency params from a JSON or YAML file"`

	ActiveCurrency *currency.Currency
}

// ResolveNetwork builds the currency of the selected network, applying the
// parameter overrides file if one was given.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	// Presets are never mutated, overrides apply to a copy
	preset := currency.MainnetConfig()
	if networkFlags.Testnet {
		preset = currency.TestnetConfig()
	}
	config := deepcopy.Copy(preset).(*currency.Config)

	err := overrideParams(config, networkFlags.OverrideParamsFile)
	if err != nil {
		if parser != nil {
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
		}
		return err
	}

	activeCurrency, err := currency.NewBuilderFromConfig(config).Build()
	if err != nil {
		return err
	}
	networkFlags.ActiveCurrency = activeCurrency

	log.Infof("Active network: %s", activeCurrency.NetworkName())
	return nil
}

// Currency returns the ActiveCurrency
func (networkFlags *NetworkFlags) Currency() *currency.Currency {
	return networkFlags.ActiveCurrency
}

// overrideParams decodes the fields present in overrideParamsFile over
// config. Files ending in .yaml or .yml are read as YAML, all others as JSON.
func overrideParams(config *currency.Config, overrideParamsFile string) error {
	if overrideParamsFile == "" {
		return nil
	}

	content, err := os.ReadFile(overrideParamsFile)
	if err != nil {
		return errors.Wrapf(err, "couldn't read override-params-file")
	}

	switch strings.ToLower(filepath.Ext(overrideParamsFile)) {
	case ".yaml", ".yml":
		err = yaml.UnmarshalStrict(content, config)
	default:
		decoder := json.NewDecoder(bytes.NewReader(content))
		decoder.DisallowUnknownFields()
		err = decoder.Decode(config)
	}
	if err != nil {
		return errors.Wrapf(err, "couldn't parse override-params-file %s", overrideParamsFile)
	}

	log.Debugf("Applied currency params overrides from %s", overrideParamsFile)
	return nil
}
