package main

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

func params(conf *paramsConfig) error {
	activeCurrency := conf.Currency()
	currencyConfig := activeCurrency.Config()

	var out []byte
	var err error
	switch conf.Format {
	case "yaml":
		out, err = yaml.Marshal(currencyConfig)
	default:
		out, err = json.MarshalIndent(currencyConfig, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		return errors.Wrapf(err, "couldn't serialize the parameters")
	}

	fmt.Print(string(out))
	fmt.Printf("# coin: %d\n", activeCurrency.Coin())
	fmt.Printf("# difficulty blocks count: %d\n", activeCurrency.DifficultyBlocksCount())
	return nil
}
