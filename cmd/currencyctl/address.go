package main

import (
	"fmt"

	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

func address(conf *addressConfig) error {
	codec := conf.Currency().AddressCodec()

	if conf.Decode != "" {
		spendPublicKey, viewPublicKey, err := codec.Decode(conf.Decode)
		if err != nil {
			return err
		}
		fmt.Printf("Spend public key: %s\n", spendPublicKey)
		fmt.Printf("View public key: %s\n", viewPublicKey)
		return nil
	}

	if conf.SpendKey == "" || conf.ViewKey == "" {
		return errors.New("either --decode or both --spend-key and --view-key are required")
	}
	spendPublicKey, err := externalapi.NewPublicKeyFromString(conf.SpendKey)
	if err != nil {
		return errors.Wrapf(err, "couldn't parse the spend key")
	}
	viewPublicKey, err := externalapi.NewPublicKeyFromString(conf.ViewKey)
	if err != nil {
		return errors.Wrapf(err, "couldn't parse the view key")
	}

	fmt.Println(codec.Encode(spendPublicKey, viewPublicKey))
	return nil
}
