package main

import (
	"encoding/hex"
	"fmt"

	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/serialization"
)

func genesis(conf *genesisConfig) error {
	activeCurrency := conf.Currency()
	genesisBlock := activeCurrency.GenesisBlock()

	blockBytes, err := serialization.BlockBytes(genesisBlock)
	if err != nil {
		return err
	}
	coinbaseBytes, err := serialization.TransactionBytes(genesisBlock.CoinbaseTransaction)
	if err != nil {
		return err
	}

	fmt.Printf("Network: %s\n", activeCurrency.NetworkName())
	fmt.Printf("Genesis hash: %s\n", activeCurrency.GenesisBlockHash())
	fmt.Printf("Genesis coinbase: %s\n", hex.EncodeToString(coinbaseBytes))
	fmt.Printf("Genesis block: %s\n", hex.EncodeToString(blockBytes))
	return nil
}
