package main

import (
	"encoding/hex"
	"fmt"

	"github.com/bytecoinlabs/currencyd/domain/consensus"
	"github.com/bytecoinlabs/currencyd/domain/consensus/model"
	"github.com/bytecoinlabs/currencyd/domain/consensus/processes/coinbasemanager"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/consensushashing"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/serialization"
	"github.com/pkg/errors"
)

func coinbase(conf *coinbaseConfig) error {
	activeCurrency := conf.Currency()
	minerAddress, err := activeCurrency.AddressCodec().DecodeAddress(conf.Address)
	if err != nil {
		return err
	}
	extraNonce, err := hex.DecodeString(conf.ExtraNonce)
	if err != nil {
		return errors.Wrapf(err, "couldn't parse the extra nonce")
	}
	zeroRewardPolicy, ok := coinbasemanager.ZeroRewardPolicyFromString(conf.ZeroRewardPolicy)
	if !ok {
		return errors.Errorf("unknown zero reward policy %s", conf.ZeroRewardPolicy)
	}

	factory := consensus.NewFactory()
	factory.SetZeroRewardPolicy(zeroRewardPolicy)
	activeConsensus, err := factory.NewConsensus(activeCurrency, nil)
	if err != nil {
		return err
	}

	coinbaseTransaction, err := activeConsensus.ConstructMinerTx(&model.RewardContext{
		Height:                conf.Height,
		MedianSize:            conf.MedianSize,
		CurrentBlockSize:      conf.BlockSize,
		AlreadyGeneratedCoins: conf.AlreadyGeneratedCoins,
		Fee:                   conf.Fee,
	}, minerAddress, extraNonce, conf.MaxOutputs)
	if err != nil {
		return err
	}

	transactionHash, err := consensushashing.TransactionHash(coinbaseTransaction)
	if err != nil {
		return err
	}
	transactionBytes, err := serialization.TransactionBytes(coinbaseTransaction)
	if err != nil {
		return err
	}

	formatter := activeCurrency.AmountFormatter()
	fmt.Printf("Transaction hash: %s\n", transactionHash)
	fmt.Printf("Unlock time: %d\n", coinbaseTransaction.UnlockTime)
	for i, output := range coinbaseTransaction.Outputs {
		fmt.Printf("Output %d: %s to %s\n", i, formatter.Format(output.Amount), output.Key)
	}
	fmt.Printf("Transaction: %s\n", hex.EncodeToString(transactionBytes))
	return nil
}
