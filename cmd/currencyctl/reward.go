package main

import (
	"fmt"

	"github.com/bytecoinlabs/currencyd/domain/consensus"
	"github.com/bytecoinlabs/currencyd/domain/consensus/model"
)

func reward(conf *rewardConfig) error {
	activeConsensus, err := consensus.NewFactory().NewConsensus(conf.Currency(), nil)
	if err != nil {
		return err
	}
	formatter := conf.Currency().AmountFormatter()

	baseReward := activeConsensus.BaseReward(conf.AlreadyGeneratedCoins, conf.Height)
	blockReward, emissionChange, err := activeConsensus.BlockReward(&model.RewardContext{
		Height:                conf.Height,
		MedianSize:            conf.MedianSize,
		CurrentBlockSize:      conf.BlockSize,
		AlreadyGeneratedCoins: conf.AlreadyGeneratedCoins,
		Fee:                   conf.Fee,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Base reward: %s\n", formatter.Format(baseReward))
	fmt.Printf("Block reward: %s\n", formatter.Format(blockReward))
	fmt.Printf("Emission change: %d\n", emissionChange)
	fmt.Printf("Max block cumulative size: %d\n", activeConsensus.MaxBlockCumulativeSize(conf.Height))
	return nil
}
