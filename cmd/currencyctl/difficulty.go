package main

import (
	"fmt"

	"github.com/bytecoinlabs/currencyd/domain/consensus"
	"github.com/pkg/errors"
)

func difficulty(conf *difficultyConfig) error {
	timestamps, err := parseUint64List(conf.Timestamps)
	if err != nil {
		return errors.Wrapf(err, "couldn't parse timestamps")
	}
	cumulativeDifficulties, err := parseUint64List(conf.CumulativeDifficulties)
	if err != nil {
		return errors.Wrapf(err, "couldn't parse cumulative difficulties")
	}

	activeConsensus, err := consensus.NewFactory().NewConsensus(conf.Currency(), nil)
	if err != nil {
		return err
	}
	nextDifficulty, err := activeConsensus.NextDifficulty(timestamps, cumulativeDifficulties)
	if err != nil {
		return err
	}

	log.Debugf("Computed the next difficulty out of %d blocks", len(timestamps))
	fmt.Println(nextDifficulty)
	return nil
}
