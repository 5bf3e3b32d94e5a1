package consensus

import (
	"github.com/bytecoinlabs/currencyd/domain/consensus/processes/blockvalidator"
	"github.com/bytecoinlabs/currencyd/domain/consensus/processes/coinbasemanager"
	"github.com/bytecoinlabs/currencyd/domain/consensus/processes/difficultymanager"
	"github.com/bytecoinlabs/currencyd/domain/consensus/processes/emissionmanager"
	"github.com/bytecoinlabs/currencyd/domain/consensus/processes/transactionvalidator"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/pow"
	"github.com/bytecoinlabs/currencyd/domain/currency"
	"github.com/bytecoinlabs/currencyd/infrastructure/logger"
	"github.com/pkg/errors"
)

// Factory instantiates new Consensuses
type Factory interface {
	NewConsensus(currency *currency.Currency, hasher pow.Hasher) (Consensus, error)

	SetZeroRewardPolicy(policy coinbasemanager.ZeroRewardPolicy)
}

type factory struct {
	zeroRewardPolicy coinbasemanager.ZeroRewardPolicy
}

// NewFactory creates a new Consensus factory
func NewFactory() Factory {
	return &factory{
		zeroRewardPolicy: coinbasemanager.ZeroRewardSingleOutput,
	}
}

// NewConsensus instantiates a new Consensus wiring every manager to the
// parameters of currency. A nil hasher selects the unkeyed BLAKE2b hasher.
func (f *factory) NewConsensus(currency *currency.Currency, hasher pow.Hasher) (Consensus, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "NewConsensus")
	defer onEnd()

	if currency == nil {
		return nil, errors.New("a consensus can't be created without a currency")
	}
	if hasher == nil {
		var err error
		hasher, err = pow.NewBlake2bHasher(nil)
		if err != nil {
			return nil, err
		}
	}

	// Processes
	difficultyManager := difficultymanager.New(
		currency.DifficultyTarget(),
		currency.DifficultyWindow(),
		currency.DifficultyLag(),
		currency.DifficultyCut())
	emissionManager := emissionmanager.New(
		currency.MoneySupply(),
		currency.EmissionSpeedFactor(),
		currency.BlockGrantedFullRewardZone(),
		currency.MaxBlockSizeInitial(),
		currency.MaxBlockSizeGrowthSpeedNumerator(),
		currency.MaxBlockSizeGrowthSpeedDenominator())
	coinbaseManager := coinbasemanager.New(
		currency.MinedMoneyUnlockWindow(),
		currency.MinerTxBlobReservedSize(),
		currency.DefaultDustThreshold(),
		f.zeroRewardPolicy,
		emissionManager)
	transactionValidator := transactionvalidator.New(
		currency.MaxTxSize(),
		currency.MaxBlockHeight(),
		currency.LockedTxAllowedDeltaBlocks(),
		currency.LockedTxAllowedDeltaSeconds())
	blockValidator := blockvalidator.New(
		currency.MaxBlockBlobSize(),
		currency.TimestampCheckWindow(),
		currency.BlockFutureTimeLimit(),
		hasher,
		emissionManager,
		coinbaseManager)

	log.Debugf("Created a consensus for network %s with zero reward policy %s",
		currency.NetworkName(), f.zeroRewardPolicy)

	return &consensus{
		currency: currency,
		hasher:   hasher,

		difficultyManager:    difficultyManager,
		emissionManager:      emissionManager,
		coinbaseManager:      coinbaseManager,
		blockValidator:       blockValidator,
		transactionValidator: transactionValidator,
	}, nil
}

// SetZeroRewardPolicy sets the shape of coinbases paying no reward in
// consensuses created from now on
func (f *factory) SetZeroRewardPolicy(policy coinbasemanager.ZeroRewardPolicy) {
	f.zeroRewardPolicy = policy
}
