package currency

import (
	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/consensushashing"
	"github.com/bytecoinlabs/currencyd/util"
	"github.com/pkg/errors"
)

// ErrInvalidParameter indicates a builder setter was given an out of range value
var ErrInvalidParameter = errors.New("invalid currency parameter")

// ErrInitializationFailed indicates a parameter set failed cross-field
// validation or genesis derivation
var ErrInitializationFailed = errors.New("failed to initialize currency")

// maxEmissionSpeedFactor is the width in bits of an atomic amount
const maxEmissionSpeedFactor = 64

// Currency is the immutable set of consensus parameters of a network. It is
// created by New or Builder.Build and shared by pointer.
type Currency struct {
	config           Config
	coin             uint64
	genesisBlock     *externalapi.DomainBlock
	genesisBlockHash *externalapi.DomainHash
}

// New validates config and derives the genesis block from it. The config is
// copied, so later changes to it do not affect the returned Currency.
func New(config *Config) (*Currency, error) {
	err := validateConfig(config)
	if err != nil {
		return nil, err
	}

	c := &Currency{
		config: *config.Copy(),
		coin:   util.Pow10(config.NumberOfDecimalPlaces),
	}

	c.genesisBlock, err = generateGenesisBlock(&c.config)
	if err != nil {
		return nil, errors.Wrapf(ErrInitializationFailed, "failed to generate the genesis block: %s", err)
	}
	c.genesisBlockHash, err = consensushashing.BlockHash(c.genesisBlock)
	if err != nil {
		return nil, errors.Wrapf(ErrInitializationFailed, "failed to hash the genesis block: %s", err)
	}

	log.Debugf("Initialized currency %s with genesis block %s", c.config.NetworkName, c.genesisBlockHash)
	return c, nil
}

func validateConfig(config *Config) error {
	if config.NetworkName == "" {
		return errors.Wrapf(ErrInitializationFailed, "network name is empty")
	}
	if config.MoneySupply == 0 {
		return errors.Wrapf(ErrInitializationFailed, "money supply is zero")
	}
	if err := checkEmissionSpeedFactor(config.EmissionSpeedFactor); err != nil {
		return errors.Wrapf(ErrInitializationFailed, "%s", err)
	}
	if err := checkNumberOfDecimalPlaces(config.NumberOfDecimalPlaces); err != nil {
		return errors.Wrapf(ErrInitializationFailed, "%s", err)
	}
	if err := checkDifficultyWindow(config.DifficultyWindow, config.DifficultyCut); err != nil {
		return errors.Wrapf(ErrInitializationFailed, "%s", err)
	}
	if config.DifficultyWindow < 2 {
		return errors.Wrapf(ErrInitializationFailed, "difficulty window %d is smaller than 2", config.DifficultyWindow)
	}
	if config.DifficultyTarget == 0 {
		return errors.Wrapf(ErrInitializationFailed, "difficulty target is zero")
	}
	if config.MaxBlockSizeGrowthSpeedDenominator == 0 {
		return errors.Wrapf(ErrInitializationFailed, "max block size growth speed denominator is zero")
	}
	if config.BlockGrantedFullRewardZone == 0 {
		return errors.Wrapf(ErrInitializationFailed, "block granted full reward zone is zero")
	}
	if config.RewardBlocksWindow == 0 {
		return errors.Wrapf(ErrInitializationFailed, "reward blocks window is zero")
	}
	if config.TimestampCheckWindow == 0 {
		return errors.Wrapf(ErrInitializationFailed, "timestamp check window is zero")
	}
	if config.MinerTxBlobReservedSize > config.MaxBlockBlobSize {
		return errors.Wrapf(ErrInitializationFailed, "miner tx blob reserved size %d is larger than "+
			"the max block blob size %d", config.MinerTxBlobReservedSize, config.MaxBlockBlobSize)
	}
	return nil
}

// NetworkName returns the human-readable name of the network
func (c *Currency) NetworkName() string { return c.config.NetworkName }

// IsTestnet returns whether this is a test network
func (c *Currency) IsTestnet() bool { return c.config.Testnet }

// PublicAddressBase58Prefix returns the tag encoded at the start of every address
func (c *Currency) PublicAddressBase58Prefix() uint64 { return c.config.PublicAddressBase58Prefix }

// GenesisCoinbaseAddress returns the configured genesis coinbase address, or
// an empty string when the placeholder address is used
func (c *Currency) GenesisCoinbaseAddress() string { return c.config.GenesisCoinbaseAddress }

// MaxBlockHeight returns the highest block height. Unlock times below it are heights.
func (c *Currency) MaxBlockHeight() uint64 { return c.config.MaxBlockHeight }

// MaxBlockBlobSize returns the hard limit on the size of a serialized block
func (c *Currency) MaxBlockBlobSize() uint64 { return c.config.MaxBlockBlobSize }

// MaxTxSize returns the maximum size of a serialized transaction
func (c *Currency) MaxTxSize() uint64 { return c.config.MaxTxSize }

// MinedMoneyUnlockWindow returns the number of blocks a coinbase stays locked
func (c *Currency) MinedMoneyUnlockWindow() uint64 { return c.config.MinedMoneyUnlockWindow }

// TimestampCheckWindow returns the number of previous blocks whose median
// timestamp bounds a new block's timestamp from below
func (c *Currency) TimestampCheckWindow() uint64 { return c.config.TimestampCheckWindow }

// BlockFutureTimeLimit returns the number of seconds a block timestamp may be
// ahead of the local clock
func (c *Currency) BlockFutureTimeLimit() uint64 { return c.config.BlockFutureTimeLimit }

// MoneySupply returns the total amount of atomic units that will ever be emitted
func (c *Currency) MoneySupply() uint64 { return c.config.MoneySupply }

// EmissionSpeedFactor returns the right shift applied to the remaining supply
func (c *Currency) EmissionSpeedFactor() uint { return c.config.EmissionSpeedFactor }

// RewardBlocksWindow returns the number of blocks the median block size is taken over
func (c *Currency) RewardBlocksWindow() uint64 { return c.config.RewardBlocksWindow }

// BlockGrantedFullRewardZone returns the block size below which no penalty applies
func (c *Currency) BlockGrantedFullRewardZone() uint64 { return c.config.BlockGrantedFullRewardZone }

// MinerTxBlobReservedSize returns the size reserved for the coinbase extra field
func (c *Currency) MinerTxBlobReservedSize() uint64 { return c.config.MinerTxBlobReservedSize }

// NumberOfDecimalPlaces returns the number of decimal places of a displayed amount
func (c *Currency) NumberOfDecimalPlaces() uint { return c.config.NumberOfDecimalPlaces }

// Coin returns the number of atomic units in one coin
func (c *Currency) Coin() uint64 { return c.coin }

// MinimumFee returns the minimum transaction fee
func (c *Currency) MinimumFee() uint64 { return c.config.MinimumFee }

// DefaultDustThreshold returns the amount below which outputs are considered dust
func (c *Currency) DefaultDustThreshold() uint64 { return c.config.DefaultDustThreshold }

// DifficultyTarget returns the target time between blocks, in seconds
func (c *Currency) DifficultyTarget() uint64 { return c.config.DifficultyTarget }

// DifficultyWindow returns the number of blocks difficulty is computed over
func (c *Currency) DifficultyWindow() uint64 { return c.config.DifficultyWindow }

// DifficultyLag returns the number of most recent blocks left out of the difficulty window
func (c *Currency) DifficultyLag() uint64 { return c.config.DifficultyLag }

// DifficultyCut returns the number of outlying timestamps trimmed from each end of the window
func (c *Currency) DifficultyCut() uint64 { return c.config.DifficultyCut }

// DifficultyBlocksCount returns the number of samples the difficulty calculation needs
func (c *Currency) DifficultyBlocksCount() uint64 {
	return c.config.DifficultyWindow + c.config.DifficultyLag
}

// MaxBlockSizeInitial returns the cumulative block size limit at height zero
func (c *Currency) MaxBlockSizeInitial() uint64 { return c.config.MaxBlockSizeInitial }

// MaxBlockSizeGrowthSpeedNumerator returns the numerator of the per-block growth of the size limit
func (c *Currency) MaxBlockSizeGrowthSpeedNumerator() uint64 {
	return c.config.MaxBlockSizeGrowthSpeedNumerator
}

// MaxBlockSizeGrowthSpeedDenominator returns the denominator of the per-block growth of the size limit
func (c *Currency) MaxBlockSizeGrowthSpeedDenominator() uint64 {
	return c.config.MaxBlockSizeGrowthSpeedDenominator
}

// LockedTxAllowedDeltaSeconds returns the clock slack allowed when checking time locks
func (c *Currency) LockedTxAllowedDeltaSeconds() uint64 { return c.config.LockedTxAllowedDeltaSeconds }

// LockedTxAllowedDeltaBlocks returns the block slack allowed when checking height locks
func (c *Currency) LockedTxAllowedDeltaBlocks() uint64 { return c.config.LockedTxAllowedDeltaBlocks }

// MempoolTxLiveTime returns the number of seconds a transaction lives in the mempool
func (c *Currency) MempoolTxLiveTime() uint64 { return c.config.MempoolTxLiveTime }

// MempoolTxFromAltBlockLiveTime returns the mempool lifetime of transactions
// returned from alternative blocks
func (c *Currency) MempoolTxFromAltBlockLiveTime() uint64 {
	return c.config.MempoolTxFromAltBlockLiveTime
}

// BlocksFileName returns the name of the blocks file
func (c *Currency) BlocksFileName() string { return c.config.BlocksFileName }

// BlocksCacheFileName returns the name of the blocks cache file
func (c *Currency) BlocksCacheFileName() string { return c.config.BlocksCacheFileName }

// BlockIndexesFileName returns the name of the block indexes file
func (c *Currency) BlockIndexesFileName() string { return c.config.BlockIndexesFileName }

// TxPoolFileName returns the name of the transaction pool file
func (c *Currency) TxPoolFileName() string { return c.config.TxPoolFileName }

// GenesisBlock returns a copy of the genesis block
func (c *Currency) GenesisBlock() *externalapi.DomainBlock { return c.genesisBlock.Clone() }

// GenesisBlockHash returns the hash of the genesis block
func (c *Currency) GenesisBlockHash() *externalapi.DomainHash {
	return externalapi.NewDomainHashFromByteArray(c.genesisBlockHash.ByteArray())
}

// Config returns a copy of the fields the currency was built from
func (c *Currency) Config() *Config { return c.config.Copy() }

// AddressCodec returns the codec of this network's addresses
func (c *Currency) AddressCodec() *util.AddressCodec {
	return util.NewAddressCodec(c.config.PublicAddressBase58Prefix)
}

// AmountFormatter returns the formatter of this network's amounts
func (c *Currency) AmountFormatter() *util.AmountFormatter {
	return util.NewAmountFormatter(c.config.NumberOfDecimalPlaces)
}
