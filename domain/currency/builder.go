package currency

import (
	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/util"
	"github.com/pkg/errors"
)

// Builder stages the fields of a Currency. Setters can be chained; the first
// setter that rejects its value leaves the field unchanged and records an
// error, which Err reports right away and Build returns.
//
// A Builder must not be used concurrently.
type Builder struct {
	config Config
	err    error
}

// NewBuilder returns a Builder initialized with the main network parameters
func NewBuilder() *Builder {
	return NewBuilderFromConfig(MainnetConfig())
}

// NewBuilderFromConfig returns a Builder initialized with a copy of config
func NewBuilderFromConfig(config *Config) *Builder {
	return &Builder{config: *config.Copy()}
}

// Err returns the first error recorded by a setter, if any
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Build validates the staged fields and returns the resulting Currency
func (b *Builder) Build() (*Currency, error) {
	if b.err != nil {
		return nil, b.err
	}
	return New(&b.config)
}

// GenerateGenesisTransaction returns the genesis coinbase the staged fields derive
func (b *Builder) GenerateGenesisTransaction() (*externalapi.DomainTransaction, error) {
	return generateGenesisTransaction(&b.config)
}

func checkEmissionSpeedFactor(val uint) error {
	if val == 0 || val > maxEmissionSpeedFactor {
		return errors.Wrapf(ErrInvalidParameter, "emission speed factor %d is not in [1, %d]",
			val, maxEmissionSpeedFactor)
	}
	return nil
}

func checkNumberOfDecimalPlaces(val uint) error {
	if val > util.MaxDecimalPlaces {
		return errors.Wrapf(ErrInvalidParameter, "%d decimal places overflow the coin unit, the maximum is %d",
			val, util.MaxDecimalPlaces)
	}
	return nil
}

func checkDifficultyWindow(window, cut uint64) error {
	if window < 2*cut {
		return errors.Wrapf(ErrInvalidParameter, "difficulty window %d is smaller than twice the cut %d",
			window, cut)
	}
	return nil
}

// NetworkName sets the human-readable name of the network
func (b *Builder) NetworkName(val string) *Builder {
	b.config.NetworkName = val
	return b
}

// Testnet sets whether this is a test network
func (b *Builder) Testnet(val bool) *Builder {
	b.config.Testnet = val
	return b
}

// PublicAddressBase58Prefix sets the network address prefix
func (b *Builder) PublicAddressBase58Prefix(val uint64) *Builder {
	b.config.PublicAddressBase58Prefix = val
	return b
}

// GenesisCoinbaseAddress sets the address the genesis coinbase pays
func (b *Builder) GenesisCoinbaseAddress(val string) *Builder {
	b.config.GenesisCoinbaseAddress = val
	return b
}

// MaxBlockHeight sets the highest block height
func (b *Builder) MaxBlockHeight(val uint64) *Builder {
	b.config.MaxBlockHeight = val
	return b
}

// MaxBlockBlobSize sets the hard limit on the size of a serialized block
func (b *Builder) MaxBlockBlobSize(val uint64) *Builder {
	b.config.MaxBlockBlobSize = val
	return b
}

// MaxTxSize sets the maximum size of a serialized transaction
func (b *Builder) MaxTxSize(val uint64) *Builder {
	b.config.MaxTxSize = val
	return b
}

// MinedMoneyUnlockWindow sets the number of blocks a coinbase stays locked
func (b *Builder) MinedMoneyUnlockWindow(val uint64) *Builder {
	b.config.MinedMoneyUnlockWindow = val
	return b
}

// TimestampCheckWindow sets the number of blocks the median timestamp is taken over
func (b *Builder) TimestampCheckWindow(val uint64) *Builder {
	b.config.TimestampCheckWindow = val
	return b
}

// BlockFutureTimeLimit sets how many seconds a block may be ahead of the local clock
func (b *Builder) BlockFutureTimeLimit(val uint64) *Builder {
	b.config.BlockFutureTimeLimit = val
	return b
}

// MoneySupply sets the total amount of atomic units that will ever be emitted
func (b *Builder) MoneySupply(val uint64) *Builder {
	b.config.MoneySupply = val
	return b
}

// EmissionSpeedFactor sets the right shift applied to the remaining supply.
// It must be in [1, 64].
func (b *Builder) EmissionSpeedFactor(val uint) *Builder {
	if err := checkEmissionSpeedFactor(val); err != nil {
		return b.fail(err)
	}
	b.config.EmissionSpeedFactor = val
	return b
}

// RewardBlocksWindow sets the number of blocks the median block size is taken over
func (b *Builder) RewardBlocksWindow(val uint64) *Builder {
	b.config.RewardBlocksWindow = val
	return b
}

// BlockGrantedFullRewardZone sets the block size below which no penalty applies
func (b *Builder) BlockGrantedFullRewardZone(val uint64) *Builder {
	b.config.BlockGrantedFullRewardZone = val
	return b
}

// MinerTxBlobReservedSize sets the size reserved for the coinbase extra field
func (b *Builder) MinerTxBlobReservedSize(val uint64) *Builder {
	b.config.MinerTxBlobReservedSize = val
	return b
}

// NumberOfDecimalPlaces sets the number of decimal places of a displayed
// amount. 10^val must fit in an atomic amount.
func (b *Builder) NumberOfDecimalPlaces(val uint) *Builder {
	if err := checkNumberOfDecimalPlaces(val); err != nil {
		return b.fail(err)
	}
	b.config.NumberOfDecimalPlaces = val
	return b
}

// MinimumFee sets the minimum transaction fee
func (b *Builder) MinimumFee(val uint64) *Builder {
	b.config.MinimumFee = val
	return b
}

// DefaultDustThreshold sets the amount below which outputs are considered dust
func (b *Builder) DefaultDustThreshold(val uint64) *Builder {
	b.config.DefaultDustThreshold = val
	return b
}

// DifficultyTarget sets the target time between blocks, in seconds
func (b *Builder) DifficultyTarget(val uint64) *Builder {
	b.config.DifficultyTarget = val
	return b
}

// DifficultyWindow sets the number of blocks difficulty is computed over. It
// must be at least twice the difficulty cut.
func (b *Builder) DifficultyWindow(val uint64) *Builder {
	if err := checkDifficultyWindow(val, b.config.DifficultyCut); err != nil {
		return b.fail(err)
	}
	b.config.DifficultyWindow = val
	return b
}

// DifficultyLag sets the number of most recent blocks left out of the difficulty window
func (b *Builder) DifficultyLag(val uint64) *Builder {
	b.config.DifficultyLag = val
	return b
}

// DifficultyCut sets the number of timestamps trimmed from each end of the window
func (b *Builder) DifficultyCut(val uint64) *Builder {
	b.config.DifficultyCut = val
	return b
}

// MaxBlockSizeInitial sets the cumulative block size limit at height zero
func (b *Builder) MaxBlockSizeInitial(val uint64) *Builder {
	b.config.MaxBlockSizeInitial = val
	return b
}

// MaxBlockSizeGrowthSpeedNumerator sets the numerator of the per-block growth of the size limit
func (b *Builder) MaxBlockSizeGrowthSpeedNumerator(val uint64) *Builder {
	b.config.MaxBlockSizeGrowthSpeedNumerator = val
	return b
}

// MaxBlockSizeGrowthSpeedDenominator sets the denominator of the per-block growth of the size limit
func (b *Builder) MaxBlockSizeGrowthSpeedDenominator(val uint64) *Builder {
	b.config.MaxBlockSizeGrowthSpeedDenominator = val
	return b
}

// LockedTxAllowedDeltaSeconds sets the clock slack allowed when checking time locks
func (b *Builder) LockedTxAllowedDeltaSeconds(val uint64) *Builder {
	b.config.LockedTxAllowedDeltaSeconds = val
	return b
}

// LockedTxAllowedDeltaBlocks sets the block slack allowed when checking height locks
func (b *Builder) LockedTxAllowedDeltaBlocks(val uint64) *Builder {
	b.config.LockedTxAllowedDeltaBlocks = val
	return b
}

// MempoolTxLiveTime sets the number of seconds a transaction lives in the mempool
func (b *Builder) MempoolTxLiveTime(val uint64) *Builder {
	b.config.MempoolTxLiveTime = val
	return b
}

// MempoolTxFromAltBlockLiveTime sets the mempool lifetime of transactions from alternative blocks
func (b *Builder) MempoolTxFromAltBlockLiveTime(val uint64) *Builder {
	b.config.MempoolTxFromAltBlockLiveTime = val
	return b
}

// BlocksFileName sets the name of the blocks file
func (b *Builder) BlocksFileName(val string) *Builder {
	b.config.BlocksFileName = val
	return b
}

// BlocksCacheFileName sets the name of the blocks cache file
func (b *Builder) BlocksCacheFileName(val string) *Builder {
	b.config.BlocksCacheFileName = val
	return b
}

// BlockIndexesFileName sets the name of the block indexes file
func (b *Builder) BlockIndexesFileName(val string) *Builder {
	b.config.BlockIndexesFileName = val
	return b
}

// TxPoolFileName sets the name of the transaction pool file
func (b *Builder) TxPoolFileName(val string) *Builder {
	b.config.TxPoolFileName = val
	return b
}
