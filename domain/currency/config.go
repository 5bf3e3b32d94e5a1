package currency

import (
	"github.com/mohae/deepcopy"
)

// Config is the full field set a Currency is built from. It is the staging
// form of the parameters: Builder mutates one, and New validates one into an
// immutable Currency.
type Config struct {
	// NetworkName is the human-readable name of the network
	NetworkName string `json:"networkName" yaml:"networkName"`

	// Testnet marks a test network
	Testnet bool `json:"testnet" yaml:"testnet"`

	// PublicAddressBase58Prefix is the tag encoded at the start of every address
	PublicAddressBase58Prefix uint64 `json:"publicAddressBase58Prefix" yaml:"publicAddressBase58Prefix"`

	// GenesisCoinbaseAddress is the address the genesis coinbase pays. When
	// empty, a placeholder address derived from the network name is paid.
	GenesisCoinbaseAddress string `json:"genesisCoinbaseAddress" yaml:"genesisCoinbaseAddress"`

	MaxBlockHeight         uint64 `json:"maxBlockHeight" yaml:"maxBlockHeight"`
	MaxBlockBlobSize       uint64 `json:"maxBlockBlobSize" yaml:"maxBlockBlobSize"`
	MaxTxSize              uint64 `json:"maxTxSize" yaml:"maxTxSize"`
	MinedMoneyUnlockWindow uint64 `json:"minedMoneyUnlockWindow" yaml:"minedMoneyUnlockWindow"`
	TimestampCheckWindow   uint64 `json:"timestampCheckWindow" yaml:"timestampCheckWindow"`

	// BlockFutureTimeLimit is the number of seconds a block timestamp may be
	// ahead of the local clock
	BlockFutureTimeLimit uint64 `json:"blockFutureTimeLimit" yaml:"blockFutureTimeLimit"`

	MoneySupply uint64 `json:"moneySupply" yaml:"moneySupply"`

	// EmissionSpeedFactor is the right shift applied to the not yet emitted
	// supply to get the base reward
	EmissionSpeedFactor uint `json:"emissionSpeedFactor" yaml:"emissionSpeedFactor"`

	RewardBlocksWindow         uint64 `json:"rewardBlocksWindow" yaml:"rewardBlocksWindow"`
	BlockGrantedFullRewardZone uint64 `json:"blockGrantedFullRewardZone" yaml:"blockGrantedFullRewardZone"`
	MinerTxBlobReservedSize    uint64 `json:"minerTxBlobReservedSize" yaml:"minerTxBlobReservedSize"`
	NumberOfDecimalPlaces      uint   `json:"numberOfDecimalPlaces" yaml:"numberOfDecimalPlaces"`
	MinimumFee                 uint64 `json:"minimumFee" yaml:"minimumFee"`
	DefaultDustThreshold       uint64 `json:"defaultDustThreshold" yaml:"defaultDustThreshold"`

	// DifficultyTarget is the target time between blocks, in seconds
	DifficultyTarget uint64 `json:"difficultyTarget" yaml:"difficultyTarget"`
	DifficultyWindow uint64 `json:"difficultyWindow" yaml:"difficultyWindow"`
	DifficultyLag    uint64 `json:"difficultyLag" yaml:"difficultyLag"`

	// DifficultyCut is the number of timestamps trimmed from each end of the
	// sorted difficulty window
	DifficultyCut uint64 `json:"difficultyCut" yaml:"difficultyCut"`

	MaxBlockSizeInitial                uint64 `json:"maxBlockSizeInitial" yaml:"maxBlockSizeInitial"`
	MaxBlockSizeGrowthSpeedNumerator   uint64 `json:"maxBlockSizeGrowthSpeedNumerator" yaml:"maxBlockSizeGrowthSpeedNumerator"`
	MaxBlockSizeGrowthSpeedDenominator uint64 `json:"maxBlockSizeGrowthSpeedDenominator" yaml:"maxBlockSizeGrowthSpeedDenominator"`

	LockedTxAllowedDeltaSeconds   uint64 `json:"lockedTxAllowedDeltaSeconds" yaml:"lockedTxAllowedDeltaSeconds"`
	LockedTxAllowedDeltaBlocks    uint64 `json:"lockedTxAllowedDeltaBlocks" yaml:"lockedTxAllowedDeltaBlocks"`
	MempoolTxLiveTime             uint64 `json:"mempoolTxLiveTime" yaml:"mempoolTxLiveTime"`
	MempoolTxFromAltBlockLiveTime uint64 `json:"mempoolTxFromAltBlockLiveTime" yaml:"mempoolTxFromAltBlockLiveTime"`

	BlocksFileName       string `json:"blocksFileName" yaml:"blocksFileName"`
	BlocksCacheFileName  string `json:"blocksCacheFileName" yaml:"blocksCacheFileName"`
	BlockIndexesFileName string `json:"blockIndexesFileName" yaml:"blockIndexesFileName"`
	TxPoolFileName       string `json:"txPoolFileName" yaml:"txPoolFileName"`
}

// Copy returns a deep copy of the config
func (c *Config) Copy() *Config {
	return deepcopy.Copy(c).(*Config)
}
