package currency

import (
	"math"
)

const (
	mainnetName = "currencyd-mainnet"
	testnetName = "currencyd-testnet"

	secondsPerYear = 365 * 24 * 60 * 60
)

// MainnetConfig returns a fresh copy of the main network parameters
func MainnetConfig() *Config {
	return &Config{
		NetworkName:               mainnetName,
		Testnet:                   false,
		PublicAddressBase58Prefix: 6,

		MaxBlockHeight:         500000000,
		MaxBlockBlobSize:       500000000,
		MaxTxSize:              1000000000,
		MinedMoneyUnlockWindow: 60,
		TimestampCheckWindow:   60,
		BlockFutureTimeLimit:   60 * 60 * 2,

		MoneySupply:                math.MaxUint64,
		EmissionSpeedFactor:        18,
		RewardBlocksWindow:         100,
		BlockGrantedFullRewardZone: 20000,
		MinerTxBlobReservedSize:    600,
		NumberOfDecimalPlaces:      12,
		MinimumFee:                 1000000,
		DefaultDustThreshold:       1000000,

		DifficultyTarget: 120,
		DifficultyWindow: 720,
		DifficultyLag:    15,
		DifficultyCut:    60,

		MaxBlockSizeInitial:                20 * 1024,
		MaxBlockSizeGrowthSpeedNumerator:   100 * 1024,
		MaxBlockSizeGrowthSpeedDenominator: secondsPerYear / 120,

		LockedTxAllowedDeltaSeconds:   120,
		LockedTxAllowedDeltaBlocks:    1,
		MempoolTxLiveTime:             60 * 60 * 24,
		MempoolTxFromAltBlockLiveTime: 60 * 60 * 24 * 7,

		BlocksFileName:       "blocks.dat",
		BlocksCacheFileName:  "blockscache.dat",
		BlockIndexesFileName: "blockindexes.dat",
		TxPoolFileName:       "poolstate.bin",
	}
}

// TestnetConfig returns a fresh copy of the test network parameters
func TestnetConfig() *Config {
	config := MainnetConfig()
	config.NetworkName = testnetName
	config.Testnet = true
	config.PublicAddressBase58Prefix = 7
	config.BlocksFileName = "testnet_" + config.BlocksFileName
	config.BlocksCacheFileName = "testnet_" + config.BlocksCacheFileName
	config.BlockIndexesFileName = "testnet_" + config.BlockIndexesFileName
	config.TxPoolFileName = "testnet_" + config.TxPoolFileName
	return config
}
