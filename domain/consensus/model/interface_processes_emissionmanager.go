package model

// EmissionManager computes block rewards and the block size limits that
// depend on the emission schedule
type EmissionManager interface {
	BaseReward(alreadyGeneratedCoins uint64, height uint64) uint64
	BlockReward(height, medianSize, currentBlockSize, alreadyGeneratedCoins, fee uint64) (
		reward uint64, emissionChange int64, err error)
	MaxBlockCumulativeSize(height uint64) uint64
}
