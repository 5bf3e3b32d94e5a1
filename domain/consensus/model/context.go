package model

// RewardContext holds the chain data the reward of a block under
// construction depends on
type RewardContext struct {
	Height                uint64
	MedianSize            uint64
	CurrentBlockSize      uint64
	AlreadyGeneratedCoins uint64
	Fee                   uint64
}

// BlockContext holds the chain data a block is validated against
type BlockContext struct {
	RewardContext

	// Difficulty is the difficulty the block's proof of work must meet
	Difficulty uint64

	// PreviousTimestamps are the timestamps of the most recent blocks, oldest first
	PreviousTimestamps []uint64

	// Now is the local clock, in seconds since the epoch
	Now uint64
}
