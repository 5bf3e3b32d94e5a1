package transactionvalidator

import (
	"math"
)

// IsTxSpendTimeUnlocked returns whether outputs locked until unlockTime can
// be spent in the block following currentHeight. Unlock times below
// maxBlockHeight are block heights, all others are timestamps.
func (v *transactionValidator) IsTxSpendTimeUnlocked(unlockTime uint64, currentHeight uint64, now uint64) bool {
	if unlockTime < v.maxBlockHeight {
		// currentHeight - 1 + lockedTxAllowedDeltaBlocks >= unlockTime
		return saturatingAdd(currentHeight, v.lockedTxAllowedDeltaBlocks) >= unlockTime+1
	}
	return saturatingAdd(now, v.lockedTxAllowedDeltaSeconds) >= unlockTime
}

func saturatingAdd(x, y uint64) uint64 {
	if x > math.MaxUint64-y {
		return math.MaxUint64
	}
	return x + y
}
