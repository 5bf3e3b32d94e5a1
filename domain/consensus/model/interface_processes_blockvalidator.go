package model

import (
	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
)

// BlockValidator exposes a set of validation classes, after which
// it's possible to determine whether a block is valid
type BlockValidator interface {
	CheckBlockTimestamp(timestamp uint64, previousTimestamps []uint64, now uint64) error
	CheckBlockCumulativeSize(height uint64, cumulativeSize uint64) error
	CheckProofOfWork(block *externalapi.DomainBlock, difficulty uint64) error
	ValidateBlock(block *externalapi.DomainBlock, blockContext *BlockContext) error
}
