package blockvalidator

import (
	"github.com/bytecoinlabs/currencyd/domain/consensus/model"
	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/pow"
)

// blockValidator exposes a set of validation classes, after which
// it's possible to determine whether either a block is valid
type blockValidator struct {
	maxBlockBlobSize     uint64
	timestampCheckWindow uint64
	blockFutureTimeLimit uint64

	hasher          pow.Hasher
	emissionManager model.EmissionManager
	coinbaseManager model.CoinbaseManager
}

// New instantiates a new BlockValidator
func New(maxBlockBlobSize uint64,
	timestampCheckWindow uint64,
	blockFutureTimeLimit uint64,

	hasher pow.Hasher,
	emissionManager model.EmissionManager,
	coinbaseManager model.CoinbaseManager) model.BlockValidator {

	return &blockValidator{
		maxBlockBlobSize:     maxBlockBlobSize,
		timestampCheckWindow: timestampCheckWindow,
		blockFutureTimeLimit: blockFutureTimeLimit,

		hasher:          hasher,
		emissionManager: emissionManager,
		coinbaseManager: coinbaseManager,
	}
}

// ValidateBlock runs every check a block must pass before being accepted on
// top of the chain described by blockContext
func (v *blockValidator) ValidateBlock(block *externalapi.DomainBlock, blockContext *model.BlockContext) error {
	err := v.checkBlockVersion(block.Header)
	if err != nil {
		return err
	}

	err = v.CheckBlockTimestamp(block.Header.Timestamp, blockContext.PreviousTimestamps, blockContext.Now)
	if err != nil {
		return err
	}

	err = v.CheckBlockCumulativeSize(blockContext.Height, blockContext.CurrentBlockSize)
	if err != nil {
		return err
	}

	err = v.CheckProofOfWork(block, blockContext.Difficulty)
	if err != nil {
		return err
	}

	err = v.coinbaseManager.ValidateMinerTx(block.CoinbaseTransaction, &blockContext.RewardContext)
	if err != nil {
		return err
	}

	log.Debugf("Block at height %d passed validation", blockContext.Height)
	return nil
}
