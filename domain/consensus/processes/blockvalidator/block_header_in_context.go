package blockvalidator

import (
	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/domain/consensus/ruleerrors"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/consensushashing"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/constants"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/pow"
	utilMath "github.com/bytecoinlabs/currencyd/util/math"
	"github.com/pkg/errors"
)

func (v *blockValidator) checkBlockVersion(header *externalapi.DomainBlockHeader) error {
	if header.MajorVersion != constants.BlockMajorVersion {
		return errors.Wrapf(
			ruleerrors.ErrBlockVersionIsUnknown, "block major version %d is unknown, expected %d",
			header.MajorVersion, constants.BlockMajorVersion)
	}
	return nil
}

// CheckBlockTimestamp ensures the timestamp is not too far in the future
// relative to now, and not below the median of the most recent
// timestampCheckWindow previous timestamps. Fewer previous timestamps
// than the window disable the median check.
func (v *blockValidator) CheckBlockTimestamp(timestamp uint64, previousTimestamps []uint64, now uint64) error {
	if timestamp > now && timestamp-now > v.blockFutureTimeLimit {
		return errors.Wrapf(ruleerrors.ErrTimeTooMuchInTheFuture, "block timestamp of %d is too far in the "+
			"future, the maximum allowed is %d seconds after %d", timestamp, v.blockFutureTimeLimit, now)
	}

	if uint64(len(previousTimestamps)) < v.timestampCheckWindow {
		return nil
	}

	window := previousTimestamps[uint64(len(previousTimestamps))-v.timestampCheckWindow:]
	median := utilMath.MedianUint64(window)
	if timestamp < median {
		return errors.Wrapf(ruleerrors.ErrTimeTooOld, "block timestamp of %d is not after expected %d",
			timestamp, median)
	}
	return nil
}

// CheckProofOfWork ensures the hashing blob of the block meets difficulty
func (v *blockValidator) CheckProofOfWork(block *externalapi.DomainBlock, difficulty uint64) error {
	if difficulty == 0 {
		return errors.Wrapf(ruleerrors.ErrUnexpectedDifficulty, "block difficulty can't be zero")
	}

	blockHashingBlob, err := consensushashing.BlockHashingBlob(block)
	if err != nil {
		return err
	}

	accepted, digest := pow.CheckProofOfWork(v.hasher, blockHashingBlob, difficulty)
	if !accepted {
		return ruleerrors.NewErrProofOfWorkNotMet(digest, difficulty)
	}
	return nil
}
