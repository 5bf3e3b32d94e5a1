package blockvalidator

import (
	"github.com/bytecoinlabs/currencyd/domain/consensus/ruleerrors"
	utilMath "github.com/bytecoinlabs/currencyd/util/math"
	"github.com/pkg/errors"
)

// CheckBlockCumulativeSize ensures the cumulative size of a block fits
// both the size limit at its height and the maximum block blob size
func (v *blockValidator) CheckBlockCumulativeSize(height uint64, cumulativeSize uint64) error {
	maxCumulativeSize := utilMath.MinUint64(v.emissionManager.MaxBlockCumulativeSize(height), v.maxBlockBlobSize)
	if cumulativeSize > maxCumulativeSize {
		return errors.Wrapf(ruleerrors.ErrBlockSizeTooHigh, "block cumulative size of %d is higher than "+
			"the maximum of %d allowed at height %d", cumulativeSize, maxCumulativeSize, height)
	}
	return nil
}
