package emissionmanager

import (
	"math"

	"github.com/bytecoinlabs/currencyd/domain/consensus/model"
	"github.com/bytecoinlabs/currencyd/domain/consensus/ruleerrors"
	utilMath "github.com/bytecoinlabs/currencyd/util/math"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

type emissionManager struct {
	moneySupply                        uint64
	emissionSpeedFactor                uint
	blockGrantedFullRewardZone         uint64
	maxBlockSizeInitial                uint64
	maxBlockSizeGrowthSpeedNumerator   uint64
	maxBlockSizeGrowthSpeedDenominator uint64
}

// New instantiates a new EmissionManager
func New(
	moneySupply uint64,
	emissionSpeedFactor uint,
	blockGrantedFullRewardZone uint64,
	maxBlockSizeInitial uint64,
	maxBlockSizeGrowthSpeedNumerator uint64,
	maxBlockSizeGrowthSpeedDenominator uint64) model.EmissionManager {

	return &emissionManager{
		moneySupply:                        moneySupply,
		emissionSpeedFactor:                emissionSpeedFactor,
		blockGrantedFullRewardZone:         blockGrantedFullRewardZone,
		maxBlockSizeInitial:                maxBlockSizeInitial,
		maxBlockSizeGrowthSpeedNumerator:   maxBlockSizeGrowthSpeedNumerator,
		maxBlockSizeGrowthSpeedDenominator: maxBlockSizeGrowthSpeedDenominator,
	}
}

// BaseReward returns the reward of a block before any size penalty and fees.
// The height does not affect the reward.
func (em *emissionManager) BaseReward(alreadyGeneratedCoins uint64, height uint64) uint64 {
	if alreadyGeneratedCoins >= em.moneySupply {
		return 0
	}
	return (em.moneySupply - alreadyGeneratedCoins) >> em.emissionSpeedFactor
}

// BlockReward returns the reward of a block of currentBlockSize bytes, and
// the amount of new coins it emits. Blocks larger than the median size have
// their base reward penalized. Blocks larger than twice the median can't be
// rewarded at all and ErrBlockTooBig is returned.
func (em *emissionManager) BlockReward(height, medianSize, currentBlockSize, alreadyGeneratedCoins, fee uint64) (
	reward uint64, emissionChange int64, err error) {

	baseReward := em.BaseReward(alreadyGeneratedCoins, height)

	medianSize = utilMath.MaxUint64(medianSize, em.blockGrantedFullRewardZone)
	if currentBlockSize > medianSize && currentBlockSize-medianSize > medianSize {
		return 0, 0, errors.Wrapf(ruleerrors.ErrBlockTooBig, "block size %d is bigger than twice the median size %d",
			currentBlockSize, medianSize)
	}

	penalizedBaseReward := penalizedAmount(baseReward, medianSize, currentBlockSize)

	reward = penalizedBaseReward + fee
	if reward < fee {
		return 0, 0, errors.Wrapf(ruleerrors.ErrBadCoinbaseValue, "reward %d plus fee %d overflows",
			penalizedBaseReward, fee)
	}

	log.Tracef("Block reward at height %d for size %d (median %d): %d with %d in fees",
		height, currentBlockSize, medianSize, reward, fee)

	// The emission speed factor is at least 1, so the base reward always fits
	return reward, int64(penalizedBaseReward), nil
}

// penalizedAmount returns amount * (1 - ((currentBlockSize - medianSize) / medianSize)^2),
// computed as amount * currentBlockSize * (2 * medianSize - currentBlockSize) / medianSize / medianSize.
// currentBlockSize must not exceed twice medianSize.
func penalizedAmount(amount uint64, medianSize uint64, currentBlockSize uint64) uint64 {
	if currentBlockSize <= medianSize {
		return amount
	}

	median := new(uint256.Int).SetUint64(medianSize)
	size := new(uint256.Int).SetUint64(currentBlockSize)

	multiplier := new(uint256.Int).Lsh(median, 1)
	multiplier.Sub(multiplier, size)

	product := new(uint256.Int).SetUint64(amount)
	product.Mul(product, size)
	product.Mul(product, multiplier)
	product.Div(product, median)
	product.Div(product, median)
	return product.Uint64()
}

// MaxBlockCumulativeSize returns the maximum cumulative size of a block at
// the given height. The limit grows linearly from maxBlockSizeInitial.
func (em *emissionManager) MaxBlockCumulativeSize(height uint64) uint64 {
	growth := new(uint256.Int).SetUint64(height)
	growth.Mul(growth, new(uint256.Int).SetUint64(em.maxBlockSizeGrowthSpeedNumerator))
	growth.Div(growth, new(uint256.Int).SetUint64(em.maxBlockSizeGrowthSpeedDenominator))
	growth.Add(growth, new(uint256.Int).SetUint64(em.maxBlockSizeInitial))

	if !growth.IsUint64() {
		return math.MaxUint64
	}
	return growth.Uint64()
}
