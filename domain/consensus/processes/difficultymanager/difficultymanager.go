package difficultymanager

import (
	"math"
	"sort"

	"github.com/bytecoinlabs/currencyd/domain/consensus/model"
	utilMath "github.com/bytecoinlabs/currencyd/util/math"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// minimumDifficulty is returned when there is not enough data to retarget
const minimumDifficulty = 1

// difficultyManager computes the difficulty of the next block from the
// timestamps and cumulative difficulties of the blocks before it
type difficultyManager struct {
	difficultyTarget uint64
	blocksCount      uint64
	difficultyCut    uint64
}

// New instantiates a new DifficultyManager
func New(difficultyTarget uint64, difficultyWindow uint64, difficultyLag uint64,
	difficultyCut uint64) model.DifficultyManager {

	return &difficultyManager{
		difficultyTarget: difficultyTarget,
		blocksCount:      difficultyWindow + difficultyLag,
		difficultyCut:    difficultyCut,
	}
}

// NextDifficulty returns the difficulty the next block must meet. Both
// slices are ordered oldest first and must have the same length.
func (dm *difficultyManager) NextDifficulty(timestamps []uint64, cumulativeDifficulties []uint64) (uint64, error) {
	if len(timestamps) != len(cumulativeDifficulties) {
		return 0, errors.Errorf("got %d timestamps and %d cumulative difficulties",
			len(timestamps), len(cumulativeDifficulties))
	}
	if len(timestamps) < 2 {
		return minimumDifficulty, nil
	}

	count := utilMath.MinUint64(uint64(len(timestamps)), dm.blocksCount)
	if count < 2 {
		return minimumDifficulty, nil
	}
	start := uint64(len(timestamps)) - count
	cumulativeDifficulties = cumulativeDifficulties[start:]

	sortedTimestamps := make([]uint64, count)
	copy(sortedTimestamps, timestamps[start:])
	sort.Slice(sortedTimestamps, func(i, j int) bool { return sortedTimestamps[i] < sortedTimestamps[j] })

	cut := utilMath.MinUint64(dm.difficultyCut, (count-1)/2)
	first, last := cut, count-cut-1

	timeSpan := sortedTimestamps[last] - sortedTimestamps[first]
	if timeSpan == 0 {
		timeSpan = 1
	}

	if cumulativeDifficulties[last] < cumulativeDifficulties[first] {
		return 0, errors.Errorf("cumulative difficulty decreases from %d to %d",
			cumulativeDifficulties[first], cumulativeDifficulties[last])
	}
	difficultySpan := cumulativeDifficulties[last] - cumulativeDifficulties[first]

	difficulty := calculateDifficulty(difficultySpan, dm.difficultyTarget, timeSpan)
	log.Tracef("Next difficulty is %d: %d work over %d seconds in the %d retained samples",
		difficulty, difficultySpan, timeSpan, last-first+1)
	return difficulty, nil
}

// calculateDifficulty returns ceil(difficultySpan * target / timeSpan),
// floored to minimumDifficulty and saturated to the largest uint64
func calculateDifficulty(difficultySpan uint64, target uint64, timeSpan uint64) uint64 {
	result := new(uint256.Int).SetUint64(difficultySpan)
	result.Mul(result, new(uint256.Int).SetUint64(target))
	result.Add(result, new(uint256.Int).SetUint64(timeSpan-1))
	result.Div(result, new(uint256.Int).SetUint64(timeSpan))

	if !result.IsUint64() {
		return math.MaxUint64
	}
	difficulty := result.Uint64()
	if difficulty < minimumDifficulty {
		return minimumDifficulty
	}
	return difficulty
}
