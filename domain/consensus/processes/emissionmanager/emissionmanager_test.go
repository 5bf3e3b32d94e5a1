package emissionmanager

import (
	"errors"
	"math"
	"testing"

	"github.com/bytecoinlabs/currencyd/domain/consensus/ruleerrors"
)

const (
	fullRewardZone  = 20000
	initialSize     = 20 * 1024
	growthNumerator = 100 * 1024
	growthDenominator = 365 * 24 * 60 * 60 / 120
)

func newTestEmissionManager(moneySupply uint64, emissionSpeedFactor uint) *emissionManager {
	return New(moneySupply, emissionSpeedFactor, fullRewardZone, initialSize,
		growthNumerator, growthDenominator).(*emissionManager)
}

func TestBaseReward(t *testing.T) {
	tests := []struct {
		name                  string
		moneySupply           uint64
		emissionSpeedFactor   uint
		alreadyGeneratedCoins uint64
		expected              uint64
	}{
		{"max supply, speed 20", math.MaxUint64, 20, 0, math.MaxUint64 >> 20},
		{"max supply, speed 18", math.MaxUint64, 18, 0, 70368744177663},
		{"half emitted", 1 << 40, 10, 1 << 39, 1 << 29},
		{"last coins", 1 << 40, 10, 1<<40 - 1023, 0},
		{"fully emitted", 1 << 40, 10, 1 << 40, 0},
		{"over emitted", 1 << 40, 10, 1<<40 + 1, 0},
		{"max speed factor", math.MaxUint64, 64, 0, 0},
	}

	for _, test := range tests {
		em := newTestEmissionManager(test.moneySupply, test.emissionSpeedFactor)
		reward := em.BaseReward(test.alreadyGeneratedCoins, 0)
		if reward != test.expected {
			t.Errorf("%s: expected base reward %d, got %d", test.name, test.expected, reward)
		}
	}
}

func TestBaseRewardIsNonIncreasing(t *testing.T) {
	em := newTestEmissionManager(math.MaxUint64, 18)
	previous := em.BaseReward(0, 0)
	alreadyGenerated := uint64(0)
	for height := uint64(1); height < 10000; height++ {
		alreadyGenerated += previous
		reward := em.BaseReward(alreadyGenerated, height)
		if reward > previous {
			t.Fatalf("height %d: base reward increased from %d to %d", height, previous, reward)
		}
		previous = reward
	}
}

func TestBlockReward(t *testing.T) {
	// A supply of 1000 << 10 with speed factor 10 makes the base reward 1000
	const moneySupply = 1000 << 10
	em := newTestEmissionManager(moneySupply, 10)

	tests := []struct {
		name                   string
		medianSize             uint64
		currentBlockSize       uint64
		fee                    uint64
		expectedReward         uint64
		expectedEmissionChange int64
		expectedErr            error
	}{
		{name: "empty block", medianSize: 0, currentBlockSize: 0, fee: 0,
			expectedReward: 1000, expectedEmissionChange: 1000},
		{name: "fees are not emission", medianSize: 100, currentBlockSize: 100, fee: 15,
			expectedReward: 1015, expectedEmissionChange: 1000},
		{name: "at the effective median", medianSize: 10, currentBlockSize: fullRewardZone,
			expectedReward: 1000, expectedEmissionChange: 1000},
		{name: "one and a half times the median", medianSize: 10, currentBlockSize: 30000, fee: 1,
			expectedReward: 751, expectedEmissionChange: 750},
		{name: "penalty truncates", medianSize: 10, currentBlockSize: 30001,
			expectedReward: 749, expectedEmissionChange: 749},
		{name: "median above the full reward zone", medianSize: 40000, currentBlockSize: 60000,
			expectedReward: 750, expectedEmissionChange: 750},
		{name: "twice the median", medianSize: 10, currentBlockSize: 2 * fullRewardZone, fee: 7,
			expectedReward: 7, expectedEmissionChange: 0},
		{name: "above twice the median", medianSize: 10, currentBlockSize: 2*fullRewardZone + 1,
			expectedErr: ruleerrors.ErrBlockTooBig},
		{name: "fee overflow", medianSize: 10, currentBlockSize: 10, fee: math.MaxUint64,
			expectedErr: ruleerrors.ErrBadCoinbaseValue},
		{name: "huge median", medianSize: math.MaxUint64, currentBlockSize: math.MaxUint64,
			expectedReward: 1000, expectedEmissionChange: 1000},
	}

	for _, test := range tests {
		reward, emissionChange, err := em.BlockReward(1, test.medianSize, test.currentBlockSize, 0, test.fee)
		if test.expectedErr != nil {
			if !errors.Is(err, test.expectedErr) {
				t.Errorf("%s: expected %v, got %v", test.name, test.expectedErr, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: BlockReward: %+v", test.name, err)
			continue
		}
		if reward != test.expectedReward || emissionChange != test.expectedEmissionChange {
			t.Errorf("%s: expected reward %d and emission change %d, got %d and %d", test.name,
				test.expectedReward, test.expectedEmissionChange, reward, emissionChange)
		}
	}
}

func TestBlockTooBigBoundary(t *testing.T) {
	em := newTestEmissionManager(math.MaxUint64, 18)
	for _, medianSize := range []uint64{0, fullRewardZone - 1, fullRewardZone, 50000, 1 << 40} {
		effectiveMedian := medianSize
		if effectiveMedian < fullRewardZone {
			effectiveMedian = fullRewardZone
		}

		_, _, err := em.BlockReward(0, medianSize, 2*effectiveMedian, 0, 0)
		if err != nil {
			t.Fatalf("median %d: a block of twice the effective median is expected to be accepted: %+v",
				medianSize, err)
		}
		_, _, err = em.BlockReward(0, medianSize, 2*effectiveMedian+1, 0, 0)
		if !errors.Is(err, ruleerrors.ErrBlockTooBig) {
			t.Fatalf("median %d: expected ErrBlockTooBig, got %v", medianSize, err)
		}
	}
}

func TestMaxBlockCumulativeSize(t *testing.T) {
	tests := []struct {
		height   uint64
		expected uint64
	}{
		{0, initialSize},
		{1, initialSize},
		{3, initialSize + 1},
		{growthDenominator, initialSize + growthNumerator},
		{10 * growthDenominator, initialSize + 10*growthNumerator},
	}

	em := newTestEmissionManager(math.MaxUint64, 18)
	for _, test := range tests {
		size := em.MaxBlockCumulativeSize(test.height)
		if size != test.expected {
			t.Errorf("height %d: expected %d, got %d", test.height, test.expected, size)
		}
	}

	saturating := New(math.MaxUint64, 18, fullRewardZone, math.MaxUint64, 1, 1)
	if size := saturating.MaxBlockCumulativeSize(1); size != math.MaxUint64 {
		t.Fatalf("expected the block size limit to saturate, got %d", size)
	}
	large := New(math.MaxUint64, 18, fullRewardZone, 0, math.MaxUint64, 4)
	if size := large.MaxBlockCumulativeSize(2); size != math.MaxInt64 {
		t.Fatalf("expected a wide intermediate product, got %d", size)
	}
}
