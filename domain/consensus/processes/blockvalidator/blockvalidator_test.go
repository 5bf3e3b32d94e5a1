package blockvalidator

import (
	"errors"
	"testing"

	"github.com/bytecoinlabs/currencyd/domain/consensus/model"
	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/domain/consensus/processes/coinbasemanager"
	"github.com/bytecoinlabs/currencyd/domain/consensus/processes/emissionmanager"
	"github.com/bytecoinlabs/currencyd/domain/consensus/ruleerrors"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/constants"
)

const (
	testMaxBlockBlobSize     = 1500
	testTimestampCheckWindow = 3
	testBlockFutureTimeLimit = 60
)

// quarterRangeHasher returns 2^254 for any input, which meets difficulties
// up to 4
type quarterRangeHasher struct{}

func (quarterRangeHasher) Hash([]byte) *externalapi.DomainHash {
	return externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{0x40})
}

func newTestBlockValidator() (model.BlockValidator, model.CoinbaseManager) {
	// The cumulative size limit is 1000 + height, and the base reward is 1000
	emissionManager := emissionmanager.New(2000, 1, 100, 1000, 1, 1)
	coinbaseManager := coinbasemanager.New(10, 600, 10, coinbasemanager.ZeroRewardSingleOutput, emissionManager)
	validator := New(testMaxBlockBlobSize, testTimestampCheckWindow, testBlockFutureTimeLimit,
		quarterRangeHasher{}, emissionManager, coinbaseManager)
	return validator, coinbaseManager
}

func TestCheckBlockTimestamp(t *testing.T) {
	validator, _ := newTestBlockValidator()

	tests := []struct {
		name               string
		timestamp          uint64
		previousTimestamps []uint64
		now                uint64
		expectedErr        error
	}{
		{"at the future limit", 1060, nil, 1000, nil},
		{"past the future limit", 1061, nil, 1000, ruleerrors.ErrTimeTooMuchInTheFuture},
		{"in the past", 0, nil, 1000, nil},
		{"too few previous timestamps", 0, []uint64{100, 200}, 1000, nil},
		{"at the median", 20, []uint64{1, 2, 3, 10, 30, 20}, 1000, nil},
		{"below the median", 19, []uint64{1, 2, 3, 10, 30, 20}, 1000, ruleerrors.ErrTimeTooOld},
		{"only the most recent window counts", 5, []uint64{100, 200, 300, 1, 5, 9}, 1000, nil},
	}

	for _, test := range tests {
		err := validator.CheckBlockTimestamp(test.timestamp, test.previousTimestamps, test.now)
		if !errors.Is(err, test.expectedErr) {
			t.Errorf("%s: expected error %v, got %v", test.name, test.expectedErr, err)
		}
	}
}

func TestCheckBlockCumulativeSize(t *testing.T) {
	validator, _ := newTestBlockValidator()

	tests := []struct {
		height      uint64
		size        uint64
		expectedErr error
	}{
		{0, 1000, nil},
		{0, 1001, ruleerrors.ErrBlockSizeTooHigh},
		{100, 1100, nil},
		{100, 1101, ruleerrors.ErrBlockSizeTooHigh},
		{1000, testMaxBlockBlobSize, nil},
		{1000, testMaxBlockBlobSize + 1, ruleerrors.ErrBlockSizeTooHigh},
	}

	for _, test := range tests {
		err := validator.CheckBlockCumulativeSize(test.height, test.size)
		if !errors.Is(err, test.expectedErr) {
			t.Errorf("CheckBlockCumulativeSize(%d, %d): expected error %v, got %v",
				test.height, test.size, test.expectedErr, err)
		}
	}
}

func TestValidateBlock(t *testing.T) {
	validator, coinbaseManager := newTestBlockValidator()

	blockContext := &model.BlockContext{
		RewardContext: model.RewardContext{
			Height:           5,
			CurrentBlockSize: 50,
		},
		Difficulty:         4,
		PreviousTimestamps: []uint64{990, 995, 999},
		Now:                1000,
	}
	coinbase, err := coinbaseManager.ConstructMinerTx(blockContext.Height, blockContext.MedianSize,
		blockContext.AlreadyGeneratedCoins, blockContext.CurrentBlockSize, blockContext.Fee,
		&externalapi.AccountPublicAddress{SpendPublicKey: externalapi.PublicKey{9}}, nil, 10)
	if err != nil {
		t.Fatalf("ConstructMinerTx: %+v", err)
	}
	validBlock := &externalapi.DomainBlock{
		Header: &externalapi.DomainBlockHeader{
			MajorVersion: constants.BlockMajorVersion,
			MinorVersion: constants.BlockMinorVersion,
			Timestamp:    1000,
		},
		CoinbaseTransaction: coinbase,
		TransactionHashes:   []*externalapi.DomainHash{},
	}

	err = validator.ValidateBlock(validBlock, blockContext)
	if err != nil {
		t.Fatalf("ValidateBlock: %+v", err)
	}

	tests := []struct {
		name        string
		mutate      func(block *externalapi.DomainBlock, blockContext *model.BlockContext)
		expectedErr error
	}{
		{
			name: "unknown major version",
			mutate: func(block *externalapi.DomainBlock, _ *model.BlockContext) {
				block.Header.MajorVersion++
			},
			expectedErr: ruleerrors.ErrBlockVersionIsUnknown,
		},
		{
			name: "timestamp in the future",
			mutate: func(block *externalapi.DomainBlock, _ *model.BlockContext) {
				block.Header.Timestamp = 2000
			},
			expectedErr: ruleerrors.ErrTimeTooMuchInTheFuture,
		},
		{
			name: "timestamp below the median",
			mutate: func(block *externalapi.DomainBlock, _ *model.BlockContext) {
				block.Header.Timestamp = 994
			},
			expectedErr: ruleerrors.ErrTimeTooOld,
		},
		{
			name: "block too large",
			mutate: func(_ *externalapi.DomainBlock, blockContext *model.BlockContext) {
				blockContext.CurrentBlockSize = 1006
			},
			expectedErr: ruleerrors.ErrBlockSizeTooHigh,
		},
		{
			name: "difficulty not met",
			mutate: func(_ *externalapi.DomainBlock, blockContext *model.BlockContext) {
				blockContext.Difficulty = 5
			},
			expectedErr: ruleerrors.ErrInvalidPoW,
		},
		{
			name: "zero difficulty",
			mutate: func(_ *externalapi.DomainBlock, blockContext *model.BlockContext) {
				blockContext.Difficulty = 0
			},
			expectedErr: ruleerrors.ErrUnexpectedDifficulty,
		},
		{
			name: "coinbase pays too much",
			mutate: func(block *externalapi.DomainBlock, _ *model.BlockContext) {
				block.CoinbaseTransaction.Outputs[0].Amount++
			},
			expectedErr: ruleerrors.ErrBadCoinbaseValue,
		},
		{
			name: "coinbase of another height",
			mutate: func(_ *externalapi.DomainBlock, blockContext *model.BlockContext) {
				blockContext.Height++
			},
			expectedErr: ruleerrors.ErrBadCoinbaseHeight,
		},
	}

	for _, test := range tests {
		block := validBlock.Clone()
		contextCopy := *blockContext
		test.mutate(block, &contextCopy)
		err := validator.ValidateBlock(block, &contextCopy)
		if !errors.Is(err, test.expectedErr) {
			t.Errorf("%s: expected error %v, got %v", test.name, test.expectedErr, err)
		}
	}

	var proofOfWorkErr ruleerrors.ErrProofOfWorkNotMet
	err = validator.CheckProofOfWork(validBlock, 8)
	if !errors.As(err, &proofOfWorkErr) {
		t.Fatalf("expected ErrProofOfWorkNotMet, got %v", err)
	}
	if proofOfWorkErr.Difficulty != 8 {
		t.Fatalf("expected the error to carry difficulty 8, got %d", proofOfWorkErr.Difficulty)
	}
}
