package coinbasemanager

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/bytecoinlabs/currencyd/domain/consensus/model"
	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/domain/consensus/processes/emissionmanager"
	"github.com/bytecoinlabs/currencyd/domain/consensus/ruleerrors"
	"github.com/davecgh/go-spew/spew"
)

const (
	testMinedMoneyUnlockWindow  = 10
	testMinerTxBlobReservedSize = 600
	testFullRewardZone          = 100
)

// newTestCoinbaseManager returns a manager whose base reward is 1000 when
// no coins were generated yet
func newTestCoinbaseManager(dustThreshold uint64, policy ZeroRewardPolicy) model.CoinbaseManager {
	emissionManager := emissionmanager.New(2000, 1, testFullRewardZone, 1000, 1, 1)
	return New(testMinedMoneyUnlockWindow, testMinerTxBlobReservedSize, dustThreshold, policy, emissionManager)
}

func testMinerAddress() *externalapi.AccountPublicAddress {
	return &externalapi.AccountPublicAddress{
		SpendPublicKey: externalapi.PublicKey{1, 2, 3},
		ViewPublicKey:  externalapi.PublicKey{4, 5, 6},
	}
}

func outputAmounts(tx *externalapi.DomainTransaction) []uint64 {
	amounts := make([]uint64, len(tx.Outputs))
	for i, output := range tx.Outputs {
		amounts[i] = output.Amount
	}
	return amounts
}

func TestConstructMinerTx(t *testing.T) {
	tests := []struct {
		name            string
		dustThreshold   uint64
		fee             uint64
		maxOutputs      int
		expectedAmounts []uint64
	}{
		{
			name:            "digits above the dust threshold",
			dustThreshold:   10,
			fee:             234,
			maxOutputs:      10,
			expectedAmounts: []uint64{4, 30, 200, 1000},
		},
		{
			name:            "low digits merged into dust",
			dustThreshold:   100,
			fee:             234,
			maxOutputs:      10,
			expectedAmounts: []uint64{34, 200, 1000},
		},
		{
			name:            "outputs merged down to the maximum",
			dustThreshold:   10,
			fee:             234,
			maxOutputs:      2,
			expectedAmounts: []uint64{4, 1230},
		},
		{
			name:            "single output",
			dustThreshold:   10,
			fee:             234,
			maxOutputs:      1,
			expectedAmounts: []uint64{1234},
		},
		{
			name:            "zero digits are skipped",
			dustThreshold:   0,
			fee:             5,
			maxOutputs:      10,
			expectedAmounts: []uint64{5, 1000},
		},
	}

	for _, test := range tests {
		manager := newTestCoinbaseManager(test.dustThreshold, ZeroRewardSingleOutput)
		minerAddress := testMinerAddress()
		tx, err := manager.ConstructMinerTx(42, 0, 0, 50, test.fee, minerAddress, []byte{7, 7}, test.maxOutputs)
		if err != nil {
			t.Fatalf("%s: ConstructMinerTx: %+v", test.name, err)
		}

		amounts := outputAmounts(tx)
		if !reflect.DeepEqual(amounts, test.expectedAmounts) {
			t.Errorf("%s: expected amounts %v, got %v", test.name, test.expectedAmounts, amounts)
		}
		if !tx.IsCoinbase() || tx.Inputs[0].Height != 42 {
			t.Errorf("%s: unexpected inputs %s", test.name, spew.Sdump(tx.Inputs))
		}
		if tx.UnlockTime != 42+testMinedMoneyUnlockWindow {
			t.Errorf("%s: expected unlock time %d, got %d", test.name, 42+testMinedMoneyUnlockWindow, tx.UnlockTime)
		}
		for _, output := range tx.Outputs {
			if output.Key != minerAddress.SpendPublicKey {
				t.Errorf("%s: output %s does not pay the miner spend key", test.name, output)
			}
		}

		height, err := manager.ExtractCoinbaseHeight(tx)
		if err != nil {
			t.Fatalf("%s: ExtractCoinbaseHeight: %+v", test.name, err)
		}
		if height != 42 {
			t.Errorf("%s: expected extra height 42, got %d", test.name, height)
		}
		extraNonce, err := manager.ExtractExtraNonce(tx)
		if err != nil {
			t.Fatalf("%s: ExtractExtraNonce: %+v", test.name, err)
		}
		if !bytes.Equal(extraNonce, []byte{7, 7}) {
			t.Errorf("%s: expected extra nonce 0707, got %x", test.name, extraNonce)
		}
	}
}

func TestConstructMinerTxZeroReward(t *testing.T) {
	tests := []struct {
		policy          ZeroRewardPolicy
		expectedOutputs int
		expectedErr     error
	}{
		{policy: ZeroRewardSingleOutput, expectedOutputs: 1},
		{policy: ZeroRewardNoOutputs, expectedOutputs: 0},
		{policy: ZeroRewardReject, expectedErr: ruleerrors.ErrBadCoinbaseValue},
	}

	for _, test := range tests {
		manager := newTestCoinbaseManager(10, test.policy)
		tx, err := manager.ConstructMinerTx(1, 0, 2000, 50, 0, testMinerAddress(), nil, 10)
		if test.expectedErr != nil {
			if !errors.Is(err, test.expectedErr) {
				t.Errorf("policy %s: expected error %v, got %v", test.policy, test.expectedErr, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("policy %s: ConstructMinerTx: %+v", test.policy, err)
		}
		if len(tx.Outputs) != test.expectedOutputs {
			t.Errorf("policy %s: expected %d outputs, got %d", test.policy, test.expectedOutputs, len(tx.Outputs))
		}
		if sum, _ := tx.OutputsSum(); sum != 0 {
			t.Errorf("policy %s: expected a zero outputs sum, got %d", test.policy, sum)
		}
	}
}

func TestConstructMinerTxErrors(t *testing.T) {
	emissionManager := emissionmanager.New(2000, 1, testFullRewardZone, 1000, 1, 1)
	tinyReserve := New(testMinedMoneyUnlockWindow, 4, 10, ZeroRewardSingleOutput, emissionManager)
	manager := newTestCoinbaseManager(10, ZeroRewardSingleOutput)

	_, err := manager.ConstructMinerTx(1, 0, 0, 50, 0, testMinerAddress(), nil, 0)
	if err == nil {
		t.Errorf("ConstructMinerTx is expected to fail without room for outputs")
	}

	_, err = manager.ConstructMinerTx(1, 0, 0, 50, 0, testMinerAddress(), make([]byte, 256), 10)
	if !errors.Is(err, ruleerrors.ErrReservedSizeExceeded) {
		t.Errorf("an oversized extra nonce is expected to give ErrReservedSizeExceeded, got %v", err)
	}

	_, err = tinyReserve.ConstructMinerTx(1, 0, 0, 50, 0, testMinerAddress(), []byte{1, 2, 3}, 10)
	if !errors.Is(err, ruleerrors.ErrReservedSizeExceeded) {
		t.Errorf("an extra exceeding the reserved size is expected to give ErrReservedSizeExceeded, got %v", err)
	}

	_, err = manager.ConstructMinerTx(1, 0, 0, 2*testFullRewardZone+1, 0, testMinerAddress(), nil, 10)
	if !errors.Is(err, ruleerrors.ErrBlockTooBig) {
		t.Errorf("an oversized block is expected to give ErrBlockTooBig, got %v", err)
	}

	// The reward is checked before the extra field is built
	_, err = manager.ConstructMinerTx(1, 0, 0, 2*testFullRewardZone+1, 0, testMinerAddress(), make([]byte, 256), 10)
	if !errors.Is(err, ruleerrors.ErrBlockTooBig) {
		t.Errorf("an oversized block with an oversized extra nonce is expected to give ErrBlockTooBig, got %v", err)
	}
}

func TestValidateMinerTx(t *testing.T) {
	manager := newTestCoinbaseManager(10, ZeroRewardSingleOutput)
	rewardContext := &model.RewardContext{
		Height:           42,
		CurrentBlockSize: 50,
		Fee:              234,
	}
	valid, err := manager.ConstructMinerTx(rewardContext.Height, rewardContext.MedianSize,
		rewardContext.AlreadyGeneratedCoins, rewardContext.CurrentBlockSize, rewardContext.Fee,
		testMinerAddress(), nil, 10)
	if err != nil {
		t.Fatalf("ConstructMinerTx: %+v", err)
	}
	err = manager.ValidateMinerTx(valid, rewardContext)
	if err != nil {
		t.Fatalf("ValidateMinerTx: a freshly constructed coinbase is expected to be valid: %+v", err)
	}

	tests := []struct {
		name        string
		mutate      func(tx *externalapi.DomainTransaction)
		expectedErr error
	}{
		{
			name: "no generation input",
			mutate: func(tx *externalapi.DomainTransaction) {
				tx.Inputs[0].Type = externalapi.InputTypeKey
			},
			expectedErr: ruleerrors.ErrFirstTxNotCoinbase,
		},
		{
			name: "wrong input height",
			mutate: func(tx *externalapi.DomainTransaction) {
				tx.Inputs[0].Height++
			},
			expectedErr: ruleerrors.ErrBadCoinbaseHeight,
		},
		{
			name: "wrong extra height",
			mutate: func(tx *externalapi.DomainTransaction) {
				tx.Extra = []byte{0x05, 41}
			},
			expectedErr: ruleerrors.ErrBadCoinbaseHeight,
		},
		{
			name: "malformed extra",
			mutate: func(tx *externalapi.DomainTransaction) {
				tx.Extra = []byte{0x07}
			},
			expectedErr: ruleerrors.ErrBadCoinbasePayload,
		},
		{
			name: "wrong unlock time",
			mutate: func(tx *externalapi.DomainTransaction) {
				tx.UnlockTime--
			},
			expectedErr: ruleerrors.ErrBadCoinbaseUnlockTime,
		},
		{
			name: "overpaying",
			mutate: func(tx *externalapi.DomainTransaction) {
				tx.Outputs[0].Amount++
			},
			expectedErr: ruleerrors.ErrBadCoinbaseValue,
		},
		{
			name: "underpaying",
			mutate: func(tx *externalapi.DomainTransaction) {
				tx.Outputs = tx.Outputs[1:]
			},
			expectedErr: ruleerrors.ErrBadCoinbaseValue,
		},
		{
			name: "overflowing outputs",
			mutate: func(tx *externalapi.DomainTransaction) {
				tx.Outputs[0].Amount = ^uint64(0)
			},
			expectedErr: ruleerrors.ErrBadCoinbaseValue,
		},
	}

	for _, test := range tests {
		tx := valid.Clone()
		test.mutate(tx)
		err := manager.ValidateMinerTx(tx, rewardContext)
		if !errors.Is(err, test.expectedErr) {
			t.Errorf("%s: expected error %v, got %v", test.name, test.expectedErr, err)
		}
	}
}

func TestZeroRewardPolicyFromString(t *testing.T) {
	for _, policy := range []ZeroRewardPolicy{ZeroRewardSingleOutput, ZeroRewardNoOutputs, ZeroRewardReject} {
		parsed, ok := ZeroRewardPolicyFromString(policy.String())
		if !ok || parsed != policy {
			t.Errorf("ZeroRewardPolicyFromString(%q): expected %d, got %d (ok=%t)", policy, policy, parsed, ok)
		}
	}
	if _, ok := ZeroRewardPolicyFromString("burn"); ok {
		t.Errorf("ZeroRewardPolicyFromString is expected to reject an unknown policy")
	}
}
