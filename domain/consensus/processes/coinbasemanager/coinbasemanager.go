package coinbasemanager

import (
	"fmt"

	"github.com/bytecoinlabs/currencyd/domain/consensus/model"
	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/domain/consensus/ruleerrors"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/transactionhelper"
	"github.com/pkg/errors"
)

// ZeroRewardPolicy decides what a coinbase paying no reward looks like
type ZeroRewardPolicy int

const (
	// ZeroRewardSingleOutput makes a zero reward coinbase pay a single zero amount output
	ZeroRewardSingleOutput ZeroRewardPolicy = iota

	// ZeroRewardNoOutputs makes a zero reward coinbase have no outputs
	ZeroRewardNoOutputs

	// ZeroRewardReject refuses to construct a zero reward coinbase
	ZeroRewardReject
)

var zeroRewardPolicyStrings = map[ZeroRewardPolicy]string{
	ZeroRewardSingleOutput: "single-output",
	ZeroRewardNoOutputs:    "no-outputs",
	ZeroRewardReject:       "reject",
}

func (p ZeroRewardPolicy) String() string {
	if s, ok := zeroRewardPolicyStrings[p]; ok {
		return s
	}
	return fmt.Sprintf("unknown policy (%d)", int(p))
}

// ZeroRewardPolicyFromString returns the policy named s
func ZeroRewardPolicyFromString(s string) (ZeroRewardPolicy, bool) {
	for policy, name := range zeroRewardPolicyStrings {
		if name == s {
			return policy, true
		}
	}
	return 0, false
}

type coinbaseManager struct {
	minedMoneyUnlockWindow  uint64
	minerTxBlobReservedSize uint64
	defaultDustThreshold    uint64
	zeroRewardPolicy        ZeroRewardPolicy

	emissionManager model.EmissionManager
}

// New instantiates a new CoinbaseManager
func New(
	minedMoneyUnlockWindow uint64,
	minerTxBlobReservedSize uint64,
	defaultDustThreshold uint64,
	zeroRewardPolicy ZeroRewardPolicy,
	emissionManager model.EmissionManager) model.CoinbaseManager {

	return &coinbaseManager{
		minedMoneyUnlockWindow:  minedMoneyUnlockWindow,
		minerTxBlobReservedSize: minerTxBlobReservedSize,
		defaultDustThreshold:    defaultDustThreshold,
		zeroRewardPolicy:        zeroRewardPolicy,

		emissionManager: emissionManager,
	}
}

// ConstructMinerTx builds the coinbase of a block at the given height, paying
// its whole reward to minerAddress in at most maxOutputs outputs
func (c *coinbaseManager) ConstructMinerTx(height, medianSize, alreadyGeneratedCoins, currentBlockSize, fee uint64,
	minerAddress *externalapi.AccountPublicAddress, extraNonce []byte, maxOutputs int) (
	*externalapi.DomainTransaction, error) {

	if maxOutputs < 1 {
		return nil, errors.Errorf("a coinbase needs room for at least one output, got %d", maxOutputs)
	}

	reward, _, err := c.emissionManager.BlockReward(height, medianSize, currentBlockSize, alreadyGeneratedCoins, fee)
	if err != nil {
		return nil, err
	}

	extra, err := c.serializeCoinbaseExtra(height, extraNonce)
	if err != nil {
		return nil, err
	}

	amounts := splitReward(reward, c.defaultDustThreshold, maxOutputs)
	if len(amounts) == 0 {
		switch c.zeroRewardPolicy {
		case ZeroRewardSingleOutput:
			amounts = []uint64{0}
		case ZeroRewardNoOutputs:
		default:
			return nil, errors.Wrapf(ruleerrors.ErrBadCoinbaseValue,
				"the coinbase at height %d pays no reward", height)
		}
	}

	outputs := make([]*externalapi.DomainTransactionOutput, len(amounts))
	for i, amount := range amounts {
		outputs[i] = &externalapi.DomainTransactionOutput{
			Amount: amount,
			Key:    minerAddress.SpendPublicKey,
		}
	}

	log.Debugf("Constructed a coinbase at height %d paying %d in %d outputs", height, reward, len(outputs))
	return transactionhelper.NewCoinbaseTransaction(height, height+c.minedMoneyUnlockWindow, outputs, extra), nil
}

// splitReward decomposes reward into its non-zero decimal digits, each
// multiplied by its order of magnitude. The lowest digits are merged into
// a single dust amount as long as it stays below dustThreshold. The highest
// amounts are then merged into each other until at most maxOutputs remain.
func splitReward(reward uint64, dustThreshold uint64, maxOutputs int) []uint64 {
	var amounts []uint64
	dust := uint64(0)
	isDustHandled := false
	order := uint64(1)
	for remaining := reward; remaining != 0; remaining /= 10 {
		chunk := (remaining % 10) * order
		order *= 10

		if dust+chunk <= dustThreshold {
			dust += chunk
			continue
		}
		if !isDustHandled && dust != 0 {
			amounts = append(amounts, dust)
			isDustHandled = true
		}
		if chunk != 0 {
			amounts = append(amounts, chunk)
		}
	}
	if !isDustHandled && dust != 0 {
		amounts = append(amounts, dust)
	}

	for len(amounts) > maxOutputs {
		last := len(amounts) - 1
		amounts[last-1] += amounts[last]
		amounts = amounts[:last]
	}
	return amounts
}

// ValidateMinerTx checks that a received coinbase was built for the given
// reward context and pays exactly the expected reward
func (c *coinbaseManager) ValidateMinerTx(coinbaseTransaction *externalapi.DomainTransaction,
	rewardContext *model.RewardContext) error {

	if !coinbaseTransaction.IsCoinbase() {
		return errors.Wrapf(ruleerrors.ErrFirstTxNotCoinbase,
			"the coinbase must have exactly one generation input")
	}

	if coinbaseTransaction.Inputs[0].Height != rewardContext.Height {
		return errors.Wrapf(ruleerrors.ErrBadCoinbaseHeight, "the generation input height is %d, expected %d",
			coinbaseTransaction.Inputs[0].Height, rewardContext.Height)
	}

	extraHeight, err := c.ExtractCoinbaseHeight(coinbaseTransaction)
	if err != nil {
		return err
	}
	if extraHeight != rewardContext.Height {
		return errors.Wrapf(ruleerrors.ErrBadCoinbaseHeight, "the coinbase extra height is %d, expected %d",
			extraHeight, rewardContext.Height)
	}

	expectedUnlockTime := rewardContext.Height + c.minedMoneyUnlockWindow
	if coinbaseTransaction.UnlockTime != expectedUnlockTime {
		return errors.Wrapf(ruleerrors.ErrBadCoinbaseUnlockTime, "the coinbase unlock time is %d, expected %d",
			coinbaseTransaction.UnlockTime, expectedUnlockTime)
	}

	reward, _, err := c.emissionManager.BlockReward(rewardContext.Height, rewardContext.MedianSize,
		rewardContext.CurrentBlockSize, rewardContext.AlreadyGeneratedCoins, rewardContext.Fee)
	if err != nil {
		return err
	}

	outputsSum, overflow := coinbaseTransaction.OutputsSum()
	if overflow {
		return errors.Wrapf(ruleerrors.ErrBadCoinbaseValue, "the coinbase outputs sum overflows")
	}
	if outputsSum != reward {
		return errors.Wrapf(ruleerrors.ErrBadCoinbaseValue, "the coinbase pays %d while the block reward is %d",
			outputsSum, reward)
	}
	if reward == 0 && c.zeroRewardPolicy == ZeroRewardReject {
		return errors.Wrapf(ruleerrors.ErrBadCoinbaseValue, "the coinbase pays no reward")
	}
	return nil
}
