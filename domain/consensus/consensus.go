package consensus

import (
	"github.com/bytecoinlabs/currencyd/domain/consensus/model"
	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/consensushashing"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/pow"
	"github.com/bytecoinlabs/currencyd/domain/currency"
	"github.com/bytecoinlabs/currencyd/infrastructure/logger"
)

// Consensus applies the rules of one currency to blocks and transactions
type Consensus interface {
	Currency() *currency.Currency

	NextDifficulty(timestamps []uint64, cumulativeDifficulties []uint64) (uint64, error)
	BaseReward(alreadyGeneratedCoins uint64, height uint64) uint64
	BlockReward(rewardContext *model.RewardContext) (reward uint64, emissionChange int64, err error)
	MaxBlockCumulativeSize(height uint64) uint64

	ConstructMinerTx(rewardContext *model.RewardContext, minerAddress *externalapi.AccountPublicAddress,
		extraNonce []byte, maxOutputs int) (*externalapi.DomainTransaction, error)
	ExtractCoinbaseData(coinbaseTransaction *externalapi.DomainTransaction) (*externalapi.DomainCoinbaseData, error)

	ValidateBlock(block *externalapi.DomainBlock, blockContext *model.BlockContext) error
	ValidateTransaction(tx *externalapi.DomainTransaction) error
	IsTxSpendTimeUnlocked(unlockTime uint64, currentHeight uint64, now uint64) bool

	BlockHash(block *externalapi.DomainBlock) (*externalapi.DomainHash, error)
	ProofOfWorkHash(block *externalapi.DomainBlock) (*externalapi.DomainHash, error)
}

type consensus struct {
	currency *currency.Currency
	hasher   pow.Hasher

	difficultyManager    model.DifficultyManager
	emissionManager      model.EmissionManager
	coinbaseManager      model.CoinbaseManager
	blockValidator       model.BlockValidator
	transactionValidator model.TransactionValidator
}

// Currency returns the parameters this consensus enforces
func (s *consensus) Currency() *currency.Currency {
	return s.currency
}

// NextDifficulty returns the difficulty the next block must meet given the
// timestamps and cumulative difficulties of the previous blocks
func (s *consensus) NextDifficulty(timestamps []uint64, cumulativeDifficulties []uint64) (uint64, error) {
	return s.difficultyManager.NextDifficulty(timestamps, cumulativeDifficulties)
}

func (s *consensus) BaseReward(alreadyGeneratedCoins uint64, height uint64) uint64 {
	return s.emissionManager.BaseReward(alreadyGeneratedCoins, height)
}

func (s *consensus) BlockReward(rewardContext *model.RewardContext) (reward uint64, emissionChange int64, err error) {
	return s.emissionManager.BlockReward(rewardContext.Height, rewardContext.MedianSize,
		rewardContext.CurrentBlockSize, rewardContext.AlreadyGeneratedCoins, rewardContext.Fee)
}

func (s *consensus) MaxBlockCumulativeSize(height uint64) uint64 {
	return s.emissionManager.MaxBlockCumulativeSize(height)
}

// ConstructMinerTx builds the coinbase of a block template
func (s *consensus) ConstructMinerTx(rewardContext *model.RewardContext,
	minerAddress *externalapi.AccountPublicAddress, extraNonce []byte, maxOutputs int) (
	*externalapi.DomainTransaction, error) {

	return s.coinbaseManager.ConstructMinerTx(rewardContext.Height, rewardContext.MedianSize,
		rewardContext.AlreadyGeneratedCoins, rewardContext.CurrentBlockSize, rewardContext.Fee,
		minerAddress, extraNonce, maxOutputs)
}

// ExtractCoinbaseData returns the height and extra nonce a coinbase carries
func (s *consensus) ExtractCoinbaseData(coinbaseTransaction *externalapi.DomainTransaction) (
	*externalapi.DomainCoinbaseData, error) {

	height, err := s.coinbaseManager.ExtractCoinbaseHeight(coinbaseTransaction)
	if err != nil {
		return nil, err
	}
	extraNonce, err := s.coinbaseManager.ExtractExtraNonce(coinbaseTransaction)
	if err != nil {
		return nil, err
	}
	return &externalapi.DomainCoinbaseData{Height: height, ExtraNonce: extraNonce}, nil
}

// ValidateBlock validates the given block against the chain described by
// blockContext
func (s *consensus) ValidateBlock(block *externalapi.DomainBlock, blockContext *model.BlockContext) error {
	onEnd := logger.LogAndMeasureExecutionTime(log, "ValidateBlock")
	defer onEnd()

	return s.blockValidator.ValidateBlock(block, blockContext)
}

// ValidateTransaction runs the context free checks on a transaction
func (s *consensus) ValidateTransaction(tx *externalapi.DomainTransaction) error {
	return s.transactionValidator.CheckTransactionSize(tx)
}

func (s *consensus) IsTxSpendTimeUnlocked(unlockTime uint64, currentHeight uint64, now uint64) bool {
	return s.transactionValidator.IsTxSpendTimeUnlocked(unlockTime, currentHeight, now)
}

// BlockHash returns the identifying hash of a block
func (s *consensus) BlockHash(block *externalapi.DomainBlock) (*externalapi.DomainHash, error) {
	return consensushashing.BlockHash(block)
}

// ProofOfWorkHash returns the digest the block proof of work is checked on
func (s *consensus) ProofOfWorkHash(block *externalapi.DomainBlock) (*externalapi.DomainHash, error) {
	blockHashingBlob, err := consensushashing.BlockHashingBlob(block)
	if err != nil {
		return nil, err
	}
	return s.hasher.Hash(blockHashingBlob), nil
}
