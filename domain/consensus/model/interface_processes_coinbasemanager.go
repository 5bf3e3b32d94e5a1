package model

import "github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"

// CoinbaseManager exposes methods for handling blocks'
// coinbase transactions
type CoinbaseManager interface {
	ConstructMinerTx(height, medianSize, alreadyGeneratedCoins, currentBlockSize, fee uint64,
		minerAddress *externalapi.AccountPublicAddress, extraNonce []byte, maxOutputs int) (
		*externalapi.DomainTransaction, error)
	ExtractCoinbaseHeight(coinbaseTransaction *externalapi.DomainTransaction) (uint64, error)
	ExtractExtraNonce(coinbaseTransaction *externalapi.DomainTransaction) ([]byte, error)
	ValidateMinerTx(coinbaseTransaction *externalapi.DomainTransaction, rewardContext *RewardContext) error
}
