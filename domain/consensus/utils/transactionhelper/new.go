package transactionhelper

import (
	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/constants"
)

// NewCoinbaseTransaction returns a new coinbase transaction for the given height,
// spending a single generation input
func NewCoinbaseTransaction(height uint64, unlockTime uint64,
	outputs []*externalapi.DomainTransactionOutput, extra []byte) *externalapi.DomainTransaction {

	return &externalapi.DomainTransaction{
		Version:    constants.TransactionVersion,
		UnlockTime: unlockTime,
		Inputs: []*externalapi.DomainTransactionInput{{
			Type:   externalapi.InputTypeGeneration,
			Height: height,
		}},
		Outputs: outputs,
		Extra:   extra,
	}
}
