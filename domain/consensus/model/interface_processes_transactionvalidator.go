package model

import (
	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
)

// TransactionValidator exposes a set of validation classes, after which
// it's possible to determine whether a transaction is valid
type TransactionValidator interface {
	IsTxSpendTimeUnlocked(unlockTime uint64, currentHeight uint64, now uint64) bool
	CheckTransactionSize(tx *externalapi.DomainTransaction) error
}
