package transactionvalidator

import (
	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/domain/consensus/ruleerrors"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/serialization"
	"github.com/pkg/errors"
)

// CheckTransactionSize ensures the serialized transaction fits in maxTxSize
func (v *transactionValidator) CheckTransactionSize(tx *externalapi.DomainTransaction) error {
	txSize, err := serialization.TransactionSize(tx)
	if err != nil {
		return err
	}
	if txSize > v.maxTxSize {
		log.Debugf("Rejecting a transaction of %d bytes", txSize)
		return errors.Wrapf(ruleerrors.ErrTxTooBig, "transaction size of %d is higher than the maximum of %d",
			txSize, v.maxTxSize)
	}
	return nil
}
