package coinbasemanager

import (
	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/domain/consensus/ruleerrors"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/transactionhelper"
	"github.com/pkg/errors"
)

// serializeCoinbaseExtra builds the coinbase extra field out of the height and extra nonce
func (c *coinbaseManager) serializeCoinbaseExtra(height uint64, extraNonce []byte) ([]byte, error) {
	if len(extraNonce) > transactionhelper.MaxExtraNonceSize {
		return nil, errors.Wrapf(ruleerrors.ErrReservedSizeExceeded,
			"extra nonce is %d bytes long while the maximum is %d", len(extraNonce), transactionhelper.MaxExtraNonceSize)
	}

	extra, err := transactionhelper.CoinbaseExtra(height, extraNonce)
	if err != nil {
		return nil, err
	}

	if uint64(len(extra)) > c.minerTxBlobReservedSize {
		return nil, errors.Wrapf(ruleerrors.ErrReservedSizeExceeded,
			"coinbase extra is %d bytes long while only %d are reserved", len(extra), c.minerTxBlobReservedSize)
	}
	return extra, nil
}

func extractCoinbaseData(coinbaseTransaction *externalapi.DomainTransaction) (*externalapi.DomainCoinbaseData, error) {
	coinbaseData, err := transactionhelper.ParseCoinbaseExtra(coinbaseTransaction.Extra)
	if err != nil {
		return nil, errors.Wrapf(ruleerrors.ErrBadCoinbasePayload, "%s", err)
	}
	return coinbaseData, nil
}

// ExtractCoinbaseHeight returns the height written in the coinbase extra field
func (c *coinbaseManager) ExtractCoinbaseHeight(coinbaseTransaction *externalapi.DomainTransaction) (uint64, error) {
	coinbaseData, err := extractCoinbaseData(coinbaseTransaction)
	if err != nil {
		return 0, err
	}
	return coinbaseData.Height, nil
}

// ExtractExtraNonce returns the extra nonce written in the coinbase extra
// field, or nil when it has none
func (c *coinbaseManager) ExtractExtraNonce(coinbaseTransaction *externalapi.DomainTransaction) ([]byte, error) {
	coinbaseData, err := extractCoinbaseData(coinbaseTransaction)
	if err != nil {
		return nil, err
	}
	return coinbaseData.ExtraNonce, nil
}
