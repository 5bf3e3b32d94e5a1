package transactionhelper

import (
	"bytes"

	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/util/binaryserializer"
	"github.com/pkg/errors"
)

// Tags of the fields a coinbase extra may carry
const (
	ExtraTagPadding    uint8 = 0x00
	ExtraTagExtraNonce uint8 = 0x02
	ExtraTagHeight     uint8 = 0x05
)

// MaxExtraNonceSize is the largest extra nonce a coinbase extra can carry
const MaxExtraNonceSize = 255

// ErrMalformedCoinbaseExtra indicates an extra field that can't be parsed
var ErrMalformedCoinbaseExtra = errors.New("malformed coinbase extra")

// CoinbaseExtra serializes the coinbase extra field: the height, followed by
// the extra nonce when one is given
func CoinbaseExtra(height uint64, extraNonce []byte) ([]byte, error) {
	if len(extraNonce) > MaxExtraNonceSize {
		return nil, errors.Errorf("extra nonce is %d bytes long while the maximum is %d",
			len(extraNonce), MaxExtraNonceSize)
	}

	extra := make([]byte, 0, 1+binaryserializer.UvarintSize(height)+2+len(extraNonce))
	extra = append(extra, ExtraTagHeight)
	extra = binaryserializer.AppendUvarint(extra, height)
	if len(extraNonce) > 0 {
		extra = append(extra, ExtraTagExtraNonce, byte(len(extraNonce)))
		extra = append(extra, extraNonce...)
	}
	return extra, nil
}

// ParseCoinbaseExtra parses an extra field written by CoinbaseExtra. Trailing
// zero padding is allowed.
func ParseCoinbaseExtra(extra []byte) (*externalapi.DomainCoinbaseData, error) {
	reader := bytes.NewReader(extra)
	data := &externalapi.DomainCoinbaseData{}
	hasHeight := false
	hasExtraNonce := false

	for reader.Len() > 0 {
		tag, err := binaryserializer.Uint8(reader)
		if err != nil {
			return nil, err
		}

		switch tag {
		case ExtraTagPadding:
			for reader.Len() > 0 {
				padding, _ := reader.ReadByte()
				if padding != 0 {
					return nil, errors.Wrapf(ErrMalformedCoinbaseExtra, "non-zero byte in padding")
				}
			}
		case ExtraTagHeight:
			if hasHeight {
				return nil, errors.Wrapf(ErrMalformedCoinbaseExtra, "duplicate height field")
			}
			data.Height, err = binaryserializer.Uvarint(reader)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedCoinbaseExtra, "bad height field: %s", err)
			}
			hasHeight = true
		case ExtraTagExtraNonce:
			if hasExtraNonce {
				return nil, errors.Wrapf(ErrMalformedCoinbaseExtra, "duplicate extra nonce field")
			}
			length, err := binaryserializer.Uint8(reader)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedCoinbaseExtra, "missing extra nonce length")
			}
			if int(length) > reader.Len() {
				return nil, errors.Wrapf(ErrMalformedCoinbaseExtra,
					"extra nonce length %d exceeds the %d remaining bytes", length, reader.Len())
			}
			data.ExtraNonce = make([]byte, length)
			_, _ = reader.Read(data.ExtraNonce)
			hasExtraNonce = true
		default:
			return nil, errors.Wrapf(ErrMalformedCoinbaseExtra, "unknown tag 0x%02x", tag)
		}
	}

	if !hasHeight {
		return nil, errors.Wrapf(ErrMalformedCoinbaseExtra, "missing height field")
	}
	return data, nil
}
