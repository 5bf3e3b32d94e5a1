package util

import (
	"bytes"

	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/hashes"
	"github.com/bytecoinlabs/currencyd/util/base58"
	"github.com/bytecoinlabs/currencyd/util/binaryserializer"
	"github.com/pkg/errors"
)

// AddressChecksumSize is the number of checksum bytes appended to an address payload
const AddressChecksumSize = 4

// ErrInvalidAddressFormat indicates an address that can't be decoded, that
// belongs to another network or whose checksum does not match
var ErrInvalidAddressFormat = errors.New("invalid address format")

// AddressCodec encodes and decodes the public addresses of one network
type AddressCodec struct {
	prefix uint64
}

// NewAddressCodec returns an AddressCodec for the network identified by prefix
func NewAddressCodec(prefix uint64) *AddressCodec {
	return &AddressCodec{prefix: prefix}
}

// Prefix returns the network prefix of the codec
func (c *AddressCodec) Prefix() uint64 {
	return c.prefix
}

// Encode returns the text address of the given spend and view public keys
func (c *AddressCodec) Encode(spendPublicKey, viewPublicKey externalapi.PublicKey) string {
	payload := make([]byte, 0, binaryserializer.UvarintSize(c.prefix)+2*externalapi.PublicKeySize+AddressChecksumSize)
	payload = binaryserializer.AppendUvarint(payload, c.prefix)
	payload = append(payload, spendPublicKey[:]...)
	payload = append(payload, viewPublicKey[:]...)
	payload = append(payload, addressChecksum(payload)...)
	return base58.Encode(payload)
}

// EncodeAddress returns the text address of the given public address
func (c *AddressCodec) EncodeAddress(address *externalapi.AccountPublicAddress) string {
	return c.Encode(address.SpendPublicKey, address.ViewPublicKey)
}

// Decode returns the spend and view public keys of a text address
func (c *AddressCodec) Decode(address string) (spendPublicKey, viewPublicKey externalapi.PublicKey, err error) {
	payload, err := base58.Decode(address)
	if err != nil {
		return spendPublicKey, viewPublicKey, errors.Wrapf(ErrInvalidAddressFormat, "%s", err)
	}

	reader := bytes.NewReader(payload)
	prefix, err := binaryserializer.Uvarint(reader)
	if err != nil {
		return spendPublicKey, viewPublicKey, errors.Wrapf(ErrInvalidAddressFormat, "bad prefix: %s", err)
	}
	if prefix != c.prefix {
		return spendPublicKey, viewPublicKey, errors.Wrapf(ErrInvalidAddressFormat,
			"address prefix %d does not match the network prefix %d", prefix, c.prefix)
	}

	prefixSize := len(payload) - reader.Len()
	expectedSize := prefixSize + 2*externalapi.PublicKeySize + AddressChecksumSize
	if len(payload) != expectedSize {
		return spendPublicKey, viewPublicKey, errors.Wrapf(ErrInvalidAddressFormat,
			"address payload is %d bytes long while it should be %d", len(payload), expectedSize)
	}

	checksumStart := len(payload) - AddressChecksumSize
	if !bytes.Equal(payload[checksumStart:], addressChecksum(payload[:checksumStart])) {
		return spendPublicKey, viewPublicKey, errors.Wrapf(ErrInvalidAddressFormat, "checksum mismatch")
	}

	copy(spendPublicKey[:], payload[prefixSize:])
	copy(viewPublicKey[:], payload[prefixSize+externalapi.PublicKeySize:])
	return spendPublicKey, viewPublicKey, nil
}

// DecodeAddress returns the public address encoded in a text address
func (c *AddressCodec) DecodeAddress(address string) (*externalapi.AccountPublicAddress, error) {
	spendPublicKey, viewPublicKey, err := c.Decode(address)
	if err != nil {
		return nil, err
	}
	return &externalapi.AccountPublicAddress{
		SpendPublicKey: spendPublicKey,
		ViewPublicKey:  viewPublicKey,
	}, nil
}

func addressChecksum(data []byte) []byte {
	return hashes.HashData(data).ByteSlice()[:AddressChecksumSize]
}
