package externalapi

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// PublicKeySize is the size of a spend or view public key
const PublicKeySize = 32

// PublicKey is a 32 byte public key. Its curve arithmetic is owned by the
// wallet layer; the consensus rules only move its bytes around.
type PublicKey [PublicKeySize]byte

// NewPublicKeyFromString parses a hex-encoded public key
func NewPublicKeyFromString(keyString string) (PublicKey, error) {
	var key PublicKey
	if len(keyString) != PublicKeySize*2 {
		return key, errors.Errorf("public key string length is %d, while it should be %d",
			len(keyString), PublicKeySize*2)
	}
	keyBytes, err := hex.DecodeString(keyString)
	if err != nil {
		return key, errors.WithStack(err)
	}
	copy(key[:], keyBytes)
	return key, nil
}

// String returns the public key as a hexadecimal string
func (key PublicKey) String() string {
	return hex.EncodeToString(key[:])
}

// AccountPublicAddress is the pair of public keys an address encodes
type AccountPublicAddress struct {
	SpendPublicKey PublicKey
	ViewPublicKey  PublicKey
}

// Equal returns whether address equals to other
func (address *AccountPublicAddress) Equal(other *AccountPublicAddress) bool {
	if address == nil || other == nil {
		return address == other
	}
	return *address == *other
}

// DomainCoinbaseData contains the data a coinbase transaction carries
// in its extra field
type DomainCoinbaseData struct {
	Height     uint64
	ExtraNonce []byte
}
