package hashes

import (
	"math/big"

	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
)

// ToBig converts a DomainHash into a big.Int, reading the hash bytes as an
// unsigned big-endian integer.
func ToBig(hash *externalapi.DomainHash) *big.Int {
	return new(big.Int).SetBytes(hash.ByteSlice())
}
