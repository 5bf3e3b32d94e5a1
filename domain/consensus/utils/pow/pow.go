package pow

import (
	"math/big"

	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/hashes"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// Hasher computes the proof of work digest of a block hashing blob
type Hasher interface {
	Hash(data []byte) *externalapi.DomainHash
}

type blake2bHasher struct {
	key []byte
}

// NewBlake2bHasher returns a Hasher computing keyed BLAKE2b-256 digests. The
// key may be empty and is at most 64 bytes long.
func NewBlake2bHasher(key []byte) (Hasher, error) {
	if len(key) > blake2b.Size {
		return nil, errors.Errorf("blake2b key is %d bytes long while the maximum is %d", len(key), blake2b.Size)
	}
	return &blake2bHasher{key: append([]byte{}, key...)}, nil
}

func (h *blake2bHasher) Hash(data []byte) *externalapi.DomainHash {
	hasher, err := blake2b.New256(h.key)
	if err != nil {
		panic(errors.Wrapf(err, "key length was validated on construction"))
	}
	// Writing to a blake2b hash never fails
	_, _ = hasher.Write(data)
	var digest [externalapi.DomainHashSize]byte
	copy(digest[:], hasher.Sum(nil))
	return externalapi.NewDomainHashFromByteArray(&digest)
}

var twoTo256 = new(big.Int).Lsh(big.NewInt(1), 256)

// CheckProofOfWork hashes blockHashingBlob with hasher and reports whether
// the resulting digest meets difficulty
func CheckProofOfWork(hasher Hasher, blockHashingBlob []byte, difficulty uint64) (bool, *externalapi.DomainHash) {
	digest := hasher.Hash(blockHashingBlob)
	return CheckDigest(digest, difficulty), digest
}

// CheckDigest reports whether digest, read as a big-endian number, meets
// difficulty: digest * difficulty must not exceed 2^256.
// A difficulty of zero is never met.
func CheckDigest(digest *externalapi.DomainHash, difficulty uint64) bool {
	if difficulty == 0 {
		return false
	}
	product := hashes.ToBig(digest)
	product.Mul(product, new(big.Int).SetUint64(difficulty))
	return product.Cmp(twoTo256) <= 0
}
