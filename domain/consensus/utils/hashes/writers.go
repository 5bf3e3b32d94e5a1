package hashes

import (
	"hash"

	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// HashWriter is used to incrementally hash data without concatenating all of the data to a single buffer
// it exposes an io.Writer api and a Finalize function to get the resulting hash.
// The used hash function is the original (pre-NIST) Keccak-256, the "fast hash"
// every block, transaction and address checksum is computed with.
type HashWriter struct {
	hash.Hash
}

// NewHashWriter returns a new HashWriter
func NewHashWriter() HashWriter {
	return HashWriter{sha3.NewLegacyKeccak256()}
}

// InfallibleWrite is just like write but doesn't return anything
func (h HashWriter) InfallibleWrite(p []byte) {
	// This write can never return an error, this is part of the hash.Hash interface contract.
	_, err := h.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. hash.Hash interface promises to not return errors."))
	}
}

// Finalize returns the resulting hash
func (h HashWriter) Finalize() *externalapi.DomainHash {
	var sum [externalapi.DomainHashSize]byte
	// This should prevent `Sum` for allocating an output buffer, by using the DomainHash buffer. we still copy because we don't want to rely on that.
	copy(sum[:], h.Sum(sum[:0]))
	return externalapi.NewDomainHashFromByteArray(&sum)
}

// HashData hashes the given data with Keccak-256
func HashData(data []byte) *externalapi.DomainHash {
	writer := NewHashWriter()
	writer.InfallibleWrite(data)
	return writer.Finalize()
}
