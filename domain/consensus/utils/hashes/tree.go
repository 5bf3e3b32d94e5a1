package hashes

import (
	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
)

func hashPair(a, b *externalapi.DomainHash) *externalapi.DomainHash {
	writer := NewHashWriter()
	writer.InfallibleWrite(a.ByteSlice())
	writer.InfallibleWrite(b.ByteSlice())
	return writer.Finalize()
}

// TreeHash returns the root of the transactions hash tree. The leaves that
// do not fit in the largest power of two below the leaf count are paired
// first, so the tree is always perfect from the second level up.
// It panics when called with no hashes: a block always has a coinbase.
func TreeHash(hashes []*externalapi.DomainHash) *externalapi.DomainHash {
	count := len(hashes)
	switch count {
	case 0:
		panic("TreeHash called with no hashes")
	case 1:
		return externalapi.NewDomainHashFromByteArray(hashes[0].ByteArray())
	case 2:
		return hashPair(hashes[0], hashes[1])
	}

	width := 1
	for width*2 <= count-1 {
		width *= 2
	}

	level := make([]*externalapi.DomainHash, width)
	copied := 2*width - count
	copy(level, hashes[:copied])
	for i, j := copied, copied; j < width; i, j = i+2, j+1 {
		level[j] = hashPair(hashes[i], hashes[i+1])
	}

	for width > 2 {
		width /= 2
		for i, j := 0, 0; j < width; i, j = i+2, j+1 {
			level[j] = hashPair(level[i], level[i+1])
		}
	}

	return hashPair(level[0], level[1])
}
