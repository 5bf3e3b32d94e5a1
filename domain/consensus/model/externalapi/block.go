package externalapi

// DomainBlock represents a block: its header, the coinbase transaction and
// the hashes of every other transaction it includes
type DomainBlock struct {
	Header              *DomainBlockHeader
	CoinbaseTransaction *DomainTransaction
	TransactionHashes   []*DomainHash
}

// Clone returns a clone of DomainBlock
func (block *DomainBlock) Clone() *DomainBlock {
	hashesClone := make([]*DomainHash, len(block.TransactionHashes))
	for i, hash := range block.TransactionHashes {
		hashesClone[i] = NewDomainHashFromByteArray(hash.ByteArray())
	}

	return &DomainBlock{
		Header:              block.Header.Clone(),
		CoinbaseTransaction: block.CoinbaseTransaction.Clone(),
		TransactionHashes:   hashesClone,
	}
}

// If this doesn't compile, it means the type definition has been changed, so it's
// an indication to update Equal and Clone accordingly.
var _ = DomainBlock{&DomainBlockHeader{}, &DomainTransaction{}, []*DomainHash{}}

// Equal returns whether block equals to other
func (block *DomainBlock) Equal(other *DomainBlock) bool {
	if block == nil || other == nil {
		return block == other
	}

	if len(block.TransactionHashes) != len(other.TransactionHashes) {
		return false
	}

	if !block.Header.Equal(other.Header) {
		return false
	}

	if !block.CoinbaseTransaction.Equal(other.CoinbaseTransaction) {
		return false
	}

	for i, hash := range block.TransactionHashes {
		if !hash.Equal(other.TransactionHashes[i]) {
			return false
		}
	}

	return true
}

// DomainBlockHeader represents the header part of a block
type DomainBlockHeader struct {
	MajorVersion      uint8
	MinorVersion      uint8
	Timestamp         uint64
	PreviousBlockHash DomainHash
	Nonce             uint32
}

// Clone returns a clone of DomainBlockHeader
func (header *DomainBlockHeader) Clone() *DomainBlockHeader {
	headerClone := *header
	return &headerClone
}

// If this doesn't compile, it means the type definition has been changed, so it's
// an indication to update Equal and Clone accordingly.
var _ = DomainBlockHeader{0, 0, 0, DomainHash{}, 0}

// Equal returns whether header equals to other
func (header *DomainBlockHeader) Equal(other *DomainBlockHeader) bool {
	if header == nil || other == nil {
		return header == other
	}

	return header.MajorVersion == other.MajorVersion &&
		header.MinorVersion == other.MinorVersion &&
		header.Timestamp == other.Timestamp &&
		header.PreviousBlockHash.Equal(&other.PreviousBlockHash) &&
		header.Nonce == other.Nonce
}
