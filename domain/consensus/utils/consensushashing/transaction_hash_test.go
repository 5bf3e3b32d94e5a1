package consensushashing

import (
	"testing"

	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/hashes"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/serialization"
)

func coinbaseForTest(height uint64, amount uint64) *externalapi.DomainTransaction {
	return &externalapi.DomainTransaction{
		Version:    1,
		UnlockTime: height + 10,
		Inputs:     []*externalapi.DomainTransactionInput{{Type: externalapi.InputTypeGeneration, Height: height}},
		Outputs:    []*externalapi.DomainTransactionOutput{{Amount: amount, Key: externalapi.PublicKey{1, 2, 3}}},
		Extra:      []byte{0x05, byte(height)},
	}
}

func TestTransactionHash(t *testing.T) {
	tx := coinbaseForTest(5, 1000)
	txBytes, err := serialization.TransactionBytes(tx)
	if err != nil {
		t.Fatalf("TransactionBytes: %+v", err)
	}

	hash, err := TransactionHash(tx)
	if err != nil {
		t.Fatalf("TransactionHash: %+v", err)
	}
	if !hash.Equal(hashes.HashData(txBytes)) {
		t.Fatalf("TransactionHash is expected to be the hash of the serialized transaction")
	}

	otherHash, err := TransactionHash(coinbaseForTest(6, 1000))
	if err != nil {
		t.Fatalf("TransactionHash: %+v", err)
	}
	if hash.Equal(otherHash) {
		t.Fatalf("coinbases of different heights are expected to have different hashes")
	}
}

func TestBlockHash(t *testing.T) {
	block := &externalapi.DomainBlock{
		Header: &externalapi.DomainBlockHeader{
			MajorVersion: 1,
			Timestamp:    1000,
			Nonce:        70,
		},
		CoinbaseTransaction: coinbaseForTest(0, 1000),
		TransactionHashes:   []*externalapi.DomainHash{},
	}

	firstHash, err := BlockHash(block)
	if err != nil {
		t.Fatalf("BlockHash: %+v", err)
	}
	secondHash, err := BlockHash(block.Clone())
	if err != nil {
		t.Fatalf("BlockHash: %+v", err)
	}
	if !firstHash.Equal(secondHash) {
		t.Fatalf("the hash of a block clone is expected to equal the hash of the block")
	}

	block.Header.Nonce++
	changedHash, err := BlockHash(block)
	if err != nil {
		t.Fatalf("BlockHash: %+v", err)
	}
	if firstHash.Equal(changedHash) {
		t.Fatalf("changing the nonce is expected to change the block hash")
	}

	blob, err := BlockHashingBlob(block)
	if err != nil {
		t.Fatalf("BlockHashingBlob: %+v", err)
	}
	// The hashing blob ends with the transaction count, the coinbase included
	if blob[len(blob)-1] != 1 {
		t.Fatalf("the hashing blob is expected to end with a transaction count of 1, got %d", blob[len(blob)-1])
	}
}

func TestTreeHash(t *testing.T) {
	leaves := make([]*externalapi.DomainHash, 5)
	for i := range leaves {
		leaves[i] = hashes.HashData([]byte{byte(i)})
	}

	if !hashes.TreeHash(leaves[:1]).Equal(leaves[0]) {
		t.Fatalf("the tree hash of a single leaf is expected to be the leaf itself")
	}

	pair := hashes.NewHashWriter()
	pair.InfallibleWrite(leaves[0].ByteSlice())
	pair.InfallibleWrite(leaves[1].ByteSlice())
	if !hashes.TreeHash(leaves[:2]).Equal(pair.Finalize()) {
		t.Fatalf("the tree hash of two leaves is expected to be the hash of their concatenation")
	}

	// For three leaves the first one is carried to the second level as is
	tail := hashes.NewHashWriter()
	tail.InfallibleWrite(leaves[1].ByteSlice())
	tail.InfallibleWrite(leaves[2].ByteSlice())
	tailHash := tail.Finalize()
	root := hashes.NewHashWriter()
	root.InfallibleWrite(leaves[0].ByteSlice())
	root.InfallibleWrite(tailHash.ByteSlice())
	if !hashes.TreeHash(leaves[:3]).Equal(root.Finalize()) {
		t.Fatalf("unexpected tree hash for three leaves")
	}

	if hashes.TreeHash(leaves[:4]).Equal(hashes.TreeHash(leaves)) {
		t.Fatalf("adding a leaf is expected to change the tree hash")
	}
}
