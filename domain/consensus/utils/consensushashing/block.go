package consensushashing

import (
	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/hashes"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/serialization"
	"github.com/pkg/errors"
)

// TransactionHash returns the given transaction's hash
func TransactionHash(tx *externalapi.DomainTransaction) (*externalapi.DomainHash, error) {
	writer := hashes.NewHashWriter()
	err := serialization.SerializeTransaction(writer, tx)
	if err != nil {
		return nil, err
	}
	return writer.Finalize(), nil
}

// TransactionsTreeRoot returns the root of the hash tree built over the
// coinbase hash followed by the block's other transaction hashes
func TransactionsTreeRoot(block *externalapi.DomainBlock) (*externalapi.DomainHash, error) {
	coinbaseHash, err := TransactionHash(block.CoinbaseTransaction)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash the coinbase transaction")
	}
	leaves := make([]*externalapi.DomainHash, 0, len(block.TransactionHashes)+1)
	leaves = append(leaves, coinbaseHash)
	leaves = append(leaves, block.TransactionHashes...)
	return hashes.TreeHash(leaves), nil
}

// BlockHashingBlob returns the blob the block hash and the proof of work are
// computed over
func BlockHashingBlob(block *externalapi.DomainBlock) ([]byte, error) {
	treeRoot, err := TransactionsTreeRoot(block)
	if err != nil {
		return nil, err
	}
	return serialization.BlockHashingBlob(block, treeRoot)
}

// BlockHash returns the given block's hash: the hash of its hashing blob,
// length prefixed
func BlockHash(block *externalapi.DomainBlock) (*externalapi.DomainHash, error) {
	blob, err := BlockHashingBlob(block)
	if err != nil {
		return nil, err
	}

	writer := hashes.NewHashWriter()
	err = serialization.WriteElement(writer, blob)
	if err != nil {
		// It seems like this could only happen if the writer returned an error.
		// and this writer should never return an error (no allocations or possible failures)
		panic(errors.Wrap(err, "this should never happen. Hash digest should never return an error"))
	}
	return writer.Finalize(), nil
}
