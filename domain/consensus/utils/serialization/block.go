package serialization

import (
	"bytes"
	"io"

	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
)

// SerializeBlockHeader writes the wire form of the block header to w
func SerializeBlockHeader(w io.Writer, header *externalapi.DomainBlockHeader) error {
	return WriteElements(w, uint64(header.MajorVersion), uint64(header.MinorVersion), header.Timestamp,
		&header.PreviousBlockHash, header.Nonce)
}

// SerializeBlock writes the full wire form of the block to w: the header,
// the coinbase transaction and the hashes of the other transactions
func SerializeBlock(w io.Writer, block *externalapi.DomainBlock) error {
	err := SerializeBlockHeader(w, block.Header)
	if err != nil {
		return err
	}
	err = SerializeTransaction(w, block.CoinbaseTransaction)
	if err != nil {
		return err
	}
	err = WriteElement(w, len(block.TransactionHashes))
	if err != nil {
		return err
	}
	for _, hash := range block.TransactionHashes {
		err = WriteElement(w, hash)
		if err != nil {
			return err
		}
	}
	return nil
}

// BlockBytes returns the full wire form of the block
func BlockBytes(block *externalapi.DomainBlock) ([]byte, error) {
	var buf bytes.Buffer
	err := SerializeBlock(&buf, block)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BlockHashingBlob returns the header followed by the transactions tree root
// and the number of transactions (the coinbase included). This is the blob
// both the block hash and the proof of work are computed over.
func BlockHashingBlob(block *externalapi.DomainBlock, treeRoot *externalapi.DomainHash) ([]byte, error) {
	var buf bytes.Buffer
	err := SerializeBlockHeader(&buf, block.Header)
	if err != nil {
		return nil, err
	}
	err = WriteElements(&buf, treeRoot, len(block.TransactionHashes)+1)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
