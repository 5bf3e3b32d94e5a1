/*
Package base58 implements the block-wise base58 encoding used by addresses.

The input is split into 8 byte blocks, each encoded on its own into exactly
11 characters. A shorter last block is encoded into the number of characters
given by encodedBlockSizes, so that encoded length alone determines the
decoded length.
*/
package base58

import (
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"
)

const (
	fullBlockSize        = 8
	fullEncodedBlockSize = 11
	alphabetZero         = "1"
)

// encodedBlockSizes maps a block length in bytes to its encoded length
var encodedBlockSizes = [fullBlockSize + 1]int{0, 2, 3, 5, 6, 7, 9, 10, 11}

// ErrInvalidFormat indicates a string that is not a valid block-wise base58 encoding
var ErrInvalidFormat = errors.New("invalid base58 format")

// Encode encodes data with the block-wise base58 encoding
func Encode(data []byte) string {
	fullBlockCount := len(data) / fullBlockSize
	lastBlockSize := len(data) % fullBlockSize

	builder := strings.Builder{}
	builder.Grow(fullBlockCount*fullEncodedBlockSize + encodedBlockSizes[lastBlockSize])
	for i := 0; i < fullBlockCount; i++ {
		builder.WriteString(encodeBlock(data[i*fullBlockSize : (i+1)*fullBlockSize]))
	}
	if lastBlockSize > 0 {
		builder.WriteString(encodeBlock(data[fullBlockCount*fullBlockSize:]))
	}
	return builder.String()
}

func encodeBlock(block []byte) string {
	// The big number encoding writes a '1' per leading zero byte, so the
	// digits are recovered by trimming them and re-padded to a fixed width
	digits := strings.TrimLeft(base58.Encode(block), alphabetZero)
	return strings.Repeat(alphabetZero, encodedBlockSizes[len(block)]-len(digits)) + digits
}

// Decode decodes a string produced by Encode
func Decode(encoded string) ([]byte, error) {
	fullBlockCount := len(encoded) / fullEncodedBlockSize
	lastEncodedBlockSize := len(encoded) % fullEncodedBlockSize
	lastBlockSize := -1
	for size, encodedSize := range encodedBlockSizes {
		if encodedSize == lastEncodedBlockSize {
			lastBlockSize = size
			break
		}
	}
	if lastBlockSize < 0 {
		return nil, errors.Wrapf(ErrInvalidFormat, "invalid encoded length %d", len(encoded))
	}

	data := make([]byte, 0, fullBlockCount*fullBlockSize+lastBlockSize)
	for i := 0; i < fullBlockCount; i++ {
		block, err := decodeBlock(encoded[i*fullEncodedBlockSize:(i+1)*fullEncodedBlockSize], fullBlockSize)
		if err != nil {
			return nil, err
		}
		data = append(data, block...)
	}
	if lastBlockSize > 0 {
		block, err := decodeBlock(encoded[fullBlockCount*fullEncodedBlockSize:], lastBlockSize)
		if err != nil {
			return nil, err
		}
		data = append(data, block...)
	}
	return data, nil
}

func decodeBlock(encodedBlock string, blockSize int) ([]byte, error) {
	decoded := base58.Decode(encodedBlock)
	// The big number decoding returns an empty slice on invalid characters,
	// and at least one byte for any valid non-empty input
	if len(decoded) == 0 {
		return nil, errors.Wrapf(ErrInvalidFormat, "invalid characters in block %q", encodedBlock)
	}

	firstNonZero := 0
	for firstNonZero < len(decoded) && decoded[firstNonZero] == 0 {
		firstNonZero++
	}
	value := decoded[firstNonZero:]
	if len(value) > blockSize {
		return nil, errors.Wrapf(ErrInvalidFormat, "block %q overflows %d bytes", encodedBlock, blockSize)
	}

	block := make([]byte, blockSize)
	copy(block[blockSize-len(value):], value)
	return block, nil
}
