package binaryserializer

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// maxItems is the number of buffers to keep in the free
// list to use for binary serialization and deserialization.
const maxItems = 1024

// bufferSize fits both a uint64 and the longest varint encoding of a uint64
const bufferSize = binary.MaxVarintLen64

// ErrVarintOverflow is returned when a varint does not fit in 64 bits
var ErrVarintOverflow = errors.New("varint overflows a 64-bit integer")

// ErrNonCanonicalVarint is returned when a varint has redundant trailing zero groups
var ErrNonCanonicalVarint = errors.New("varint is not in canonical form")

// Borrow returns a byte slice from the free list with a length of bufferSize.
// A new buffer is allocated if there are not any available on the free list.
func Borrow() []byte {
	var buf []byte
	select {
	case buf = <-binaryFreeList:
	default:
		buf = make([]byte, bufferSize)
	}
	return buf[:bufferSize]
}

// Return puts the provided byte slice back on the free list. The buffer MUST
// have been obtained via the Borrow function and therefore have a cap of bufferSize.
func Return(buf []byte) {
	select {
	case binaryFreeList <- buf:
	default:
		// Let it go to the garbage collector.
	}
}

// Uint8 reads a single byte from the provided reader using a buffer from the
// free list and returns it as a uint8.
func Uint8(r io.Reader) (uint8, error) {
	buf := Borrow()[:1]
	if _, err := io.ReadFull(r, buf); err != nil {
		Return(buf)
		return 0, errors.WithStack(err)
	}
	rv := buf[0]
	Return(buf)
	return rv, nil
}

// Uint32 reads four little endian bytes from the provided reader using a buffer
// from the free list and returns the resulting uint32.
func Uint32(r io.Reader) (uint32, error) {
	buf := Borrow()[:4]
	if _, err := io.ReadFull(r, buf); err != nil {
		Return(buf)
		return 0, errors.WithStack(err)
	}
	rv := binary.LittleEndian.Uint32(buf)
	Return(buf)
	return rv, nil
}

// Uvarint reads a base-128 varint (seven bits per byte, least significant
// group first) from the provided reader.
func Uvarint(r io.Reader) (uint64, error) {
	buf := Borrow()[:1]
	defer Return(buf)

	var value uint64
	for shift := uint(0); ; shift += 7 {
		if _, err := io.ReadFull(r, buf); err != nil {
			return 0, errors.WithStack(err)
		}
		b := buf[0]
		if shift == 63 && b > 1 {
			return 0, errors.WithStack(ErrVarintOverflow)
		}
		if b < 0x80 {
			if b == 0 && shift != 0 {
				return 0, errors.WithStack(ErrNonCanonicalVarint)
			}
			return value | uint64(b)<<shift, nil
		}
		value |= uint64(b&0x7f) << shift
		if shift >= 63 {
			return 0, errors.WithStack(ErrVarintOverflow)
		}
	}
}

// PutUint8 copies the provided uint8 into a buffer from the free list and
// writes the resulting byte to the given writer.
func PutUint8(w io.Writer, val uint8) error {
	buf := Borrow()[:1]
	buf[0] = val
	_, err := w.Write(buf)
	Return(buf)
	return errors.WithStack(err)
}

// PutUint32 serializes the provided uint32 as four little endian bytes and
// writes them to the given writer.
func PutUint32(w io.Writer, val uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], val)
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}

// PutUvarint serializes the provided uint64 as a base-128 varint and writes it
// to the given writer.
func PutUvarint(w io.Writer, val uint64) error {
	buf := Borrow()
	n := binary.PutUvarint(buf, val)
	_, err := w.Write(buf[:n])
	Return(buf)
	return errors.WithStack(err)
}

// AppendUvarint appends the varint encoding of val to dst
func AppendUvarint(dst []byte, val uint64) []byte {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], val)
	return append(dst, buf[:n]...)
}

// UvarintSize returns the number of bytes the varint encoding of val takes
func UvarintSize(val uint64) int {
	size := 1
	for val >= 0x80 {
		val >>= 7
		size++
	}
	return size
}

// binaryFreeList provides a free list of buffers to use for serializing and
// deserializing primitive integer values to and from io.Readers and io.Writers.
//
// It defines a concurrent safe free list of byte slices (up to the
// maximum number defined by the maxItems constant) that have a
// cap of bufferSize. It is used to provide temporary buffers for serializing
// and deserializing primitive numbers in order to greatly reduce the number
// of allocations required.
var binaryFreeList = make(chan []byte, maxItems)
