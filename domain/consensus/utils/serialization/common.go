package serialization

import (
	"io"

	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/util/binaryserializer"
	"github.com/pkg/errors"
)

// errNoEncodingForType signifies that there's no encoding for the given type.
var errNoEncodingForType = errors.New("there's no encoding for this type")

var errMalformed = errors.New("errMalformed")

// WriteElement writes the wire representation of element to w. Integers
// wider than 32 bits are varints, uint32 is four little endian bytes,
// byte slices are prefixed with their varint length.
func WriteElement(w io.Writer, element interface{}) error {
	// Attempt to write the element based on the concrete type via fast
	// type assertions first.
	switch e := element.(type) {
	case uint8:
		return binaryserializer.PutUint8(w, e)

	case uint32:
		return binaryserializer.PutUint32(w, e)

	case uint64:
		return binaryserializer.PutUvarint(w, e)

	case int:
		if e < 0 {
			return errors.Errorf("cannot serialize negative integer %d", e)
		}
		return binaryserializer.PutUvarint(w, uint64(e))

	case []byte:
		err := binaryserializer.PutUvarint(w, uint64(len(e)))
		if err != nil {
			return err
		}
		_, err = w.Write(e)
		return errors.WithStack(err)

	case externalapi.DomainHash:
		_, err := w.Write(e.ByteSlice())
		return errors.WithStack(err)

	case *externalapi.DomainHash:
		_, err := w.Write(e.ByteSlice())
		return errors.WithStack(err)

	case externalapi.PublicKey:
		_, err := w.Write(e[:])
		return errors.WithStack(err)
	}

	return errors.Wrapf(errNoEncodingForType, "couldn't find a way to write type %T", element)
}

// WriteElements writes multiple items to w. It is equivalent to multiple
// calls to writeElement.
func WriteElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		err := WriteElement(w, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadElement reads the next sequence of bytes from r depending on the
// concrete type of element pointed to, mirroring WriteElement.
func ReadElement(r io.Reader, element interface{}) error {
	// Attempt to read the element based on the concrete type via fast
	// type assertions first.
	switch e := element.(type) {
	case *uint8:
		rv, err := binaryserializer.Uint8(r)
		if err != nil {
			return err
		}
		*e = rv
		return nil

	case *uint32:
		rv, err := binaryserializer.Uint32(r)
		if err != nil {
			return err
		}
		*e = rv
		return nil

	case *uint64:
		rv, err := binaryserializer.Uvarint(r)
		if err != nil {
			return errors.Wrap(errMalformed, err.Error())
		}
		*e = rv
		return nil

	case *externalapi.PublicKey:
		_, err := io.ReadFull(r, e[:])
		return errors.WithStack(err)

	case *externalapi.DomainHash:
		var hashBytes [externalapi.DomainHashSize]byte
		_, err := io.ReadFull(r, hashBytes[:])
		if err != nil {
			return errors.WithStack(err)
		}
		*e = *externalapi.NewDomainHashFromByteArray(&hashBytes)
		return nil
	}

	return errors.Wrapf(errNoEncodingForType, "couldn't find a way to read type %T", element)
}

// ReadElements reads multiple items from r. It is equivalent to multiple
// calls to ReadElement.
func ReadElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		err := ReadElement(r, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// IsMalformedError returns whether the error indicates a malformed data source
func IsMalformedError(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) || errors.Is(err, errMalformed)
}
