package serialization

import (
	"bytes"
	"io"

	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// SerializeTransaction writes the wire form of the transaction prefix to w
func SerializeTransaction(w io.Writer, tx *externalapi.DomainTransaction) error {
	err := WriteElements(w, tx.Version, tx.UnlockTime, len(tx.Inputs))
	if err != nil {
		return err
	}
	for i, input := range tx.Inputs {
		err = writeTransactionInput(w, input)
		if err != nil {
			return errors.Wrapf(err, "failed to serialize input %d", i)
		}
	}

	err = WriteElement(w, len(tx.Outputs))
	if err != nil {
		return err
	}
	for _, output := range tx.Outputs {
		err = WriteElements(w, output.Amount, externalapi.OutputTargetTypeKey, output.Key)
		if err != nil {
			return err
		}
	}

	return WriteElement(w, tx.Extra)
}

func writeTransactionInput(w io.Writer, input *externalapi.DomainTransactionInput) error {
	switch input.Type {
	case externalapi.InputTypeGeneration:
		return WriteElements(w, input.Type, input.Height)

	case externalapi.InputTypeKey:
		err := WriteElements(w, input.Type, input.Amount, len(input.KeyOffsets))
		if err != nil {
			return err
		}
		for _, offset := range input.KeyOffsets {
			err = WriteElement(w, offset)
			if err != nil {
				return err
			}
		}
		return WriteElement(w, &input.KeyImage)
	}

	return errors.Wrapf(errNoEncodingForType, "unknown input type 0x%02x", input.Type)
}

// TransactionBytes returns the wire form of the transaction prefix
func TransactionBytes(tx *externalapi.DomainTransaction) ([]byte, error) {
	var buf bytes.Buffer
	err := SerializeTransaction(&buf, tx)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TransactionSize returns the serialized size of the transaction prefix
func TransactionSize(tx *externalapi.DomainTransaction) (uint64, error) {
	txBytes, err := TransactionBytes(tx)
	if err != nil {
		return 0, err
	}
	return uint64(len(txBytes)), nil
}
