package externalapi

import (
	"bytes"
	"fmt"
)

// Transaction input types as they appear on the wire
const (
	InputTypeGeneration uint8 = 0xff
	InputTypeKey        uint8 = 0x02
)

// OutputTargetTypeKey is the only output target type this package writes
const OutputTargetTypeKey uint8 = 0x02

// DomainTransaction represents a transaction prefix. Ring signatures are
// owned by the wallet layer and are not part of this representation.
type DomainTransaction struct {
	Version    uint64
	UnlockTime uint64
	Inputs     []*DomainTransactionInput
	Outputs    []*DomainTransactionOutput
	Extra      []byte
}

// DomainTransactionInput represents a transaction input. Generation inputs
// only carry Height; key inputs carry Amount, KeyOffsets and KeyImage.
type DomainTransactionInput struct {
	Type       uint8
	Height     uint64
	Amount     uint64
	KeyOffsets []uint64
	KeyImage   DomainHash
}

// DomainTransactionOutput represents a transaction output paying Amount to Key
type DomainTransactionOutput struct {
	Amount uint64
	Key    PublicKey
}

// String stringifies an output
func (output *DomainTransactionOutput) String() string {
	return fmt.Sprintf("%d:%s", output.Amount, output.Key)
}

// IsCoinbase returns whether the transaction has exactly one generation input
func (tx *DomainTransaction) IsCoinbase() bool {
	return len(tx.Inputs) == 1 && tx.Inputs[0].Type == InputTypeGeneration
}

// OutputsSum returns the sum of the transaction outputs and whether it
// overflowed
func (tx *DomainTransaction) OutputsSum() (sum uint64, overflow bool) {
	for _, output := range tx.Outputs {
		next := sum + output.Amount
		if next < sum {
			return 0, true
		}
		sum = next
	}
	return sum, false
}

// Clone returns a clone of DomainTransaction
func (tx *DomainTransaction) Clone() *DomainTransaction {
	inputsClone := make([]*DomainTransactionInput, len(tx.Inputs))
	for i, input := range tx.Inputs {
		inputClone := *input
		if input.KeyOffsets != nil {
			inputClone.KeyOffsets = append([]uint64{}, input.KeyOffsets...)
		}
		inputsClone[i] = &inputClone
	}

	outputsClone := make([]*DomainTransactionOutput, len(tx.Outputs))
	for i, output := range tx.Outputs {
		outputClone := *output
		outputsClone[i] = &outputClone
	}

	return &DomainTransaction{
		Version:    tx.Version,
		UnlockTime: tx.UnlockTime,
		Inputs:     inputsClone,
		Outputs:    outputsClone,
		Extra:      append([]byte{}, tx.Extra...),
	}
}

// If this doesn't compile, it means the type definition has been changed, so it's
// an indication to update Equal and Clone accordingly.
var _ = DomainTransaction{0, 0, []*DomainTransactionInput{}, []*DomainTransactionOutput{}, []byte{}}

// Equal returns whether tx equals to other
func (tx *DomainTransaction) Equal(other *DomainTransaction) bool {
	if tx == nil || other == nil {
		return tx == other
	}

	if tx.Version != other.Version || tx.UnlockTime != other.UnlockTime {
		return false
	}

	if len(tx.Inputs) != len(other.Inputs) || len(tx.Outputs) != len(other.Outputs) {
		return false
	}

	for i, input := range tx.Inputs {
		if !input.Equal(other.Inputs[i]) {
			return false
		}
	}

	for i, output := range tx.Outputs {
		if *output != *other.Outputs[i] {
			return false
		}
	}

	return bytes.Equal(tx.Extra, other.Extra)
}

// Equal returns whether input equals to other
func (input *DomainTransactionInput) Equal(other *DomainTransactionInput) bool {
	if input == nil || other == nil {
		return input == other
	}

	if input.Type != other.Type || input.Height != other.Height || input.Amount != other.Amount {
		return false
	}

	if len(input.KeyOffsets) != len(other.KeyOffsets) {
		return false
	}
	for i, offset := range input.KeyOffsets {
		if offset != other.KeyOffsets[i] {
			return false
		}
	}

	return input.KeyImage.Equal(&other.KeyImage)
}
