package ruleerrors

import (
	"fmt"

	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// These constants are used to identify a specific RuleError.
var (
	// ErrBlockTooBig indicates the block size exceeds twice the effective
	// median size, past which no reward can be granted. Block templates
	// must be shrunk.
	ErrBlockTooBig = newRuleError("ErrBlockTooBig")

	// ErrBlockSizeTooHigh indicates the cumulative size of a block exceeds
	// the maximum allowed at its height.
	ErrBlockSizeTooHigh = newRuleError("ErrBlockSizeTooHigh")

	// ErrReservedSizeExceeded indicates the coinbase extra field does not
	// fit in the size reserved for it in the block template.
	ErrReservedSizeExceeded = newRuleError("ErrReservedSizeExceeded")

	// ErrInvalidPoW indicates that the block proof-of-work is invalid.
	ErrInvalidPoW = newRuleError("ErrInvalidPoW")

	// ErrUnexpectedDifficulty indicates a difficulty of zero was supplied
	ErrUnexpectedDifficulty = newRuleError("ErrUnexpectedDifficulty")

	// ErrTimeTooOld indicates the time is before the median time of
	// the last several blocks per the consensus rules.
	ErrTimeTooOld = newRuleError("ErrTimeTooOld")

	//ErrTimeTooMuchInTheFuture indicates that the block timestamp is too much in the future.
	ErrTimeTooMuchInTheFuture = newRuleError("ErrTimeTooMuchInTheFuture")

	// ErrBlockVersionIsUnknown indicates that the block version is unknown.
	ErrBlockVersionIsUnknown = newRuleError("ErrBlockVersionIsUnknown")

	// ErrBadCoinbaseValue indicates the coinbase outputs do not pay exactly
	// the expected reward, or the reward itself cannot be represented.
	ErrBadCoinbaseValue = newRuleError("ErrBadCoinbaseValue")

	// ErrBadCoinbaseHeight indicates the height carried by the coinbase
	// does not match the block height.
	ErrBadCoinbaseHeight = newRuleError("ErrBadCoinbaseHeight")

	// ErrBadCoinbaseUnlockTime indicates the coinbase unlock time is not
	// the block height plus the mined money unlock window.
	ErrBadCoinbaseUnlockTime = newRuleError("ErrBadCoinbaseUnlockTime")

	// ErrBadCoinbasePayload indicates the coinbase extra field is malformed.
	ErrBadCoinbasePayload = newRuleError("ErrBadCoinbasePayload")

	// ErrFirstTxNotCoinbase indicates the coinbase of a block does not have
	// exactly one generation input.
	ErrFirstTxNotCoinbase = newRuleError("ErrFirstTxNotCoinbase")

	// ErrTxTooBig indicates a transaction exceeds the maximum allowed size.
	ErrTxTooBig = newRuleError("ErrTxTooBig")
)

// RuleError identifies a rule violation. It is used to indicate that
// processing of a block or transaction failed due to one of the many validation
// rules. The caller can use type assertions to determine if a failure was
// specifically due to a rule violation.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

// Is reports whether target is the sentinel of the rule e violates, so rule
// errors carrying details still match their sentinel
func (e RuleError) Is(target error) bool {
	sentinel, ok := target.(RuleError)
	return ok && sentinel.inner == nil && sentinel.message == e.message
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}

// ErrProofOfWorkNotMet carries the digest that failed to meet a difficulty
type ErrProofOfWorkNotMet struct {
	Digest     *externalapi.DomainHash
	Difficulty uint64
}

func (e ErrProofOfWorkNotMet) Error() string {
	return fmt.Sprintf("proof of work %s does not meet difficulty %d", e.Digest, e.Difficulty)
}

// NewErrProofOfWorkNotMet creates a new ErrProofOfWorkNotMet error wrapped in a RuleError
func NewErrProofOfWorkNotMet(digest *externalapi.DomainHash, difficulty uint64) error {
	return errors.WithStack(RuleError{
		message: "ErrInvalidPoW",
		inner:   ErrProofOfWorkNotMet{Digest: digest, Difficulty: difficulty},
	})
}
