package util

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxDecimalPlaces is the largest number of decimal places whose unit still
// fits in an atomic amount
const MaxDecimalPlaces = 19

// ErrInvalidAmountFormat indicates a string that isn't a decimal amount with
// at most the allowed number of fraction digits
var ErrInvalidAmountFormat = errors.New("invalid amount format")

// ErrAmountOverflow indicates an amount that does not fit in an atomic amount
var ErrAmountOverflow = errors.New("amount overflow")

// AmountFormatter converts atomic amounts to and from their decimal text form
type AmountFormatter struct {
	decimalPlaces uint
	coin          uint64
}

// NewAmountFormatter returns an AmountFormatter for the given number of
// decimal places. It panics if the number of decimal places exceeds MaxDecimalPlaces.
func NewAmountFormatter(decimalPlaces uint) *AmountFormatter {
	if decimalPlaces > MaxDecimalPlaces {
		panic(errors.Errorf("%d decimal places is more than the maximum of %d", decimalPlaces, MaxDecimalPlaces))
	}
	return &AmountFormatter{
		decimalPlaces: decimalPlaces,
		coin:          Pow10(decimalPlaces),
	}
}

// Pow10 returns 10^n. n must not exceed MaxDecimalPlaces.
func Pow10(n uint) uint64 {
	result := uint64(1)
	for i := uint(0); i < n; i++ {
		result *= 10
	}
	return result
}

// Format returns amount as a decimal string with exactly as many fraction
// digits as decimal places
func (f *AmountFormatter) Format(amount uint64) string {
	if f.decimalPlaces == 0 {
		return strconv.FormatUint(amount, 10)
	}
	return fmt.Sprintf("%d.%0*d", amount/f.coin, f.decimalPlaces, amount%f.coin)
}

// Parse returns the atomic amount of a decimal string
func (f *AmountFormatter) Parse(text string) (uint64, error) {
	integerPart, fractionPart := text, ""
	if pointIndex := strings.IndexByte(text, '.'); pointIndex >= 0 {
		integerPart, fractionPart = text[:pointIndex], text[pointIndex+1:]
	}

	if len(integerPart)+len(fractionPart) == 0 {
		return 0, errors.Wrapf(ErrInvalidAmountFormat, "%q has no digits", text)
	}
	if !isDigits(integerPart) || !isDigits(fractionPart) {
		return 0, errors.Wrapf(ErrInvalidAmountFormat, "%q is not a decimal number", text)
	}
	if uint(len(fractionPart)) > f.decimalPlaces {
		return 0, errors.Wrapf(ErrInvalidAmountFormat,
			"%q has more than %d fraction digits", text, f.decimalPlaces)
	}

	var integer uint64
	if integerPart != "" {
		var err error
		integer, err = strconv.ParseUint(integerPart, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrAmountOverflow, "%q", text)
		}
	}

	var fraction uint64
	if fractionPart != "" {
		// The fraction has at most MaxDecimalPlaces digits, so it always fits
		parsedFraction, err := strconv.ParseUint(fractionPart, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrInvalidAmountFormat, "%q", text)
		}
		fraction = parsedFraction * Pow10(f.decimalPlaces-uint(len(fractionPart)))
	}

	high, scaled := bits.Mul64(integer, f.coin)
	if high != 0 {
		return 0, errors.Wrapf(ErrAmountOverflow, "%q", text)
	}
	amount, carry := bits.Add64(scaled, fraction, 0)
	if carry != 0 {
		return 0, errors.Wrapf(ErrAmountOverflow, "%q", text)
	}
	return amount, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
