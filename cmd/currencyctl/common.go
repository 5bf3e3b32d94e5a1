package main

import (
	"strconv"
	"strings"

	"github.com/bytecoinlabs/currencyd/util/panics"
	"github.com/pkg/errors"
)

func printErrorAndExit(err error) {
	panics.Exit(log, err.Error())
}

// parseUint64List parses a comma separated list of unsigned integers
func parseUint64List(list string) ([]uint64, error) {
	if strings.TrimSpace(list) == "" {
		return []uint64{}, nil
	}
	fields := strings.Split(list, ",")
	values := make([]uint64, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseUint(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't parse list element %d", i)
		}
		values[i] = value
	}
	return values, nil
}
