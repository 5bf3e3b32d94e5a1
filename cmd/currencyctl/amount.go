package main

import (
	"fmt"
)

func format(conf *formatConfig) error {
	fmt.Println(conf.Currency().AmountFormatter().Format(conf.Amount))
	return nil
}

func parse(conf *parseConfig) error {
	amount, err := conf.Currency().AmountFormatter().Parse(conf.Amount)
	if err != nil {
		return err
	}
	fmt.Println(amount)
	return nil
}
