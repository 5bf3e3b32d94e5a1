package main

import (
	"github.com/bytecoinlabs/currencyd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("CTL")
