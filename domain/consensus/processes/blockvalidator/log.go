package blockvalidator

import (
	"github.com/bytecoinlabs/currencyd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("BVAL")
