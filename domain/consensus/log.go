package consensus

import (
	"github.com/bytecoinlabs/currencyd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("CNSS")
