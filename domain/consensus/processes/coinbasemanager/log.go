package coinbasemanager

import (
	"github.com/bytecoinlabs/currencyd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("CBMG")
