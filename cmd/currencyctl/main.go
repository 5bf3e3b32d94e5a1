package main

import (
	"github.com/bytecoinlabs/currencyd/infrastructure/logger"
	"github.com/bytecoinlabs/currencyd/util/panics"
	"github.com/pkg/errors"
)

func main() {
	defer logger.BackendLog.Close()
	defer panics.HandlePanic(log)

	subCmd, config := parseCommandLine()

	var err error
	switch subCmd {
	case paramsSubCmd:
		err = params(config.(*paramsConfig))
	case genesisSubCmd:
		err = genesis(config.(*genesisConfig))
	case formatSubCmd:
		err = format(config.(*formatConfig))
	case parseSubCmd:
		err = parse(config.(*parseConfig))
	case rewardSubCmd:
		err = reward(config.(*rewardConfig))
	case difficultySubCmd:
		err = difficulty(config.(*difficultyConfig))
	case addressSubCmd:
		err = address(config.(*addressConfig))
	case coinbaseSubCmd:
		err = coinbase(config.(*coinbaseConfig))
	default:
		err = errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}

	if err != nil {
		printErrorAndExit(err)
	}
}
