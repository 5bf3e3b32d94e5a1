package main

import (
	"os"
	"path/filepath"

	"github.com/bytecoinlabs/currencyd/infrastructure/config"
	"github.com/bytecoinlabs/currencyd/infrastructure/logger"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	logFilename    = "currencyctl.log"
	errLogFilename = "currencyctl_err.log"
)

const (
	paramsSubCmd     = "params"
	genesisSubCmd    = "genesis"
	formatSubCmd     = "format"
	parseSubCmd      = "parse"
	rewardSubCmd     = "reward"
	difficultySubCmd = "difficulty"
	addressSubCmd    = "address"
	coinbaseSubCmd   = "coinbase"
)

type configFlags struct {
	DebugLevel string `long:"debuglevel" short:"d" description:"Logging level {trace, debug, info, warn, error, critical, off}" default:"off"`
	LogDir     string `long:"logdir" description:"Directory to write log files into, in addition to stdout"`
	config.NetworkFlags
}

type paramsConfig struct {
	Format string `long:"format" short:"f" description:"Output format" choice:"json" choice:"yaml" default:"json"`
	config.NetworkFlags
}

type genesisConfig struct {
	config.NetworkFlags
}

type formatConfig struct {
	Amount uint64 `long:"amount" short:"a" description:"The amount to format, in atomic units" required:"true"`
	config.NetworkFlags
}

type parseConfig struct {
	Amount string `long:"amount" short:"a" description:"The decimal amount to parse (e.g. 1234.5678)" required:"true"`
	config.NetworkFlags
}

type rewardConfig struct {
	Height                uint64 `long:"height" description:"The height of the block"`
	MedianSize            uint64 `long:"median-size" description:"The median size of the recent blocks"`
	BlockSize             uint64 `long:"block-size" description:"The cumulative size of the block"`
	AlreadyGeneratedCoins uint64 `long:"already-generated-coins" description:"The coins emitted before the block, in atomic units"`
	Fee                   uint64 `long:"fee" description:"The fees collected by the block, in atomic units"`
	config.NetworkFlags
}

type difficultyConfig struct {
	Timestamps             string `long:"timestamps" short:"t" description:"Comma separated timestamps of the previous blocks, oldest first" required:"true"`
	CumulativeDifficulties string `long:"cumulative-difficulties" short:"c" description:"Comma separated cumulative difficulties of the previous blocks, oldest first" required:"true"`
	config.NetworkFlags
}

type addressConfig struct {
	SpendKey string `long:"spend-key" short:"s" description:"The public spend key to encode (encoded in hex)"`
	ViewKey  string `long:"view-key" short:"v" description:"The public view key to encode (encoded in hex)"`
	Decode   string `long:"decode" description:"An address to decode into its keys"`
	config.NetworkFlags
}

type coinbaseConfig struct {
	Address               string `long:"address" short:"a" description:"The address the coinbase pays" required:"true"`
	Height                uint64 `long:"height" description:"The height of the block"`
	MedianSize            uint64 `long:"median-size" description:"The median size of the recent blocks"`
	BlockSize             uint64 `long:"block-size" description:"The cumulative size of the block"`
	AlreadyGeneratedCoins uint64 `long:"already-generated-coins" description:"The coins emitted before the block, in atomic units"`
	Fee                   uint64 `long:"fee" description:"The fees collected by the block, in atomic units"`
	ExtraNonce            string `long:"extra-nonce" description:"An extra nonce to embed (encoded in hex)"`
	MaxOutputs            int    `long:"max-outputs" description:"The maximum number of outputs" default:"10"`
	ZeroRewardPolicy      string `long:"zero-reward-policy" description:"How a zero reward is paid" choice:"single-output" choice:"no-outputs" choice:"reject" default:"single-output"`
	config.NetworkFlags
}

func parseCommandLine() (subCommand string, conf interface{}) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	paramsConf := &paramsConfig{}
	parser.AddCommand(paramsSubCmd, "Shows the currency parameters",
		"Shows the parameters of the selected network, overrides included", paramsConf)

	genesisConf := &genesisConfig{}
	parser.AddCommand(genesisSubCmd, "Shows the genesis block",
		"Shows the hash and the serialized form of the genesis block", genesisConf)

	formatConf := &formatConfig{}
	parser.AddCommand(formatSubCmd, "Formats an amount",
		"Formats an amount of atomic units as a decimal string", formatConf)

	parseConf := &parseConfig{}
	parser.AddCommand(parseSubCmd, "Parses an amount",
		"Parses a decimal amount into atomic units", parseConf)

	rewardConf := &rewardConfig{}
	parser.AddCommand(rewardSubCmd, "Computes a block reward",
		"Computes the base reward and the penalized block reward of a block", rewardConf)

	difficultyConf := &difficultyConfig{}
	parser.AddCommand(difficultySubCmd, "Computes the next difficulty",
		"Computes the difficulty of the next block out of the previous blocks", difficultyConf)

	addressConf := &addressConfig{}
	parser.AddCommand(addressSubCmd, "Encodes or decodes an address",
		"Encodes a pair of public keys into an address, or decodes an address into its keys", addressConf)

	coinbaseConf := &coinbaseConfig{}
	parser.AddCommand(coinbaseSubCmd, "Constructs a coinbase transaction",
		"Constructs the coinbase transaction of a block template", coinbaseConf)

	_, err := parser.Parse()

	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil
	}

	err = initLog(cfg)
	if err != nil {
		printErrorAndExit(err)
	}
	err = logger.ParseAndSetLogLevels(cfg.DebugLevel)
	if err != nil {
		printErrorAndExit(err)
	}

	var networkFlags *config.NetworkFlags
	switch parser.Command.Active.Name {
	case paramsSubCmd:
		networkFlags, conf = &paramsConf.NetworkFlags, paramsConf
	case genesisSubCmd:
		networkFlags, conf = &genesisConf.NetworkFlags, genesisConf
	case formatSubCmd:
		networkFlags, conf = &formatConf.NetworkFlags, formatConf
	case parseSubCmd:
		networkFlags, conf = &parseConf.NetworkFlags, parseConf
	case rewardSubCmd:
		networkFlags, conf = &rewardConf.NetworkFlags, rewardConf
	case difficultySubCmd:
		networkFlags, conf = &difficultyConf.NetworkFlags, difficultyConf
	case addressSubCmd:
		networkFlags, conf = &addressConf.NetworkFlags, addressConf
	case coinbaseSubCmd:
		networkFlags, conf = &coinbaseConf.NetworkFlags, coinbaseConf
	}

	combineNetworkFlags(networkFlags, &cfg.NetworkFlags)
	err = networkFlags.ResolveNetwork(parser)
	if err != nil {
		printErrorAndExit(err)
	}

	return parser.Command.Active.Name, conf
}

// initLog starts the backend log, writing into rotating files when a log
// directory is set and to stdout only otherwise
func initLog(cfg *configFlags) error {
	if cfg.LogDir == "" {
		logger.InitLogStdout(logger.LevelInfo)
		return nil
	}
	return logger.InitLog(filepath.Join(cfg.LogDir, logFilename), filepath.Join(cfg.LogDir, errLogFilename))
}

func combineNetworkFlags(dst, src *config.NetworkFlags) {
	dst.Testnet = dst.Testnet || src.Testnet
	if dst.OverrideParamsFile == "" {
		dst.OverrideParamsFile = src.OverrideParamsFile
	}
}
