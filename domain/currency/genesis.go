package currency

import (
	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/constants"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/hashes"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/transactionhelper"
	"github.com/bytecoinlabs/currencyd/util"
)

// genesisTimestamp is the timestamp of every genesis block
const genesisTimestamp = 0

func generateGenesisBlock(config *Config) (*externalapi.DomainBlock, error) {
	coinbase, err := generateGenesisTransaction(config)
	if err != nil {
		return nil, err
	}

	return &externalapi.DomainBlock{
		Header: &externalapi.DomainBlockHeader{
			MajorVersion:      constants.BlockMajorVersion,
			MinorVersion:      constants.BlockMinorVersion,
			Timestamp:         genesisTimestamp,
			PreviousBlockHash: externalapi.DomainHash{},
			Nonce:             constants.GenesisNonce,
		},
		CoinbaseTransaction: coinbase,
		TransactionHashes:   []*externalapi.DomainHash{},
	}, nil
}

// generateGenesisTransaction builds the coinbase of the genesis block. It pays
// the whole base reward at height zero in a single output.
func generateGenesisTransaction(config *Config) (*externalapi.DomainTransaction, error) {
	address, err := genesisCoinbaseAddress(config)
	if err != nil {
		return nil, err
	}

	extra, err := transactionhelper.CoinbaseExtra(0, nil)
	if err != nil {
		return nil, err
	}

	// No coins were generated before the genesis block and it has no size penalty
	reward := config.MoneySupply >> config.EmissionSpeedFactor
	outputs := []*externalapi.DomainTransactionOutput{{
		Amount: reward,
		Key:    address.SpendPublicKey,
	}}
	return transactionhelper.NewCoinbaseTransaction(0, config.MinedMoneyUnlockWindow, outputs, extra), nil
}

func genesisCoinbaseAddress(config *Config) (*externalapi.AccountPublicAddress, error) {
	if config.GenesisCoinbaseAddress != "" {
		return util.NewAddressCodec(config.PublicAddressBase58Prefix).DecodeAddress(config.GenesisCoinbaseAddress)
	}
	return placeholderAddress(config.NetworkName), nil
}

// placeholderAddress returns an address with no known private keys, unique
// to the network name
func placeholderAddress(networkName string) *externalapi.AccountPublicAddress {
	return &externalapi.AccountPublicAddress{
		SpendPublicKey: externalapi.PublicKey(*hashes.HashData([]byte(networkName)).ByteArray()),
		ViewPublicKey:  externalapi.PublicKey(*hashes.HashData([]byte("view:" + networkName)).ByteArray()),
	}
}
