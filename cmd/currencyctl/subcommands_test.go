package main

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/domain/consensus/ruleerrors"
	"github.com/bytecoinlabs/currencyd/infrastructure/config"
	"github.com/bytecoinlabs/currencyd/util"
)

func resolvedNetworkFlags(t *testing.T, testnet bool) config.NetworkFlags {
	networkFlags := config.NetworkFlags{Testnet: testnet}
	err := networkFlags.ResolveNetwork(nil)
	if err != nil {
		t.Fatalf("ResolveNetwork: %+v", err)
	}
	return networkFlags
}

func TestSubCommands(t *testing.T) {
	mainnet := resolvedNetworkFlags(t, false)
	testnet := resolvedNetworkFlags(t, true)

	spendKey := strings.Repeat("11", externalapi.PublicKeySize)
	viewKey := strings.Repeat("22", externalapi.PublicKeySize)
	minerAddress := &externalapi.AccountPublicAddress{}
	minerAddress.SpendPublicKey[0] = 1
	minerAddress.ViewPublicKey[0] = 2
	mainnetAddress := mainnet.Currency().AddressCodec().EncodeAddress(minerAddress)
	testnetAddress := testnet.Currency().AddressCodec().EncodeAddress(minerAddress)
	fullRewardZone := mainnet.Currency().BlockGrantedFullRewardZone()

	tests := []struct {
		name        string
		run         func() error
		isValid     bool
		expectedErr error
	}{
		{
			name:    "params as json",
			run:     func() error { return params(&paramsConfig{Format: "json", NetworkFlags: mainnet}) },
			isValid: true,
		},
		{
			name:    "params as yaml",
			run:     func() error { return params(&paramsConfig{Format: "yaml", NetworkFlags: testnet}) },
			isValid: true,
		},
		{
			name:    "genesis",
			run:     func() error { return genesis(&genesisConfig{NetworkFlags: mainnet}) },
			isValid: true,
		},
		{
			name:    "format",
			run:     func() error { return format(&formatConfig{Amount: math.MaxUint64, NetworkFlags: mainnet}) },
			isValid: true,
		},
		{
			name:    "parse",
			run:     func() error { return parse(&parseConfig{Amount: "1.234567890123", NetworkFlags: mainnet}) },
			isValid: true,
		},
		{
			name:        "parse rejects a malformed amount",
			run:         func() error { return parse(&parseConfig{Amount: "1,5", NetworkFlags: mainnet}) },
			expectedErr: util.ErrInvalidAmountFormat,
		},
		{
			name:    "reward",
			run:     func() error { return reward(&rewardConfig{Height: 1, BlockSize: fullRewardZone + 1, NetworkFlags: mainnet}) },
			isValid: true,
		},
		{
			name: "reward of a block too big",
			run: func() error {
				return reward(&rewardConfig{Height: 1, BlockSize: 2*fullRewardZone + 1, NetworkFlags: mainnet})
			},
			expectedErr: ruleerrors.ErrBlockTooBig,
		},
		{
			name: "difficulty",
			run: func() error {
				return difficulty(&difficultyConfig{Timestamps: "0,120,240", CumulativeDifficulties: "0,1,2", NetworkFlags: mainnet})
			},
			isValid: true,
		},
		{
			name: "difficulty with unequal samples",
			run: func() error {
				return difficulty(&difficultyConfig{Timestamps: "0,120,240", CumulativeDifficulties: "0,1", NetworkFlags: mainnet})
			},
		},
		{
			name: "difficulty with a malformed list",
			run: func() error {
				return difficulty(&difficultyConfig{Timestamps: "0,a", CumulativeDifficulties: "0,1", NetworkFlags: mainnet})
			},
		},
		{
			name: "address encoding",
			run: func() error {
				return address(&addressConfig{SpendKey: spendKey, ViewKey: viewKey, NetworkFlags: mainnet})
			},
			isValid: true,
		},
		{
			name:    "address decoding",
			run:     func() error { return address(&addressConfig{Decode: mainnetAddress, NetworkFlags: mainnet}) },
			isValid: true,
		},
		{
			name:        "address of another network",
			run:         func() error { return address(&addressConfig{Decode: testnetAddress, NetworkFlags: mainnet}) },
			expectedErr: util.ErrInvalidAddressFormat,
		},
		{
			name:    "address without keys",
			run:     func() error { return address(&addressConfig{SpendKey: spendKey, NetworkFlags: mainnet}) },
			isValid: false,
		},
		{
			name: "coinbase",
			run: func() error {
				return coinbase(&coinbaseConfig{Address: testnetAddress, Height: 1, ExtraNonce: "0102",
					MaxOutputs: 10, ZeroRewardPolicy: "single-output", NetworkFlags: testnet})
			},
			isValid: true,
		},
		{
			name: "coinbase with a malformed extra nonce",
			run: func() error {
				return coinbase(&coinbaseConfig{Address: mainnetAddress, Height: 1, ExtraNonce: "zz",
					MaxOutputs: 10, ZeroRewardPolicy: "single-output", NetworkFlags: mainnet})
			},
		},
		{
			name: "coinbase rejecting a zero reward",
			run: func() error {
				return coinbase(&coinbaseConfig{
					Address:               mainnetAddress,
					Height:                1,
					AlreadyGeneratedCoins: mainnet.Currency().MoneySupply(),
					MaxOutputs:            10,
					ZeroRewardPolicy:      "reject",
					NetworkFlags:          mainnet,
				})
			},
			expectedErr: ruleerrors.ErrBadCoinbaseValue,
		},
		{
			name: "coinbase with an unknown zero reward policy",
			run: func() error {
				return coinbase(&coinbaseConfig{Address: mainnetAddress, Height: 1,
					MaxOutputs: 10, ZeroRewardPolicy: "burn", NetworkFlags: mainnet})
			},
		},
	}

	for _, test := range tests {
		err := test.run()
		if test.isValid {
			if err != nil {
				t.Errorf("%s: unexpected error: %+v", test.name, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("%s: expected an error", test.name)
			continue
		}
		if test.expectedErr != nil && !errors.Is(err, test.expectedErr) {
			t.Errorf("%s: expected %v, got %v", test.name, test.expectedErr, err)
		}
	}
}
