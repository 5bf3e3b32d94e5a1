package main

import (
	"fmt"
	"os"

	"github.com/bytecoinlabs/currencyd/domain/consensus/model/externalapi"
	"github.com/bytecoinlabs/currencyd/domain/consensus/utils/hashes"
	"github.com/bytecoinlabs/currencyd/infrastructure/config"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/ed25519"
)

type configFlags struct {
	Mnemonic   string `long:"mnemonic" short:"m" description:"An existing BIP-39 mnemonic to derive the keys from"`
	Passphrase string `long:"passphrase" short:"p" description:"The BIP-39 passphrase"`
	config.NetworkFlags
}

// accountKeys holds the key pairs an address is derived from
type accountKeys struct {
	spendPrivateKey ed25519.PrivateKey
	viewPrivateKey  ed25519.PrivateKey
	address         externalapi.AccountPublicAddress
}

// deriveAccountKeys derives the spend key from the BIP-39 seed of mnemonic,
// and the view key from the Keccak hash of the spend key seed
func deriveAccountKeys(mnemonic string, passphrase string) (*accountKeys, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid mnemonic")
	}

	spendSeed := seed[:ed25519.SeedSize]
	viewSeed := hashes.HashData(spendSeed).ByteSlice()

	keys := &accountKeys{
		spendPrivateKey: ed25519.NewKeyFromSeed(spendSeed),
		viewPrivateKey:  ed25519.NewKeyFromSeed(viewSeed),
	}
	copy(keys.address.SpendPublicKey[:], keys.spendPrivateKey.Public().(ed25519.PublicKey))
	copy(keys.address.ViewPublicKey[:], keys.viewPrivateKey.Public().(ed25519.PublicKey))
	return keys, nil
}

func newMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", errors.WithStack(err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return mnemonic, nil
}

func main() {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.Default)
	_, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	err = cfg.ResolveNetwork(parser)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	mnemonic := cfg.Mnemonic
	if mnemonic == "" {
		mnemonic, err = newMnemonic()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate a mnemonic: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("Mnemonic: %s\n", mnemonic)
	}

	keys, err := deriveAccountKeys(mnemonic, cfg.Passphrase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to derive keys: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Spend secret seed: %x\n", keys.spendPrivateKey.Seed())
	fmt.Printf("Spend public key: %s\n", keys.address.SpendPublicKey)
	fmt.Printf("View secret seed: %x\n", keys.viewPrivateKey.Seed())
	fmt.Printf("View public key: %s\n", keys.address.ViewPublicKey)
	fmt.Printf("Address (%s): %s\n", cfg.Currency().NetworkName(),
		cfg.Currency().AddressCodec().EncodeAddress(&keys.address))
}
