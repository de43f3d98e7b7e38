package libwallet

import (
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

// CreateMnemonic generates a new 24-word BIP39 mnemonic from 256 bits of
// entropy.
func CreateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", errors.Wrapf(ErrEntropyUnavailable, "failed to generate mnemonic entropy: %s", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate mnemonic")
	}
	return mnemonic, nil
}

// KeyPairFromMnemonic derives a key pair from a BIP39 mnemonic. The mnemonic
// is checksum-validated, and the secret key is the first 32 bytes of the
// BIP39 seed.
func KeyPairFromMnemonic(mnemonic string) (*KeyPair, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, errors.Wrap(err, "invalid mnemonic")
	}
	return KeyPairFromPrivateKeyBytes(seed[:SecretKeyLength])
}
