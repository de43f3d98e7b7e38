package main

import (
	"github.com/kaspanet/kaspawallet/dagconfig"
	"github.com/kaspanet/kaspawallet/keys"
	"github.com/kaspanet/kaspawallet/libwallet"
	"github.com/pkg/errors"
)

// keyPairFromFlags resolves the wallet key pair for commands that accept
// either an explicit --private-key or a keys file. An explicit private key
// always wins; otherwise the keys file mnemonic is decrypted.
func keyPairFromFlags(privateKeyHex string, keysFilePath string, netParams *dagconfig.Params) (*libwallet.KeyPair, error) {
	if privateKeyHex != "" {
		return libwallet.KeyPairFromPrivateKeyHex(privateKeyHex)
	}

	keysFile, err := keys.ReadKeysFile(netParams, keysFilePath)
	if err != nil {
		return nil, err
	}

	mnemonic, err := keysFile.DecryptMnemonic()
	if err != nil {
		return nil, err
	}

	keyPair, err := libwallet.KeyPairFromMnemonic(mnemonic)
	if err != nil {
		return nil, errors.Wrap(err, "cannot derive the key pair from the keys file mnemonic")
	}
	return keyPair, nil
}
