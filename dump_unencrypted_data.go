package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/kaspanet/kaspawallet/keys"
	"github.com/kaspanet/kaspawallet/libwallet"
	"github.com/pkg/errors"
)

func dumpUnencryptedData(conf *dumpUnencryptedDataConfig) error {
	err := confirmDump()
	if err != nil {
		return err
	}

	keysFile, err := keys.ReadKeysFile(conf.NetParams(), conf.KeysFile)
	if err != nil {
		return err
	}

	mnemonic, err := keysFile.DecryptMnemonic()
	if err != nil {
		return err
	}

	keyPair, err := libwallet.KeyPairFromMnemonic(mnemonic)
	if err != nil {
		return err
	}

	publicKeyHex, err := keyPair.PublicKeyHex()
	if err != nil {
		return err
	}

	fmt.Printf("Mnemonic:\n%s\n\n", mnemonic)
	fmt.Printf("Private key:\t%s\n", keyPair.PrivateKeyHex())
	fmt.Printf("Public key:\t%s\n", publicKeyHex)
	return nil
}

func confirmDump() error {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("This operation will print your unencrypted mnemonic and private key. Anyone " +
		"who sees them can access your funds. Are you sure you want to proceed (y/N)? ")
	line, _, err := reader.ReadLine()
	if err != nil {
		return errors.WithStack(err)
	}

	if string(line) != "y" {
		return errors.New("Dump aborted by user")
	}

	return nil
}
