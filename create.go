package main

import (
	"fmt"

	"github.com/kaspanet/kaspawallet/dagconfig"
	"github.com/kaspanet/kaspawallet/keys"
	"github.com/kaspanet/kaspawallet/libwallet"
)

func create(conf *createConfig) error {
	mnemonic, err := libwallet.CreateMnemonic()
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

	data, err := keys.CreateData(mnemonic, publicKeyHex, conf.PasswordLess)
	if err != nil {
		return err
	}

	path, err := keys.WriteKeysFile(conf.NetParams(), conf.KeysFile, data, conf.Force)
	if err != nil {
		return err
	}
	log.Infof("Wrote the keys file to %s", path)
	fmt.Printf("Wrote the keys into %s\n\n", path)

	fmt.Println("This is the mnemonic of the new wallet. Anyone who knows it has access " +
		"to all wallet funds. Keep it safe and offline.")
	fmt.Printf("Mnemonic:\n%s\n\n", mnemonic)

	serializedPublicKey, err := keyPair.SerializedPublicKey()
	if err != nil {
		return err
	}

	fmt.Println("These are your public addresses for each network, where money is to be sent.")
	for _, netParams := range dagconfig.AllParams {
		address := libwallet.EncodeAddress(serializedPublicKey, netParams.Prefix)
		fmt.Printf("Address (%s):\t%s\n", netParams.Name, address)
	}

	return nil
}
