package main

import (
	"fmt"

	"github.com/kaspanet/kaspawallet/libwallet"
)

func showAddress(conf *showAddressConfig) error {
	keyPair, err := keyPairFromFlags(conf.PrivateKey, conf.KeysFile, conf.NetParams())
	if err != nil {
		return err
	}

	wallet := libwallet.NewWallet(keyPair, conf.NetParams())
	address, err := wallet.Address()
	if err != nil {
		return err
	}

	fmt.Printf("Address (%s):\t%s\n", conf.NetParams().Name, address)
	return nil
}
