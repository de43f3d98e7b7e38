package main

import (
	"fmt"

	"github.com/kaspanet/kaspawallet/libwallet"
)

func validateAddress(conf *validateAddressConfig) error {
	isValid := libwallet.DecodeAndValidateAddress(conf.Address)

	fmt.Printf("Address: %s\n", conf.Address)
	fmt.Printf("Valid: %t\n", isValid)
	return nil
}
