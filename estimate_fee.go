package main

import (
	"fmt"

	"github.com/kaspanet/kaspawallet/libwallet"
	"github.com/pkg/errors"
)

func estimateFee(conf *estimateFeeConfig) error {
	if conf.Inputs < 0 || conf.Outputs < 0 {
		return errors.Errorf("input and output counts must not be negative")
	}

	// Fee estimation needs no real keys, so a throwaway key pair is used.
	keyPair, err := libwallet.GenerateKeyPair()
	if err != nil {
		return err
	}

	wallet := libwallet.NewWallet(keyPair, conf.NetParams())
	fee := wallet.EstimateTransactionFee(conf.Inputs, conf.Outputs, conf.FeeRate)

	fmt.Println("Estimated fee:")
	fmt.Printf("Inputs: %d\n", conf.Inputs)
	fmt.Printf("Outputs: %d\n", conf.Outputs)
	fmt.Printf("Fee rate: %d sompi/kB\n", conf.FeeRate)
	fmt.Printf("Total fee: %d sompi\n", fee)
	return nil
}
