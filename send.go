package main

import (
	"encoding/hex"
	"fmt"

	"github.com/kaspanet/kaspawallet/libwallet"
)

func send(conf *sendConfig) error {
	keyPair, err := keyPairFromFlags(conf.PrivateKey, conf.KeysFile, conf.NetParams())
	if err != nil {
		return err
	}

	outpoints := make([]*libwallet.PreviousOutpoint, len(conf.Inputs))
	for i, input := range conf.Inputs {
		outpoints[i], err = parseOutpoint(input)
		if err != nil {
			return err
		}
	}

	payments := make([]*libwallet.Payment, len(conf.Outputs))
	for i, output := range conf.Outputs {
		payments[i], err = parsePayment(output)
		if err != nil {
			return err
		}
	}

	wallet := libwallet.NewWallet(keyPair, conf.NetParams())
	tx, err := wallet.CreateTransaction(outpoints, payments)
	if err != nil {
		return err
	}

	serializedTx, err := tx.Serialize()
	if err != nil {
		return err
	}
	log.Infof("Built a transaction with %d inputs and %d outputs, %d bytes serialized",
		len(tx.Inputs), len(tx.Outputs), len(serializedTx))

	fmt.Println("Transaction created:")
	fmt.Printf("Version: %d\n", tx.Version)
	fmt.Println("Inputs:")
	for i, input := range tx.Inputs {
		fmt.Printf("  %d: %s:%d (signed: %t)\n",
			i, input.PreviousTransactionID.String(), input.PreviousOutputIndex, input.Signature != nil)
	}
	fmt.Println("Outputs:")
	for i, output := range tx.Outputs {
		fmt.Printf("  %d: %s (%d sompi)\n", i, output.Address, output.Amount)
	}
	fmt.Printf("Estimated fee: %d sompi\n", tx.EstimateFee(conf.FeeRate))
	fmt.Printf("Serialized: %s\n", hex.EncodeToString(serializedTx))

	return nil
}
