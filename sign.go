package main

import (
	"encoding/hex"
	"fmt"

	"github.com/kaspanet/kaspawallet/libwallet"
	"github.com/pkg/errors"
)

func sign(conf *signConfig) error {
	keyPair, err := keyPairFromFlags(conf.PrivateKey, conf.KeysFile, conf.NetParams())
	if err != nil {
		return err
	}

	serializedTx, err := hex.DecodeString(conf.Transaction)
	if err != nil {
		return errors.Wrapf(libwallet.ErrInvalidHexEncoding, "cannot decode transaction hex: %s", err)
	}

	tx, err := libwallet.DeserializeTransaction(serializedTx)
	if err != nil {
		return err
	}

	signedCount := 0
	for i, input := range tx.Inputs {
		if input.Signature != nil {
			continue
		}
		err := tx.SignInput(i, keyPair)
		if err != nil {
			return err
		}
		signedCount++
	}
	log.Infof("Signed %d inputs of %d", signedCount, len(tx.Inputs))

	reserializedTx, err := tx.Serialize()
	if err != nil {
		return err
	}

	fmt.Printf("Signed %d inputs\n", signedCount)
	fmt.Printf("Serialized: %s\n", hex.EncodeToString(reserializedTx))
	return nil
}
