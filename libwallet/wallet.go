package libwallet

import (
	"github.com/kaspanet/kaspawallet/dagconfig"
	"github.com/pkg/errors"
)

// feeEstimationPlaceholderAddress stands in for real destination addresses
// when estimating fees. Its length matches a typical mainnet address, and
// since it is a placeholder it deliberately bypasses address validation.
const feeEstimationPlaceholderAddress = "kaspa:xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"

// PreviousOutpoint references the output being spent by a transaction
// input, with the transaction ID still in its textual form.
type PreviousOutpoint struct {
	TransactionID string
	Index         uint32
}

// Payment is a destination address and an amount in sompi.
type Payment struct {
	Address string
	Amount  uint64
}

// Wallet binds a key pair to a network and exposes the operations the CLI
// calls into: address derivation, transaction construction and signing, and
// fee estimation.
type Wallet struct {
	keyPair *KeyPair
	params  *dagconfig.Params
}

// NewWallet creates a wallet for the given key pair on the given network.
func NewWallet(keyPair *KeyPair, params *dagconfig.Params) *Wallet {
	return &Wallet{keyPair: keyPair, params: params}
}

// KeyPair returns the wallet's key pair.
func (w *Wallet) KeyPair() *KeyPair {
	return w.keyPair
}

// Address derives the wallet's address on its network.
func (w *Wallet) Address() (string, error) {
	serializedPublicKey, err := w.keyPair.SerializedPublicKey()
	if err != nil {
		return "", err
	}
	return EncodeAddress(serializedPublicKey, w.params.Prefix), nil
}

// CreateTransaction builds a transaction spending the given outpoints to the
// given payments and signs all of its inputs. Every payment address is
// validated before it is admitted into the transaction, so a structurally
// invalid destination never reaches the output list.
func (w *Wallet) CreateTransaction(outpoints []*PreviousOutpoint, payments []*Payment) (*Transaction, error) {
	tx := NewTransaction()

	for _, outpoint := range outpoints {
		err := tx.AddInput(outpoint.TransactionID, outpoint.Index)
		if err != nil {
			return nil, err
		}
	}

	for _, payment := range payments {
		if !DecodeAndValidateAddress(payment.Address) {
			return nil, errors.Wrapf(ErrInvalidOutputAddress, "%q", payment.Address)
		}
		tx.AddOutput(payment.Address, payment.Amount)
	}

	for i := range tx.Inputs {
		err := tx.SignInput(i, w.keyPair)
		if err != nil {
			return nil, err
		}
	}

	return tx, nil
}

// EstimateTransactionFee estimates the fee of a transaction with the given
// number of inputs and outputs at the given fee rate, without building a
// valid transaction: inputs reference the zero transaction ID and outputs
// use a fixed placeholder address.
func (w *Wallet) EstimateTransactionFee(inputCount, outputCount int, feeRate uint64) uint64 {
	tx := NewTransaction()
	for i := 0; i < inputCount; i++ {
		tx.Inputs = append(tx.Inputs, &TxInput{})
	}
	for i := 0; i < outputCount; i++ {
		tx.AddOutput(feeEstimationPlaceholderAddress, 0)
	}
	return tx.EstimateFee(feeRate)
}
