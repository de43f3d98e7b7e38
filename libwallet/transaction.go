package libwallet

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/kaspawallet/libwallet/serialization"
	"github.com/pkg/errors"
)

// transactionVersion is the current transaction serialization version.
const transactionVersion = 1

// maxVarFieldLength bounds variable-length fields (signatures, addresses)
// when deserializing, so a corrupted length prefix cannot trigger a huge
// allocation.
const maxVarFieldLength = 1024

// TransactionIDLength is the length in bytes of a transaction ID.
const TransactionIDLength = 32

// TransactionID identifies a previous transaction whose output is being
// spent. It is exchanged with callers as a 64-character hexadecimal string.
type TransactionID [TransactionIDLength]byte

// NewTransactionIDFromHex parses a transaction ID out of exactly 64
// hexadecimal characters.
func NewTransactionIDFromHex(transactionIDHex string) (*TransactionID, error) {
	if len(transactionIDHex) != hex.EncodedLen(TransactionIDLength) {
		return nil, errors.Wrapf(ErrInvalidTransactionID,
			"transaction ID %q is %d characters, expected %d",
			transactionIDHex, len(transactionIDHex), hex.EncodedLen(TransactionIDLength))
	}

	transactionID := &TransactionID{}
	_, err := hex.Decode(transactionID[:], []byte(transactionIDHex))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidTransactionID,
			"transaction ID %q is not valid hex: %s", transactionIDHex, err)
	}
	return transactionID, nil
}

func (id *TransactionID) String() string {
	return hex.EncodeToString(id[:])
}

// TxInput references a previous transaction output. Signature is nil until
// SignInput is called for the input's index.
type TxInput struct {
	PreviousTransactionID TransactionID
	PreviousOutputIndex   uint32
	Signature             []byte
}

// TxOutput sends Amount (in sompi) to Address. The wallet layer validates
// Address before the output is admitted; see Wallet.CreateTransaction.
type TxOutput struct {
	Address string
	Amount  uint64
}

// Transaction is an ordered set of inputs and outputs under construction.
// Inputs and outputs can only be appended, never removed; every input can be
// signed exactly once. A Transaction is exclusively owned by its builder and
// is not safe for concurrent mutation.
type Transaction struct {
	Version uint16
	Inputs  []*TxInput
	Outputs []*TxOutput
}

// NewTransaction creates an empty transaction with the current version.
func NewTransaction() *Transaction {
	return &Transaction{Version: transactionVersion}
}

// AddInput appends an unsigned input spending output index
// previousOutputIndex of the transaction identified by transactionIDHex.
func (tx *Transaction) AddInput(transactionIDHex string, previousOutputIndex uint32) error {
	transactionID, err := NewTransactionIDFromHex(transactionIDHex)
	if err != nil {
		return err
	}

	tx.Inputs = append(tx.Inputs, &TxInput{
		PreviousTransactionID: *transactionID,
		PreviousOutputIndex:   previousOutputIndex,
	})
	return nil
}

// AddOutput appends an output. Address validation happens one level up, in
// the wallet layer, so that fee estimation can build placeholder outputs
// through the same path.
func (tx *Transaction) AddOutput(address string, amount uint64) {
	tx.Outputs = append(tx.Outputs, &TxOutput{Address: address, Amount: amount})
}

// SignInput signs the input at the given index with the given key pair and
// stores the resulting 64-byte signature on the input. The signing payload
// is the SHA256 of the transaction's unsigned serialization, so it binds the
// complete input and output set at the time of signing. Signatures are
// deterministic (RFC6979 nonces), so signing identical transactions with the
// same key always yields identical bytes.
//
// Signing a non-existent index fails with ErrIndexOutOfRange and signing an
// already-signed input fails with ErrInputAlreadySigned; in both cases the
// transaction is left unmodified.
func (tx *Transaction) SignInput(index int, keyPair *KeyPair) error {
	if index < 0 || index >= len(tx.Inputs) {
		return errors.Wrapf(ErrIndexOutOfRange,
			"cannot sign input %d of a transaction with %d inputs", index, len(tx.Inputs))
	}
	if tx.Inputs[index].Signature != nil {
		return errors.Wrapf(ErrInputAlreadySigned, "input %d", index)
	}

	payloadHash, err := tx.signingPayloadHash()
	if err != nil {
		return err
	}

	secpHash := secp256k1.Hash(payloadHash)
	signature, err := keyPair.privateKey.ECDSASign(&secpHash)
	if err != nil {
		return errors.Wrapf(err, "cannot sign input %d", index)
	}

	tx.Inputs[index].Signature = signature.Serialize()[:]
	return nil
}

// signingPayloadHash returns the SHA256 of the transaction serialized
// without signatures.
func (tx *Transaction) signingPayloadHash() ([sha256.Size]byte, error) {
	buffer := &bytes.Buffer{}
	err := tx.serialize(buffer, false)
	if err != nil {
		return [sha256.Size]byte{}, err
	}
	return sha256.Sum256(buffer.Bytes()), nil
}

// Serialize encodes the transaction into its wire format. The layout is
// fixed, fully reversible, and uses little-endian integers throughout:
//
//	version                   uint16
//	input count               uint64
//	per input:
//	  previous transaction ID 32 bytes
//	  previous output index   uint32
//	  signature flag          uint8 (0 = unsigned, 1 = signed)
//	  signature               uint64 length prefix + bytes, when signed
//	output count              uint64
//	per output:
//	  address                 uint64 length prefix + UTF-8 bytes
//	  amount                  uint64
func (tx *Transaction) Serialize() ([]byte, error) {
	buffer := &bytes.Buffer{}
	err := tx.serialize(buffer, true)
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func (tx *Transaction) serialize(buffer *bytes.Buffer, includeSignatures bool) error {
	err := serialization.WriteUint16(buffer, tx.Version)
	if err != nil {
		return err
	}

	err = serialization.WriteUint64(buffer, uint64(len(tx.Inputs)))
	if err != nil {
		return err
	}
	for _, input := range tx.Inputs {
		err := serialization.WriteBytes(buffer, input.PreviousTransactionID[:])
		if err != nil {
			return err
		}
		err = serialization.WriteUint32(buffer, input.PreviousOutputIndex)
		if err != nil {
			return err
		}
		if !includeSignatures {
			continue
		}
		if input.Signature == nil {
			err = serialization.WriteUint8(buffer, 0)
			if err != nil {
				return err
			}
			continue
		}
		err = serialization.WriteUint8(buffer, 1)
		if err != nil {
			return err
		}
		err = serialization.WriteVarBytes(buffer, input.Signature)
		if err != nil {
			return err
		}
	}

	err = serialization.WriteUint64(buffer, uint64(len(tx.Outputs)))
	if err != nil {
		return err
	}
	for _, output := range tx.Outputs {
		err := serialization.WriteVarBytes(buffer, []byte(output.Address))
		if err != nil {
			return err
		}
		err = serialization.WriteUint64(buffer, output.Amount)
		if err != nil {
			return err
		}
	}
	return nil
}

// DeserializeTransaction reconstructs a transaction from its wire format, as
// produced by Serialize.
func DeserializeTransaction(serializedTx []byte) (*Transaction, error) {
	reader := bytes.NewReader(serializedTx)

	version, err := serialization.ReadUint16(reader)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read transaction version")
	}
	tx := &Transaction{Version: version}

	inputCount, err := serialization.ReadUint64(reader)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read input count")
	}
	for i := uint64(0); i < inputCount; i++ {
		input := &TxInput{}
		transactionID, err := serialization.ReadBytes(reader, TransactionIDLength)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read transaction ID of input %d", i)
		}
		copy(input.PreviousTransactionID[:], transactionID)

		input.PreviousOutputIndex, err = serialization.ReadUint32(reader)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read output index of input %d", i)
		}

		signatureFlag, err := serialization.ReadUint8(reader)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read signature flag of input %d", i)
		}
		if signatureFlag == 1 {
			input.Signature, err = serialization.ReadVarBytes(reader, maxVarFieldLength)
			if err != nil {
				return nil, errors.Wrapf(err, "cannot read signature of input %d", i)
			}
		}
		tx.Inputs = append(tx.Inputs, input)
	}

	outputCount, err := serialization.ReadUint64(reader)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read output count")
	}
	for i := uint64(0); i < outputCount; i++ {
		address, err := serialization.ReadVarBytes(reader, maxVarFieldLength)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read address of output %d", i)
		}
		amount, err := serialization.ReadUint64(reader)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read amount of output %d", i)
		}
		tx.Outputs = append(tx.Outputs, &TxOutput{Address: string(address), Amount: amount})
	}

	return tx, nil
}

// EstimatedSize returns the size in bytes the transaction would serialize
// to, with every unsigned input costed as if it already carried a 64-byte
// signature. For a fully signed transaction the estimate equals the actual
// serialized length.
func (tx *Transaction) EstimatedSize() uint64 {
	// version + input count + output count.
	size := uint64(2 + 8 + 8)
	for range tx.Inputs {
		// transaction ID + output index + signature flag +
		// signature length prefix + signature.
		size += TransactionIDLength + 4 + 1 + 8 + secp256k1.SerializedECDSASignatureSize
	}
	for _, output := range tx.Outputs {
		// address length prefix + address + amount.
		size += 8 + uint64(len(output.Address)) + 8
	}
	return size
}

// EstimateFee computes the linear fee for the transaction at the given fee
// rate, expressed in sompi per kilobyte-equivalent:
// fee = ceil(estimatedSize · feeRate / 1000). It never requires the
// transaction to be signed.
func (tx *Transaction) EstimateFee(feeRate uint64) uint64 {
	return (tx.EstimatedSize()*feeRate + 999) / 1000
}
