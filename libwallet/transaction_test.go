package libwallet

import (
	"reflect"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

const (
	testTransactionIDHex  = "aa8bf8c6b06c73ef276a6f9b41d787b99b1f8b74951f8f474befac3c1d8ba474"
	otherTransactionIDHex = "0000000000000000000000000000000000000000000000000000000000000001"
)

func testKeyPair(t *testing.T) *KeyPair {
	keyPair, err := KeyPairFromPrivateKeyHex(goldenPrivateKeyHex)
	if err != nil {
		t.Fatalf("KeyPairFromPrivateKeyHex: %+v", err)
	}
	return keyPair
}

func buildTestTransaction(t *testing.T) *Transaction {
	tx := NewTransaction()
	err := tx.AddInput(testTransactionIDHex, 0)
	if err != nil {
		t.Fatalf("AddInput: %+v", err)
	}
	err = tx.AddInput(otherTransactionIDHex, 7)
	if err != nil {
		t.Fatalf("AddInput: %+v", err)
	}
	tx.AddOutput(goldenAddress, 12345)
	return tx
}

func TestAddInputValidatesTransactionID(t *testing.T) {
	tests := []struct {
		name          string
		transactionID string
	}{
		{"empty", ""},
		{"free-form string", "dummy"},
		{"too short", testTransactionIDHex[:62]},
		{"too long", testTransactionIDHex + "00"},
		{"not hex", strings.Replace(testTransactionIDHex, "a", "g", 1)},
	}

	for _, test := range tests {
		tx := NewTransaction()
		err := tx.AddInput(test.transactionID, 0)
		if !errors.Is(err, ErrInvalidTransactionID) {
			t.Errorf("%s: got error %v, want %v", test.name, err, ErrInvalidTransactionID)
		}
		if len(tx.Inputs) != 0 {
			t.Errorf("%s: invalid input was admitted into the transaction", test.name)
		}
	}
}

func TestSignInput(t *testing.T) {
	keyPair := testKeyPair(t)
	tx := buildTestTransaction(t)

	err := tx.SignInput(0, keyPair)
	if err != nil {
		t.Fatalf("SignInput: %+v", err)
	}
	if len(tx.Inputs[0].Signature) != 64 {
		t.Fatalf("Signature is %d bytes, expected 64", len(tx.Inputs[0].Signature))
	}
	if tx.Inputs[1].Signature != nil {
		t.Fatalf("Signing input 0 unexpectedly signed input 1")
	}
}

func TestSignInputIndexOutOfRange(t *testing.T) {
	keyPair := testKeyPair(t)
	tx := buildTestTransaction(t)

	serializedBefore, err := tx.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %+v", err)
	}

	for _, index := range []int{-1, 2, 100} {
		err := tx.SignInput(index, keyPair)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("SignInput(%d): got error %v, want %v", index, err, ErrIndexOutOfRange)
		}
	}

	serializedAfter, err := tx.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %+v", err)
	}
	if !reflect.DeepEqual(serializedBefore, serializedAfter) {
		t.Fatalf("Transaction was modified by failed signing attempts")
	}
}

func TestSignInputTwiceFails(t *testing.T) {
	keyPair := testKeyPair(t)
	tx := buildTestTransaction(t)

	err := tx.SignInput(0, keyPair)
	if err != nil {
		t.Fatalf("SignInput: %+v", err)
	}

	firstSignature := tx.Inputs[0].Signature
	err = tx.SignInput(0, keyPair)
	if !errors.Is(err, ErrInputAlreadySigned) {
		t.Fatalf("Got error %v, want %v", err, ErrInputAlreadySigned)
	}
	if !reflect.DeepEqual(tx.Inputs[0].Signature, firstSignature) {
		t.Fatalf("Failed re-signing replaced the existing signature")
	}
}

func TestSignInputIsDeterministic(t *testing.T) {
	keyPair := testKeyPair(t)

	firstTx := buildTestTransaction(t)
	secondTx := buildTestTransaction(t)

	err := firstTx.SignInput(0, keyPair)
	if err != nil {
		t.Fatalf("SignInput: %+v", err)
	}
	err = secondTx.SignInput(0, keyPair)
	if err != nil {
		t.Fatalf("SignInput: %+v", err)
	}

	if !reflect.DeepEqual(firstTx.Inputs[0].Signature, secondTx.Inputs[0].Signature) {
		t.Fatalf("Signing identical transactions produced different signatures:\n%s\n%s",
			spew.Sdump(firstTx.Inputs[0].Signature), spew.Sdump(secondTx.Inputs[0].Signature))
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	keyPair := testKeyPair(t)
	tx := buildTestTransaction(t)
	tx.AddOutput(goldenAddress, 999)

	// Sign only the first input, so the round trip covers both signed and
	// unsigned inputs.
	err := tx.SignInput(0, keyPair)
	if err != nil {
		t.Fatalf("SignInput: %+v", err)
	}

	serializedTx, err := tx.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %+v", err)
	}

	deserializedTx, err := DeserializeTransaction(serializedTx)
	if err != nil {
		t.Fatalf("DeserializeTransaction: %+v", err)
	}

	if !reflect.DeepEqual(tx, deserializedTx) {
		t.Fatalf("Transaction changed through a serialization round trip.\nbefore: %s\nafter: %s",
			spew.Sdump(tx), spew.Sdump(deserializedTx))
	}
}

func TestDeserializeTransactionErrors(t *testing.T) {
	_, err := DeserializeTransaction(nil)
	if err == nil {
		t.Fatalf("DeserializeTransaction unexpectedly succeeded on empty input")
	}

	tx := buildTestTransaction(t)
	serializedTx, err := tx.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %+v", err)
	}
	_, err = DeserializeTransaction(serializedTx[:len(serializedTx)-1])
	if err == nil {
		t.Fatalf("DeserializeTransaction unexpectedly succeeded on truncated input")
	}
}

func TestEstimatedSizeMatchesSerializedLength(t *testing.T) {
	keyPair := testKeyPair(t)
	tx := buildTestTransaction(t)

	for i := range tx.Inputs {
		err := tx.SignInput(i, keyPair)
		if err != nil {
			t.Fatalf("SignInput: %+v", err)
		}
	}

	serializedTx, err := tx.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %+v", err)
	}

	if tx.EstimatedSize() != uint64(len(serializedTx)) {
		t.Fatalf("Estimated size %d does not match serialized length %d",
			tx.EstimatedSize(), len(serializedTx))
	}
}

func TestEstimateFeeRounding(t *testing.T) {
	tx := buildTestTransaction(t)
	size := tx.EstimatedSize()

	// At a rate of 1000 sompi/kB the fee equals the size in bytes.
	if fee := tx.EstimateFee(1000); fee != size {
		t.Fatalf("EstimateFee(1000) = %d, want %d", fee, size)
	}

	// At a rate of 1 the fee is the size divided by 1000, rounded up.
	expected := (size + 999) / 1000
	if fee := tx.EstimateFee(1); fee != expected {
		t.Fatalf("EstimateFee(1) = %d, want %d", fee, expected)
	}

	if fee := tx.EstimateFee(0); fee != 0 {
		t.Fatalf("EstimateFee(0) = %d, want 0", fee)
	}
}
