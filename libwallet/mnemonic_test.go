package libwallet

import (
	"strings"
	"testing"
)

// Standard BIP39 test mnemonic (all-zero entropy) with an empty passphrase.
const (
	testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	// The first 32 bytes of the BIP39 seed for testMnemonic.
	testMnemonicPrivateKeyHex = "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc1"
)

func TestCreateMnemonic(t *testing.T) {
	mnemonic, err := CreateMnemonic()
	if err != nil {
		t.Fatalf("CreateMnemonic: %+v", err)
	}

	if words := len(strings.Fields(mnemonic)); words != 24 {
		t.Fatalf("Mnemonic has %d words, expected 24", words)
	}

	_, err = KeyPairFromMnemonic(mnemonic)
	if err != nil {
		t.Fatalf("KeyPairFromMnemonic on a fresh mnemonic: %+v", err)
	}
}

func TestKeyPairFromMnemonic(t *testing.T) {
	keyPair, err := KeyPairFromMnemonic(testMnemonic)
	if err != nil {
		t.Fatalf("KeyPairFromMnemonic: %+v", err)
	}

	if privateKeyHex := keyPair.PrivateKeyHex(); privateKeyHex != testMnemonicPrivateKeyHex {
		t.Fatalf("Unexpected private key: got %s, want %s", privateKeyHex, testMnemonicPrivateKeyHex)
	}
}

func TestKeyPairFromMnemonicRejectsInvalidMnemonic(t *testing.T) {
	invalidMnemonics := []string{
		"",
		"not a mnemonic",
		// Valid words, wrong checksum.
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon",
	}

	for _, mnemonic := range invalidMnemonics {
		_, err := KeyPairFromMnemonic(mnemonic)
		if err == nil {
			t.Errorf("KeyPairFromMnemonic unexpectedly accepted %q", mnemonic)
		}
	}
}
