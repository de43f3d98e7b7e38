package keys

import (
	"path/filepath"
	"testing"

	"github.com/kaspanet/kaspawallet/dagconfig"
)

const (
	testMnemonic     = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	testPublicKeyHex = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
)

func TestEncryptDecryptMnemonic(t *testing.T) {
	password := []byte("hunter2")

	encryptedMnemonic, err := encryptMnemonic(testMnemonic, password)
	if err != nil {
		t.Fatalf("encryptMnemonic: %+v", err)
	}

	decrypted, err := decryptMnemonic(encryptedMnemonic, password)
	if err != nil {
		t.Fatalf("decryptMnemonic: %+v", err)
	}
	if decrypted != testMnemonic {
		t.Fatalf("Mnemonic changed through an encryption round trip: got %q", decrypted)
	}

	_, err = decryptMnemonic(encryptedMnemonic, []byte("wrong password"))
	if err == nil {
		t.Fatalf("decryptMnemonic unexpectedly succeeded with the wrong password")
	}
}

func TestCreateDataPasswordLess(t *testing.T) {
	// The password-less path must not prompt and must encrypt under an
	// empty password, so an empty prompt response decrypts it later.
	data, err := CreateData(testMnemonic, testPublicKeyHex, true)
	if err != nil {
		t.Fatalf("CreateData: %+v", err)
	}
	if data.PublicKeyHex != testPublicKeyHex {
		t.Fatalf("CreateData stored public key %q, expected %q", data.PublicKeyHex, testPublicKeyHex)
	}

	decrypted, err := decryptMnemonic(data.EncryptedMnemonic, []byte{})
	if err != nil {
		t.Fatalf("decryptMnemonic with an empty password: %+v", err)
	}
	if decrypted != testMnemonic {
		t.Fatalf("Mnemonic changed through a password-less round trip: got %q", decrypted)
	}

	_, err = decryptMnemonic(data.EncryptedMnemonic, []byte("some password"))
	if err == nil {
		t.Fatalf("decryptMnemonic unexpectedly succeeded with a non-empty password")
	}
}

func TestKeysFileRoundTrip(t *testing.T) {
	password := []byte("hunter2")
	path := filepath.Join(t.TempDir(), "keys.json")

	encryptedMnemonic, err := encryptMnemonic(testMnemonic, password)
	if err != nil {
		t.Fatalf("encryptMnemonic: %+v", err)
	}
	data := &Data{
		EncryptedMnemonic: encryptedMnemonic,
		PublicKeyHex:      testPublicKeyHex,
	}

	writtenPath, err := WriteKeysFile(&dagconfig.MainnetParams, path, data, false)
	if err != nil {
		t.Fatalf("WriteKeysFile: %+v", err)
	}
	if writtenPath != path {
		t.Fatalf("WriteKeysFile wrote to %s, expected %s", writtenPath, path)
	}

	// A second write to the same path must be refused without the force flag.
	_, err = WriteKeysFile(&dagconfig.MainnetParams, path, data, false)
	if err == nil {
		t.Fatalf("WriteKeysFile unexpectedly overwrote an existing file")
	}
	_, err = WriteKeysFile(&dagconfig.MainnetParams, path, data, true)
	if err != nil {
		t.Fatalf("WriteKeysFile with force: %+v", err)
	}

	readData, err := ReadKeysFile(&dagconfig.MainnetParams, path)
	if err != nil {
		t.Fatalf("ReadKeysFile: %+v", err)
	}
	if readData.PublicKeyHex != testPublicKeyHex {
		t.Fatalf("Public key changed through a file round trip: got %q", readData.PublicKeyHex)
	}

	decrypted, err := decryptMnemonic(readData.EncryptedMnemonic, password)
	if err != nil {
		t.Fatalf("decryptMnemonic after file round trip: %+v", err)
	}
	if decrypted != testMnemonic {
		t.Fatalf("Mnemonic changed through a file round trip: got %q", decrypted)
	}
}
