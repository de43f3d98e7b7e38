package keys

import (
	"crypto/rand"
	"crypto/subtle"

	"github.com/pkg/errors"
)

// CreateData encrypts the given mnemonic under a password read from the
// terminal and returns keys file data ready to be written. With passwordLess
// the prompt is skipped and the mnemonic is encrypted under an empty
// password, so decryption succeeds with an empty prompt response.
func CreateData(mnemonic string, publicKeyHex string, passwordLess bool) (*Data, error) {
	password := []byte{}
	if !passwordLess {
		password = getPassword("Enter password for the keys file:")
		confirmPassword := getPassword("Confirm password:")

		if subtle.ConstantTimeCompare(password, confirmPassword) != 1 {
			return nil, errors.New("Passwords are not identical")
		}
	}

	encryptedMnemonic, err := encryptMnemonic(mnemonic, password)
	if err != nil {
		return nil, err
	}

	return &Data{
		EncryptedMnemonic: encryptedMnemonic,
		PublicKeyHex:      publicKeyHex,
	}, nil
}

func generateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	_, err := rand.Read(salt)
	if err != nil {
		return nil, errors.Wrap(err, "cannot generate salt")
	}
	return salt, nil
}

func encryptMnemonic(mnemonic string, password []byte) (*EncryptedMnemonic, error) {
	salt, err := generateSalt()
	if err != nil {
		return nil, err
	}

	aead, err := getAEAD(password, salt)
	if err != nil {
		return nil, err
	}

	// Select a random nonce, and leave capacity for the ciphertext.
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(mnemonic)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Wrap(err, "cannot generate nonce")
	}

	// Encrypt the message and append the ciphertext to the nonce.
	cipherBytes := aead.Seal(nonce, nonce, []byte(mnemonic), nil)

	return &EncryptedMnemonic{
		cipher: cipherBytes,
		salt:   salt,
	}, nil
}
