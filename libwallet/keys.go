package libwallet

import (
	"encoding/hex"

	"github.com/kaspanet/go-secp256k1"
	"github.com/pkg/errors"
)

const (
	// SecretKeyLength is the length in bytes of a serialized secret key.
	SecretKeyLength = 32

	// PublicKeyLength is the length in bytes of a serialized compressed
	// public key.
	PublicKeyLength = 33
)

// KeyPair couples a secp256k1 secret key with its derived public key. The
// public key is always rederived from the secret key, so the pair invariant
// (publicKey = secretKey·G) holds for every KeyPair in existence.
type KeyPair struct {
	privateKey *secp256k1.ECDSAPrivateKey
	publicKey  *secp256k1.ECDSAPublicKey
}

// GenerateKeyPair generates a new key pair from the secure random source.
// If the random source fails, the error wraps ErrEntropyUnavailable rather
// than silently retrying with anything weaker.
func GenerateKeyPair() (*KeyPair, error) {
	privateKey, err := secp256k1.GenerateECDSAPrivateKey()
	if err != nil {
		return nil, errors.Wrapf(ErrEntropyUnavailable, "failed to generate private key: %s", err)
	}
	return newKeyPair(privateKey)
}

// KeyPairFromPrivateKeyHex rebuilds a key pair from a secret key given as 64
// hexadecimal characters.
func KeyPairFromPrivateKeyHex(privateKeyHex string) (*KeyPair, error) {
	serialized, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidHexEncoding, "cannot decode private key hex: %s", err)
	}
	return KeyPairFromPrivateKeyBytes(serialized)
}

// KeyPairFromPrivateKeyBytes rebuilds a key pair from a 32-byte secret key.
func KeyPairFromPrivateKeyBytes(serialized []byte) (*KeyPair, error) {
	if len(serialized) != SecretKeyLength {
		return nil, errors.Wrapf(ErrInvalidKeyLength,
			"private key is %d bytes, expected %d", len(serialized), SecretKeyLength)
	}

	privateKey, err := secp256k1.DeserializeECDSAPrivateKeyFromSlice(serialized)
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}
	return newKeyPair(privateKey)
}

func newKeyPair(privateKey *secp256k1.ECDSAPrivateKey) (*KeyPair, error) {
	publicKey, err := privateKey.ECDSAPublicKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive public key")
	}
	return &KeyPair{privateKey: privateKey, publicKey: publicKey}, nil
}

// PrivateKeyHex returns the secret key as 64 lowercase hexadecimal
// characters.
func (keyPair *KeyPair) PrivateKeyHex() string {
	serialized := keyPair.privateKey.Serialize()
	return hex.EncodeToString(serialized[:])
}

// SerializedPublicKey returns the public key in its 33-byte compressed form.
func (keyPair *KeyPair) SerializedPublicKey() ([]byte, error) {
	serialized, err := keyPair.publicKey.Serialize()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize public key")
	}
	return serialized[:], nil
}

// PublicKeyHex returns the compressed public key as 66 lowercase hexadecimal
// characters.
func (keyPair *KeyPair) PublicKeyHex() (string, error) {
	serialized, err := keyPair.SerializedPublicKey()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(serialized), nil
}

// ValidatePublicKeyHex checks that the given string is a well-formed 33-byte
// compressed public key in hex form.
func ValidatePublicKeyHex(publicKeyHex string) error {
	serialized, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return errors.Wrapf(ErrInvalidHexEncoding, "cannot decode public key hex: %s", err)
	}
	if len(serialized) != PublicKeyLength {
		return errors.Wrapf(ErrInvalidKeyLength,
			"public key is %d bytes, expected %d", len(serialized), PublicKeyLength)
	}
	return nil
}
