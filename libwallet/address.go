package libwallet

import (
	"crypto/sha256"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"
)

// addressVersionPubKeyHash is the version byte prepended to pay-to-public-
// key-hash address payloads.
const addressVersionPubKeyHash = 0x00

// checksumLength is the length in bytes of the double-SHA256 checksum
// appended to address payloads.
const checksumLength = 4

// minDecodedAddressLength is the shortest decoded payload the validator
// accepts. The hash length is not itself checked, only that the payload
// leaves room for the checksum slice.
const minDecodedAddressLength = 21

// EncodeAddress converts a 33-byte compressed public key into a textual
// address of the form <prefix>:<base58>. The base58 payload is the version
// byte followed by ripemd160(sha256(publicKey)) and a 4-byte double-SHA256
// checksum. Encoding is deterministic and has no failure path for
// well-formed input.
func EncodeAddress(serializedPublicKey []byte, prefix string) string {
	hash := hash160(serializedPublicKey)

	payload := make([]byte, 0, 1+ripemd160.Size+checksumLength)
	payload = append(payload, addressVersionPubKeyHash)
	payload = append(payload, hash...)
	payload = append(payload, checksum(payload)...)

	return prefix + ":" + base58.Encode(payload)
}

// DecodeAndValidateAddress reports whether the given string is a
// structurally valid, checksum-correct address. It is total: every input
// maps to true or false and malformed input never produces an error or a
// panic. The version byte is deliberately not checked against a closed set,
// so addresses with unknown version bytes still validate.
func DecodeAndValidateAddress(address string) bool {
	return decodeAddress(address) == nil
}

// decodeAddress performs the structural and checksum validation behind
// DecodeAndValidateAddress, reporting the failure reason: the error wraps
// ErrInvalidAddressStructure for malformed input and ErrChecksumMismatch
// when only the checksum is wrong.
func decodeAddress(address string) error {
	parts := strings.Split(address, ":")
	if len(parts) != 2 {
		return errors.Wrapf(ErrInvalidAddressStructure,
			"expected exactly one ':' delimiter in %q", address)
	}

	decoded := base58.Decode(parts[1])
	if len(decoded) == 0 {
		return errors.Wrapf(ErrInvalidAddressStructure,
			"payload of %q is not valid base58", address)
	}
	if len(decoded) < minDecodedAddressLength {
		return errors.Wrapf(ErrInvalidAddressStructure,
			"payload of %q is %d bytes, expected at least %d",
			address, len(decoded), minDecodedAddressLength)
	}

	payload := decoded[:len(decoded)-checksumLength]
	expectedChecksum := decoded[len(decoded)-checksumLength:]
	actualChecksum := checksum(payload)
	for i := 0; i < checksumLength; i++ {
		if actualChecksum[i] != expectedChecksum[i] {
			return errors.Wrapf(ErrChecksumMismatch,
				"checksum of %q is %x, expected %x", address, actualChecksum, expectedChecksum)
		}
	}
	return nil
}

// checksum returns the first 4 bytes of sha256(sha256(payload)).
func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:checksumLength]
}

// hash160 returns ripemd160(sha256(data)).
func hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	return ripe.Sum(nil)
}
