package libwallet

import "github.com/pkg/errors"

// Sentinel errors returned by the wallet core. Callers are expected to test
// for them with errors.Is; all of them may arrive wrapped with additional
// context.
var (
	// ErrInvalidHexEncoding is returned when a key or transaction given as
	// hexadecimal text cannot be decoded.
	ErrInvalidHexEncoding = errors.New("invalid hex encoding")

	// ErrInvalidKeyLength is returned when a decoded key has the wrong length.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidAddressStructure is returned when an address string is
	// malformed: wrong delimiter count, non-base58 payload, or a payload
	// below the minimum decoded length.
	ErrInvalidAddressStructure = errors.New("invalid address structure")

	// ErrChecksumMismatch is returned when an address payload decodes
	// correctly but its checksum does not match.
	ErrChecksumMismatch = errors.New("address checksum mismatch")

	// ErrInvalidTransactionID is returned when a transaction ID is not
	// exactly 64 hexadecimal characters.
	ErrInvalidTransactionID = errors.New("invalid transaction ID")

	// ErrIndexOutOfRange is returned when signing an input index that does
	// not exist in the transaction.
	ErrIndexOutOfRange = errors.New("input index out of range")

	// ErrInputAlreadySigned is returned when signing an input that already
	// carries a signature.
	ErrInputAlreadySigned = errors.New("input is already signed")

	// ErrInvalidOutputAddress is returned when an output address fails
	// validation before being admitted into a transaction.
	ErrInvalidOutputAddress = errors.New("invalid output address")

	// ErrEntropyUnavailable is returned when the secure random source fails
	// during key generation.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")
)
