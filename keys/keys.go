// Package keys handles the wallet keys file: an encrypted JSON file holding
// the wallet mnemonic, with the public key kept in the clear so addresses
// can be shown without a password.
package keys

import (
	"crypto/cipher"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"

	"github.com/kaspanet/kaspawallet/dagconfig"
	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

type encryptedMnemonicJSON struct {
	Cipher string `json:"cipher"`
	Salt   string `json:"salt"`
}

type keysFileJSON struct {
	EncryptedMnemonic *encryptedMnemonicJSON `json:"encryptedMnemonic"`
	PublicKey         string                 `json:"publicKey"`
}

// EncryptedMnemonic is the wallet mnemonic in its encrypted at-rest form.
type EncryptedMnemonic struct {
	cipher []byte
	salt   []byte
}

// Data holds all the data related to the wallet keys file.
type Data struct {
	EncryptedMnemonic *EncryptedMnemonic
	PublicKeyHex      string
}

func (d *Data) toJSON() *keysFileJSON {
	return &keysFileJSON{
		EncryptedMnemonic: &encryptedMnemonicJSON{
			Cipher: hex.EncodeToString(d.EncryptedMnemonic.cipher),
			Salt:   hex.EncodeToString(d.EncryptedMnemonic.salt),
		},
		PublicKey: d.PublicKeyHex,
	}
}

func (d *Data) fromJSON(fileJSON *keysFileJSON) error {
	if fileJSON.EncryptedMnemonic == nil {
		return errors.New("keys file is missing the encrypted mnemonic")
	}

	cipherBytes, err := hex.DecodeString(fileJSON.EncryptedMnemonic.Cipher)
	if err != nil {
		return errors.Wrap(err, "cannot decode mnemonic cipher")
	}
	salt, err := hex.DecodeString(fileJSON.EncryptedMnemonic.Salt)
	if err != nil {
		return errors.Wrap(err, "cannot decode mnemonic salt")
	}

	d.EncryptedMnemonic = &EncryptedMnemonic{cipher: cipherBytes, salt: salt}
	d.PublicKeyHex = fileJSON.PublicKey
	return nil
}

// DecryptMnemonic asks the user for the keys file password and returns the
// decrypted mnemonic.
func (d *Data) DecryptMnemonic() (string, error) {
	password := getPassword("Password:")
	return decryptMnemonic(d.EncryptedMnemonic, password)
}

// defaultAppDir returns the wallet's application directory for the current
// operating system.
func defaultAppDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(homeDir, "AppData", "Local", "Kaspawallet")
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", "Kaspawallet")
	default:
		return filepath.Join(homeDir, ".kaspawallet")
	}
}

func defaultKeysFile(netParams *dagconfig.Params) string {
	return filepath.Join(defaultAppDir(), netParams.Name, "keys.json")
}

// ReadKeysFile returns the data in the keys file at the given path, or the
// network's default path if it is empty.
func ReadKeysFile(netParams *dagconfig.Params, path string) (*Data, error) {
	if path == "" {
		path = defaultKeysFile(netParams)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open keys file %s", path)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	decodedFile := &keysFileJSON{}
	err = decoder.Decode(&decodedFile)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse keys file %s", path)
	}

	keysFile := &Data{}
	err = keysFile.fromJSON(decodedFile)
	if err != nil {
		return nil, err
	}
	return keysFile, nil
}

// WriteKeysFile writes the given data to the keys file at the given path, or
// the network's default path if it is empty. It refuses to overwrite an
// existing file unless forceOverride is set.
func WriteKeysFile(netParams *dagconfig.Params, path string, data *Data, forceOverride bool) (string, error) {
	if path == "" {
		path = defaultKeysFile(netParams)
	}

	if !forceOverride {
		_, err := os.Stat(path)
		if err == nil {
			return "", errors.Errorf("keys file %s already exists", path)
		}
		if !os.IsNotExist(err) {
			return "", errors.WithStack(err)
		}
	}

	err := os.MkdirAll(filepath.Dir(path), 0700)
	if err != nil {
		return "", errors.Wrapf(err, "cannot create directory for keys file %s", path)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return "", errors.Wrapf(err, "cannot open keys file %s for writing", path)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	err = encoder.Encode(data.toJSON())
	if err != nil {
		return "", errors.Wrapf(err, "cannot write keys file %s", path)
	}
	return path, nil
}

func getAEAD(password, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(password, salt, 1, 64*1024, uint8(runtime.NumCPU()), 32)
	return chacha20poly1305.NewX(key)
}

func decryptMnemonic(encryptedMnemonic *EncryptedMnemonic, password []byte) (string, error) {
	aead, err := getAEAD(password, encryptedMnemonic.salt)
	if err != nil {
		return "", err
	}

	if len(encryptedMnemonic.cipher) < aead.NonceSize() {
		return "", errors.New("ciphertext too short")
	}

	// Split nonce and ciphertext.
	nonce, ciphertext := encryptedMnemonic.cipher[:aead.NonceSize()], encryptedMnemonic.cipher[aead.NonceSize():]

	// Decrypt the message and check it wasn't tampered with.
	decrypted, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", errors.Wrap(err, "cannot decrypt mnemonic (wrong password?)")
	}

	return string(decrypted), nil
}
