package crypto

import (
	"bytes"
	"crypto/rand"

	"github.com/samber/oops"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"

	"github.com/go-tox/toxsettings/lib/util/logger"
)

var log = logger.GetLogger()

// Magic prefixes every encrypted settings payload, matching the
// toxencryptsave container so encrypted profiles are recognizable on disk.
var Magic = []byte("toxEsave")

const (
	// KeySize is the symmetric key length used by the secretbox cipher.
	KeySize = 32
	// SaltSize is the length of the random salt stored in the container.
	SaltSize = 32
	// NonceSize is the secretbox nonce length.
	NonceSize = 24

	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// PassKey is a symmetric key derived from a profile password. The salt is
// retained so the same container can be rewritten without re-deriving from
// scratch elsewhere.
type PassKey struct {
	key  [KeySize]byte
	salt [SaltSize]byte
}

// NewPassKey derives a PassKey from a password with a freshly generated salt.
func NewPassKey(password string) (*PassKey, error) {
	var salt [SaltSize]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, oops.Errorf("failed to generate salt: %w", err)
	}
	return DeriveKey(password, salt[:])
}

// DeriveKey derives a PassKey from a password and an existing salt.
func DeriveKey(password string, salt []byte) (*PassKey, error) {
	if len(salt) != SaltSize {
		return nil, oops.Errorf("invalid salt length: %d bytes, need %d", len(salt), SaltSize)
	}
	raw, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, KeySize)
	if err != nil {
		return nil, oops.Errorf("scrypt key derivation failed: %w", err)
	}
	pk := &PassKey{}
	copy(pk.key[:], raw)
	copy(pk.salt[:], salt)
	return pk, nil
}

// Encrypt seals plaintext into the container format:
// magic, salt, nonce, secretbox ciphertext with MAC.
func (pk *PassKey) Encrypt(plain []byte) ([]byte, error) {
	log.WithField("plain_length", len(plain)).Debug("Encrypting settings payload")

	var nonce [NonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, oops.Errorf("failed to generate nonce: %w", err)
	}

	out := make([]byte, 0, len(Magic)+SaltSize+NonceSize+len(plain)+secretbox.Overhead)
	out = append(out, Magic...)
	out = append(out, pk.salt[:]...)
	out = append(out, nonce[:]...)
	return secretbox.Seal(out, plain, &nonce, &pk.key), nil
}

// Decrypt opens a container previously produced by Encrypt. The caller is
// expected to have derived the key with the salt stored in the container
// (see Salt).
func (pk *PassKey) Decrypt(data []byte) ([]byte, error) {
	if !IsEncrypted(data) {
		return nil, oops.Errorf("payload is not an encrypted settings container")
	}
	body := data[len(Magic)+SaltSize:]
	if len(body) < NonceSize+secretbox.Overhead {
		return nil, oops.Errorf("encrypted container truncated: %d bytes", len(data))
	}
	var nonce [NonceSize]byte
	copy(nonce[:], body[:NonceSize])
	plain, ok := secretbox.Open(nil, body[NonceSize:], &nonce, &pk.key)
	if !ok {
		return nil, oops.Errorf("decryption failed: wrong passphrase or corrupted file")
	}
	return plain, nil
}

// Salt returns the salt embedded in this key.
func (pk *PassKey) Salt() []byte {
	out := make([]byte, SaltSize)
	copy(out, pk.salt[:])
	return out
}

// IsEncrypted reports whether data begins with the encrypted container magic.
func IsEncrypted(data []byte) bool {
	return len(data) >= len(Magic)+SaltSize && bytes.HasPrefix(data, Magic)
}

// ExtractSalt reads the salt out of an encrypted container so a key can be
// derived for it. Returns nil when data is not an encrypted container.
func ExtractSalt(data []byte) []byte {
	if !IsEncrypted(data) {
		return nil
	}
	out := make([]byte, SaltSize)
	copy(out, data[len(Magic):len(Magic)+SaltSize])
	return out
}
