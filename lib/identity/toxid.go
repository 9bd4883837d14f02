package identity

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/samber/oops"
)

// PublicKeySize is the size of a Tox public key in bytes.
const PublicKeySize = 32

// NoSpamSize is the size of the nospam value appended to a public key.
const NoSpamSize = 4

// ChecksumSize is the size of the checksum trailing a Tox address.
const ChecksumSize = 2

// AddressSize is the full size of a Tox address in bytes:
// public key + nospam + checksum.
const AddressSize = PublicKeySize + NoSpamSize + ChecksumSize

// ToxPk is a fixed-size Tox public key. It is comparable and therefore
// usable as a map key, which is how the settings store indexes per-friend
// state.
type ToxPk [PublicKeySize]byte

// NewToxPk builds a ToxPk from raw bytes. Input shorter than
// PublicKeySize is rejected; extra bytes are ignored.
func NewToxPk(data []byte) (ToxPk, error) {
	var pk ToxPk
	if len(data) < PublicKeySize {
		return pk, oops.Errorf("public key too short: %d bytes, need %d", len(data), PublicKeySize)
	}
	copy(pk[:], data[:PublicKeySize])
	return pk, nil
}

// ToxPkFromString parses a 64 character hex string into a ToxPk.
func ToxPkFromString(s string) (ToxPk, error) {
	var pk ToxPk
	raw, err := hex.DecodeString(s)
	if err != nil {
		return pk, oops.Errorf("invalid public key hex: %w", err)
	}
	return NewToxPk(raw)
}

// Bytes returns a copy of the key bytes.
func (pk ToxPk) Bytes() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, pk[:])
	return out
}

// String returns the uppercase hex form of the key.
func (pk ToxPk) String() string {
	return strings.ToUpper(hex.EncodeToString(pk[:]))
}

// IsEmpty reports whether the key is all zeroes.
func (pk ToxPk) IsEmpty() bool {
	return pk == ToxPk{}
}

// ToxID is a full Tox address: public key, nospam and checksum.
type ToxID struct {
	raw [AddressSize]byte
}

// ParseToxID parses the 76 character hex form of a Tox address and
// verifies its checksum.
func ParseToxID(s string) (ToxID, error) {
	var id ToxID
	raw, err := hex.DecodeString(s)
	if err != nil {
		return id, oops.Errorf("invalid address hex: %w", err)
	}
	if len(raw) != AddressSize {
		return id, oops.Errorf("invalid address length: %d bytes, need %d", len(raw), AddressSize)
	}
	copy(id.raw[:], raw)
	if got := checksum(raw[:PublicKeySize+NoSpamSize]); got != id.Checksum() {
		return ToxID{}, oops.Errorf("address checksum mismatch")
	}
	return id, nil
}

// checksum xors the input into two bytes, alternating between the low and
// high byte, per the Tox address format.
func checksum(data []byte) [ChecksumSize]byte {
	var sum [ChecksumSize]byte
	for i, b := range data {
		sum[i%ChecksumSize] ^= b
	}
	return sum
}

// PublicKey returns the public key portion of the address.
func (id ToxID) PublicKey() ToxPk {
	var pk ToxPk
	copy(pk[:], id.raw[:PublicKeySize])
	return pk
}

// NoSpam returns the nospam value of the address.
func (id ToxID) NoSpam() uint32 {
	return binary.BigEndian.Uint32(id.raw[PublicKeySize : PublicKeySize+NoSpamSize])
}

// Checksum returns the checksum trailing the address.
func (id ToxID) Checksum() [ChecksumSize]byte {
	var sum [ChecksumSize]byte
	copy(sum[:], id.raw[PublicKeySize+NoSpamSize:])
	return sum
}

// String returns the uppercase hex form of the full address.
func (id ToxID) String() string {
	return strings.ToUpper(hex.EncodeToString(id.raw[:]))
}

// PublicKeyFromAddress extracts the public key from either a full 76
// character address or a bare 64 character public key string. The settings
// store uses it to key friend entries by whatever identifier the caller
// holds.
func PublicKeyFromAddress(addr string) (ToxPk, error) {
	if len(addr) == hex.EncodedLen(AddressSize) {
		id, err := ParseToxID(addr)
		if err != nil {
			return ToxPk{}, err
		}
		return id.PublicKey(), nil
	}
	return ToxPkFromString(addr)
}
