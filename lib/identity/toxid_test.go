package identity

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildAddress assembles a valid address from a key and nospam, computing
// the trailing checksum the same way the wire format defines it.
func buildAddress(t *testing.T, pkHex string, nospam [NoSpamSize]byte) string {
	t.Helper()
	raw, err := hex.DecodeString(pkHex)
	require.NoError(t, err)
	require.Len(t, raw, PublicKeySize)

	body := append(raw, nospam[:]...)
	var sum [ChecksumSize]byte
	for i, b := range body {
		sum[i%ChecksumSize] ^= b
	}
	return strings.ToUpper(hex.EncodeToString(append(body, sum[:]...)))
}

const testPkHex = "C7719C6808C14B77348004956D1D98046CE09A34370E7608150EAD74C3815D30"

func TestToxPkFromString(t *testing.T) {
	pk, err := ToxPkFromString(testPkHex)
	require.NoError(t, err)
	assert.Equal(t, testPkHex, pk.String())
	assert.False(t, pk.IsEmpty())
}

func TestToxPkFromString_Lowercase(t *testing.T) {
	pk, err := ToxPkFromString(strings.ToLower(testPkHex))
	require.NoError(t, err)
	assert.Equal(t, testPkHex, pk.String())
}

func TestToxPkFromString_Invalid(t *testing.T) {
	_, err := ToxPkFromString("not hex at all")
	assert.Error(t, err)

	_, err = ToxPkFromString("C771")
	assert.Error(t, err, "short input must be rejected")
}

func TestNewToxPk_TooShort(t *testing.T) {
	_, err := NewToxPk(make([]byte, PublicKeySize-1))
	assert.Error(t, err)
}

func TestToxPkIsEmpty(t *testing.T) {
	var pk ToxPk
	assert.True(t, pk.IsEmpty())
}

func TestParseToxID(t *testing.T) {
	addr := buildAddress(t, testPkHex, [NoSpamSize]byte{0xDE, 0xAD, 0xBE, 0xEF})

	id, err := ParseToxID(addr)
	require.NoError(t, err)
	assert.Equal(t, testPkHex, id.PublicKey().String())
	assert.Equal(t, uint32(0xDEADBEEF), id.NoSpam())
	assert.Equal(t, addr, id.String())
}

func TestParseToxID_ChecksumMismatch(t *testing.T) {
	addr := buildAddress(t, testPkHex, [NoSpamSize]byte{1, 2, 3, 4})

	// Corrupt the last checksum nibble.
	corrupted := addr[:len(addr)-1]
	if strings.HasSuffix(addr, "0") {
		corrupted += "1"
	} else {
		corrupted += "0"
	}

	_, err := ParseToxID(corrupted)
	assert.Error(t, err)
}

func TestParseToxID_WrongLength(t *testing.T) {
	_, err := ParseToxID(testPkHex)
	assert.Error(t, err, "a bare public key is not a full address")
}

func TestPublicKeyFromAddress(t *testing.T) {
	addr := buildAddress(t, testPkHex, [NoSpamSize]byte{0, 0, 0, 1})

	// Full 76 character address.
	pk, err := PublicKeyFromAddress(addr)
	require.NoError(t, err)
	assert.Equal(t, testPkHex, pk.String())

	// Bare 64 character public key.
	pk, err = PublicKeyFromAddress(testPkHex)
	require.NoError(t, err)
	assert.Equal(t, testPkHex, pk.String())

	_, err = PublicKeyFromAddress("garbage")
	assert.Error(t, err)
}
