package identity

import (
	"crypto/md5"
	"encoding/binary"
)

// MakeProfileID derives a stable 32-bit id from a profile name by hashing
// the UTF-8 name and folding the digest's four 32-bit words together with
// xor. The id disambiguates IPC and lock files of same-named profiles; it
// has no security properties.
func MakeProfileID(profile string) uint32 {
	digest := md5.Sum([]byte(profile))
	var id uint32
	for i := 0; i < len(digest); i += 4 {
		id ^= binary.LittleEndian.Uint32(digest[i : i+4])
	}
	return id
}
