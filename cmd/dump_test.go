package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-tox/toxsettings/lib/crypto"
	"github.com/go-tox/toxsettings/lib/identity"
	"github.com/go-tox/toxsettings/lib/paths"
	"github.com/go-tox/toxsettings/lib/settings"
)

const dumpTestPk = "C7719C6808C14B77348004956D1D98046CE09A34370E7608150EAD74C3815D30"

type dumpTestProfile struct {
	name string
	key  *crypto.PassKey
}

func (p *dumpTestProfile) Name() string             { return p.name }
func (p *dumpTestProfile) PassKey() *crypto.PassKey { return p.key }

func newDumpStore(t *testing.T, dir string) *settings.Settings {
	t.Helper()
	s, err := settings.New(settings.WithResolver(&paths.Resolver{Portable: true, AppDir: dir}))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// writeEncryptedProfile persists an encrypted profile holding one aliased
// friend, the way a client session would have left it on disk.
func writeEncryptedProfile(t *testing.T, dir, name, password string) identity.ToxPk {
	t.Helper()
	s := newDumpStore(t, dir)
	key, err := crypto.NewPassKey(password)
	require.NoError(t, err)

	s.UpdateProfileData(&dumpTestProfile{name: name, key: key})
	pk, err := identity.PublicKeyFromAddress(dumpTestPk)
	require.NoError(t, err)
	s.SetFriendAlias(pk, "Dupont")
	s.SavePersonal()
	s.Sync()
	require.NoError(t, s.Close())

	raw, err := os.ReadFile(filepath.Join(dir, name+".ini"))
	require.NoError(t, err)
	require.True(t, crypto.IsEncrypted(raw))
	return pk
}

func TestProfileKeyOpensEncryptedProfile(t *testing.T) {
	dir := t.TempDir()
	pk := writeEncryptedProfile(t, dir, "alice", "hunter2")

	s := newDumpStore(t, dir)
	key, err := profileKey(s, "alice", "hunter2")
	require.NoError(t, err)
	require.NotNil(t, key, "encrypted profile must yield a key derived from the stored salt")

	s.LoadPersonal("alice", key)
	assert.Equal(t, "Dupont", s.FriendAlias(pk))
}

func TestProfileKeyRejectsWrongPassword(t *testing.T) {
	dir := t.TempDir()
	writeEncryptedProfile(t, dir, "alice", "hunter2")

	s := newDumpStore(t, dir)
	_, err := profileKey(s, "alice", "wrong")
	assert.Error(t, err)
}

func TestProfileKeyRequiresPasswordForEncrypted(t *testing.T) {
	dir := t.TempDir()
	writeEncryptedProfile(t, dir, "alice", "hunter2")

	s := newDumpStore(t, dir)
	_, err := profileKey(s, "alice", "")
	assert.Error(t, err)
}

func TestProfileKeyPlaintextProfile(t *testing.T) {
	dir := t.TempDir()
	s := newDumpStore(t, dir)
	s.SetCurrentProfile("bob")
	s.SavePersonal()
	s.Sync()

	key, err := profileKey(s, "bob", "ignored")
	require.NoError(t, err)
	assert.Nil(t, key)
}

func TestProfileKeyMissingProfile(t *testing.T) {
	s := newDumpStore(t, t.TempDir())

	key, err := profileKey(s, "nobody", "pw")
	require.NoError(t, err)
	assert.Nil(t, key)
}
