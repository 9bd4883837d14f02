// Package codec implements the group/array shaped key-value format the
// settings store persists itself with. The on-disk form is UTF-8 INI with
// QSettings-style array keys (`Friend\1\addr` plus a `Friend\size` count),
// optionally sealed inside an encrypted container when a pass key is
// supplied.
package codec

import (
	"bytes"
	"encoding/base64"
	"os"
	"strconv"
	"strings"

	"github.com/samber/oops"
	"gopkg.in/ini.v1"

	"github.com/go-tox/toxsettings/lib/crypto"
	"github.com/go-tox/toxsettings/lib/util"
	"github.com/go-tox/toxsettings/lib/util/logger"
)

var log = logger.GetLogger()

type arrayFrame struct {
	prefix string
	index  int
	size   int
}

// File is one in-memory settings tree. Navigation mirrors the group and
// array cursor of the original serializer: BeginGroup/EndGroup select the
// section, BeginReadArray/BeginWriteArray plus SetArrayIndex select one
// indexed sub-record. File is not safe for concurrent use; the settings
// store confines it to its worker.
type File struct {
	ini    *ini.File
	groups []string
	arrays []arrayFrame
}

// New returns an empty settings tree.
func New() *File {
	return &File{ini: ini.Empty()}
}

// Load reads the tree at path. A missing file yields an empty tree, never
// an error. An encrypted payload is detected by its container magic and
// decrypted with key; loading an encrypted payload without a key, or with
// the wrong key, is an error.
func Load(path string, key *crypto.PassKey) (*File, error) {
	if !util.CheckFileExists(path) {
		log.WithField("path", path).Debug("Settings file absent, starting from an empty tree")
		return New(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Errorf("failed to read settings file %s: %w", path, err)
	}
	return LoadBytes(data, key)
}

// LoadBytes parses an in-memory payload, decrypting it first when needed.
func LoadBytes(data []byte, key *crypto.PassKey) (*File, error) {
	if crypto.IsEncrypted(data) {
		if key == nil {
			return nil, oops.Errorf("settings payload is encrypted but no pass key was supplied")
		}
		plain, err := key.Decrypt(data)
		if err != nil {
			return nil, err
		}
		data = plain
	}
	tree, err := ini.Load(data)
	if err != nil {
		return nil, oops.Errorf("failed to parse settings payload: %w", err)
	}
	return &File{ini: tree}, nil
}

// Save renders the tree and writes it to path, replacing whatever the file
// held before. With a key the rendered text is sealed into an encrypted
// container first.
func (f *File) Save(path string, key *crypto.PassKey) error {
	var buf bytes.Buffer
	if _, err := f.ini.WriteTo(&buf); err != nil {
		return oops.Errorf("failed to render settings tree: %w", err)
	}
	data := buf.Bytes()
	if key != nil {
		sealed, err := key.Encrypt(data)
		if err != nil {
			return err
		}
		data = sealed
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return oops.Errorf("failed to write settings file %s: %w", path, err)
	}
	return nil
}

// BeginGroup descends into the named group. Groups nest with "/".
func (f *File) BeginGroup(name string) {
	f.groups = append(f.groups, name)
}

// EndGroup leaves the innermost group.
func (f *File) EndGroup() {
	if len(f.groups) == 0 {
		log.Warn("EndGroup called with no open group")
		return
	}
	f.groups = f.groups[:len(f.groups)-1]
}

// BeginReadArray opens the array with the given key prefix for reading and
// returns its declared element count. A missing count means zero elements.
func (f *File) BeginReadArray(prefix string) int {
	size := 0
	if k, ok := f.lookupRaw(prefix + `\size`); ok {
		n, err := k.Int()
		if err != nil {
			log.WithField("prefix", prefix).Warn("Malformed array size, treating as empty")
		} else {
			size = n
		}
	}
	f.arrays = append(f.arrays, arrayFrame{prefix: prefix, size: size})
	return size
}

// BeginWriteArray opens the array with the given key prefix for writing and
// records its element count.
func (f *File) BeginWriteArray(prefix string, size int) {
	f.section().Key(prefix + `\size`).SetValue(strconv.Itoa(size))
	f.arrays = append(f.arrays, arrayFrame{prefix: prefix, size: size})
}

// SetArrayIndex selects the zero-based element subsequent reads and writes
// apply to.
func (f *File) SetArrayIndex(i int) {
	if len(f.arrays) == 0 {
		log.Warn("SetArrayIndex called with no open array")
		return
	}
	f.arrays[len(f.arrays)-1].index = i
}

// EndArray closes the innermost array.
func (f *File) EndArray() {
	if len(f.arrays) == 0 {
		log.Warn("EndArray called with no open array")
		return
	}
	f.arrays = f.arrays[:len(f.arrays)-1]
}

// TouchGroup materializes the current group in the tree even when no key
// is written under it, so empty groups survive a save.
func (f *File) TouchGroup() {
	f.section()
}

// Keys lists the plain keys of the current group, excluding array
// bookkeeping entries.
func (f *File) Keys() []string {
	var out []string
	for _, name := range f.section().KeyStrings() {
		if strings.Contains(name, `\`) {
			continue
		}
		out = append(out, name)
	}
	return out
}

func (f *File) section() *ini.Section {
	name := strings.Join(f.groups, "/")
	if name == "" {
		name = ini.DefaultSection
	}
	return f.ini.Section(name)
}

// resolve maps a field name through the array cursor, if one is open.
// Array element keys are written 1-based, matching the original format.
func (f *File) resolve(name string) string {
	if len(f.arrays) == 0 {
		return name
	}
	frame := f.arrays[len(f.arrays)-1]
	return frame.prefix + `\` + strconv.Itoa(frame.index+1) + `\` + name
}

func (f *File) lookup(name string) (*ini.Key, bool) {
	return f.lookupRaw(f.resolve(name))
}

func (f *File) lookupRaw(key string) (*ini.Key, bool) {
	sec := f.section()
	if !sec.HasKey(key) {
		return nil, false
	}
	return sec.Key(key), true
}

func (f *File) warnMalformed(name string, err error) {
	log.WithError(err).WithFields(map[string]interface{}{
		"group": strings.Join(f.groups, "/"),
		"key":   name,
	}).Warn("Malformed settings value, using default")
}

// String reads a string value, falling back to def when absent.
func (f *File) String(name, def string) string {
	k, ok := f.lookup(name)
	if !ok {
		return def
	}
	return k.String()
}

// Bool reads a boolean value, falling back to def when absent or malformed.
func (f *File) Bool(name string, def bool) bool {
	k, ok := f.lookup(name)
	if !ok {
		return def
	}
	v, err := k.Bool()
	if err != nil {
		f.warnMalformed(name, err)
		return def
	}
	return v
}

// Int reads an integer value, falling back to def when absent or malformed.
func (f *File) Int(name string, def int) int {
	k, ok := f.lookup(name)
	if !ok {
		return def
	}
	v, err := k.Int()
	if err != nil {
		f.warnMalformed(name, err)
		return def
	}
	return v
}

// Int64 reads a 64-bit integer value, falling back to def when absent or
// malformed.
func (f *File) Int64(name string, def int64) int64 {
	k, ok := f.lookup(name)
	if !ok {
		return def
	}
	v, err := k.Int64()
	if err != nil {
		f.warnMalformed(name, err)
		return def
	}
	return v
}

// Uint16 reads a 16-bit unsigned value, clamping out-of-range stored values
// to def.
func (f *File) Uint16(name string, def uint16) uint16 {
	k, ok := f.lookup(name)
	if !ok {
		return def
	}
	v, err := k.Uint64()
	if err != nil || v > 0xFFFF {
		f.warnMalformed(name, err)
		return def
	}
	return uint16(v)
}

// Float64 reads a floating point value, falling back to def when absent or
// malformed.
func (f *File) Float64(name string, def float64) float64 {
	k, ok := f.lookup(name)
	if !ok {
		return def
	}
	v, err := k.Float64()
	if err != nil {
		f.warnMalformed(name, err)
		return def
	}
	return v
}

// Bytes reads a base64 encoded binary blob, falling back to def when absent
// or malformed.
func (f *File) Bytes(name string, def []byte) []byte {
	k, ok := f.lookup(name)
	if !ok {
		return def
	}
	v, err := base64.StdEncoding.DecodeString(k.String())
	if err != nil {
		f.warnMalformed(name, err)
		return def
	}
	return v
}

// SetString stores a string value under the current group and array cursor.
func (f *File) SetString(name, value string) {
	f.section().Key(f.resolve(name)).SetValue(value)
}

// SetBool stores a boolean value.
func (f *File) SetBool(name string, value bool) {
	f.SetString(name, strconv.FormatBool(value))
}

// SetInt stores an integer value.
func (f *File) SetInt(name string, value int) {
	f.SetString(name, strconv.Itoa(value))
}

// SetInt64 stores a 64-bit integer value.
func (f *File) SetInt64(name string, value int64) {
	f.SetString(name, strconv.FormatInt(value, 10))
}

// SetUint16 stores a 16-bit unsigned value.
func (f *File) SetUint16(name string, value uint16) {
	f.SetString(name, strconv.FormatUint(uint64(value), 10))
}

// SetFloat64 stores a floating point value.
func (f *File) SetFloat64(name string, value float64) {
	f.SetString(name, strconv.FormatFloat(value, 'g', -1, 64))
}

// SetBytes stores a binary blob, base64 encoded.
func (f *File) SetBytes(name string, value []byte) {
	f.SetString(name, base64.StdEncoding.EncodeToString(value))
}
