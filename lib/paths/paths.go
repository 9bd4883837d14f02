package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/ini.v1"

	"github.com/go-tox/toxsettings/lib/util"
	"github.com/go-tox/toxsettings/lib/util/logger"
)

var log = logger.GetLogger()

// DirKind selects which of the store's directories to resolve.
type DirKind int

const (
	// Settings is where the configuration files live.
	Settings DirKind = iota
	// AppData is where profile data (saves, avatars, history) lives.
	AppData
	// Cache is where disposable data lives.
	Cache
)

func (k DirKind) String() string {
	switch k {
	case Settings:
		return "settings"
	case AppData:
		return "appdata"
	case Cache:
		return "cache"
	default:
		return "unknown"
	}
}

// Resolver computes the on-disk location of every directory the settings
// store touches. In portable mode every kind resolves to the application's
// own directory; otherwise each kind resolves to the platform-conventional
// location. A Resolver is immutable; build a new one when portable mode
// changes.
type Resolver struct {
	// Portable pins every directory to AppDir.
	Portable bool
	// AppDir is the directory the executable runs from.
	AppDir string
	// GOOS overrides runtime.GOOS, for tests.
	GOOS string
	// Home overrides the detected home directory, for tests.
	Home string
}

// NewResolver builds a Resolver for the running executable.
func NewResolver(portable bool) *Resolver {
	return &Resolver{Portable: portable, AppDir: ExecutableDir()}
}

// Dir resolves the directory for kind, creating it on demand. The returned
// path always ends in the OS path separator. Creation failure is logged and
// the path returned anyway; the subsequent file operation will surface the
// problem at its own layer.
func (r *Resolver) Dir(kind DirKind) string {
	dir := r.resolve(kind)
	EnsureDir(dir)
	return dir
}

func (r *Resolver) resolve(kind DirKind) string {
	if r.Portable {
		return withSeparator(r.AppDir)
	}

	goos := r.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	home := r.Home
	if home == "" {
		home = util.UserHome()
	}

	switch goos {
	case "windows":
		// Same roaming directory for all three kinds.
		return withSeparator(filepath.Join(home, "AppData", "Roaming", "tox"))
	case "darwin":
		return withSeparator(filepath.Join(home, "Library", "Application Support", "Tox"))
	default:
		return withSeparator(filepath.Join(xdgBase(kind, home), "tox"))
	}
}

// xdgBase resolves the XDG base directory for kind, honoring the
// corresponding environment variable when set.
func xdgBase(kind DirKind, home string) string {
	var envVar, fallback string
	switch kind {
	case Settings:
		envVar, fallback = "XDG_CONFIG_HOME", ".config"
	case AppData:
		envVar, fallback = "XDG_DATA_HOME", filepath.Join(".local", "share")
	case Cache:
		envVar, fallback = "XDG_CACHE_HOME", ".cache"
	}
	if base := os.Getenv(envVar); base != "" {
		return base
	}
	return filepath.Join(home, fallback)
}

// EnsureDir creates dir and any missing parents. Failure is logged as a
// warning, never returned: load and save against the directory will fail at
// the file layer and is not separately escalated.
func EnsureDir(dir string) {
	if util.CheckFileExists(dir) {
		return
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		log.WithError(err).WithField("dir", dir).Warn("Failed to create directory")
	}
}

// ExecutableDir returns the directory holding the running executable,
// falling back to the working directory when it cannot be determined.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		log.WithError(err).Warn("Failed to locate executable, using working directory")
		wd, _ := os.Getwd()
		return wd
	}
	return filepath.Dir(exe)
}

// ProbePortable is the bootstrap read that decides where the real settings
// file lives: before the main config is loaded, a settings file colocated
// with the executable is probed for its portability flag alone. An absent
// or unreadable file means not portable.
func ProbePortable(iniPath string) bool {
	if !util.CheckFileExists(iniPath) {
		return false
	}
	f, err := ini.Load(iniPath)
	if err != nil {
		log.WithError(err).WithField("path", iniPath).Warn("Failed to probe settings file for portable mode")
		return false
	}
	return f.Section("Advanced").Key("makeToxPortable").MustBool(false)
}

func withSeparator(dir string) string {
	return filepath.Clean(dir) + string(os.PathSeparator)
}
