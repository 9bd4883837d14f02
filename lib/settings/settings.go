// Package settings implements the dual-tier configuration store: a global
// tier shared by every profile and a per-profile, optionally encrypted
// personal tier holding friends, pending requests and circles. All state
// and all file I/O are confined to a single worker goroutine; exported
// accessors marshal onto it, so no locking is needed anywhere.
package settings

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/go-tox/toxsettings/lib/crypto"
	"github.com/go-tox/toxsettings/lib/identity"
	"github.com/go-tox/toxsettings/lib/paths"
	"github.com/go-tox/toxsettings/lib/util/logger"
)

var log = logger.GetLogger()

// Profile is the identity collaborator a profile switch hands the store:
// a name to key the personal file by and, for encrypted profiles, the
// derived pass key.
type Profile interface {
	Name() string
	PassKey() *crypto.PassKey
}

type globalSettings struct {
	// Login
	autoLogin bool

	// General
	translation         string
	showSystemTray      bool
	autostartInTray     bool
	closeToTray         bool
	currentProfile      string
	currentProfileID    uint32
	autoAwayTime        int
	checkUpdates        bool
	notifySound         bool
	notifyHide          bool
	busySound           bool
	autoSaveEnabled     bool
	globalAutoAcceptDir string
	autoAcceptMaxSize   int64
	stylePreference     StyleType

	// Advanced
	makeToxPortable    bool
	enableIPv6         bool
	forceTCP           bool
	enableLanDiscovery bool
	dbSyncType         DbSyncType

	// GUI
	showWindow                      bool
	notify                          bool
	desktopNotify                   bool
	groupAlwaysNotify               bool
	groupchatPosition               bool
	separateWindow                  bool
	dontGroupWindows                bool
	showIdenticons                  bool
	smileyPack                      string
	emojiFontPointSize              int
	firstColumnHandlePos            int
	secondColumnHandlePosFromRight  int
	timestampFormat                 string
	dateFormat                      string
	minimizeOnClose                 bool
	minimizeToTray                  bool
	lightTrayIcon                   bool
	useEmoticons                    bool
	statusChangeNotificationEnabled bool
	spellCheckingEnabled            bool
	themeColor                      int
	style                           string
	nameColors                      bool

	// Chat
	chatMessageFont string

	// State
	windowGeometry         []byte
	windowState            []byte
	splitterState          []byte
	dialogGeometry         []byte
	dialogSplitterState    []byte
	dialogSettingsGeometry []byte

	// Audio
	inDev              string
	audioInDevEnabled  bool
	outDev             string
	audioOutDevEnabled bool
	audioInGainDecibel float64
	audioThreshold     float64
	outVolume          int
	enableTestSound    bool
	audioBitrate       int
	enableBackend2     bool

	// Video
	videoDev      string
	camVideoRes   Rect
	screenRegion  Rect
	screenGrabbed bool
	camVideoFPS   uint16
}

type personalSettings struct {
	// Privacy
	typingNotification bool
	enableLogging      bool
	blackList          []string

	// GUI
	compactLayout bool
	sortingMode   FriendListSortingMode

	// Proxy
	proxyType ProxyType
	proxyAddr string
	proxyPort uint16

	// Toxme
	toxmeInfo string
	toxmeBio  string
	toxmePriv bool
	toxmePass string
}

type task struct {
	fn   func()
	done chan struct{}
}

// Settings is the store. Construct with New, tear down with Close; callers
// on any goroutine go through the exported accessors, which execute on the
// store's worker in FIFO order.
type Settings struct {
	resolver *paths.Resolver
	bus      *bus

	tasks    chan task
	stopped  chan struct{}
	quitting bool
	once     sync.Once

	// Everything below is owned by the worker goroutine.
	loaded   bool
	global   globalSettings
	personal personalSettings
	widgets  map[string][]byte
	friends  map[identity.ToxPk]*FriendProperty
	requests []Request
	circles  []Circle
	passKey  *crypto.PassKey
}

// Option configures a Settings under construction.
type Option func(*Settings)

// WithResolver injects a directory resolver, bypassing the portable-mode
// probe. Used by tests and by callers that already resolved their layout.
func WithResolver(r *paths.Resolver) Option {
	return func(s *Settings) { s.resolver = r }
}

// New starts the worker, probes for portable mode and performs the initial
// global load. The returned store is ready for use from any goroutine.
func New(opts ...Option) (*Settings, error) {
	s := &Settings{
		tasks:   make(chan task, 128),
		stopped: make(chan struct{}),
		bus:     newBus(),
		widgets: make(map[string][]byte),
		friends: make(map[identity.ToxPk]*FriendProperty),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.resolver == nil {
		appDir := paths.ExecutableDir()
		portable := paths.ProbePortable(filepath.Join(appDir, GlobalSettingsFile))
		s.resolver = &paths.Resolver{Portable: portable, AppDir: appDir}
	}
	go s.worker()
	s.run(s.loadGlobal)
	return s, nil
}

func (s *Settings) worker() {
	defer close(s.stopped)
	for t := range s.tasks {
		if t.fn != nil {
			t.fn()
		}
		if t.done != nil {
			close(t.done)
		}
		if s.quitting {
			return
		}
	}
}

// run executes fn on the worker and waits for it to finish. After Close
// the call becomes a no-op.
func (s *Settings) run(fn func()) {
	t := task{fn: fn, done: make(chan struct{})}
	select {
	case s.tasks <- t:
	case <-s.stopped:
		return
	}
	select {
	case <-t.done:
	case <-s.stopped:
	}
}

// post queues fn on the worker without waiting, for the save-family
// operations that are fire-and-forget from foreign goroutines.
func (s *Settings) post(fn func()) {
	select {
	case s.tasks <- task{fn: fn}:
	case <-s.stopped:
	}
}

// Sync blocks until every operation queued before it has been applied,
// pending saves included.
func (s *Settings) Sync() {
	s.run(func() {})
}

// Close performs one final synchronous flush and tears the worker down.
// The store must not be used afterwards. Idempotent.
func (s *Settings) Close() error {
	s.once.Do(func() {
		s.run(func() {
			if s.loaded {
				s.saveGlobalNow()
				s.savePersonalNow(s.global.currentProfile, s.passKey)
			}
			s.quitting = true
		})
		<-s.stopped
		s.bus.close()
	})
	return nil
}

// Subscribe registers an observer for property change events. The returned
// function cancels the subscription.
func (s *Settings) Subscribe(fn func(Event)) func() {
	return s.bus.subscribe(fn)
}

// Resolver returns the directory resolver in use. The resolver pointer is
// swapped on a portable-mode toggle, so the read goes through the worker
// like every other accessor.
func (s *Settings) Resolver() *paths.Resolver {
	var v *paths.Resolver
	s.run(func() { v = s.resolver })
	return v
}

// UpdateProfileData switches the active profile: the global tier is saved
// under the new profile name and the personal tier is reloaded from the
// profile's file.
func (s *Settings) UpdateProfileData(profile Profile) {
	if profile == nil {
		log.Warn("Could not load new settings (profile change to nil)")
		return
	}
	name, key := profile.Name(), profile.PassKey()
	s.run(func() {
		s.setCurrentProfileNow(name)
		s.passKey = key
		s.saveGlobalNow()
		s.loadPersonalNow(name, key)
	})
}

// CurrentProfile returns the active profile name.
func (s *Settings) CurrentProfile() string {
	var v string
	s.run(func() { v = s.global.currentProfile })
	return v
}

// CurrentProfileID returns the hash-derived id of the active profile.
func (s *Settings) CurrentProfileID() uint32 {
	var v uint32
	s.run(func() { v = s.global.currentProfileID })
	return v
}

// SetCurrentProfile records the active profile name and its derived id.
func (s *Settings) SetCurrentProfile(name string) {
	s.run(func() { s.setCurrentProfileNow(name) })
}

func (s *Settings) setCurrentProfileNow(name string) {
	if !s.loaded || s.global.currentProfile == name {
		return
	}
	s.global.currentProfile = name
	s.global.currentProfileID = identity.MakeProfileID(name)
	s.bus.publish(Event{FieldCurrentProfile, name})
	s.bus.publish(Event{FieldCurrentProfileID, s.global.currentProfileID})
}

// setScalar is the compare-and-notify helper every preference setter funnels
// through: the store mutates and notifies only when the value actually
// changed, suppressing redundant signal traffic. It must run on the worker.
func setScalar[T comparable](s *Settings, field Field, dst *T, v T) {
	if !s.loaded || *dst == v {
		return
	}
	*dst = v
	s.bus.publish(Event{field, v})
}

// Loaded reports whether the global tier has been loaded. While false,
// mutation and save calls are no-ops.
func (s *Settings) Loaded() bool {
	var v bool
	s.run(func() { v = s.loaded })
	return v
}

// FriendActivity returns the friend's last-activity timestamp, or the zero
// time when the key is unknown.
func (s *Settings) FriendActivity(pk identity.ToxPk) time.Time {
	var v time.Time
	s.run(func() {
		if fp, ok := s.friends[pk]; ok {
			v = fp.Activity
		}
	})
	return v
}

// SetFriendActivity stamps the friend's last activity. Only persisted while
// logging is enabled.
func (s *Settings) SetFriendActivity(pk identity.ToxPk, activity time.Time) {
	s.run(func() {
		if !s.loaded {
			return
		}
		s.getOrInsertFriendProp(pk).Activity = activity
	})
}
