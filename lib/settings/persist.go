package settings

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-tox/toxsettings/lib/codec"
	"github.com/go-tox/toxsettings/lib/crypto"
	"github.com/go-tox/toxsettings/lib/identity"
	"github.com/go-tox/toxsettings/lib/paths"
	"github.com/go-tox/toxsettings/lib/util"
)

// GlobalSettingsFile is the name of the shared settings file, one per
// install or per portable instance.
const GlobalSettingsFile = "tox.ini"

// activityFormat is the persisted form of friend activity timestamps.
const activityFormat = "2006-01-02T15:04:05"

//go:embed conf/tox.ini
var defaultTemplate []byte

// loadGlobal reads the global tier. Idempotent: a second call while loaded
// returns immediately. Runs on the worker.
func (s *Settings) loadGlobal() {
	if s.loaded {
		return
	}

	dir := s.resolver.Dir(paths.Settings)
	path := filepath.Join(dir, GlobalSettingsFile)

	var (
		f   *codec.File
		err error
	)
	if util.CheckFileExists(path) {
		log.WithField("path", path).Debug("Loading settings")
		f, err = codec.Load(path, nil)
	} else {
		// No settings file yet; fall back to the bundled template.
		log.Debug("No settings file found, using defaults")
		f, err = codec.LoadBytes(defaultTemplate, nil)
	}
	if err != nil {
		log.WithError(err).Warn("Failed to load global settings, continuing with defaults")
		f = codec.New()
	}

	g := &s.global

	f.BeginGroup("Login")
	g.autoLogin = f.Bool("autoLogin", false)
	f.EndGroup()

	f.BeginGroup("General")
	g.translation = f.String("translation", "en")
	g.showSystemTray = f.Bool("showSystemTray", true)
	g.autostartInTray = f.Bool("autostartInTray", false)
	g.closeToTray = f.Bool("closeToTray", false)
	if g.currentProfile == "" {
		g.currentProfile = f.String("currentProfile", "")
		g.currentProfileID = identity.MakeProfileID(g.currentProfile)
	}
	g.autoAwayTime = f.Int("autoAwayTime", 10)
	g.checkUpdates = f.Bool("checkUpdates", true)
	// notifySound and busySound are surfaced on the UI settings page these
	// days but stay under General in the file for backwards compatibility.
	g.notifySound = f.Bool("notifySound", true)
	g.notifyHide = f.Bool("notifyHide", false)
	g.busySound = f.Bool("busySound", false)
	g.autoSaveEnabled = f.Bool("autoSaveEnabled", false)
	g.globalAutoAcceptDir = f.String("globalAutoAcceptDir", util.UserHome())
	g.autoAcceptMaxSize = f.Int64("autoAcceptMaxSize", 20<<20)
	g.stylePreference = fixInvalidStyleType(StyleType(f.Int("stylePreference", int(StyleWithChars))))
	f.EndGroup()

	f.BeginGroup("Advanced")
	g.makeToxPortable = f.Bool("makeToxPortable", false)
	g.enableIPv6 = f.Bool("enableIPv6", true)
	g.forceTCP = f.Bool("forceTCP", false)
	g.enableLanDiscovery = f.Bool("enableLanDiscovery", true)
	g.dbSyncType = DbSyncType(f.Int("dbSyncType", int(SyncTypeSafe)))
	f.EndGroup()

	f.BeginGroup("Widgets")
	for _, name := range f.Keys() {
		s.widgets[name] = f.Bytes(name, nil)
	}
	f.EndGroup()

	f.BeginGroup("GUI")
	g.showWindow = f.Bool("showWindow", true)
	g.notify = f.Bool("notify", true)
	g.desktopNotify = f.Bool("desktopNotify", true)
	g.groupAlwaysNotify = f.Bool("groupAlwaysNotify", true)
	g.groupchatPosition = f.Bool("groupchatPosition", true)
	g.separateWindow = f.Bool("separateWindow", false)
	g.dontGroupWindows = f.Bool("dontGroupWindows", false)
	g.showIdenticons = f.Bool("showIdenticons", true)
	g.smileyPack = f.String("smileyPack", "emojione")
	g.emojiFontPointSize = f.Int("emojiFontPointSize", 24)
	g.firstColumnHandlePos = f.Int("firstColumnHandlePos", 50)
	g.secondColumnHandlePosFromRight = f.Int("secondColumnHandlePosFromRight", 50)
	g.timestampFormat = f.String("timestampFormat", "hh:mm:ss")
	g.dateFormat = f.String("dateFormat", "yyyy-MM-dd")
	g.minimizeOnClose = f.Bool("minimizeOnClose", false)
	g.minimizeToTray = f.Bool("minimizeToTray", false)
	g.lightTrayIcon = f.Bool("lightTrayIcon", false)
	g.useEmoticons = f.Bool("useEmoticons", true)
	g.statusChangeNotificationEnabled = f.Bool("statusChangeNotificationEnabled", false)
	g.spellCheckingEnabled = f.Bool("spellCheckingEnabled", true)
	g.themeColor = f.Int("themeColor", 0)
	g.style = f.String("style", "")
	g.nameColors = f.Bool("nameColors", false)
	f.EndGroup()

	f.BeginGroup("Chat")
	g.chatMessageFont = f.String("chatMessageFont", "")
	f.EndGroup()

	f.BeginGroup("State")
	g.windowGeometry = f.Bytes("windowGeometry", nil)
	g.windowState = f.Bytes("windowState", nil)
	g.splitterState = f.Bytes("splitterState", nil)
	g.dialogGeometry = f.Bytes("dialogGeometry", nil)
	g.dialogSplitterState = f.Bytes("dialogSplitterState", nil)
	g.dialogSettingsGeometry = f.Bytes("dialogSettingsGeometry", nil)
	f.EndGroup()

	f.BeginGroup("Audio")
	g.inDev = f.String("inDev", "")
	g.audioInDevEnabled = f.Bool("audioInDevEnabled", true)
	g.outDev = f.String("outDev", "")
	g.audioOutDevEnabled = f.Bool("audioOutDevEnabled", true)
	g.audioInGainDecibel = f.Float64("inGain", 0)
	g.audioThreshold = f.Float64("audioThreshold", 0)
	g.outVolume = f.Int("outVolume", 100)
	g.enableTestSound = f.Bool("enableTestSound", true)
	g.audioBitrate = f.Int("audioBitrate", 64)
	g.enableBackend2 = f.Bool("enableBackend2", false)
	f.EndGroup()

	f.BeginGroup("Video")
	g.videoDev = f.String("videoDev", "")
	g.camVideoRes = ParseRect(f.String("camVideoRes", ""))
	g.screenRegion = ParseRect(f.String("screenRegion", ""))
	g.screenGrabbed = f.Bool("screenGrabbed", false)
	g.camVideoFPS = f.Uint16("camVideoFPS", 0)
	f.EndGroup()

	s.loaded = true
}

// SaveGlobal queues a save of the global tier and returns immediately.
func (s *Settings) SaveGlobal() {
	s.post(s.saveGlobalNow)
}

// saveGlobalNow rewrites the whole global file from in-memory state. The
// destination is replaced, not merged. No-op before the first load.
func (s *Settings) saveGlobalNow() {
	if !s.loaded {
		return
	}

	path := filepath.Join(s.resolver.Dir(paths.Settings), GlobalSettingsFile)
	log.WithField("path", path).Debug("Saving global settings")

	g := &s.global
	f := codec.New()

	f.BeginGroup("Login")
	f.SetBool("autoLogin", g.autoLogin)
	f.EndGroup()

	f.BeginGroup("General")
	f.SetString("translation", g.translation)
	f.SetBool("showSystemTray", g.showSystemTray)
	f.SetBool("autostartInTray", g.autostartInTray)
	f.SetBool("closeToTray", g.closeToTray)
	f.SetString("currentProfile", g.currentProfile)
	f.SetInt("autoAwayTime", g.autoAwayTime)
	f.SetBool("checkUpdates", g.checkUpdates)
	f.SetBool("notifySound", g.notifySound)
	f.SetBool("notifyHide", g.notifyHide)
	f.SetBool("busySound", g.busySound)
	f.SetBool("autoSaveEnabled", g.autoSaveEnabled)
	f.SetInt64("autoAcceptMaxSize", g.autoAcceptMaxSize)
	f.SetString("globalAutoAcceptDir", g.globalAutoAcceptDir)
	f.SetInt("stylePreference", int(g.stylePreference))
	f.EndGroup()

	f.BeginGroup("Advanced")
	f.SetBool("makeToxPortable", g.makeToxPortable)
	f.SetBool("enableIPv6", g.enableIPv6)
	f.SetBool("forceTCP", g.forceTCP)
	f.SetBool("enableLanDiscovery", g.enableLanDiscovery)
	f.SetInt("dbSyncType", int(g.dbSyncType))
	f.EndGroup()

	f.BeginGroup("Widgets")
	for name, blob := range s.widgets {
		f.SetBytes(name, blob)
	}
	f.EndGroup()

	f.BeginGroup("GUI")
	f.SetBool("showWindow", g.showWindow)
	f.SetBool("notify", g.notify)
	f.SetBool("desktopNotify", g.desktopNotify)
	f.SetBool("groupAlwaysNotify", g.groupAlwaysNotify)
	f.SetBool("separateWindow", g.separateWindow)
	f.SetBool("dontGroupWindows", g.dontGroupWindows)
	f.SetBool("groupchatPosition", g.groupchatPosition)
	f.SetBool("showIdenticons", g.showIdenticons)
	f.SetString("smileyPack", g.smileyPack)
	f.SetInt("emojiFontPointSize", g.emojiFontPointSize)
	f.SetInt("firstColumnHandlePos", g.firstColumnHandlePos)
	f.SetInt("secondColumnHandlePosFromRight", g.secondColumnHandlePosFromRight)
	f.SetString("timestampFormat", g.timestampFormat)
	f.SetString("dateFormat", g.dateFormat)
	f.SetBool("minimizeOnClose", g.minimizeOnClose)
	f.SetBool("minimizeToTray", g.minimizeToTray)
	f.SetBool("lightTrayIcon", g.lightTrayIcon)
	f.SetBool("useEmoticons", g.useEmoticons)
	f.SetInt("themeColor", g.themeColor)
	f.SetString("style", g.style)
	f.SetBool("nameColors", g.nameColors)
	f.SetBool("statusChangeNotificationEnabled", g.statusChangeNotificationEnabled)
	f.SetBool("spellCheckingEnabled", g.spellCheckingEnabled)
	f.EndGroup()

	f.BeginGroup("Chat")
	f.SetString("chatMessageFont", g.chatMessageFont)
	f.EndGroup()

	f.BeginGroup("State")
	f.SetBytes("windowGeometry", g.windowGeometry)
	f.SetBytes("windowState", g.windowState)
	f.SetBytes("splitterState", g.splitterState)
	f.SetBytes("dialogGeometry", g.dialogGeometry)
	f.SetBytes("dialogSplitterState", g.dialogSplitterState)
	f.SetBytes("dialogSettingsGeometry", g.dialogSettingsGeometry)
	f.EndGroup()

	f.BeginGroup("Audio")
	f.SetString("inDev", g.inDev)
	f.SetBool("audioInDevEnabled", g.audioInDevEnabled)
	f.SetString("outDev", g.outDev)
	f.SetBool("audioOutDevEnabled", g.audioOutDevEnabled)
	f.SetFloat64("inGain", g.audioInGainDecibel)
	f.SetFloat64("audioThreshold", g.audioThreshold)
	f.SetInt("outVolume", g.outVolume)
	f.SetBool("enableTestSound", g.enableTestSound)
	f.SetInt("audioBitrate", g.audioBitrate)
	f.SetBool("enableBackend2", g.enableBackend2)
	f.EndGroup()

	f.BeginGroup("Video")
	f.SetString("videoDev", g.videoDev)
	f.SetString("camVideoRes", g.camVideoRes.String())
	f.SetUint16("camVideoFPS", g.camVideoFPS)
	f.SetString("screenRegion", g.screenRegion.String())
	f.SetBool("screenGrabbed", g.screenGrabbed)
	f.EndGroup()

	if err := f.Save(path, nil); err != nil {
		log.WithError(err).Warn("Failed to save global settings")
	}
}

// LoadPersonal replaces the personal tier with the contents of the
// profile's file, falling back to the shared file when no profile-specific
// one exists. Blocks until the load has been applied.
func (s *Settings) LoadPersonal(profileName string, key *crypto.PassKey) {
	s.run(func() {
		s.passKey = key
		s.loadPersonalNow(profileName, key)
	})
}

func (s *Settings) loadPersonalNow(profileName string, key *crypto.PassKey) {
	dir := s.resolver.Dir(paths.Settings)
	path := filepath.Join(dir, GlobalSettingsFile)

	// Load from a profile specific friend data list if possible.
	if tmp := filepath.Join(dir, profileName+".ini"); util.CheckFileExists(tmp) {
		path = tmp
	}

	log.WithField("path", path).Debug("Loading personal settings")

	f, err := codec.Load(path, key)
	if err != nil {
		log.WithError(err).Warn("Failed to load personal settings, continuing with defaults")
		f = codec.New()
	}

	p := &s.personal

	f.BeginGroup("Privacy")
	p.typingNotification = f.Bool("typingNotification", true)
	p.enableLogging = f.Bool("enableLogging", true)
	p.blackList = splitBlackList(f.String("blackList", ""))
	f.EndGroup()

	s.friends = make(map[identity.ToxPk]*FriendProperty)
	f.BeginGroup("Friends")
	{
		size := f.BeginReadArray("Friend")
		for i := 0; i < size; i++ {
			f.SetArrayIndex(i)
			fp := &FriendProperty{
				Address:       f.String("addr", ""),
				Alias:         f.String("alias", ""),
				Note:          f.String("note", ""),
				AutoAcceptDir: f.String("autoAcceptDir", ""),
			}
			if fp.AutoAcceptDir == "" {
				// Legacy key from before the directory was configurable.
				fp.AutoAcceptDir = f.String("autoAccept", "")
			}
			fp.AutoAcceptCall = AutoAcceptCallFlags(f.Int("autoAcceptCall", 0))
			fp.AutoGroupInvite = f.Bool("autoGroupInvite", false)
			fp.CircleID = f.Int("circle", -1)
			if p.enableLogging {
				if ts := f.String("activity", ""); ts != "" {
					if at, perr := time.Parse(activityFormat, ts); perr == nil {
						fp.Activity = at
					}
				}
			}
			pk, perr := identity.PublicKeyFromAddress(fp.Address)
			if perr != nil {
				log.WithError(perr).WithField("addr", fp.Address).Warn("Skipping friend entry with invalid address")
				continue
			}
			s.friends[pk] = fp
		}
		f.EndArray()
	}
	f.EndGroup()

	s.requests = nil
	f.BeginGroup("Requests")
	{
		size := f.BeginReadArray("Request")
		s.requests = make([]Request, 0, size)
		for i := 0; i < size; i++ {
			f.SetArrayIndex(i)
			s.requests = append(s.requests, Request{
				Address: f.String("addr", ""),
				Message: f.String("message", ""),
				Read:    f.Bool("read", false),
			})
		}
		f.EndArray()
	}
	f.EndGroup()

	f.BeginGroup("GUI")
	p.compactLayout = f.Bool("compactLayout", true)
	p.sortingMode = FriendListSortingMode(f.Int("friendSortingMethod", int(SortingModeName)))
	f.EndGroup()

	f.BeginGroup("Proxy")
	p.proxyType = fixInvalidProxyType(ProxyType(f.Int("proxyType", int(ProxyNone))))
	p.proxyAddr = f.String("proxyAddr", "")
	p.proxyPort = f.Uint16("proxyPort", 0)
	f.EndGroup()

	s.circles = nil
	f.BeginGroup("Circles")
	{
		size := f.BeginReadArray("Circle")
		s.circles = make([]Circle, 0, size)
		for i := 0; i < size; i++ {
			f.SetArrayIndex(i)
			s.circles = append(s.circles, Circle{
				Name:     f.String("name", ""),
				Expanded: f.Bool("expanded", true),
			})
		}
		f.EndArray()
	}
	f.EndGroup()

	f.BeginGroup("Toxme")
	p.toxmeInfo = f.String("info", "")
	p.toxmeBio = f.String("bio", "")
	p.toxmePriv = f.Bool("priv", false)
	p.toxmePass = f.String("pass", "")
	f.EndGroup()
}

// SavePersonal queues a save of the active profile's personal tier and
// returns immediately.
func (s *Settings) SavePersonal() {
	s.post(func() { s.savePersonalNow(s.global.currentProfile, s.passKey) })
}

// SavePersonalFor queues a save of the personal tier under the given
// profile and returns immediately.
func (s *Settings) SavePersonalFor(profile Profile) {
	if profile == nil {
		log.Debug("Could not save personal settings because there is no active profile")
		return
	}
	name, key := profile.Name(), profile.PassKey()
	s.post(func() { s.savePersonalNow(name, key) })
}

func (s *Settings) savePersonalNow(profileName string, key *crypto.PassKey) {
	if !s.loaded {
		return
	}
	if profileName == "" {
		log.Debug("Could not save personal settings because there is no active profile")
		return
	}

	path := filepath.Join(s.resolver.Dir(paths.Settings), profileName+".ini")
	log.WithField("path", path).Debug("Saving personal settings")

	p := &s.personal
	f := codec.New()

	f.BeginGroup("Friends")
	{
		f.BeginWriteArray("Friend", len(s.friends))
		index := 0
		for _, fp := range s.friends {
			f.SetArrayIndex(index)
			f.SetString("addr", fp.Address)
			f.SetString("alias", fp.Alias)
			f.SetString("note", fp.Note)
			f.SetString("autoAcceptDir", fp.AutoAcceptDir)
			f.SetInt("autoAcceptCall", int(fp.AutoAcceptCall))
			f.SetBool("autoGroupInvite", fp.AutoGroupInvite)
			f.SetInt("circle", fp.CircleID)
			if p.enableLogging && !fp.Activity.IsZero() {
				f.SetString("activity", fp.Activity.Format(activityFormat))
			}
			index++
		}
		f.EndArray()
	}
	f.EndGroup()

	f.BeginGroup("Requests")
	{
		f.BeginWriteArray("Request", len(s.requests))
		for i, req := range s.requests {
			f.SetArrayIndex(i)
			f.SetString("addr", req.Address)
			f.SetString("message", req.Message)
			f.SetBool("read", req.Read)
		}
		f.EndArray()
	}
	f.EndGroup()

	f.BeginGroup("GUI")
	f.SetBool("compactLayout", p.compactLayout)
	f.SetInt("friendSortingMethod", int(p.sortingMode))
	f.EndGroup()

	f.BeginGroup("Proxy")
	f.SetInt("proxyType", int(p.proxyType))
	f.SetString("proxyAddr", p.proxyAddr)
	f.SetUint16("proxyPort", p.proxyPort)
	f.EndGroup()

	f.BeginGroup("Circles")
	{
		f.BeginWriteArray("Circle", len(s.circles))
		for i, circle := range s.circles {
			f.SetArrayIndex(i)
			f.SetString("name", circle.Name)
			f.SetBool("expanded", circle.Expanded)
		}
		f.EndArray()
	}
	f.EndGroup()

	f.BeginGroup("Privacy")
	f.SetBool("typingNotification", p.typingNotification)
	f.SetBool("enableLogging", p.enableLogging)
	f.SetString("blackList", strings.Join(p.blackList, "\n"))
	f.EndGroup()

	f.BeginGroup("Toxme")
	f.SetString("info", p.toxmeInfo)
	f.SetString("bio", p.toxmeBio)
	f.SetBool("priv", p.toxmePriv)
	f.SetString("pass", p.toxmePass)
	f.EndGroup()

	if err := f.Save(path, key); err != nil {
		log.WithError(err).Warn("Failed to save personal settings")
	}
}

// ResetToDefault stops further autosaves and removes the active profile's
// settings file. In-memory state is left as-is and considered stale; it is
// not persisted again until a fresh load.
func (s *Settings) ResetToDefault() {
	s.run(func() {
		// To stop saving
		s.loaded = false

		path := filepath.Join(s.resolver.Dir(paths.Settings), s.global.currentProfile+".ini")
		if util.CheckFileExists(path) {
			if err := os.Remove(path); err != nil {
				log.WithError(err).WithField("path", path).Warn("Failed to remove profile settings file")
			}
		}
	})
}

// CreatePersonal writes a default personal settings file for the named
// profile, synchronously. Used when bootstrapping a fresh profile
// directory.
func (s *Settings) CreatePersonal(basename string) error {
	var err error
	s.run(func() {
		path := filepath.Join(s.resolver.Dir(paths.Settings), basename+".ini")
		log.WithField("path", path).Debug("Creating new profile settings")

		f := codec.New()
		f.BeginGroup("Friends")
		f.BeginWriteArray("Friend", 0)
		f.EndArray()
		f.EndGroup()

		f.BeginGroup("Privacy")
		f.TouchGroup()
		f.EndGroup()

		err = f.Save(path, nil)
	})
	return err
}

// splitBlackList decodes the newline-joined persisted blacklist. An empty
// value means no entries, not one empty entry.
func splitBlackList(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, "\n")
}
