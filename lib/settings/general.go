package settings

import (
	"os"
	"path/filepath"

	"github.com/go-tox/toxsettings/lib/paths"
	"github.com/go-tox/toxsettings/lib/util"
)

// AutoLogin reports whether the last profile is logged into automatically.
func (s *Settings) AutoLogin() bool {
	var v bool
	s.run(func() { v = s.global.autoLogin })
	return v
}

func (s *Settings) SetAutoLogin(state bool) {
	s.run(func() { setScalar(s, FieldAutoLogin, &s.global.autoLogin, state) })
}

// Translation returns the UI language code.
func (s *Settings) Translation() string {
	var v string
	s.run(func() { v = s.global.translation })
	return v
}

func (s *Settings) SetTranslation(newValue string) {
	s.run(func() { setScalar(s, FieldTranslation, &s.global.translation, newValue) })
}

func (s *Settings) ShowSystemTray() bool {
	var v bool
	s.run(func() { v = s.global.showSystemTray })
	return v
}

func (s *Settings) SetShowSystemTray(newValue bool) {
	s.run(func() { setScalar(s, FieldShowSystemTray, &s.global.showSystemTray, newValue) })
}

func (s *Settings) AutostartInTray() bool {
	var v bool
	s.run(func() { v = s.global.autostartInTray })
	return v
}

func (s *Settings) SetAutostartInTray(newValue bool) {
	s.run(func() { setScalar(s, FieldAutostartInTray, &s.global.autostartInTray, newValue) })
}

func (s *Settings) CloseToTray() bool {
	var v bool
	s.run(func() { v = s.global.closeToTray })
	return v
}

func (s *Settings) SetCloseToTray(newValue bool) {
	s.run(func() { setScalar(s, FieldCloseToTray, &s.global.closeToTray, newValue) })
}

// AutoAwayTime returns the away-status timeout in minutes; 0 disables it.
func (s *Settings) AutoAwayTime() int {
	var v int
	s.run(func() { v = s.global.autoAwayTime })
	return v
}

func (s *Settings) SetAutoAwayTime(newValue int) {
	s.run(func() {
		if newValue < 0 {
			newValue = 10
		}
		setScalar(s, FieldAutoAwayTime, &s.global.autoAwayTime, newValue)
	})
}

func (s *Settings) CheckUpdates() bool {
	var v bool
	s.run(func() { v = s.global.checkUpdates })
	return v
}

func (s *Settings) SetCheckUpdates(newValue bool) {
	s.run(func() { setScalar(s, FieldCheckUpdates, &s.global.checkUpdates, newValue) })
}

func (s *Settings) NotifySound() bool {
	var v bool
	s.run(func() { v = s.global.notifySound })
	return v
}

func (s *Settings) SetNotifySound(newValue bool) {
	s.run(func() { setScalar(s, FieldNotifySound, &s.global.notifySound, newValue) })
}

func (s *Settings) NotifyHide() bool {
	var v bool
	s.run(func() { v = s.global.notifyHide })
	return v
}

func (s *Settings) SetNotifyHide(newValue bool) {
	s.run(func() { setScalar(s, FieldNotifyHide, &s.global.notifyHide, newValue) })
}

func (s *Settings) BusySound() bool {
	var v bool
	s.run(func() { v = s.global.busySound })
	return v
}

func (s *Settings) SetBusySound(newValue bool) {
	s.run(func() { setScalar(s, FieldBusySound, &s.global.busySound, newValue) })
}

// AutoSaveEnabled reports whether incoming files are accepted without
// prompting.
func (s *Settings) AutoSaveEnabled() bool {
	var v bool
	s.run(func() { v = s.global.autoSaveEnabled })
	return v
}

func (s *Settings) SetAutoSaveEnabled(newValue bool) {
	s.run(func() { setScalar(s, FieldAutoSaveEnabled, &s.global.autoSaveEnabled, newValue) })
}

// GlobalAutoAcceptDir is the fallback directory for auto-accepted files
// from friends without their own directory.
func (s *Settings) GlobalAutoAcceptDir() string {
	var v string
	s.run(func() { v = s.global.globalAutoAcceptDir })
	return v
}

func (s *Settings) SetGlobalAutoAcceptDir(newValue string) {
	s.run(func() { setScalar(s, FieldAutoAcceptDir, &s.global.globalAutoAcceptDir, newValue) })
}

// MaxAutoAcceptSize is the largest file size auto-accepted, in bytes;
// 0 means no limit.
func (s *Settings) MaxAutoAcceptSize() int64 {
	var v int64
	s.run(func() { v = s.global.autoAcceptMaxSize })
	return v
}

func (s *Settings) SetMaxAutoAcceptSize(newValue int64) {
	s.run(func() { setScalar(s, FieldAutoAcceptMax, &s.global.autoAcceptMaxSize, newValue) })
}

func (s *Settings) StylePreference() StyleType {
	var v StyleType
	s.run(func() { v = s.global.stylePreference })
	return v
}

func (s *Settings) SetStylePreference(newValue StyleType) {
	s.run(func() { setScalar(s, FieldStylePreference, &s.global.stylePreference, fixInvalidStyleType(newValue)) })
}

// MakeToxPortable reports whether all data is colocated with the
// executable.
func (s *Settings) MakeToxPortable() bool {
	var v bool
	s.run(func() { v = s.global.makeToxPortable })
	return v
}

// SetMakeToxPortable toggles portable mode. The settings file at the old
// location is removed, the resolver is switched over and the global tier is
// saved at the new location.
func (s *Settings) SetMakeToxPortable(newValue bool) {
	s.run(func() {
		if !s.loaded || s.global.makeToxPortable == newValue {
			return
		}
		oldPath := filepath.Join(s.resolver.Dir(paths.Settings), GlobalSettingsFile)
		if util.CheckFileExists(oldPath) {
			if err := os.Remove(oldPath); err != nil {
				log.WithError(err).WithField("path", oldPath).Warn("Failed to remove old settings file")
			}
		}
		s.global.makeToxPortable = newValue
		s.resolver = &paths.Resolver{
			Portable: newValue,
			AppDir:   s.resolver.AppDir,
			GOOS:     s.resolver.GOOS,
			Home:     s.resolver.Home,
		}
		s.saveGlobalNow()
		s.bus.publish(Event{FieldMakeToxPortable, newValue})
	})
}

func (s *Settings) EnableIPv6() bool {
	var v bool
	s.run(func() { v = s.global.enableIPv6 })
	return v
}

func (s *Settings) SetEnableIPv6(enabled bool) {
	s.run(func() { setScalar(s, FieldEnableIPv6, &s.global.enableIPv6, enabled) })
}

func (s *Settings) ForceTCP() bool {
	var v bool
	s.run(func() { v = s.global.forceTCP })
	return v
}

func (s *Settings) SetForceTCP(enabled bool) {
	s.run(func() { setScalar(s, FieldForceTCP, &s.global.forceTCP, enabled) })
}

func (s *Settings) EnableLanDiscovery() bool {
	var v bool
	s.run(func() { v = s.global.enableLanDiscovery })
	return v
}

func (s *Settings) SetEnableLanDiscovery(enabled bool) {
	s.run(func() { setScalar(s, FieldEnableLanDiscovery, &s.global.enableLanDiscovery, enabled) })
}

func (s *Settings) DbSyncType() DbSyncType {
	var v DbSyncType
	s.run(func() { v = s.global.dbSyncType })
	return v
}

func (s *Settings) SetDbSyncType(newValue DbSyncType) {
	s.run(func() { setScalar(s, FieldDbSyncType, &s.global.dbSyncType, newValue) })
}

// WidgetData returns the opaque layout blob saved for the named widget.
func (s *Settings) WidgetData(name string) []byte {
	var v []byte
	s.run(func() { v = cloneBytes(s.widgets[name]) })
	return v
}

// SetWidgetData stores an opaque layout blob for the named widget. Widget
// names are assumed unique.
func (s *Settings) SetWidgetData(name string, data []byte) {
	s.run(func() {
		if !s.loaded {
			return
		}
		s.widgets[name] = cloneBytes(data)
	})
}
