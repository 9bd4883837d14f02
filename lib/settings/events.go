package settings

import (
	"sync"
)

// Field identifies one logical property for change notification purposes.
type Field string

// Preference fields carried by change events. One constant per notifying
// setter; per-friend and per-request state does not notify.
const (
	FieldAutoLogin        Field = "autoLogin"
	FieldTranslation      Field = "translation"
	FieldShowSystemTray   Field = "showSystemTray"
	FieldAutostartInTray  Field = "autostartInTray"
	FieldCloseToTray      Field = "closeToTray"
	FieldCurrentProfile   Field = "currentProfile"
	FieldCurrentProfileID Field = "currentProfileId"
	FieldAutoAwayTime     Field = "autoAwayTime"
	FieldCheckUpdates     Field = "checkUpdates"
	FieldNotifySound      Field = "notifySound"
	FieldNotifyHide       Field = "notifyHide"
	FieldBusySound        Field = "busySound"
	FieldAutoSaveEnabled  Field = "autoSaveEnabled"
	FieldAutoAcceptDir    Field = "globalAutoAcceptDir"
	FieldAutoAcceptMax    Field = "autoAcceptMaxSize"
	FieldStylePreference  Field = "stylePreference"

	FieldMakeToxPortable    Field = "makeToxPortable"
	FieldEnableIPv6         Field = "enableIPv6"
	FieldForceTCP           Field = "forceTCP"
	FieldEnableLanDiscovery Field = "enableLanDiscovery"
	FieldDbSyncType         Field = "dbSyncType"

	FieldShowWindow        Field = "showWindow"
	FieldNotify            Field = "notify"
	FieldDesktopNotify     Field = "desktopNotify"
	FieldGroupAlwaysNotify Field = "groupAlwaysNotify"
	FieldGroupchatPosition Field = "groupchatPosition"
	FieldSeparateWindow    Field = "separateWindow"
	FieldDontGroupWindows  Field = "dontGroupWindows"
	FieldShowIdenticons    Field = "showIdenticons"
	FieldSmileyPack        Field = "smileyPack"
	FieldEmojiFontSize     Field = "emojiFontPointSize"
	FieldTimestampFormat   Field = "timestampFormat"
	FieldDateFormat        Field = "dateFormat"
	FieldMinimizeOnClose   Field = "minimizeOnClose"
	FieldMinimizeToTray    Field = "minimizeToTray"
	FieldLightTrayIcon     Field = "lightTrayIcon"
	FieldUseEmoticons      Field = "useEmoticons"
	FieldStatusChangeNotif Field = "statusChangeNotificationEnabled"
	FieldSpellChecking     Field = "spellCheckingEnabled"
	FieldThemeColor        Field = "themeColor"
	FieldStyle             Field = "style"
	FieldNameColors        Field = "nameColors"
	FieldChatMessageFont   Field = "chatMessageFont"

	FieldInDev             Field = "inDev"
	FieldAudioInDevEnabled Field = "audioInDevEnabled"
	FieldOutDev            Field = "outDev"
	FieldAudioOutEnabled   Field = "audioOutDevEnabled"
	FieldAudioInGain       Field = "audioInGainDecibel"
	FieldAudioThreshold    Field = "audioThreshold"
	FieldOutVolume         Field = "outVolume"
	FieldEnableTestSound   Field = "enableTestSound"
	FieldAudioBitrate      Field = "audioBitrate"
	FieldEnableBackend2    Field = "enableBackend2"

	FieldVideoDev      Field = "videoDev"
	FieldCamVideoRes   Field = "camVideoRes"
	FieldScreenRegion  Field = "screenRegion"
	FieldScreenGrabbed Field = "screenGrabbed"
	FieldCamVideoFPS   Field = "camVideoFPS"

	FieldTypingNotification Field = "typingNotification"
	FieldEnableLogging      Field = "enableLogging"
	FieldBlackList          Field = "blackList"
	FieldCompactLayout      Field = "compactLayout"
	FieldSortingMode        Field = "sortingMode"
	FieldProxyType          Field = "proxyType"
	FieldProxyAddr          Field = "proxyAddr"
	FieldProxyPort          Field = "proxyPort"
	FieldToxmeInfo          Field = "toxmeInfo"
	FieldToxmeBio           Field = "toxmeBio"
	FieldToxmePriv          Field = "toxmePriv"
	FieldToxmePass          Field = "toxmePass"
)

// Event is one property change. Value holds the new value, except for
// FieldToxmePass which carries nil.
type Event struct {
	Field Field
	Value interface{}
}

// bus fans change events out to subscribers. Events are queued in emission
// order and delivered from a dedicated goroutine, so observers may call
// back into the store without deadlocking its worker.
type bus struct {
	mu     sync.Mutex
	subs   map[int]func(Event)
	nextID int
	queue  []Event
	closed bool

	wake chan struct{}
	done chan struct{}
}

func newBus() *bus {
	b := &bus{
		subs: make(map[int]func(Event)),
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go b.loop()
	return b
}

func (b *bus) subscribe(fn func(Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

func (b *bus) publish(ev Event) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.queue = append(b.queue, ev)
	b.mu.Unlock()
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

func (b *bus) loop() {
	defer close(b.done)
	for range b.wake {
		b.drain()
	}
	// Deliver anything still queued at close time.
	b.drain()
}

func (b *bus) drain() {
	for {
		b.mu.Lock()
		if len(b.queue) == 0 {
			b.mu.Unlock()
			return
		}
		ev := b.queue[0]
		b.queue = b.queue[1:]
		subs := make([]func(Event), 0, len(b.subs))
		for _, fn := range b.subs {
			subs = append(subs, fn)
		}
		b.mu.Unlock()
		for _, fn := range subs {
			fn(ev)
		}
	}
}

// close waits until every queued event has been delivered.
func (b *bus) close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		<-b.done
		return
	}
	b.closed = true
	b.mu.Unlock()
	close(b.wake)
	<-b.done
}
