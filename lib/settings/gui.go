package settings

// GUI, chat and window-state preferences of the global tier, plus the
// personal tier's friend-list layout fields.

func (s *Settings) ShowWindow() bool {
	var v bool
	s.run(func() { v = s.global.showWindow })
	return v
}

func (s *Settings) SetShowWindow(newValue bool) {
	s.run(func() { setScalar(s, FieldShowWindow, &s.global.showWindow, newValue) })
}

func (s *Settings) Notify() bool {
	var v bool
	s.run(func() { v = s.global.notify })
	return v
}

func (s *Settings) SetNotify(newValue bool) {
	s.run(func() { setScalar(s, FieldNotify, &s.global.notify, newValue) })
}

func (s *Settings) DesktopNotify() bool {
	var v bool
	s.run(func() { v = s.global.desktopNotify })
	return v
}

func (s *Settings) SetDesktopNotify(newValue bool) {
	s.run(func() { setScalar(s, FieldDesktopNotify, &s.global.desktopNotify, newValue) })
}

func (s *Settings) GroupAlwaysNotify() bool {
	var v bool
	s.run(func() { v = s.global.groupAlwaysNotify })
	return v
}

func (s *Settings) SetGroupAlwaysNotify(newValue bool) {
	s.run(func() { setScalar(s, FieldGroupAlwaysNotify, &s.global.groupAlwaysNotify, newValue) })
}

// GroupchatPosition reports whether group chats sort above the friend
// list.
func (s *Settings) GroupchatPosition() bool {
	var v bool
	s.run(func() { v = s.global.groupchatPosition })
	return v
}

func (s *Settings) SetGroupchatPosition(newValue bool) {
	s.run(func() { setScalar(s, FieldGroupchatPosition, &s.global.groupchatPosition, newValue) })
}

func (s *Settings) SeparateWindow() bool {
	var v bool
	s.run(func() { v = s.global.separateWindow })
	return v
}

func (s *Settings) SetSeparateWindow(newValue bool) {
	s.run(func() { setScalar(s, FieldSeparateWindow, &s.global.separateWindow, newValue) })
}

func (s *Settings) DontGroupWindows() bool {
	var v bool
	s.run(func() { v = s.global.dontGroupWindows })
	return v
}

func (s *Settings) SetDontGroupWindows(newValue bool) {
	s.run(func() { setScalar(s, FieldDontGroupWindows, &s.global.dontGroupWindows, newValue) })
}

func (s *Settings) ShowIdenticons() bool {
	var v bool
	s.run(func() { v = s.global.showIdenticons })
	return v
}

func (s *Settings) SetShowIdenticons(newValue bool) {
	s.run(func() { setScalar(s, FieldShowIdenticons, &s.global.showIdenticons, newValue) })
}

func (s *Settings) SmileyPack() string {
	var v string
	s.run(func() { v = s.global.smileyPack })
	return v
}

func (s *Settings) SetSmileyPack(newValue string) {
	s.run(func() { setScalar(s, FieldSmileyPack, &s.global.smileyPack, newValue) })
}

func (s *Settings) EmojiFontPointSize() int {
	var v int
	s.run(func() { v = s.global.emojiFontPointSize })
	return v
}

func (s *Settings) SetEmojiFontPointSize(newValue int) {
	s.run(func() { setScalar(s, FieldEmojiFontSize, &s.global.emojiFontPointSize, newValue) })
}

// FirstColumnHandlePos and its partner below persist the friend-list
// splitter positions; no change events, the values are written on drag.
func (s *Settings) FirstColumnHandlePos() int {
	var v int
	s.run(func() { v = s.global.firstColumnHandlePos })
	return v
}

func (s *Settings) SetFirstColumnHandlePos(newValue int) {
	s.run(func() {
		if !s.loaded {
			return
		}
		s.global.firstColumnHandlePos = newValue
	})
}

func (s *Settings) SecondColumnHandlePosFromRight() int {
	var v int
	s.run(func() { v = s.global.secondColumnHandlePosFromRight })
	return v
}

func (s *Settings) SetSecondColumnHandlePosFromRight(newValue int) {
	s.run(func() {
		if !s.loaded {
			return
		}
		s.global.secondColumnHandlePosFromRight = newValue
	})
}

func (s *Settings) TimestampFormat() string {
	var v string
	s.run(func() { v = s.global.timestampFormat })
	return v
}

func (s *Settings) SetTimestampFormat(newValue string) {
	s.run(func() { setScalar(s, FieldTimestampFormat, &s.global.timestampFormat, newValue) })
}

func (s *Settings) DateFormat() string {
	var v string
	s.run(func() { v = s.global.dateFormat })
	return v
}

func (s *Settings) SetDateFormat(newValue string) {
	s.run(func() { setScalar(s, FieldDateFormat, &s.global.dateFormat, newValue) })
}

func (s *Settings) MinimizeOnClose() bool {
	var v bool
	s.run(func() { v = s.global.minimizeOnClose })
	return v
}

func (s *Settings) SetMinimizeOnClose(newValue bool) {
	s.run(func() { setScalar(s, FieldMinimizeOnClose, &s.global.minimizeOnClose, newValue) })
}

func (s *Settings) MinimizeToTray() bool {
	var v bool
	s.run(func() { v = s.global.minimizeToTray })
	return v
}

func (s *Settings) SetMinimizeToTray(newValue bool) {
	s.run(func() { setScalar(s, FieldMinimizeToTray, &s.global.minimizeToTray, newValue) })
}

func (s *Settings) LightTrayIcon() bool {
	var v bool
	s.run(func() { v = s.global.lightTrayIcon })
	return v
}

func (s *Settings) SetLightTrayIcon(newValue bool) {
	s.run(func() { setScalar(s, FieldLightTrayIcon, &s.global.lightTrayIcon, newValue) })
}

func (s *Settings) UseEmoticons() bool {
	var v bool
	s.run(func() { v = s.global.useEmoticons })
	return v
}

func (s *Settings) SetUseEmoticons(newValue bool) {
	s.run(func() { setScalar(s, FieldUseEmoticons, &s.global.useEmoticons, newValue) })
}

func (s *Settings) StatusChangeNotificationEnabled() bool {
	var v bool
	s.run(func() { v = s.global.statusChangeNotificationEnabled })
	return v
}

func (s *Settings) SetStatusChangeNotificationEnabled(newValue bool) {
	s.run(func() {
		setScalar(s, FieldStatusChangeNotif, &s.global.statusChangeNotificationEnabled, newValue)
	})
}

func (s *Settings) SpellCheckingEnabled() bool {
	var v bool
	s.run(func() { v = s.global.spellCheckingEnabled })
	return v
}

func (s *Settings) SetSpellCheckingEnabled(newValue bool) {
	s.run(func() { setScalar(s, FieldSpellChecking, &s.global.spellCheckingEnabled, newValue) })
}

func (s *Settings) ThemeColor() int {
	var v int
	s.run(func() { v = s.global.themeColor })
	return v
}

func (s *Settings) SetThemeColor(value int) {
	s.run(func() { setScalar(s, FieldThemeColor, &s.global.themeColor, value) })
}

func (s *Settings) Style() string {
	var v string
	s.run(func() { v = s.global.style })
	return v
}

func (s *Settings) SetStyle(newStyle string) {
	s.run(func() { setScalar(s, FieldStyle, &s.global.style, newStyle) })
}

// EnableGroupChatsColor reports whether group chat member names are
// colorized.
func (s *Settings) EnableGroupChatsColor() bool {
	var v bool
	s.run(func() { v = s.global.nameColors })
	return v
}

func (s *Settings) SetEnableGroupChatsColor(state bool) {
	s.run(func() { setScalar(s, FieldNameColors, &s.global.nameColors, state) })
}

// ChatMessageFont is the chat font description string.
func (s *Settings) ChatMessageFont() string {
	var v string
	s.run(func() { v = s.global.chatMessageFont })
	return v
}

func (s *Settings) SetChatMessageFont(font string) {
	s.run(func() { setScalar(s, FieldChatMessageFont, &s.global.chatMessageFont, font) })
}

// CompactLayout reports whether the friend list uses the compact layout.
// Personal tier.
func (s *Settings) CompactLayout() bool {
	var v bool
	s.run(func() { v = s.personal.compactLayout })
	return v
}

func (s *Settings) SetCompactLayout(value bool) {
	s.run(func() { setScalar(s, FieldCompactLayout, &s.personal.compactLayout, value) })
}

// FriendSortingMode orders the friend list. Personal tier.
func (s *Settings) FriendSortingMode() FriendListSortingMode {
	var v FriendListSortingMode
	s.run(func() { v = s.personal.sortingMode })
	return v
}

func (s *Settings) SetFriendSortingMode(mode FriendListSortingMode) {
	s.run(func() { setScalar(s, FieldSortingMode, &s.personal.sortingMode, mode) })
}
