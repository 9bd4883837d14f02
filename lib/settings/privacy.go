package settings

import (
	"slices"
)

// Personal-tier privacy preferences.

// TypingNotification reports whether typing notifications are sent to
// chat partners.
func (s *Settings) TypingNotification() bool {
	var v bool
	s.run(func() { v = s.personal.typingNotification })
	return v
}

func (s *Settings) SetTypingNotification(enabled bool) {
	s.run(func() { setScalar(s, FieldTypingNotification, &s.personal.typingNotification, enabled) })
}

// EnableLogging reports whether chat history is kept. Friend activity
// timestamps are only tracked and persisted while this is on.
func (s *Settings) EnableLogging() bool {
	var v bool
	s.run(func() { v = s.personal.enableLogging })
	return v
}

func (s *Settings) SetEnableLogging(newValue bool) {
	s.run(func() { setScalar(s, FieldEnableLogging, &s.personal.enableLogging, newValue) })
}

// BlackList returns the addresses whose group invites are ignored.
func (s *Settings) BlackList() []string {
	var v []string
	s.run(func() { v = slices.Clone(s.personal.blackList) })
	return v
}

func (s *Settings) SetBlackList(blist []string) {
	s.run(func() {
		if !s.loaded || slices.Equal(s.personal.blackList, blist) {
			return
		}
		s.personal.blackList = slices.Clone(blist)
		s.bus.publish(Event{FieldBlackList, slices.Clone(blist)})
	})
}
