package settings

import (
	"github.com/go-tox/toxsettings/lib/identity"
)

// getOrInsertFriendProp looks a friend up by public key, inserting a new
// entry defaulted from the key's canonical address when absent. Must only
// be called on the worker; the returned pointer is mutable in place.
func (s *Settings) getOrInsertFriendProp(pk identity.ToxPk) *FriendProperty {
	fp, ok := s.friends[pk]
	if !ok {
		fp = &FriendProperty{Address: pk.String(), CircleID: -1}
		s.friends[pk] = fp
	}
	return fp
}

// FriendAddress returns the friend's full address, or "" when the key is
// unknown.
func (s *Settings) FriendAddress(pk identity.ToxPk) string {
	var v string
	s.run(func() {
		if fp, ok := s.friends[pk]; ok {
			v = fp.Address
		}
	})
	return v
}

// UpdateFriendAddress records the friend's full address, keyed by the
// public key embedded in it. A malformed address is rejected with a
// warning.
func (s *Settings) UpdateFriendAddress(newAddr string) {
	pk, err := identity.PublicKeyFromAddress(newAddr)
	if err != nil {
		log.WithError(err).WithField("addr", newAddr).Warn("Ignoring invalid friend address")
		return
	}
	s.run(func() {
		if !s.loaded {
			return
		}
		s.getOrInsertFriendProp(pk).Address = newAddr
	})
}

// FriendAlias returns the friend's alias, or "" when the key is unknown.
func (s *Settings) FriendAlias(pk identity.ToxPk) string {
	var v string
	s.run(func() {
		if fp, ok := s.friends[pk]; ok {
			v = fp.Alias
		}
	})
	return v
}

// SetFriendAlias stores the friend's alias, inserting the entry on first
// reference.
func (s *Settings) SetFriendAlias(pk identity.ToxPk, alias string) {
	s.run(func() {
		if !s.loaded {
			return
		}
		s.getOrInsertFriendProp(pk).Alias = alias
	})
}

// FriendNote returns the free-form note attached to the friend, or "" when
// the key is unknown.
func (s *Settings) FriendNote(pk identity.ToxPk) string {
	var v string
	s.run(func() {
		if fp, ok := s.friends[pk]; ok {
			v = fp.Note
		}
	})
	return v
}

// SetFriendNote stores the friend's note.
func (s *Settings) SetFriendNote(pk identity.ToxPk, note string) {
	s.run(func() {
		if !s.loaded {
			return
		}
		s.getOrInsertFriendProp(pk).Note = note
	})
}

// AutoAcceptDir returns the friend's file auto-accept directory; "" means
// auto-accept is disabled for this friend.
func (s *Settings) AutoAcceptDir(pk identity.ToxPk) string {
	var v string
	s.run(func() {
		if fp, ok := s.friends[pk]; ok {
			v = fp.AutoAcceptDir
		}
	})
	return v
}

// SetAutoAcceptDir stores the friend's file auto-accept directory.
func (s *Settings) SetAutoAcceptDir(pk identity.ToxPk, dir string) {
	s.run(func() {
		if !s.loaded {
			return
		}
		s.getOrInsertFriendProp(pk).AutoAcceptDir = dir
	})
}

// AutoAcceptCall returns the friend's auto-accepted call kinds; the zero
// flags mean no calls are auto-accepted.
func (s *Settings) AutoAcceptCall(pk identity.ToxPk) AutoAcceptCallFlags {
	var v AutoAcceptCallFlags
	s.run(func() {
		if fp, ok := s.friends[pk]; ok {
			v = fp.AutoAcceptCall
		}
	})
	return v
}

// SetAutoAcceptCall stores the friend's auto-accepted call kinds.
func (s *Settings) SetAutoAcceptCall(pk identity.ToxPk, accept AutoAcceptCallFlags) {
	s.run(func() {
		if !s.loaded {
			return
		}
		s.getOrInsertFriendProp(pk).AutoAcceptCall = accept
	})
}

// AutoGroupInvite reports whether group invites from the friend are
// accepted automatically.
func (s *Settings) AutoGroupInvite(pk identity.ToxPk) bool {
	var v bool
	s.run(func() {
		if fp, ok := s.friends[pk]; ok {
			v = fp.AutoGroupInvite
		}
	})
	return v
}

// SetAutoGroupInvite stores whether group invites from the friend are
// accepted automatically.
func (s *Settings) SetAutoGroupInvite(pk identity.ToxPk, invite bool) {
	s.run(func() {
		if !s.loaded {
			return
		}
		s.getOrInsertFriendProp(pk).AutoGroupInvite = invite
	})
}

// FriendCircleID returns the index of the circle the friend belongs to,
// or -1 when unassigned or unknown.
func (s *Settings) FriendCircleID(pk identity.ToxPk) int {
	v := -1
	s.run(func() {
		if fp, ok := s.friends[pk]; ok {
			v = fp.CircleID
		}
	})
	return v
}

// SetFriendCircleID assigns the friend to a circle by index; -1 removes
// the assignment.
func (s *Settings) SetFriendCircleID(pk identity.ToxPk, circleID int) {
	s.run(func() {
		if !s.loaded {
			return
		}
		s.getOrInsertFriendProp(pk).CircleID = circleID
	})
}

// FriendCount returns the number of known friends.
func (s *Settings) FriendCount() int {
	var v int
	s.run(func() { v = len(s.friends) })
	return v
}

// Friends returns a snapshot of all known friends keyed by public key.
func (s *Settings) Friends() map[identity.ToxPk]FriendProperty {
	var out map[identity.ToxPk]FriendProperty
	s.run(func() {
		out = make(map[identity.ToxPk]FriendProperty, len(s.friends))
		for pk, fp := range s.friends {
			out[pk] = *fp
		}
	})
	return out
}

// SaveFriendSettings flushes per-friend state by queueing a personal save.
func (s *Settings) SaveFriendSettings(identity.ToxPk) {
	s.SavePersonal()
}

// RemoveFriendSettings forgets everything stored for the friend.
func (s *Settings) RemoveFriendSettings(pk identity.ToxPk) {
	s.run(func() {
		if !s.loaded {
			return
		}
		delete(s.friends, pk)
	})
}
