package settings

import (
	"strings"
)

// Toxme directory-service registration state. The info string is
// "name@server"; setters validate it before accepting.

// ToxmeInfo returns the registered "name@server" identity, or "".
func (s *Settings) ToxmeInfo() string {
	var v string
	s.run(func() { v = s.personal.toxmeInfo })
	return v
}

// SetToxmeInfo stores the directory identity. A value that does not split
// into exactly two "@" delimited parts is rejected: the prior value is
// retained, a warning is logged and no event is emitted.
func (s *Settings) SetToxmeInfo(info string) {
	s.run(func() {
		if !s.loaded || info == s.personal.toxmeInfo {
			return
		}
		if len(strings.Split(info, "@")) != 2 {
			log.WithField("info", info).Warn("Not a valid toxme string, value ignored")
			return
		}
		s.personal.toxmeInfo = info
		s.bus.publish(Event{FieldToxmeInfo, info})
	})
}

func (s *Settings) ToxmeBio() string {
	var v string
	s.run(func() { v = s.personal.toxmeBio })
	return v
}

func (s *Settings) SetToxmeBio(bio string) {
	s.run(func() { setScalar(s, FieldToxmeBio, &s.personal.toxmeBio, bio) })
}

// ToxmePriv reports whether the registration is hidden from the public
// directory listing.
func (s *Settings) ToxmePriv() bool {
	var v bool
	s.run(func() { v = s.personal.toxmePriv })
	return v
}

func (s *Settings) SetToxmePriv(priv bool) {
	s.run(func() { setScalar(s, FieldToxmePriv, &s.personal.toxmePriv, priv) })
}

func (s *Settings) ToxmePass() string {
	var v string
	s.run(func() { v = s.personal.toxmePass })
	return v
}

// SetToxmePass stores the directory password. The change event carries no
// value; the password is not exposed through the bus.
func (s *Settings) SetToxmePass(pass string) {
	s.run(func() {
		if !s.loaded || pass == s.personal.toxmePass {
			return
		}
		s.personal.toxmePass = pass
		s.bus.publish(Event{FieldToxmePass, nil})
	})
}

// SetToxme stores a full directory registration in one call. An empty
// password leaves the stored password untouched.
func (s *Settings) SetToxme(name, server, bio string, priv bool, pass string) {
	s.SetToxmeInfo(name + "@" + server)
	s.SetToxmeBio(bio)
	s.SetToxmePriv(priv)
	if pass != "" {
		s.SetToxmePass(pass)
	}
}

// DeleteToxme clears the directory registration.
func (s *Settings) DeleteToxme() {
	s.run(func() {
		if !s.loaded {
			return
		}
		if s.personal.toxmeInfo != "" {
			s.personal.toxmeInfo = ""
			s.bus.publish(Event{FieldToxmeInfo, ""})
		}
		if s.personal.toxmeBio != "" {
			s.personal.toxmeBio = ""
			s.bus.publish(Event{FieldToxmeBio, ""})
		}
		if s.personal.toxmePriv {
			s.personal.toxmePriv = false
			s.bus.publish(Event{FieldToxmePriv, false})
		}
		if s.personal.toxmePass != "" {
			s.personal.toxmePass = ""
			s.bus.publish(Event{FieldToxmePass, nil})
		}
	})
}
