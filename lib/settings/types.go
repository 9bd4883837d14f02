package settings

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AutoAcceptCallFlags is a bitset of call kinds a friend's incoming calls
// are auto-accepted for.
type AutoAcceptCallFlags int

const (
	AutoAcceptCallNone  AutoAcceptCallFlags = 0x00
	AutoAcceptCallAudio AutoAcceptCallFlags = 0x01
	AutoAcceptCallVideo AutoAcceptCallFlags = 0x02
	AutoAcceptCallAV                        = AutoAcceptCallAudio | AutoAcceptCallVideo
)

// StyleType selects how text styling markup is rendered in chat.
type StyleType int

const (
	StyleNone StyleType = iota
	StyleWithChars
	StyleWithoutChars
)

// fixInvalidStyleType repairs an out-of-range persisted style preference.
func fixInvalidStyleType(style StyleType) StyleType {
	switch style {
	case StyleNone, StyleWithChars, StyleWithoutChars:
		return style
	default:
		log.WithField("stylePreference", int(style)).Warn("Repairing invalid StyleType")
		return StyleWithChars
	}
}

// ProxyType is the network proxy mode of the personal tier.
type ProxyType int

const (
	ProxyNone ProxyType = iota
	ProxySOCKS5
	ProxyHTTP
)

// fixInvalidProxyType repairs an uninitialized enum value that older
// releases could persist.
func fixInvalidProxyType(proxyType ProxyType) ProxyType {
	switch proxyType {
	case ProxyNone, ProxySOCKS5, ProxyHTTP:
		return proxyType
	default:
		log.WithField("proxyType", int(proxyType)).Warn("Repairing invalid ProxyType, UDP will be enabled")
		return ProxyNone
	}
}

// FriendListSortingMode orders the friend list.
type FriendListSortingMode int

const (
	SortingModeName FriendListSortingMode = iota
	SortingModeActivity
)

// DbSyncType is the history database's write durability mode.
type DbSyncType int

const (
	SyncTypeOff DbSyncType = iota
	SyncTypeNormal
	SyncTypeSafe
)

// Rect is a plain rectangle used for camera resolution and screen-region
// preferences. The persisted form is "x,y,w,h"; the zero Rect persists as
// an empty string.
type Rect struct {
	X, Y, Width, Height int
}

// IsEmpty reports whether r is the zero rectangle.
func (r Rect) IsEmpty() bool {
	return r == Rect{}
}

func (r Rect) String() string {
	if r.IsEmpty() {
		return ""
	}
	return fmt.Sprintf("%d,%d,%d,%d", r.X, r.Y, r.Width, r.Height)
}

// ParseRect decodes the persisted rectangle form. Malformed input yields
// the zero Rect.
func ParseRect(s string) Rect {
	if s == "" {
		return Rect{}
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Rect{}
	}
	var vals [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Rect{}
		}
		vals[i] = n
	}
	return Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}
}

// FriendProperty is the per-contact state kept by the personal tier.
type FriendProperty struct {
	// Address is the contact's full network identifier, stable once
	// persisted.
	Address string
	Alias   string
	Note    string
	// AutoAcceptDir is where files from this friend are auto-accepted to;
	// empty disables auto-accept.
	AutoAcceptDir   string
	AutoAcceptCall  AutoAcceptCallFlags
	AutoGroupInvite bool
	// CircleID indexes the circle list; -1 means unassigned.
	CircleID int
	// Activity is only tracked and persisted while logging is enabled.
	Activity time.Time
}

// Request is one pending incoming contact request.
type Request struct {
	Address string
	Message string
	Read    bool
}

// Circle is a named, collapsible friend grouping, addressed by its dense
// index in the circle list.
type Circle struct {
	Name     string
	Expanded bool
}
