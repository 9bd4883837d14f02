package settings

// AddFriendRequest queues an incoming contact request. Re-adding an address
// that is already pending updates its message in place and marks it unread
// again; the return value distinguishes a fresh insert (true) from an
// in-place update (false).
func (s *Settings) AddFriendRequest(friendAddress, message string) bool {
	inserted := false
	s.run(func() {
		if !s.loaded {
			return
		}
		for i := range s.requests {
			if s.requests[i].Address == friendAddress {
				s.requests[i].Message = message
				s.requests[i].Read = false
				return
			}
		}
		s.requests = append(s.requests, Request{
			Address: friendAddress,
			Message: message,
		})
		inserted = true
	})
	return inserted
}

// UnreadFriendRequests counts the pending requests not yet marked read.
func (s *Settings) UnreadFriendRequests() int {
	var v int
	s.run(func() {
		for _, req := range s.requests {
			if !req.Read {
				v++
			}
		}
	})
	return v
}

// FriendRequest returns the pending request at index, or the zero Request
// when the index is out of range.
func (s *Settings) FriendRequest(index int) Request {
	var v Request
	s.run(func() {
		if index < 0 || index >= len(s.requests) {
			log.WithField("index", index).Warn("Friend request index out of range")
			return
		}
		v = s.requests[index]
	})
	return v
}

// FriendRequestSize returns the number of pending requests.
func (s *Settings) FriendRequestSize() int {
	var v int
	s.run(func() { v = len(s.requests) })
	return v
}

// ClearUnreadFriendRequests marks every pending request read.
func (s *Settings) ClearUnreadFriendRequests() {
	s.run(func() {
		if !s.loaded {
			return
		}
		for i := range s.requests {
			s.requests[i].Read = true
		}
	})
}

// ReadFriendRequest marks the request at index read.
func (s *Settings) ReadFriendRequest(index int) {
	s.run(func() {
		if !s.loaded || index < 0 || index >= len(s.requests) {
			return
		}
		s.requests[index].Read = true
	})
}

// RemoveFriendRequest drops the request at index, preserving the order of
// the remaining entries.
func (s *Settings) RemoveFriendRequest(index int) {
	s.run(func() {
		if !s.loaded || index < 0 || index >= len(s.requests) {
			return
		}
		s.requests = append(s.requests[:index], s.requests[index+1:]...)
	})
}
