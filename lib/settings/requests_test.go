package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFriendRequest(t *testing.T) {
	s, _ := newTestStore(t)

	assert.True(t, s.AddFriendRequest("A", "hi"))
	assert.Equal(t, 1, s.FriendRequestSize())
	assert.Equal(t, 1, s.UnreadFriendRequests())

	req := s.FriendRequest(0)
	assert.Equal(t, "A", req.Address)
	assert.Equal(t, "hi", req.Message)
	assert.False(t, req.Read)
}

func TestAddFriendRequestDeduplicates(t *testing.T) {
	s, _ := newTestStore(t)

	require.True(t, s.AddFriendRequest("A", "hi"))
	s.ReadFriendRequest(0)
	require.Equal(t, 0, s.UnreadFriendRequests())

	// Re-adding the same address updates in place and flips it unread.
	assert.False(t, s.AddFriendRequest("A", "bye"))
	assert.Equal(t, 1, s.FriendRequestSize())
	assert.Equal(t, 1, s.UnreadFriendRequests())
	assert.Equal(t, "bye", s.FriendRequest(0).Message)
}

func TestClearUnreadFriendRequests(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddFriendRequest("A", "one")
	s.AddFriendRequest("B", "two")

	s.ClearUnreadFriendRequests()

	assert.Equal(t, 0, s.UnreadFriendRequests())
	assert.Equal(t, 2, s.FriendRequestSize())
}

func TestRemoveFriendRequestPreservesOrder(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddFriendRequest("A", "one")
	s.AddFriendRequest("B", "two")
	s.AddFriendRequest("C", "three")

	s.RemoveFriendRequest(1)

	require.Equal(t, 2, s.FriendRequestSize())
	assert.Equal(t, "A", s.FriendRequest(0).Address)
	assert.Equal(t, "C", s.FriendRequest(1).Address)
}

func TestFriendRequestOutOfRange(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddFriendRequest("A", "one")

	assert.Equal(t, Request{}, s.FriendRequest(5))
	assert.Equal(t, Request{}, s.FriendRequest(-1))

	// Out of range mutations are ignored.
	s.ReadFriendRequest(5)
	s.RemoveFriendRequest(5)
	assert.Equal(t, 1, s.FriendRequestSize())
}
