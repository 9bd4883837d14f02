package settings

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-tox/toxsettings/lib/crypto"
	"github.com/go-tox/toxsettings/lib/paths"
)

// newTestStore builds a store confined to a temp directory via portable
// mode, so nothing touches the real platform directories.
func newTestStore(t *testing.T) (*Settings, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(WithResolver(&paths.Resolver{Portable: true, AppDir: dir}))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, dir
}

// reopenStore builds a second store over the same directory, for persistence
// round trips.
func reopenStore(t *testing.T, dir string) *Settings {
	t.Helper()
	s, err := New(WithResolver(&paths.Resolver{Portable: true, AppDir: dir}))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

type testProfile struct {
	name string
	key  *crypto.PassKey
}

func (p *testProfile) Name() string             { return p.name }
func (p *testProfile) PassKey() *crypto.PassKey { return p.key }

// eventRecorder collects change events. Assertions go after Close, which
// guarantees delivery of everything published before it.
type eventRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *eventRecorder) record(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *eventRecorder) byField(f Field) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, ev := range r.events {
		if ev.Field == f {
			out = append(out, ev)
		}
	}
	return out
}

func TestNewLoadsDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	assert.True(t, s.Loaded())
	assert.Equal(t, "en", s.Translation())
	assert.Equal(t, 10, s.AutoAwayTime())
	assert.Equal(t, 100, s.OutVolume())
	assert.Equal(t, 64, s.AudioBitrate())
	assert.True(t, s.EnableIPv6())
	assert.False(t, s.MakeToxPortable())
	assert.Equal(t, StyleWithChars, s.StylePreference())
	assert.Equal(t, SyncTypeSafe, s.DbSyncType())
}

func TestSetGetRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	s.SetTranslation("fr")
	s.SetAutoAwayTime(30)
	s.SetMaxAutoAcceptSize(5 << 20)
	s.SetCamVideoRes(Rect{Width: 1280, Height: 720})
	s.SetCamVideoFPS(30)
	s.SetAudioInGainDecibel(-6)

	assert.Equal(t, "fr", s.Translation())
	assert.Equal(t, 30, s.AutoAwayTime())
	assert.Equal(t, int64(5<<20), s.MaxAutoAcceptSize())
	assert.Equal(t, Rect{Width: 1280, Height: 720}, s.CamVideoRes())
	assert.Equal(t, uint16(30), s.CamVideoFPS())
	assert.Equal(t, -6.0, s.AudioInGainDecibel())
}

func TestSetterNotifiesOnce(t *testing.T) {
	s, _ := newTestStore(t)
	rec := &eventRecorder{}
	s.Subscribe(rec.record)

	s.SetTranslation("de")
	s.SetTranslation("de")
	s.SetTranslation("de")

	require.NoError(t, s.Close())

	evs := rec.byField(FieldTranslation)
	require.Len(t, evs, 1, "unchanged assignments must not notify")
	assert.Equal(t, "de", evs[0].Value)
}

func TestSubscribeCancel(t *testing.T) {
	s, _ := newTestStore(t)
	rec := &eventRecorder{}
	cancel := s.Subscribe(rec.record)

	s.SetTranslation("it")
	s.Sync()
	cancel()
	s.SetTranslation("pt")

	require.NoError(t, s.Close())
	// Delivery of the pre-cancel event may race the cancel either way, but
	// the post-cancel change must never arrive.
	for _, ev := range rec.byField(FieldTranslation) {
		assert.Equal(t, "it", ev.Value)
	}
}

func TestObserverMayReenterStore(t *testing.T) {
	s, _ := newTestStore(t)

	got := make(chan int, 1)
	s.Subscribe(func(ev Event) {
		if ev.Field == FieldTranslation {
			// Calling a blocking accessor from the observer must not
			// deadlock the worker.
			got <- s.AutoAwayTime()
		}
	})

	s.SetTranslation("es")

	select {
	case v := <-got:
		assert.Equal(t, 10, v)
	case <-time.After(5 * time.Second):
		t.Fatal("observer callback never ran or deadlocked")
	}
}

func TestSetCurrentProfile(t *testing.T) {
	s, _ := newTestStore(t)
	rec := &eventRecorder{}
	s.Subscribe(rec.record)

	s.SetCurrentProfile("alice")

	assert.Equal(t, "alice", s.CurrentProfile())
	assert.NotZero(t, s.CurrentProfileID())

	require.NoError(t, s.Close())
	require.Len(t, rec.byField(FieldCurrentProfile), 1)
	require.Len(t, rec.byField(FieldCurrentProfileID), 1)
}

func TestUpdateProfileData(t *testing.T) {
	s, _ := newTestStore(t)

	s.UpdateProfileData(&testProfile{name: "bob"})
	assert.Equal(t, "bob", s.CurrentProfile())

	// A nil profile is rejected without touching state.
	s.UpdateProfileData(nil)
	assert.Equal(t, "bob", s.CurrentProfile())
}

func TestConcurrentSetters(t *testing.T) {
	s, _ := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		n := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				switch n % 5 {
				case 0:
					s.SetAutoAwayTime(j)
				case 1:
					s.SetTranslation("t")
				case 2:
					s.SetOutVolume(j % 101)
				case 3:
					s.AddFriendRequest("addr", "hello")
				case 4:
					_ = s.AutoAwayTime()
				}
			}
		}()
	}
	wg.Wait()
	s.Sync()

	assert.Equal(t, "t", s.Translation())
	assert.Equal(t, 1, s.FriendRequestSize(), "same address collapses to one request")
}

func TestCloseIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}

func TestAccessorsAfterCloseAreNoops(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Close())

	// Must not hang or panic; reads return zero values.
	s.SetTranslation("xx")
	assert.Equal(t, "", s.Translation())
	s.Sync()
}

func TestWidgetData(t *testing.T) {
	s, dir := newTestStore(t)

	s.SetWidgetData("mainwindow", []byte{0xCA, 0xFE})
	assert.Equal(t, []byte{0xCA, 0xFE}, s.WidgetData("mainwindow"))
	assert.Nil(t, s.WidgetData("unknown"))

	require.NoError(t, s.Close())

	s2 := reopenStore(t, dir)
	assert.Equal(t, []byte{0xCA, 0xFE}, s2.WidgetData("mainwindow"))
}

func TestFriendActivity(t *testing.T) {
	s, _ := newTestStore(t)
	pk := mustPk(t, testFriendPk)

	assert.True(t, s.FriendActivity(pk).IsZero())

	ts := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	s.SetFriendActivity(pk, ts)
	assert.Equal(t, ts, s.FriendActivity(pk))
}

func TestResolverReflectsPortableSwap(t *testing.T) {
	home := t.TempDir()
	app := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")

	s, err := New(WithResolver(&paths.Resolver{AppDir: app, GOOS: "linux", Home: home}))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.False(t, s.Resolver().Portable)

	s.SetMakeToxPortable(true)

	assert.True(t, s.Resolver().Portable)
	assert.Equal(t, app, s.Resolver().Dir(paths.Settings))
}

func TestBlobAccessorsDetachedFromStore(t *testing.T) {
	s, _ := newTestStore(t)

	s.SetWindowGeometry([]byte{1, 2, 3})
	got := s.WindowGeometry()
	got[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, s.WindowGeometry(), "mutating the returned slice must not reach the store")

	src := []byte{4, 5}
	s.SetWidgetData("roster", src)
	src[0] = 9
	assert.Equal(t, []byte{4, 5}, s.WidgetData("roster"), "mutating the caller's slice after the set must not reach the store")

	w := s.WidgetData("roster")
	w[1] = 9
	assert.Equal(t, []byte{4, 5}, s.WidgetData("roster"))
}
