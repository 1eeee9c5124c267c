package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	hub    *Hub
	server *httptest.Server
	mu     sync.Mutex
	nextID int64
	ids    []int64
}

// newTestServer upgrades each incoming connection and registers it
// under the next company ID in ids (or nextID fallback).
func newTestServer(t *testing.T, hub *Hub, ids ...int64) *testServer {
	t.Helper()

	ts := &testServer{hub: hub, ids: ids, nextID: 1}
	upgrader := websocket.Upgrader{}
	ts.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		ts.mu.Lock()
		var id int64
		if len(ts.ids) > 0 {
			id = ts.ids[0]
			ts.ids = ts.ids[1:]
		} else {
			id = ts.nextID
			ts.nextID++
		}
		ts.mu.Unlock()
		hub.Register(id, conn)
	}))
	t.Cleanup(ts.server.Close)
	return ts
}

func (ts *testServer) dial(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitOnline(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for hub.Online() != want {
		if time.Now().After(deadline) {
			t.Fatalf("hub online = %d, want %d", hub.Online(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPushReachesOnlyTargetCompany(t *testing.T) {
	hub := NewHub()
	ts := newTestServer(t, hub, 1, 2)

	c1 := ts.dial(t)
	c2 := ts.dial(t)
	waitOnline(t, hub, 2)

	hub.Push(1, []byte("hello-1"))

	c1.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := c1.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "hello-1", string(msg))

	c2.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err = c2.ReadMessage()
	assert.Error(t, err) // nothing arrives for company 2
}

func TestBroadcastReachesEveryone(t *testing.T) {
	hub := NewHub()
	ts := newTestServer(t, hub, 1, 2)

	c1 := ts.dial(t)
	c2 := ts.dial(t)
	waitOnline(t, hub, 2)

	hub.Broadcast([]byte("all"))

	for _, conn := range []*websocket.Conn{c1, c2} {
		conn.SetReadDeadline(time.Now().Add(time.Second))
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, "all", string(msg))
	}
}

func TestDisconnectUnregisters(t *testing.T) {
	hub := NewHub()
	ts := newTestServer(t, hub, 1)

	conn := ts.dial(t)
	waitOnline(t, hub, 1)

	conn.Close()
	waitOnline(t, hub, 0)

	// Pushing to a gone company is a no-op.
	hub.Push(1, []byte("ghost"))
}
