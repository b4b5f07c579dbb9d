package devserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialReload(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) ReloadMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal %q: %v", data, err)
	}
	return msg
}

func waitForClients(t *testing.T, rs *ReloadServer, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for rs.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("ClientCount() = %d, want %d", rs.ClientCount(), want)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestReloadServerBroadcast(t *testing.T) {
	rs := NewReloadServer()
	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()
	defer rs.Close()

	conn := dialReload(t, srv)
	waitForClients(t, rs, 1)

	rs.NotifyReload()
	if msg := readMessage(t, conn); msg.Type != ReloadTypeFull {
		t.Errorf("message type = %q, want %q", msg.Type, ReloadTypeFull)
	}

	rs.NotifyCSS("public/styles.css")
	msg := readMessage(t, conn)
	if msg.Type != ReloadTypeCSS {
		t.Errorf("message type = %q, want %q", msg.Type, ReloadTypeCSS)
	}
	if msg.File != "public/styles.css" {
		t.Errorf("message file = %q, want %q", msg.File, "public/styles.css")
	}

	rs.NotifyError("boom")
	msg = readMessage(t, conn)
	if msg.Type != ReloadTypeError {
		t.Errorf("message type = %q, want %q", msg.Type, ReloadTypeError)
	}
	if msg.Error != "boom" {
		t.Errorf("message error = %q, want %q", msg.Error, "boom")
	}

	rs.ClearError()
	if msg := readMessage(t, conn); msg.Type != ReloadTypeClear {
		t.Errorf("message type = %q, want %q", msg.Type, ReloadTypeClear)
	}
}

func TestReloadServerMultipleClients(t *testing.T) {
	rs := NewReloadServer()
	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()
	defer rs.Close()

	conn1 := dialReload(t, srv)
	conn2 := dialReload(t, srv)
	waitForClients(t, rs, 2)

	rs.NotifyReload()
	for _, conn := range []*websocket.Conn{conn1, conn2} {
		if msg := readMessage(t, conn); msg.Type != ReloadTypeFull {
			t.Errorf("message type = %q, want %q", msg.Type, ReloadTypeFull)
		}
	}
}

func TestReloadServerDisconnectPrunesClient(t *testing.T) {
	rs := NewReloadServer()
	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()
	defer rs.Close()

	conn := dialReload(t, srv)
	waitForClients(t, rs, 1)

	conn.Close()
	waitForClients(t, rs, 0)
}
