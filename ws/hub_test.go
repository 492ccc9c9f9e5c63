package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func wsTestServer(register func(conn *websocket.Conn), unregister func(conn *websocket.Conn)) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		register(conn)
		defer unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}))
}

func waitForConnections(t *testing.T, key string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for H.GetStats()[key] == 0 {
		if time.Now().After(deadline) {
			t.Fatal("listener never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSendStatusUpdateReachesDocumentListener(t *testing.T) {
	docID := "11111111-2222-3333-4444-555555555555"
	srv := wsTestServer(
		func(conn *websocket.Conn) { H.Register(docID, conn) },
		func(conn *websocket.Conn) { H.Unregister(docID, conn) },
	)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	assert.NoError(t, err)
	defer conn.Close()

	waitForConnections(t, "document_connections")
	SendStatusUpdate(docID, "processing", 0.5, "")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	assert.NoError(t, err)

	var update DocumentStatusUpdate
	assert.NoError(t, json.Unmarshal(msg, &update))
	assert.Equal(t, docID, update.DocumentID)
	assert.Equal(t, "processing", update.Status)
	assert.Equal(t, 0.5, update.Progress)
}

func TestBroadcastDocumentListChangedReachesGlobalListener(t *testing.T) {
	srv := wsTestServer(
		func(conn *websocket.Conn) { H.RegisterGlobal(conn) },
		func(conn *websocket.Conn) { H.UnregisterGlobal(conn) },
	)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	assert.NoError(t, err)
	defer conn.Close()

	waitForConnections(t, "global_connections")
	BroadcastDocumentListChanged()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	assert.NoError(t, err)

	var event map[string]string
	assert.NoError(t, json.Unmarshal(msg, &event))
	assert.Equal(t, "document_list_changed", event["type"])
}
