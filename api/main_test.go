package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

var dialer = websocket.Dialer{
	HandshakeTimeout: 10 * time.Second,
}

type Test[T, K any] struct {
	name string

	expectedStatus int
	expectedCode   uint8

	reqPayload          T
	expectedRespPayload K
}

func newTestServer(t *testing.T, optFuncs ...Option) (*Server, *httptest.Server) {
	t.Helper()
	server := NewServer(optFuncs...)
	ts := httptest.NewServer(server.Routes())
	t.Cleanup(ts.Close)
	return server, ts
}

func postJSON(t *testing.T, url string, v interface{}) *http.Response {
	t.Helper()

	var body []byte
	switch p := v.(type) {
	case string:
		body = []byte(p)
	default:
		var err error
		if body, err = json.Marshal(v); err != nil {
			t.Fatal(err)
		}
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func dialWs(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsUrl := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/game/ws"
	conn, _, err := dialer.Dial(wsUrl, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}
