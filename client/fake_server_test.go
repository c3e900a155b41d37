package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	mb "github.com/saeidalz13/battlesquares/models/battlesquares"
)

const (
	testGameId   = 20
	testPlayerId = "7"
	testSecret   = "s3cr3t"
)

type submittedAction struct {
	gameId   string
	playerId string
	code     string
	secret   string
}

// fakeGameServer replays a fixed sequence of game states, one per
// info request, and records every submitted action.
type fakeGameServer struct {
	mu        sync.Mutex
	states    []mb.GameState
	infoCalls int
	players   []PlayerInfo
	gridSize  int
	actions   []submittedAction
	failInfo  bool
}

func newFakeGameServer(t *testing.T, f *fakeGameServer) (*httptest.Server, *BattleSquaresClient) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /new/{players}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strconv.Itoa(testGameId)))
	})
	mux.HandleFunc("GET /connect/{gameId}/{name}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"playerId": 7, "secret": "` + testSecret + `"}`))
	})
	mux.HandleFunc("GET /info", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]GameInfo{f.info()})
	})
	mux.HandleFunc("GET /info/all", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]GameInfo{f.info(), {Id: 3, State: mb.GameStateWin}})
	})
	mux.HandleFunc("GET /info/{gameId}", func(w http.ResponseWriter, r *http.Request) {
		if f.failInfo {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(f.nextInfo())
	})
	mux.HandleFunc("GET /action/{gameId}/{playerId}/{code}/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.actions = append(f.actions, submittedAction{
			gameId:   r.PathValue("gameId"),
			playerId: r.PathValue("playerId"),
			code:     r.PathValue("code"),
			secret:   r.Header.Get(HeaderSecret),
		})
		f.mu.Unlock()
		_, _ = w.Write([]byte(`"ok"`))
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	c := NewBattleSquaresClient(ts.URL+"/", "5leiz", WithPollInterval(time.Millisecond))
	return ts, c
}

func (f *fakeGameServer) info() GameInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.infoLocked()
}

func (f *fakeGameServer) nextInfo() GameInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	info := f.infoLocked()
	f.infoCalls++
	return info
}

func (f *fakeGameServer) infoLocked() GameInfo {
	idx := f.infoCalls
	if idx >= len(f.states) {
		idx = len(f.states) - 1
	}
	return GameInfo{Id: testGameId, State: f.states[idx], GridSize: f.gridSize, Players: f.players}
}

func (f *fakeGameServer) submitted() []submittedAction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]submittedAction(nil), f.actions...)
}

func alignedPlayers() []PlayerInfo {
	return []PlayerInfo{
		{Id: testPlayerId, Name: "5leiz", X: 2, Y: 2, Alive: true},
		{Id: "8", Name: "enemy", X: 2, Y: 4, Alive: true},
	}
}

func testSession() Session {
	return Session{GameId: testGameId, PlayerId: testPlayerId, Secret: testSecret}
}
