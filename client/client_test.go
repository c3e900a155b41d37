package client

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	cerr "github.com/saeidalz13/battlesquares/internal/error"
	mb "github.com/saeidalz13/battlesquares/models/battlesquares"
)

func TestNewGameAndConnect(t *testing.T) {
	f := &fakeGameServer{states: []mb.GameState{mb.GameStateWaitingForPlayers}}
	_, c := newFakeGameServer(t, f)
	ctx := context.Background()

	gameId, err := c.NewGame(ctx, 4)
	if err != nil {
		t.Fatal(err)
	}
	if gameId != testGameId {
		t.Fatalf("expected game id: %d\t got: %d", testGameId, gameId)
	}

	session, err := c.Connect(ctx, gameId)
	if err != nil {
		t.Fatal(err)
	}
	if session != testSession() {
		t.Fatalf("expected session: %+v\t got: %+v", testSession(), session)
	}
}

func TestInfo(t *testing.T) {
	f := &fakeGameServer{states: []mb.GameState{mb.GameStateReady}, players: alignedPlayers(), gridSize: 5}
	_, c := newFakeGameServer(t, f)
	ctx := context.Background()

	infos, err := c.Info(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 1 || infos[0].State != mb.GameStateReady {
		t.Fatalf("unexpected info: %+v", infos)
	}

	all, err := c.AllInfo(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected games: %d\t got: %d", 2, len(all))
	}

	info, err := c.GameInfo(ctx, testGameId)
	if err != nil {
		t.Fatal(err)
	}
	snapshot := info.Snapshot()
	if snapshot.GridSize != 5 || len(snapshot.Actors) != 2 {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
	if snapshot.Actors[1].Position != mb.NewPosition(2, 4) {
		t.Fatalf("expected enemy at (2,4)\t got: %+v", snapshot.Actors[1].Position)
	}
}

func TestSnapshotGridSizeFallsBackToPlayers(t *testing.T) {
	info := GameInfo{State: mb.GameStateInfoAndPlanning, Players: []PlayerInfo{{Id: "1"}, {Id: "2"}, {Id: "3"}}}
	if got := info.Snapshot().GridSize; got != 3 {
		t.Fatalf("expected grid size: %d\t got: %d", 3, got)
	}
}

func TestClientOptions(t *testing.T) {
	tests := []struct {
		name            string
		optFuncs        []Option
		expectedTimeout time.Duration
	}{
		{name: "default timeout", expectedTimeout: defaultRequestTimeout},
		{name: "custom timeout", optFuncs: []Option{WithRequestTimeout(time.Second * 3)}, expectedTimeout: time.Second * 3},
		{name: "zero keeps default", optFuncs: []Option{WithRequestTimeout(0)}, expectedTimeout: defaultRequestTimeout},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := NewBattleSquaresClient("http://localhost", "5leiz", test.optFuncs...)
			if c.httpClient.Timeout != test.expectedTimeout {
				t.Fatalf("expected timeout: %s\t got: %s", test.expectedTimeout, c.httpClient.Timeout)
			}
		})
	}
}

func TestRequestTimeoutLeavesSharedClient(t *testing.T) {
	shared := &http.Client{Timeout: time.Minute}

	for _, optFuncs := range [][]Option{
		{WithHTTPClient(shared), WithRequestTimeout(time.Second)},
		{WithRequestTimeout(time.Second), WithHTTPClient(shared)},
	} {
		c := NewBattleSquaresClient("http://localhost", "5leiz", optFuncs...)
		if c.httpClient != shared {
			t.Fatal("expected the given http client to be used")
		}
		if shared.Timeout != time.Minute {
			t.Fatalf("shared client timeout changed to %s", shared.Timeout)
		}
	}

	// a nil client falls back to the default one
	c := NewBattleSquaresClient("http://localhost", "5leiz", WithHTTPClient(nil), WithRequestTimeout(time.Second))
	if c.httpClient == nil || c.httpClient.Timeout != time.Second {
		t.Fatalf("expected default client with timeout: %s", time.Second)
	}
}

func TestSnapshotCopiesEnergy(t *testing.T) {
	energy := 3
	info := GameInfo{GridSize: 3, Players: []PlayerInfo{{Id: "1", Name: "a", Energy: &energy}, {Id: "2"}}}

	snapshot := info.Snapshot()
	energy = 9

	if snapshot.Actors[0].Energy == nil || *snapshot.Actors[0].Energy != 3 {
		t.Fatalf("expected energy: %d\t got: %v", 3, snapshot.Actors[0].Energy)
	}
	if snapshot.Actors[0].Name != "a" {
		t.Fatalf("expected name: %s\t got: %s", "a", snapshot.Actors[0].Name)
	}
	if snapshot.Actors[1].Energy != nil {
		t.Fatal("expected no energy for a player without one")
	}
}

func TestSubmitAction(t *testing.T) {
	f := &fakeGameServer{states: []mb.GameState{mb.GameStateInfoAndPlanning}}
	_, c := newFakeGameServer(t, f)

	resp, err := c.SubmitAction(context.Background(), testSession(), mb.ActionFireRight)
	if err != nil {
		t.Fatal(err)
	}
	if resp != `"ok"` {
		t.Fatalf("unexpected response: %s", resp)
	}

	actions := f.submitted()
	if len(actions) != 1 {
		t.Fatalf("expected actions: %d\t got: %d", 1, len(actions))
	}
	expected := submittedAction{gameId: "20", playerId: testPlayerId, code: "R", secret: testSecret}
	if actions[0] != expected {
		t.Fatalf("expected action: %+v\t got: %+v", expected, actions[0])
	}

	if _, err := c.SubmitAction(context.Background(), testSession(), mb.ActionNone); !errors.Is(err, cerr.ErrNoAction) {
		t.Fatalf("expected err: %v\t got: %v", cerr.ErrNoAction, err)
	}
}

func TestUnexpectedStatus(t *testing.T) {
	f := &fakeGameServer{states: []mb.GameState{mb.GameStateReady}, failInfo: true}
	_, c := newFakeGameServer(t, f)

	if _, err := c.GameInfo(context.Background(), testGameId); !errors.Is(err, cerr.ErrUnexpectedStatus) {
		t.Fatalf("expected err: %v\t got: %v", cerr.ErrUnexpectedStatus, err)
	}
}

func TestWaitForState(t *testing.T) {
	tests := []struct {
		name          string
		states        []mb.GameState
		waitTimeout   time.Duration
		expectedErr   error
		expectedState mb.GameState
	}{
		{
			name:          "reaches planning",
			states:        []mb.GameState{mb.GameStateReady, mb.GameStateEnergise, mb.GameStateInfoAndPlanning},
			expectedState: mb.GameStateInfoAndPlanning,
		},
		{
			name:          "game ends first",
			states:        []mb.GameState{mb.GameStateExecution, mb.GameStateWin},
			expectedErr:   cerr.ErrGameOver,
			expectedState: mb.GameStateWin,
		},
		{
			name:        "times out",
			states:      []mb.GameState{mb.GameStateEnergise},
			waitTimeout: time.Millisecond * 30,
			expectedErr: cerr.ErrWaitTimeout,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := &fakeGameServer{states: test.states}
			_, c := newFakeGameServer(t, f)
			WithWaitTimeout(test.waitTimeout)(c)

			info, err := c.WaitForState(context.Background(), testGameId, mb.GameStateInfoAndPlanning)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected err: %v\t got: %v", test.expectedErr, err)
				}
			} else if err != nil {
				t.Fatal(err)
			}

			if test.expectedState != "" && info.State != test.expectedState {
				t.Fatalf("expected state: %s\t got: %s", test.expectedState, info.State)
			}
		})
	}
}

func TestWaitForStateCanceled(t *testing.T) {
	f := &fakeGameServer{states: []mb.GameState{mb.GameStateEnergise}}
	_, c := newFakeGameServer(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(time.Millisecond * 20)
		cancel()
	}()

	if _, err := c.WaitForState(ctx, testGameId, mb.GameStateInfoAndPlanning); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected err: %v\t got: %v", context.Canceled, err)
	}
}

func TestPerformActionWhenAllowed(t *testing.T) {
	f := &fakeGameServer{states: []mb.GameState{mb.GameStateStatus, mb.GameStateInfoAndPlanning}}
	_, c := newFakeGameServer(t, f)

	if _, err := c.PerformActionWhenAllowed(context.Background(), testSession(), mb.ActionMoveUp); err != nil {
		t.Fatal(err)
	}

	actions := f.submitted()
	if len(actions) != 1 || actions[0].code != "u" {
		t.Fatalf("expected one move up\t got: %+v", actions)
	}
}
