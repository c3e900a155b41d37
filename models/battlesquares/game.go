package battlesquares

import (
	cerr "github.com/saeidalz13/battlesquares/internal/error"
)

// GameState is the phase label reported by the game server.
type GameState string

const (
	// game has just been created
	GameStateWaitingForPlayers GameState = "WaitingForPlayers"
	// all players are connected
	GameStateReady GameState = "Ready"
	// energy is being adjusted
	GameStateEnergise GameState = "Energise"
	// players get status and submit actions
	GameStateInfoAndPlanning GameState = "InfoAndPlanning"
	GameStateExecution       GameState = "Execution"
	// are players alive
	GameStateStatus GameState = "Status"
	GameStateDraw   GameState = "Draw"
	GameStateWin    GameState = "Win"
)

func (s GameState) IsTerminal() bool {
	return s == GameStateDraw || s == GameStateWin
}

// Only the planning phase accepts actions.
func (s GameState) AllowsAction() bool {
	return s == GameStateInfoAndPlanning
}

// GameSnapshot is a point-in-time view of the grid used for exactly
// one decision. Nothing in this package mutates a snapshot.
type GameSnapshot struct {
	GridSize int       `json:"grid_size"`
	State    GameState `json:"state"`
	Actors   []Actor   `json:"actors"`
}

func NewGameSnapshot(gridSize int, state GameState, actors ...Actor) GameSnapshot {
	return GameSnapshot{GridSize: gridSize, State: state, Actors: actors}
}

func (g GameSnapshot) Validate() error {
	if g.GridSize < 1 || g.GridSize > MaxGridSize {
		return cerr.ErrSnapshotGridSize(g.GridSize, MaxGridSize)
	}

	seen := make(map[ActorID]struct{}, len(g.Actors))
	for _, actor := range g.Actors {
		if !actor.Position.InBounds(g.GridSize) {
			return cerr.ErrSnapshotOutOfGridBound(actor.ID.String(), actor.Position.X, actor.Position.Y)
		}
		if _, prs := seen[actor.ID]; prs {
			return cerr.ErrSnapshotDuplicateActor(actor.ID.String())
		}
		seen[actor.ID] = struct{}{}
	}
	return nil
}

func (g GameSnapshot) FindActor(id ActorID) (Actor, error) {
	for _, actor := range g.Actors {
		if actor.ID == id {
			return actor, nil
		}
	}
	return Actor{}, cerr.ErrActorNotExists(id.String())
}

// Returns the actor standing on pos, ignoring the actor with
// id exclude.
func (g GameSnapshot) ActorAt(pos Position, exclude ActorID) (Actor, bool) {
	for _, actor := range g.Actors {
		if actor.ID != exclude && actor.Position == pos {
			return actor, true
		}
	}
	return Actor{}, false
}

// Returns every actor except the one with id self.
func (g GameSnapshot) Opponents(self ActorID) []Actor {
	opponents := make([]Actor, 0, len(g.Actors))
	for _, actor := range g.Actors {
		if actor.ID != self {
			opponents = append(opponents, actor)
		}
	}
	return opponents
}
