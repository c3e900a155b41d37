package client

import (
	mb "github.com/saeidalz13/battlesquares/models/battlesquares"
)

// Session is what the server hands out on connect. It is passed
// explicitly to every call that acts on behalf of the player.
type Session struct {
	GameId   int        `json:"gameId"`
	PlayerId mb.ActorID `json:"playerId"`
	Secret   string     `json:"secret"`
}

type RespConnect struct {
	PlayerId mb.ActorID `json:"playerId"`
	Secret   string     `json:"secret"`
}

type PlayerInfo struct {
	Id     mb.ActorID `json:"id"`
	Name   string     `json:"name"`
	X      int        `json:"x"`
	Y      int        `json:"y"`
	Alive  bool       `json:"alive"`
	Energy *int       `json:"energy,omitempty"`
}

type GameInfo struct {
	Id       int          `json:"id"`
	State    mb.GameState `json:"state"`
	GridSize int          `json:"gridSize"`
	Players  []PlayerInfo `json:"players"`
}

// Snapshot converts the wire shape to the strategy's view of the
// game. The grid is as wide as the number of players when the
// server does not report a size.
func (g GameInfo) Snapshot() mb.GameSnapshot {
	gridSize := g.GridSize
	if gridSize == 0 {
		gridSize = len(g.Players)
	}

	actors := make([]mb.Actor, 0, len(g.Players))
	for _, p := range g.Players {
		actor := mb.NewActor(p.Id, mb.NewPosition(p.X, p.Y), p.Alive)
		actor.Name = p.Name
		if p.Energy != nil {
			actor = actor.WithEnergy(*p.Energy)
		}
		actors = append(actors, actor)
	}

	return mb.NewGameSnapshot(gridSize, g.State, actors...)
}
