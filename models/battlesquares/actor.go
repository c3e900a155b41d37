package battlesquares

import (
	"bytes"
	"encoding/json"
)

// The game server is not consistent about player ids; some
// responses carry numbers and some strings. ActorID accepts both.
type ActorID string

func (id *ActorID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ActorID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ActorID(n.String())
	return nil
}

func (id ActorID) String() string {
	return string(id)
}

// Actor is either the controlled player or an opponent.
type Actor struct {
	ID       ActorID  `json:"id"`
	Name     string   `json:"name,omitempty"`
	Position Position `json:"position"`
	Alive    bool     `json:"alive"`
	Energy   *int     `json:"energy,omitempty"`
}

func NewActor(id ActorID, pos Position, alive bool) Actor {
	return Actor{ID: id, Position: pos, Alive: alive}
}

func (a Actor) WithEnergy(energy int) Actor {
	a.Energy = &energy
	return a
}
