package connection

import (
	mb "github.com/saeidalz13/battlesquares/models/battlesquares"
)

// Body of the corner and check endpoints. Players carries the
// grid size (the grid is Players x Players).
type ReqCoordinates struct {
	Players int           `json:"players"`
	Player  mb.Position   `json:"player"`
	Enemies []mb.Position `json:"enemies"`
}

type ReqDecide struct {
	SelfId   mb.ActorID      `json:"selfId"`
	Snapshot mb.GameSnapshot `json:"snapshot"`
}
