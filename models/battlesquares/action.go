package battlesquares

import (
	cerr "github.com/saeidalz13/battlesquares/internal/error"
)

type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionFireUp
	ActionFireDown
	ActionFireLeft
	ActionFireRight
)

// Wire codes, lowercase for move and uppercase for fire.
var actionCodes = map[Action]string{
	ActionMoveUp:    "u",
	ActionMoveDown:  "d",
	ActionMoveLeft:  "l",
	ActionMoveRight: "r",
	ActionFireUp:    "U",
	ActionFireDown:  "D",
	ActionFireLeft:  "L",
	ActionFireRight: "R",
}

var (
	moveActions = [4]Action{ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight}
	fireActions = [4]Action{ActionFireUp, ActionFireDown, ActionFireLeft, ActionFireRight}
)

func MoveAction(d Direction) Action {
	return moveActions[d]
}

func FireAction(d Direction) Action {
	return fireActions[d]
}

// Returns the single letter code the game server expects.
// ActionNone has no code and returns an empty string.
func (a Action) Code() string {
	return actionCodes[a]
}

func (a Action) IsMove() bool {
	return a >= ActionMoveUp && a <= ActionMoveRight
}

func (a Action) IsFire() bool {
	return a >= ActionFireUp && a <= ActionFireRight
}

func (a Action) String() string {
	switch {
	case a.IsMove():
		return "move-" + Direction(a-ActionMoveUp).String()
	case a.IsFire():
		return "fire-" + Direction(a-ActionFireUp).String()
	default:
		return "none"
	}
}

// ParseAction is the inverse of Code. An empty code is ActionNone.
func ParseAction(code string) (Action, error) {
	if code == "" {
		return ActionNone, nil
	}
	for action, c := range actionCodes {
		if c == code {
			return action, nil
		}
	}
	return ActionNone, cerr.ErrActionCode(code)
}
