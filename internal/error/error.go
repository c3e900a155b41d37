package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrDecisionFailed = "decision for this cycle failed"
)

var (
	ErrActorNotFound    = errors.New("actor not found in snapshot")
	ErrInvalidSnapshot  = errors.New("invalid game snapshot")
	ErrNoAction         = errors.New("no action to submit")
	ErrInvalidAction    = errors.New("invalid action code")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrGameOver         = errors.New("game is over")
	ErrWaitTimeout      = errors.New("timed out waiting for game state")
	ErrInvalidGridSize  = errors.New("invalid grid size")
	ErrAnalyticsOff     = errors.New("analytics is disabled")
)

func ErrActorNotExists(actorId string) error {
	return fmt.Errorf("%w, id: %s", ErrActorNotFound, actorId)
}

func ErrSnapshotGridSize(gridSize, maxGridSize int) error {
	return fmt.Errorf("%w: %w: must be between 1 and %d\tgot: %d", ErrInvalidSnapshot, ErrInvalidGridSize, maxGridSize, gridSize)
}

func ErrSnapshotOutOfGridBound(actorId string, x, y int) error {
	return fmt.Errorf("%w: actor position is out of grid bound\tid: %s\tx: %d\ty: %d", ErrInvalidSnapshot, actorId, x, y)
}

func ErrSnapshotDuplicateActor(actorId string) error {
	return fmt.Errorf("%w: duplicate actor id: %s", ErrInvalidSnapshot, actorId)
}

func ErrActionCode(code string) error {
	return fmt.Errorf("%w: %q", ErrInvalidAction, code)
}

func ErrGridSize(gridSize, maxGridSize int) error {
	return fmt.Errorf("%w: must be between 1 and %d\tgot: %d", ErrInvalidGridSize, maxGridSize, gridSize)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("incoming x or y is out of game grid bound\tx: %d\ty: %d", x, y)
}

func ErrResponseStatus(method, url string, status int, body string) error {
	return fmt.Errorf("%w: %s %s\tstatus: %d\tbody: %s", ErrUnexpectedStatus, method, url, status, body)
}

func ErrGameFinished(gameId int, state string) error {
	return fmt.Errorf("%w, game: %d\tstate: %s", ErrGameOver, gameId, state)
}

func ErrWaitForState(gameId int, want, last string) error {
	return fmt.Errorf("%w, game: %d\twant: %s\tlast: %s", ErrWaitTimeout, gameId, want, last)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session is nil, id: %s", sessionId)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("invalid type of development stage: %s", stage)
}
