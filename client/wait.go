package client

import (
	"context"
	"errors"
	"log"
	"time"

	cerr "github.com/saeidalz13/battlesquares/internal/error"
	mb "github.com/saeidalz13/battlesquares/models/battlesquares"
)

// WaitForState polls the game every poll interval until it reports
// want. A terminal state other than want ends the wait with
// ErrGameOver and the last info. The wait is bounded by ctx and by
// the client's wait timeout when one is set.
func (c *BattleSquaresClient) WaitForState(ctx context.Context, gameId int, want mb.GameState) (GameInfo, error) {
	info, err := c.waitUntil(ctx, gameId, string(want), func(s mb.GameState) bool {
		return s == want || s.IsTerminal()
	})
	if err != nil {
		return info, err
	}
	if info.State != want {
		return info, cerr.ErrGameFinished(gameId, string(info.State))
	}
	return info, nil
}

// WaitWhileState polls until the game leaves state. Terminal states
// are returned like any other state.
func (c *BattleSquaresClient) WaitWhileState(ctx context.Context, gameId int, state mb.GameState) (GameInfo, error) {
	return c.waitUntil(ctx, gameId, "not "+string(state), func(s mb.GameState) bool {
		return s != state
	})
}

func (c *BattleSquaresClient) waitUntil(ctx context.Context, gameId int, want string, done func(mb.GameState) bool) (GameInfo, error) {
	if c.waitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.waitTimeout)
		defer cancel()
	}

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	var last mb.GameState
	for {
		info, err := c.GameInfo(ctx, gameId)
		if err != nil {
			if ctx.Err() != nil {
				return GameInfo{}, waitErr(ctx, gameId, want, last)
			}
			return GameInfo{}, err
		}

		if done(info.State) {
			return info, nil
		}

		if info.State != last {
			log.Printf("game state is %q. waiting for %q...", info.State, want)
			last = info.State
		}

		select {
		case <-ctx.Done():
			return info, waitErr(ctx, gameId, want, last)
		case <-ticker.C:
		}
	}
}

func waitErr(ctx context.Context, gameId int, want string, last mb.GameState) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return cerr.ErrWaitForState(gameId, want, string(last))
	}
	return ctx.Err()
}
