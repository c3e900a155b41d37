package client

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	cerr "github.com/saeidalz13/battlesquares/internal/error"
	mb "github.com/saeidalz13/battlesquares/models/battlesquares"
)

type Outcome struct {
	FinalState mb.GameState
	Cycles     int
	Submitted  int
	Skipped    int
}

// Bot drives one player through a game: wait for planning, decide,
// submit, wait for the phase to end, repeat.
type Bot struct {
	client    *BattleSquaresClient
	maxCycles int
	decide    func(mb.GameSnapshot, mb.ActorID) (mb.Action, error)
}

func NewBot(client *BattleSquaresClient, maxCycles int) *Bot {
	return &Bot{
		client:    client,
		maxCycles: maxCycles,
		decide:    mb.Decide,
	}
}

// Run returns when the game reaches a terminal state, when ctx is
// done or after maxCycles decision cycles if maxCycles > 0.
func (b *Bot) Run(ctx context.Context, session Session) (Outcome, error) {
	var outcome Outcome

	for {
		info, err := b.client.WaitForState(ctx, session.GameId, mb.GameStateInfoAndPlanning)
		if err != nil {
			if errors.Is(err, cerr.ErrGameOver) {
				outcome.FinalState = info.State
				log.Printf("game over\tgame: %d\tstate: %s\tcycles: %d", session.GameId, info.State, outcome.Cycles)
				return outcome, nil
			}
			return outcome, err
		}

		outcome.Cycles++
		if err := b.runCycle(ctx, session, info, &outcome); err != nil {
			return outcome, err
		}

		if b.maxCycles > 0 && outcome.Cycles >= b.maxCycles {
			outcome.FinalState = info.State
			log.Printf("max cycles reached\tgame: %d\tcycles: %d", session.GameId, outcome.Cycles)
			return outcome, nil
		}

		// Submitting twice in one planning phase is pointless, so wait it out.
		next, err := b.client.WaitWhileState(ctx, session.GameId, mb.GameStateInfoAndPlanning)
		if err != nil {
			return outcome, err
		}
		if next.State.IsTerminal() {
			outcome.FinalState = next.State
			log.Printf("game over\tgame: %d\tstate: %s\tcycles: %d", session.GameId, next.State, outcome.Cycles)
			return outcome, nil
		}
	}
}

// A cycle that cannot produce a decision is skipped. Only transport
// failures end the run.
func (b *Bot) runCycle(ctx context.Context, session Session, info GameInfo, outcome *Outcome) error {
	cycleId := uuid.NewString()

	action, err := b.decide(info.Snapshot(), session.PlayerId)
	if err != nil {
		if errors.Is(err, cerr.ErrActorNotFound) || errors.Is(err, cerr.ErrInvalidSnapshot) {
			log.Printf("%s\tcycle: %s\terr: %v", cerr.ConstErrDecisionFailed, cycleId, err)
			outcome.Skipped++
			return nil
		}
		return err
	}

	if action == mb.ActionNone {
		log.Printf("no safe action\tcycle: %s", cycleId)
		outcome.Skipped++
		return nil
	}

	resp, err := b.client.SubmitAction(ctx, session, action)
	if err != nil {
		return err
	}
	outcome.Submitted++
	log.Printf("action submitted\tcycle: %s\taction: %s (%s)\tresp: %s", cycleId, action, action.Code(), resp)
	return nil
}
