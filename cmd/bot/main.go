package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/saeidalz13/battlesquares/client"
	"github.com/saeidalz13/battlesquares/internal/config"
)

func main() {
	var gameId, newGamePlayers int
	flag.IntVar(&gameId, "game", 0, "game id to join (overrides the bot config)")
	flag.IntVar(&newGamePlayers, "new", 0, "create a new game for this many players before joining")
	flag.Parse()

	env, err := config.LoadEnv()
	if err != nil {
		panic(err)
	}
	cfg, err := config.LoadBotConfig(env.BotConfigPath)
	if err != nil {
		panic(err)
	}
	if gameId == 0 {
		gameId = cfg.GameId
	}
	if newGamePlayers == 0 {
		newGamePlayers = cfg.NewGamePlayers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.NewBattleSquaresClient(env.BaseUrl, env.PlayerName,
		client.WithRequestTimeout(cfg.RequestTimeout),
		client.WithPollInterval(cfg.PollInterval),
		client.WithWaitTimeout(cfg.WaitTimeout),
	)

	if newGamePlayers > 0 {
		gameId, err = c.NewGame(ctx, newGamePlayers)
		if err != nil {
			log.Fatalln(err)
		}
		log.Println("new game created:", gameId)
	}
	if gameId == 0 {
		log.Fatalln("no game id: pass -game, -new or set game_id in the bot config")
	}

	session, err := c.Connect(ctx, gameId)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("connected to game: %d\tplayer: %s", session.GameId, session.PlayerId)

	outcome, err := client.NewBot(c, cfg.MaxCycles).Run(ctx, session)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("bot finished\tstate: %s\tcycles: %d\tsubmitted: %d\tskipped: %d",
		outcome.FinalState, outcome.Cycles, outcome.Submitted, outcome.Skipped)
}
