package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saeidalz13/battlesquares/client"
	"github.com/saeidalz13/battlesquares/internal/config"
	"github.com/saeidalz13/battlesquares/internal/watch"
	mb "github.com/saeidalz13/battlesquares/models/battlesquares"
)

func main() {
	var gameId int
	var playerId string
	flag.IntVar(&gameId, "game", 0, "game id to watch")
	flag.StringVar(&playerId, "player", "", "player id whose decisions are shown")
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

	c := client.NewBattleSquaresClient(env.BaseUrl, env.PlayerName, client.WithRequestTimeout(cfg.RequestTimeout))
	p := tea.NewProgram(watch.NewModel(c, gameId, mb.ActorID(playerId), cfg.PollInterval), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}
}
