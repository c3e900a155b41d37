package main

import (
	"context"
	"log"
	"net/http"

	"github.com/saeidalz13/battlesquares/api"
	"github.com/saeidalz13/battlesquares/db"
	"github.com/saeidalz13/battlesquares/db/sqlc"
	"github.com/saeidalz13/battlesquares/internal/config"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		panic(err)
	}

	var querier sqlc.Querier
	if env.DatabaseUrl != "" {
		querier = sqlc.New(db.MustConnectToDb(env.DatabaseUrl))
	} else {
		log.Println("DATABASE_URL not set, analytics disabled")
	}

	server := api.NewServer(api.WithPort(env.Port), api.WithStage(env.Stage), api.WithQuerier(querier))
	go server.SessionManager.CleanupPeriodically(context.Background())

	log.Printf("Listening to port %d\n", env.Port)
	log.Fatalln(http.ListenAndServe(server.Addr(), server.Routes()))
}
