package main

import (
	"context"
	"log"

	"healthchat/internal/client/cli"
	"healthchat/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
