package main

import (
	"context"
	"log"

	"github.com/AlistairHeus/feed-assignment/internal/cli"
	"github.com/AlistairHeus/feed-assignment/internal/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
