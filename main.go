package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"blendviz/app"
	"blendviz/internal/config"
	"blendviz/ui"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dataset, err := app.LoadDataset(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	server, err := ui.NewServer(dataset, cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	log.Fatal(server.Start())
}
