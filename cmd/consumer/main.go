package main

import (
	"log"

	"go-wemall-api/internal/app"
	"go-wemall-api/internal/bootstrap"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	logger, err := bootstrap.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := app.RunConsumer(logger); err != nil {
		log.Fatal(err)
	}
}
