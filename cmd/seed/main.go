package main

import (
	"log"
	"os"

	"go-wemall-api/internal/app"
	"go-wemall-api/internal/shared/database/seed"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	db, err := app.ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := seed.SeedUsers(db); err != nil {
		log.Fatal(err)
	}
	if err := seed.SeedCatalog(db); err != nil {
		log.Fatal(err)
	}

	log.Println("seed completed")
}
