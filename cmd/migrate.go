package main

import (
	"log"
	"os"

	"github.com/mekbib/bingo-gateway/config"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	if _, err := config.SetupDatabase(dsn); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println("database migration completed")
}
