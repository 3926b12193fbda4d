package main

import (
	"github.com/joho/godotenv"

	"mod-updater/internal/cli"
)

func main() {
	// A missing .env file is fine; real environment variables are never
	// overridden.
	_ = godotenv.Load()
	cli.Execute()
}
