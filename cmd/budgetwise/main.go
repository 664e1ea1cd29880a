package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/budgetwise/budgetwise/internal/commands"
)

func main() {
	// A missing .env file is fine; settings then come from the environment.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
