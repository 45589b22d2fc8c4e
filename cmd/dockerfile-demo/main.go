package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	"skaffolddemo/internal/app"
)

// @title Skaffold Dockerfile Demo
// @version 1.0
// @BasePath /
func main() {
	if err := app.Run("dockerfile-demo"); err != nil {
		log.Fatalf("dockerfile-demo: %v", err)
	}
}
