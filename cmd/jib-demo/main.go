package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	"skaffolddemo/internal/app"
)

// @title Skaffold Jib Demo
// @version 1.0
// @BasePath /
func main() {
	if err := app.Run("jib-demo"); err != nil {
		log.Fatalf("jib-demo: %v", err)
	}
}
