package main

import (
	"log"

	"reviewmap_backend/internal/app"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
