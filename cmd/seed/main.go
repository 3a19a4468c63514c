package main

import (
	"context"
	"log"

	"hexclan/internal/app/bootstrap"
)

// Seed process entrypoint: provisions the demo user and demo tenant domain,
// then exits. Safe to re-run.
func main() {
	log.Println("hexclan seed starting")
	app, err := bootstrap.BuildSeed()
	if err != nil {
		log.Fatalf("bootstrap seed failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("seed shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("hexclan seed stopped with error: %v", err)
	}
	log.Println("hexclan seed completed")
}
