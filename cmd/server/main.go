package main

import (
	"log"
	"net/http"

	"med_transport/internal/config"
	"med_transport/internal/logger"
	"med_transport/internal/maps"
	"med_transport/internal/middleware"
	"med_transport/internal/routes"
)

func main() {
	// Structured logging to file
	logger.Setup()

	cfg := config.Load()
	middleware.SetSecret(cfg.JWTSecret)

	// Open the database; the handle is owned here and handed down.
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer func() {
		if err := config.Close(db); err != nil {
			log.Printf("database close: %v", err)
		}
	}()

	directions := maps.NewClient(cfg.MapsBaseURL, cfg.MapsAPIKey)

	r := routes.SetupRouter(db, directions, cfg)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at :%s", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
