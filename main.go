package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/MonCaptain/animethemes-web/config"
	"github.com/MonCaptain/animethemes-web/database"
	"github.com/MonCaptain/animethemes-web/graph"
	"github.com/MonCaptain/animethemes-web/handlers"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	if cfg.DBDriver == config.DriverSQLite && cfg.AutoMigrate {
		log.Printf("Migrating SQLite schema in %s", cfg.DBPath)
		if err := database.MigrateSQLite(cfg.DBPath); err != nil {
			log.Fatalf("FATAL: Failed to migrate database: %v", err)
		}
	}

	db, err := database.InitDB(cfg.DBDriver, cfg.DSN(), cfg.MaxOpenConns)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	defer db.Close()

	resolver := graph.NewResolver(database.NewStore(db), cfg.ImageBaseURL)
	schema, err := graph.NewSchema(resolver, cfg.MaxParallelism)
	if err != nil {
		log.Fatalf("FATAL: Failed to build GraphQL schema: %v", err)
	}

	log.Printf("Using %s database (max %d connections)", cfg.DBDriver, cfg.MaxOpenConns)
	log.Printf("Image base URL: %s", cfg.ImageBaseURL)
	log.Printf("GraphQL max parallelism: %d", cfg.MaxParallelism)

	r := handlers.NewRouter(
		cfg.AllowedOrigins,
		handlers.NewGraphQLHandler(schema),
		&handlers.HealthHandler{DB: db},
	)

	serverAddr := ":" + cfg.Port
	fmt.Printf("Server starting on http://localhost:%s/graphql\n", cfg.Port)
	log.Printf("Server listening on %s", serverAddr)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
