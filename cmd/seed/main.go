// Aplica as migrações e o seed de desenvolvimento e encerra. Útil para subir
// um banco local sem iniciar o servidor HTTP.
package main

import (
	"context"
	"log"

	"github.com/Sidney-Berto/colibri-clinic/internal/config"
	"github.com/Sidney-Berto/colibri-clinic/internal/migrate"
	"github.com/Sidney-Berto/colibri-clinic/internal/seed"
	"github.com/Sidney-Berto/colibri-clinic/internal/store"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	ctx := context.Background()
	db, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("db.DB: %v", err)
	}
	defer func() { _ = sqlDB.Close() }()
	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("ping: %v", err)
	}
	if err := migrate.Run(ctx, db, "migrations"); err != nil {
		log.Fatalf("migrations: %v", err)
	}
	if err := seed.Run(ctx, db); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Println("[seed] done")
}
