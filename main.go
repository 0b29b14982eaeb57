package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sidney-Berto/colibri-clinic/internal/api"
	"github.com/Sidney-Berto/colibri-clinic/internal/cache"
	"github.com/Sidney-Berto/colibri-clinic/internal/config"
	"github.com/Sidney-Berto/colibri-clinic/internal/middleware"
	"github.com/Sidney-Berto/colibri-clinic/internal/migrate"
	"github.com/Sidney-Berto/colibri-clinic/internal/seed"
	"github.com/Sidney-Berto/colibri-clinic/internal/store"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.Load()

	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("config postgres: %v", err)
		}
		if cfg.DBMaxConns > 0 {
			poolConfig.MaxConns = int32(cfg.DBMaxConns)
		}
		if cfg.DBMinConns > 0 {
			poolConfig.MinConns = int32(cfg.DBMinConns)
		}
		if cfg.DBMaxConnLifetime > 0 {
			poolConfig.MaxConnLifetime = cfg.DBMaxConnLifetime
		}
		pool, err = pgxpool.NewWithConfig(context.Background(), poolConfig)
		if err != nil {
			log.Fatalf("conexão postgres: %v", err)
		}
		defer pool.Close()
		if err := pool.Ping(context.Background()); err != nil {
			log.Fatalf("ping postgres: %v", err)
		}
		db, err := store.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("conexão gorm: %v", err)
		}
		if err := migrate.Run(context.Background(), db, "migrations"); err != nil {
			log.Fatalf("migrations: %v", err)
		}
		if err := seed.Run(context.Background(), db); err != nil {
			log.Printf("seed (ignorado se já aplicado): %v", err)
		}
	}

	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	r.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if pool == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"no database"}`))
			return
		}
		if err := pool.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"db unhealthy"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	}).Methods(http.MethodGet)

	h := &api.Handler{Pool: pool, Cfg: cfg, Cache: cache.New(time.Duration(cfg.CacheTTLSec) * time.Second)}

	apiRouter := r.PathPrefix("/api").Subrouter()
	// OPTIONS de qualquer rota é respondido pelo middleware de CORS com 204.
	apiRouter.HandleFunc("/medicos", h.ListMedicos).Methods(http.MethodGet)
	apiRouter.HandleFunc("/clinicas", h.ListClinicas).Methods(http.MethodGet)
	apiRouter.HandleFunc("/agenda", h.ListAgenda).Methods(http.MethodGet)
	apiRouter.HandleFunc("/agenda", h.CreateAgendamento).Methods(http.MethodPost)
	apiRouter.HandleFunc("/agenda/{id}", h.DeleteAgendamento).Methods(http.MethodDelete)
	apiRouter.HandleFunc("/prontuario/{idCliente}", h.GetProntuario).Methods(http.MethodGet)
	apiRouter.HandleFunc("/prontuario", h.PutProntuario).Methods(http.MethodPut)

	chain := middleware.Recover(middleware.RequestID(middleware.Timeout(cfg.RequestTimeoutSec)(middleware.CORS(cfg.CORSOrigins)(middleware.Gzip(r)))))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      chain,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("colibri-clinic backend listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("backend stopped")
}
