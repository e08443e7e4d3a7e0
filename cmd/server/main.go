package main

import (
	"fmt"

	"firmlynk/internal/config"
	"firmlynk/internal/handlers"
	"firmlynk/internal/lifecycle"
	"firmlynk/internal/logger"
	"firmlynk/internal/narrative"
	"firmlynk/internal/query"
	"firmlynk/internal/server"
	"firmlynk/internal/store"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := store.Open(cfg.DBDSN, log)
	if err != nil {
		log.Fatal("failed to open store", "error", err)
	}

	s := store.New(db, log)
	if err := s.Migrate(); err != nil {
		log.Fatal("failed to migrate", "error", err)
	}
	if cfg.DBDSN == "" && cfg.Seed {
		if err := s.Seed(); err != nil {
			log.Fatal("failed to seed", "error", err)
		}
	}

	mgr := lifecycle.New(s, log)
	fac := query.New(s, log)
	h := handlers.New(s, mgr, fac, narrative.NewTemplateDrafter(), log)

	r := server.NewRouter(cfg, s, h)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Info("starting server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("server error", "error", err)
	}
}
