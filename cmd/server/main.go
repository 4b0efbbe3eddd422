package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/dechi99991/cooking-sim/internal/config"
	"github.com/dechi99991/cooking-sim/internal/serverapp"
	"github.com/dechi99991/cooking-sim/internal/session"
	"github.com/dechi99991/cooking-sim/internal/telemetry"
)

const sessionMaxIdle = 2 * time.Hour

func main() {
	path := os.Getenv("COOKSIM_CONFIG")
	if path == "" {
		path = "cooking_sim.yml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("load config: %v", err)
		}
		cfg = &config.Config{}
		cfg.ApplyDefaults()
	}

	// Environment overrides win over the file-selected preset.
	bal, err := config.FromEnv(cfg.Balance)
	if err != nil {
		log.Fatalf("read env config: %v", err)
	}
	cfg.Balance = bal

	store := session.NewMemoryStore(session.RealClock{})
	go func() {
		for range time.Tick(15 * time.Minute) {
			if n := store.EvictIdle(sessionMaxIdle); n > 0 {
				log.Printf("evicted %d idle sessions", n)
			}
		}
	}()

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config:    cfg,
		Store:     store,
		Telemetry: telemetry.NewMemoryRepository(),
		Logger:    log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	log.Printf("listening on http://localhost%s", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, handler))
}
