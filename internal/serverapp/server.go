package serverapp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/dechi99991/cooking-sim/internal/config"
	"github.com/dechi99991/cooking-sim/internal/httpmw"
	"github.com/dechi99991/cooking-sim/internal/server"
	"github.com/dechi99991/cooking-sim/internal/session"
	"github.com/dechi99991/cooking-sim/internal/telemetry"
)

type Options struct {
	Config    *config.Config
	Store     session.Store
	Telemetry telemetry.Repository
	Logger    *log.Logger
}

// NewHandler wires the full HTTP surface: the game API, the admin route
// listing, health probes, and the middleware stack around all of it.
func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Store == nil {
		opts.Store = session.NewMemoryStore(nil)
	}
	if opts.Telemetry == nil {
		opts.Telemetry = telemetry.NewMemoryRepository()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}

	app := &server.App{
		Store:     opts.Store,
		Config:    opts.Config,
		Telemetry: opts.Telemetry,
		BootNow:   time.Now(),
	}
	server.RegisterAPIRoutes(mux, rr, app)
	server.RegisterAdminUI(mux, rr, opts.Config.Server.Addr)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "cooking-sim",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if _, err := opts.Store.IDs(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "session store unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "cooking-sim",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	), nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
