package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dechi99991/cooking-sim/internal/boss"
	"github.com/dechi99991/cooking-sim/internal/character"
	"github.com/dechi99991/cooking-sim/internal/config"
	"github.com/dechi99991/cooking-sim/internal/cooking"
	"github.com/dechi99991/cooking-sim/internal/event"
	"github.com/dechi99991/cooking-sim/internal/game"
	"github.com/dechi99991/cooking-sim/internal/nutrition"
	"github.com/dechi99991/cooking-sim/internal/provision"
	"github.com/dechi99991/cooking-sim/internal/session"
	"github.com/dechi99991/cooking-sim/internal/telemetry"
)

// App holds the in-memory state for the server.
// This makes it obvious what the handlers depend on.
type App struct {
	Store     session.Store
	Config    *config.Config
	Telemetry telemetry.Repository

	BootNow time.Time
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// apiError translates domain errors into HTTP status codes. Rule violations
// (wrong phase, already slept) are conflicts; bad input and affordability
// failures are the caller's problem.
func apiError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		http.Error(w, err.Error(), 404)
	case errors.Is(err, game.ErrWrongPhase),
		errors.Is(err, game.ErrSleepRequired),
		errors.Is(err, game.ErrAlreadySlept),
		errors.Is(err, game.ErrDayNotFinished),
		errors.Is(err, game.ErrAlreadyOwned),
		errors.Is(err, game.ErrGameOver):
		http.Error(w, err.Error(), 409)
	case errors.Is(err, game.ErrNotEnoughEnergy),
		errors.Is(err, game.ErrNotEnoughMoney),
		errors.Is(err, game.ErrMissingIngredients),
		errors.Is(err, game.ErrNotInShop),
		errors.Is(err, game.ErrUnknownItem),
		errors.Is(err, game.ErrBagFull),
		errors.Is(err, game.ErrNoCafeteria):
		http.Error(w, err.Error(), 400)
	default:
		http.Error(w, err.Error(), 500)
	}
}

// SessionState is the full render of one session, returned by every
// state-changing endpoint so clients never need a follow-up read.
type SessionState struct {
	ID             string `json:"id"`
	Day            int    `json:"day"`
	Week           int    `json:"week"`
	Weekday        int    `json:"weekday"`
	Holiday        bool   `json:"holiday"`
	Phase          string `json:"phase"`
	Weather        string `json:"weather"`
	Cleared        bool   `json:"cleared"`
	GameOver       bool   `json:"game_over"`
	GameOverReason string `json:"game_over_reason,omitempty"`

	Money      int  `json:"money"`
	CardDebt   int  `json:"card_debt"`
	Energy     int  `json:"energy"`
	MaxEnergy  int  `json:"max_energy"`
	Stamina    int  `json:"stamina"`
	MaxStamina int  `json:"max_stamina"`
	Fullness   int  `json:"fullness"`
	GritUsed   bool `json:"grit_used"`
	ShopOpen   bool `json:"shop_open"`

	Character      character.Character `json:"character"`
	DailyNutrition nutrition.Nutrition `json:"daily_nutrition"`
	Streaks        event.Streaks       `json:"streaks"`
	CaffeineToday  int                 `json:"caffeine_today"`
	Temperament    string              `json:"temperament,omitempty"`

	CurrentBoss *boss.Boss        `json:"current_boss,omitempty"`
	BossHistory []boss.Evaluation `json:"boss_history,omitempty"`

	Stock             map[string][]int            `json:"stock"`
	Provisions        map[string]int              `json:"provisions"`
	PreparedDishes    []provision.PreparedDish    `json:"prepared_dishes"`
	PendingDeliveries []provision.PendingDelivery `json:"pending_deliveries"`
	Relics            []string                    `json:"relics"`
	AvailableRecipes  []cooking.NamedRecipe       `json:"available_recipes"`
}

func stateOf(id string, s *game.Session) SessionState {
	over, reason := s.IsGameOver()
	st := SessionState{
		ID:       id,
		Day:      s.Day(),
		Week:     s.Week(),
		Weekday:  s.Weekday(),
		Holiday:  s.IsHoliday(),
		Phase:    string(s.Phase()),
		Weather:  string(s.Weather()),
		Cleared:  s.Cleared(),
		GameOver: over,

		Money:      s.Money(),
		CardDebt:   s.CardDebt(),
		Energy:     s.Energy(),
		MaxEnergy:  s.MaxEnergy(),
		Stamina:    s.Stamina(),
		MaxStamina: s.MaxStamina(),
		Fullness:   s.Fullness(),
		GritUsed:   s.GritUsed(),
		ShopOpen:   s.ShopOpen(),

		Character:      s.Character(),
		DailyNutrition: s.DailyNutrition(),
		Streaks:        s.Streaks(),
		CaffeineToday:  s.CaffeineToday(),

		BossHistory: s.BossHistory(),

		Stock:             s.Stock().Batches(),
		Provisions:        s.Provisions().All(),
		PreparedDishes:    s.Provisions().Prepared(s.Day()),
		PendingDeliveries: s.Provisions().Pending(),
		Relics:            s.Relics().IDs(),
		AvailableRecipes:  s.AvailableRecipes(),
	}
	if over {
		st.GameOverReason = string(reason)
	}
	if t, ok := s.Temperament(); ok {
		st.Temperament = string(t)
	}
	if b, ok := s.CurrentBoss(); ok {
		st.CurrentBoss = &b
	}
	return st
}

func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	// withState runs fn against the session and answers with the updated
	// state, plus whatever extra payload fn produced.
	type extras map[string]any
	withState := func(w http.ResponseWriter, r *http.Request, fn func(s *game.Session) (extras, error)) {
		id := r.PathValue("id")
		var out extras
		var st SessionState
		err := app.Store.With(r.Context(), id, func(s *game.Session) error {
			var ferr error
			out, ferr = fn(s)
			if ferr != nil {
				return ferr
			}
			st = stateOf(id, s)
			return nil
		})
		if err != nil {
			apiError(w, err)
			return
		}
		resp := map[string]any{"state": st}
		for k, v := range out {
			resp[k] = v
		}
		writeJSON(w, resp)
	}

	// Create session
	Handle(mux, rr, "POST /api/sessions", "Start a playthrough", `{"character":"regular","difficulty":"casual","seed":42}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Character  string `json:"character"`
			Difficulty string `json:"difficulty"`
			Seed       int64  `json:"seed"`
		}
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, "invalid json body", 400)
				return
			}
		}

		bal := app.Config.Balance
		switch body.Difficulty {
		case "":
		case "normal":
			bal = config.Default()
		case "casual":
			bal = config.Casual()
		case "hard":
			bal = config.Hard()
		default:
			http.Error(w, "unknown difficulty", 400)
			return
		}

		seeded := body.Seed != 0 || app.Config.SeededRNG.Enabled
		seed := body.Seed
		if seed == 0 {
			if app.Config.SeededRNG.Enabled {
				seed = app.Config.SeededRNG.Seed
			} else {
				seed = time.Now().UnixNano()
			}
		}

		sess := game.NewSession(bal, app.Config.Month, game.Options{
			Character: body.Character,
			Seed:      seed,
			SeededRNG: seeded,
			Telemetry: app.Telemetry,
		})
		id, err := app.Store.Create(r.Context(), sess)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(201)
		_ = json.NewEncoder(w).Encode(map[string]any{"state": stateOf(id, sess)})
	})

	Handle(mux, rr, "GET /api/sessions", "List session ids", "", func(w http.ResponseWriter, r *http.Request) {
		ids, err := app.Store.IDs(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, map[string]any{"ids": ids})
	})

	Handle(mux, rr, "GET /api/sessions/{id}", "Read session state", "", func(w http.ResponseWriter, r *http.Request) {
		withState(w, r, func(s *game.Session) (extras, error) { return nil, nil })
	})

	Handle(mux, rr, "DELETE /api/sessions/{id}", "Abandon a session", "", func(w http.ResponseWriter, r *http.Request) {
		if err := app.Store.Delete(r.Context(), r.PathValue("id")); err != nil {
			apiError(w, err)
			return
		}
		w.WriteHeader(204)
	})

	// Advance to the next phase of the day
	Handle(mux, rr, "POST /api/sessions/{id}/advance", "Move to the next phase", "", func(w http.ResponseWriter, r *http.Request) {
		withState(w, r, func(s *game.Session) (extras, error) {
			phase, events, err := s.AdvancePhase()
			if err != nil {
				return nil, err
			}
			return extras{"phase": phase, "events": events}, nil
		})
	})

	Handle(mux, rr, "POST /api/sessions/{id}/sleep", "End the day", "", func(w http.ResponseWriter, r *http.Request) {
		withState(w, r, func(s *game.Session) (extras, error) {
			rep, err := s.Sleep()
			if err != nil {
				return nil, err
			}
			return extras{"sleep": rep}, nil
		})
	})

	Handle(mux, rr, "POST /api/sessions/{id}/new-day", "Roll over to the next day", "", func(w http.ResponseWriter, r *http.Request) {
		withState(w, r, func(s *game.Session) (extras, error) {
			rep, err := s.StartNewDay()
			if err != nil {
				return nil, err
			}
			return extras{"day": rep}, nil
		})
	})

	Handle(mux, rr, "POST /api/sessions/{id}/cook", "Cook from stock and eat now", `{"ingredients":["rice","egg"]}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Ingredients []string `json:"ingredients"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		if len(body.Ingredients) == 0 {
			http.Error(w, "ingredients are required", 400)
			return
		}
		withState(w, r, func(s *game.Session) (extras, error) {
			dish, err := s.Cook(body.Ingredients)
			if err != nil {
				return nil, err
			}
			return extras{"dish": dish}, nil
		})
	})

	Handle(mux, rr, "POST /api/sessions/{id}/cook/preview", "Preview a cook without spending anything", `{"ingredients":["rice","egg"]}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Ingredients []string `json:"ingredients"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		if len(body.Ingredients) == 0 {
			http.Error(w, "ingredients are required", 400)
			return
		}
		id := r.PathValue("id")
		var dish cooking.Dish
		err := app.Store.With(r.Context(), id, func(s *game.Session) error {
			var ferr error
			dish, ferr = s.PreviewCook(body.Ingredients)
			return ferr
		})
		if err != nil {
			apiError(w, err)
			return
		}
		writeJSON(w, map[string]any{"dish": dish})
	})

	Handle(mux, rr, "POST /api/sessions/{id}/bento", "Cook into a boxed meal for later", `{"ingredients":["rice","chicken"]}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Ingredients []string `json:"ingredients"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		if len(body.Ingredients) == 0 {
			http.Error(w, "ingredients are required", 400)
			return
		}
		withState(w, r, func(s *game.Session) (extras, error) {
			dish, err := s.MakeBento(body.Ingredients)
			if err != nil {
				return nil, err
			}
			return extras{"dish": dish}, nil
		})
	})

	Handle(mux, rr, "GET /api/sessions/{id}/shop", "Today's shop lineups", "", func(w http.ResponseWriter, r *http.Request) {
		withState(w, r, func(s *game.Session) (extras, error) {
			return extras{
				"ingredients": s.ShopItems(),
				"relics":      s.RelicShopItems(),
			}, nil
		})
	})

	Handle(mux, rr, "POST /api/sessions/{id}/shop/ingredient", "Buy from the grocery lineup", `{"name":"egg","qty":2}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
			Qty  int    `json:"qty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		if body.Qty <= 0 {
			body.Qty = 1
		}
		withState(w, r, func(s *game.Session) (extras, error) {
			return nil, s.BuyIngredient(body.Name, body.Qty)
		})
	})

	Handle(mux, rr, "POST /api/sessions/{id}/shop/relic", "Buy a kitchen relic in person", `{"id":"frying_pan"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		withState(w, r, func(s *game.Session) (extras, error) {
			return nil, s.BuyRelic(body.ID)
		})
	})

	Handle(mux, rr, "POST /api/sessions/{id}/online/provision", "Order provisions on credit", `{"name":"cup noodles","qty":3}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
			Qty  int    `json:"qty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		if body.Qty <= 0 {
			body.Qty = 1
		}
		withState(w, r, func(s *game.Session) (extras, error) {
			return nil, s.BuyOnlineProvision(body.Name, body.Qty)
		})
	})

	Handle(mux, rr, "POST /api/sessions/{id}/online/relic", "Order a relic on credit", `{"id":"fridge"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		withState(w, r, func(s *game.Session) (extras, error) {
			return nil, s.BuyOnlineRelic(body.ID)
		})
	})

	Handle(mux, rr, "POST /api/sessions/{id}/eat", "Eat during a meal phase", `{"kind":"provision","name":"cup noodles"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Kind  string `json:"kind"`
			Name  string `json:"name"`
			Index int    `json:"index"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		withState(w, r, func(s *game.Session) (extras, error) {
			switch body.Kind {
			case "provision":
				return nil, s.EatProvision(body.Name)
			case "prepared":
				return nil, s.EatPrepared(body.Index)
			case "cafeteria":
				return nil, s.EatCafeteria()
			case "restaurant":
				return nil, s.EatOut()
			default:
				return nil, game.ErrUnknownItem
			}
		})
	})

	Handle(mux, rr, "POST /api/sessions/{id}/free-time", "Spend holiday free time", `{"what":"rest"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			What string `json:"what"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		withState(w, r, func(s *game.Session) (extras, error) {
			switch body.What {
			case "cleanup":
				return nil, s.Cleanup()
			case "rest":
				return nil, s.Rest()
			default:
				return nil, game.ErrUnknownItem
			}
		})
	})

	Handle(mux, rr, "GET /api/sessions/{id}/result", "End-of-run summary", "", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var res game.GameResult
		err := app.Store.With(r.Context(), id, func(s *game.Session) error {
			res = s.Result()
			return nil
		})
		if err != nil {
			apiError(w, err)
			return
		}
		writeJSON(w, res)
	})

	Handle(mux, rr, "GET /api/characters", "Selectable characters", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, character.All())
	})

	Handle(mux, rr, "GET /api/recipes", "Named recipe book", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, cooking.DefaultRecipeCatalog().All())
	})

	Handle(mux, rr, "GET /api/stats", "Telemetry stats since boot", "", func(w http.ResponseWriter, r *http.Request) {
		since := app.BootNow
		if q := r.URL.Query().Get("since"); q != "" {
			t, err := time.Parse("2006-01-02", q)
			if err != nil {
				http.Error(w, "since must be YYYY-MM-DD", 400)
				return
			}
			since = t
		}
		events, err := app.Telemetry.GetEvents(since, nil)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		stats, err := telemetry.CalculateStats(events, since)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, stats)
	})

	Handle(mux, rr, "GET /api/config", "Effective server config", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, app.Config)
	})
}
