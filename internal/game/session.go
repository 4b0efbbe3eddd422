package game

import (
	"errors"
	"math/rand"

	"github.com/dechi99991/cooking-sim/internal/boss"
	"github.com/dechi99991/cooking-sim/internal/character"
	"github.com/dechi99991/cooking-sim/internal/config"
	"github.com/dechi99991/cooking-sim/internal/cooking"
	"github.com/dechi99991/cooking-sim/internal/event"
	"github.com/dechi99991/cooking-sim/internal/ingredient"
	"github.com/dechi99991/cooking-sim/internal/nutrition"
	"github.com/dechi99991/cooking-sim/internal/player"
	"github.com/dechi99991/cooking-sim/internal/provision"
	"github.com/dechi99991/cooking-sim/internal/relic"
	"github.com/dechi99991/cooking-sim/internal/stock"
	"github.com/dechi99991/cooking-sim/internal/telemetry"
	"github.com/dechi99991/cooking-sim/internal/temperament"
)

// Validation failures are recoverable: the caller may retry with different
// input. Game over is advisory; the machine keeps running until the driver
// stops calling it.
var (
	ErrWrongPhase         = errors.New("action not available in this phase")
	ErrSleepRequired      = errors.New("the day ends with sleep, not a phase advance")
	ErrAlreadySlept       = errors.New("already slept; start the new day")
	ErrDayNotFinished     = errors.New("cannot start a new day before sleeping")
	ErrNotEnoughEnergy    = errors.New("not enough energy")
	ErrNotEnoughMoney     = errors.New("not enough money")
	ErrMissingIngredients = errors.New("ingredients not in stock")
	ErrNotInShop          = errors.New("item not in today's lineup")
	ErrUnknownItem        = errors.New("unknown item")
	ErrBagFull            = errors.New("shopping bag is full")
	ErrAlreadyOwned       = errors.New("relic already owned or on order")
	ErrNoCafeteria        = errors.New("no cafeteria available")
	ErrGameOver           = errors.New("the session has ended")
)

// Session is one in-memory playthrough, mutated by exactly one caller at a
// time. Nothing here is thread safe; the session store serializes access.
type Session struct {
	cfg   config.Balance
	month config.MonthConfig
	char  character.Character
	seed  int64

	player *player.Player
	daily  nutrition.Nutrition

	ingredients  *ingredient.Catalog
	provCatalog  *provision.Catalog
	relicCatalog *relic.Catalog

	stock      *stock.Stock
	provisions *provision.Stock
	relics     *relic.Inventory
	cooker     *cooking.Resolver
	events     *event.Engine

	tracker        temperament.Tracker
	temper         temperament.Type
	temperRevealed bool

	bossCatalog *boss.Catalog
	currentBoss *boss.Boss
	bossHistory []boss.Evaluation
	week        boss.WeekRecord

	telemetry telemetry.Repository

	day      int
	phaseIdx int
	slept    bool

	weather       event.Weather
	streaks       event.Streaks
	caffeineToday int
	insomnia      bool
	spendToday    int
	bagUsed       int
	shopOpen      bool
}

// Options tweak session construction beyond the balance numbers.
type Options struct {
	Character string
	Seed      int64
	SeededRNG bool
	Telemetry telemetry.Repository

	// Events overrides the stock event table; an empty non-nil slice runs
	// with no random events at all.
	Events []event.Event
}

func NewSession(cfg config.Balance, month config.MonthConfig, opts Options) *Session {
	char := character.ByID(opts.Character)

	s := &Session{
		cfg:          cfg,
		month:        month,
		char:         char,
		seed:         opts.Seed,
		player:       player.New(cfg.StartingMoney+char.StartingBonus, cfg.StartingEnergy, cfg.StartingStamina, cfg.MaxEnergy, cfg.MaxStamina),
		ingredients:  ingredient.DefaultCatalog(),
		provCatalog:  provision.DefaultCatalog(),
		relicCatalog: relic.DefaultCatalog(),
		bossCatalog:  boss.DefaultCatalog(),
		events:       event.NewEngine(),
		telemetry:    opts.Telemetry,
		day:          1,
	}
	s.stock = stock.New(s.ingredients)
	s.provisions = provision.NewStock(s.provCatalog)
	s.relics = relic.NewInventory(s.relicCatalog)
	s.cooker = cooking.NewResolver(s.ingredients, cooking.DefaultRecipeCatalog())

	if opts.Events != nil {
		s.events.Register(opts.Events...)
	} else {
		s.events.Register(event.DefaultEvents()...)
	}
	if opts.SeededRNG {
		s.events.SetRNG(rand.New(rand.NewSource(opts.Seed)))
	}

	// A move-in pantry so the first morning is playable.
	s.stock.Add("rice", 2, 1)
	s.stock.Add("egg", 2, 1)
	s.provisions.Add("cup noodles", 1)
	s.provisions.Add("green tea", 1)

	s.weather = s.events.DetermineWeather(s.day, s.month.Number)
	s.record(telemetry.EventSessionStarted, telemetry.EventMetadata{"character": char.ID})
	return s
}

func (s *Session) record(t telemetry.EventType, md telemetry.EventMetadata) {
	if s.telemetry == nil {
		return
	}
	if md == nil {
		md = telemetry.EventMetadata{}
	}
	md["day"] = s.day
	_ = s.telemetry.RecordEvent(t, md)
}

// Accessors. All read-only; the server renders from these.

func (s *Session) Day() int                            { return s.day }
func (s *Session) Week() int                           { return s.day/7 + 1 }
func (s *Session) Weekday() int                        { return Weekday(s.day) }
func (s *Session) IsHoliday() bool                     { return IsHolidayDay(s.day) }
func (s *Session) Weather() event.Weather              { return s.weather }
func (s *Session) Money() int                          { return s.player.Money }
func (s *Session) Energy() int                         { return s.player.Energy }
func (s *Session) Stamina() int                        { return s.player.Stamina }
func (s *Session) Fullness() int                       { return s.player.Fullness }
func (s *Session) CardDebt() int                       { return s.player.CardDebt }
func (s *Session) MaxEnergy() int                      { return s.player.MaxEnergy }
func (s *Session) MaxStamina() int                     { return s.player.MaxStamina }
func (s *Session) GritUsed() bool                      { return s.player.GritUsed }
func (s *Session) ShopOpen() bool                      { return s.shopOpen }
func (s *Session) DailyNutrition() nutrition.Nutrition { return s.daily }
func (s *Session) Streaks() event.Streaks              { return s.streaks }
func (s *Session) CaffeineToday() int                  { return s.caffeineToday }
func (s *Session) Insomnia() bool                      { return s.insomnia }
func (s *Session) Character() character.Character      { return s.char }
func (s *Session) Stock() *stock.Stock                 { return s.stock }
func (s *Session) Provisions() *provision.Stock        { return s.provisions }
func (s *Session) Relics() *relic.Inventory            { return s.relics }
func (s *Session) BossHistory() []boss.Evaluation      { return s.bossHistory }

func (s *Session) CurrentBoss() (boss.Boss, bool) {
	if s.currentBoss == nil {
		return boss.Boss{}, false
	}
	return *s.currentBoss, true
}

// Temperament returns the finalized archetype; before the reveal on day 4 it
// reports not-ok.
func (s *Session) Temperament() (temperament.Type, bool) {
	return s.temper, s.temperRevealed
}

func (s *Session) phaseList() []Phase {
	if s.IsHoliday() {
		return holidayPhases
	}
	return weekdayPhases
}

func (s *Session) Phase() Phase {
	return s.phaseList()[s.phaseIdx]
}

func (s *Session) IsGameOver() (bool, player.GameOverReason) {
	return s.player.IsGameOver(), s.player.GameOverReason()
}

// Cleared reports whether the player survived past the final day.
func (s *Session) Cleared() bool {
	return s.day > s.cfg.FinalDay && !s.player.IsGameOver()
}

// GameResult is the end-of-run summary.
type GameResult struct {
	Cleared        bool                  `json:"cleared"`
	GameOver       bool                  `json:"game_over"`
	GameOverReason player.GameOverReason `json:"game_over_reason,omitempty"`
	DaysSurvived   int                   `json:"days_survived"`
	FinalMoney     int                   `json:"final_money"`
	CardDebt       int                   `json:"card_debt"`
	Temperament    temperament.Type      `json:"temperament,omitempty"`
	BossOutcomes   map[string]int        `json:"boss_outcomes"`
	RelicsOwned    []string              `json:"relics_owned"`
	MaxEnergy      int                   `json:"max_energy"`
	MaxStamina     int                   `json:"max_stamina"`
}

// Result summarizes the run so far. Meaningful once the run has cleared or
// ended, but callable at any point.
func (s *Session) Result() GameResult {
	res := GameResult{
		Cleared:      s.Cleared(),
		GameOver:     s.player.IsGameOver(),
		DaysSurvived: s.day,
		FinalMoney:   s.player.Money,
		CardDebt:     s.player.CardDebt,
		BossOutcomes: make(map[string]int),
		RelicsOwned:  s.relics.IDs(),
		MaxEnergy:    s.player.MaxEnergy,
		MaxStamina:   s.player.MaxStamina,
	}
	if res.GameOver {
		res.GameOverReason = s.player.GameOverReason()
	}
	if s.temperRevealed {
		res.Temperament = s.temper
	}
	for _, ev := range s.bossHistory {
		res.BossOutcomes[string(ev.Outcome)]++
	}
	return res
}

func (s *Session) snapshot() event.Snapshot {
	return event.Snapshot{
		Day:            s.day,
		Weekday:        s.Weekday(),
		Holiday:        s.IsHoliday(),
		Weather:        s.weather,
		Money:          s.player.Money,
		Energy:         s.player.Energy,
		Stamina:        s.player.Stamina,
		Fullness:       s.player.Fullness,
		DailyNutrition: s.daily,
		Streaks:        s.streaks,
	}
}

func (s *Session) fireTiming(t event.Timing) []event.Result {
	results := s.events.CheckAndTrigger(t, s.snapshot(), s)
	for _, r := range results {
		s.record(telemetry.EventRandomEvent, telemetry.EventMetadata{"event": r.Event.ID})
	}
	return results
}

// AdvancePhase moves to the next phase of the active list, applying commute
// decay and firing the checkpoint events the new phase owns. Sleep is
// terminal: the day continues only through Sleep and StartNewDay.
func (s *Session) AdvancePhase() (Phase, []event.Result, error) {
	if s.player.IsGameOver() {
		return s.Phase(), nil, ErrGameOver
	}
	list := s.phaseList()
	if list[s.phaseIdx] == PhaseSleep {
		return PhaseSleep, nil, ErrSleepRequired
	}

	s.phaseIdx++
	p := list[s.phaseIdx]

	switch p {
	case PhaseGoToWork:
		// A workday takes its toll up front; grit conversion may keep the
		// player standing at the cost of energy.
		s.player.ConsumeStamina(1)
		s.player.DecayFullness(s.cfg.CommuteFullnessDecay)
	case PhaseLeaveWork:
		s.player.DecayFullness(s.cfg.CommuteFullnessDecay)
	case PhaseShopping, PhaseHolidayShopping1, PhaseHolidayShopping2:
		s.bagUsed = 0
		s.shopOpen = false
		// The trip to the supermarket has its own price of admission. Too
		// tired even after a pick-me-up and the shops stay closed for the
		// slot; free-time actions remain available.
		s.ensureEnergy(s.cfg.ShoppingMinEnergy)
		if s.player.Energy >= s.cfg.ShoppingMinEnergy && s.player.ConsumeEnergy(s.cfg.ShoppingEnergyCost) {
			s.player.ConsumeStamina(s.cfg.ShoppingStaminaCost)
			s.shopOpen = true
		}
	}

	var results []event.Result
	if t, ok := phaseTiming(p); ok {
		results = s.fireTiming(t)
	}
	return p, results, nil
}

// SleepReport summarizes the night.
type SleepReport struct {
	Penalties        nutrition.Penalties `json:"penalties"`
	Insomnia         bool                `json:"insomnia"`
	EnergyRecovered  int                 `json:"energy_recovered"`
	StaminaRecovered int                 `json:"stamina_recovered"`
}

// Sleep closes the day: penalties from the day's nutrition are set, then
// overnight recovery runs against them. Caffeine past the insomnia threshold
// worsens the energy penalty; a caffeine-free day sleeps a little deeper.
func (s *Session) Sleep() (SleepReport, error) {
	if s.Phase() != PhaseSleep {
		return SleepReport{}, ErrWrongPhase
	}
	if s.slept {
		return SleepReport{}, ErrAlreadySlept
	}

	mods := s.temper.Modifiers()
	pen := s.daily.CalculatePenalties(s.cfg.NutritionMinThreshold, s.cfg.PenaltyVitality, s.cfg.PenaltyMental, s.cfg.PenaltySustain)

	energyPen, staminaPen := pen.Energy, pen.Stamina
	if r := mods.PenaltyReduction; r > 0 {
		energyPen = int(float64(energyPen) * (1 - r))
		staminaPen = int(float64(staminaPen) * (1 - r))
	}
	// Insomnia is lost sleep, not bad eating; the reduction never touches it.
	if s.insomnia {
		energyPen += s.cfg.InsomniaPenalty
	}
	s.player.ApplyPenalties(energyPen, staminaPen, pen.Fullness)

	recovery := s.cfg.SleepEnergyRecovery + mods.SleepBonus
	if s.caffeineToday == 0 {
		recovery += s.cfg.EarlySleepBonus
	}

	beforeEnergy, beforeStamina := s.player.Energy, s.player.Stamina
	s.player.RecoverEnergy(recovery)
	s.player.RecoverStamina(s.cfg.SleepStaminaRecovery)
	s.slept = true

	report := SleepReport{
		Penalties:        nutrition.Penalties{Energy: energyPen, Stamina: staminaPen, Fullness: pen.Fullness},
		Insomnia:         s.insomnia,
		EnergyRecovered:  s.player.Energy - beforeEnergy,
		StaminaRecovered: s.player.Stamina - beforeStamina,
	}
	s.record(telemetry.EventSlept, telemetry.EventMetadata{"insomnia": s.insomnia})
	return report, nil
}

// PaydayReport itemizes a salary day.
type PaydayReport struct {
	Salary      int `json:"salary"`
	Bonus       int `json:"bonus"`
	Rent        int `json:"rent"`
	CardSettled int `json:"card_settled"`
}

// DayReport summarizes everything a day rollover did.
type DayReport struct {
	Day           int                         `json:"day"`
	Weather       event.Weather               `json:"weather"`
	Holiday       bool                        `json:"holiday"`
	Payday        *PaydayReport               `json:"payday,omitempty"`
	BossResult    *boss.Evaluation            `json:"boss_result,omitempty"`
	NewBoss       *boss.Boss                  `json:"new_boss,omitempty"`
	Temperament   temperament.Type            `json:"temperament,omitempty"`
	SpoiledDishes []provision.PreparedDish    `json:"spoiled_dishes,omitempty"`
	Delivered     []provision.PendingDelivery `json:"delivered,omitempty"`
	MorningEvents []event.Result              `json:"morning_events,omitempty"`
}

// StartNewDay rolls the session forward. Leaving a Saturday skips two days;
// Sunday is never simulated. Order matters here: the closing day's boss
// evaluation, streaks and behavior record run against the old day, then the
// calendar moves, then the new day's resets, deliveries, payday and weather
// apply.
func (s *Session) StartNewDay() (DayReport, error) {
	if s.Phase() != PhaseSleep || !s.slept {
		return DayReport{}, ErrDayNotFinished
	}

	report := DayReport{}
	closing := s.day

	s.week.AddSpend(s.spendToday)

	if Weekday(closing) == weekdayFriday && s.currentBoss != nil {
		ev := s.currentBoss.Evaluate(boss.PlayerState{
			Money:   s.player.Money,
			Energy:  s.player.Energy,
			Stamina: s.player.Stamina,
			Items:   s.relics.IDs(),
		}, s.week)
		s.player.Money += ev.Money
		s.AdjustEnergy(ev.Energy)
		s.AdjustStamina(ev.Stamina)
		s.player.AddCardDebt(ev.Debt)
		s.bossHistory = append(s.bossHistory, ev)
		s.currentBoss = nil
		report.BossResult = &ev
		s.record(telemetry.EventBossResolved, telemetry.EventMetadata{"boss": ev.Boss.ID, "outcome": string(ev.Outcome)})
	}

	s.updateStreaks()
	s.tracker.RecordDay(s.spendToday, s.daily.BalanceRatio(s.cfg.NutritionMinThreshold))

	if Weekday(closing) == weekdaySaturday {
		s.day += 2
	} else {
		s.day++
	}
	report.Day = s.day
	report.Holiday = s.IsHoliday()

	if Weekday(s.day) == weekdayMonday {
		s.week.Reset()
		if b, ok := s.bossCatalog.PickForWeek(s.seed, s.Week()); ok {
			s.currentBoss = &b
			report.NewBoss = &b
		}
	}

	if !s.temperRevealed && s.day >= 4 {
		s.temper = s.tracker.Determine()
		s.temperRevealed = true
		report.Temperament = s.temper
		s.record(telemetry.EventTemperamentRevealed, telemetry.EventMetadata{"temperament": string(s.temper)})
	}

	s.daily.Reset()
	s.caffeineToday = 0
	s.insomnia = false
	s.player.DecayFullness(s.player.FullnessDecayPenalty)
	s.player.ClearPenalties()

	report.SpoiledDishes = s.provisions.PurgeExpired(s.day)
	delivered := s.provisions.ProcessDeliveries(s.day)
	for _, d := range delivered {
		if d.ItemType == provision.DeliverRelic {
			s.relics.Add(d.Name, s.day)
		}
	}
	report.Delivered = delivered

	if s.isPayday(s.day) {
		pr := s.applyPayday()
		report.Payday = &pr
	}

	s.weather = s.events.DetermineWeather(s.day, s.month.Number)
	report.Weather = s.weather
	s.events.NewDay()

	s.phaseIdx = 0
	s.slept = false
	s.spendToday = 0
	s.bagUsed = 0
	s.shopOpen = false

	report.MorningEvents = s.fireTiming(event.TimingWakeUp)
	s.record(telemetry.EventDayStarted, telemetry.EventMetadata{"weather": string(s.weather)})
	return report, nil
}

// isPayday: salary lands on the configured day of month, shifted to the
// preceding Friday when that date is a Saturday. Sunday can never collide
// because it is never a simulated day.
func (s *Session) isPayday(day int) bool {
	payday := s.cfg.PaydayOfMonth
	if Weekday(payday) == weekdaySaturday {
		payday--
	}
	return day == payday
}

func (s *Session) applyPayday() PaydayReport {
	report := PaydayReport{
		Salary: int(float64(s.cfg.Salary) * s.char.SalaryFactor),
		Rent:   s.cfg.Rent,
	}
	if s.char.HasBonusIn(s.month.Number) {
		report.Bonus = s.cfg.Bonus
	}
	s.player.Money += report.Salary + report.Bonus
	s.player.Money -= report.Rent
	report.CardSettled = s.player.SettleCard()
	s.record(telemetry.EventPayday, telemetry.EventMetadata{"salary": report.Salary, "card_settled": report.CardSettled})
	return report
}

func (s *Session) updateStreaks() {
	bump := func(streak *int, value int) {
		if value >= s.cfg.StreakHighThreshold {
			*streak++
		} else {
			*streak = 0
		}
	}
	bump(&s.streaks.Vitality, s.daily.Vitality)
	bump(&s.streaks.Mental, s.daily.Mental)
	bump(&s.streaks.Awakening, s.daily.Awakening)
	bump(&s.streaks.Sustain, s.daily.Sustain)
	bump(&s.streaks.Defense, s.daily.Defense)
}

// event.World implementation: the mutation surface event effects touch.

func (s *Session) AdjustEnergy(delta int) {
	e := s.player.Energy + delta
	if e < 0 {
		e = 0
	}
	if e > s.player.MaxEnergy {
		e = s.player.MaxEnergy
	}
	s.player.Energy = e
}

func (s *Session) AdjustStamina(delta int) {
	st := s.player.Stamina + delta
	if st < 0 {
		st = 0
	}
	if st > s.player.MaxStamina {
		st = s.player.MaxStamina
	}
	s.player.Stamina = st
}

func (s *Session) AdjustMoney(delta int) {
	s.player.Money += delta
}

func (s *Session) AdjustFullness(delta int) {
	if delta >= 0 {
		s.player.AddFullness(delta)
	} else {
		s.player.DecayFullness(-delta)
	}
}

func (s *Session) GrantIngredient(name string, qty int) {
	s.stock.Add(name, qty, s.day)
}

func (s *Session) GrantProvision(name string, qty int) {
	s.provisions.Add(name, qty)
}

func (s *Session) GrowMaxEnergy(delta int) {
	s.player.IncreaseMaxEnergy(delta)
}

func (s *Session) GrowMaxStamina(delta int) {
	s.player.IncreaseMaxStamina(delta)
}
