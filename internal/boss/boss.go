package boss

import (
	"math/rand"

	"github.com/dechi99991/cooking-sim/internal/nutrition"
)

// RequirementKind names one measurable a weekly challenge can check at its
// Friday evaluation.
type RequirementKind string

const (
	RequireMoney            RequirementKind = "money"
	RequireEnergy           RequirementKind = "energy"
	RequireStamina          RequirementKind = "stamina"
	RequireItem             RequirementKind = "item"
	RequireWeeklyVitality   RequirementKind = "weekly_vitality"
	RequireWeeklyMental     RequirementKind = "weekly_mental"
	RequireWeeklyDefense    RequirementKind = "weekly_defense"
	RequireWeeklyAllMin     RequirementKind = "weekly_all_min"
	RequireWeeklySpendUnder RequirementKind = "weekly_spend_under"
	RequireCookCount        RequirementKind = "cook_count"
)

// Requirement is one condition of a weekly challenge. A boss may carry
// several; all of them must hold for a success.
type Requirement struct {
	Kind   RequirementKind `json:"kind"`
	Target int             `json:"target,omitempty"`
	Item   string          `json:"item,omitempty"` // RequireItem only
}

func (r Requirement) met(state PlayerState, record WeekRecord) bool {
	switch r.Kind {
	case RequireMoney:
		return state.Money >= r.Target
	case RequireEnergy:
		return state.Energy >= r.Target
	case RequireStamina:
		return state.Stamina >= r.Target
	case RequireItem:
		for _, id := range state.Items {
			if id == r.Item {
				return true
			}
		}
		return false
	case RequireWeeklyVitality:
		return record.Nutrition.Vitality >= r.Target
	case RequireWeeklyMental:
		return record.Nutrition.Mental >= r.Target
	case RequireWeeklyDefense:
		return record.Nutrition.Defense >= r.Target
	case RequireWeeklyAllMin:
		n := record.Nutrition
		for _, v := range []int{n.Vitality, n.Mental, n.Awakening, n.Sustain, n.Defense} {
			if v < r.Target {
				return false
			}
		}
		return true
	case RequireWeeklySpendUnder:
		return record.Spend <= r.Target
	case RequireCookCount:
		return record.CookCount >= r.Target
	default:
		return false
	}
}

// Reward is what success pays out.
type Reward struct {
	Money   int `json:"money,omitempty"`
	Energy  int `json:"energy,omitempty"`
	Stamina int `json:"stamina,omitempty"`
}

// Penalty is what failure costs. Debt goes on the card, not the wallet, so
// a failed boss can never end the run on the spot.
type Penalty struct {
	Energy  int `json:"energy,omitempty"`
	Stamina int `json:"stamina,omitempty"`
	Debt    int `json:"debt,omitempty"`
}

// Boss is a weekly challenge: announced Monday, judged Friday evening.
type Boss struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Requirements []Requirement `json:"requirements"`
	Reward       Reward        `json:"reward"`
	Penalty      Penalty       `json:"penalty"`
}

// Outcome grades a Friday evaluation.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Evaluation is the result of judging a boss against the week's record.
// The deltas are informational; the caller applies them to the player.
type Evaluation struct {
	Boss    Boss     `json:"boss"`
	Outcome Outcome  `json:"outcome"`
	Unmet   []string `json:"unmet,omitempty"`
	Money   int      `json:"money"`
	Energy  int      `json:"energy"`
	Stamina int      `json:"stamina"`
	Debt    int      `json:"debt"`
}

// WeekRecord accumulates what the player did since Monday.
type WeekRecord struct {
	Nutrition nutrition.Nutrition
	CookCount int
	Spend     int
}

func (r *WeekRecord) AddNutrition(n nutrition.Nutrition) {
	r.Nutrition.Add(n)
}

func (r *WeekRecord) RecordCook() {
	r.CookCount++
}

func (r *WeekRecord) AddSpend(amount int) {
	r.Spend += amount
}

// Reset clears the record at the start of each week.
func (r *WeekRecord) Reset() {
	*r = WeekRecord{}
}

// PlayerState is the live reading a boss evaluation needs alongside the
// week record. Items lists owned relic IDs.
type PlayerState struct {
	Money   int
	Energy  int
	Stamina int
	Items   []string
}

// Evaluate judges every requirement; one miss fails the whole boss.
func (b Boss) Evaluate(state PlayerState, record WeekRecord) Evaluation {
	ev := Evaluation{Boss: b}
	for _, r := range b.Requirements {
		if !r.met(state, record) {
			ev.Unmet = append(ev.Unmet, string(r.Kind))
		}
	}
	if len(ev.Unmet) == 0 {
		ev.Outcome = OutcomeSuccess
		ev.Money = b.Reward.Money
		ev.Energy = b.Reward.Energy
		ev.Stamina = b.Reward.Stamina
	} else {
		ev.Outcome = OutcomeFailure
		ev.Energy = -b.Penalty.Energy
		ev.Stamina = -b.Penalty.Stamina
		ev.Debt = b.Penalty.Debt
	}
	return ev
}

// bossSeedSalt keeps the weekly pick independent from other seeded draws.
const bossSeedSalt = 6151

// Catalog is the fixed pool of weekly challenges.
type Catalog struct {
	bosses []Boss
}

func NewCatalog(bosses []Boss) *Catalog {
	return &Catalog{bosses: append([]Boss(nil), bosses...)}
}

// PickForWeek selects the boss deterministically per (seed, week). Weeks
// start at 1; the first week has no boss.
func (c *Catalog) PickForWeek(seed int64, week int) (Boss, bool) {
	if week < 2 || len(c.bosses) == 0 {
		return Boss{}, false
	}
	rng := rand.New(rand.NewSource(seed + int64(week)*bossSeedSalt))
	return c.bosses[rng.Intn(len(c.bosses))], true
}

func (c *Catalog) Len() int { return len(c.bosses) }

func DefaultCatalog() *Catalog {
	return NewCatalog([]Boss{
		{
			ID:          "drinking-party",
			Name:        "Office drinking party",
			Description: "Friday night is the department party. Bring 3,000 yen and 3 stamina or regret it.",
			Requirements: []Requirement{
				{Kind: RequireMoney, Target: 3000},
				{Kind: RequireStamina, Target: 3},
			},
			Reward:  Reward{Energy: 2},
			Penalty: Penalty{Stamina: 3, Debt: 3000},
		},
		{
			ID:          "welcome-party",
			Name:        "Welcome party",
			Description: "You are organizing the newcomer's welcome party. 5,000 yen and 2 energy by Friday.",
			Requirements: []Requirement{
				{Kind: RequireMoney, Target: 5000},
				{Kind: RequireEnergy, Target: 2},
			},
			Reward:  Reward{Energy: 1, Stamina: 2},
			Penalty: Penalty{Energy: 2, Debt: 5000},
		},
		{
			ID:          "crunch-week",
			Name:        "Deadline crunch",
			Description: "A big release lands Friday. Finish the week with 5 or more energy.",
			Requirements: []Requirement{
				{Kind: RequireEnergy, Target: 5},
			},
			Reward:  Reward{Money: 2000, Stamina: 1},
			Penalty: Penalty{Energy: 3},
		},
		{
			ID:          "presentation",
			Name:        "Client presentation",
			Description: "You present Friday. Show up with 4 energy and 4 stamina.",
			Requirements: []Requirement{
				{Kind: RequireEnergy, Target: 4},
				{Kind: RequireStamina, Target: 4},
			},
			Reward:  Reward{Money: 2500, Energy: 2},
			Penalty: Penalty{Energy: 2, Stamina: 2},
		},
		{
			ID:          "sudden-expense",
			Name:        "Appliance on its last legs",
			Description: "The washing machine is dying. Have 15,000 yen ready by Friday.",
			Requirements: []Requirement{
				{Kind: RequireMoney, Target: 15000},
			},
			Reward:  Reward{Money: 3000},
			Penalty: Penalty{Debt: 15000},
		},
		{
			ID:          "fridge-inspection",
			Name:        "Fridge inspection",
			Description: "Your mother visits Saturday and will open the fridge. Better own one by Friday.",
			Requirements: []Requirement{
				{Kind: RequireItem, Item: "fridge"},
			},
			Reward:  Reward{Money: 2000, Energy: 1},
			Penalty: Penalty{Energy: 2},
		},
		{
			ID:          "cold-season",
			Name:        "Cold going around",
			Description: "Half the office is coughing. Build 12 defense over the week.",
			Requirements: []Requirement{
				{Kind: RequireWeeklyDefense, Target: 12},
			},
			Reward:  Reward{Stamina: 2},
			Penalty: Penalty{Stamina: 2},
		},
		{
			ID:          "checkup",
			Name:        "Company checkup",
			Description: "The annual health check is Friday. Accumulate 15 vitality this week.",
			Requirements: []Requirement{
				{Kind: RequireWeeklyVitality, Target: 15},
			},
			Reward:  Reward{Stamina: 1, Energy: 1},
			Penalty: Penalty{Stamina: 1, Energy: 1},
		},
		{
			ID:          "stress-check",
			Name:        "Stress check",
			Description: "The mandatory stress survey runs Friday. Keep 12 mental over the week.",
			Requirements: []Requirement{
				{Kind: RequireWeeklyMental, Target: 12},
			},
			Reward:  Reward{Energy: 2},
			Penalty: Penalty{Energy: 2},
		},
		{
			ID:          "nutrition-audit",
			Name:        "Dietitian visit",
			Description: "A workplace dietitian reviews your week. Every nutrient at 8 or better.",
			Requirements: []Requirement{
				{Kind: RequireWeeklyAllMin, Target: 8},
			},
			Reward:  Reward{Energy: 3, Stamina: 2},
			Penalty: Penalty{Energy: 2, Stamina: 1},
		},
		{
			ID:          "budget-week",
			Name:        "Budget week",
			Description: "Payday is far away. Keep this week's spending under 8,000 yen.",
			Requirements: []Requirement{
				{Kind: RequireWeeklySpendUnder, Target: 8000},
			},
			Reward:  Reward{Money: 2500},
			Penalty: Penalty{Debt: 3000},
		},
		{
			ID:          "home-cooking-pledge",
			Name:        "Home cooking pledge",
			Description: "You told everyone you cook now. Cook at least 5 times this week.",
			Requirements: []Requirement{
				{Kind: RequireCookCount, Target: 5},
			},
			Reward:  Reward{Money: 2000},
			Penalty: Penalty{Energy: 1, Debt: 2000},
		},
	})
}
