package temperament

// Type is the playstyle archetype inferred from the opening days and
// revealed at the start of day 4.
type Type string

const (
	Unknown         Type = ""
	Gourmet         Type = "gourmet"          // cooks constantly
	ShoppingLover   Type = "shopping_lover"   // shops and orders online a lot
	Frugal          Type = "frugal"           // keeps daily spend low
	Social          Type = "social"           // eats out, cafeteria regular
	Tidy            Type = "tidy"             // cleans up, keeps order
	Relaxed         Type = "relaxed"          // rests often
	HealthConscious Type = "health_conscious" // balanced nutrition
	Balanced        Type = "balanced"         // nothing stood out
)

// Modifiers are the passive adjustments a temperament grants. Energy values
// are deltas on post-action recovery, not on costs.
type Modifiers struct {
	CookEnergyRecovery   int     // gourmet: cooking gives a little back
	ShopEnergyRecovery   int     // shopping lover: buying, in store or online, restores energy
	ShopDiscount         float64 // frugal: fraction off every purchase
	EatOutEnergyRecovery int     // social: eating out restores energy
	PenaltyReduction     float64 // health conscious: fraction shaved off nutrition penalties
	SleepBonus           int     // tidy: a clean room sleeps deeper
	RestBonus            int     // relaxed: resting restores extra
}

func (t Type) Modifiers() Modifiers {
	switch t {
	case Gourmet:
		return Modifiers{CookEnergyRecovery: 1}
	case ShoppingLover:
		return Modifiers{ShopEnergyRecovery: 1}
	case Frugal:
		return Modifiers{ShopDiscount: 0.10}
	case Social:
		return Modifiers{EatOutEnergyRecovery: 1}
	case Tidy:
		return Modifiers{SleepBonus: 1}
	case Relaxed:
		return Modifiers{RestBonus: 1}
	case HealthConscious:
		return Modifiers{PenaltyReduction: 0.5}
	default:
		return Modifiers{}
	}
}

func (t Type) Label() string {
	switch t {
	case Gourmet:
		return "Gourmet"
	case ShoppingLover:
		return "Shopping lover"
	case Frugal:
		return "Frugal"
	case Social:
		return "Social"
	case Tidy:
		return "Tidy"
	case Relaxed:
		return "Relaxed"
	case HealthConscious:
		return "Health conscious"
	case Balanced:
		return "Balanced"
	default:
		return "Undetermined"
	}
}

// Tracker records the behaviors the opening days feed into the reveal.
type Tracker struct {
	Cooks      int
	ShopBuys   int
	OnlineBuys int
	EatOuts    int
	Cleanups   int
	Rests      int

	SpendTotal   int
	SpendDays    int
	BalanceTotal float64
	BalanceDays  int
}

func (t *Tracker) RecordCook()      { t.Cooks++ }
func (t *Tracker) RecordShopBuy()   { t.ShopBuys++ }
func (t *Tracker) RecordOnlineBuy() { t.OnlineBuys++ }
func (t *Tracker) RecordEatOut()    { t.EatOuts++ }
func (t *Tracker) RecordCleanup()   { t.Cleanups++ }
func (t *Tracker) RecordRest()      { t.Rests++ }

// RecordDay closes out one day's spend and nutrition balance ratio.
func (t *Tracker) RecordDay(spend int, balance float64) {
	t.SpendTotal += spend
	t.SpendDays++
	t.BalanceTotal += balance
	t.BalanceDays++
}

const (
	frugalSpendCeiling   = 2000
	healthyBalanceFloor  = 0.7
	revealScoreThreshold = 3
)

// Determine scores every archetype from the tracked behaviors and returns
// the winner. Below the score floor nothing stood out and the player reads
// as balanced. Ties break in a fixed archetype order.
func (t *Tracker) Determine() Type {
	scores := []struct {
		kind  Type
		score int
	}{
		{Gourmet, t.Cooks * 2},
		{ShoppingLover, t.ShopBuys + t.OnlineBuys},
		{Frugal, t.frugalScore()},
		{Social, t.EatOuts * 3},
		{Tidy, t.Cleanups * 3},
		{Relaxed, t.Rests * 2},
		{HealthConscious, t.healthScore()},
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s.score > best.score {
			best = s
		}
	}
	if best.score < revealScoreThreshold {
		return Balanced
	}
	return best.kind
}

func (t *Tracker) frugalScore() int {
	if t.SpendDays == 0 {
		return 0
	}
	if t.SpendTotal/t.SpendDays < frugalSpendCeiling {
		return 5
	}
	return 0
}

func (t *Tracker) healthScore() int {
	if t.BalanceDays == 0 {
		return 0
	}
	if t.BalanceTotal/float64(t.BalanceDays) >= healthyBalanceFloor {
		return 5
	}
	return 0
}
