package nutrition

// Nutrition tracks the five daily nutrients. Totals have no upper bound and
// reset once per day.
type Nutrition struct {
	Vitality  int `json:"vitality" yaml:"vitality"`
	Mental    int `json:"mental" yaml:"mental"`
	Awakening int `json:"awakening" yaml:"awakening"`
	Sustain   int `json:"sustain" yaml:"sustain"`
	Defense   int `json:"defense" yaml:"defense"`
}

func New(vitality, mental, awakening, sustain, defense int) Nutrition {
	return Nutrition{
		Vitality:  vitality,
		Mental:    mental,
		Awakening: awakening,
		Sustain:   sustain,
		Defense:   defense,
	}
}

// Add sums another nutrition value into this one, elementwise.
func (n *Nutrition) Add(other Nutrition) {
	n.Vitality += other.Vitality
	n.Mental += other.Mental
	n.Awakening += other.Awakening
	n.Sustain += other.Sustain
	n.Defense += other.Defense
}

// Reset zeroes all five nutrients. Called exactly once per day.
func (n *Nutrition) Reset() {
	*n = Nutrition{}
}

// Scale multiplies every nutrient by f, truncating toward zero.
func (n Nutrition) Scale(f float64) Nutrition {
	return Nutrition{
		Vitality:  int(float64(n.Vitality) * f),
		Mental:    int(float64(n.Mental) * f),
		Awakening: int(float64(n.Awakening) * f),
		Sustain:   int(float64(n.Sustain) * f),
		Defense:   int(float64(n.Defense) * f),
	}
}

// Penalties holds the next-day recovery penalties derived from a day's totals.
type Penalties struct {
	Energy   int
	Stamina  int
	Fullness int
}

// CalculatePenalties checks vitality, mental and sustain against the daily
// minimum. Each shortfall maps to a different resource penalty: vitality to
// stamina recovery, mental to energy recovery, sustain to fullness decay.
// Awakening and defense never produce direct penalties; they feed event
// probability damping and streak bonuses instead.
func (n Nutrition) CalculatePenalties(minThreshold, penaltyVitality, penaltyMental, penaltySustain int) Penalties {
	var p Penalties
	if n.Vitality < minThreshold {
		p.Stamina = penaltyVitality
	}
	if n.Mental < minThreshold {
		p.Energy = penaltyMental
	}
	if n.Sustain < minThreshold {
		p.Fullness = penaltySustain
	}
	return p
}

// BalanceRatio reports how many of the five nutrients reached the threshold,
// as a 0.0-1.0 ratio. Used for the health-conscious temperament check.
func (n Nutrition) BalanceRatio(threshold int) float64 {
	count := 0
	for _, v := range [5]int{n.Vitality, n.Mental, n.Awakening, n.Sustain, n.Defense} {
		if v >= threshold {
			count++
		}
	}
	return float64(count) / 5.0
}
