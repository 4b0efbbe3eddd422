package event

// World is the mutation surface an effect may touch. The game session
// implements it; effects never see anything wider.
type World interface {
	AdjustEnergy(delta int)
	AdjustStamina(delta int)
	AdjustMoney(delta int)
	AdjustFullness(delta int)
	GrantIngredient(name string, qty int)
	GrantProvision(name string, qty int)
	GrowMaxEnergy(delta int)
	GrowMaxStamina(delta int)
}

// EffectKind discriminates the Effect variants.
type EffectKind string

const (
	EffectEnergyDelta    EffectKind = "energy_delta"
	EffectStaminaDelta   EffectKind = "stamina_delta"
	EffectMoneyDelta     EffectKind = "money_delta"
	EffectFullnessDelta  EffectKind = "fullness_delta"
	EffectAddIngredient  EffectKind = "add_ingredient"
	EffectAddProvision   EffectKind = "add_provision"
	EffectMaxEnergyGrow  EffectKind = "max_energy_grow"
	EffectMaxStaminaGrow EffectKind = "max_stamina_grow"
	EffectComposite      EffectKind = "composite"
)

// Effect is a tagged variant: exactly the fields its Kind uses are set.
// Composite applies its children in order.
type Effect struct {
	Kind     EffectKind
	Amount   int
	Item     string
	Children []Effect
}

func (e Effect) Apply(w World) {
	switch e.Kind {
	case EffectEnergyDelta:
		w.AdjustEnergy(e.Amount)
	case EffectStaminaDelta:
		w.AdjustStamina(e.Amount)
	case EffectMoneyDelta:
		w.AdjustMoney(e.Amount)
	case EffectFullnessDelta:
		w.AdjustFullness(e.Amount)
	case EffectAddIngredient:
		w.GrantIngredient(e.Item, e.Amount)
	case EffectAddProvision:
		w.GrantProvision(e.Item, e.Amount)
	case EffectMaxEnergyGrow:
		w.GrowMaxEnergy(e.Amount)
	case EffectMaxStaminaGrow:
		w.GrowMaxStamina(e.Amount)
	case EffectComposite:
		for _, child := range e.Children {
			child.Apply(w)
		}
	}
}

func Energy(amount int) Effect   { return Effect{Kind: EffectEnergyDelta, Amount: amount} }
func Stamina(amount int) Effect  { return Effect{Kind: EffectStaminaDelta, Amount: amount} }
func Money(amount int) Effect    { return Effect{Kind: EffectMoneyDelta, Amount: amount} }
func Fullness(amount int) Effect { return Effect{Kind: EffectFullnessDelta, Amount: amount} }
func GiveIngredient(name string, qty int) Effect {
	return Effect{Kind: EffectAddIngredient, Item: name, Amount: qty}
}
func GiveProvision(name string, qty int) Effect {
	return Effect{Kind: EffectAddProvision, Item: name, Amount: qty}
}
func GrowEnergyCap(amount int) Effect  { return Effect{Kind: EffectMaxEnergyGrow, Amount: amount} }
func GrowStaminaCap(amount int) Effect { return Effect{Kind: EffectMaxStaminaGrow, Amount: amount} }
func Composite(children ...Effect) Effect {
	return Effect{Kind: EffectComposite, Children: children}
}
