package game

import (
	"github.com/dechi99991/cooking-sim/internal/cooking"
	"github.com/dechi99991/cooking-sim/internal/ingredient"
	"github.com/dechi99991/cooking-sim/internal/nutrition"
	"github.com/dechi99991/cooking-sim/internal/provision"
	"github.com/dechi99991/cooking-sim/internal/relic"
	"github.com/dechi99991/cooking-sim/internal/telemetry"
)

func (s *Session) phaseIs(phases ...Phase) bool {
	current := s.Phase()
	for _, p := range phases {
		if p == current {
			return true
		}
	}
	return false
}

// actionEnergyCost applies relic energy saving, floored at 1 so no action is
// ever free.
func (s *Session) actionEnergyCost(base int) int {
	cost := base - s.relics.EnergySave()
	if cost < 1 {
		cost = 1
	}
	return cost
}

// ensureEnergy is the caffeine fallback: when the pending action costs more
// energy than the player has, the mildest caffeinated provision in stock is
// consumed automatically. Evaluated once per short-fall, never looped.
func (s *Session) ensureEnergy(cost int) *provision.Provision {
	if s.player.Energy >= cost {
		return nil
	}
	caffeinated := s.provisions.Caffeinated()
	if len(caffeinated) == 0 {
		return nil
	}
	p := caffeinated[0]
	if !s.provisions.Remove(p.Name, 1) {
		return nil
	}

	s.AdjustEnergy(p.Caffeine * 2)
	s.addCaffeine(p.Caffeine)
	s.daily.Add(p.Nutrition)
	s.player.AddFullness(p.Fullness)
	s.record(telemetry.EventAutoCaffeine, telemetry.EventMetadata{"provision": p.Name})
	return &p
}

func (s *Session) addCaffeine(amount int) {
	s.caffeineToday += amount
	if s.caffeineToday >= s.cfg.InsomniaCaffeine {
		s.insomnia = true
	}
}

// eat applies a meal's payload to the day.
func (s *Session) eat(n nutrition.Nutrition, fullness int) {
	s.daily.Add(n)
	s.player.AddFullness(fullness)
	if !s.IsHoliday() {
		s.week.AddNutrition(n)
	}
}

// Cook resolves a home-cooked meal from stocked ingredients and eats it.
// Ingredient validation happens before the energy is spent, so a failed cook
// costs nothing.
func (s *Session) Cook(names []string) (cooking.Dish, error) {
	if !s.phaseIs(PhaseBreakfast, PhaseDinner, PhaseHolidayLunch) {
		return cooking.Dish{}, ErrWrongPhase
	}
	if !s.hasAllIngredients(names) {
		return cooking.Dish{}, ErrMissingIngredients
	}

	cost := s.actionEnergyCost(s.cfg.CookEnergyCost)
	s.ensureEnergy(cost)
	if !s.player.ConsumeEnergy(cost) {
		return cooking.Dish{}, ErrNotEnoughEnergy
	}

	dish, ok := s.cooker.Cook(names, s.stock, s.day, s.relics)
	if !ok {
		return cooking.Dish{}, ErrMissingIngredients
	}

	s.eat(dish.Nutrition, dish.Fullness)
	if !s.IsHoliday() {
		s.week.RecordCook()
	}
	s.tracker.RecordCook()
	s.AdjustEnergy(s.temper.Modifiers().CookEnergyRecovery)
	s.record(telemetry.EventCooked, telemetry.EventMetadata{"dish": dish.Name, "named": dish.Named})
	return dish, nil
}

// MakeBento cooks a dish into a boxed lunch for tomorrow instead of eating
// it. It spoils the day after it is made.
func (s *Session) MakeBento(names []string) (provision.PreparedDish, error) {
	if !s.phaseIs(PhaseBreakfast, PhaseDinner) {
		return provision.PreparedDish{}, ErrWrongPhase
	}
	if !s.hasAllIngredients(names) {
		return provision.PreparedDish{}, ErrMissingIngredients
	}

	cost := s.actionEnergyCost(s.cfg.CookEnergyCost)
	s.ensureEnergy(cost)
	if !s.player.ConsumeEnergy(cost) {
		return provision.PreparedDish{}, ErrNotEnoughEnergy
	}

	dish, ok := s.cooker.Cook(names, s.stock, s.day, s.relics)
	if !ok {
		return provision.PreparedDish{}, ErrMissingIngredients
	}

	prepared := provision.PreparedDish{
		Name:      dish.Name,
		Nutrition: dish.Nutrition,
		Fullness:  dish.Fullness,
		ExpiryDay: s.day + 1,
		DishType:  provision.DishBento,
	}
	s.provisions.AddPrepared(prepared)
	if !s.IsHoliday() {
		s.week.RecordCook()
	}
	s.tracker.RecordCook()
	s.record(telemetry.EventCooked, telemetry.EventMetadata{"dish": dish.Name, "bento": true})
	return prepared, nil
}

func (s *Session) hasAllIngredients(names []string) bool {
	counts := make(map[string]int, len(names))
	for _, n := range names {
		counts[n]++
	}
	for n, q := range counts {
		if !s.stock.Has(n, q) {
			return false
		}
	}
	return len(names) > 0
}

// PreviewCook resolves what a cook would produce right now, spending nothing.
func (s *Session) PreviewCook(names []string) (cooking.Dish, error) {
	if !s.hasAllIngredients(names) {
		return cooking.Dish{}, ErrMissingIngredients
	}
	dish, ok := s.cooker.Preview(names, s.stock, s.day, s.relics)
	if !ok {
		return cooking.Dish{}, ErrMissingIngredients
	}
	return dish, nil
}

// AvailableRecipes lists the named recipes the current pantry can cover.
func (s *Session) AvailableRecipes() []cooking.NamedRecipe {
	return s.cooker.Recipes.Available(s.stock.Available())
}

// ShopItems is today's supermarket lineup.
func (s *Session) ShopItems() []ingredient.ShopItem {
	return ingredient.DailyShop(s.ingredients, s.day)
}

// RelicShopItems is today's relic corner: one unowned relic on sale.
func (s *Session) RelicShopItems() []relic.ShopItem {
	owned := make(map[string]bool)
	for _, id := range s.relics.IDs() {
		owned[id] = true
	}
	pending := make(map[string]bool)
	for _, d := range s.provisions.Pending() {
		if d.ItemType == provision.DeliverRelic {
			pending[d.Name] = true
		}
	}
	return relic.DailyShop(s.relicCatalog, s.day, owned, pending)
}

func (s *Session) inShopPhase() bool {
	return s.phaseIs(PhaseShopping, PhaseHolidayShopping1, PhaseHolidayShopping2)
}

func (s *Session) bagCapacity() int {
	return s.cfg.BagCapacity + s.relics.BagCapacityBonus()
}

func (s *Session) discounted(price int) int {
	d := s.temper.Modifiers().ShopDiscount
	if d <= 0 {
		return price
	}
	return int(float64(price) * (1 - d))
}

// BuyIngredient purchases qty units of a name from today's lineup. What the
// bag holds is limited per shopping trip; near-expiry items enter stock
// backdated so they spoil on schedule.
func (s *Session) BuyIngredient(name string, qty int) error {
	if !s.inShopPhase() {
		return ErrWrongPhase
	}
	if !s.shopOpen {
		return ErrNotEnoughEnergy
	}
	if qty <= 0 {
		return ErrUnknownItem
	}

	var item *ingredient.ShopItem
	for _, it := range s.ShopItems() {
		if it.Ingredient.Name == name {
			item = &it
			break
		}
	}
	if item == nil {
		return ErrNotInShop
	}

	if s.bagUsed+qty > s.bagCapacity() {
		return ErrBagFull
	}
	total := s.discounted(item.Price) * qty
	if !s.player.ConsumeMoney(total) {
		return ErrNotEnoughMoney
	}

	s.stock.Add(name, qty, item.EffectivePurchaseDay(s.day))
	s.bagUsed += qty
	s.spendToday += total
	s.tracker.RecordShopBuy()
	s.AdjustEnergy(s.temper.Modifiers().ShopEnergyRecovery)
	s.record(telemetry.EventPurchase, telemetry.EventMetadata{"item": name, "qty": qty, "spent": total})
	return nil
}

// BuyRelic purchases a relic from today's corner. Its effects begin today;
// they never reach food bought earlier.
func (s *Session) BuyRelic(id string) error {
	if !s.inShopPhase() {
		return ErrWrongPhase
	}
	if !s.shopOpen {
		return ErrNotEnoughEnergy
	}

	var item *relic.ShopItem
	for _, it := range s.RelicShopItems() {
		if it.Relic.ID == id {
			item = &it
			break
		}
	}
	if item == nil {
		return ErrNotInShop
	}

	price := s.discounted(item.Price)
	if !s.player.ConsumeMoney(price) {
		return ErrNotEnoughMoney
	}
	if !s.relics.Add(id, s.day) {
		s.player.Money += price
		return ErrAlreadyOwned
	}

	s.spendToday += price
	s.tracker.RecordShopBuy()
	s.AdjustEnergy(s.temper.Modifiers().ShopEnergyRecovery)
	s.record(telemetry.EventPurchase, telemetry.EventMetadata{"relic": id, "spent": price})
	return nil
}

// BuyOnlineProvision orders provisions on the card. Nothing is paid now;
// the debt settles on payday and the parcel arrives after the delivery
// delay.
func (s *Session) BuyOnlineProvision(name string, qty int) error {
	if !s.phaseIs(PhaseOnlineShopping) {
		return ErrWrongPhase
	}
	if qty <= 0 {
		return ErrUnknownItem
	}
	p, ok := s.provCatalog.Get(name)
	if !ok {
		return ErrUnknownItem
	}

	total := p.Price * qty
	s.player.AddCardDebt(total)
	s.provisions.AddPending(provision.PendingDelivery{
		ItemType:    provision.DeliverProvision,
		Name:        name,
		Quantity:    qty,
		DeliveryDay: s.day + s.cfg.DeliveryDelayDays,
	})
	s.spendToday += total
	s.tracker.RecordOnlineBuy()
	s.AdjustEnergy(s.temper.Modifiers().ShopEnergyRecovery)
	s.record(telemetry.EventPurchase, telemetry.EventMetadata{"item": name, "qty": qty, "online": true})
	return nil
}

// BuyOnlineRelic orders a relic on the card. Ownership, and therefore its
// effects, begin on the delivery day.
func (s *Session) BuyOnlineRelic(id string) error {
	if !s.phaseIs(PhaseOnlineShopping) {
		return ErrWrongPhase
	}
	r, ok := s.relicCatalog.Get(id)
	if !ok {
		return ErrUnknownItem
	}
	if s.relics.Has(id) {
		return ErrAlreadyOwned
	}
	for _, d := range s.provisions.Pending() {
		if d.ItemType == provision.DeliverRelic && d.Name == id {
			return ErrAlreadyOwned
		}
	}

	s.player.AddCardDebt(r.Price)
	s.provisions.AddPending(provision.PendingDelivery{
		ItemType:    provision.DeliverRelic,
		Name:        id,
		Quantity:    1,
		DeliveryDay: s.day + s.cfg.DeliveryDelayDays,
	})
	s.spendToday += r.Price
	s.tracker.RecordOnlineBuy()
	s.AdjustEnergy(s.temper.Modifiers().ShopEnergyRecovery)
	s.record(telemetry.EventPurchase, telemetry.EventMetadata{"relic": id, "online": true})
	return nil
}

func (s *Session) mealPhase() bool {
	return s.phaseIs(PhaseBreakfast, PhaseLunch, PhaseHolidayLunch, PhaseDinner)
}

// EatProvision eats one stocked provision.
func (s *Session) EatProvision(name string) error {
	if !s.mealPhase() {
		return ErrWrongPhase
	}
	p, ok := s.provCatalog.Get(name)
	if !ok {
		return ErrUnknownItem
	}
	if !s.provisions.Remove(name, 1) {
		return ErrMissingIngredients
	}

	s.eat(p.Nutrition, p.Fullness)
	s.addCaffeine(p.Caffeine)
	s.record(telemetry.EventAte, telemetry.EventMetadata{"what": name})
	return nil
}

// EatPrepared eats a bento or leftover by its index in the unspoiled list.
func (s *Session) EatPrepared(index int) error {
	if !s.mealPhase() {
		return ErrWrongPhase
	}
	dish, ok := s.provisions.RemovePrepared(s.day, index)
	if !ok {
		return ErrUnknownItem
	}
	s.eat(dish.Nutrition, dish.Fullness)
	s.record(telemetry.EventAte, telemetry.EventMetadata{"what": dish.Name, "prepared": true})
	return nil
}

var cafeteriaMeal = nutrition.New(2, 1, 1, 2, 1)

// EatCafeteria takes the subsidized company lunch. Only characters with a
// cafeteria, only at weekday lunch.
func (s *Session) EatCafeteria() error {
	if !s.phaseIs(PhaseLunch) {
		return ErrWrongPhase
	}
	if !s.char.HasCafeteria {
		return ErrNoCafeteria
	}
	if !s.player.ConsumeMoney(s.cfg.CafeteriaPrice) {
		return ErrNotEnoughMoney
	}
	s.eat(cafeteriaMeal, 5)
	s.spendToday += s.cfg.CafeteriaPrice
	s.record(telemetry.EventAte, telemetry.EventMetadata{"what": "cafeteria"})
	return nil
}

var restaurantMeal = nutrition.New(2, 2, 1, 3, 1)

// EatOut buys a restaurant meal: filling, pricey, and what a social
// temperament runs on.
func (s *Session) EatOut() error {
	if !s.phaseIs(PhaseLunch, PhaseHolidayLunch, PhaseDinner) {
		return ErrWrongPhase
	}
	if !s.player.ConsumeMoney(s.cfg.EatOutPrice) {
		return ErrNotEnoughMoney
	}
	s.eat(restaurantMeal, 7)
	s.spendToday += s.cfg.EatOutPrice
	s.tracker.RecordEatOut()
	s.AdjustEnergy(s.temper.Modifiers().EatOutEnergyRecovery)
	s.record(telemetry.EventAte, telemetry.EventMetadata{"what": "restaurant"})
	return nil
}

// Cleanup spends a holiday slot tidying the apartment.
func (s *Session) Cleanup() error {
	if !s.phaseIs(PhaseHolidayShopping1, PhaseHolidayShopping2) {
		return ErrWrongPhase
	}
	const cost = 1
	s.ensureEnergy(cost)
	if !s.player.ConsumeEnergy(cost) {
		return ErrNotEnoughEnergy
	}
	s.daily.Add(nutrition.New(0, 1, 0, 0, 0))
	s.tracker.RecordCleanup()
	s.record(telemetry.EventFreeTime, telemetry.EventMetadata{"what": "cleanup"})
	return nil
}

// Rest spends a holiday slot doing nothing in particular.
func (s *Session) Rest() error {
	if !s.phaseIs(PhaseHolidayShopping1, PhaseHolidayShopping2) {
		return ErrWrongPhase
	}
	s.AdjustEnergy(s.cfg.RestEnergyRecovery + s.temper.Modifiers().RestBonus)
	s.AdjustStamina(1)
	s.tracker.RecordRest()
	s.record(telemetry.EventFreeTime, telemetry.EventMetadata{"what": "rest"})
	return nil
}
