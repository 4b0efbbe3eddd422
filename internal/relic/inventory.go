package relic

import (
	"math/rand"
	"sort"

	"github.com/dechi99991/cooking-sim/internal/ingredient"
)

// owned records when a relic entered the inventory. The acquisition day gates
// freshness extension: a fridge bought on day 10 does nothing for food bought
// on day 5.
type owned struct {
	relic       Relic
	acquiredDay int
}

// Inventory holds the session's relics. Effects of the same kind sum
// linearly.
type Inventory struct {
	catalog *Catalog
	items   map[string]owned
}

func NewInventory(catalog *Catalog) *Inventory {
	return &Inventory{catalog: catalog, items: make(map[string]owned)}
}

// Add registers ownership of a relic. Duplicates are rejected.
func (inv *Inventory) Add(id string, acquiredDay int) bool {
	r, ok := inv.catalog.Get(id)
	if !ok {
		return false
	}
	if _, dup := inv.items[id]; dup {
		return false
	}
	inv.items[id] = owned{relic: r, acquiredDay: acquiredDay}
	return true
}

func (inv *Inventory) Has(id string) bool {
	_, ok := inv.items[id]
	return ok
}

// IDs returns the owned relic ids, sorted.
func (inv *Inventory) IDs() []string {
	out := make([]string, 0, len(inv.items))
	for id := range inv.items {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (inv *Inventory) matches(o owned, kind EffectKind, cat ingredient.Category) bool {
	r := o.relic
	return r.Effect == kind && (r.Target == "" || r.Target == cat)
}

// NutritionBoost sums the boost fractions that apply to an ingredient
// category. The fractions add before being applied once.
func (inv *Inventory) NutritionBoost(cat ingredient.Category) float64 {
	boost := 0.0
	for _, o := range inv.items {
		if inv.matches(o, EffectNutritionBoost, cat) {
			boost += o.relic.Value
		}
	}
	return boost
}

// FullnessBoost sums the flat fullness bonuses for a category.
func (inv *Inventory) FullnessBoost(cat ingredient.Category) int {
	boost := 0
	for _, o := range inv.items {
		if inv.matches(o, EffectFullnessBoost, cat) {
			boost += int(o.relic.Value)
		}
	}
	return boost
}

// EnergySave sums the cooking energy reductions. Callers floor the resulting
// action cost at 1.
func (inv *Inventory) EnergySave() int {
	save := 0
	for _, o := range inv.items {
		if o.relic.Effect == EffectEnergySave {
			save += int(o.relic.Value)
		}
	}
	return save
}

// BagCapacityBonus sums the extra shopping capacity.
func (inv *Inventory) BagCapacityBonus() int {
	bonus := 0
	for _, o := range inv.items {
		if o.relic.Effect == EffectBagCapacity {
			bonus += int(o.relic.Value)
		}
	}
	return bonus
}

// FreshnessExtendFor sums extension days from relics acquired on or before
// purchaseDay. Later acquisitions never heal food already bought.
func (inv *Inventory) FreshnessExtendFor(purchaseDay int) int {
	extend := 0
	for _, o := range inv.items {
		if o.relic.Effect == EffectFreshnessExtend && o.acquiredDay <= purchaseDay {
			extend += int(o.relic.Value)
		}
	}
	return extend
}

// ShopItem is a relic offered in the online shop.
type ShopItem struct {
	Relic   Relic `json:"relic"`
	Price   int   `json:"price"`
	IsSale  bool  `json:"is_sale"`
	Owned   bool  `json:"owned"`
	Pending bool  `json:"pending"`
}

const shopSeedSalt = 5407

// DailyShop lists every catalog relic for a day, marking owned and pending
// ones and putting one unowned relic on a 20% sale. Seeded by day for a
// stable lineup within the day.
func DailyShop(c *Catalog, day int, ownedIDs, pendingIDs map[string]bool) []ShopItem {
	rng := rand.New(rand.NewSource(int64(day) + shopSeedSalt))

	all := c.All()
	var saleID string
	var candidates []string
	for _, r := range all {
		if !ownedIDs[r.ID] && !pendingIDs[r.ID] {
			candidates = append(candidates, r.ID)
		}
	}
	if len(candidates) > 0 {
		saleID = candidates[rng.Intn(len(candidates))]
	}

	items := make([]ShopItem, 0, len(all))
	for _, r := range all {
		item := ShopItem{
			Relic:   r,
			Price:   r.Price,
			Owned:   ownedIDs[r.ID],
			Pending: pendingIDs[r.ID],
		}
		if r.ID == saleID {
			item.IsSale = true
			item.Price = r.Price * 80 / 100
		}
		items = append(items, item)
	}
	return items
}
