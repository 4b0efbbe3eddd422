package ingredient

import "math/rand"

// DiscountType marks how a shop item is priced.
type DiscountType string

const (
	DiscountNone       DiscountType = "none"
	DiscountSale       DiscountType = "sale"
	DiscountNearExpiry DiscountType = "near_expiry"
)

// ShopItem is one slot of the daily shop lineup.
type ShopItem struct {
	Ingredient        Ingredient   `json:"ingredient"`
	Price             int          `json:"price"`
	Discount          DiscountType `json:"discount"`
	FreshnessDaysLeft int          `json:"freshness_days_left"`
}

// shopSeedSalt keeps the shop draw independent from other day-keyed draws.
const shopSeedSalt = 7901

// DailyShop generates the shop lineup for a day: five items covering the
// staple categories, one at 20% off, and one near-expiry at half price with a
// single day of freshness left. The draw is seeded by day so repeated reads
// within the same day see the same lineup.
func DailyShop(c *Catalog, day int) []ShopItem {
	rng := rand.New(rand.NewSource(int64(day) + shopSeedSalt))

	pick := func(pools ...Category) (Ingredient, bool) {
		var candidates []Ingredient
		for _, cat := range pools {
			candidates = append(candidates, c.ByCategory(cat)...)
		}
		if len(candidates) == 0 {
			return Ingredient{}, false
		}
		return candidates[rng.Intn(len(candidates))], true
	}

	var selected []Ingredient
	seen := map[string]bool{}
	appendUnique := func(ing Ingredient, ok bool) {
		if ok && !seen[ing.Name] {
			selected = append(selected, ing)
			seen[ing.Name] = true
		}
	}

	appendUnique(pick(CategoryGrain))
	appendUnique(pick(CategoryVegetable))
	appendUnique(pick(CategoryMeat, CategoryFish))
	appendUnique(pick(CategoryEggDairy, CategoryBean))
	appendUnique(pick(CategoryMushroom, CategoryFruit, CategorySeasoning))

	// Pad from the whole catalog if a category was empty.
	names := c.Names()
	for len(selected) < 5 && len(selected) < c.Len() {
		ing, _ := c.Get(names[rng.Intn(len(names))])
		appendUnique(ing, true)
	}
	if len(selected) == 0 {
		return nil
	}

	saleIdx := rng.Intn(len(selected))
	nearExpiryIdx := saleIdx
	if len(selected) > 1 {
		nearExpiryIdx = (saleIdx + 1 + rng.Intn(len(selected)-1)) % len(selected)
	}

	items := make([]ShopItem, 0, len(selected))
	for i, ing := range selected {
		switch {
		case i == saleIdx:
			items = append(items, ShopItem{
				Ingredient:        ing,
				Price:             ing.Price * 80 / 100,
				Discount:          DiscountSale,
				FreshnessDaysLeft: ing.FreshnessDays,
			})
		case i == nearExpiryIdx:
			items = append(items, ShopItem{
				Ingredient:        ing,
				Price:             ing.Price / 2,
				Discount:          DiscountNearExpiry,
				FreshnessDaysLeft: 1,
			})
		default:
			items = append(items, ShopItem{
				Ingredient:        ing,
				Price:             ing.Price,
				Discount:          DiscountNone,
				FreshnessDaysLeft: ing.FreshnessDays,
			})
		}
	}
	return items
}

// EffectivePurchaseDay maps a shop item onto the purchase day recorded in
// stock. Near-expiry items are backdated so only FreshnessDaysLeft days of
// shelf life remain; the stock ledger re-sorts on insert to keep oldest-first
// consumption correct.
func (s ShopItem) EffectivePurchaseDay(currentDay int) int {
	return currentDay - (s.Ingredient.FreshnessDays - s.FreshnessDaysLeft)
}
