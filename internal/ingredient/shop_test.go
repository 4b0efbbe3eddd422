package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyShopIsStableWithinADay(t *testing.T) {
	c := DefaultCatalog()

	first := DailyShop(c, 3)
	second := DailyShop(c, 3)
	assert.Equal(t, first, second, "repeated reads within a day see one lineup")

	var rotates bool
	for day := 4; day <= 10; day++ {
		if !assert.ObjectsAreEqual(first, DailyShop(c, day)) {
			rotates = true
			break
		}
	}
	assert.True(t, rotates, "the lineup changes across days")
}

func TestDailyShopLineupAndDiscounts(t *testing.T) {
	c := DefaultCatalog()

	for day := 1; day <= 30; day++ {
		items := DailyShop(c, day)
		require.Len(t, items, 5)

		var sales, nearExpiry int
		seen := map[string]bool{}
		for _, it := range items {
			require.False(t, seen[it.Ingredient.Name], "day %d repeats %s", day, it.Ingredient.Name)
			seen[it.Ingredient.Name] = true

			switch it.Discount {
			case DiscountSale:
				sales++
				assert.Equal(t, it.Ingredient.Price*80/100, it.Price)
				assert.Equal(t, it.Ingredient.FreshnessDays, it.FreshnessDaysLeft)
			case DiscountNearExpiry:
				nearExpiry++
				assert.Equal(t, it.Ingredient.Price/2, it.Price)
				assert.Equal(t, 1, it.FreshnessDaysLeft)
			default:
				assert.Equal(t, it.Ingredient.Price, it.Price)
				assert.Equal(t, it.Ingredient.FreshnessDays, it.FreshnessDaysLeft)
			}
		}
		assert.Equal(t, 1, sales, "day %d", day)
		assert.Equal(t, 1, nearExpiry, "day %d", day)
	}
}

func TestEffectivePurchaseDayBackdatesNearExpiry(t *testing.T) {
	ing := Ingredient{Name: "chicken", FreshnessDays: 4}

	fresh := ShopItem{Ingredient: ing, FreshnessDaysLeft: 4}
	assert.Equal(t, 10, fresh.EffectivePurchaseDay(10))

	// One day of shelf life left on day 10 reads as a day-7 purchase, so
	// the stock ledger spoils it on schedule.
	old := ShopItem{Ingredient: ing, Discount: DiscountNearExpiry, FreshnessDaysLeft: 1}
	assert.Equal(t, 7, old.EffectivePurchaseDay(10))
}
