package provision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dechi99991/cooking-sim/internal/nutrition"
)

func TestStock_AddRemove(t *testing.T) {
	s := NewStock(DefaultCatalog())
	s.Add("cup noodles", 2)

	assert.True(t, s.Remove("cup noodles", 1))
	assert.Equal(t, 1, s.Quantity("cup noodles"))

	// Fail-closed: no partial removal.
	assert.False(t, s.Remove("cup noodles", 2))
	assert.Equal(t, 1, s.Quantity("cup noodles"))
}

func TestStock_CaffeinatedAscending(t *testing.T) {
	s := NewStock(DefaultCatalog())
	s.Add("energy drink", 1)
	s.Add("green tea", 1)
	s.Add("canned coffee", 1)
	s.Add("rice ball", 3) // no caffeine, excluded

	caffeinated := s.Caffeinated()
	require.Len(t, caffeinated, 3)
	assert.Equal(t, "green tea", caffeinated[0].Name)
	assert.Equal(t, "canned coffee", caffeinated[1].Name)
	assert.Equal(t, "energy drink", caffeinated[2].Name)
}

func TestStock_PreparedLifecycle(t *testing.T) {
	s := NewStock(DefaultCatalog())
	s.AddPrepared(PreparedDish{Name: "fried rice", Nutrition: nutrition.New(2, 1, 1, 2, 1), Fullness: 5, ExpiryDay: 4, DishType: DishBento})
	s.AddPrepared(PreparedDish{Name: "salad", Fullness: 2, ExpiryDay: 2, DishType: DishLeftover})

	assert.Len(t, s.Prepared(2), 2)
	assert.Len(t, s.Prepared(3), 1)

	dish, ok := s.RemovePrepared(3, 0)
	require.True(t, ok)
	assert.Equal(t, "fried rice", dish.Name)
	assert.Empty(t, s.Prepared(3))

	_, ok = s.RemovePrepared(3, 0)
	assert.False(t, ok)
}

func TestStock_PurgeExpired(t *testing.T) {
	s := NewStock(DefaultCatalog())
	s.AddPrepared(PreparedDish{Name: "old", ExpiryDay: 2})
	s.AddPrepared(PreparedDish{Name: "fresh", ExpiryDay: 9})

	purged := s.PurgeExpired(5)
	require.Len(t, purged, 1)
	assert.Equal(t, "old", purged[0].Name)
	assert.Len(t, s.Prepared(5), 1)
}

func TestStock_ProcessDeliveries(t *testing.T) {
	s := NewStock(DefaultCatalog())
	s.AddPending(PendingDelivery{ItemType: DeliverProvision, Name: "retort curry", Quantity: 2, DeliveryDay: 3})
	s.AddPending(PendingDelivery{ItemType: DeliverRelic, Name: "fridge", Quantity: 1, DeliveryDay: 3})
	s.AddPending(PendingDelivery{ItemType: DeliverProvision, Name: "rice ball", Quantity: 1, DeliveryDay: 5})

	delivered := s.ProcessDeliveries(3)
	require.Len(t, delivered, 2)
	assert.Equal(t, 2, s.Quantity("retort curry"))
	// The relic delivery matures but is not added here; the session routes it
	// to the relic inventory.
	assert.Equal(t, 0, s.Quantity("fridge"))

	assert.Len(t, s.Pending(), 1)
	assert.Empty(t, s.ProcessDeliveries(4))

	delivered = s.ProcessDeliveries(5)
	require.Len(t, delivered, 1)
	assert.Equal(t, 1, s.Quantity("rice ball"))
}
